package model

// StatisticsRecord is one row of a yearly <year>_statistika.csv export.
// CustomerID and ManufacturerCode are stored normalized (zero-padded).
// Fields carries every original column unchanged, including the ones
// lifted into named fields.
type StatisticsRecord struct {
	CustomerID       string            `json:"customer_id"`
	ManufacturerCode string            `json:"manufacturer_code,omitempty"`
	VIN              string            `json:"vin"`
	Timestamp        string            `json:"timestamp,omitempty"`
	Year             string            `json:"year"`
	Fields           map[string]string `json:"fields"`
}

// OrganizationRecord is one row of the Organizations.xlsx sheet. Code is
// normalized to 9 digits. Uniqueness of Code is assumed but not enforced;
// duplicate codes multiply rows during the merge (left-join fan-out).
type OrganizationRecord struct {
	Code   string            `json:"code"`
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

// MergedRow is a StatisticsRecord left-joined with the organization
// directory. Organization is nil when the customer id matched no row.
type MergedRow struct {
	StatisticsRecord
	Organization *OrganizationRecord `json:"organization,omitempty"`
}

// YearGroup is the search-result block for a single year tag.
type YearGroup struct {
	Year string      `json:"year"`
	Rows []MergedRow `json:"rows"`
}

// QueryLogRecord is one user query against the VIN lookup service.
type QueryLogRecord struct {
	UserID           string `json:"user_id"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	VIN              string `json:"query_vin"`
	Timestamp        string `json:"time_stamp"`
	ResponseType     string `json:"response_type,omitempty"`
}

// DayCount is a calendar day with its surviving query count.
type DayCount struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// VINCount is a queried VIN with its surviving record count.
type VINCount struct {
	VIN   string `json:"vin"`
	Count int    `json:"count"`
}

// AggregationResult is the derived, non-persisted output of one filter
// invocation: deduplicated export rows in first-occurrence order, per-day
// counts, and the five most frequent VINs.
type AggregationResult struct {
	ExportRows []QueryLogRecord `json:"export_rows"`
	PerDay     []DayCount       `json:"per_day"`
	TopVINs    []VINCount       `json:"top_vins"`
	Total      int              `json:"total"`
	Filtered   int              `json:"filtered"`
	Duplicates int              `json:"duplicates"`
}
