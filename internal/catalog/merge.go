package catalog

import (
	"vin-dashboard/internal/model"
)

// ------------------- Merge -------------------

// Merge left-joins statistics rows with the organization directory on the
// normalized 9-digit customer id. Every statistics row appears at least once
// in the output; rows with no matching organization keep a nil Organization,
// and a customer id matching several organization rows is emitted once per
// match (standard left-join fan-out, intentionally not deduplicated).
func Merge(stats []model.StatisticsRecord, orgs []model.OrganizationRecord) []model.MergedRow {
	byCode := make(map[string][]int, len(orgs))
	for i, org := range orgs {
		byCode[org.Code] = append(byCode[org.Code], i)
	}

	merged := make([]model.MergedRow, 0, len(stats))
	for _, rec := range stats {
		matches := byCode[rec.CustomerID]
		if len(matches) == 0 {
			merged = append(merged, model.MergedRow{StatisticsRecord: rec})
			continue
		}
		for _, idx := range matches {
			org := orgs[idx]
			merged = append(merged, model.MergedRow{StatisticsRecord: rec, Organization: &org})
		}
	}

	return merged
}
