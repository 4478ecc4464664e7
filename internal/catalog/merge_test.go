package catalog

import (
	"testing"

	"vin-dashboard/internal/model"
)

func stat(customerID, vin, year string) model.StatisticsRecord {
	return model.StatisticsRecord{
		CustomerID: customerID,
		VIN:        vin,
		Year:       year,
		Fields:     map[string]string{ColCustomerID: customerID, ColVIN: vin},
	}
}

func org(code, name string) model.OrganizationRecord {
	return model.OrganizationRecord{
		Code:   code,
		Name:   name,
		Fields: map[string]string{ColCode: code, ColName: name},
	}
}

func TestMergeLeftJoin(t *testing.T) {
	stats := []model.StatisticsRecord{
		stat("000000123", "WVWZZZ1", "2018"),
		stat("000000123", "WVWZZZ1", "2019"),
		stat("000000999", "WVWZZZ2", "2018"),
	}
	orgs := []model.OrganizationRecord{
		org("000000123", "Acme"),
	}

	merged := Merge(stats, orgs)

	if len(merged) != 3 {
		t.Fatalf("expected 3 merged rows, got %d", len(merged))
	}

	// Both 2018 and 2019 rows for customer 123 carry the Acme organization.
	for _, row := range merged[:2] {
		if row.Organization == nil || row.Organization.Name != "Acme" {
			t.Errorf("year %s: expected organization Acme, got %+v", row.Year, row.Organization)
		}
	}

	// Unmatched customer keeps a nil organization, the row itself survives.
	if merged[2].Organization != nil {
		t.Errorf("expected nil organization for unmatched customer, got %+v", merged[2].Organization)
	}
}

func TestMergeFanOutOnDuplicateCodes(t *testing.T) {
	stats := []model.StatisticsRecord{
		stat("000000123", "WVWZZZ1", "2018"),
	}
	orgs := []model.OrganizationRecord{
		org("000000123", "Acme"),
		org("000000123", "Acme Duplicate"),
	}

	merged := Merge(stats, orgs)

	// Duplicate right-side keys multiply rows: one output row per match.
	if len(merged) != 2 {
		t.Fatalf("expected fan-out to 2 rows, got %d", len(merged))
	}
	if merged[0].Organization.Name != "Acme" || merged[1].Organization.Name != "Acme Duplicate" {
		t.Errorf("fan-out rows out of order: %q, %q", merged[0].Organization.Name, merged[1].Organization.Name)
	}
}

func TestMergeRowCountNeverShrinks(t *testing.T) {
	stats := []model.StatisticsRecord{
		stat("000000001", "A", "2020"),
		stat("000000002", "B", "2020"),
	}

	merged := Merge(stats, nil)
	if len(merged) < len(stats) {
		t.Fatalf("merge lost rows: %d < %d", len(merged), len(stats))
	}
	for _, row := range merged {
		if row.Organization != nil {
			t.Errorf("expected no organization matches, got %+v", row.Organization)
		}
	}
}
