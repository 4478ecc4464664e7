package querylog

import (
	"testing"
	"time"
)

func TestServiceSummarizeEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "queries.json", []byte(`[
		{"time_stamp": "2024-01-01T10:00:00", "organization_id": "1", "organization_name": "Acme", "query_vin": "V1", "user_id": "u1"},
		{"time_stamp": "2024-01-01T10:00:00", "organization_id": "1", "organization_name": "Acme", "query_vin": "V1", "user_id": "u1"},
		{"time_stamp": "2024-01-02T10:00:00", "organization_id": "2", "organization_name": "Globex", "query_vin": "V2", "user_id": "u2"}
	]`))

	svc := NewService(dir)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	result, err := svc.Summarize("", from, to)
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("expected 2 unique queries, got %d", result.Total)
	}
	if result.Duplicates != 1 {
		t.Errorf("expected 1 duplicate, got %d", result.Duplicates)
	}

	result, err = svc.Summarize("Acme", from, to)
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("org filter should leave 1 query, got %d", result.Total)
	}
}

func TestServiceOrganizations(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "queries.json", []byte(`[
		{"time_stamp": "2024-01-01T10:00:00", "organization_id": "2", "organization_name": "Globex", "query_vin": "V1", "user_id": "u1"},
		{"time_stamp": "2024-01-01T11:00:00", "organization_id": "1", "organization_name": "Acme", "query_vin": "V2", "user_id": "u1"},
		{"time_stamp": "2024-01-01T12:00:00", "organization_id": "2", "organization_name": "Globex", "query_vin": "V3", "user_id": "u2"}
	]`))

	svc := NewService(dir)
	names, err := svc.Organizations()
	if err != nil {
		t.Fatalf("Organizations error: %v", err)
	}
	if len(names) != 2 || names[0] != "Acme" || names[1] != "Globex" {
		t.Errorf("expected sorted distinct names [Acme Globex], got %v", names)
	}
}

func TestServiceReloadOnNewFile(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a_queries.json", []byte(`[
		{"time_stamp": "2024-01-01T10:00:00", "organization_id": "1", "organization_name": "Acme", "query_vin": "V1", "user_id": "u1"}
	]`))

	svc := NewService(dir)
	records, err := svc.Records()
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	writeSource(t, dir, "b_queries.json", []byte(`[
		{"time_stamp": "2024-01-02T10:00:00", "organization_id": "2", "organization_name": "Globex", "query_vin": "V2", "user_id": "u2"}
	]`))

	records, err = svc.Records()
	if err != nil {
		t.Fatalf("Records error after new file: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("new file should trigger a reload, got %d records", len(records))
	}
}
