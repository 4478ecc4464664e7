package catalog

import (
	"sort"
	"strings"

	"vin-dashboard/internal/model"
)

// ------------------- VIN lookup -------------------

// FindByVIN returns every merged row whose VIN equals the query,
// case-insensitively and exactly (no partial matching). Rows with a missing
// VIN never match. Results are ordered by year tag ascending (lexical) and
// by the TSTAMP column within a year; rows without a timestamp keep their
// insertion order. An empty result is a normal outcome.
func FindByVIN(rows []model.MergedRow, vin string) []model.MergedRow {
	query := strings.ToUpper(strings.TrimSpace(vin))
	if query == "" {
		return nil
	}

	var matches []model.MergedRow
	for _, row := range rows {
		if row.VIN == "" {
			continue
		}
		if strings.ToUpper(row.VIN) == query {
			matches = append(matches, row)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Year != matches[j].Year {
			return matches[i].Year < matches[j].Year
		}
		return matches[i].Timestamp < matches[j].Timestamp
	})

	return matches
}

// GroupByYear splits sorted lookup results into per-year blocks, the shape
// the catalog dashboard renders ("Year 2018", "Year 2019", ...).
func GroupByYear(rows []model.MergedRow) []model.YearGroup {
	var groups []model.YearGroup
	for _, row := range rows {
		if len(groups) == 0 || groups[len(groups)-1].Year != row.Year {
			groups = append(groups, model.YearGroup{Year: row.Year})
		}
		last := &groups[len(groups)-1]
		last.Rows = append(last.Rows, row)
	}
	return groups
}
