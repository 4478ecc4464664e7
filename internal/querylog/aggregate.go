package querylog

import (
	"fmt"
	"sort"
	"time"

	"vin-dashboard/internal/model"
	"vin-dashboard/pkg/utils"
)

// TopVINLimit is how many VINs the frequency ranking reports.
const TopVINLimit = 5

// ------------------- Deduplication & aggregation -------------------

// Aggregate filters the record sequence by organization and date range,
// deduplicates by the (VIN, raw timestamp string) pair, and derives per-day
// counts plus the most frequent VINs. Both range bounds are inclusive; an
// empty organization filter means no filtering. The caller validates
// from <= to before calling. Results are computed fresh on every call and
// never cached.
func Aggregate(records []model.QueryLogRecord, orgFilter string, from, to time.Time) model.AggregationResult {
	fromDay := from.Format("2006-01-02")
	toDay := to.Format("2006-01-02")

	type dedupeKey struct {
		vin string
		ts  string
	}
	seen := make(map[dedupeKey]bool)

	var survivors []model.QueryLogRecord
	perDay := make(map[string]int)
	vinCounts := make(map[string]int)
	var vinOrder []string
	filtered := 0
	duplicates := 0

	for _, rec := range records {
		if orgFilter != "" && rec.OrganizationName != orgFilter {
			filtered++
			continue
		}

		instant, err := utils.ParseTimestamp(rec.Timestamp)
		if err != nil {
			filtered++ // unparseable timestamps reduce the result set silently
			continue
		}

		day := instant.Format("2006-01-02")
		if day < fromDay || day > toDay {
			filtered++
			continue
		}

		// Deduplicate on the raw timestamp string, not the parsed instant:
		// two strings that parse to the same moment stay distinct records.
		key := dedupeKey{vin: rec.VIN, ts: rec.Timestamp}
		if seen[key] {
			duplicates++
			continue
		}
		seen[key] = true

		survivors = append(survivors, rec)
		perDay[day]++
		if _, ok := vinCounts[rec.VIN]; !ok {
			vinOrder = append(vinOrder, rec.VIN)
		}
		vinCounts[rec.VIN]++
	}

	result := model.AggregationResult{
		ExportRows: survivors,
		PerDay:     sortedDayCounts(perDay),
		TopVINs:    topVINs(vinCounts, vinOrder),
		Total:      len(survivors),
		Filtered:   filtered,
		Duplicates: duplicates,
	}

	fmt.Printf("📊 Aggregation: %d survivors, %d filtered, %d duplicates dropped\n",
		result.Total, result.Filtered, result.Duplicates)
	return result
}

func sortedDayCounts(perDay map[string]int) []model.DayCount {
	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	counts := make([]model.DayCount, 0, len(days))
	for _, day := range days {
		counts = append(counts, model.DayCount{Day: day, Count: perDay[day]})
	}
	return counts
}

// topVINs ranks VINs by descending count, ties broken by first-encountered
// order, and reports at most TopVINLimit entries. A VIN with zero surviving
// records never appears.
func topVINs(counts map[string]int, order []string) []model.VINCount {
	ranked := make([]model.VINCount, 0, len(order))
	for _, vin := range order {
		ranked = append(ranked, model.VINCount{VIN: vin, Count: counts[vin]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > TopVINLimit {
		ranked = ranked[:TopVINLimit]
	}
	return ranked
}
