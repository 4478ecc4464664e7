package querylog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"vin-dashboard/internal/model"
	"vin-dashboard/pkg/utils"
)

// Legacy CSV column names (semicolon-delimited, windows-1250 encoded).
const (
	colVIN         = "vin"
	colOrderDate   = "order_date"
	colOrganis     = "organisation"
	colOrderClient = "order_client"
)

// ------------------- Query-log loading -------------------

// orgResolver is the running organization_id → organization_name map built
// while scanning sources in sorted file order. First-seen name wins; later
// sightings of an id never overwrite it. Resolution of CSV rows depends on
// which files were processed before them - a documented ordering dependency
// of the data, not something to fix here.
type orgResolver map[string]string

func (r orgResolver) learn(id, name string) {
	if id == "" || name == "" {
		return
	}
	if _, seen := r[id]; !seen {
		r[id] = name
	}
}

func (r orgResolver) resolve(id string) string {
	if name, ok := r[id]; ok {
		return name
	}
	return id // unresolved: id verbatim
}

// LoadRecords reads every query-log source in dataDir - JSON arrays and
// legacy semicolon CSVs - in one sorted filename pass, and materializes them
// as an ordered record sequence. Records with malformed timestamps are
// skipped silently; unreadable or structurally broken files abort the load.
func LoadRecords(dataDir string) ([]model.QueryLogRecord, error) {
	files, err := listSources(dataDir)
	if err != nil {
		return nil, err
	}

	resolver := make(orgResolver)
	var records []model.QueryLogRecord
	totalSkipped := 0

	for _, path := range files {
		var (
			rows    []model.QueryLogRecord
			skipped int
		)
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			rows, skipped, err = ingestJSON(path, resolver)
		case ".csv":
			rows, skipped, err = ingestLegacyCSV(path, resolver)
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rows...)
		totalSkipped += skipped
		fmt.Printf("📄 Query log: %d records read from %s (%d skipped)\n", len(rows), filepath.Base(path), skipped)
	}

	fmt.Printf("🏁 Query log loaded: %d records from %d files, %d skipped\n", len(records), len(files), totalSkipped)
	return records, nil
}

// listSources returns the query-log input files in sorted filename order.
// The yearly statistics exports share the data directory and are not query
// logs, so *_statistika.csv is excluded.
func listSources(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %q: %w", dataDir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".csv" {
			continue
		}
		if strings.HasSuffix(name, "_statistika.csv") {
			continue
		}
		files = append(files, filepath.Join(dataDir, name))
	}
	sort.Strings(files)
	return files, nil
}

// ------------------- JSON sources -------------------

type jsonQueryRecord struct {
	TimeStamp        string `json:"time_stamp"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	QueryVIN         string `json:"query_vin"`
	UserID           string `json:"user_id"`
	ResponseType     string `json:"response_type"`
}

func ingestJSON(path string, resolver orgResolver) ([]model.QueryLogRecord, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open query-log file %s: %w", filepath.Base(path), err)
	}

	var raw []jsonQueryRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("failed to decode query-log JSON %s: %w", filepath.Base(path), err)
	}

	var records []model.QueryLogRecord
	skipped := 0
	for _, rec := range raw {
		resolver.learn(rec.OrganizationID, rec.OrganizationName)

		if _, err := utils.ParseTimestamp(rec.TimeStamp); err != nil {
			skipped++ // malformed timestamp, silently excluded
			continue
		}

		name := rec.OrganizationName
		if name == "" {
			name = resolver.resolve(rec.OrganizationID)
		}

		records = append(records, model.QueryLogRecord{
			UserID:           rec.UserID,
			OrganizationID:   rec.OrganizationID,
			OrganizationName: name,
			VIN:              rec.QueryVIN,
			Timestamp:        rec.TimeStamp,
			ResponseType:     rec.ResponseType,
		})
	}

	return records, skipped, nil
}

// ------------------- Legacy CSV sources -------------------

// ingestLegacyCSV reads a semicolon-delimited, windows-1250 encoded query
// log. The order_date column is rewritten from "YYYY-MM-DD HH:MM:SS" to the
// T-separated ISO form so the shared timestamp parser applies. Organization
// names are resolved against whatever the resolver learned from files
// processed earlier; unresolved ids pass through verbatim.
func ingestLegacyCSV(path string, resolver orgResolver) ([]model.QueryLogRecord, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open query-log file %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	reader := csv.NewReader(charmap.Windows1250.NewDecoder().Reader(file))
	reader.Comma = ';'
	reader.LazyQuotes = true

	rawHeaders, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read CSV header of %s: %w", filepath.Base(path), err)
	}

	idx := make(map[string]int, len(rawHeaders))
	for i, h := range rawHeaders {
		idx[utils.CleanHeader(h)] = i
	}
	for _, required := range []string{colVIN, colOrderDate, colOrganis, colOrderClient} {
		if _, ok := idx[required]; !ok {
			return nil, 0, fmt.Errorf("missing column %q in file %s", required, filepath.Base(path))
		}
	}

	cell := func(row []string, col string) string {
		i := idx[col]
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var records []model.QueryLogRecord
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, 0, fmt.Errorf("CSV read error in %s: %w", filepath.Base(path), err)
		}

		ts := strings.Replace(cell(row, colOrderDate), " ", "T", 1)
		if _, err := utils.ParseTimestamp(ts); err != nil {
			skipped++
			continue
		}

		orgID := cell(row, colOrganis)
		records = append(records, model.QueryLogRecord{
			UserID:           cell(row, colOrderClient),
			OrganizationID:   orgID,
			OrganizationName: resolver.resolve(orgID),
			VIN:              cell(row, colVIN),
			Timestamp:        ts,
		})
	}

	return records, skipped, nil
}
