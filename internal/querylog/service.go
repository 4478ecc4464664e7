package querylog

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"vin-dashboard/internal/model"
	"vin-dashboard/internal/store"
	"vin-dashboard/pkg/utils"
)

// Service holds the materialized query-log sequence for the session. Like
// the catalog, the dataset is reloaded wholesale when the input file set
// changes; aggregation itself is computed fresh per filter invocation.
type Service struct {
	dataDir string

	mu          sync.RWMutex
	fingerprint string
	records     []model.QueryLogRecord
	loaded      bool
}

// NewService creates a query-log service over the given data directory.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// Records returns the ordered query-log sequence, reloading it first if the
// input file set changed since the last load.
func (s *Service) Records() ([]model.QueryLogRecord, error) {
	files, err := listSources(s.dataDir)
	if err != nil {
		return nil, err
	}
	current := utils.FileSetFingerprint(files)

	s.mu.RLock()
	if s.loaded && s.fingerprint == current {
		records := s.records
		s.mu.RUnlock()
		return records, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded && s.fingerprint == current {
		return s.records, nil
	}

	start := time.Now()
	records, err := LoadRecords(s.dataDir)
	if err != nil {
		store.SaveLoadEvent("querylog", len(files), 0, time.Since(start), err)
		return nil, err
	}
	s.records = records
	s.fingerprint = current
	s.loaded = true
	store.SaveLoadEvent("querylog", len(files), len(records), time.Since(start), nil)
	return records, nil
}

// Summarize runs the filter-dedupe-aggregate pipeline over the loaded
// records. Range validation (from <= to) belongs to the HTTP layer.
func (s *Service) Summarize(orgFilter string, from, to time.Time) (model.AggregationResult, error) {
	records, err := s.Records()
	if err != nil {
		return model.AggregationResult{}, err
	}
	return Aggregate(records, orgFilter, from, to), nil
}

// Organizations lists the distinct organization names present in the loaded
// records, sorted, for the dashboard filter dropdown.
func (s *Service) Organizations() ([]string, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, rec := range records {
		if rec.OrganizationName == "" || seen[rec.OrganizationName] {
			continue
		}
		seen[rec.OrganizationName] = true
		names = append(names, rec.OrganizationName)
	}
	sort.Strings(names)
	return names, nil
}

// Invalidate drops the cached records so the next request reloads them.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.records = nil
	s.fingerprint = ""
	fmt.Println("🧹 Query-log cache invalidated")
}
