package catalog

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"vin-dashboard/internal/model"
	"vin-dashboard/internal/store"
	"vin-dashboard/pkg/utils"
)

// Service holds the merged catalog dataset for the process lifetime. The
// whole dataset is reloaded wholesale whenever the fingerprint of the input
// file set changes or a reload is requested; there is no incremental update.
// The mutex only guards the reload path, the rows themselves are read-only
// after load.
type Service struct {
	dataDir string

	mu          sync.RWMutex
	fingerprint string
	rows        []model.MergedRow
	loaded      bool
}

// NewService creates a catalog service over the given data directory.
// Nothing is loaded until the first request.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// Rows returns the merged dataset, reloading it first if the input file set
// changed since the last load. Load failures surface one descriptive error
// and leave no partial dataset behind.
func (s *Service) Rows() ([]model.MergedRow, error) {
	current := utils.FileSetFingerprint(s.inputFiles())

	s.mu.RLock()
	if s.loaded && s.fingerprint == current {
		rows := s.rows
		s.mu.RUnlock()
		return rows, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded && s.fingerprint == current {
		return s.rows, nil
	}
	if err := s.reload(current); err != nil {
		return nil, err
	}
	return s.rows, nil
}

// Search looks up the exact VIN in the merged dataset and returns the
// matching rows grouped by year, plus the total match count. An empty VIN
// performs no search.
func (s *Service) Search(vin string) ([]model.YearGroup, int, error) {
	rows, err := s.Rows()
	if err != nil {
		return nil, 0, err
	}
	matches := FindByVIN(rows, vin)
	return GroupByYear(matches), len(matches), nil
}

// Invalidate drops the cached dataset so the next request reloads it.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.rows = nil
	s.fingerprint = ""
	fmt.Println("🧹 Catalog cache invalidated")
}

// inputFiles lists every file that feeds the catalog dataset.
func (s *Service) inputFiles() []string {
	files, _ := filepath.Glob(filepath.Join(s.dataDir, "*_statistika.csv"))
	files = append(files, filepath.Join(s.dataDir, OrgFile))
	return files
}

// reload performs the full load-normalize-merge cycle. Caller must hold the
// write lock.
func (s *Service) reload(fingerprint string) error {
	start := time.Now()
	fmt.Printf("🚀 Loading catalog dataset from %s\n", s.dataDir)

	stats, err := LoadStatistics(s.dataDir)
	if err != nil {
		store.SaveLoadEvent("catalog", 0, 0, time.Since(start), err)
		return err
	}

	orgs, err := LoadOrganizations(s.dataDir)
	if err != nil {
		store.SaveLoadEvent("catalog", 0, 0, time.Since(start), err)
		return err
	}

	merged := Merge(stats, orgs)

	s.rows = merged
	s.fingerprint = fingerprint
	s.loaded = true

	duration := time.Since(start)
	fmt.Printf("🏁 Catalog loaded: %d statistics rows, %d organizations, %d merged rows in %v\n",
		len(stats), len(orgs), len(merged), duration)
	store.SaveLoadEvent("catalog", len(s.inputFiles()), len(merged), duration, nil)
	return nil
}
