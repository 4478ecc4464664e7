package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"vin-dashboard/internal/model"
	"vin-dashboard/pkg/utils"
)

const (
	// Column names in the yearly statistics exports.
	ColCustomerID       = "CUSTOMERID"
	ColManufacturerCode = "MANUFACTURERCODE"
	ColVIN              = "VINNUMBER"
	ColTimestamp        = "TSTAMP"

	// Organization directory workbook.
	OrgFile  = "Organizations.xlsx"
	OrgSheet = "Organizations"
	ColCode  = "CODE"
	ColName  = "NAME"
)

// ------------------- Statistics CSV loading -------------------

// LoadStatistics reads every <year>_statistika.csv in dataDir, in sorted
// filename order, normalizes customer and manufacturer codes, and tags each
// row with the YEAR derived from the filename prefix before the first "_".
// Any missing required column or unreadable file aborts the whole load.
func LoadStatistics(dataDir string) ([]model.StatisticsRecord, error) {
	pattern := filepath.Join(dataDir, "*_statistika.csv")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list statistics files: %w", err)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no statistics CSV files found in %q", dataDir)
	}

	var records []model.StatisticsRecord
	for _, path := range files {
		year := strings.SplitN(filepath.Base(path), "_", 2)[0]

		rows, err := loadStatisticsFile(path, year)
		if err != nil {
			return nil, err
		}
		records = append(records, rows...)
		fmt.Printf("📄 Statistics: %d records read from %s (year %s)\n", len(rows), filepath.Base(path), year)
	}

	return records, nil
}

func loadStatisticsFile(path, year string) ([]model.StatisticsRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statistics file %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true

	rawHeaders, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header of %s: %w", filepath.Base(path), err)
	}

	headers := make([]string, len(rawHeaders))
	hasCustomerID := false
	for i, h := range rawHeaders {
		headers[i] = utils.CleanHeader(h)
		if headers[i] == ColCustomerID {
			hasCustomerID = true
		}
	}
	if !hasCustomerID {
		return nil, fmt.Errorf("missing column %q in file %s", ColCustomerID, filepath.Base(path))
	}

	var records []model.StatisticsRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("CSV read error in %s: %w", filepath.Base(path), err)
		}

		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				fields[h] = row[i]
			}
		}

		fields[ColCustomerID] = utils.NormalizeCode(fields[ColCustomerID], 9)
		if _, ok := fields[ColManufacturerCode]; ok {
			fields[ColManufacturerCode] = utils.NormalizeCode(fields[ColManufacturerCode], 2)
		}

		records = append(records, model.StatisticsRecord{
			CustomerID:       fields[ColCustomerID],
			ManufacturerCode: fields[ColManufacturerCode],
			VIN:              fields[ColVIN],
			Timestamp:        fields[ColTimestamp],
			Year:             year,
			Fields:           fields,
		})
	}

	return records, nil
}

// ------------------- Organization directory loading -------------------

// LoadOrganizations reads the Organizations.xlsx workbook from dataDir and
// returns its rows with the CODE column normalized to 9 digits. A missing
// workbook, sheet or CODE column aborts the load.
func LoadOrganizations(dataDir string) ([]model.OrganizationRecord, error) {
	path := filepath.Join(dataDir, OrgFile)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s not found in %q", OrgFile, dataDir)
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", OrgFile, err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(OrgSheet)
	if err != nil {
		return nil, fmt.Errorf("missing sheet %q in %s", OrgSheet, OrgFile)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q in %s is empty", OrgSheet, OrgFile)
	}

	headers := make([]string, len(rows[0]))
	codeIdx := -1
	for i, h := range rows[0] {
		headers[i] = utils.CleanHeader(h)
		if headers[i] == ColCode {
			codeIdx = i
		}
	}
	if codeIdx < 0 {
		return nil, fmt.Errorf("missing column %q in %s", ColCode, OrgFile)
	}

	var orgs []model.OrganizationRecord
	for _, row := range rows[1:] {
		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				fields[h] = row[i]
			} else {
				fields[h] = ""
			}
		}

		fields[ColCode] = utils.NormalizeCode(fields[ColCode], 9)
		orgs = append(orgs, model.OrganizationRecord{
			Code:   fields[ColCode],
			Name:   fields[ColName],
			Fields: fields,
		})
	}

	fmt.Printf("📄 Organizations: %d rows read from %s\n", len(orgs), OrgFile)
	return orgs, nil
}
