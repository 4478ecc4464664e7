package querylog

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"vin-dashboard/internal/model"
)

// ExportColumns is the fixed column order of the spreadsheet export.
var ExportColumns = []string{"user_id", "organization_id", "organization_name", "query_vin", "time_stamp"}

// ------------------- Spreadsheet export -------------------

// BuildWorkbook renders the deduplicated export rows as an XLSX workbook,
// one header row plus one row per record, produced entirely in memory and
// returned as a byte buffer for the caller to ship.
func BuildWorkbook(rows []model.QueryLogRecord) ([]byte, error) {
	wb := excelize.NewFile()
	defer wb.Close()

	sheet := wb.GetSheetName(0)

	for i, col := range ExportColumns {
		axis, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build export header: %w", err)
		}
		if err := wb.SetCellValue(sheet, axis, col); err != nil {
			return nil, fmt.Errorf("failed to write export header: %w", err)
		}
	}

	for r, rec := range rows {
		values := []string{rec.UserID, rec.OrganizationID, rec.OrganizationName, rec.VIN, rec.Timestamp}
		for c, value := range values {
			axis, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build export row %d: %w", r+1, err)
			}
			if err := wb.SetCellValue(sheet, axis, value); err != nil {
				return nil, fmt.Errorf("failed to write export row %d: %w", r+1, err)
			}
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export workbook: %w", err)
	}

	fmt.Printf("💾 Export: %d records written to workbook (%d bytes)\n", len(rows), buf.Len())
	return buf.Bytes(), nil
}
