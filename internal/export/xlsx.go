package export

import (
	"context"
	"fmt"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is name of the sheet with suppliers.
	SheetName = "Suppliers"

	columnWidth = 24
)

// XLSX writes suppliers to spreadsheet file.
type XLSX struct {
	path string
}

// NewXLSX returns new XLSX exporter writing to file at path.
func NewXLSX(path string) *XLSX {
	return &XLSX{
		path: path,
	}
}

// Export writes harvested suppliers in tabular form to single sheet of spreadsheet file.
func (x *XLSX) Export(_ context.Context, harvest *models.Harvest) (err error) {
	header, rows := Table(harvest.Suppliers)

	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("can't close spreadsheet: %w", closeErr)
		}
	}()

	if err := file.SetSheetName(file.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("can't rename sheet: %w", err)
	}

	for ix, row := range append([][]string{header}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, ix+1)
		if err != nil {
			return fmt.Errorf("can't get cell name: %w", err)
		}
		if err := file.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("can't write row %d: %w", ix+1, err)
		}
	}

	if len(header) > 0 {
		lastCol, err := excelize.ColumnNumberToName(len(header))
		if err != nil {
			return fmt.Errorf("can't get column name: %w", err)
		}
		if err := file.SetColWidth(SheetName, "A", lastCol, columnWidth); err != nil {
			return fmt.Errorf("can't set columns width: %w", err)
		}
	}

	if err := file.SaveAs(x.path); err != nil {
		return fmt.Errorf("can't save spreadsheet: %w", err)
	}

	return nil
}
