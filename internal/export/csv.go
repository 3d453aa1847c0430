package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
)

const (
	csvDelimiter = ';'
	utf8BOM      = "\uFEFF"
)

// CSV writes suppliers to semicolon separated file readable by spreadsheet software.
type CSV struct {
	path string
}

// NewCSV returns new CSV exporter writing to file at path.
func NewCSV(path string) *CSV {
	return &CSV{
		path: path,
	}
}

// Export writes harvested suppliers to file, replacing previous content.
func (c *CSV) Export(_ context.Context, harvest *models.Harvest) error {
	return writeFile(c.path, func(w io.Writer) error {
		return WriteCSV(w, harvest.Suppliers)
	})
}

// WriteCSV writes suppliers in tabular form, preceded by UTF-8 byte order mark.
func WriteCSV(w io.Writer, suppliers []models.Supplier) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("can't write byte order mark: %w", err)
	}

	header, rows := Table(suppliers)

	writer := csv.NewWriter(w)
	writer.Comma = csvDelimiter

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("can't write csv header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("can't write csv rows: %w", err)
	}

	return nil
}

// writeFile creates file at path and writes its content with write.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can't create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("can't close file: %w", closeErr)
		}
	}()

	return write(file)
}
