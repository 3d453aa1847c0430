package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
)

const jsonIndent = "    "

// JSON writes suppliers to json file as array of records.
type JSON struct {
	path string
}

// NewJSON returns new JSON exporter writing to file at path.
func NewJSON(path string) *JSON {
	return &JSON{
		path: path,
	}
}

// Export writes harvested suppliers to file, replacing previous content.
func (j *JSON) Export(_ context.Context, harvest *models.Harvest) error {
	return writeFile(j.path, func(w io.Writer) error {
		return WriteJSON(w, harvest.Suppliers)
	})
}

// WriteJSON writes suppliers in hierarchical form: indented array of records with phone and email lists.
// Non-ASCII characters are written as is.
func WriteJSON(w io.Writer, suppliers []models.Supplier) error {
	records := make([]record, 0, len(suppliers))
	for _, supplier := range suppliers {
		records = append(records, record(supplier))
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)

	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("can't encode suppliers: %w", err)
	}

	return nil
}

// MarshalSupplier returns compact hierarchical form of single supplier.
func MarshalSupplier(supplier models.Supplier) ([]byte, error) {
	return record(supplier).MarshalJSON()
}

// record is supplier with fixed order of json keys.
type record models.Supplier

// MarshalJSON implements json.Marshaler.
func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for ix, f := range supplierFields(models.Supplier(r)) {
		if ix > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(f.key); err != nil {
			return nil, fmt.Errorf("can't encode key %s: %w", f.key, err)
		}
		buf.WriteByte(':')
		if err := enc.Encode(f.value); err != nil {
			return nil, fmt.Errorf("can't encode value of %s: %w", f.key, err)
		}
	}
	buf.WriteByte('}')

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("can't compact record: %w", err)
	}

	return compacted.Bytes(), nil
}
