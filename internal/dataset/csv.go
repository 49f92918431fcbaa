package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"PanganPulse/internal/domain/models"
)

// LoadCSV reads a raw price CSV file and normalizes it. The first row is
// the header; extra columns are ignored by the normalizer.
func LoadCSV(path string) ([]models.PriceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(rows) == 0 {
		return []models.PriceRecord{}, nil
	}

	return Normalize(Table{Columns: rows[0], Rows: rows[1:]}), nil
}
