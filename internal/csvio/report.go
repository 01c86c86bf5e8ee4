package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
)

// Report is the machine-readable summary of one run.
type Report struct {
	Input         string  `csv:"input"`
	Output        string  `csv:"output"`
	Column        int     `csv:"column"`
	Font          string  `csv:"font"`
	FontSize      int     `csv:"font_size"`
	MaxWidthPx    float64 `csv:"max_width_px"`
	RowsProcessed int     `csv:"rows_processed"`
	RowsModified  int     `csv:"rows_modified"`
}

// WriteReport writes the report as a one-row CSV with a header.
func WriteReport(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	cw.Flush()
	return cw.Error()
}
