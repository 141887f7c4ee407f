package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"ilm-dashboard/internal/ilm"
)

// excelFetcher reads the backup workbook from disk with the same row-offset
// contract as the remote path. Cells arrive as formatted strings; the
// normalizer treats them identically to API text cells.
type excelFetcher struct {
	path string
}

// NewExcelFetcher creates the local-workbook fallback fetcher.
func NewExcelFetcher(path string) Fetcher {
	return &excelFetcher{path: path}
}

// Fetch reads one worksheet of the backup workbook.
func (f *excelFetcher) Fetch(ctx context.Context, worksheet string) (*RawSheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(f.path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, f.path)
	}

	wb, err := excelize.OpenFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrMalformedFile, f.path, err)
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("path", f.path).Msg("Failed to close workbook")
		}
	}()

	raw, err := wb.GetRows(worksheet)
	if err != nil {
		var sheetErr excelize.ErrSheetNotExist
		if errors.As(err, &sheetErr) {
			return nil, fmt.Errorf("%w: %s", ErrWorksheetNotFound, worksheet)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrMalformedFile, worksheet, err)
	}

	rows := make([][]ilm.Cell, len(raw))
	for i, r := range raw {
		row := make([]ilm.Cell, len(r))
		for j, s := range r {
			row[j] = ilm.TextCell(s)
		}
		rows[i] = row
	}

	sheet, err := sliceSheet(worksheet, rows)
	if err != nil {
		return nil, err
	}

	// GetRows trims trailing empty cells, so the header may come back
	// shorter than the true formatted width. Raw string cells keep the
	// authored labels intact, which is all reconciliation needs.
	log.Debug().Str("worksheet", worksheet).Int("rows", len(sheet.Rows)).Msg("Loaded worksheet from workbook")
	return sheet, nil
}
