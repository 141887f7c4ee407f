// Package sheets fetches raw worksheet data for the dashboard. Two
// implementations exist: the remote values API (primary) and a local Excel
// workbook (fallback). Both honor the same layout contract: the header is
// the 4th sheet row, one unit-annotation row follows it, and data starts at
// the 6th row.
package sheets

import (
	"context"
	"time"

	"ilm-dashboard/internal/ilm"
)

const (
	// headerRow and dataRow are zero-based sheet row indices of the layout
	// contract shared by both sources.
	headerRow = 3
	dataRow   = 5
)

// RawSheet is one worksheet's un-normalized content: the verbatim header
// labels and the data rows below the annotation row.
type RawSheet struct {
	Header []string
	Rows   [][]ilm.Cell
}

// Fetcher retrieves one worksheet by name.
type Fetcher interface {
	Fetch(ctx context.Context, worksheet string) (*RawSheet, error)
}

// Config holds connection settings for the remote values API.
type Config struct {
	BaseURL       string
	SpreadsheetID string
	Token         string
	Timeout       time.Duration
}

// NewClient creates a remote values-API fetcher from the configuration.
func NewClient(cfg Config) Fetcher {
	return newAPIClient(cfg)
}
