package ilm

import (
	"strconv"
	"strings"
)

// CellKind discriminates the raw cell union. Sources disagree about types:
// the remote API hands back strings or native numbers depending on the render
// option, the local workbook hands back formatted strings with genuinely
// absent cells. Normalization pattern-matches on the kind instead of coercing.
type CellKind int

const (
	CellMissing CellKind = iota
	CellText
	CellNumber
)

// Cell is a single raw spreadsheet value before normalization.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell wraps a raw string. Whitespace-only content counts as missing.
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{Kind: CellMissing}
	}
	return Cell{Kind: CellText, Text: s}
}

// NumberCell wraps a native numeric value.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// MissingCell represents an absent or blank cell.
func MissingCell() Cell {
	return Cell{Kind: CellMissing}
}

// String renders the cell the way it would appear in a delimited export.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return strings.TrimSpace(c.Text)
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'g', -1, 64)
	default:
		return ""
	}
}
