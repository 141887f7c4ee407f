package ilm

import (
	"strconv"
	"strings"
	"time"
)

// Canonical labels produced by score categorization and flag normalization.
// Nothing else may escape the normalizer for those field kinds.
const (
	LabelImplemented    = "Implemented"
	LabelPartly         = "Partly implemented"
	LabelPlanned        = "Planned"
	LabelNotImplemented = "Not implemented"
	LabelUnknown        = "Unknown"

	LabelYes = "Yes"
	LabelNo  = "No"
	LabelNA  = "N/A"
)

// scoreSentinels are author shorthands that mean "no value yet". Compared
// case-insensitively after trimming.
var scoreSentinels = map[string]bool{
	"[request]":        true,
	"request":          true,
	"tbd":              true,
	"to be determined": true,
	"n/a":              true,
}

// ParseScore extracts a numeric completion score from a raw cell. Blank
// cells, sentinel tokens and unparsable text report ok=false rather than
// erroring; out-of-range numbers pass through untouched so categorization
// owns the bucketing.
func ParseScore(c Cell) (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Number, true
	case CellText:
		s := strings.TrimSpace(c.Text)
		if s == "" || scoreSentinels[strings.ToLower(s)] {
			return 0, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// CategorizeScore maps a completion score onto the implementation-level
// label set. Boundaries are closed below, matching the documented
// breakpoints 0, 0.2, 0.5, 1. The buckets partition every possible input,
// including out-of-range values, so the function is total.
func CategorizeScore(v float64, ok bool) string {
	switch {
	case !ok:
		return LabelUnknown
	case v >= 1.0:
		return LabelImplemented
	case v >= 0.5:
		return LabelPartly
	case v >= 0.2:
		return LabelPlanned
	default:
		return LabelNotImplemented
	}
}

// flagLabel normalizes a parsed near-binary value into the tri-state
// Yes/No/N/A. N/A is distinct from No: it means the value was never filled
// in, not that the answer is negative.
func flagLabel(v float64, ok bool) string {
	if !ok {
		return LabelNA
	}
	if v >= 1.0 {
		return LabelYes
	}
	return LabelNo
}

// CountValue parses a numeric-count cell. Non-numeric content is missing,
// never coerced to zero, so it stays excluded from sums.
func CountValue(c Cell) (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Number, true
	case CellText:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// dateLayouts covers the formats observed across the two sources.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
	"2.1.2006",
	"January 2, 2006",
}

// excelEpoch is day zero of the 1900 date system used by the workbook
// fallback when a date cell arrives as a raw serial number.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// DateValue parses a date cell from either source: text in any of the known
// layouts, or a serial number in the 1900 date system. Serials are accepted
// in text form too, because delimited export renders every cell as text and
// re-importing an export must keep the date view intact.
func DateValue(c Cell) (time.Time, bool) {
	switch c.Kind {
	case CellNumber:
		return serialDate(c.Number)
	case CellText:
		s := strings.TrimSpace(c.Text)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return serialDate(serial)
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func serialDate(serial float64) (time.Time, bool) {
	if serial < 1 {
		return time.Time{}, false
	}
	return excelEpoch.AddDate(0, 0, int(serial)), true
}
