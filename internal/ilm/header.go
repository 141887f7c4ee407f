package ilm

import (
	"fmt"
	"strconv"
)

// ColumnBinding ties one raw header column to a canonical field.
type ColumnBinding struct {
	Index    int
	RawLabel string
	Field    Field
}

// HeaderMap is the result of reconciling one raw header against a schema.
// Dropped lists the raw labels that did not map to any canonical field
// (free-text comment columns and the like); byte-identical dropped labels
// carry a numeric suffix so the list never collides.
type HeaderMap struct {
	Kind     DatasetKind
	Bindings []ColumnBinding
	Dropped  []string
}

// Reconcile maps a raw, human-authored header onto the canonical schema for
// the given dataset kind.
//
// Matching runs in three phases:
//
//  1. Exact match: labels are compared verbatim, embedded newlines and
//     bracket-delimited units included. The match table carries every
//     authored spelling observed across both sources.
//  2. Position disambiguation: occurrences of the repeated placeholder label
//     bind to the schema's positional field list in column order. If the
//     occurrence count does not line up with the fields still unbound after
//     phase 1, the whole header is rejected, never best-effort assigned.
//  3. Duplicate suffixing: remaining byte-identical unmapped labels get a
//     numeric suffix appended to all but the first.
func Reconcile(kind DatasetKind, header []string) (*HeaderMap, error) {
	schema, err := SchemaFor(kind)
	if err != nil {
		return nil, err
	}
	if len(header) < schema.minColumns {
		return nil, fmt.Errorf("%w: %s header has %d columns, need at least %d",
			ErrTruncatedHeader, kind, len(header), schema.minColumns)
	}

	hm := &HeaderMap{Kind: kind}
	bound := make(map[Field]bool)
	var placeholders []int // column indices of the positional label
	var unmapped []int

	for i, label := range header {
		if schema.positionalLabel != "" && label == schema.positionalLabel {
			placeholders = append(placeholders, i)
			continue
		}
		f, ok := schema.exact[label]
		if !ok || bound[f] {
			unmapped = append(unmapped, i)
			continue
		}
		bound[f] = true
		hm.Bindings = append(hm.Bindings, ColumnBinding{Index: i, RawLabel: label, Field: f})
	}

	// Phase 2: bind the Nth placeholder occurrence to the Nth positional
	// field that phase 1 left unbound. A count mismatch means the upstream
	// sheet reordered or dropped columns inside the ambiguous group.
	if schema.positionalLabel != "" {
		var open []Field
		for _, f := range schema.positionalFields {
			if !bound[f] {
				open = append(open, f)
			}
		}
		if len(placeholders) != len(open) {
			return nil, fmt.Errorf("%w: %d %q columns for %d unbound positional fields",
				ErrSchemaMismatch, len(placeholders), schema.positionalLabel, len(open))
		}
		for n, idx := range placeholders {
			f := open[n]
			bound[f] = true
			hm.Bindings = append(hm.Bindings, ColumnBinding{Index: idx, RawLabel: schema.positionalLabel, Field: f})
		}
	}

	// Phase 3: suffix duplicate unmapped labels.
	seen := make(map[string]int)
	for _, idx := range unmapped {
		label := header[idx]
		if n := seen[label]; n > 0 {
			hm.Dropped = append(hm.Dropped, label+"_"+strconv.Itoa(n))
		} else {
			hm.Dropped = append(hm.Dropped, label)
		}
		seen[label]++
	}

	return hm, nil
}
