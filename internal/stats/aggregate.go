package stats

import (
	"sort"

	"ilm-dashboard/internal/ilm"
)

// LabelCount is one frequency bucket of a single-field grouping.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PairCount is one bucket of a two-field cross-tabulation.
type PairCount struct {
	Row   string `json:"row"`
	Col   string `json:"col"`
	Count int    `json:"count"`
}

// CountBy groups a table by the countable label of one field. Display order
// is descending count; ties keep first-encountered order (stable sort).
// Unknown and N/A buckets are counted like any other label.
func CountBy(t *ilm.Table, f ilm.Field) []LabelCount {
	counts := make(map[string]int)
	var order []string
	for _, rec := range t.Records {
		label := t.Label(rec, f)
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}

	out := make([]LabelCount, 0, len(order))
	for _, label := range order {
		out = append(out, LabelCount{Label: label, Count: counts[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// TopN truncates a grouping to its n largest buckets.
func TopN(counts []LabelCount, n int) []LabelCount {
	if n <= 0 || n >= len(counts) {
		return counts
	}
	return counts[:n]
}

// SortByLabel reorders a grouping lexically by label, for callers that chart
// an ordinal dimension (calls, months) rather than by magnitude.
func SortByLabel(counts []LabelCount) []LabelCount {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Label < counts[j].Label
	})
	return counts
}

// CrossTab groups a table by a pair of fields. Ordering follows the same
// rule as CountBy: descending count, stable on first-encountered order.
func CrossTab(t *ilm.Table, row, col ilm.Field) []PairCount {
	return crossTab(t, row, col, nil)
}

// CrossTabTopK restricts the table to records whose col-field label is among
// the k most frequent, then cross-tabulates row against col. Records outside
// the top-k subset are excluded entirely, not merely ranked last.
func CrossTabTopK(t *ilm.Table, row, col ilm.Field, k int) []PairCount {
	top := TopN(CountBy(t, col), k)
	keep := make(map[string]bool, len(top))
	for _, lc := range top {
		keep[lc.Label] = true
	}
	return crossTab(t, row, col, keep)
}

func crossTab(t *ilm.Table, row, col ilm.Field, keep map[string]bool) []PairCount {
	type key struct{ row, col string }
	counts := make(map[key]int)
	var order []key
	for _, rec := range t.Records {
		k := key{t.Label(rec, row), t.Label(rec, col)}
		if keep != nil && !keep[k.col] {
			continue
		}
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	out := make([]PairCount, 0, len(order))
	for _, k := range order {
		out = append(out, PairCount{Row: k.row, Col: k.col, Count: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// DistinctKnown counts distinct non-Unknown labels of a field, the way the
// KPI tiles count research infrastructures, hosts and calls.
func DistinctKnown(t *ilm.Table, f ilm.Field) int {
	seen := make(map[string]bool)
	for _, rec := range t.Records {
		if label := t.Label(rec, f); label != ilm.LabelUnknown {
			seen[label] = true
		}
	}
	return len(seen)
}
