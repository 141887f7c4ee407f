package stats

import (
	"testing"

	"ilm-dashboard/internal/ilm"
)

// taHeader is a minimal reconcilable TA header for building fixture tables.
var taHeader = []string{
	"Installation ID", "Project ID", "PI Gender ", "Project title",
	"Project acronym", "TA host", "PI Affiliation", "Project Stage\n(completed milestone)",
	"Start of the Visit/Access", "Number of units requested", "Number of units used",
	"Unit of access", "Number of Users", "Associated WP",
}

func taRow(projectID, gender, host, stage string) []ilm.Cell {
	return []ilm.Cell{
		ilm.TextCell("INST-001"), ilm.TextCell(projectID), ilm.TextCell(gender),
		ilm.TextCell("Title"), ilm.TextCell("PRJ"), ilm.TextCell(host),
		ilm.TextCell("ETH Zurich"), ilm.TextCell(stage),
	}
}

func makeTATable(t *testing.T, rows [][]ilm.Cell) *ilm.Table {
	t.Helper()
	table, err := ilm.Assemble(ilm.TransnationalAccess, taHeader, rows, ilm.SourceLocal)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return table
}

func TestCountBy_DescendingStableOrder(t *testing.T) {
	table := makeTATable(t, [][]ilm.Cell{
		taRow("GEOINQ-C1-TA-2024-001", "Female", "INGV Pisa", "approved"),
		taRow("GEOINQ-C1-TA-2024-002", "Male", "GFZ Potsdam", "approved"),
		taRow("GEOINQ-C1-TA-2024-003", "Male", "INGV Pisa", "approved"),
		taRow("GEOINQ-C1-TA-2024-004", "Female", "NOA Athens", "approved"),
		taRow("GEOINQ-C1-TA-2024-005", "Male", "INGV Pisa", "approved"),
	})

	got := CountBy(table, ilm.FieldTAHost)
	want := []LabelCount{
		{Label: "INGV Pisa", Count: 3},
		// GFZ and NOA tie at 1; GFZ was encountered first and must stay first.
		{Label: "GFZ Potsdam", Count: 1},
		{Label: "NOA Athens", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCountBy_UnknownIsCounted(t *testing.T) {
	table := makeTATable(t, [][]ilm.Cell{
		taRow("GEOINQ-C1-TA-2024-001", "", "INGV Pisa", "approved"),
		taRow("GEOINQ-C1-TA-2024-002", "Female", "INGV Pisa", "approved"),
	})

	got := CountBy(table, ilm.FieldPIGender)
	found := false
	for _, lc := range got {
		if lc.Label == ilm.LabelUnknown && lc.Count == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("Unknown bucket missing from %v", got)
	}
}

func TestTopN(t *testing.T) {
	counts := []LabelCount{{"a", 5}, {"b", 3}, {"c", 1}}
	if got := TopN(counts, 2); len(got) != 2 || got[1].Label != "b" {
		t.Errorf("TopN(2) = %v", got)
	}
	if got := TopN(counts, 0); len(got) != 3 {
		t.Errorf("TopN(0) must not truncate, got %v", got)
	}
	if got := TopN(counts, 10); len(got) != 3 {
		t.Errorf("TopN beyond length must not truncate, got %v", got)
	}
}

func TestSortByLabel(t *testing.T) {
	counts := []LabelCount{{"Call 3", 9}, {"Call 1", 2}, {"Call 2", 5}}
	got := SortByLabel(counts)
	for i, want := range []string{"Call 1", "Call 2", "Call 3"} {
		if got[i].Label != want {
			t.Errorf("position %d: got %q, want %q", i, got[i].Label, want)
		}
	}
}

func TestCrossTabTopK_ExcludesOutsideRows(t *testing.T) {
	// Eight distinct hosts, with the first five clearly more frequent.
	var rows [][]ilm.Cell
	hosts := []string{"H1", "H2", "H3", "H4", "H5", "H6", "H7", "H8"}
	for i, h := range hosts {
		n := 1
		if i < 5 {
			n = 3
		}
		for j := 0; j < n; j++ {
			rows = append(rows, taRow("GEOINQ-C1-TA-2024-001", "Female", h, "approved"))
		}
	}
	table := makeTATable(t, rows)

	got := CrossTabTopK(table, ilm.FieldCall, ilm.FieldTAHost, 5)
	seen := make(map[string]bool)
	for _, pc := range got {
		seen[pc.Col] = true
	}
	for _, h := range hosts[:5] {
		if !seen[h] {
			t.Errorf("top host %s missing from cross-tab", h)
		}
	}
	for _, h := range hosts[5:] {
		if seen[h] {
			t.Errorf("host %s outside top 5 must be excluded entirely", h)
		}
	}
}

func TestCrossTab_CountsPairs(t *testing.T) {
	table := makeTATable(t, [][]ilm.Cell{
		taRow("GEOINQ-C1-TA-2024-001", "Female", "INGV Pisa", "approved"),
		taRow("GEOINQ-C1-TA-2024-002", "Female", "INGV Pisa", "approved"),
		taRow("GEOINQ-C2-TA-2025-003", "Male", "INGV Pisa", "approved"),
	})

	got := CrossTab(table, ilm.FieldCall, ilm.FieldPIGender)
	if got[0].Row != "Call 1" || got[0].Col != "Female" || got[0].Count != 2 {
		t.Errorf("largest pair = %+v", got[0])
	}
	if len(got) != 2 {
		t.Errorf("got %d pairs, want 2", len(got))
	}
}

func TestDistinctKnown_SkipsUnknown(t *testing.T) {
	table := makeTATable(t, [][]ilm.Cell{
		taRow("GEOINQ-C1-TA-2024-001", "Female", "INGV Pisa", "approved"),
		taRow("GEOINQ-C2-TA-2025-002", "Female", "GFZ Potsdam", "approved"),
		taRow("no call here", "Female", "", "approved"),
	})

	if got := DistinctKnown(table, ilm.FieldTAHost); got != 2 {
		t.Errorf("hosts = %d, want 2", got)
	}
	if got := DistinctKnown(table, ilm.FieldCall); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}
