package stats

import (
	"testing"

	"ilm-dashboard/internal/ilm"
)

// vaHeader is a compact reconcilable VA header: the workbook-style
// de-duplicated positional variants plus one bare occurrence.
var vaHeader = []string{
	"Compliant with Research infrastructure (RI)",
	"Implementation status to RI \n\n[0; not implemented,\n0.2; planned,\n0.5; partly implemented,\n1; implemented]",
	"Data Representations [georeferenced/non-georeferenced/time-series/software]",
	"License",
	"[e.g. OAuth, SAML, API access token, none]",
	"[0;1]",
	"[0;1].1", "[0;1].2", "[0;1].3", "[0;1].4",
	"[0;1].5", "[0;1].6", "[0;1].7", "[0;1].8",
	"[open; restricted; embargoed]",
	"[0, not implemented; 0.2 planned; \n0.5, partly implemented; 1, implemented]",
	"Standard of metadata describing the service at RI integration level (not data)",
	"(OGC, ERDDAP, etc)",
}

func vaRow(ri string, score ilm.Cell, repr string, running ilm.Cell) []ilm.Cell {
	return []ilm.Cell{
		ilm.TextCell(ri), score, ilm.TextCell(repr), ilm.TextCell("CC-BY 4.0"),
		ilm.TextCell("none"), running,
	}
}

func makeVATable(t *testing.T, rows [][]ilm.Cell) *ilm.Table {
	t.Helper()
	table, err := ilm.Assemble(ilm.VirtualAccess, vaHeader, rows, ilm.SourceLocal)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return table
}

func TestSummarizeVAOverview(t *testing.T) {
	table := makeVATable(t, [][]ilm.Cell{
		vaRow("EPOS", ilm.NumberCell(1), "georeferenced", ilm.NumberCell(1)),
		vaRow("EPOS", ilm.NumberCell(0.5), "software", ilm.NumberCell(1)),
		vaRow("EMSO", ilm.NumberCell(1), "georeferenced", ilm.NumberCell(0)),
		vaRow("", ilm.TextCell("tbd"), "", ilm.MissingCell()),
	})

	o := SummarizeVAOverview(table)
	if o.TotalServices != 4 {
		t.Errorf("TotalServices = %d, want 4", o.TotalServices)
	}
	if o.Implemented != 2 {
		t.Errorf("Implemented = %d, want 2", o.Implemented)
	}
	if o.ServicesRunning != 2 {
		t.Errorf("ServicesRunning = %d, want 2", o.ServicesRunning)
	}
	if o.ResearchInfrastructures != 2 {
		t.Errorf("ResearchInfrastructures = %d, want 2", o.ResearchInfrastructures)
	}
}

func TestSummarizeVA_ImplementationBuckets(t *testing.T) {
	table := makeVATable(t, [][]ilm.Cell{
		vaRow("EPOS", ilm.NumberCell(1), "georeferenced", ilm.NumberCell(1)),
		vaRow("EPOS", ilm.NumberCell(1), "georeferenced", ilm.NumberCell(1)),
		vaRow("EPOS", ilm.NumberCell(0.2), "georeferenced", ilm.NumberCell(1)),
		vaRow("EPOS", ilm.TextCell("[request]"), "georeferenced", ilm.NumberCell(1)),
	})

	s := SummarizeVA(table)
	if s.Implementation[0].Label != ilm.LabelImplemented || s.Implementation[0].Count != 2 {
		t.Errorf("largest implementation bucket = %+v", s.Implementation[0])
	}
	total := 0
	for _, lc := range s.Implementation {
		total += lc.Count
	}
	if total != table.Len() {
		t.Errorf("implementation buckets sum to %d, want %d", total, table.Len())
	}
}

func TestBuildImplementationMatrix(t *testing.T) {
	table := makeVATable(t, [][]ilm.Cell{
		vaRow("EPOS", ilm.NumberCell(1), "georeferenced", ilm.NumberCell(1)),
		vaRow("EPOS", ilm.NumberCell(0), "georeferenced", ilm.NumberCell(1)),
		vaRow("EPOS", ilm.NumberCell(1), "software", ilm.NumberCell(1)),
		vaRow("EMSO", ilm.NumberCell(1), "georeferenced", ilm.NumberCell(1)),
	})

	m := BuildImplementationMatrix(table)
	if len(m.RIs) != 2 || m.RIs[0] != "EMSO" || m.RIs[1] != "EPOS" {
		t.Errorf("RIs = %v, want lexically sorted [EMSO EPOS]", m.RIs)
	}
	if len(m.Cells) != len(m.RIs)*len(m.Representations) {
		t.Errorf("got %d cells, want %d", len(m.Cells), len(m.RIs)*len(m.Representations))
	}

	for _, c := range m.Cells {
		if c.RI == "EPOS" && c.Representation == "Georeferenced" {
			if c.Total != 2 || c.Implemented != 1 {
				t.Errorf("EPOS x Georeferenced = %+v, want total 2, implemented 1", c)
			}
			return
		}
	}
	t.Error("EPOS x Georeferenced cell missing")
}
