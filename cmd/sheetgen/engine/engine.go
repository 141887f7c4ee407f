// Package engine generates a demo ILM workbook that mirrors the authored
// layout of the production spreadsheets: three rows of titles, the verbatim
// label row at row 4 (repeated "[0;1]" tokens included), an annotation row,
// and data starting at row 6.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/xuri/excelize/v2"
)

type GeneratorConfig struct {
	VACount int
	TACount int
	Seed    int64
}

const (
	vaSheetName = "ILM_Connector"
	taSheetName = "ILM_Connector_TA"
)

// vaLabels is the authored VA header in physical column order. The "[0;1]"
// token recurs nine times and is disambiguated by position downstream.
var vaLabels = []string{
	"Contact person",
	"Email",
	"Affiliation",
	"Service/Installation Name",
	"Compliant with Research infrastructure (RI)",
	"Implementation status to RI \n\n[0; not implemented,\n0.2; planned,\n0.5; partly implemented,\n1; implemented]",
	"Installation ID",
	"Service ID",
	"WP",
	"Data Representations [georeferenced/non-georeferenced/time-series/software]",
	"Service Response Formats",
	"License",
	"Standard of metadata describing the service at RI integration level (not data)",
	"Installation URL",
	"Scientific domain/category",
	"[%]",
	"[0;1]",
	"URL of the service endpoint",
	"(OGC, ERDDAP, etc)",
	"[0;1]",
	"[0;1]",
	"percentage",
	"[0;1]",
	"[0;1]",
	"[0, not implemented; 0.2 planned; \n0.5, partly implemented; 1, implemented]",
	"URL",
	"[0;1]",
	"[0;1]",
	"[0;1]",
	"[e.g. OAuth, SAML, API access token, none]",
	"[open; restricted; embargoed]",
	"[0;1]",
	"[1-9]",
}

var taLabels = []string{
	"Installation ID",
	"Project ID",
	"PI Gender ",
	"Project title",
	"Project acronym",
	"TA host",
	"PI Affiliation",
	"Project Stage\n(completed milestone)",
	"Stage updated on",
	"Comments to the stage\n(optional)",
	"Start of the Visit/Access",
	"End of the Visit/Access",
	"Unit of access",
	"Number of units requested",
	"Number of Users",
	"Number of units used",
	"Short description of the activity",
	"Expected assets as outcomes",
	"Delivered assets as outcomes",
	"Metadata of the outcome",
	"Level of access",
	"Associated WP",
	"Associated VA",
	"Associated RI",
	"Expected strategy of integration",
	"Service provider contact ",
}

var (
	ris       = []string{"EPOS", "EMSO", "ECCSEL", "ARISE", "EPOS-GNSS"}
	reprs     = []string{"georeferenced", "non-georeferenced", "time-series", "software", "georeferenced, time-series"}
	licenses  = []string{"CC-BY 4.0", "CC-BY-NC 4.0", "MIT", "GPLv3", "obtained from data owner", "[request]"}
	metadata  = []string{"ISO 19115", "DataCite", "Dublin Core", "EPOS-DCAT-AP", "tbd"}
	apis      = []string{"OGC WMS", "OGC WFS", "ERDDAP", "REST", "n/a"}
	auth      = []string{"none", "OAuth", "API access token", "SAML"}
	policies  = []string{"open", "restricted", "embargoed"}
	scores    = []string{"0", "0.2", "0.5", "1", "[request]", "tbd", ""}
	flags     = []string{"0", "1", "n/a", ""}
	stages    = []string{"application submitted", "application approved", "visit scheduled", "visit completed", "units exhausted"}
	genders   = []string{"Male", "Female", "Prefer not to say"}
	hosts     = []string{"INGV Pisa", "GFZ Potsdam", "NOA Athens", "KNMI De Bilt", "IPGP Paris", "BGS Edinburgh", "ICGC Barcelona", "UiB Bergen"}
	units     = []string{"days on site", "beam hours", "CPU hours", "sample analyses"}
	countries = []string{"University of Lisbon", "ETH Zurich", "Sorbonne", "TU Delft", "Uni Helsinki"}
)

func pick(r *rand.Rand, options []string) string {
	return options[r.Intn(len(options))]
}

// Generate writes the demo workbook to path.
func Generate(cfg GeneratorConfig, path string) error {
	r := rand.New(rand.NewSource(cfg.Seed))

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", vaSheetName)
	if _, err := f.NewSheet(taSheetName); err != nil {
		return err
	}

	if err := writeSheet(f, vaSheetName, vaLabels, vaRows(r, cfg.VACount)); err != nil {
		return err
	}
	if err := writeSheet(f, taSheetName, taLabels, taRows(r, cfg.TACount)); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// writeSheet lays out the fixed workbook geometry: titles on rows 1-3, the
// label row on row 4, an annotation row on row 5, data from row 6.
func writeSheet(f *excelize.File, sheet string, labels []string, rows [][]interface{}) error {
	if err := f.SetCellValue(sheet, "A1", "Geo-INQUIRE Installation Lifecycle Monitoring"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A2", sheet); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A3", "Demo data, regenerate with sheetgen"); err != nil {
		return err
	}

	header := make([]interface{}, len(labels))
	for i, l := range labels {
		header[i] = l
	}
	if err := f.SetSheetRow(sheet, "A4", &header); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A5", "do not edit the row above"); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, 6+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func vaRows(r *rand.Rand, count int) [][]interface{} {
	rows := make([][]interface{}, 0, count)
	for i := 0; i < count; i++ {
		ri := pick(r, ris)
		rows = append(rows, []interface{}{
			fmt.Sprintf("Contact %d", i+1),
			fmt.Sprintf("contact%d@example.org", i+1),
			pick(r, countries),
			fmt.Sprintf("Service %d", i+1),
			ri,
			pick(r, scores),
			fmt.Sprintf("INST-%03d", i+1),
			fmt.Sprintf("SVC-%03d", i+1),
			fmt.Sprintf("WP%d", 3+r.Intn(5)),
			pick(r, reprs),
			"JSON, CSV",
			pick(r, licenses),
			pick(r, metadata),
			fmt.Sprintf("https://%s.example.org/inst/%d", ri, i+1),
			"Seismology",
			r.Intn(101),
			pick(r, flags), // service running
			fmt.Sprintf("https://%s.example.org/api/%d", ri, i+1),
			pick(r, apis),
			pick(r, flags), // parametrization
			pick(r, flags), // provides data
			90 + r.Intn(11),
			pick(r, flags), // license exists
			pick(r, flags), // fully described
			pick(r, scores),
			fmt.Sprintf("https://%s.example.org/docs/%d", ri, i+1),
			pick(r, flags), // QP documentation
			pick(r, flags), // data quality
			pick(r, flags), // payloads
			pick(r, auth),
			pick(r, policies),
			pick(r, flags), // converter plugin
			1 + r.Intn(9),
		})
	}
	return rows
}

func taRows(r *rand.Rand, count int) [][]interface{} {
	rows := make([][]interface{}, 0, count)
	for i := 0; i < count; i++ {
		call := 1 + r.Intn(3)
		host := pick(r, hosts)
		requested := 5 + r.Intn(20)
		rows = append(rows, []interface{}{
			fmt.Sprintf("INST-%03d", 1+r.Intn(60)),
			fmt.Sprintf("GEOINQ-C%d-TA-%d-%05d", call, 2023+call, i+1),
			pick(r, genders),
			fmt.Sprintf("Project title %d", i+1),
			fmt.Sprintf("PRJ%d", i+1),
			host,
			pick(r, countries),
			pick(r, stages),
			fmt.Sprintf("2025-%02d-%02d", 1+r.Intn(12), 1+r.Intn(28)),
			"",
			fmt.Sprintf("2025-%02d-01", 1+r.Intn(12)),
			fmt.Sprintf("2025-%02d-15", 1+r.Intn(12)),
			pick(r, units),
			requested,
			1 + r.Intn(4),
			r.Intn(requested + 1),
			"Field campaign and data processing.",
			"Datasets and a short report.",
			"",
			"",
			"on-site",
			fmt.Sprintf("WP%d", 3+r.Intn(5)),
			fmt.Sprintf("VA%d", 1+r.Intn(9)),
			pick(r, ris),
			"Data deposited in the RI archive.",
			fmt.Sprintf("host%d@example.org", 1+r.Intn(8)),
		})
	}
	return rows
}
