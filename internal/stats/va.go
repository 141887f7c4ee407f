package stats

import (
	"sort"

	"ilm-dashboard/internal/ilm"
)

// VAOverview holds the KPI tile numbers for the Virtual Access dashboard.
type VAOverview struct {
	TotalServices           int `json:"total_services"`
	Implemented             int `json:"implemented"`
	ServicesRunning         int `json:"services_running"`
	ResearchInfrastructures int `json:"research_infrastructures"`
}

// VASummary carries every aggregated table the Virtual Access views render.
type VASummary struct {
	Implementation          []LabelCount `json:"implementation"`
	ServiceRunning          []LabelCount `json:"service_running"`
	Parametrization         []LabelCount `json:"parametrization"`
	FullyDescribed          []LabelCount `json:"fully_described"`
	Documentation           []LabelCount `json:"documentation"`
	Payloads                []LabelCount `json:"payloads"`
	Auth                    []LabelCount `json:"auth"`
	DataPolicy              []LabelCount `json:"data_policy"`
	ConverterPlugin         []LabelCount `json:"converter_plugin"`
	ResearchInfrastructures []LabelCount `json:"research_infrastructures"`
	DataRepresentations     []LabelCount `json:"data_representations"`
	Licenses                []LabelCount `json:"licenses"`
	MetadataStandards       []LabelCount `json:"metadata_standards"`
	APIStandards            []LabelCount `json:"api_standards"`
}

// SummarizeVAOverview computes the VA KPI numbers.
func SummarizeVAOverview(t *ilm.Table) VAOverview {
	o := VAOverview{TotalServices: t.Len()}
	for _, rec := range t.Records {
		if t.Label(rec, ilm.FieldImplementation) == ilm.LabelImplemented {
			o.Implemented++
		}
		if t.Label(rec, ilm.FieldServiceRunning) == ilm.LabelYes {
			o.ServicesRunning++
		}
	}
	o.ResearchInfrastructures = DistinctKnown(t, ilm.FieldCompliantRI)
	return o
}

// SummarizeVA computes all Virtual Access chart feeds from a canonical table.
// Top-N widths follow the rendered charts.
func SummarizeVA(t *ilm.Table) VASummary {
	return VASummary{
		Implementation:          CountBy(t, ilm.FieldImplementation),
		ServiceRunning:          CountBy(t, ilm.FieldServiceRunning),
		Parametrization:         CountBy(t, ilm.FieldParametrization),
		FullyDescribed:          CountBy(t, ilm.FieldFullyDescribed),
		Documentation:           CountBy(t, ilm.FieldDocumentation),
		Payloads:                CountBy(t, ilm.FieldPayloads),
		Auth:                    TopN(CountBy(t, ilm.FieldAuthMethod), 5),
		DataPolicy:              CountBy(t, ilm.FieldDataPolicy),
		ConverterPlugin:         CountBy(t, ilm.FieldConverterPlugin),
		ResearchInfrastructures: CountBy(t, ilm.FieldCompliantRI),
		DataRepresentations:     TopN(CountBy(t, ilm.FieldDataRepr), 8),
		Licenses:                TopN(CountBy(t, ilm.FieldLicense), 8),
		MetadataStandards:       TopN(CountBy(t, ilm.FieldMetadataStandard), 10),
		APIStandards:            TopN(CountBy(t, ilm.FieldAPIStandard), 8),
	}
}

// MatrixCell is one cell of the implementation matrix heatmap.
type MatrixCell struct {
	RI             string `json:"ri"`
	Representation string `json:"representation"`
	Total          int    `json:"total"`
	Implemented    int    `json:"implemented"`
}

// ImplementationMatrix crosses research infrastructures against data
// representations, counting total and Implemented services per cell.
type ImplementationMatrix struct {
	RIs             []string     `json:"ris"`
	Representations []string     `json:"representations"`
	Cells           []MatrixCell `json:"cells"`
}

// BuildImplementationMatrix aggregates the heatmap grid. Rows are the known
// research infrastructures sorted lexically; columns the six most frequent
// data representations, also sorted lexically for a stable axis.
func BuildImplementationMatrix(t *ilm.Table) ImplementationMatrix {
	riSet := make(map[string]bool)
	for _, rec := range t.Records {
		if ri := t.Label(rec, ilm.FieldCompliantRI); ri != ilm.LabelUnknown {
			riSet[ri] = true
		}
	}
	ris := make([]string, 0, len(riSet))
	for ri := range riSet {
		ris = append(ris, ri)
	}
	sort.Strings(ris)

	top := TopN(CountBy(t, ilm.FieldDataRepr), 6)
	reprs := make([]string, 0, len(top))
	for _, lc := range top {
		if lc.Label != ilm.LabelUnknown {
			reprs = append(reprs, lc.Label)
		}
	}
	sort.Strings(reprs)

	m := ImplementationMatrix{RIs: ris, Representations: reprs}
	for _, ri := range ris {
		for _, repr := range reprs {
			cell := MatrixCell{RI: ri, Representation: repr}
			for _, rec := range t.Records {
				if t.Label(rec, ilm.FieldCompliantRI) != ri || t.Label(rec, ilm.FieldDataRepr) != repr {
					continue
				}
				cell.Total++
				if t.Label(rec, ilm.FieldImplementation) == ilm.LabelImplemented {
					cell.Implemented++
				}
			}
			m.Cells = append(m.Cells, cell)
		}
	}
	return m
}
