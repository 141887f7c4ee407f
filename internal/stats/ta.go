package stats

import (
	"sort"
	"strings"

	"ilm-dashboard/internal/ilm"
)

// TAOverview holds the KPI tile numbers for the Transnational Access views.
type TAOverview struct {
	TotalApplications int `json:"total_applications"`
	Hosts             int `json:"hosts"`
	Completed         int `json:"completed"`
	Calls             int `json:"calls"`
}

// UnitsSample compares requested against used access units for one
// application; only rows where both values parsed numerically qualify.
type UnitsSample struct {
	Application string  `json:"application"`
	Requested   float64 `json:"requested"`
	Used        float64 `json:"used"`
}

// TASummary carries every aggregated table the Transnational Access views
// render, including the call-based cross-tabulations.
type TASummary struct {
	Stages        []LabelCount  `json:"stages"`
	Calls         []LabelCount  `json:"calls"`
	Gender        []LabelCount  `json:"gender"`
	Hosts         []LabelCount  `json:"hosts"`
	AccessUnits   []LabelCount  `json:"access_units"`
	UserCounts    []LabelCount  `json:"user_counts"`
	CallGender    []PairCount   `json:"call_gender"`
	CallTopHosts  []PairCount   `json:"call_top_hosts"`
	Affiliations  []LabelCount  `json:"affiliations"`
	WorkPackages  []LabelCount  `json:"work_packages"`
	MonthlyVisits []LabelCount  `json:"monthly_visits"`
	Units         []UnitsSample `json:"units"`
}

// SummarizeTAOverview computes the TA KPI numbers. Completed means the
// project stage mentions an exhausted visit, matched case-insensitively.
func SummarizeTAOverview(t *ilm.Table) TAOverview {
	o := TAOverview{TotalApplications: t.Len()}
	for _, rec := range t.Records {
		stage := t.Label(rec, ilm.FieldProjectStage)
		if stage != ilm.LabelUnknown && strings.Contains(strings.ToLower(stage), "exhausted") {
			o.Completed++
		}
	}
	o.Hosts = DistinctKnown(t, ilm.FieldTAHost)
	o.Calls = DistinctKnown(t, ilm.FieldCall)
	return o
}

// SummarizeTA computes all Transnational Access chart feeds. Calls and the
// monthly series sort by label because they chart ordinal dimensions; the
// host cross-tab is restricted to the five most frequent hosts before
// grouping so the combinatorics stay readable.
func SummarizeTA(t *ilm.Table) TASummary {
	return TASummary{
		Stages:        CountBy(t, ilm.FieldProjectStage),
		Calls:         SortByLabel(CountBy(t, ilm.FieldCall)),
		Gender:        CountBy(t, ilm.FieldPIGender),
		Hosts:         TopN(CountBy(t, ilm.FieldTAHost), 10),
		AccessUnits:   CountBy(t, ilm.FieldUnitOfAccess),
		UserCounts:    TopN(CountBy(t, ilm.FieldNumberOfUsers), 8),
		CallGender:    CrossTab(t, ilm.FieldCall, ilm.FieldPIGender),
		CallTopHosts:  CrossTabTopK(t, ilm.FieldCall, ilm.FieldTAHost, 5),
		Affiliations:  TopN(CountBy(t, ilm.FieldPIAffiliation), 10),
		WorkPackages:  CountBy(t, ilm.FieldAssociatedWP),
		MonthlyVisits: MonthlyVisitCounts(t, 12),
		Units:         UnitsComparison(t, 15),
	}
}

// MonthlyVisitCounts buckets visit start dates by calendar month (YYYY-MM),
// ascending, truncated to the first maxMonths buckets.
func MonthlyVisitCounts(t *ilm.Table, maxMonths int) []LabelCount {
	counts := make(map[string]int)
	for _, rec := range t.Records {
		when, ok := t.Time(rec, ilm.FieldVisitStart)
		if !ok {
			continue
		}
		counts[when.Format("2006-01")]++
	}
	out := make([]LabelCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, LabelCount{Label: month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	if maxMonths > 0 && len(out) > maxMonths {
		out = out[:maxMonths]
	}
	return out
}

// UnitsComparison collects the first limit applications where both the
// requested and used unit counts parsed numerically. Non-numeric cells stay
// excluded, they are never coerced to zero.
func UnitsComparison(t *ilm.Table, limit int) []UnitsSample {
	var out []UnitsSample
	for _, rec := range t.Records {
		req, okReq := t.Number(rec, ilm.FieldUnitsRequested)
		used, okUsed := t.Number(rec, ilm.FieldUnitsUsed)
		if !okReq || !okUsed {
			continue
		}
		out = append(out, UnitsSample{
			Application: t.Label(rec, ilm.FieldProjectID),
			Requested:   req,
			Used:        used,
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
