package ilm

import "strings"

// License and data-representation cells are free text edited by dozens of
// hands. Counting them raw produces one bar per spelling, so both fields are
// collapsed into a small fixed label set at assembly time. Rules run in a
// fixed priority order, first match wins, unmatched falls to Other.

var licenseRules = []struct {
	label string
	any   []string // case-insensitive substrings, upper-cased here
}{
	{"CC-BY 4.0", []string{"CC-BY 4.0", "CC-BY-4.0", "CC BY 4.0"}},
	{"CC-BY-NC", []string{"CC-BY-NC", "CC BY-NC"}},
	{"CC-BY-ND", []string{"CC-BY-ND", "CC BY-ND"}},
	{"GPL/AGPL", []string{"GPL"}},
	{"From Data Owner", []string{"FROM DATA OWNER"}},
	{"Per Dataset", []string{"EACH DATASET"}},
	{"MIT", []string{"MIT"}},
	{"BSD", []string{"BSD"}},
}

var licenseLabels = func() map[string]bool {
	m := map[string]bool{"Other": true, LabelUnknown: true}
	for _, r := range licenseRules {
		m[r.label] = true
	}
	return m
}()

// SimplifyLicense collapses free-text license wording into the fixed label
// set. Already-simplified labels pass through unchanged so the mapping is
// idempotent across export/re-import cycles.
func SimplifyLicense(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return LabelUnknown
	}
	if licenseLabels[s] {
		return s
	}
	upper := strings.ToUpper(s)
	for _, r := range licenseRules {
		for _, sub := range r.any {
			if strings.Contains(upper, sub) {
				return r.label
			}
		}
	}
	return "Other"
}

var dataReprLabels = map[string]bool{
	"Georeferenced + Time-series": true,
	"Georeferenced":               true,
	"Software":                    true,
	"Non-Georeferenced":           true,
	"Blended":                     true,
	"Other":                       true,
	LabelUnknown:                  true,
}

// SimplifyDataRepr collapses the data-representation free text into the
// fixed label set. Rule order matters: the combined label is checked first,
// and plain "georeferenced" must not swallow "non-georeferenced".
func SimplifyDataRepr(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return LabelUnknown
	}
	if dataReprLabels[s] {
		return s
	}
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "georeferenced") && strings.Contains(lower, "time-series"):
		return "Georeferenced + Time-series"
	case strings.Contains(lower, "georeferenced") && !strings.Contains(lower, "non-georeferenced"):
		return "Georeferenced"
	case strings.Contains(lower, "software"):
		return "Software"
	case strings.Contains(lower, "non-georeferenced"):
		return "Non-Georeferenced"
	case strings.Contains(lower, "blended"):
		return "Blended"
	default:
		return "Other"
	}
}
