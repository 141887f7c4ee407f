package ilm

import (
	"regexp"
	"strings"
)

// Project identifiers are dash-delimited composites of the form
// <project>-C<call>-...-<application>. The grouping code and the sequence
// number are the only parts the dashboard needs.

var callPattern = regexp.MustCompile(`-C(\d+)-`)

// ExtractCall derives the call grouping label from a composite project
// identifier. Total: malformed input yields "Unknown", never an error.
func ExtractCall(projectID string) string {
	m := callPattern.FindStringSubmatch(projectID)
	if m == nil {
		return LabelUnknown
	}
	return "Call " + m[1]
}

// ExtractApplicationNumber derives the application sequence number, the last
// dash-delimited segment, from a composite project identifier. Identifiers
// with fewer than five segments carry no application number.
func ExtractApplicationNumber(projectID string) (string, bool) {
	parts := strings.Split(projectID, "-")
	if len(parts) < 5 {
		return "", false
	}
	return parts[len(parts)-1], true
}
