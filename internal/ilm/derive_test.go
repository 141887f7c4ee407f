package ilm

import "testing"

func TestExtractCall(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"GEOINQ-C2-TA-2025-00042", "Call 2"},
		{"ABC-C3-X-99-007", "Call 3"},
		{"ABC-C12-X-99-007", "Call 12"},
		{"no call marker here", LabelUnknown},
		{"GEOINQ-CX-TA-2025-00042", LabelUnknown}, // non-numeric call
		{"", LabelUnknown},
	}
	for _, c := range cases {
		if got := ExtractCall(c.id); got != c.want {
			t.Errorf("ExtractCall(%q) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestExtractApplicationNumber(t *testing.T) {
	if got, ok := ExtractApplicationNumber("ABC-C3-X-99-007"); !ok || got != "007" {
		t.Errorf("got (%q, %v), want (007, true)", got, ok)
	}
	if got, ok := ExtractApplicationNumber("GEOINQ-C2-TA-2025-00042"); !ok || got != "00042" {
		t.Errorf("got (%q, %v), want (00042, true)", got, ok)
	}
	// Four segments do not qualify, even with a call marker present.
	if _, ok := ExtractApplicationNumber("ABC-C3-X-007"); ok {
		t.Error("four-segment identifier must not yield an application number")
	}
	if _, ok := ExtractApplicationNumber("malformed"); ok {
		t.Error("plain text must not yield an application number")
	}
}
