package ilm

import "testing"

func scoreLabelOf(c Cell) string {
	return CategorizeScore(ParseScore(c))
}

func TestCategorizeScore_Breakpoints(t *testing.T) {
	cases := []struct {
		in   Cell
		want string
	}{
		{NumberCell(1), LabelImplemented},
		{NumberCell(1.5), LabelImplemented}, // out-of-range still buckets
		{NumberCell(0.5), LabelPartly},
		{NumberCell(0.7), LabelPartly},
		{NumberCell(0.2), LabelPlanned},
		{NumberCell(0.49), LabelPlanned},
		{NumberCell(0), LabelNotImplemented},
		{NumberCell(0.19), LabelNotImplemented},
		{NumberCell(-1), LabelNotImplemented},
		{TextCell("1"), LabelImplemented},
		{TextCell("0.5"), LabelPartly},
		{TextCell(""), LabelUnknown},
		{TextCell("   "), LabelUnknown},
		{TextCell("not a number"), LabelUnknown},
		{MissingCell(), LabelUnknown},
	}
	for _, c := range cases {
		if got := scoreLabelOf(c.in); got != c.want {
			t.Errorf("score label of %+v = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCategorizeScore_SentinelsCaseInsensitive(t *testing.T) {
	for _, raw := range []string{
		"[request]", "[REQUEST]", "request", "Request",
		"tbd", "TBD", "to be determined", "To Be Determined",
		"n/a", "N/A", "  tbd  ",
	} {
		if got := scoreLabelOf(TextCell(raw)); got != LabelUnknown {
			t.Errorf("score label of %q = %q, want %q", raw, got, LabelUnknown)
		}
	}
}

func TestCategorizeScore_TextAndNumberAgree(t *testing.T) {
	pairs := []struct {
		text string
		num  float64
	}{
		{"0", 0}, {"0.2", 0.2}, {"0.5", 0.5}, {"1", 1},
	}
	for _, p := range pairs {
		asText := scoreLabelOf(TextCell(p.text))
		asNumber := scoreLabelOf(NumberCell(p.num))
		if asText != asNumber {
			t.Errorf("score %s: text gives %q, number gives %q", p.text, asText, asNumber)
		}
	}
}

func TestFlagLabel_TriState(t *testing.T) {
	cases := []struct {
		in   Cell
		want string
	}{
		{NumberCell(1), LabelYes},
		{NumberCell(0), LabelNo},
		{NumberCell(0.5), LabelNo},
		{TextCell("1"), LabelYes},
		{TextCell("0"), LabelNo},
		{TextCell(""), LabelNA},
		{TextCell("n/a"), LabelNA},
		{TextCell("[request]"), LabelNA},
		{MissingCell(), LabelNA},
	}
	for _, c := range cases {
		if got := flagLabel(ParseScore(c.in)); got != c.want {
			t.Errorf("flag label of %+v = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCountValue_NonNumericIsMissingNotZero(t *testing.T) {
	if _, ok := CountValue(TextCell("a few")); ok {
		t.Error("non-numeric count must not parse")
	}
	if v, ok := CountValue(TextCell(" 12 ")); !ok || v != 12 {
		t.Errorf("got (%v, %v), want (12, true)", v, ok)
	}
	if v, ok := CountValue(NumberCell(3.5)); !ok || v != 3.5 {
		t.Errorf("got (%v, %v), want (3.5, true)", v, ok)
	}
}

func TestDateValue(t *testing.T) {
	if d, ok := DateValue(TextCell("2025-03-14")); !ok || d.Format("2006-01-02") != "2025-03-14" {
		t.Errorf("ISO date: got (%v, %v)", d, ok)
	}
	if d, ok := DateValue(TextCell("14/03/2025")); !ok || d.Format("2006-01-02") != "2025-03-14" {
		t.Errorf("slash date: got (%v, %v)", d, ok)
	}
	// Serial 45000 in the 1900 date system is 2023-03-15.
	if d, ok := DateValue(NumberCell(45000)); !ok || d.Format("2006-01-02") != "2023-03-15" {
		t.Errorf("serial date: got (%v, %v)", d, ok)
	}
	if _, ok := DateValue(TextCell("sometime next year")); ok {
		t.Error("free text must not parse as a date")
	}
}

func TestDateValue_SerialSurvivesTextForm(t *testing.T) {
	// Export renders every cell as text, so a serial written as "45000" must
	// parse the same as the native number.
	fromText, okText := DateValue(TextCell("45000"))
	fromNumber, okNumber := DateValue(NumberCell(45000))
	if !okText || !okNumber || !fromText.Equal(fromNumber) {
		t.Errorf("text serial (%v, %v) != number serial (%v, %v)", fromText, okText, fromNumber, okNumber)
	}

	if _, ok := DateValue(TextCell("0.5")); ok {
		t.Error("sub-day serials must not parse")
	}
}
