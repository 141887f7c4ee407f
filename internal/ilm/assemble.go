package ilm

import (
	"strconv"
	"time"
)

// Value is one normalized cell inside a canonical record. Raw keeps the
// trimmed source text for export; the typed views are filled according to
// the field's declared kind. A missing value is explicit, never an absent
// map key.
type Value struct {
	Raw       string
	Number    float64
	HasNumber bool
	When      time.Time
	HasWhen   bool
	Missing   bool
}

func missingValue() Value {
	return Value{Missing: true}
}

func textValue(s string) Value {
	if s == "" {
		return missingValue()
	}
	return Value{Raw: s}
}

// ExportString renders the value for delimited export.
func (v Value) ExportString() string {
	if v.Missing {
		return ""
	}
	if v.Raw != "" {
		return v.Raw
	}
	if v.HasNumber {
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	}
	return ""
}

// Record maps every canonical field of its schema to a value. Records are
// frozen once assembly returns; derived structures are always new values.
type Record map[Field]Value

// Table is an ordered canonical dataset with provenance.
type Table struct {
	Kind    DatasetKind
	Source  Source
	Records []Record

	schema *Schema
}

// Schema returns the canonical schema the table was assembled against.
func (t *Table) Schema() *Schema {
	return t.schema
}

// Len reports the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// Label returns the countable categorical label for a field of a record,
// dispatching on the field's declared kind. Unknown and N/A are ordinary
// labels here, aggregation never drops them.
func (t *Table) Label(r Record, f Field) string {
	v := r[f]
	switch t.schema.KindOf(f) {
	case KindScore:
		return CategorizeScore(v.Number, v.HasNumber)
	case KindFlag:
		return flagLabel(v.Number, v.HasNumber)
	default:
		if v.Missing || v.Raw == "" {
			return LabelUnknown
		}
		return v.Raw
	}
}

// Number returns the numeric view of a field, ok=false when the source cell
// was blank, sentinel or non-numeric.
func (t *Table) Number(r Record, f Field) (float64, bool) {
	v := r[f]
	return v.Number, v.HasNumber
}

// Time returns the date view of a field.
func (t *Table) Time(r Record, f Field) (time.Time, bool) {
	v := r[f]
	return v.When, v.HasWhen
}

// EmptyTable returns a table with no records for a kind, used when a source
// is rejected wholesale and the dashboard degrades to "no data available".
func EmptyTable(kind DatasetKind, src Source) (*Table, error) {
	schema, err := SchemaFor(kind)
	if err != nil {
		return nil, err
	}
	return &Table{Kind: kind, Source: src, schema: schema}, nil
}

// Assemble reconciles a raw header and normalizes raw rows into a canonical
// table. The transform is pure: a reconciliation failure propagates and no
// table is produced, while per-cell problems are absorbed into Unknown/N/A
// values so one malformed row never blocks the rest.
func Assemble(kind DatasetKind, header []string, rows [][]Cell, src Source) (*Table, error) {
	hm, err := Reconcile(kind, header)
	if err != nil {
		return nil, err
	}
	schema, err := SchemaFor(kind)
	if err != nil {
		return nil, err
	}

	t := &Table{Kind: kind, Source: src, schema: schema, Records: make([]Record, 0, len(rows))}
	for _, row := range rows {
		rec := make(Record, len(schema.Fields))
		for _, b := range hm.Bindings {
			cell := MissingCell()
			if b.Index < len(row) {
				cell = row[b.Index]
			}
			rec[b.Field] = normalize(schema, b.Field, cell)
		}
		// Every record carries the full field set.
		for _, f := range schema.Fields {
			if _, ok := rec[f]; !ok && !schema.Derived(f) {
				rec[f] = missingValue()
			}
		}
		derive(schema, rec)
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

// normalize applies the declared field kind to one raw cell.
func normalize(schema *Schema, f Field, c Cell) Value {
	switch schema.KindOf(f) {
	case KindScore, KindFlag:
		raw := c.String()
		if raw == "" {
			return missingValue()
		}
		v := Value{Raw: raw}
		v.Number, v.HasNumber = ParseScore(c)
		return v
	case KindCount:
		raw := c.String()
		if raw == "" {
			return missingValue()
		}
		v := Value{Raw: raw}
		v.Number, v.HasNumber = CountValue(c)
		return v
	case KindDate:
		raw := c.String()
		if raw == "" {
			return missingValue()
		}
		v := Value{Raw: raw}
		v.When, v.HasWhen = DateValue(c)
		return v
	case KindCategory:
		raw := c.String()
		switch f {
		case FieldLicense:
			if raw == "" {
				return missingValue()
			}
			return textValue(SimplifyLicense(raw))
		case FieldDataRepr:
			if raw == "" {
				return missingValue()
			}
			return textValue(SimplifyDataRepr(raw))
		default:
			return textValue(raw)
		}
	default:
		return textValue(c.String())
	}
}

// derive fills the schema's derived fields from the composite identifier.
// Total by construction: malformed identifiers yield documented defaults.
func derive(schema *Schema, rec Record) {
	if !schema.Derived(FieldCall) {
		return
	}
	id := rec[FieldProjectID]
	if id.Missing {
		rec[FieldCall] = missingValue()
		rec[FieldApplicationNumber] = missingValue()
		return
	}
	rec[FieldCall] = textValue(ExtractCall(id.Raw))
	if app, ok := ExtractApplicationNumber(id.Raw); ok {
		rec[FieldApplicationNumber] = textValue(app)
	} else {
		rec[FieldApplicationNumber] = missingValue()
	}
}
