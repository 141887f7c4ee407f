package ilm

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV serializes a canonical table as UTF-8 delimited text with the
// canonical field names as the header row, in schema column order. This is
// the only shape the export collaborator ever receives.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.schema.Fields))
	for i, f := range t.schema.Fields {
		header[i] = string(f)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(t.schema.Fields))
	for _, rec := range t.Records {
		for i, f := range t.schema.Fields {
			row[i] = rec[f].ExportString()
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a previously exported canonical table. Column headers are
// canonical field names; unknown columns are ignored. Re-importing an export
// yields field-for-field identical canonical values.
func ReadCSV(r io.Reader, kind DatasetKind, src Source) (*Table, error) {
	schema, err := SchemaFor(kind)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[int]Field)
	known := make(map[Field]bool, len(schema.Fields))
	for _, f := range schema.Fields {
		known[f] = true
	}
	for i, name := range header {
		if f := Field(name); known[f] {
			cols[i] = f
		}
	}

	t := &Table{Kind: kind, Source: src, schema: schema}
	for {
		raw, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rec := make(Record, len(schema.Fields))
		for i, cell := range raw {
			f, ok := cols[i]
			if !ok || schema.Derived(f) {
				continue
			}
			rec[f] = normalize(schema, f, TextCell(cell))
		}
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
