package ilm

import "errors"

var (
	// ErrSchemaKind indicates the requested dataset kind has no registered schema.
	ErrSchemaKind = errors.New("unrecognized dataset kind")

	// ErrTruncatedHeader indicates the raw header does not span the documented
	// column range of the schema, so reconciliation cannot proceed.
	ErrTruncatedHeader = errors.New("truncated header")

	// ErrSchemaMismatch indicates the position-disambiguated column group does
	// not line up with the schema. Reconciliation rejects the whole dataset,
	// it never assigns the ambiguous columns best-effort.
	ErrSchemaMismatch = errors.New("schema mismatch")
)
