package sheets

import "errors"

// Typed failures of the fetch collaborators. The loader inspects these to
// decide between falling back to the local workbook and giving up.
var (
	ErrAuth                = errors.New("authentication rejected")
	ErrWorksheetNotFound   = errors.New("worksheet not found")
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")
	ErrMalformedFile       = errors.New("malformed source")
	ErrNotFound            = errors.New("source not found")
)
