// Package sqlutil provides SQL identifier handling for icelens.
package sqlutil

import (
	"regexp"
	"strings"
)

// QuoteIdentifier quotes a Trino identifier (schema, table, column name)
// with ANSI double quotes. Embedded quote characters are escaped by doubling.
// Example: "my_table" -> "\"my_table\""
// Example: "my\"table" -> "\"my\"\"table\""
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// validIdentifierRegex matches the identifier shapes icelens accepts.
// Trino allows more, but user-supplied schema and table names are restricted
// to a strict allowlist before any SQL is assembled.
var validIdentifierRegex = regexp.MustCompile("^[A-Za-z_][A-Za-z0-9_]*$")

// IsValidIdentifier reports whether name is an acceptable schema or table
// identifier. This is a defense-in-depth measure against SQL injection:
// names that fail are rejected before query construction.
func IsValidIdentifier(name string) bool {
	return validIdentifierRegex.MatchString(name)
}

// QuoteIdentifierSafe quotes an identifier after validating it.
// Use this for identifiers coming from CLI arguments or configuration.
func QuoteIdentifierSafe(name string) (string, error) {
	if !IsValidIdentifier(name) {
		return "", &InvalidIdentifierError{Name: name}
	}
	return QuoteIdentifier(name), nil
}

// QualifyTable builds a validated, quoted schema.table reference.
func QualifyTable(schema, table string) (string, error) {
	qs, err := QuoteIdentifierSafe(schema)
	if err != nil {
		return "", err
	}
	qt, err := QuoteIdentifierSafe(table)
	if err != nil {
		return "", err
	}
	return qs + "." + qt, nil
}

// QualifyMetadataView builds a validated, quoted reference to an Iceberg
// metadata view of a table, e.g. "sales"."orders$files". The view suffix is
// supplied by the caller from a fixed enumeration and is never user input.
func QualifyMetadataView(schema, table, view string) (string, error) {
	qs, err := QuoteIdentifierSafe(schema)
	if err != nil {
		return "", err
	}
	if !IsValidIdentifier(table) {
		return "", &InvalidIdentifierError{Name: table}
	}
	return qs + "." + QuoteIdentifier(table+"$"+view), nil
}

// InvalidIdentifierError is returned when an identifier contains characters
// outside the allowlist.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return "invalid identifier: " + e.Name + " (must start with a letter or underscore and contain only alphanumeric characters and underscores)"
}
