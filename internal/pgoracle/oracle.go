// Package pgoracle is a taxamatch.Oracle backed by PostgreSQL, using the
// pg_trgm extension for trigram similarity and fuzzystrmatch for Soundex
// and Double Metaphone codes computed server-side.
package pgoracle

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/taxamatch/taxamatch"
)

// Oracle is a taxamatch.Oracle over a single lexicon table/column pair in
// PostgreSQL. It holds a *sql.DB rather than a single connection, so
// concurrent Match calls share the pool rather than serializing on it.
type Oracle struct {
	db     *sql.DB
	table  string
	column string
}

// New returns an Oracle querying column in table through db. Both table
// and column are interpolated into SQL text (never placed in a bind
// parameter, since drivers only parameterize values); callers must pass
// trusted, schema-derived identifiers, never raw user input.
func New(db *sql.DB, table, column string) (*Oracle, error) {
	if db == nil {
		return nil, fmt.Errorf("pgoracle: nil *sql.DB")
	}
	if !validIdentifier(table) || !validIdentifier(column) {
		return nil, fmt.Errorf("pgoracle: table %q / column %q is not a safe identifier", table, column)
	}
	return &Oracle{db: db, table: table, column: column}, nil
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func (o *Oracle) LookupExact(s string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)`, o.table, o.column)
	var exists bool
	if err := o.db.QueryRow(query, s).Scan(&exists); err != nil {
		return false, fmt.Errorf("pgoracle: LookupExact: %w", err)
	}
	return exists, nil
}

func (o *Oracle) LookupSet(candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`, o.column, o.table, o.column)
	rows, err := o.db.Query(query, pq.Array(candidates))
	if err != nil {
		return nil, fmt.Errorf("pgoracle: LookupSet: %w", err)
	}
	defer rows.Close()
	return scanNames(rows)
}

// LookupPatterns matches each pattern against the lexicon column with
// PostgreSQL's SIMILAR TO, translating taxamatch.WildcardToken into the
// single-character SIMILAR TO wildcard "_" (they already coincide, but the
// translation keeps the oracle independent of taxamatch's token choice).
func (o *Oracle) LookupPatterns(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	conditions := make([]string, len(patterns))
	args := make([]interface{}, len(patterns))
	for i, p := range patterns {
		conditions[i] = fmt.Sprintf("%s SIMILAR TO $%d", o.column, i+1)
		args[i] = strings.ReplaceAll(p, string(taxamatch.WildcardToken), "_")
	}
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM %s WHERE %s`, o.column, o.table, strings.Join(conditions, " OR "))
	rows, err := o.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgoracle: LookupPatterns: %w", err)
	}
	defer rows.Close()
	return scanNames(rows)
}

// LookupTrigram runs pg_trgm's similarity() against the lexicon column.
// set_limit is reapplied on every call (rather than once at connection
// setup) because it is a session-scoped GUC: a pooled connection handed
// back to another caller may carry a different limit left over from that
// caller's last query.
func (o *Oracle) LookupTrigram(s string, cutoff float64) ([]taxamatch.TrigramResult, error) {
	tx, err := o.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("pgoracle: LookupTrigram: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`SELECT set_limit($1)`, cutoff); err != nil {
		return nil, fmt.Errorf("pgoracle: LookupTrigram: set_limit: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s, similarity(%s, $1) AS score FROM %s WHERE %s %% $1 ORDER BY score DESC`,
		o.column, o.column, o.table, o.column,
	)
	rows, err := tx.Query(query, s)
	if err != nil {
		return nil, fmt.Errorf("pgoracle: LookupTrigram: %w", err)
	}
	defer rows.Close()

	var out []taxamatch.TrigramResult
	for rows.Next() {
		var r taxamatch.TrigramResult
		if err := rows.Scan(&r.Name, &r.Score); err != nil {
			return nil, fmt.Errorf("pgoracle: LookupTrigram: scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgoracle: LookupTrigram: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("pgoracle: LookupTrigram: commit: %w", err)
	}
	return out, nil
}

// LookupPhonetic compares fuzzystrmatch codes computed server-side, so the
// same extension encodes both the stored lexicon and the incoming query.
func (o *Oracle) LookupPhonetic(s string, codec taxamatch.PhoneticCodec) ([]string, error) {
	var expr string
	switch codec {
	case taxamatch.Soundex:
		expr = "soundex"
	case taxamatch.DMetaphonePrimary:
		expr = "dmetaphone"
	case taxamatch.DMetaphoneAlternate:
		expr = "dmetaphone_alt"
	default:
		return nil, fmt.Errorf("pgoracle: LookupPhonetic: unknown codec %v", codec)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM %s WHERE %s(%s) = %s($1)`,
		o.column, o.table, expr, o.column, expr,
	)
	rows, err := o.db.Query(query, s)
	if err != nil {
		return nil, fmt.Errorf("pgoracle: LookupPhonetic: %w", err)
	}
	defer rows.Close()
	return scanNames(rows)
}

func scanNames(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("pgoracle: scan: %w", err)
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgoracle: %w", err)
	}
	return out, nil
}
