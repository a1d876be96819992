package validation

import (
	"strings"

	"github.com/spf13/cast"
)

// Reference names a record field that must resolve to a row of Table.
type Reference struct {
	Field string
	Table string
}

// Snapshot holds the ids present in each referenced table at load time.
type Snapshot map[string]map[string]struct{}

// Add records ids as present in table.
func (s Snapshot) Add(table string, ids ...string) {
	set, ok := s[table]
	if !ok {
		set = make(map[string]struct{}, len(ids))
		s[table] = set
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
}

// Has reports whether id is present in table.
func (s Snapshot) Has(table, id string) bool {
	_, ok := s[table][id]
	return ok
}

// Tables returns the distinct tables refs point at, in first-seen order.
func Tables(refs []Reference) []string {
	seen := make(map[string]bool, len(refs))
	var tables []string
	for _, r := range refs {
		if !seen[r.Table] {
			seen[r.Table] = true
			tables = append(tables, r.Table)
		}
	}
	return tables
}

// CheckReferences returns one error per referenced field of raw whose value is not in snap.
func CheckReferences(row int, raw map[string]any, refs []Reference, snap Snapshot) []ReferenceError {
	var errs []ReferenceError
	for _, ref := range refs {
		id, ok := ReferenceValue(raw, ref.Field)
		if !ok {
			continue
		}
		if !snap.Has(ref.Table, id) {
			errs = append(errs, ReferenceError{Row: row, Field: ref.Field, Value: id, Table: ref.Table})
		}
	}
	return errs
}

// ReferenceValue returns the trimmed id held in field, or false when it is blank.
func ReferenceValue(raw map[string]any, field string) (string, bool) {
	v, ok := raw[field]
	if !ok || IsBlank(v) {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
