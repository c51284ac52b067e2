package docstore

import (
	"strings"
)

// Predicate là structural filter expression được evaluate bởi Store:
// equality, case-insensitive substring, inclusive numeric range, OR/AND
// composition. Mỗi backend tự compile predicate (SQL hoặc in-memory match).
type Predicate interface {
	isPredicate()
}

type eqPredicate struct {
	field string
	value interface{}
}

type containsPredicate struct {
	field string
	value string
}

// rangePredicate has independently optional inclusive bounds.
type rangePredicate struct {
	field string
	min   *int
	max   *int
}

type orPredicate struct {
	preds []Predicate
}

type andPredicate struct {
	preds []Predicate
}

func (eqPredicate) isPredicate()       {}
func (containsPredicate) isPredicate() {}
func (rangePredicate) isPredicate()    {}
func (orPredicate) isPredicate()       {}
func (andPredicate) isPredicate()      {}

// Eq matches documents whose field equals value.
// Numeric values compare numerically, strings compare exactly.
func Eq(field string, value interface{}) Predicate {
	return eqPredicate{field: field, value: value}
}

// Contains matches documents whose field contains value, case-insensitively.
func Contains(field, value string) Predicate {
	return containsPredicate{field: field, value: value}
}

// NumRange matches documents whose numeric field lies in [min, max].
// Either bound may be nil (open-ended on that side).
func NumRange(field string, min, max *int) Predicate {
	return rangePredicate{field: field, min: min, max: max}
}

// Or matches documents satisfying any sub-predicate.
func Or(preds ...Predicate) Predicate {
	return orPredicate{preds: preds}
}

// And matches documents satisfying every sub-predicate.
// And() with no terms matches every document.
func And(preds ...Predicate) Predicate {
	return andPredicate{preds: preds}
}

// All matches every document.
func All() Predicate {
	return andPredicate{}
}

// escapeLike escapes ILIKE/substring wildcards so user input never acts as a
// pattern. Backslash first, then % and _.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
