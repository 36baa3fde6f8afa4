package stockpile

import (
	"strings"

	"github.com/evdv/stockpile/date"
)

// Op is a comparison operator of the record filter language.
type Op string

const (
	OpEqual    Op = "==" // equality; prefix match on date fields
	OpNotEqual Op = "!=" // negated equality
	OpAtMost   Op = "<=" // less than or equal
	OpAtLeast  Op = ">=" // greater than or equal
	OpLess     Op = "<<" // strictly less than
	OpGreater  Op = ">>" // strictly greater than
)

// operators in the order they are probed when parsing a predicate, so that
// "<=" and ">=" are recognized before "<<" and ">>" could shadow them.
var operators = []Op{OpEqual, OpNotEqual, OpAtMost, OpAtLeast, OpLess, OpGreater}

// dateMarker identifies the fields that hold dates; those are compared with
// granularity-aware semantics instead of the scalar coercion rules.
const dateMarker = "_date"

// Record is any ledger row the filter engine can evaluate. Field returns the
// raw string value for a column name, or "" for an unknown column.
type Record interface {
	Field(name string) string
}

// predicate is one parsed "field<op>value" criterion.
type predicate struct {
	field     string
	op        Op
	criterion string
}

// parsePredicate splits a raw filter into its parts. ok is false when the
// filter has no recognized operator, more than one occurrence of it, or an
// empty criterion; such filters keep every record.
func parsePredicate(raw string) (predicate, bool) {
	for _, op := range operators {
		if !strings.Contains(raw, string(op)) {
			continue
		}
		parts := strings.Split(raw, string(op))
		if len(parts) != 2 || parts[1] == "" {
			return predicate{}, false
		}
		return predicate{field: parts[0], op: op, criterion: parts[1]}, true
	}
	return predicate{}, false
}

// match evaluates the predicate against a single record.
func (p predicate) match(r Record, format date.Format) bool {
	got := r.Field(p.field)

	if strings.Contains(p.field, dateMarker) {
		return p.matchDate(got, format)
	}

	switch p.op {
	case OpEqual:
		return got == p.criterion
	case OpNotEqual:
		return got != p.criterion
	}
	return ordered(p.op, parseValue(got).compare(parseValue(p.criterion)))
}

// matchDate compares a date field. Equality is prefix-based so that a year or
// year-month criterion matches every stored date inside it. Ordering expands
// the criterion to the boundary day the operator direction calls for; when
// either side cannot be parsed, the comparison degrades to a lexical one.
func (p predicate) matchDate(got string, format date.Format) bool {
	switch p.op {
	case OpEqual:
		return strings.HasPrefix(got, p.criterion)
	case OpNotEqual:
		return !strings.HasPrefix(got, p.criterion)
	}

	var bound date.Date
	var err error
	switch p.op {
	case OpAtMost, OpGreater:
		// "at most" and "strictly greater" reach to the end of the stated period.
		bound, err = format.UpperBound(p.criterion)
	default:
		bound, err = format.LowerBound(p.criterion)
	}
	if err != nil {
		return ordered(p.op, strings.Compare(got, p.criterion))
	}
	on, err := format.ParseDay(got)
	if err != nil {
		return ordered(p.op, strings.Compare(got, p.criterion))
	}

	switch {
	case on.Before(bound):
		return ordered(p.op, -1)
	case on.After(bound):
		return ordered(p.op, 1)
	default:
		return ordered(p.op, 0)
	}
}

// ordered maps a three-way comparison result to an ordering operator.
func ordered(op Op, cmp int) bool {
	switch op {
	case OpAtMost:
		return cmp <= 0
	case OpAtLeast:
		return cmp >= 0
	case OpLess:
		return cmp < 0
	case OpGreater:
		return cmp > 0
	default:
		return false
	}
}

// Filter returns the records matching one raw "field<op>value" criterion.
// A filter that does not parse, or whose criterion is empty, keeps everything.
func Filter[T Record](records []T, format date.Format, filter string) []T {
	p, ok := parsePredicate(filter)
	if !ok {
		return records
	}
	found := make([]T, 0, len(records))
	for _, r := range records {
		if p.match(r, format) {
			found = append(found, r)
		}
	}
	return found
}

// FilterAll narrows records through each filter in turn (a logical AND).
// An empty filter list returns the records unchanged.
func FilterAll[T Record](records []T, format date.Format, filters ...string) []T {
	for _, f := range filters {
		records = Filter(records, format, f)
	}
	return records
}
