package stockpile

import (
	"strconv"
	"strings"
)

// valueKind tags the scalar type a record field resolves to.
type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindFloat
)

// value is a record field resolved once into a typed scalar. Record fields
// are transported as strings; this is the single place where the numeric
// interpretation happens.
type value struct {
	kind valueKind
	i    int64
	f    float64
	s    string
}

// parseValue resolves a raw field value: integer if it is a signed or
// unsigned integer literal, float if it is a decimal literal, string otherwise.
func parseValue(s string) value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value{kind: kindInt, i: i, s: s}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value{kind: kindFloat, f: f, s: s}
	}
	return value{kind: kindString, s: s}
}

func (v value) isNumeric() bool { return v.kind == kindInt || v.kind == kindFloat }

func (v value) float() float64 {
	if v.kind == kindInt {
		return float64(v.i)
	}
	return v.f
}

// compare orders two values: numerically when both sides are numeric,
// lexically on the raw strings otherwise. Returns -1, 0 or +1.
func (v value) compare(o value) int {
	if v.kind == kindInt && o.kind == kindInt {
		switch {
		case v.i < o.i:
			return -1
		case v.i > o.i:
			return 1
		default:
			return 0
		}
	}
	if v.isNumeric() && o.isNumeric() {
		switch {
		case v.float() < o.float():
			return -1
		case v.float() > o.float():
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(v.s, o.s)
}
