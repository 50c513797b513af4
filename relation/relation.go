// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// relation defines the comparison operators used to constrain value-sets.
package relation

import (
	"errors"
	"fmt"
	"strconv"
)

// Relation is one of the six comparison operators. The zero value is not a valid relation.
type Relation uint8

const (
	Equal Relation = iota + 1
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

// All contains every valid relation, in declaration order.
var All = [...]Relation{Equal, NotEqual, LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual}

var symbols = [...]string{
	Equal:              "==",
	NotEqual:           "!=",
	LessThan:           "<",
	LessThanOrEqual:    "<=",
	GreaterThan:        ">",
	GreaterThanOrEqual: ">=",
}

// Valid reports whether r is one of the six comparison operators.
func (r Relation) Valid() bool { return r >= Equal && r <= GreaterThanOrEqual }

func (r Relation) String() string {
	if !r.Valid() {
		return "Relation(" + strconv.Itoa(int(r)) + ")"
	}
	return symbols[r]
}

// IsUpperBound reports whether r is `<` or `<=`. Every value below the threshold satisfies an upper bound.
func (r Relation) IsUpperBound() bool { return r == LessThan || r == LessThanOrEqual }

// IsLowerBound reports whether r is `>` or `>=`. Every value above the threshold satisfies a lower bound.
func (r Relation) IsLowerBound() bool { return r == GreaterThan || r == GreaterThanOrEqual }

// Negate returns the relation which holds exactly when r does not.
func (r Relation) Negate() Relation {
	switch r {
	case Equal:
		return NotEqual
	case NotEqual:
		return Equal
	case LessThan:
		return GreaterThanOrEqual
	case LessThanOrEqual:
		return GreaterThan
	case GreaterThan:
		return LessThanOrEqual
	case GreaterThanOrEqual:
		return LessThan
	}
	panic(Invalid(r))
}

// Swap returns the relation which holds for (b, a) exactly when r holds for (a, b).
func (r Relation) Swap() Relation {
	switch r {
	case Equal, NotEqual:
		return r
	case LessThan:
		return GreaterThan
	case LessThanOrEqual:
		return GreaterThanOrEqual
	case GreaterThan:
		return LessThan
	case GreaterThanOrEqual:
		return LessThanOrEqual
	}
	panic(Invalid(r))
}

// Holds evaluates `cmp(a, b) r 0`, where cmp is a three-way comparison result.
func (r Relation) Holds(cmp int) bool {
	switch r {
	case Equal:
		return cmp == 0
	case NotEqual:
		return cmp != 0
	case LessThan:
		return cmp < 0
	case LessThanOrEqual:
		return cmp <= 0
	case GreaterThan:
		return cmp > 0
	case GreaterThanOrEqual:
		return cmp >= 0
	}
	panic(Invalid(r))
}

var ErrUnknownRelation = errors.New("unknown relation")

// Parse converts an operator symbol (`<`, `<=`, `>`, `>=`, `==`, `!=`) into a relation.
func Parse(symbol string) (Relation, error) {
	for _, r := range All {
		if symbols[r] == symbol {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRelation, symbol)
}

// Invalid describes a relation outside the comparison vocabulary. It is used as a panic value,
// since passing an unknown relation to a value-set operation is a defect in the caller.
type Invalid Relation

func (r Invalid) Error() string { return "invalid relation: " + Relation(r).String() }
