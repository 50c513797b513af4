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

package valueset

import (
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/wdamron/valueset/constant"
	"github.com/wdamron/valueset/internal/classify"
	"github.com/wdamron/valueset/relation"
)

// nativeSet is the value-set of a native-sized integer type, whose bit-width is unknown during analysis.
//
// The precise component is exact over the 32-bit reference range. belowRange and aboveRange mark that some
// value smaller (or larger) than every value of the reference range is possibly present. The three fields are
// independent. For unsigned kinds nothing lies below the reference range, so belowRange is always false.
type nativeSet[T constraints.Integer] struct {
	kind       constant.Kind
	precise    numericSet[T]
	belowRange bool
	aboveRange bool
}

func (s nativeSet[T]) Kind() constant.Kind { return s.kind }

func (s nativeSet[T]) IsEmpty() bool {
	return !s.belowRange && !s.aboveRange && s.precise.IsEmpty()
}

func (s nativeSet[T]) ContainsValue(v T) bool { return s.precise.ContainsValue(v) }

func (s nativeSet[T]) Contains(c constant.Value) bool {
	if c.IsBad() {
		return false
	}
	switch s.precise.tc.Place(c) {
	case classify.Below:
		return s.belowRange
	case classify.Above:
		return s.aboveRange
	}
	return s.precise.ContainsValue(s.precise.tc.FromConstant(c))
}

// A value below the reference range satisfies `x r v` for any v within it exactly when r is one of these.
func belowSatisfies(r relation.Relation) bool { return r.IsUpperBound() || r == relation.NotEqual }

func aboveSatisfies(r relation.Relation) bool { return r.IsLowerBound() || r == relation.NotEqual }

func (s nativeSet[T]) AnyValue(r relation.Relation, v T) bool {
	checkRelation(r)
	if s.belowRange && belowSatisfies(r) || s.aboveRange && aboveSatisfies(r) {
		return true
	}
	return s.precise.AnyValue(r, v)
}

func (s nativeSet[T]) AllValue(r relation.Relation, v T) bool {
	checkRelation(r)
	if s.belowRange && !belowSatisfies(r) || s.aboveRange && !aboveSatisfies(r) {
		return false
	}
	return s.precise.AllValue(r, v)
}

// Out-of-range values on the literal's own side may relate to it in any way; out-of-range values on the
// opposite side, and every value of the reference range, lie strictly on one side of it.
func (s nativeSet[T]) Any(r relation.Relation, c constant.Value) bool {
	checkRelation(r)
	if c.IsBad() {
		return !s.IsEmpty()
	}
	switch p := s.precise.tc.Place(c); p {
	case classify.Below:
		return s.belowRange || s.aboveRange && aboveSatisfies(r) || !s.precise.IsEmpty() && satisfiedOutside(r, p)
	case classify.Above:
		return s.aboveRange || s.belowRange && belowSatisfies(r) || !s.precise.IsEmpty() && satisfiedOutside(r, p)
	}
	return s.AnyValue(r, s.precise.tc.FromConstant(c))
}

func (s nativeSet[T]) All(r relation.Relation, c constant.Value) bool {
	checkRelation(r)
	if c.IsBad() {
		return s.IsEmpty()
	}
	switch p := s.precise.tc.Place(c); p {
	case classify.Below:
		return !s.belowRange && (!s.aboveRange || aboveSatisfies(r)) && (s.precise.IsEmpty() || satisfiedOutside(r, p))
	case classify.Above:
		return !s.aboveRange && (!s.belowRange || belowSatisfies(r)) && (s.precise.IsEmpty() || satisfiedOutside(r, p))
	}
	return s.AllValue(r, s.precise.tc.FromConstant(c))
}

func (s nativeSet[T]) Complement() ValueSet {
	return nativeSet[T]{
		kind:       s.kind,
		precise:    s.precise.complement(),
		belowRange: !s.belowRange && s.kind.Signed(),
		aboveRange: !s.aboveRange,
	}
}

func (s nativeSet[T]) Intersect(other ValueSet) ValueSet {
	o := s.same(other)
	return nativeSet[T]{
		kind:       s.kind,
		precise:    s.precise.intersect(o.precise),
		belowRange: s.belowRange && o.belowRange,
		aboveRange: s.aboveRange && o.aboveRange,
	}
}

func (s nativeSet[T]) Union(other ValueSet) ValueSet {
	o := s.same(other)
	return nativeSet[T]{
		kind:       s.kind,
		precise:    s.precise.union(o.precise),
		belowRange: s.belowRange || o.belowRange,
		aboveRange: s.aboveRange || o.aboveRange,
	}
}

// When the precise component is empty, the sample is the nearest value outside the reference range.
func (s nativeSet[T]) Sample() constant.Value {
	tc := s.precise.tc
	if v, ok := s.precise.sample(); ok {
		return tc.ToConstant(v).WithKind(s.kind)
	}
	switch {
	case s.belowRange:
		return constant.MakeSigned(s.kind, int64(tc.MinValue())-1)
	case s.aboveRange && s.kind.Signed():
		return constant.MakeSigned(s.kind, int64(tc.MaxValue())+1)
	case s.aboveRange:
		return constant.MakeUnsigned(s.kind, uint64(tc.MaxValue())+1)
	}
	return constant.Bad()
}

func (s nativeSet[T]) Equal(other ValueSet) bool {
	o := s.same(other)
	return s.belowRange == o.belowRange && s.aboveRange == o.aboveRange && s.precise.equal(o.precise)
}

func (s nativeSet[T]) same(other ValueSet) nativeSet[T] {
	o, ok := other.(nativeSet[T])
	if !ok || o.kind != s.kind {
		panic(KindMismatch{s.kind, other.Kind()})
	}
	return o
}

func (s nativeSet[T]) String() string {
	parts := make([]string, 0, 3)
	if s.belowRange {
		parts = append(parts, "Small")
	}
	if !s.precise.IsEmpty() {
		parts = append(parts, s.precise.String())
	}
	if s.aboveRange {
		parts = append(parts, "Large")
	}
	if len(parts) == 0 {
		return "{}"
	}
	return strings.Join(parts, ",")
}
