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

// numericSet is the value-set of a fixed-width integer type: a union of disjoint intervals.
type numericSet[T constraints.Integer] struct {
	tc        classify.Classifier[T]
	intervals intervalList[T]
}

func allNumeric[T constraints.Integer](tc classify.Classifier[T]) numericSet[T] {
	return numericSet[T]{tc: tc, intervals: singletonIntervalList(tc.MinValue(), tc.MaxValue())}
}

func noNumeric[T constraints.Integer](tc classify.Classifier[T]) numericSet[T] {
	return numericSet[T]{tc: tc}
}

func (s numericSet[T]) Kind() constant.Kind { return s.tc.Kind() }
func (s numericSet[T]) IsEmpty() bool       { return s.intervals.Len() == 0 }

func (s numericSet[T]) isFull() bool {
	if s.intervals.Len() != 1 {
		return false
	}
	iv := s.intervals.First()
	return iv.first == s.tc.MinValue() && iv.last == s.tc.MaxValue()
}

func (s numericSet[T]) ContainsValue(v T) bool {
	_, ok := s.intervals.search(v)
	return ok
}

func (s numericSet[T]) Contains(c constant.Value) bool {
	if c.IsBad() || s.tc.Place(c) != classify.Within {
		return false
	}
	return s.ContainsValue(s.tc.FromConstant(c))
}

func (s numericSet[T]) AnyValue(r relation.Relation, v T) bool {
	checkRelation(r)
	n := s.intervals.Len()
	if n == 0 {
		return false
	}
	switch r {
	case relation.LessThan:
		return s.intervals.First().first < v
	case relation.LessThanOrEqual:
		return s.intervals.First().first <= v
	case relation.GreaterThan:
		return s.intervals.Last().last > v
	case relation.GreaterThanOrEqual:
		return s.intervals.Last().last >= v
	case relation.Equal:
		return s.ContainsValue(v)
	}
	// NotEqual
	first := s.intervals.First()
	return n > 1 || first.first != v || first.last != v
}

func (s numericSet[T]) AllValue(r relation.Relation, v T) bool {
	checkRelation(r)
	n := s.intervals.Len()
	if n == 0 {
		return true
	}
	switch r {
	case relation.LessThan:
		return s.intervals.Last().last < v
	case relation.LessThanOrEqual:
		return s.intervals.Last().last <= v
	case relation.GreaterThan:
		return s.intervals.First().first > v
	case relation.GreaterThanOrEqual:
		return s.intervals.First().first >= v
	case relation.Equal:
		first := s.intervals.First()
		return n == 1 && first.first == v && first.last == v
	}
	// NotEqual
	return !s.ContainsValue(v)
}

func (s numericSet[T]) Any(r relation.Relation, c constant.Value) bool {
	checkRelation(r)
	if c.IsBad() {
		return !s.IsEmpty()
	}
	if p := s.tc.Place(c); p != classify.Within {
		return !s.IsEmpty() && satisfiedOutside(r, p)
	}
	return s.AnyValue(r, s.tc.FromConstant(c))
}

func (s numericSet[T]) All(r relation.Relation, c constant.Value) bool {
	checkRelation(r)
	if c.IsBad() {
		return s.IsEmpty()
	}
	if p := s.tc.Place(c); p != classify.Within {
		return s.IsEmpty() || satisfiedOutside(r, p)
	}
	return s.AllValue(r, s.tc.FromConstant(c))
}

// satisfiedOutside reports whether every value within a type's range satisfies `x r c` for a literal c
// lying outside the range at p. When it returns false, no value within the range satisfies the relation.
func satisfiedOutside(r relation.Relation, p classify.Placement) bool {
	switch r {
	case relation.Equal:
		return false
	case relation.NotEqual:
		return true
	case relation.LessThan, relation.LessThanOrEqual:
		return p == classify.Above
	case relation.GreaterThan, relation.GreaterThanOrEqual:
		return p == classify.Below
	}
	panic(relation.Invalid(r))
}

func (s numericSet[T]) Complement() ValueSet { return s.complement() }

func (s numericSet[T]) complement() numericSet[T] {
	n := s.intervals.Len()
	if n == 0 {
		return allNumeric(s.tc)
	}
	lo, hi := s.tc.MinValue(), s.tc.MaxValue()
	b := newIntervalListBuilder(hi)
	prev := s.intervals.First()
	if prev.first > lo {
		b.Add(lo, s.tc.Prev(prev.first))
	}
	for i := 1; i < n; i++ {
		next := s.intervals.Get(i)
		b.Add(s.tc.Next(prev.last), s.tc.Prev(next.first))
		prev = next
	}
	if prev.last < hi {
		b.Add(s.tc.Next(prev.last), hi)
	}
	return numericSet[T]{tc: s.tc, intervals: b.Build()}
}

func (s numericSet[T]) Intersect(other ValueSet) ValueSet { return s.intersect(s.same(other)) }

func (s numericSet[T]) intersect(o numericSet[T]) numericSet[T] {
	n, m := s.intervals.Len(), o.intervals.Len()
	b := newIntervalListBuilder(s.tc.MaxValue())
	for i, j := 0, 0; i < n && j < m; {
		a, c := s.intervals.Get(i), o.intervals.Get(j)
		lo, hi := a.first, a.last
		if c.first > lo {
			lo = c.first
		}
		if c.last < hi {
			hi = c.last
		}
		if lo <= hi {
			b.Add(lo, hi)
		}
		if a.last < c.last {
			i++
		} else {
			j++
		}
	}
	return numericSet[T]{tc: s.tc, intervals: b.Build()}
}

func (s numericSet[T]) Union(other ValueSet) ValueSet { return s.union(s.same(other)) }

func (s numericSet[T]) union(o numericSet[T]) numericSet[T] {
	n, m := s.intervals.Len(), o.intervals.Len()
	switch {
	case n == 0:
		return o
	case m == 0:
		return s
	}
	b := newIntervalListBuilder(s.tc.MaxValue())
	for i, j := 0, 0; i < n || j < m; {
		if j >= m || (i < n && s.intervals.Get(i).first <= o.intervals.Get(j).first) {
			a := s.intervals.Get(i)
			b.Add(a.first, a.last)
			i++
		} else {
			c := o.intervals.Get(j)
			b.Add(c.first, c.last)
			j++
		}
	}
	return numericSet[T]{tc: s.tc, intervals: b.Build()}
}

// The sample is zero when zero is a member; otherwise the member nearest to zero from above, if any.
func (s numericSet[T]) sample() (T, bool) {
	n := s.intervals.Len()
	if n == 0 {
		return 0, false
	}
	zero := s.tc.Zero()
	i, found := s.intervals.search(zero)
	switch {
	case found:
		return zero, true
	case i < n:
		return s.intervals.Get(i).first, true
	}
	return s.intervals.Last().last, true
}

func (s numericSet[T]) Sample() constant.Value {
	v, ok := s.sample()
	if !ok {
		return constant.Bad()
	}
	return s.tc.ToConstant(v)
}

func (s numericSet[T]) Equal(other ValueSet) bool { return s.equal(s.same(other)) }

func (s numericSet[T]) equal(o numericSet[T]) bool {
	n := s.intervals.Len()
	if n != o.intervals.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if s.intervals.Get(i) != o.intervals.Get(i) {
			return false
		}
	}
	return true
}

func (s numericSet[T]) same(other ValueSet) numericSet[T] {
	o, ok := other.(numericSet[T])
	if !ok || o.tc.Kind() != s.tc.Kind() {
		panic(KindMismatch{s.Kind(), other.Kind()})
	}
	return o
}

func (s numericSet[T]) String() string {
	if s.IsEmpty() {
		return "{}"
	}
	var sb strings.Builder
	s.intervals.Range(func(i int, iv interval[T]) bool {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		sb.WriteString(s.tc.Format(iv.first))
		sb.WriteString("..")
		sb.WriteString(s.tc.Format(iv.last))
		sb.WriteByte(']')
		return true
	})
	return sb.String()
}
