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
	"math/rand"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/wdamron/valueset/constant"
	"github.com/wdamron/valueset/internal/classify"
	"github.com/wdamron/valueset/relation"
)

// numericFactory builds value-sets for a fixed-width integer type.
type numericFactory[T constraints.Integer] struct {
	tc classify.Classifier[T]
}

func (f numericFactory[T]) Kind() constant.Kind  { return f.tc.Kind() }
func (f numericFactory[T]) AllValues() ValueSet { return allNumeric(f.tc) }
func (f numericFactory[T]) NoValues() ValueSet  { return noNumeric(f.tc) }

func (f numericFactory[T]) RelatedValue(r relation.Relation, v T) TypedSet[T] { return f.related(r, v) }

func (f numericFactory[T]) related(r relation.Relation, v T) numericSet[T] {
	tc := f.tc
	switch r {
	case relation.Equal:
		return numericSet[T]{tc: tc, intervals: singletonIntervalList(v, v)}
	case relation.NotEqual:
		return numericSet[T]{tc: tc, intervals: singletonIntervalList(v, v)}.complement()
	case relation.LessThan:
		if v == tc.MinValue() {
			return noNumeric(tc)
		}
		return numericSet[T]{tc: tc, intervals: singletonIntervalList(tc.MinValue(), tc.Prev(v))}
	case relation.LessThanOrEqual:
		return numericSet[T]{tc: tc, intervals: singletonIntervalList(tc.MinValue(), v)}
	case relation.GreaterThan:
		if v == tc.MaxValue() {
			return noNumeric(tc)
		}
		return numericSet[T]{tc: tc, intervals: singletonIntervalList(tc.Next(v), tc.MaxValue())}
	case relation.GreaterThanOrEqual:
		return numericSet[T]{tc: tc, intervals: singletonIntervalList(v, tc.MaxValue())}
	}
	panic(relation.Invalid(r))
}

func (f numericFactory[T]) Related(r relation.Relation, c constant.Value) ValueSet {
	checkRelation(r)
	if c.IsBad() {
		return allNumeric(f.tc)
	}
	if p := f.tc.Place(c); p != classify.Within {
		if satisfiedOutside(r, p) {
			return allNumeric(f.tc)
		}
		return noNumeric(f.tc)
	}
	return f.related(r, f.tc.FromConstant(c))
}

func (f numericFactory[T]) RelatedConstants(r relation.Relation, left, right constant.Value) bool {
	checkRelation(r)
	if left.IsBad() || right.IsBad() {
		return true
	}
	if f.tc.Place(left) != classify.Within || f.tc.Place(right) != classify.Within {
		return r.Holds(constant.Compare(left, right))
	}
	return f.tc.Related(r, f.tc.FromConstant(left), f.tc.FromConstant(right))
}

// Random draws 2*expectedSize values, sorts them, and pairs neighbours into intervals.
// Overlapping or touching pairs are coalesced, so the result may hold fewer intervals.
func (f numericFactory[T]) Random(expectedSize int, rnd *rand.Rand) ValueSet {
	return f.random(expectedSize, rnd)
}

func (f numericFactory[T]) random(expectedSize int, rnd *rand.Rand) numericSet[T] {
	if expectedSize <= 0 {
		return noNumeric(f.tc)
	}
	values := make([]T, 2*expectedSize)
	for i := range values {
		values[i] = f.tc.Random(rnd)
	}
	slices.Sort(values)
	b := newIntervalListBuilder(f.tc.MaxValue())
	for i := 0; i < len(values); i += 2 {
		b.Add(values[i], values[i+1])
	}
	return numericSet[T]{tc: f.tc, intervals: b.Build()}
}

func (f numericFactory[T]) RandomValue(rnd *rand.Rand) constant.Value {
	return f.tc.ToConstant(f.tc.Random(rnd))
}
