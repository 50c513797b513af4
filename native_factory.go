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

	"github.com/wdamron/valueset/constant"
	"github.com/wdamron/valueset/internal/classify"
	"github.com/wdamron/valueset/relation"
)

// Probability of setting each out-of-range flag in a random native-sized set.
const outOfRangeProbability = 0.25

// nativeFactory builds value-sets for a native-sized integer kind over a 32-bit reference representation.
type nativeFactory[T constraints.Integer] struct {
	kind    constant.Kind
	precise numericFactory[T]
}

func (f nativeFactory[T]) Kind() constant.Kind { return f.kind }

func (f nativeFactory[T]) AllValues() ValueSet { return f.all() }

func (f nativeFactory[T]) all() nativeSet[T] {
	return nativeSet[T]{
		kind:       f.kind,
		precise:    allNumeric(f.precise.tc),
		belowRange: f.kind.Signed(),
		aboveRange: true,
	}
}

func (f nativeFactory[T]) NoValues() ValueSet {
	return nativeSet[T]{kind: f.kind, precise: noNumeric(f.precise.tc)}
}

// RelatedValue derives the flags from the direction of the relation alone: every value below the reference
// range satisfies an upper bound, and every value above it satisfies a lower bound. No out-of-range value is
// equal to a value within the range.
func (f nativeFactory[T]) RelatedValue(r relation.Relation, v T) TypedSet[T] { return f.related(r, v) }

func (f nativeFactory[T]) related(r relation.Relation, v T) nativeSet[T] {
	return nativeSet[T]{
		kind:       f.kind,
		precise:    f.precise.related(r, v),
		belowRange: r.IsUpperBound() && f.kind.Signed(),
		aboveRange: r.IsLowerBound(),
	}
}

// Related widens a bad literal to the universal set. A literal outside the reference range is resolved
// without truncation: only out-of-range values on its own side may satisfy a relation which no value of the
// reference range satisfies.
func (f nativeFactory[T]) Related(r relation.Relation, c constant.Value) ValueSet {
	checkRelation(r)
	if c.IsBad() {
		return f.all()
	}
	tc := f.precise.tc
	p := tc.Place(c)
	if p == classify.Within {
		return f.related(r, tc.FromConstant(c))
	}
	if satisfiedOutside(r, p) {
		return f.all()
	}
	return nativeSet[T]{
		kind:       f.kind,
		precise:    noNumeric(tc),
		belowRange: p == classify.Below && f.kind.Signed(),
		aboveRange: p == classify.Above,
	}
}

// RelatedConstants compares exactly. It agrees with Related(r, right).Contains(left) whenever left lies within
// the reference range. For a left operand outside it, Related may only be wider, except for `!=` against a
// value within the range: that set excludes every out-of-range value.
func (f nativeFactory[T]) RelatedConstants(r relation.Relation, left, right constant.Value) bool {
	return f.precise.RelatedConstants(r, left, right)
}

// Random draws the below-range flag, then the precise component, then the above-range flag, all from rnd.
func (f nativeFactory[T]) Random(expectedSize int, rnd *rand.Rand) ValueSet {
	below := f.kind.Signed() && rnd.Float64() < outOfRangeProbability
	precise := f.precise.random(expectedSize, rnd)
	above := rnd.Float64() < outOfRangeProbability
	return nativeSet[T]{kind: f.kind, precise: precise, belowRange: below, aboveRange: above}
}

func (f nativeFactory[T]) RandomValue(rnd *rand.Rand) constant.Value {
	return f.precise.RandomValue(rnd).WithKind(f.kind)
}
