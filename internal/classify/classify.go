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

// classify provides numeric type-classifiers: the per-kind arithmetic, ordering, literal conversion
// and random sampling which the generic value-set engine is parameterized over.
package classify

import (
	"math"
	"math/rand"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/wdamron/valueset/constant"
	"github.com/wdamron/valueset/relation"
)

// Placement locates a literal relative to the range representable by a classifier's type.
type Placement int8

const (
	Below  Placement = -1
	Within Placement = 0
	Above  Placement = 1
)

// Classifier supplies the operations of one fixed-width integer type.
type Classifier[T constraints.Integer] interface {
	// Kind of the constants produced by ToConstant.
	Kind() constant.Kind
	MinValue() T
	MaxValue() T
	Zero() T
	// Next returns v+1. v must be less than MaxValue.
	Next(v T) T
	// Prev returns v-1. v must be greater than MinValue.
	Prev(v T) T
	// Related evaluates `a r b`. Panics for an unknown relation.
	Related(r relation.Relation, a, b T) bool
	// FromConstant truncates the payload of a good constant to T; use Place to detect values outside the range.
	FromConstant(c constant.Value) T
	ToConstant(v T) constant.Value
	// Place locates a good constant relative to [MinValue, MaxValue].
	Place(c constant.Value) Placement
	// Random draws a value uniformly from [MinValue, MaxValue].
	Random(rnd *rand.Rand) T
	Format(v T) string
}

var (
	Int32  Classifier[int32]  = integer[int32]{kind: constant.Int32, lo: math.MinInt32, hi: math.MaxInt32}
	Int64  Classifier[int64]  = integer[int64]{kind: constant.Int64, lo: math.MinInt64, hi: math.MaxInt64}
	UInt32 Classifier[uint32] = integer[uint32]{kind: constant.UInt32, lo: 0, hi: math.MaxUint32}
	UInt64 Classifier[uint64] = integer[uint64]{kind: constant.UInt64, lo: 0, hi: math.MaxUint64}
)

type integer[T constraints.Integer] struct {
	kind     constant.Kind
	lo, hi T
}

func (tc integer[T]) Kind() constant.Kind { return tc.kind }
func (tc integer[T]) MinValue() T         { return tc.lo }
func (tc integer[T]) MaxValue() T         { return tc.hi }
func (tc integer[T]) Zero() T             { return 0 }
func (tc integer[T]) Next(v T) T          { return v + 1 }
func (tc integer[T]) Prev(v T) T          { return v - 1 }

func (tc integer[T]) Related(r relation.Relation, a, b T) bool {
	switch r {
	case relation.Equal:
		return a == b
	case relation.NotEqual:
		return a != b
	case relation.LessThan:
		return a < b
	case relation.LessThanOrEqual:
		return a <= b
	case relation.GreaterThan:
		return a > b
	case relation.GreaterThanOrEqual:
		return a >= b
	}
	panic(relation.Invalid(r))
}

func (tc integer[T]) FromConstant(c constant.Value) T {
	if c.Kind().Signed() {
		return T(c.Int64())
	}
	return T(c.Uint64())
}

func (tc integer[T]) ToConstant(v T) constant.Value {
	if tc.kind.Signed() {
		return constant.MakeSigned(tc.kind, int64(v))
	}
	return constant.MakeUnsigned(tc.kind, uint64(v))
}

func (tc integer[T]) Place(c constant.Value) Placement {
	if constant.Compare(c, tc.ToConstant(tc.lo)) < 0 {
		return Below
	}
	if constant.Compare(c, tc.ToConstant(tc.hi)) > 0 {
		return Above
	}
	return Within
}

// Every bit pattern of T is a member of the type, so truncating 64 random bits is uniform.
func (tc integer[T]) Random(rnd *rand.Rand) T { return T(rnd.Uint64()) }

func (tc integer[T]) Format(v T) string {
	if tc.kind.Signed() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
