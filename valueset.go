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

// valueset provides immutable value-sets: representations of the set of values a typed expression might hold.
//
// Value-sets are used by static-analysis passes to decide exhaustiveness of switches, reachability of case arms,
// and feasibility of relational guards, without executing the program.
//
// A value-set is built by a Factory from a relational constraint (`x < 5`) or a literal, and combined with the
// usual set algebra. Each supported primitive kind has a single, stateless factory; ForKind maps a kind tag to it.
//
// The native-sized kinds (nint, nuint) have a bit-width which depends on the target platform, so their value-sets
// pair an exact 32-bit component with flags marking values possibly present below or above the 32-bit range.
//
//
// Supported Kinds:
//
//   * int, long, uint, ulong (fixed-width interval unions)
//   * nint, nuint (32-bit interval unions with out-of-range flags)
//
//
// All operations are pure. Random generation takes its source of randomness as an explicit argument; a *rand.Rand
// must not be shared across goroutines without synchronization.
package valueset

import (
	"math/rand"

	"golang.org/x/exp/constraints"

	"github.com/wdamron/valueset/constant"
	"github.com/wdamron/valueset/relation"
)

// ValueSet is an immutable set of values of a single kind.
//
// Sets of different kinds must not be combined; doing so panics.
type ValueSet interface {
	Kind() constant.Kind
	// Complement returns the set of values of the same kind not in this set.
	Complement() ValueSet
	Intersect(other ValueSet) ValueSet
	Union(other ValueSet) ValueSet
	// Contains reports whether the value of a literal is in the set. A bad literal is never contained.
	Contains(c constant.Value) bool
	// Any reports whether some value x in the set satisfies `x r c`.
	Any(r relation.Relation, c constant.Value) bool
	// All reports whether every value x in the set satisfies `x r c`.
	All(r relation.Relation, c constant.Value) bool
	IsEmpty() bool
	// Sample returns a value in the set, or a bad constant if the set is empty.
	Sample() constant.Value
	Equal(other ValueSet) bool
	String() string
}

// TypedSet extends a value-set with operations on values of its underlying representation.
type TypedSet[T constraints.Integer] interface {
	ValueSet
	ContainsValue(v T) bool
	AnyValue(r relation.Relation, v T) bool
	AllValue(r relation.Relation, v T) bool
}

// Factory builds value-sets of a single kind.
type Factory interface {
	Kind() constant.Kind
	// AllValues returns the universal set.
	AllValues() ValueSet
	// NoValues returns the empty set.
	NoValues() ValueSet
	// Related returns the set of values x satisfying `x r c`. A bad literal yields the universal set.
	Related(r relation.Relation, c constant.Value) ValueSet
	// RelatedConstants evaluates `left r right` for two literals, without building a set. A bad operand yields
	// true, matching the widening of Related.
	RelatedConstants(r relation.Relation, left, right constant.Value) bool
	// Random returns a pseudo-random set with roughly expectedSize intervals, for self-testing.
	Random(expectedSize int, rnd *rand.Rand) ValueSet
	// RandomValue returns a pseudo-random literal of the factory's kind.
	RandomValue(rnd *rand.Rand) constant.Value
}

// TypedFactory extends a factory with construction from values of the underlying representation.
type TypedFactory[T constraints.Integer] interface {
	Factory
	// RelatedValue returns the set of values x satisfying `x r v`.
	RelatedValue(r relation.Relation, v T) TypedSet[T]
}

func checkRelation(r relation.Relation) {
	if !r.Valid() {
		panic(relation.Invalid(r))
	}
}

// KindMismatch is the panic value reported when value-sets of different kinds are combined.
type KindMismatch struct {
	Left, Right constant.Kind
}

func (e KindMismatch) Error() string {
	return "valueset: cannot combine " + e.Left.String() + " and " + e.Right.String() + " value-sets"
}
