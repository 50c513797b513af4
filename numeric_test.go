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
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wdamron/valueset/constant"
	"github.com/wdamron/valueset/relation"
)

func intervalsOf[T int32 | int64 | uint32 | uint64](s ValueSet) []interval[T] {
	var ivs []interval[T]
	s.(numericSet[T]).intervals.Range(func(_ int, iv interval[T]) bool {
		ivs = append(ivs, iv)
		return true
	})
	return ivs
}

func TestIntervalListBuilder(t *testing.T) {
	b := newIntervalListBuilder[int32](math.MaxInt32)
	b.Add(1, 3)
	b.Add(4, 6)
	b.Add(5, 5)
	b.Add(8, 9)
	b.Add(math.MaxInt32-1, math.MaxInt32)
	b.Add(math.MaxInt32, math.MaxInt32)
	l := b.Build()

	var got []interval[int32]
	l.Range(func(_ int, iv interval[int32]) bool {
		got = append(got, iv)
		return true
	})
	want := []interval[int32]{{1, 6}, {8, 9}, {math.MaxInt32 - 1, math.MaxInt32}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(interval[int32]{})); diff != "" {
		t.Fatalf("intervals (-want +got):\n%s", diff)
	}

	if i, ok := l.search(7); ok || i != 1 {
		t.Fatalf("search(7) = %d, %v", i, ok)
	}
	if i, ok := l.search(9); !ok || i != 1 {
		t.Fatalf("search(9) = %d, %v", i, ok)
	}
	if l := newIntervalListBuilder[int32](math.MaxInt32).Build(); l.Len() != 0 {
		t.Fatalf("expected empty list")
	}
}

func TestNumericRelated(t *testing.T) {
	cases := []struct {
		r    relation.Relation
		v    int32
		want string
	}{
		{relation.Equal, 7, "[7..7]"},
		{relation.NotEqual, 0, "[-2147483648..-1],[1..2147483647]"},
		{relation.NotEqual, math.MinInt32, "[-2147483647..2147483647]"},
		{relation.LessThan, 5, "[-2147483648..4]"},
		{relation.LessThan, math.MinInt32, "{}"},
		{relation.LessThanOrEqual, math.MinInt32, "[-2147483648..-2147483648]"},
		{relation.GreaterThan, 5, "[6..2147483647]"},
		{relation.GreaterThan, math.MaxInt32, "{}"},
		{relation.GreaterThanOrEqual, 5, "[5..2147483647]"},
	}
	for _, c := range cases {
		if got := Int32.RelatedValue(c.r, c.v).String(); got != c.want {
			t.Fatalf("x %s %d: expected %s, got %s", c.r, c.v, c.want, got)
		}
	}

	if got := UInt32.RelatedValue(relation.LessThan, 3).String(); got != "[0..2]" {
		t.Fatalf("uint x < 3: %s", got)
	}
	if got := UInt64.RelatedValue(relation.GreaterThan, 3).String(); got != "[4..18446744073709551615]" {
		t.Fatalf("ulong x > 3: %s", got)
	}
}

func TestNumericAlgebra(t *testing.T) {
	neg := Int32.RelatedValue(relation.LessThan, 0)
	big := Int32.RelatedValue(relation.GreaterThan, 10)

	u := neg.Union(big)
	if u.String() != "[-2147483648..-1],[11..2147483647]" {
		t.Fatalf("union: %s", u)
	}
	if c := u.Complement(); c.String() != "[0..10]" {
		t.Fatalf("complement: %s", c)
	}
	if !neg.Intersect(big).IsEmpty() {
		t.Fatalf("expected disjoint sets")
	}
	mid := Int32.RelatedValue(relation.GreaterThanOrEqual, -5).Intersect(Int32.RelatedValue(relation.LessThanOrEqual, 5))
	if mid.String() != "[-5..5]" {
		t.Fatalf("intersect: %s", mid)
	}
	whole := Int32.RelatedValue(relation.LessThan, 5).Union(Int32.RelatedValue(relation.GreaterThanOrEqual, 5))
	if !whole.Equal(Int32.AllValues()) || !whole.(numericSet[int32]).isFull() {
		t.Fatalf("expected adjacent intervals to coalesce: %s", whole)
	}
	if !Int32.AllValues().Complement().Equal(Int32.NoValues()) {
		t.Fatalf("complement of all values")
	}

	want := []interval[int32]{{math.MinInt32, -1}, {11, math.MaxInt32}}
	if diff := cmp.Diff(want, intervalsOf[int32](u), cmp.AllowUnexported(interval[int32]{})); diff != "" {
		t.Fatalf("intervals (-want +got):\n%s", diff)
	}
}

func TestNumericAnyAll(t *testing.T) {
	s := Int32.RelatedValue(relation.GreaterThanOrEqual, 0).Intersect(Int32.RelatedValue(relation.LessThan, 10)).(TypedSet[int32])

	if !s.AnyValue(relation.LessThan, 1) || s.AnyValue(relation.LessThan, 0) {
		t.Fatalf("any <")
	}
	if !s.AllValue(relation.LessThan, 10) || s.AllValue(relation.LessThan, 9) {
		t.Fatalf("all <")
	}
	if !s.AllValue(relation.GreaterThanOrEqual, 0) || s.AllValue(relation.GreaterThan, 0) {
		t.Fatalf("all >")
	}
	if !s.AnyValue(relation.NotEqual, 3) || !s.AllValue(relation.NotEqual, 10) || s.AllValue(relation.NotEqual, 3) {
		t.Fatalf("not equal")
	}
	one := Int32.RelatedValue(relation.Equal, 4).(TypedSet[int32])
	if one.AnyValue(relation.NotEqual, 4) || !one.AllValue(relation.Equal, 4) {
		t.Fatalf("singleton")
	}
	empty := Int32.NoValues().(TypedSet[int32])
	for _, r := range relation.All {
		if empty.AnyValue(r, 0) || !empty.AllValue(r, 0) {
			t.Fatalf("empty set with %s", r)
		}
	}

	// Literals outside the range relate to every value the same way.
	huge := constant.MakeInt64(1 << 40)
	if !s.All(relation.LessThan, huge) || s.Any(relation.Equal, huge) || !s.Any(relation.NotEqual, huge) {
		t.Fatalf("literal above range")
	}
	if !s.Any(relation.Equal, constant.Bad()) || s.All(relation.Equal, constant.Bad()) {
		t.Fatalf("bad literal")
	}
}

func TestNumericRelatedOutsideRange(t *testing.T) {
	huge := constant.MakeInt64(1 << 40)
	if !Int32.Related(relation.LessThan, huge).Equal(Int32.AllValues()) {
		t.Fatalf("x < 2^40")
	}
	if !Int32.Related(relation.Equal, huge).IsEmpty() {
		t.Fatalf("x == 2^40")
	}
	if !Int32.Related(relation.NotEqual, huge).Equal(Int32.AllValues()) {
		t.Fatalf("x != 2^40")
	}
	if !UInt32.Related(relation.GreaterThanOrEqual, constant.MakeInt32(-1)).Equal(UInt32.AllValues()) {
		t.Fatalf("uint x >= -1")
	}
	if !UInt32.Related(relation.LessThan, constant.MakeInt32(-1)).IsEmpty() {
		t.Fatalf("uint x < -1")
	}
	if got := Int32.Related(relation.LessThan, constant.MakeInt32(3)).String(); got != "[-2147483648..2]" {
		t.Fatalf("x < 3: %s", got)
	}
}

func TestNumericSample(t *testing.T) {
	cases := []struct {
		s    ValueSet
		want string
	}{
		{Int32.RelatedValue(relation.GreaterThan, 10), "11"},
		{Int32.RelatedValue(relation.LessThan, -3), "-4"},
		{Int32.RelatedValue(relation.NotEqual, 0), "1"},
		{Int32.AllValues(), "0"},
		{UInt64.RelatedValue(relation.GreaterThan, 7), "8"},
		{Int32.NoValues(), "bad"},
	}
	for _, c := range cases {
		if got := c.s.Sample().String(); got != c.want {
			t.Fatalf("sample of %s: expected %s, got %s", c.s, c.want, got)
		}
	}
}

func TestNumericRandomProperties(t *testing.T) {
	for _, f := range []Factory{Int32, Int64, UInt32, UInt64} {
		rnd := rand.New(rand.NewSource(42))
		for i := 0; i < 300; i++ {
			s, u := f.Random(4, rnd), f.Random(3, rnd)
			if !f.NoValues().Union(s).Equal(s) || !f.AllValues().Intersect(s).Equal(s) {
				t.Fatalf("%s: identity failed for %s", f.Kind(), s)
			}
			if !s.Complement().Complement().Equal(s) {
				t.Fatalf("%s: complement involution failed for %s", f.Kind(), s)
			}
			union, inter := s.Union(u), s.Intersect(u)
			for j := 0; j < 8; j++ {
				x := f.RandomValue(rnd)
				if union.Contains(x) != (s.Contains(x) || u.Contains(x)) {
					t.Fatalf("%s: %s in %s | %s", f.Kind(), x, s, u)
				}
				if inter.Contains(x) != (s.Contains(x) && u.Contains(x)) {
					t.Fatalf("%s: %s in %s & %s", f.Kind(), x, s, u)
				}
				if s.Complement().Contains(x) == s.Contains(x) {
					t.Fatalf("%s: %s in complement of %s", f.Kind(), x, s)
				}
			}
		}
	}
}

func TestRandomIntervalCount(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	if !Int32.Random(0, rnd).IsEmpty() {
		t.Fatalf("expected empty random set for size 0")
	}
	s := Int64.Random(5, rnd).(numericSet[int64])
	if n := s.intervals.Len(); n < 1 || n > 5 {
		t.Fatalf("unexpected interval count %d", n)
	}
}

func TestRelatedConstants(t *testing.T) {
	a, b := constant.MakeInt32(3), constant.MakeInt32(5)
	if !Int32.RelatedConstants(relation.LessThan, a, b) || Int32.RelatedConstants(relation.GreaterThan, a, b) {
		t.Fatalf("3 < 5")
	}
	if !Int32.RelatedConstants(relation.Equal, constant.Bad(), b) {
		t.Fatalf("bad constants may satisfy any relation")
	}
	if !UInt32.RelatedConstants(relation.GreaterThan, constant.MakeUInt64(1<<40), constant.MakeUInt32(1)) {
		t.Fatalf("out-of-range constants compare exactly")
	}
}

func TestKindMismatchPanics(t *testing.T) {
	expectPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if _, ok := recover().(KindMismatch); !ok {
				t.Fatalf("%s: expected kind mismatch panic", name)
			}
		}()
		f()
	}
	expectPanic("union", func() { Int32.AllValues().Union(Int64.AllValues()) })
	expectPanic("intersect", func() { NativeInt.AllValues().Intersect(Int32.AllValues()) })
	expectPanic("equal", func() { NativeUInt.NoValues().Equal(NativeInt.NoValues()) })
}

func TestInvalidRelationPanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(relation.Invalid); !ok {
			t.Fatalf("expected invalid relation panic")
		}
	}()
	Int32.RelatedValue(relation.Relation(42), 1)
}

func TestForKind(t *testing.T) {
	for _, k := range constant.Kinds {
		f, ok := ForKind(k)
		if !ok || f.Kind() != k {
			t.Fatalf("missing factory for %s", k)
		}
		if f.AllValues().Kind() != k || f.NoValues().Kind() != k {
			t.Fatalf("sentinel sets of %s have the wrong kind", k)
		}
	}
	if _, ok := ForKind(constant.Invalid); ok {
		t.Fatalf("unexpected factory for invalid kind")
	}
}
