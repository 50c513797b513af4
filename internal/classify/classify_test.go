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

package classify

import (
	"math"
	"math/rand"
	"testing"

	"github.com/wdamron/valueset/constant"
	"github.com/wdamron/valueset/relation"
)

func TestPlace(t *testing.T) {
	cases := []struct {
		c      constant.Value
		asInt  Placement
		asUint Placement
	}{
		{constant.MakeInt32(0), Within, Within},
		{constant.MakeInt32(-1), Within, Below},
		{constant.MakeNativeInt(math.MaxInt32 + 1), Above, Within},
		{constant.MakeNativeInt(math.MinInt32 - 1), Below, Below},
		{constant.MakeUInt64(math.MaxUint32 + 1), Above, Above},
		{constant.MakeUInt32(math.MaxUint32), Above, Within},
	}
	for _, c := range cases {
		if p := Int32.Place(c.c); p != c.asInt {
			t.Fatalf("int place of %s: %d", c.c, p)
		}
		if p := UInt32.Place(c.c); p != c.asUint {
			t.Fatalf("uint place of %s: %d", c.c, p)
		}
	}
	if Int64.Place(constant.MakeUInt64(math.MaxUint64)) != Above || UInt64.Place(constant.MakeInt64(math.MinInt64)) != Below {
		t.Fatalf("64-bit placement")
	}
}

func TestConversion(t *testing.T) {
	if v := Int32.FromConstant(constant.MakeNativeInt(-12)); v != -12 {
		t.Fatalf("from nint: %d", v)
	}
	if c := Int32.ToConstant(-12); c != constant.MakeInt32(-12) {
		t.Fatalf("to int: %s", c)
	}
	if c := UInt64.ToConstant(math.MaxUint64); c.Kind() != constant.UInt64 || c.Uint64() != math.MaxUint64 {
		t.Fatalf("to ulong: %s", c)
	}
	if s := UInt32.Format(math.MaxUint32); s != "4294967295" {
		t.Fatalf("format: %s", s)
	}
	if s := Int64.Format(math.MinInt64); s != "-9223372036854775808" {
		t.Fatalf("format: %s", s)
	}
}

func TestRelated(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a, b := Int32.Random(rnd), Int32.Random(rnd)
		cmp := constant.Compare(Int32.ToConstant(a), Int32.ToConstant(b))
		for _, r := range relation.All {
			if Int32.Related(r, a, b) != r.Holds(cmp) {
				t.Fatalf("%d %s %d", a, r, b)
			}
		}
	}
	if Int32.Next(5) != 6 || Int32.Prev(5) != 4 || UInt32.Zero() != 0 {
		t.Fatalf("arithmetic")
	}
}
