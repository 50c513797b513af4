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

// selfcheck verifies the algebraic properties of every value-set factory against seeded random samples.
package selfcheck

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/wdamron/valueset"
	"github.com/wdamron/valueset/constant"
	"github.com/wdamron/valueset/relation"
)

// Failure records a violated property, with the iteration which reproduces it for the run's seed.
type Failure struct {
	Kind      constant.Kind
	Property  string
	Iteration int
	Detail    string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s (iteration %d): %s", f.Kind, f.Property, f.Iteration, f.Detail)
}

type Result struct {
	// Number of samples checked, over all kinds.
	Checked  int
	Failures []Failure
}

func (r Result) OK() bool { return len(r.Failures) == 0 }

// Run checks every configured kind. Property violations are reported in the result; an error is returned
// only for an invalid config. A nil logger discards log output.
func Run(cfg Config, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	kinds, _ := cfg.kinds()
	var res Result
	for _, k := range kinds {
		f, ok := valueset.ForKind(k)
		if !ok {
			return res, fmt.Errorf("no value-set factory for kind %s", k)
		}
		before := len(res.Failures)
		c := checker{f: f, size: cfg.ExpectedSize, res: &res}
		c.checkDeterminism(cfg.Seed)
		rnd := rand.New(rand.NewSource(cfg.Seed))
		for i := 0; i < cfg.Iterations; i++ {
			c.iter = i
			c.checkSample(rnd)
			res.Checked++
		}
		failed := len(res.Failures) - before
		log.Info("checked value-set factory",
			zap.Stringer("kind", k),
			zap.Int64("seed", cfg.Seed),
			zap.Int("iterations", cfg.Iterations),
			zap.Int("failures", failed))
		for _, fail := range res.Failures[before:] {
			log.Debug("property violated",
				zap.Stringer("kind", fail.Kind),
				zap.String("property", fail.Property),
				zap.Int("iteration", fail.Iteration),
				zap.String("detail", fail.Detail))
		}
	}
	return res, nil
}

type checker struct {
	f    valueset.Factory
	size int
	iter int
	res  *Result
}

func (c *checker) expect(ok bool, property, format string, args ...interface{}) {
	if ok {
		return
	}
	c.res.Failures = append(c.res.Failures, Failure{
		Kind:      c.f.Kind(),
		Property:  property,
		Iteration: c.iter,
		Detail:    fmt.Sprintf(format, args...),
	})
}

func (c *checker) checkDeterminism(seed int64) {
	c.iter = -1
	a := c.f.Random(c.size, rand.New(rand.NewSource(seed)))
	b := c.f.Random(c.size, rand.New(rand.NewSource(seed)))
	c.expect(a.Equal(b), "random determinism", "%s != %s", a, b)
}

func (c *checker) checkSample(rnd *rand.Rand) {
	f := c.f
	s, t := f.Random(c.size, rnd), f.Random(c.size, rnd)
	v1, v2 := f.RandomValue(rnd), f.RandomValue(rnd)
	r := relation.All[rnd.Intn(len(relation.All))]

	c.expect(f.NoValues().Union(s).Equal(s), "union identity", "{} | %s", s)
	c.expect(f.AllValues().Intersect(s).Equal(s), "intersect identity", "all & %s", s)
	c.expect(s.Complement().Complement().Equal(s), "complement involution", "%s", s)
	c.expect(s.Union(t).Complement().Equal(s.Complement().Intersect(t.Complement())),
		"de morgan", "%s, %s", s, t)
	c.expect(s.Intersect(s.Complement()).IsEmpty(), "complement disjoint", "%s", s)
	c.expect(s.Contains(v1) != s.Complement().Contains(v1), "complement membership", "%s in %s", v1, s)

	c.expect(f.Related(r, constant.Bad()).Equal(f.AllValues()), "bad constant widening", "x %s bad", r)

	related := f.Related(r, v2)
	holds := f.RelatedConstants(r, v1, v2)
	c.expect(holds == related.Contains(v1), "constant relation agreement",
		"%s %s %s = %v, set %s", v1, r, v2, holds, related)

	if s.Contains(v1) {
		c.expect(!holds || s.Any(r, v2), "any soundness", "%s %s %s in %s", v1, r, v2, s)
		c.expect(holds || !s.All(r, v2), "all soundness", "%s %s %s in %s", v1, r, v2, s)
	}
	if !s.IsEmpty() {
		sample := s.Sample()
		c.expect(s.Contains(sample), "sample membership", "%s in %s", sample, s)
	} else {
		c.expect(s.Sample().IsBad(), "empty sample", "%s", s)
	}

	if f.Kind().Native() {
		c.checkOutOfRange(r, v1, v2)
	}
}

// Out-of-range literals satisfy an upper bound from below and a lower bound from above, and nothing else.
// A literal within the range, compared against an out-of-range one, agrees with set construction; an
// out-of-range literal satisfying a relation is a member, except for `!=` against a value within the range.
func (c *checker) checkOutOfRange(r relation.Relation, inside, v constant.Value) {
	f := c.f
	related := f.Related(r, v)
	large, small := constant.MakeNativeInt(math.MaxInt64), constant.MakeNativeInt(math.MinInt64)
	outside := []constant.Value{large, small}
	if f.Kind() == constant.NativeUInt {
		large = constant.MakeNativeUInt(math.MaxUint64)
		outside = []constant.Value{large}
	} else {
		c.expect(related.Contains(small) == r.IsUpperBound(), "below-range flag", "x %s %s: %s", r, v, related)
	}
	c.expect(related.Contains(large) == r.IsLowerBound(), "above-range flag", "x %s %s: %s", r, v, related)

	for _, out := range outside {
		wide := f.Related(r, out)
		c.expect(f.RelatedConstants(r, inside, out) == wide.Contains(inside), "out-of-range constant agreement",
			"%s %s %s, set %s", inside, r, out, wide)
		holds := f.RelatedConstants(r, out, v)
		c.expect(holds == r.Holds(constant.Compare(out, v)), "exact constant relation", "%s %s %s", out, r, v)
		if r != relation.NotEqual {
			c.expect(!holds || related.Contains(out), "out-of-range containment soundness",
				"%s %s %s, set %s", out, r, v, related)
		}
	}
}
