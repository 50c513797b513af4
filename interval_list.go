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
	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/constraints"
)

// Closed interval [first, last]; first <= last.
type interval[T constraints.Integer] struct {
	first, last T
}

// intervalList is an immutable list of ordered, disjoint, non-adjacent intervals.
// The zero value is an empty list.
type intervalList[T constraints.Integer] struct {
	l *immutable.List[interval[T]]
}

func singletonIntervalList[T constraints.Integer](first, last T) intervalList[T] {
	return intervalList[T]{immutable.NewList(interval[T]{first, last})}
}

func (l intervalList[T]) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l intervalList[T]) Get(i int) interval[T] { return l.l.Get(i) }
func (l intervalList[T]) First() interval[T]    { return l.l.Get(0) }
func (l intervalList[T]) Last() interval[T]     { return l.l.Get(l.l.Len() - 1) }

// If f returns false, iteration will be stopped.
func (l intervalList[T]) Range(f func(int, interval[T]) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v) {
			return
		}
	}
}

// Find the index of the interval containing v.
func (l intervalList[T]) search(v T) (int, bool) {
	lo, hi := 0, l.Len()-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		iv := l.l.Get(mid)
		switch {
		case v < iv.first:
			hi = mid - 1
		case v > iv.last:
			lo = mid + 1
		default:
			return mid, true
		}
	}
	return lo, false
}

// intervalListBuilder accumulates intervals in ascending order of their lower bounds, coalescing
// intervals which overlap or touch.
type intervalListBuilder[T constraints.Integer] struct {
	b  *immutable.ListBuilder[interval[T]]
	hi T
}

// hi must be the largest value of T's classifier, which bounds adjacency checks.
func newIntervalListBuilder[T constraints.Integer](hi T) intervalListBuilder[T] {
	return intervalListBuilder[T]{b: immutable.NewListBuilder[interval[T]](), hi: hi}
}

// Add [first, last]. first must not be less than the lower bound of any interval added before.
func (b intervalListBuilder[T]) Add(first, last T) {
	if n := b.b.Len(); n > 0 {
		prev := b.b.Get(n - 1)
		if prev.last == b.hi || first <= prev.last+1 {
			if last > prev.last {
				prev.last = last
				b.b.Set(n-1, prev)
			}
			return
		}
	}
	b.b.Append(interval[T]{first, last})
}

// Finalize the builder into an immutable list. The builder must not be used afterwards.
func (b intervalListBuilder[T]) Build() intervalList[T] {
	if b.b.Len() == 0 {
		return intervalList[T]{}
	}
	return intervalList[T]{b.b.List()}
}
