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

// exhaustive decides reachability of case arms and exhaustiveness of switches over integer kinds,
// using value-sets to track the values not yet handled by earlier arms.
package exhaustive

import (
	"github.com/wdamron/valueset"
	"github.com/wdamron/valueset/constant"
	"github.com/wdamron/valueset/relation"
)

// Test is a relational guard on the switch subject: `subject Relation Value`.
type Test struct {
	Relation relation.Relation
	Value    constant.Value
}

// Arm is a case arm matching when all of its tests hold. An arm without tests is a default arm.
type Arm struct {
	Name  string
	Tests []Test
}

// ArmResult describes one arm of an analyzed switch.
type ArmResult struct {
	Name string
	// Reachable is false when every value matched by the arm is handled by earlier arms.
	Reachable bool
	// Handled contains the values matched by this arm and by no earlier arm.
	Handled valueset.ValueSet
}

// Report describes an analyzed switch.
type Report struct {
	Arms []ArmResult
	// Exhaustive is true when every value of the subject's kind is matched by some arm.
	Exhaustive bool
	// Remaining contains the values matched by no arm.
	Remaining valueset.ValueSet
	// Missing is a value matched by no arm, or a bad constant for an exhaustive switch.
	Missing constant.Value
}

// Unreachable returns the names of the unreachable arms, in order.
func (r Report) Unreachable() []string {
	var names []string
	for _, arm := range r.Arms {
		if !arm.Reachable {
			names = append(names, arm.Name)
		}
	}
	return names
}

// Matches returns the set of values satisfying every test.
func Matches(f valueset.Factory, tests []Test) valueset.ValueSet {
	set := f.AllValues()
	for _, t := range tests {
		set = set.Intersect(f.Related(t.Relation, t.Value))
	}
	return set
}

// Feasible reports whether some value of the factory's kind satisfies every test.
func Feasible(f valueset.Factory, tests []Test) bool { return !Matches(f, tests).IsEmpty() }

// Analyze walks the arms of a switch over a subject of the factory's kind, in order.
//
// For native-sized kinds, an `==` or `!=` test against a value within the 32-bit range matches no
// out-of-range value, so arms `== 5` and `!= 5` leave the out-of-range values unhandled.
func Analyze(f valueset.Factory, arms []Arm) Report {
	remaining := f.AllValues()
	results := make([]ArmResult, len(arms))
	for i, arm := range arms {
		matched := Matches(f, arm.Tests)
		handled := remaining.Intersect(matched)
		results[i] = ArmResult{Name: arm.Name, Reachable: !handled.IsEmpty(), Handled: handled}
		remaining = remaining.Intersect(matched.Complement())
	}
	return Report{
		Arms:       results,
		Exhaustive: remaining.IsEmpty(),
		Remaining:  remaining,
		Missing:    remaining.Sample(),
	}
}

// Select returns the index of the first arm taken for a constant subject, or -1 if no arm matches.
// Tests are evaluated between constants directly, without building value-sets.
func Select(f valueset.Factory, subject constant.Value, arms []Arm) int {
	for i, arm := range arms {
		taken := true
		for _, t := range arm.Tests {
			if !f.RelatedConstants(t.Relation, subject, t.Value) {
				taken = false
				break
			}
		}
		if taken {
			return i
		}
	}
	return -1
}
