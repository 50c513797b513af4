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

// constant provides the literal-constant representation consumed by value-sets.
//
// A Value is an immutable integer literal tagged with the kind of its declared type. A Value may be
// marked bad (invalid or unrepresentable), in which case it carries no kind and no payload.
package constant

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind tags the primitive integer type of a literal.
type Kind uint8

const (
	Invalid Kind = iota
	Int32
	Int64
	UInt32
	UInt64
	// Native-sized signed integer; 32 or 64 bits depending on the target platform.
	NativeInt
	// Native-sized unsigned integer; 32 or 64 bits depending on the target platform.
	NativeUInt
)

// Kinds contains every valid kind, in declaration order.
var Kinds = [...]Kind{Int32, Int64, UInt32, UInt64, NativeInt, NativeUInt}

var kindNames = [...]string{
	Invalid:    "invalid",
	Int32:      "int",
	Int64:      "long",
	UInt32:     "uint",
	UInt64:     "ulong",
	NativeInt:  "nint",
	NativeUInt: "nuint",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Signed reports whether values of the kind are interpreted as two's-complement signed integers.
func (k Kind) Signed() bool { return k == Int32 || k == Int64 || k == NativeInt }

// Native reports whether the bit-width of the kind depends on the target platform.
func (k Kind) Native() bool { return k == NativeInt || k == NativeUInt }

var ErrUnknownKind = errors.New("unknown kind")

// ParseKind converts a kind name (e.g. `nint`) into a kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Value is a literal constant. The zero Value is bad.
type Value struct {
	bits uint64
	kind Kind
	ok   bool
}

// Bad returns the invalid constant.
func Bad() Value { return Value{} }

func MakeInt32(v int32) Value   { return Value{bits: uint64(int64(v)), kind: Int32, ok: true} }
func MakeInt64(v int64) Value   { return Value{bits: uint64(v), kind: Int64, ok: true} }
func MakeUInt32(v uint32) Value { return Value{bits: uint64(v), kind: UInt32, ok: true} }
func MakeUInt64(v uint64) Value { return Value{bits: v, kind: UInt64, ok: true} }

// MakeNativeInt creates a native-sized signed literal. The literal may lie outside the 32-bit range.
func MakeNativeInt(v int64) Value { return Value{bits: uint64(v), kind: NativeInt, ok: true} }

// MakeNativeUInt creates a native-sized unsigned literal. The literal may lie outside the 32-bit range.
func MakeNativeUInt(v uint64) Value { return Value{bits: v, kind: NativeUInt, ok: true} }

// MakeSigned creates a literal of a signed kind. The value is truncated to the width of fixed-width kinds.
func MakeSigned(k Kind, v int64) Value {
	switch k {
	case Int32:
		return MakeInt32(int32(v))
	case Int64:
		return MakeInt64(v)
	case NativeInt:
		return MakeNativeInt(v)
	}
	return MakeUnsigned(k, uint64(v))
}

// MakeUnsigned creates a literal of an unsigned kind. The value is truncated to the width of fixed-width kinds.
func MakeUnsigned(k Kind, v uint64) Value {
	switch k {
	case UInt32:
		return MakeUInt32(uint32(v))
	case UInt64:
		return MakeUInt64(v)
	case NativeUInt:
		return MakeNativeUInt(v)
	case Int32, Int64, NativeInt:
		return MakeSigned(k, int64(v))
	}
	return Bad()
}

// IsBad reports whether the constant is invalid or unrepresentable.
func (v Value) IsBad() bool { return !v.ok }

// Kind returns the kind of the constant, or Invalid for a bad constant.
func (v Value) Kind() Kind { return v.kind }

// Int64 returns the payload interpreted as a signed 64-bit integer.
func (v Value) Int64() int64 { return int64(v.bits) }

// Uint64 returns the payload interpreted as an unsigned 64-bit integer.
func (v Value) Uint64() uint64 { return v.bits }

func (v Value) Int32() int32   { return int32(v.bits) }
func (v Value) Uint32() uint32 { return uint32(v.bits) }

// IsNegative reports whether a signed constant is below zero.
func (v Value) IsNegative() bool { return v.kind.Signed() && int64(v.bits) < 0 }

// WithKind re-tags the payload of a constant with another kind of the same signedness.
func (v Value) WithKind(k Kind) Value {
	if !v.ok {
		return v
	}
	if k.Signed() {
		return MakeSigned(k, v.Int64())
	}
	return MakeUnsigned(k, v.Uint64())
}

// Compare returns -1, 0 or +1 as a is mathematically less than, equal to, or greater than b.
// Constants of different signedness are compared by value. Comparing a bad constant panics.
func Compare(a, b Value) int {
	if !a.ok || !b.ok {
		panic("constant: compare of bad constant")
	}
	switch an, bn := a.IsNegative(), b.IsNegative(); {
	case an && !bn:
		return -1
	case !an && bn:
		return 1
	case an && bn:
		return compareInt64(a.Int64(), b.Int64())
	}
	return compareUint64(a.bits, b.bits)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (v Value) String() string {
	if !v.ok {
		return "bad"
	}
	if v.kind.Signed() {
		return strconv.FormatInt(v.Int64(), 10)
	}
	return strconv.FormatUint(v.bits, 10)
}
