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
	"github.com/wdamron/valueset/constant"
	"github.com/wdamron/valueset/internal/classify"
)

// Factories for each supported kind. Factories are stateless and may be shared across goroutines.
var (
	Int32  TypedFactory[int32]  = numericFactory[int32]{tc: classify.Int32}
	Int64  TypedFactory[int64]  = numericFactory[int64]{tc: classify.Int64}
	UInt32 TypedFactory[uint32] = numericFactory[uint32]{tc: classify.UInt32}
	UInt64 TypedFactory[uint64] = numericFactory[uint64]{tc: classify.UInt64}

	// NativeInt models nint with a 32-bit signed reference range.
	NativeInt TypedFactory[int32] = nativeFactory[int32]{
		kind:    constant.NativeInt,
		precise: numericFactory[int32]{tc: classify.Int32},
	}
	// NativeUInt models nuint with a 32-bit unsigned reference range.
	NativeUInt TypedFactory[uint32] = nativeFactory[uint32]{
		kind:    constant.NativeUInt,
		precise: numericFactory[uint32]{tc: classify.UInt32},
	}
)

// ForKind returns the factory for a kind, or false if value-sets are not supported for the kind.
func ForKind(k constant.Kind) (Factory, bool) {
	switch k {
	case constant.Int32:
		return Int32, true
	case constant.Int64:
		return Int64, true
	case constant.UInt32:
		return UInt32, true
	case constant.UInt64:
		return UInt64, true
	case constant.NativeInt:
		return NativeInt, true
	case constant.NativeUInt:
		return NativeUInt, true
	}
	return nil, false
}
