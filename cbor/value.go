// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"
)

// Value is the interface implemented by every decoded CBOR item. The concrete
// types form a closed set, so a type switch over them is exhaustive.
type Value interface {
	isValue()
}

// Int holds a major type 0 or 1 item whose semantic value fits in an int64.
// Arguments outside that range decode to BigInt instead.
type Int int64

func (Int) isValue() {}

// BigInt holds an arbitrary-precision integer: a major type 0/1 argument of
// 2^63 or more, or a tag 2/3 bignum of any size (even one that fits in an
// int64).
type BigInt struct {
	Int *big.Int
}

func (BigInt) isValue() {}

func (b BigInt) String() string {
	return b.Int.String()
}

// String is a definite-length text string. The decoder guarantees valid UTF-8.
type String string

func (String) isValue() {}

// IndefString is an indefinite-length text string. The chunks are kept
// separate rather than concatenated, since chunk boundaries are part of the
// item as transmitted.
type IndefString struct {
	Chunks []string
}

func (IndefString) isValue() {}

// Join returns the concatenation of all chunks
func (s IndefString) Join() string {
	return strings.Join(s.Chunks, "")
}

// Array is a major type 4 item. Indefinite records whether the encoded form
// was break-terminated rather than length-prefixed.
type Array struct {
	Items      []Value
	Indefinite bool
}

func (Array) isValue() {}

// MapPair is a single key/value entry of a Map
type MapPair struct {
	Key   Value
	Value Value
}

// Map is a major type 5 item. Entries are kept in first-insertion order.
// Duplicate keys overwrite the existing entry in place (last write wins)
// unless strict map keys are enabled on the decoder.
type Map struct {
	Pairs      []MapPair
	Indefinite bool
}

func (Map) isValue() {}

// Get returns the value for the given key, using structural key identity
func (m Map) Get(key Value) (Value, bool) {
	want := canonicalKey(key)
	for _, pair := range m.Pairs {
		if canonicalKey(pair.Key) == want {
			return pair.Value, true
		}
	}
	return nil, false
}

// Bool is a major type 7 simple value 20 or 21
type Bool bool

func (Bool) isValue() {}

// Null is the major type 7 simple value 22
type Null struct{}

func (Null) isValue() {}

// Undefined is the major type 7 simple value 23, distinct from Null
type Undefined struct{}

func (Undefined) isValue() {}

// FloatPrecision records the encoded width of a float item
type FloatPrecision uint8

const (
	PrecisionHalf   FloatPrecision = iota // IEEE-754 binary16
	PrecisionSingle                       // IEEE-754 binary32
	PrecisionDouble                       // IEEE-754 binary64
)

// Float is a major type 7 float of any width, widened to float64. The source
// width is preserved in Precision.
type Float struct {
	Value     float64
	Precision FloatPrecision
}

func (Float) isValue() {}

// canonicalKey returns a deterministic structural digest of a value. Two
// values are structurally equal exactly when their canonical keys are equal.
// Used for map key identity and set deduplication.
func canonicalKey(v Value) string {
	var sb strings.Builder
	writeCanonicalKey(&sb, v)
	return sb.String()
}

func writeCanonicalKey(sb *strings.Builder, v Value) {
	switch v := v.(type) {
	case Int:
		fmt.Fprintf(sb, "i%d", int64(v))
	case BigInt:
		fmt.Fprintf(sb, "I%s", v.Int.String())
	case ByteString:
		fmt.Fprintf(sb, "b%d:%s", len(v.data), v.data)
	case IndefByteString:
		fmt.Fprintf(sb, "B%d(", len(v.Chunks))
		for _, chunk := range v.Chunks {
			writeCanonicalKey(sb, chunk)
		}
		sb.WriteByte(')')
	case String:
		fmt.Fprintf(sb, "s%d:%s", len(v), string(v))
	case IndefString:
		fmt.Fprintf(sb, "S%d(", len(v.Chunks))
		for _, chunk := range v.Chunks {
			fmt.Fprintf(sb, "s%d:%s", len(chunk), chunk)
		}
		sb.WriteByte(')')
	case Array:
		fmt.Fprintf(sb, "a%d(", len(v.Items))
		for _, item := range v.Items {
			writeCanonicalKey(sb, item)
		}
		sb.WriteByte(')')
	case Map:
		fmt.Fprintf(sb, "m%d(", len(v.Pairs))
		for _, pair := range v.Pairs {
			writeCanonicalKey(sb, pair.Key)
			sb.WriteByte('=')
			writeCanonicalKey(sb, pair.Value)
		}
		sb.WriteByte(')')
	case Set:
		fmt.Fprintf(sb, "t%d(", len(v.Items))
		for _, item := range v.Items {
			writeCanonicalKey(sb, item)
		}
		sb.WriteByte(')')
	case Bool:
		if v {
			sb.WriteString("T")
		} else {
			sb.WriteString("F")
		}
	case Null:
		sb.WriteString("N")
	case Undefined:
		sb.WriteString("U")
	case Float:
		fmt.Fprintf(sb, "f%d:%x", v.Precision, math.Float64bits(v.Value))
	case DecimalFraction:
		sb.WriteString("d(")
		writeCanonicalKey(sb, v.Mantissa)
		sb.WriteByte(',')
		writeCanonicalKey(sb, v.Exponent)
		sb.WriteByte(')')
	case BigFloat:
		sb.WriteString("g(")
		writeCanonicalKey(sb, v.Mantissa)
		sb.WriteByte(',')
		writeCanonicalKey(sb, v.Exponent)
		sb.WriteByte(')')
	case DateString:
		fmt.Fprintf(sb, "D%s", v.Time.Format(time.RFC3339Nano))
	case EpochDate:
		fmt.Fprintf(sb, "E%d:%t", v.Time.UnixMilli(), v.FromFloat)
	case URI:
		fmt.Fprintf(sb, "u%d:%s", len(v), string(v))
	case MIME:
		fmt.Fprintf(sb, "M%d:%s", len(v), string(v))
	case Regexp:
		fmt.Fprintf(sb, "r%d:%s", len(v), string(v))
	case BaseEncoded:
		fmt.Fprintf(sb, "x%d:", v.Encoding)
		writeCanonicalKey(sb, v.Inner)
	case Tagged:
		sb.WriteString("G[")
		for i, tag := range v.Tags {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(sb, "%d", tag)
		}
		sb.WriteString("]:")
		writeCanonicalKey(sb, v.Inner)
	}
}
