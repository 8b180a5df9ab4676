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
	"time"
)

const (
	// Tag numbers with a semantic interpretation in this package
	CborTagDateString      = 0
	CborTagEpochDate       = 1
	CborTagPositiveBignum  = 2
	CborTagNegativeBignum  = 3
	CborTagDecimalFraction = 4
	CborTagBigFloat        = 5
	CborTagBase64Url       = 21
	CborTagBase64          = 22
	CborTagBase16          = 23
	CborTagUri             = 32
	CborTagBase64UrlText   = 33
	CborTagBase64Text      = 34
	CborTagRegexp          = 35
	CborTagMime            = 36
	CborTagSet             = 258
)

// DateString is a tag 0 item: an RFC 3339 timestamp over a text string. The
// UTC offset from the input is preserved in the Time's location
type DateString struct {
	Time time.Time
}

func (DateString) isValue() {}

// EpochDate is a tag 1 item: seconds since the Unix epoch over an integer or
// float, carried at millisecond resolution. FromFloat records whether the
// underlying item was a float
type EpochDate struct {
	Time      time.Time
	FromFloat bool
}

func (EpochDate) isValue() {}

// DecimalFraction is a tag 4 item: mantissa * 10^exponent. Both fields are
// Int or BigInt
type DecimalFraction struct {
	Mantissa Value
	Exponent Value
}

func (DecimalFraction) isValue() {}

// BigFloat is a tag 5 item: mantissa * 2^exponent. Both fields are Int or
// BigInt
type BigFloat struct {
	Mantissa Value
	Exponent Value
}

func (BigFloat) isValue() {}

// Set is a tag 258 item: an array with structural duplicates removed,
// preserving first occurrence
type Set struct {
	Items []Value
}

func (Set) isValue() {}

// URI is a tag 32 item over a text string
type URI string

func (URI) isValue() {}

// Regexp is a tag 35 item over a text string
type Regexp string

func (Regexp) isValue() {}

// MIME is a tag 36 item over a text string
type MIME string

func (MIME) isValue() {}

// BaseEncoding is the expected base encoding carried by tags 21-23 and 33-34
type BaseEncoding uint8

const (
	BaseEncodingBase64Url BaseEncoding = iota
	BaseEncodingBase64
	BaseEncodingBase16
)

// BaseEncoded is a tag 21/22/23 item over a byte string or a tag 33/34 item
// over a text string, recording the base encoding hint
type BaseEncoded struct {
	Inner    Value
	Encoding BaseEncoding
}

func (BaseEncoded) isValue() {}

// Tagged wraps an item whose tags matched no known interpretation. Tags are
// kept in encounter order (outermost first)
type Tagged struct {
	Tags  []uint64
	Inner Value
}

func (Tagged) isValue() {}

// applyTags consumes the pending tags accumulated for an item. An empty tag
// list returns the value unchanged. A single recognized tag over a matching
// item shape produces the refined value, unless its payload is invalid (an
// unparseable tag 0 date, a tag 4/5 array that is not two integers), which
// fails the decode. Anything else, including chained tags, is preserved
// verbatim as a Tagged wrapper
func applyTags(tags []uint64, v Value) (Value, error) {
	if len(tags) == 0 {
		return v, nil
	}
	if len(tags) == 1 {
		refined, ok, err := refineTag(tags[0], v)
		if err != nil {
			return nil, err
		}
		if ok {
			return refined, nil
		}
	}
	return Tagged{Tags: tags, Inner: v}, nil
}

func refineTag(tag uint64, v Value) (Value, bool, error) {
	switch tag {
	case CborTagDateString:
		if s, ok := v.(String); ok {
			t, err := time.Parse(time.RFC3339, string(s))
			if err != nil {
				return nil, false, fmt.Errorf(
					"tag 0 payload %q: %w",
					string(s),
					ErrInvalidRFC3339,
				)
			}
			return DateString{Time: t}, true, nil
		}
	case CborTagEpochDate:
		switch v := v.(type) {
		case Int:
			return EpochDate{Time: time.Unix(int64(v), 0).UTC()}, true, nil
		case Float:
			// Non-finite and out-of-range timestamps stay as generic tagged values
			ms := math.Round(v.Value * 1000)
			if math.IsNaN(ms) || ms >= math.MaxInt64 || ms < math.MinInt64 {
				return nil, false, nil
			}
			return EpochDate{
				Time:      time.UnixMilli(int64(ms)).UTC(),
				FromFloat: true,
			}, true, nil
		}
	case CborTagPositiveBignum:
		if bs, ok := v.(ByteString); ok {
			return BigInt{Int: new(big.Int).SetBytes(bs.Bytes())}, true, nil
		}
	case CborTagNegativeBignum:
		if bs, ok := v.(ByteString); ok {
			n := new(big.Int).SetBytes(bs.Bytes())
			n.Neg(n.Add(n, big.NewInt(1)))
			return BigInt{Int: n}, true, nil
		}
	case CborTagDecimalFraction:
		if arr, ok := v.(Array); ok {
			exponent, mantissa, err := tagPayloadPair(tag, arr)
			if err != nil {
				return nil, false, err
			}
			return DecimalFraction{Mantissa: mantissa, Exponent: exponent}, true, nil
		}
	case CborTagBigFloat:
		if arr, ok := v.(Array); ok {
			exponent, mantissa, err := tagPayloadPair(tag, arr)
			if err != nil {
				return nil, false, err
			}
			return BigFloat{Mantissa: mantissa, Exponent: exponent}, true, nil
		}
	case CborTagBase64Url:
		if bs, ok := v.(ByteString); ok {
			return BaseEncoded{Inner: bs, Encoding: BaseEncodingBase64Url}, true, nil
		}
	case CborTagBase64:
		if bs, ok := v.(ByteString); ok {
			return BaseEncoded{Inner: bs, Encoding: BaseEncodingBase64}, true, nil
		}
	case CborTagBase16:
		if bs, ok := v.(ByteString); ok {
			return BaseEncoded{Inner: bs, Encoding: BaseEncodingBase16}, true, nil
		}
	case CborTagUri:
		if s, ok := v.(String); ok {
			return URI(s), true, nil
		}
	case CborTagBase64UrlText:
		if s, ok := v.(String); ok {
			return BaseEncoded{Inner: s, Encoding: BaseEncodingBase64Url}, true, nil
		}
	case CborTagBase64Text:
		if s, ok := v.(String); ok {
			return BaseEncoded{Inner: s, Encoding: BaseEncodingBase64}, true, nil
		}
	case CborTagRegexp:
		if s, ok := v.(String); ok {
			return Regexp(s), true, nil
		}
	case CborTagMime:
		if s, ok := v.(String); ok {
			return MIME(s), true, nil
		}
	case CborTagSet:
		if arr, ok := v.(Array); ok {
			seen := make(map[string]struct{}, len(arr.Items))
			items := make([]Value, 0, len(arr.Items))
			for _, item := range arr.Items {
				key := canonicalKey(item)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				items = append(items, item)
			}
			return Set{Items: items}, true, nil
		}
	}
	return nil, false, nil
}

// tagPayloadPair validates the two-element integer array required by tags 4
// and 5 and returns its elements in encoded order (exponent, mantissa)
func tagPayloadPair(tag uint64, arr Array) (Value, Value, error) {
	if len(arr.Items) != 2 {
		return nil, nil, fmt.Errorf(
			"tag %d payload has %d elements, want 2: %w",
			tag,
			len(arr.Items),
			ErrMalformedTagPayload,
		)
	}
	for _, item := range arr.Items {
		switch item.(type) {
		case Int, BigInt:
		default:
			return nil, nil, fmt.Errorf(
				"tag %d payload element is %T, want integer: %w",
				tag,
				item,
				ErrMalformedTagPayload,
			)
		}
	}
	return arr.Items[0], arr.Items[1], nil
}
