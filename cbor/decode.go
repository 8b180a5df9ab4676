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
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/x448/float16"
)

// Decode parses a single CBOR item from the start of data and returns it.
// Trailing bytes after the item are ignored unless WithStrictTrailing is given
func Decode(data []byte, opts ...DecodeOptionFunc) (Value, error) {
	v, _, err := DecodeWithLength(data, opts...)
	return v, err
}

// DecodeWithLength parses a single CBOR item from the start of data and
// returns it along with the number of bytes consumed
func DecodeWithLength(
	data []byte,
	opts ...DecodeOptionFunc,
) (Value, int, error) {
	cfg := decodeConfig{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	d := &decoder{
		data: data,
		cfg:  cfg,
	}
	v, err := d.decodeItem()
	if err != nil {
		return nil, 0, err
	}
	if cfg.strictTrailing && d.pos != len(data) {
		return nil, 0, fmt.Errorf(
			"%d bytes remain after item: %w",
			len(data)-d.pos,
			ErrTrailingBytes,
		)
	}
	return v, d.pos, nil
}

type decoder struct {
	data  []byte
	pos   int
	depth int
	cfg   decodeConfig
}

// decodeItem consumes one complete item at the current position, including
// any tags prefixed to it. Tags accumulate in encounter order until a
// non-tag item is produced, then applyTags consumes them atomically
func (d *decoder) decodeItem() (Value, error) {
	d.depth++
	if d.depth > d.cfg.maxDepth {
		return nil, fmt.Errorf(
			"offset %d: %w",
			d.pos,
			ErrDepthExceeded,
		)
	}
	defer func() {
		d.depth--
	}()
	var tags []uint64
	for {
		if d.pos >= len(d.data) {
			return nil, fmt.Errorf("offset %d: %w", d.pos, ErrUnexpectedEOF)
		}
		first := d.data[d.pos]
		cborType := first & CborTypeMask
		additional := first & CborAdditionalMask
		if cborType != CborTypeTag {
			v, err := d.decodeUntagged(cborType, additional)
			if err != nil {
				return nil, err
			}
			return applyTags(tags, v)
		}
		tag, err := d.readArgument(additional)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
}

func (d *decoder) decodeUntagged(cborType, additional uint8) (Value, error) {
	switch cborType {
	case CborTypeUint:
		n, err := d.readArgument(additional)
		if err != nil {
			return nil, err
		}
		if n > math.MaxInt64 {
			return BigInt{Int: new(big.Int).SetUint64(n)}, nil
		}
		return Int(n), nil
	case CborTypeNint:
		n, err := d.readArgument(additional)
		if err != nil {
			return nil, err
		}
		if n > math.MaxInt64 {
			// -1 - n
			tmp := new(big.Int).SetUint64(n)
			tmp.Neg(tmp.Add(tmp, big.NewInt(1)))
			return BigInt{Int: tmp}, nil
		}
		return Int(-1 - int64(n)), nil
	case CborTypeByteString:
		return d.decodeByteString(additional)
	case CborTypeTextString:
		return d.decodeTextString(additional)
	case CborTypeArray:
		return d.decodeArray(additional)
	case CborTypeMap:
		return d.decodeMap(additional)
	default:
		return d.decodeSimple(additional)
	}
}

// readArgument decodes the argument carried by the initial byte at the
// current position and advances past the initial byte and any follow-on
// bytes. The indefinite-length marker is rejected; callers that allow it
// check for it before calling
func (d *decoder) readArgument(additional uint8) (uint64, error) {
	switch {
	case additional <= CborMaxUintSimple:
		d.pos++
		return uint64(additional), nil
	case additional == CborAdditionalUint8:
		if err := d.need(2); err != nil {
			return 0, err
		}
		n := uint64(d.data[d.pos+1])
		d.pos += 2
		return n, nil
	case additional == CborAdditionalUint16:
		if err := d.need(3); err != nil {
			return 0, err
		}
		n := uint64(binary.BigEndian.Uint16(d.data[d.pos+1:]))
		d.pos += 3
		return n, nil
	case additional == CborAdditionalUint32:
		if err := d.need(5); err != nil {
			return 0, err
		}
		n := uint64(binary.BigEndian.Uint32(d.data[d.pos+1:]))
		d.pos += 5
		return n, nil
	case additional == CborAdditionalUint64:
		if err := d.need(9); err != nil {
			return 0, err
		}
		n := binary.BigEndian.Uint64(d.data[d.pos+1:])
		d.pos += 9
		return n, nil
	case additional == CborAdditionalIndefinite:
		return 0, fmt.Errorf(
			"offset %d: indefinite length not allowed here: %w",
			d.pos,
			ErrMalformedHeader,
		)
	default:
		return 0, fmt.Errorf(
			"offset %d: reserved additional info %d: %w",
			d.pos,
			additional,
			ErrMalformedHeader,
		)
	}
}

// need checks that n bytes are available starting at the current position
func (d *decoder) need(n int) error {
	if len(d.data)-d.pos < n {
		return fmt.Errorf("offset %d: %w", d.pos, ErrUnexpectedEOF)
	}
	return nil
}

// readLength reads a string/container length argument and checks it against
// the remaining input so a bogus length can't trigger a huge allocation
func (d *decoder) readLength(additional uint8) (int, error) {
	start := d.pos
	n, err := d.readArgument(additional)
	if err != nil {
		return 0, err
	}
	if n > uint64(len(d.data)-d.pos) {
		return 0, fmt.Errorf(
			"offset %d: length %d exceeds remaining input: %w",
			start,
			n,
			ErrUnexpectedEOF,
		)
	}
	return int(n), nil
}

func (d *decoder) decodeByteString(additional uint8) (Value, error) {
	if additional == CborAdditionalIndefinite {
		d.pos++
		chunks := []ByteString{}
		for {
			if d.pos >= len(d.data) {
				return nil, fmt.Errorf("offset %d: %w", d.pos, ErrUnexpectedEOF)
			}
			if d.data[d.pos] == CborBreak {
				d.pos++
				return IndefByteString{Chunks: chunks}, nil
			}
			first := d.data[d.pos]
			if first&CborTypeMask != CborTypeByteString ||
				first&CborAdditionalMask == CborAdditionalIndefinite {
				return nil, fmt.Errorf(
					"offset %d: chunk is not a definite byte string: %w",
					d.pos,
					ErrMalformedIndefinite,
				)
			}
			length, err := d.readLength(first & CborAdditionalMask)
			if err != nil {
				return nil, err
			}
			chunks = append(
				chunks,
				NewByteString(d.data[d.pos:d.pos+length]),
			)
			d.pos += length
		}
	}
	length, err := d.readLength(additional)
	if err != nil {
		return nil, err
	}
	ret := NewByteString(d.data[d.pos : d.pos+length])
	d.pos += length
	return ret, nil
}

func (d *decoder) decodeTextString(additional uint8) (Value, error) {
	if additional == CborAdditionalIndefinite {
		d.pos++
		chunks := []string{}
		for {
			if d.pos >= len(d.data) {
				return nil, fmt.Errorf("offset %d: %w", d.pos, ErrUnexpectedEOF)
			}
			if d.data[d.pos] == CborBreak {
				d.pos++
				return IndefString{Chunks: chunks}, nil
			}
			first := d.data[d.pos]
			if first&CborTypeMask != CborTypeTextString ||
				first&CborAdditionalMask == CborAdditionalIndefinite {
				return nil, fmt.Errorf(
					"offset %d: chunk is not a definite text string: %w",
					d.pos,
					ErrMalformedIndefinite,
				)
			}
			chunk, err := d.readTextChunk(first & CborAdditionalMask)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, chunk)
		}
	}
	chunk, err := d.readTextChunk(additional)
	if err != nil {
		return nil, err
	}
	return String(chunk), nil
}

func (d *decoder) readTextChunk(additional uint8) (string, error) {
	start := d.pos
	length, err := d.readLength(additional)
	if err != nil {
		return "", err
	}
	raw := d.data[d.pos : d.pos+length]
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("offset %d: %w", start, ErrInvalidUTF8)
	}
	d.pos += length
	return string(raw), nil
}

func (d *decoder) decodeArray(additional uint8) (Value, error) {
	if additional == CborAdditionalIndefinite {
		d.pos++
		items := []Value{}
		for {
			if d.pos >= len(d.data) {
				return nil, fmt.Errorf("offset %d: %w", d.pos, ErrUnexpectedEOF)
			}
			if d.data[d.pos] == CborBreak {
				d.pos++
				return Array{Items: items, Indefinite: true}, nil
			}
			item, err := d.decodeItem()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
	length, err := d.readLength(additional)
	if err != nil {
		return nil, err
	}
	items := make([]Value, 0, length)
	for i := 0; i < length; i++ {
		item, err := d.decodeItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return Array{Items: items}, nil
}

func (d *decoder) decodeMap(additional uint8) (Value, error) {
	ret := Map{}
	// Index of each key's canonical form into ret.Pairs, so a repeated key
	// overwrites in place and keeps its original position
	index := map[string]int{}
	addPair := func(key, value Value) error {
		ck := canonicalKey(key)
		if i, ok := index[ck]; ok {
			if d.cfg.strictMapKeys {
				return fmt.Errorf(
					"offset %d: %w",
					d.pos,
					ErrDuplicateMapKey,
				)
			}
			ret.Pairs[i].Value = value
			return nil
		}
		index[ck] = len(ret.Pairs)
		ret.Pairs = append(ret.Pairs, MapPair{Key: key, Value: value})
		return nil
	}
	if additional == CborAdditionalIndefinite {
		d.pos++
		ret.Indefinite = true
		for {
			if d.pos >= len(d.data) {
				return nil, fmt.Errorf("offset %d: %w", d.pos, ErrUnexpectedEOF)
			}
			if d.data[d.pos] == CborBreak {
				d.pos++
				return ret, nil
			}
			key, err := d.decodeItem()
			if err != nil {
				return nil, err
			}
			value, err := d.decodeItem()
			if err != nil {
				return nil, err
			}
			if err := addPair(key, value); err != nil {
				return nil, err
			}
		}
	}
	length, err := d.readLength(additional)
	if err != nil {
		return nil, err
	}
	for i := 0; i < length; i++ {
		key, err := d.decodeItem()
		if err != nil {
			return nil, err
		}
		value, err := d.decodeItem()
		if err != nil {
			return nil, err
		}
		if err := addPair(key, value); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (d *decoder) decodeSimple(additional uint8) (Value, error) {
	switch additional {
	case CborSimpleFalse:
		d.pos++
		return Bool(false), nil
	case CborSimpleTrue:
		d.pos++
		return Bool(true), nil
	case CborSimpleNull:
		d.pos++
		return Null{}, nil
	case CborSimpleUndefined:
		d.pos++
		return Undefined{}, nil
	case CborAdditionalUint16:
		if err := d.need(3); err != nil {
			return nil, err
		}
		f := float16.Frombits(binary.BigEndian.Uint16(d.data[d.pos+1:]))
		d.pos += 3
		return Float{
			Value:     float64(f.Float32()),
			Precision: PrecisionHalf,
		}, nil
	case CborAdditionalUint32:
		if err := d.need(5); err != nil {
			return nil, err
		}
		f := math.Float32frombits(binary.BigEndian.Uint32(d.data[d.pos+1:]))
		d.pos += 5
		return Float{
			Value:     float64(f),
			Precision: PrecisionSingle,
		}, nil
	case CborAdditionalUint64:
		if err := d.need(9); err != nil {
			return nil, err
		}
		f := math.Float64frombits(binary.BigEndian.Uint64(d.data[d.pos+1:]))
		d.pos += 9
		return Float{
			Value:     f,
			Precision: PrecisionDouble,
		}, nil
	default:
		// This also catches a break byte (additional info 31) outside an
		// indefinite-length container
		return nil, fmt.Errorf(
			"offset %d: simple value with additional info %d: %w",
			d.pos,
			additional,
			ErrMalformedSimple,
		)
	}
}
