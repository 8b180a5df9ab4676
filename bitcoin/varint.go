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

package bitcoin

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrVarIntTruncated means the buffer ended before the encoded value did
var ErrVarIntTruncated = errors.New("truncated varint")

// ReadVarInt decodes a Bitcoin CompactSize integer from the start of data
// and returns the value and the number of bytes consumed
func ReadVarInt(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("empty input: %w", ErrVarIntTruncated)
	}
	switch data[0] {
	case 0xfd:
		if len(data) < 3 {
			return 0, 0, fmt.Errorf(
				"need 3 bytes, have %d: %w",
				len(data),
				ErrVarIntTruncated,
			)
		}
		return uint64(binary.LittleEndian.Uint16(data[1:])), 3, nil
	case 0xfe:
		if len(data) < 5 {
			return 0, 0, fmt.Errorf(
				"need 5 bytes, have %d: %w",
				len(data),
				ErrVarIntTruncated,
			)
		}
		return uint64(binary.LittleEndian.Uint32(data[1:])), 5, nil
	case 0xff:
		if len(data) < 9 {
			return 0, 0, fmt.Errorf(
				"need 9 bytes, have %d: %w",
				len(data),
				ErrVarIntTruncated,
			)
		}
		return binary.LittleEndian.Uint64(data[1:]), 9, nil
	default:
		return uint64(data[0]), 1, nil
	}
}

// AppendVarInt appends the Bitcoin CompactSize encoding of v to buf and
// returns the extended buffer
func AppendVarInt(buf []byte, v uint64) []byte {
	switch {
	case v < 0xfd:
		return append(buf, byte(v))
	case v <= 0xffff:
		buf = append(buf, 0xfd)
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case v <= 0xffffffff:
		buf = append(buf, 0xfe)
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	default:
		buf = append(buf, 0xff)
		return binary.LittleEndian.AppendUint64(buf, v)
	}
}
