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
	"encoding/hex"
)

// ByteString is a definite-length byte string
type ByteString struct {
	// We use a string because []byte isn't comparable, which means it can't be used as a map key
	data string
}

func (ByteString) isValue() {}

func NewByteString(data []byte) ByteString {
	return ByteString{
		data: string(data),
	}
}

func (bs ByteString) Bytes() []byte {
	return []byte(bs.data)
}

func (bs ByteString) String() string {
	return hex.EncodeToString([]byte(bs.data))
}

// IndefByteString is an indefinite-length byte string. The chunks are kept
// separate rather than concatenated, since chunk boundaries are part of the
// item as transmitted.
type IndefByteString struct {
	Chunks []ByteString
}

func (IndefByteString) isValue() {}

// Join returns the concatenation of all chunks
func (bs IndefByteString) Join() []byte {
	var ret []byte
	for _, chunk := range bs.Chunks {
		ret = append(ret, chunk.Bytes()...)
	}
	return ret
}
