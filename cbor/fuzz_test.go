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

//go:build go1.18

package cbor

import "testing"

func FuzzDecode(f *testing.F) {
	// Seed corpus with valid CBOR samples
	f.Add([]byte{0x00})                               // integer 0
	f.Add([]byte{0x18, 0x64})                         // integer 100
	f.Add([]byte{0x1b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}) // 2^64-1
	f.Add([]byte{0x3a, 0x00, 0x01, 0x86, 0x9f})       // negative integer -100000
	f.Add([]byte{0x40})                               // empty bytestring
	f.Add([]byte{0x44, 0x01, 0x02, 0x03, 0x04})       // bytestring
	f.Add([]byte{0x5f, 0x41, 0x01, 0xff})             // indefinite bytestring
	f.Add([]byte{0x60})                               // empty text string
	f.Add([]byte{0x65, 0x68, 0x65, 0x6c, 0x6c, 0x6f}) // "hello"
	f.Add([]byte{0x7f, 0x61, 0x61, 0xff})             // indefinite text string
	f.Add([]byte{0x80})                               // empty array
	f.Add([]byte{0x9f, 0xff})                         // indefinite array
	f.Add([]byte{0xa0})                               // empty map
	f.Add([]byte{0xbf, 0xff})                         // indefinite map
	f.Add([]byte{0xc0, 0x60})                         // tag 0 over empty text
	f.Add([]byte{0xc2, 0x42, 0x01, 0x02})             // positive bignum
	f.Add([]byte{0xc4, 0x82, 0x21, 0x19, 0x6a, 0xb3}) // decimal fraction
	f.Add([]byte{0xd9, 0x01, 0x02, 0x81, 0x01})       // set
	f.Add([]byte{0xf4})                               // false
	f.Add([]byte{0xf5})                               // true
	f.Add([]byte{0xf6})                               // null
	f.Add([]byte{0xf7})                               // undefined
	f.Add([]byte{0xf9, 0x3c, 0x00})                   // half float 1.0
	f.Add([]byte{0xfb, 0x3f, 0xf1, 0x99, 0x99, 0x99, 0x99, 0x99, 0x9a}) // 1.1

	f.Fuzz(func(t *testing.T, data []byte) {
		value, consumed, err := DecodeWithLength(data)
		if err != nil {
			return
		}
		// Should not panic and must account for its input precisely
		if consumed < 0 || consumed > len(data) {
			t.Fatalf("consumed %d bytes of %d", consumed, len(data))
		}
		// The consumed prefix alone decodes to the same value
		prefixValue, prefixConsumed, err := DecodeWithLength(data[:consumed])
		if err != nil {
			t.Fatalf("consumed prefix failed to decode: %s", err)
		}
		if prefixConsumed != consumed {
			t.Fatalf(
				"consumed prefix read %d bytes, original read %d",
				prefixConsumed,
				consumed,
			)
		}
		if canonicalKey(prefixValue) != canonicalKey(value) {
			t.Fatalf("consumed prefix decoded to a different value")
		}
	})
}
