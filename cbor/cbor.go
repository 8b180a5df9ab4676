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

const (
	CborTypeUint       uint8 = 0x00
	CborTypeNint       uint8 = 0x20
	CborTypeByteString uint8 = 0x40
	CborTypeTextString uint8 = 0x60
	CborTypeArray      uint8 = 0x80
	CborTypeMap        uint8 = 0xa0
	CborTypeTag        uint8 = 0xc0
	CborTypeSimple     uint8 = 0xe0

	// Only the top 3 bits are used to specify the type
	CborTypeMask uint8 = 0xe0

	// The bottom 5 bits carry the additional information
	CborAdditionalMask uint8 = 0x1f

	// Max value able to be stored in the additional info without follow-on bytes
	CborMaxUintSimple uint8 = 0x17

	// Additional info values selecting the follow-on argument width
	CborAdditionalUint8      uint8 = 24
	CborAdditionalUint16     uint8 = 25
	CborAdditionalUint32     uint8 = 26
	CborAdditionalUint64     uint8 = 27
	CborAdditionalIndefinite uint8 = 31

	// Simple values (major type 7)
	CborSimpleFalse     uint8 = 20
	CborSimpleTrue      uint8 = 21
	CborSimpleNull      uint8 = 22
	CborSimpleUndefined uint8 = 23

	// Terminator for indefinite-length items
	CborBreak uint8 = 0xff
)
