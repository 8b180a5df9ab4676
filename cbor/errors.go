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
	"errors"
)

// Sentinel errors returned by Decode. They are wrapped with positional
// context, so check for them with errors.Is
var (
	// ErrUnexpectedEOF means the buffer ran out in the middle of an item
	ErrUnexpectedEOF = errors.New("unexpected end of CBOR data")

	// ErrMalformedHeader means an initial byte carried a reserved
	// additional-information value (28-30), or the indefinite-length marker
	// (31) on an integer or tag
	ErrMalformedHeader = errors.New("malformed item header")

	// ErrMalformedSimple means a major type 7 item carried an
	// additional-information value with no defined meaning. This includes a
	// break byte (0xff) found where an item was expected
	ErrMalformedSimple = errors.New("malformed simple value")

	// ErrMalformedIndefinite means a chunk inside an indefinite-length byte
	// or text string was not a definite-length string of the same major type
	ErrMalformedIndefinite = errors.New("malformed indefinite-length string")

	// ErrMalformedTagPayload means a tag 4/5 payload was not a two-element
	// array of integers
	ErrMalformedTagPayload = errors.New("malformed tag payload")

	// ErrInvalidUTF8 means a text string did not hold valid UTF-8
	ErrInvalidUTF8 = errors.New("text string is not valid UTF-8")

	// ErrInvalidRFC3339 means a tag 0 payload could not be parsed as an
	// RFC 3339 timestamp
	ErrInvalidRFC3339 = errors.New("invalid RFC 3339 timestamp")

	// ErrDepthExceeded means the nesting limit was reached before the item
	// was complete
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")

	// ErrTrailingBytes is returned in strict-trailing mode when the decoded
	// item did not consume the entire buffer
	ErrTrailingBytes = errors.New("trailing bytes after item")

	// ErrDuplicateMapKey is returned in strict-map-keys mode when a map
	// repeats a key
	ErrDuplicateMapKey = errors.New("duplicate map key")
)
