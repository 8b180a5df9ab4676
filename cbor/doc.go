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

/*
Package cbor decodes RFC 8949 CBOR data into a typed value tree.

Decode parses one self-delimiting item from the start of a byte buffer and
returns a Value. The concrete types behind Value form a closed set, so
consumers dispatch with a type switch:

	v, err := cbor.Decode(data)
	if err != nil {
		return err
	}
	switch v := v.(type) {
	case cbor.Int:
		...
	case cbor.Array:
		...
	}

The model preserves item semantics rather than flattening to Go natives:
indefinite-length strings keep their chunk boundaries, maps keep insertion
order and their definite/indefinite origin, floats keep their encoded width,
and integer arguments of 2^63 and above are carried as big integers.

A handful of well-known tags are interpreted: RFC 3339 date strings (0),
epoch dates (1), bignums (2/3), decimal fractions (4), big floats (5),
expected base encodings (21-23, 33-34), URIs (32), regexps (35), MIME
messages (36), and sets (258). Exactly one tag is matched per item; chained
tags and everything else are preserved verbatim as a Tagged wrapper.

Decoding is a pure function over the input buffer. There is no shared state,
so concurrent decodes need no coordination.
*/
package cbor
