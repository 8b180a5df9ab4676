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

// DefaultMaxDepth is the nesting limit used when WithMaxDepth is not given
const DefaultMaxDepth = 1000

type decodeConfig struct {
	maxDepth       int
	strictTrailing bool
	strictMapKeys  bool
}

// DecodeOptionFunc is a type that represents functions that modify the decoder config
type DecodeOptionFunc func(*decodeConfig)

// WithMaxDepth specifies the maximum item nesting depth. The outermost item
// is level 1 and each array element, map key or map value sits one level
// below its container; tags prefixed to an item do not add a level.
// Exceeding it fails the decode with ErrDepthExceeded
func WithMaxDepth(maxDepth int) DecodeOptionFunc {
	return func(c *decodeConfig) {
		c.maxDepth = maxDepth
	}
}

// WithStrictTrailing specifies that the item must consume the entire input
// buffer. Leftover bytes fail the decode with ErrTrailingBytes. The default
// is to ignore trailing bytes
func WithStrictTrailing() DecodeOptionFunc {
	return func(c *decodeConfig) {
		c.strictTrailing = true
	}
}

// WithStrictMapKeys specifies that repeated map keys fail the decode with
// ErrDuplicateMapKey. The default is last write wins
func WithStrictMapKeys() DecodeOptionFunc {
	return func(c *decodeConfig) {
		c.strictMapKeys = true
	}
}
