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

package bitcoin_test

import (
	"testing"

	"github.com/blinklabs-io/chainutils/bitcoin"
	"github.com/blinklabs-io/chainutils/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadVarInt(t *testing.T) {
	testDefs := []struct {
		dataHex  string
		value    uint64
		consumed int
	}{
		{dataHex: "00", value: 0, consumed: 1},
		{dataHex: "fc", value: 252, consumed: 1},
		{dataHex: "fdfd00", value: 253, consumed: 3},
		{dataHex: "fd0001", value: 256, consumed: 3},
		{dataHex: "fdffff", value: 65535, consumed: 3},
		{dataHex: "fe00000100", value: 65536, consumed: 5},
		{dataHex: "feffffffff", value: 4294967295, consumed: 5},
		{dataHex: "ff0000000001000000", value: 4294967296, consumed: 9},
		{dataHex: "ffffffffffffffffff", value: 18446744073709551615, consumed: 9},
		// Trailing bytes are ignored
		{dataHex: "01ffff", value: 1, consumed: 1},
	}
	for _, testDef := range testDefs {
		value, consumed, err := bitcoin.ReadVarInt(
			test.DecodeHexString(testDef.dataHex),
		)
		require.NoError(t, err, testDef.dataHex)
		assert.Equal(t, testDef.value, value, testDef.dataHex)
		assert.Equal(t, testDef.consumed, consumed, testDef.dataHex)
	}
}

func TestReadVarIntTruncated(t *testing.T) {
	for _, dataHex := range []string{"", "fd", "fd00", "fe000000", "ff00"} {
		_, _, err := bitcoin.ReadVarInt(test.DecodeHexString(dataHex))
		assert.ErrorIs(t, err, bitcoin.ErrVarIntTruncated, dataHex)
	}
}

func TestAppendVarInt(t *testing.T) {
	testDefs := []struct {
		value   uint64
		dataHex string
	}{
		{value: 0, dataHex: "00"},
		{value: 252, dataHex: "fc"},
		{value: 253, dataHex: "fdfd00"},
		{value: 65535, dataHex: "fdffff"},
		{value: 65536, dataHex: "fe00000100"},
		{value: 4294967295, dataHex: "feffffffff"},
		{value: 4294967296, dataHex: "ff0000000001000000"},
	}
	for _, testDef := range testDefs {
		encoded := bitcoin.AppendVarInt(nil, testDef.value)
		assert.Equal(
			t,
			test.DecodeHexString(testDef.dataHex),
			encoded,
			"%d",
			testDef.value,
		)
		// Round trip
		value, consumed, err := bitcoin.ReadVarInt(encoded)
		require.NoError(t, err)
		assert.Equal(t, testDef.value, value)
		assert.Equal(t, len(encoded), consumed)
	}
}
