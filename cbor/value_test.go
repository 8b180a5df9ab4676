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

package cbor_test

import (
	"bytes"
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/blinklabs-io/chainutils/cbor"
)

func TestMapGet(t *testing.T) {
	// {h'0102': 1, "key": [2, 3]}
	cborData, _ := hex.DecodeString("a242010201636b6579820203")
	value, err := cbor.Decode(cborData)
	if err != nil {
		t.Fatalf("failed to decode CBOR: %s", err)
	}
	m, ok := value.(cbor.Map)
	if !ok {
		t.Fatalf("expected Map, got %T", value)
	}
	bsValue, ok := m.Get(cbor.NewByteString([]byte{0x01, 0x02}))
	if !ok {
		t.Fatalf("byte string key not found")
	}
	if !reflect.DeepEqual(bsValue, cbor.Int(1)) {
		t.Fatalf("unexpected value for byte string key: %#v", bsValue)
	}
	arrValue, ok := m.Get(cbor.String("key"))
	if !ok {
		t.Fatalf("text key not found")
	}
	expectedArr := cbor.Array{Items: []cbor.Value{cbor.Int(2), cbor.Int(3)}}
	if !reflect.DeepEqual(arrValue, expectedArr) {
		t.Fatalf("unexpected value for text key: %#v", arrValue)
	}
	if _, ok := m.Get(cbor.Int(42)); ok {
		t.Fatalf("found value for missing key")
	}
}

func TestMapCompositeKeys(t *testing.T) {
	// {[1, 2]: "a", {3: 4}: "b"}
	cborData, _ := hex.DecodeString("a28201026161a103046162")
	value, err := cbor.Decode(cborData)
	if err != nil {
		t.Fatalf("failed to decode CBOR: %s", err)
	}
	m, ok := value.(cbor.Map)
	if !ok {
		t.Fatalf("expected Map, got %T", value)
	}
	arrKey := cbor.Array{Items: []cbor.Value{cbor.Int(1), cbor.Int(2)}}
	got, ok := m.Get(arrKey)
	if !ok {
		t.Fatalf("array key not found")
	}
	if !reflect.DeepEqual(got, cbor.String("a")) {
		t.Fatalf("unexpected value for array key: %#v", got)
	}
	mapKey := cbor.Map{
		Pairs: []cbor.MapPair{{Key: cbor.Int(3), Value: cbor.Int(4)}},
	}
	got, ok = m.Get(mapKey)
	if !ok {
		t.Fatalf("map key not found")
	}
	if !reflect.DeepEqual(got, cbor.String("b")) {
		t.Fatalf("unexpected value for map key: %#v", got)
	}
}

func TestSetStructuralDedup(t *testing.T) {
	// 258([[1, 2], [1, 2], [2, 1]])
	cborData, _ := hex.DecodeString("d9010283820102820102820201")
	value, err := cbor.Decode(cborData)
	if err != nil {
		t.Fatalf("failed to decode CBOR: %s", err)
	}
	expected := cbor.Set{
		Items: []cbor.Value{
			cbor.Array{Items: []cbor.Value{cbor.Int(1), cbor.Int(2)}},
			cbor.Array{Items: []cbor.Value{cbor.Int(2), cbor.Int(1)}},
		},
	}
	if !reflect.DeepEqual(value, expected) {
		t.Fatalf(
			"set did not deduplicate structurally\n  got: %#v\n  wanted: %#v",
			value,
			expected,
		)
	}
}

func TestIndefByteStringJoin(t *testing.T) {
	cborData, _ := hex.DecodeString("5f44aabbccdd43eeff99ff")
	value, err := cbor.Decode(cborData)
	if err != nil {
		t.Fatalf("failed to decode CBOR: %s", err)
	}
	bs, ok := value.(cbor.IndefByteString)
	if !ok {
		t.Fatalf("expected IndefByteString, got %T", value)
	}
	expected := []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x99}
	if !bytes.Equal(bs.Join(), expected) {
		t.Fatalf("unexpected joined bytes: %x", bs.Join())
	}
}

func TestIndefStringJoin(t *testing.T) {
	cborData, _ := hex.DecodeString("7f657374726561646d696e67ff")
	value, err := cbor.Decode(cborData)
	if err != nil {
		t.Fatalf("failed to decode CBOR: %s", err)
	}
	s, ok := value.(cbor.IndefString)
	if !ok {
		t.Fatalf("expected IndefString, got %T", value)
	}
	if s.Join() != "streaming" {
		t.Fatalf("unexpected joined string: %q", s.Join())
	}
}

func TestByteString(t *testing.T) {
	bs := cbor.NewByteString([]byte{0xde, 0xad, 0xbe, 0xef})
	if !bytes.Equal(bs.Bytes(), []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Fatalf("unexpected bytes: %x", bs.Bytes())
	}
	if bs.String() != "deadbeef" {
		t.Fatalf("unexpected string: %s", bs.String())
	}
}

func TestDumpValue(t *testing.T) {
	cborData, _ := hex.DecodeString("a1016449455446")
	value, err := cbor.Decode(cborData)
	if err != nil {
		t.Fatalf("failed to decode CBOR: %s", err)
	}
	dump := cbor.DumpValue(value, "")
	if dump == "" {
		t.Fatalf("expected non-empty dump")
	}
}
