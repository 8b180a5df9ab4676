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
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Address version bytes for common networks
const (
	AddressVersionMainnetPubKeyHash byte = 0x00
	AddressVersionMainnetScriptHash byte = 0x05
	AddressVersionTestnetPubKeyHash byte = 0x6f
	AddressVersionTestnetScriptHash byte = 0xc4
)

// EncodeAddress returns the Base58Check address for the given version byte
// and payload (usually a 20-byte hash)
func EncodeAddress(version byte, payload []byte) string {
	return base58.CheckEncode(payload, version)
}

// DecodeAddress parses a Base58Check address and returns its version byte
// and payload. The checksum is verified
func DecodeAddress(addr string) (byte, []byte, error) {
	payload, version, err := base58.CheckDecode(addr)
	if err != nil {
		return 0, nil, fmt.Errorf("decode address %q: %w", addr, err)
	}
	return version, payload, nil
}
