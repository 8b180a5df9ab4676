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

package monero

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Network prefix bytes for standard and subaddress formats
const (
	NetworkMainnet            byte = 18
	NetworkMainnetSubaddress  byte = 42
	NetworkTestnet            byte = 53
	NetworkTestnetSubaddress  byte = 63
	NetworkStagenet           byte = 24
	NetworkStagenetSubaddress byte = 36
)

const addressChecksumSize = 4

var (
	// ErrInvalidAddressLength means the decoded payload is not the expected
	// size for an address
	ErrInvalidAddressLength = errors.New("invalid address length")

	// ErrInvalidAddressChecksum means the trailing checksum does not match
	// the payload
	ErrInvalidAddressChecksum = errors.New("invalid address checksum")
)

func addressChecksum(payload []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(payload)
	return h.Sum(nil)[:addressChecksumSize]
}

// EncodeAddress builds an address from a network prefix byte and the public
// spend and view keys
func EncodeAddress(network byte, spendPub []byte, viewPub []byte) (string, error) {
	if len(spendPub) != 32 {
		return "", fmt.Errorf(
			"spend public key is %d bytes: %w",
			len(spendPub),
			ErrInvalidKeyLength,
		)
	}
	if len(viewPub) != 32 {
		return "", fmt.Errorf(
			"view public key is %d bytes: %w",
			len(viewPub),
			ErrInvalidKeyLength,
		)
	}
	payload := make([]byte, 0, 1+64+addressChecksumSize)
	payload = append(payload, network)
	payload = append(payload, spendPub...)
	payload = append(payload, viewPub...)
	payload = append(payload, addressChecksum(payload)...)
	return EncodeBase58(payload), nil
}

// DecodeAddress parses an address and returns its network prefix byte and
// public spend and view keys. The checksum is verified
func DecodeAddress(addr string) (byte, []byte, []byte, error) {
	payload, err := DecodeBase58(addr)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("decode address: %w", err)
	}
	if len(payload) != 1+64+addressChecksumSize {
		return 0, nil, nil, fmt.Errorf(
			"payload is %d bytes: %w",
			len(payload),
			ErrInvalidAddressLength,
		)
	}
	body := payload[:len(payload)-addressChecksumSize]
	checksum := payload[len(payload)-addressChecksumSize:]
	if !bytes.Equal(checksum, addressChecksum(body)) {
		return 0, nil, nil, ErrInvalidAddressChecksum
	}
	return body[0], body[1:33], body[33:65], nil
}
