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
	"encoding/binary"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"
)

const subaddressPrefix = "SubAddr\x00"

var (
	// ErrInvalidKeyLength means a key was not exactly 32 bytes
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidKey means a key was not a valid curve point or scalar
	ErrInvalidKey = errors.New("invalid key")
)

// hashToScalar is Monero's Hs: Keccak-256 of the input reduced mod the
// ed25519 group order
func hashToScalar(data []byte) (*edwards25519.Scalar, error) {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var wide [64]byte
	h.Sum(wide[:0])
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return nil, fmt.Errorf("reduce hash to scalar: %w", err)
	}
	return s, nil
}

// SubaddressKeys derives the public spend and view keys for subaddress
// (major, minor) from the account's private view key and public spend key.
// Index (0, 0) is the account's own address, so the base keys are returned
// unchanged
func SubaddressKeys(
	viewSecret []byte,
	spendPub []byte,
	major uint32,
	minor uint32,
) ([]byte, []byte, error) {
	if len(viewSecret) != 32 {
		return nil, nil, fmt.Errorf(
			"view secret is %d bytes: %w",
			len(viewSecret),
			ErrInvalidKeyLength,
		)
	}
	if len(spendPub) != 32 {
		return nil, nil, fmt.Errorf(
			"spend public key is %d bytes: %w",
			len(spendPub),
			ErrInvalidKeyLength,
		)
	}
	a, err := edwards25519.NewScalar().SetCanonicalBytes(viewSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("view secret: %w", ErrInvalidKey)
	}
	bPoint, err := new(edwards25519.Point).SetBytes(spendPub)
	if err != nil {
		return nil, nil, fmt.Errorf("spend public key: %w", ErrInvalidKey)
	}
	if major == 0 && minor == 0 {
		viewPub := new(edwards25519.Point).ScalarBaseMult(a)
		spendOut := make([]byte, 32)
		copy(spendOut, spendPub)
		return spendOut, viewPub.Bytes(), nil
	}
	// m = Hs("SubAddr\x00" || a || major || minor)
	data := make([]byte, 0, len(subaddressPrefix)+32+8)
	data = append(data, subaddressPrefix...)
	data = append(data, viewSecret...)
	data = binary.LittleEndian.AppendUint32(data, major)
	data = binary.LittleEndian.AppendUint32(data, minor)
	m, err := hashToScalar(data)
	if err != nil {
		return nil, nil, err
	}
	// D = B + m*G
	dPoint := new(edwards25519.Point).Add(
		bPoint,
		new(edwards25519.Point).ScalarBaseMult(m),
	)
	// C = a*D
	cPoint := new(edwards25519.Point).ScalarMult(a, dPoint)
	return dPoint.Bytes(), cPoint.Bytes(), nil
}
