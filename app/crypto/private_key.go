/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package crypto

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-client-go/app/tools"
	"golang.org/x/crypto/pbkdf2"
)

type algorithm int

const (
	algorithmEd25519 algorithm = iota + 1
	algorithmEcdsaSecp256k1
)

const (
	ed25519SeedLength = 32
	chainCodeLength   = 32

	// pseudo index used by wallets for the all-0xff legacy path segment
	legacyDeriveAllFs = 0x00ff_ffff_ffff
)

// PrivateKey is an algorithm-tagged signing key. Raw scalar material never
// leaves the package except through the explicit Bytes accessors. Ed25519 keys
// carry an optional chain code enabling hardened derivation.
type PrivateKey struct {
	algorithm  algorithm
	ed25519Key ed25519.PrivateKey
	ecdsaKey   *secp256k1.PrivateKey
	chainCode  []byte
}

// GenerateEd25519PrivateKey draws a fresh Ed25519 key from crypto/rand
func GenerateEd25519PrivateKey() (PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return PrivateKey{}, sdkerrors.WrapKey(err, "Failed to generate ed25519 key")
	}
	return PrivateKey{algorithm: algorithmEd25519, ed25519Key: key}, nil
}

// GenerateEcdsaPrivateKey draws a fresh secp256k1 key from crypto/rand
func GenerateEcdsaPrivateKey() (PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return PrivateKey{}, sdkerrors.WrapKey(err, "Failed to generate ecdsa key")
	}
	return PrivateKey{algorithm: algorithmEcdsaSecp256k1, ecdsaKey: key}, nil
}

// PrivateKeyFromBytesEd25519 accepts a 32-byte seed or the 64-byte
// seed-plus-public form.
func PrivateKeyFromBytesEd25519(data []byte) (PrivateKey, error) {
	switch len(data) {
	case ed25519SeedLength:
		return PrivateKey{algorithm: algorithmEd25519, ed25519Key: ed25519.NewKeyFromSeed(data)}, nil
	case ed25519.PrivateKeySize:
		seed := make([]byte, ed25519SeedLength)
		copy(seed, data[:ed25519SeedLength])
		return PrivateKey{algorithm: algorithmEd25519, ed25519Key: ed25519.NewKeyFromSeed(seed)}, nil
	default:
		return PrivateKey{}, sdkerrors.ErrKey("Invalid ed25519 private key length %d", len(data))
	}
}

func PrivateKeyFromBytesEcdsa(data []byte) (PrivateKey, error) {
	if len(data) != 32 {
		return PrivateKey{}, sdkerrors.ErrKey("Invalid ecdsa private key length %d", len(data))
	}
	return PrivateKey{algorithm: algorithmEcdsaSecp256k1, ecdsaKey: secp256k1.PrivKeyFromBytes(data)}, nil
}

// PrivateKeyFromString parses hex encoded key material, either raw 32/64-byte
// Ed25519 material or a DER encoded key of either algorithm.
func PrivateKeyFromString(value string) (PrivateKey, error) {
	decoded, err := hex.DecodeString(tools.SafeRemoveHexPrefix(value))
	if err != nil {
		return PrivateKey{}, sdkerrors.WrapKey(err, "Invalid private key hex")
	}

	switch len(decoded) {
	case ed25519SeedLength, ed25519.PrivateKeySize:
		return PrivateKeyFromBytesEd25519(decoded)
	default:
		return PrivateKeyFromBytesDer(decoded)
	}
}

func (sk PrivateKey) IsEd25519() bool {
	return sk.algorithm == algorithmEd25519
}

func (sk PrivateKey) IsEcdsa() bool {
	return sk.algorithm == algorithmEcdsaSecp256k1
}

// BytesRaw returns the 32-byte scalar
func (sk PrivateKey) BytesRaw() []byte {
	switch sk.algorithm {
	case algorithmEd25519:
		return sk.ed25519Key.Seed()
	default:
		return sk.ecdsaKey.Serialize()
	}
}

func (sk PrivateKey) String() string {
	return hex.EncodeToString(sk.BytesDer())
}

func (sk PrivateKey) PublicKey() PublicKey {
	switch sk.algorithm {
	case algorithmEd25519:
		return PublicKey{
			algorithm:  algorithmEd25519,
			ed25519Key: sk.ed25519Key.Public().(ed25519.PublicKey),
		}
	default:
		return PublicKey{algorithm: algorithmEcdsaSecp256k1, ecdsaKey: sk.ecdsaKey.PubKey()}
	}
}

// Sign produces a deterministic 64-byte Ed25519 signature, or for ECDSA keys
// a raw r||s signature over the Keccak-256 digest of the message.
func (sk PrivateKey) Sign(message []byte) []byte {
	switch sk.algorithm {
	case algorithmEd25519:
		return ed25519.Sign(sk.ed25519Key, message)
	default:
		digest := ethcrypto.Keccak256(message)
		compact := dcrecdsa.SignCompact(sk.ecdsaKey, digest, true)
		// drop the recovery byte, keeping r||s
		return compact[1:]
	}
}

// IsDerivable reports whether hardened derivation is available
func (sk PrivateKey) IsDerivable() bool {
	return sk.algorithm == algorithmEd25519 && len(sk.chainCode) == chainCodeLength
}

// Derive performs one hardened SLIP-10 Ed25519 derivation step
func (sk PrivateKey) Derive(index uint32) (PrivateKey, error) {
	if sk.algorithm != algorithmEd25519 {
		return PrivateKey{}, sdkerrors.ErrKey("Ecdsa private keys do not support derivation")
	}
	if len(sk.chainCode) != chainCodeLength {
		return PrivateKey{}, sdkerrors.ErrKey("Key is underivable")
	}

	index |= 1 << 31

	indexBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(indexBytes, index)

	mac := hmac.New(sha512.New, sk.chainCode)
	mac.Write([]byte{0})
	mac.Write(sk.ed25519Key.Seed())
	mac.Write(indexBytes)
	output := mac.Sum(nil)

	return PrivateKey{
		algorithm:  algorithmEd25519,
		ed25519Key: ed25519.NewKeyFromSeed(output[:32]),
		chainCode:  output[32:],
	}, nil
}

// LegacyDerive reproduces the derivation used by early wallets: PBKDF2 over
// the key scalar concatenated with an index encoding, salt {0xff}, 2048
// rounds.
func (sk PrivateKey) LegacyDerive(index int64) (PrivateKey, error) {
	if sk.algorithm != algorithmEd25519 {
		return PrivateKey{}, sdkerrors.ErrKey("Ecdsa private keys do not support derivation")
	}

	entropy := sk.ed25519Key.Seed()
	seed := make([]byte, 0, len(entropy)+8)
	seed = append(seed, entropy...)

	var i1 int32
	switch {
	case index == legacyDeriveAllFs:
		i1 = 0xff
	case index >= 0:
		i1 = 0
	default:
		i1 = -1
	}
	i2 := byte(index)

	i1Bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(i1Bytes, uint32(i1))
	seed = append(seed, i1Bytes...)
	seed = append(seed, i2, i2, i2, i2)

	material := pbkdf2.Key(seed, []byte{0xff}, 2048, 32, sha512.New)
	return PrivateKeyFromBytesEd25519(material)
}

// PrivateKeyFromMnemonicSeed expands a BIP-39 seed through HMAC-SHA512 with
// the "ed25519 seed" key and walks the fixed wallet path 44'/3030'/0'/0'.
func PrivateKeyFromMnemonicSeed(seed []byte) PrivateKey {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed)
	output := mac.Sum(nil)

	key := PrivateKey{
		algorithm:  algorithmEd25519,
		ed25519Key: ed25519.NewKeyFromSeed(output[:32]),
		chainCode:  output[32:],
	}

	for _, index := range []uint32{44, 3030, 0, 0} {
		key, _ = key.Derive(index)
	}

	return key
}
