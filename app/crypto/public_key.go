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
	"bytes"
	"crypto/ed25519"
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-client-go/app/tools"
	"github.com/hashgraph/hedera-protobufs-go/services"
)

const (
	ed25519PublicKeyLength = 32
	ecdsaCompressedLength  = 33
	ecdsaSignatureLength   = 64
)

// PublicKey is the verification half of a PrivateKey. Immutable.
type PublicKey struct {
	algorithm  algorithm
	ed25519Key ed25519.PublicKey
	ecdsaKey   *secp256k1.PublicKey
}

func PublicKeyFromBytesEd25519(data []byte) (PublicKey, error) {
	if len(data) != ed25519PublicKeyLength {
		return PublicKey{}, sdkerrors.ErrKey("Invalid ed25519 public key length %d", len(data))
	}

	key := make(ed25519.PublicKey, ed25519PublicKeyLength)
	copy(key, data)
	return PublicKey{algorithm: algorithmEd25519, ed25519Key: key}, nil
}

func PublicKeyFromBytesEcdsa(data []byte) (PublicKey, error) {
	key, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return PublicKey{}, sdkerrors.WrapKey(err, "Invalid ecdsa public key")
	}
	return PublicKey{algorithm: algorithmEcdsaSecp256k1, ecdsaKey: key}, nil
}

// PublicKeyFromString parses hex encoded key material, either raw (32-byte
// Ed25519, 33-byte compressed secp256k1) or DER encoded.
func PublicKeyFromString(value string) (PublicKey, error) {
	decoded, err := hex.DecodeString(tools.SafeRemoveHexPrefix(value))
	if err != nil {
		return PublicKey{}, sdkerrors.WrapKey(err, "Invalid public key hex")
	}

	switch len(decoded) {
	case ed25519PublicKeyLength:
		return PublicKeyFromBytesEd25519(decoded)
	case ecdsaCompressedLength:
		return PublicKeyFromBytesEcdsa(decoded)
	default:
		return PublicKeyFromBytesDer(decoded)
	}
}

func (pk PublicKey) IsEd25519() bool {
	return pk.algorithm == algorithmEd25519
}

func (pk PublicKey) IsEcdsa() bool {
	return pk.algorithm == algorithmEcdsaSecp256k1
}

// BytesRaw returns the 32-byte Ed25519 key or the 33-byte compressed point
func (pk PublicKey) BytesRaw() []byte {
	switch pk.algorithm {
	case algorithmEd25519:
		out := make([]byte, ed25519PublicKeyLength)
		copy(out, pk.ed25519Key)
		return out
	default:
		return pk.ecdsaKey.SerializeCompressed()
	}
}

func (pk PublicKey) String() string {
	return hex.EncodeToString(pk.BytesDer())
}

// Verify is pure; it reports whether signature covers message under this key
func (pk PublicKey) Verify(message, signature []byte) bool {
	switch pk.algorithm {
	case algorithmEd25519:
		return ed25519.Verify(pk.ed25519Key, message, signature)
	default:
		if len(signature) != ecdsaSignatureLength {
			return false
		}

		var r, s secp256k1.ModNScalar
		if overflow := r.SetByteSlice(signature[:32]); overflow {
			return false
		}
		if overflow := s.SetByteSlice(signature[32:]); overflow {
			return false
		}

		digest := ethcrypto.Keccak256(message)
		return dcrecdsa.NewSignature(&r, &s).Verify(digest, pk.ecdsaKey)
	}
}

func (pk PublicKey) Equals(other PublicKey) bool {
	return pk.algorithm == other.algorithm && bytes.Equal(pk.BytesRaw(), other.BytesRaw())
}

// ToProtobufKey wraps the raw key bytes in the wire Key message
func (pk PublicKey) ToProtobufKey() *services.Key {
	switch pk.algorithm {
	case algorithmEd25519:
		return &services.Key{Key: &services.Key_Ed25519{Ed25519: pk.BytesRaw()}}
	default:
		return &services.Key{Key: &services.Key_ECDSASecp256K1{ECDSASecp256K1: pk.BytesRaw()}}
	}
}

func PublicKeyFromProtobufKey(pb *services.Key) (PublicKey, error) {
	if pb == nil {
		return PublicKey{}, sdkerrors.ErrKey("Missing key")
	}

	switch key := pb.Key.(type) {
	case *services.Key_Ed25519:
		return PublicKeyFromBytesEd25519(key.Ed25519)
	case *services.Key_ECDSASecp256K1:
		return PublicKeyFromBytesEcdsa(key.ECDSASecp256K1)
	default:
		return PublicKey{}, sdkerrors.ErrKey("Unsupported key type %T", pb.Key)
	}
}
