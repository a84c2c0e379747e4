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
	"crypto/x509/pkix"
	"encoding/asn1"

	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
)

var (
	oidEd25519     = asn1.ObjectIdentifier{1, 3, 101, 112}
	oidEcPublicKey = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSecp256k1   = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

// pkcs8 is the OneAsymmetricKey structure of RFC 5958. The version must be 0
// exactly when no public key is present and 1 exactly when one is.
type pkcs8 struct {
	Version    int
	Algorithm  pkix.AlgorithmIdentifier
	PrivateKey []byte
	PublicKey  asn1.BitString `asn1:"optional,explicit,tag:1"`
}

// ecPrivateKey is the RFC 5915 inner structure carried for secp256k1 keys
type ecPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

// BytesDer encodes the key as an unencrypted PKCS#8 document
func (sk PrivateKey) BytesDer() []byte {
	switch sk.algorithm {
	case algorithmEd25519:
		inner, _ := asn1.Marshal(sk.ed25519Key.Seed())
		data, _ := asn1.Marshal(pkcs8{
			Version:    0,
			Algorithm:  pkix.AlgorithmIdentifier{Algorithm: oidEd25519},
			PrivateKey: inner,
		})
		return data
	default:
		params, _ := asn1.Marshal(oidSecp256k1)
		inner, _ := asn1.Marshal(ecPrivateKey{Version: 1, PrivateKey: sk.ecdsaKey.Serialize()})
		data, _ := asn1.Marshal(pkcs8{
			Version: 0,
			Algorithm: pkix.AlgorithmIdentifier{
				Algorithm:  oidEcPublicKey,
				Parameters: asn1.RawValue{FullBytes: params},
			},
			PrivateKey: inner,
		})
		return data
	}
}

// PrivateKeyFromBytesDer parses an unencrypted PKCS#8 document. Trailing
// bytes, a wrong version for the public key presence, or an unsupported
// algorithm all fail.
func PrivateKeyFromBytesDer(data []byte) (PrivateKey, error) {
	var info pkcs8
	rest, err := asn1.Unmarshal(data, &info)
	if err != nil {
		return PrivateKey{}, sdkerrors.WrapKey(err, "Invalid private key DER")
	}
	if len(rest) != 0 {
		return PrivateKey{}, sdkerrors.ErrKey("Trailing bytes after private key DER")
	}

	hasPublicKey := info.PublicKey.BitLength > 0
	if (info.Version == 0) == hasPublicKey || info.Version > 1 {
		return PrivateKey{}, sdkerrors.ErrKey("Invalid private key version %d", info.Version)
	}

	switch {
	case info.Algorithm.Algorithm.Equal(oidEd25519):
		var seed []byte
		if _, err := asn1.Unmarshal(info.PrivateKey, &seed); err != nil {
			return PrivateKey{}, sdkerrors.WrapKey(err, "Invalid ed25519 private key DER")
		}
		return PrivateKeyFromBytesEd25519(seed)
	case info.Algorithm.Algorithm.Equal(oidEcPublicKey):
		var curve asn1.ObjectIdentifier
		if _, err := asn1.Unmarshal(info.Algorithm.Parameters.FullBytes, &curve); err != nil || !curve.Equal(oidSecp256k1) {
			return PrivateKey{}, sdkerrors.ErrKey("Unsupported EC curve in private key DER")
		}

		var inner ecPrivateKey
		if _, err := asn1.Unmarshal(info.PrivateKey, &inner); err != nil {
			return PrivateKey{}, sdkerrors.WrapKey(err, "Invalid EC private key DER")
		}
		return PrivateKeyFromBytesEcdsa(inner.PrivateKey)
	case info.Algorithm.Algorithm.Equal(oidSecp256k1):
		// compact form carrying the bare scalar under the curve oid
		var scalar []byte
		if _, err := asn1.Unmarshal(info.PrivateKey, &scalar); err != nil {
			return PrivateKey{}, sdkerrors.WrapKey(err, "Invalid ecdsa private key DER")
		}
		return PrivateKeyFromBytesEcdsa(scalar)
	default:
		return PrivateKey{}, sdkerrors.ErrKey("Unsupported private key algorithm %s", info.Algorithm.Algorithm)
	}
}

// BytesDer encodes the key as a SubjectPublicKeyInfo document
func (pk PublicKey) BytesDer() []byte {
	switch pk.algorithm {
	case algorithmEd25519:
		data, _ := asn1.Marshal(subjectPublicKeyInfo{
			Algorithm: pkix.AlgorithmIdentifier{Algorithm: oidEd25519},
			PublicKey: asn1.BitString{Bytes: pk.BytesRaw(), BitLength: ed25519PublicKeyLength * 8},
		})
		return data
	default:
		params, _ := asn1.Marshal(oidSecp256k1)
		raw := pk.BytesRaw()
		data, _ := asn1.Marshal(subjectPublicKeyInfo{
			Algorithm: pkix.AlgorithmIdentifier{
				Algorithm:  oidEcPublicKey,
				Parameters: asn1.RawValue{FullBytes: params},
			},
			PublicKey: asn1.BitString{Bytes: raw, BitLength: len(raw) * 8},
		})
		return data
	}
}

func PublicKeyFromBytesDer(data []byte) (PublicKey, error) {
	var info subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(data, &info)
	if err != nil {
		return PublicKey{}, sdkerrors.WrapKey(err, "Invalid public key DER")
	}
	if len(rest) != 0 {
		return PublicKey{}, sdkerrors.ErrKey("Trailing bytes after public key DER")
	}

	switch {
	case info.Algorithm.Algorithm.Equal(oidEd25519):
		return PublicKeyFromBytesEd25519(info.PublicKey.Bytes)
	case info.Algorithm.Algorithm.Equal(oidEcPublicKey), info.Algorithm.Algorithm.Equal(oidSecp256k1):
		return PublicKeyFromBytesEcdsa(info.PublicKey.Bytes)
	default:
		return PublicKey{}, sdkerrors.ErrKey("Unsupported public key algorithm %s", info.Algorithm.Algorithm)
	}
}
