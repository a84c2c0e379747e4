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
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509/pkix"
	"encoding/asn1"
	"hash"

	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"golang.org/x/crypto/pbkdf2"
)

var (
	oidPbes2      = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 13}
	oidPbkdf2     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 12}
	oidHmacSha1   = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 7}
	oidHmacSha224 = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 8}
	oidHmacSha256 = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 9}
	oidHmacSha384 = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 10}
	oidHmacSha512 = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 11}
	oidAes128Cbc  = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 1, 2}
)

// maxPbkdf2Iterations bounds attacker-supplied iteration counts
const maxPbkdf2Iterations = 10_000_000

const aes128KeyLength = 16

type encryptedPrivateKeyInfo struct {
	Algorithm     pkix.AlgorithmIdentifier
	EncryptedData []byte
}

type pbes2Params struct {
	KeyDerivationFunc pkix.AlgorithmIdentifier
	EncryptionScheme  pkix.AlgorithmIdentifier
}

type pbkdf2Params struct {
	Salt           []byte
	IterationCount int
	KeyLength      int                      `asn1:"optional"`
	Prf            pkix.AlgorithmIdentifier `asn1:"optional"`
}

// privateKeyFromEncryptedDer decrypts a PBES2 wrapped PKCS#8 document. Only
// PBKDF2 key derivation and AES-128-CBC with PKCS#7 padding are supported.
func privateKeyFromEncryptedDer(data []byte, password string) (PrivateKey, error) {
	var info encryptedPrivateKeyInfo
	if rest, err := asn1.Unmarshal(data, &info); err != nil || len(rest) != 0 {
		return PrivateKey{}, sdkerrors.ErrKey("Invalid encrypted private key DER")
	}

	if !info.Algorithm.Algorithm.Equal(oidPbes2) {
		return PrivateKey{}, sdkerrors.ErrKey("Unsupported encryption scheme %s", info.Algorithm.Algorithm)
	}

	var params pbes2Params
	if _, err := asn1.Unmarshal(info.Algorithm.Parameters.FullBytes, &params); err != nil {
		return PrivateKey{}, sdkerrors.WrapKey(err, "Invalid PBES2 parameters")
	}

	if !params.KeyDerivationFunc.Algorithm.Equal(oidPbkdf2) {
		return PrivateKey{}, sdkerrors.ErrKey("Unsupported key derivation function %s", params.KeyDerivationFunc.Algorithm)
	}

	var kdf pbkdf2Params
	if _, err := asn1.Unmarshal(params.KeyDerivationFunc.Parameters.FullBytes, &kdf); err != nil {
		return PrivateKey{}, sdkerrors.WrapKey(err, "Invalid PBKDF2 parameters")
	}

	if kdf.IterationCount <= 0 || kdf.IterationCount > maxPbkdf2Iterations {
		return PrivateKey{}, sdkerrors.ErrKey("Unreasonable PBKDF2 iteration count %d", kdf.IterationCount)
	}
	if kdf.KeyLength != 0 && kdf.KeyLength != aes128KeyLength {
		return PrivateKey{}, sdkerrors.ErrKey("PBKDF2 key length %d does not match AES-128", kdf.KeyLength)
	}

	prf, err := prfHash(kdf.Prf)
	if err != nil {
		return PrivateKey{}, err
	}

	if !params.EncryptionScheme.Algorithm.Equal(oidAes128Cbc) {
		return PrivateKey{}, sdkerrors.ErrKey("Unsupported cipher %s", params.EncryptionScheme.Algorithm)
	}

	var iv []byte
	if _, err := asn1.Unmarshal(params.EncryptionScheme.Parameters.FullBytes, &iv); err != nil || len(iv) != aes.BlockSize {
		return PrivateKey{}, sdkerrors.ErrKey("Invalid AES-CBC initialization vector")
	}

	key := pbkdf2.Key([]byte(password), kdf.Salt, kdf.IterationCount, aes128KeyLength, prf)

	block, err := aes.NewCipher(key)
	if err != nil {
		return PrivateKey{}, sdkerrors.WrapKey(err, "Failed to initialize AES")
	}

	if len(info.EncryptedData) == 0 || len(info.EncryptedData)%aes.BlockSize != 0 {
		return PrivateKey{}, sdkerrors.ErrKey("Invalid encrypted key payload length %d", len(info.EncryptedData))
	}

	plaintext := make([]byte, len(info.EncryptedData))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, info.EncryptedData)

	plaintext, err = stripPkcs7Padding(plaintext)
	if err != nil {
		return PrivateKey{}, err
	}

	return PrivateKeyFromBytesDer(plaintext)
}

func prfHash(prf pkix.AlgorithmIdentifier) (func() hash.Hash, error) {
	// an absent PRF defaults to HMAC-SHA1
	switch {
	case len(prf.Algorithm) == 0, prf.Algorithm.Equal(oidHmacSha1):
		return sha1.New, nil
	case prf.Algorithm.Equal(oidHmacSha224):
		return sha256.New224, nil
	case prf.Algorithm.Equal(oidHmacSha256):
		return sha256.New, nil
	case prf.Algorithm.Equal(oidHmacSha384):
		return sha512.New384, nil
	case prf.Algorithm.Equal(oidHmacSha512):
		return sha512.New, nil
	default:
		return nil, sdkerrors.ErrKey("Unsupported PBKDF2 PRF %s", prf.Algorithm)
	}
}

func stripPkcs7Padding(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, sdkerrors.ErrKey("Empty decrypted key payload")
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > aes.BlockSize || padding > len(data) {
		return nil, sdkerrors.ErrKey("Invalid PKCS#7 padding")
	}

	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, sdkerrors.ErrKey("Invalid PKCS#7 padding")
		}
	}

	return data[:len(data)-padding], nil
}
