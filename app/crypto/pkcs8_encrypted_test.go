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
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/x509/pkix"
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thanhpk/randstr"
	"golang.org/x/crypto/pbkdf2"
)

// encryptPkcs8 wraps a plain PKCS#8 document in PBES2 with
// PBKDF2-HMAC-SHA256 and AES-128-CBC, the way openssl does.
func encryptPkcs8(t *testing.T, der []byte, password string, iterations int) []byte {
	salt := randstr.Bytes(16)
	iv := randstr.Bytes(aes.BlockSize)

	padding := aes.BlockSize - len(der)%aes.BlockSize
	plaintext := append(append([]byte(nil), der...), bytes.Repeat([]byte{byte(padding)}, padding)...)

	key := pbkdf2.Key([]byte(password), salt, iterations, aes128KeyLength, sha256.New)
	block, err := aes.NewCipher(key)
	assert.NoError(t, err)

	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)

	kdfParams, err := asn1.Marshal(pbkdf2Params{
		Salt:           salt,
		IterationCount: iterations,
		Prf:            pkix.AlgorithmIdentifier{Algorithm: oidHmacSha256, Parameters: asn1.NullRawValue},
	})
	assert.NoError(t, err)

	ivBytes, err := asn1.Marshal(iv)
	assert.NoError(t, err)

	params, err := asn1.Marshal(pbes2Params{
		KeyDerivationFunc: pkix.AlgorithmIdentifier{
			Algorithm:  oidPbkdf2,
			Parameters: asn1.RawValue{FullBytes: kdfParams},
		},
		EncryptionScheme: pkix.AlgorithmIdentifier{
			Algorithm:  oidAes128Cbc,
			Parameters: asn1.RawValue{FullBytes: ivBytes},
		},
	})
	assert.NoError(t, err)

	info, err := asn1.Marshal(encryptedPrivateKeyInfo{
		Algorithm: pkix.AlgorithmIdentifier{
			Algorithm:  oidPbes2,
			Parameters: asn1.RawValue{FullBytes: params},
		},
		EncryptedData: ciphertext,
	})
	assert.NoError(t, err)
	return info
}

func TestEncryptedPrivateKeyRoundTrip(t *testing.T) {
	ed25519Key, _ := GenerateEd25519PrivateKey()
	ecdsaKey, _ := GenerateEcdsaPrivateKey()

	for _, key := range []PrivateKey{ed25519Key, ecdsaKey} {
		encrypted := encryptPkcs8(t, key.BytesDer(), "passphrase", 2048)

		parsed, err := privateKeyFromEncryptedDer(encrypted, "passphrase")
		assert.NoError(t, err)
		assert.Equal(t, key.BytesRaw(), parsed.BytesRaw())
	}
}

func TestEncryptedPrivateKeyPem(t *testing.T) {
	key, _ := GenerateEd25519PrivateKey()
	encrypted := encryptPkcs8(t, key.BytesDer(), "passphrase", 2048)
	pem := encodePem(pemLabelEncryptedPrivateKey, encrypted)

	parsed, err := PrivateKeyFromPem(pem, "passphrase")
	assert.NoError(t, err)
	assert.Equal(t, key.BytesRaw(), parsed.BytesRaw())
}

func TestEncryptedPrivateKeyWrongPassword(t *testing.T) {
	key, _ := GenerateEd25519PrivateKey()
	encrypted := encryptPkcs8(t, key.BytesDer(), "passphrase", 2048)

	_, err := privateKeyFromEncryptedDer(encrypted, "wrong")
	assert.Error(t, err)
}

func TestEncryptedPrivateKeyIterationBound(t *testing.T) {
	// an iteration count over the limit is rejected before any key
	// derivation happens, so the ciphertext can be garbage
	kdfParams, _ := asn1.Marshal(pbkdf2Params{
		Salt:           randstr.Bytes(16),
		IterationCount: maxPbkdf2Iterations + 1,
	})
	ivBytes, _ := asn1.Marshal(randstr.Bytes(aes.BlockSize))
	params, _ := asn1.Marshal(pbes2Params{
		KeyDerivationFunc: pkix.AlgorithmIdentifier{
			Algorithm:  oidPbkdf2,
			Parameters: asn1.RawValue{FullBytes: kdfParams},
		},
		EncryptionScheme: pkix.AlgorithmIdentifier{
			Algorithm:  oidAes128Cbc,
			Parameters: asn1.RawValue{FullBytes: ivBytes},
		},
	})
	encrypted, _ := asn1.Marshal(encryptedPrivateKeyInfo{
		Algorithm: pkix.AlgorithmIdentifier{
			Algorithm:  oidPbes2,
			Parameters: asn1.RawValue{FullBytes: params},
		},
		EncryptedData: randstr.Bytes(2 * aes.BlockSize),
	})

	_, err := privateKeyFromEncryptedDer(encrypted, "passphrase")
	assert.Error(t, err)
}
