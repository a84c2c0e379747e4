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
	stderrors "errors"
	"math/big"
	"strings"

	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/tyler-smith/go-bip39"
)

const (
	legacyWordCount  = 22
	legacyDataLength = 33
	legacyWordRadix  = 4096
)

// Mnemonic is a validated word sequence, either a BIP-39 12/24-word phrase or
// the legacy 22-word form used by early wallets.
type Mnemonic struct {
	words  []string
	legacy bool
}

// GenerateMnemonic12 draws 128 bits of entropy and encodes a 12-word phrase
func GenerateMnemonic12() (Mnemonic, error) {
	return generateMnemonic(128)
}

// GenerateMnemonic24 draws 256 bits of entropy and encodes a 24-word phrase
func GenerateMnemonic24() (Mnemonic, error) {
	return generateMnemonic(256)
}

func generateMnemonic(bits int) (Mnemonic, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return Mnemonic{}, sdkerrors.WrapKey(err, "Failed to generate entropy")
	}

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return Mnemonic{}, sdkerrors.WrapKey(err, "Failed to encode mnemonic")
	}

	return Mnemonic{words: strings.Split(phrase, " ")}, nil
}

// MnemonicFromString splits on whitespace and validates the words
func MnemonicFromString(value string) (Mnemonic, error) {
	return MnemonicFromWords(strings.Fields(strings.ToLower(value)))
}

// MnemonicFromWords validates the word count, every word against the word
// list for the variant, and the embedded checksum. The three failures are
// distinct error classes.
func MnemonicFromWords(words []string) (Mnemonic, error) {
	switch len(words) {
	case 12, 24:
		for _, word := range words {
			if _, ok := bip39.GetWordIndex(word); !ok {
				return Mnemonic{}, sdkerrors.ErrParse("Unknown mnemonic word %q", word)
			}
		}

		if _, err := bip39.EntropyFromMnemonic(strings.Join(words, " ")); err != nil {
			if stderrors.Is(err, bip39.ErrChecksumIncorrect) {
				return Mnemonic{}, sdkerrors.ErrChecksumMismatch("mnemonic", "", "")
			}
			return Mnemonic{}, sdkerrors.WrapParse(err, "Invalid mnemonic")
		}

		return Mnemonic{words: append([]string(nil), words...)}, nil
	case legacyWordCount:
		mnemonic := Mnemonic{words: append([]string(nil), words...), legacy: true}
		if _, err := mnemonic.legacyEntropy(); err != nil {
			return Mnemonic{}, err
		}
		return mnemonic, nil
	default:
		return Mnemonic{}, sdkerrors.ErrParse("Invalid mnemonic word count %d, expected 12, 22 or 24", len(words))
	}
}

func (m Mnemonic) Words() []string {
	return append([]string(nil), m.words...)
}

func (m Mnemonic) IsLegacy() bool {
	return m.legacy
}

func (m Mnemonic) String() string {
	return strings.Join(m.words, " ")
}

// ToSeed expands the phrase with PBKDF2-HMAC-SHA512, 2048 rounds, salted by
// "mnemonic" plus the passphrase.
func (m Mnemonic) ToSeed(passphrase string) []byte {
	return bip39.NewSeed(m.String(), passphrase)
}

// ToPrivateKey derives the wallet key for the phrase. Legacy phrases carry
// their own entropy encoding and accept no passphrase.
func (m Mnemonic) ToPrivateKey(passphrase string) (PrivateKey, error) {
	if m.legacy {
		if passphrase != "" {
			return PrivateKey{}, sdkerrors.ErrKey("Legacy mnemonics do not support passphrases")
		}
		return m.ToLegacyPrivateKey()
	}

	return PrivateKeyFromMnemonicSeed(m.ToSeed(passphrase)), nil
}

// ToLegacyPrivateKey decodes the 22-word entropy directly into an Ed25519 key
func (m Mnemonic) ToLegacyPrivateKey() (PrivateKey, error) {
	if !m.legacy {
		return PrivateKey{}, sdkerrors.ErrKey("Expected a legacy 22 word mnemonic, got %d words", len(m.words))
	}

	entropy, err := m.legacyEntropy()
	if err != nil {
		return PrivateKey{}, err
	}

	return PrivateKeyFromBytesEd25519(entropy)
}

// legacyEntropy converts the words from radix 4096 into 33 bytes, strips the
// trailing checksum byte, unmasks the data bytes with it, and verifies the
// CRC-8 of the result.
func (m Mnemonic) legacyEntropy() ([]byte, error) {
	indices := make([]int, len(m.words))
	for i, word := range m.words {
		index, ok := legacyWordIndex[word]
		if !ok {
			return nil, sdkerrors.ErrParse("Unknown mnemonic word %q", word)
		}
		indices[i] = index
	}

	data := convertRadix(indices, legacyWordRadix, legacyDataLength)

	crc := data[legacyDataLength-1]
	entropy := data[:legacyDataLength-1]
	for i := range entropy {
		entropy[i] ^= crc
	}

	if expected := crc8(entropy); expected != crc {
		return nil, sdkerrors.ErrChecksumMismatch("mnemonic", hexByte(expected), hexByte(crc))
	}

	return entropy, nil
}

func convertRadix(indices []int, radix int, outLength int) []byte {
	value := new(big.Int)
	radixInt := big.NewInt(int64(radix))
	for _, index := range indices {
		value.Mul(value, radixInt)
		value.Add(value, big.NewInt(int64(index)))
	}

	out := make([]byte, outLength)
	value.FillBytes(out)
	return out
}

// crc8 covers all but the final byte of data
func crc8(data []byte) byte {
	crc := byte(0xff)
	for _, b := range data[:len(data)-1] {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&1 == 0 {
				crc >>= 1
			} else {
				crc = (crc >> 1) ^ 0xb2
			}
		}
	}
	return crc ^ 0xff
}

func hexByte(b byte) string {
	const digits = "0123456789abcdef"
	return "0x" + string([]byte{digits[b>>4], digits[b&0xf]})
}
