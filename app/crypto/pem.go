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
	"encoding/base64"
	"strings"

	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
)

const (
	pemLabelPrivateKey          = "PRIVATE KEY"
	pemLabelPublicKey           = "PUBLIC KEY"
	pemLabelEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"

	pemLineLength = 64
)

// decodePem parses one PEM block under a strict grammar: a BEGIN label line,
// body lines of exactly 64 characters except a shorter final line, and a
// matching END label line, separated by bare newlines. Blank lines, headers,
// and carriage returns are rejected.
func decodePem(data string) (string, []byte, error) {
	data = strings.TrimSuffix(data, "\n")

	lines := strings.Split(data, "\n")
	if len(lines) < 3 {
		return "", nil, sdkerrors.ErrParse("Invalid PEM, expected at least three lines")
	}

	first := lines[0]
	if !strings.HasPrefix(first, "-----BEGIN ") || !strings.HasSuffix(first, "-----") {
		return "", nil, sdkerrors.ErrParse("Invalid PEM begin line %q", first)
	}
	label := strings.TrimSuffix(strings.TrimPrefix(first, "-----BEGIN "), "-----")

	last := lines[len(lines)-1]
	if last != "-----END "+label+"-----" {
		return "", nil, sdkerrors.ErrParse("Invalid PEM end line %q", last)
	}

	body := lines[1 : len(lines)-1]
	var sb strings.Builder
	for i, line := range body {
		if len(line) == 0 || len(line) > pemLineLength {
			return "", nil, sdkerrors.ErrParse("Invalid PEM body line length %d", len(line))
		}
		if len(line) != pemLineLength && i != len(body)-1 {
			return "", nil, sdkerrors.ErrParse("Invalid PEM, short line before the final line")
		}
		sb.WriteString(line)
	}

	der, err := base64.StdEncoding.DecodeString(sb.String())
	if err != nil {
		return "", nil, sdkerrors.WrapParse(err, "Invalid PEM base64 body")
	}

	return label, der, nil
}

// PrivateKeyFromPem reads a private key from a PEM block. The password is
// required for ENCRYPTED PRIVATE KEY blocks and must be empty otherwise.
func PrivateKeyFromPem(data string, password string) (PrivateKey, error) {
	label, der, err := decodePem(data)
	if err != nil {
		return PrivateKey{}, err
	}

	switch label {
	case pemLabelPrivateKey:
		if password != "" {
			return PrivateKey{}, sdkerrors.ErrKey("Password supplied for an unencrypted private key")
		}
		return PrivateKeyFromBytesDer(der)
	case pemLabelEncryptedPrivateKey:
		return privateKeyFromEncryptedDer(der, password)
	default:
		return PrivateKey{}, sdkerrors.ErrParse("Unexpected PEM label %q", label)
	}
}

// PublicKeyFromPem reads a public key from a PUBLIC KEY PEM block
func PublicKeyFromPem(data string) (PublicKey, error) {
	label, der, err := decodePem(data)
	if err != nil {
		return PublicKey{}, err
	}

	if label != pemLabelPublicKey {
		return PublicKey{}, sdkerrors.ErrParse("Unexpected PEM label %q", label)
	}

	return PublicKeyFromBytesDer(der)
}

// ToPem renders the key as an unencrypted PRIVATE KEY block
func (sk PrivateKey) ToPem() string {
	return encodePem(pemLabelPrivateKey, sk.BytesDer())
}

func (pk PublicKey) ToPem() string {
	return encodePem(pemLabelPublicKey, pk.BytesDer())
}

func encodePem(label string, der []byte) string {
	encoded := base64.StdEncoding.EncodeToString(der)

	var sb strings.Builder
	sb.WriteString("-----BEGIN " + label + "-----\n")
	for len(encoded) > pemLineLength {
		sb.WriteString(encoded[:pemLineLength])
		sb.WriteByte('\n')
		encoded = encoded[pemLineLength:]
	}
	sb.WriteString(encoded)
	sb.WriteByte('\n')
	sb.WriteString("-----END " + label + "-----\n")
	return sb.String()
}
