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

package types

import (
	"testing"

	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/stretchr/testify/assert"
)

func TestEntityIdFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected EntityId
	}{
		{
			name:     "Full",
			input:    "0.0.123",
			expected: EntityId{Shard: 0, Realm: 0, Num: 123},
		},
		{
			name:     "NumOnly",
			input:    "123",
			expected: EntityId{Shard: 0, Realm: 0, Num: 123},
		},
		{
			name:     "NonZeroShardRealm",
			input:    "1.2.3",
			expected: EntityId{Shard: 1, Realm: 2, Num: 3},
		},
		{
			name:     "WithChecksum",
			input:    "0.0.123-vfmkw",
			expected: EntityId{Shard: 0, Realm: 0, Num: 123, checksum: "vfmkw"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := EntityIdFromString(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestEntityIdFromStringInvalid(t *testing.T) {
	tests := []string{
		"",
		"0.0",
		"0.0.",
		"0.0.0.0",
		"a.b.c",
		"0.0.abc",
		"0.0.123-VFMKW",
		"0.0.123-vfm",
		"-1.0.123",
		"0.0.123-vfmkw-extra",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := EntityIdFromString(input)
			assert.Error(t, err)
			assert.True(t, sdkerrors.IsParse(err))
		})
	}
}

func TestEntityIdString(t *testing.T) {
	entityId := EntityId{Shard: 1, Realm: 2, Num: 3, checksum: "abcde"}
	assert.Equal(t, "1.2.3", entityId.String())
}

func TestEntityIdToStringWithChecksum(t *testing.T) {
	tests := []struct {
		name     string
		ledgerId LedgerId
		input    EntityId
		expected string
	}{
		{
			name:     "Mainnet",
			ledgerId: LedgerIdMainnet,
			input:    EntityId{Num: 123},
			expected: "0.0.123-vfmkw",
		},
		{
			name:     "Testnet",
			ledgerId: LedgerIdTestnet,
			input:    EntityId{Num: 123},
			expected: "0.0.123-esxsf",
		},
		{
			name:     "Previewnet",
			ledgerId: LedgerIdPreviewnet,
			input:    EntityId{Num: 123},
			expected: "0.0.123-ogizo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.ToStringWithChecksum(tt.ledgerId))
		})
	}
}

func TestGenerateChecksum(t *testing.T) {
	tests := []struct {
		name     string
		ledgerId LedgerId
		num      uint64
		expected Checksum
	}{
		{name: "Mainnet0", ledgerId: LedgerIdMainnet, num: 0, expected: "uvnqa"},
		{name: "Mainnet1", ledgerId: LedgerIdMainnet, num: 1, expected: "dfkxr"},
		{name: "Mainnet2", ledgerId: LedgerIdMainnet, num: 2, expected: "lpifi"},
		{name: "Mainnet3", ledgerId: LedgerIdMainnet, num: 3, expected: "tzfmz"},
		{name: "Testnet0", ledgerId: LedgerIdTestnet, num: 0, expected: "eiyxj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entityId := EntityId{Num: tt.num}
			assert.Equal(t, tt.expected, generateChecksum(tt.ledgerId, entityId.String()))
		})
	}
}

func TestEntityIdValidateChecksum(t *testing.T) {
	entityId, err := EntityIdFromString("0.0.123-vfmkw")
	assert.NoError(t, err)

	assert.NoError(t, entityId.ValidateChecksum(LedgerIdMainnet))

	err = entityId.ValidateChecksum(LedgerIdTestnet)
	assert.Error(t, err)
	assert.True(t, sdkerrors.IsChecksumMismatch(err))
}

func TestEntityIdValidateChecksumWithoutChecksum(t *testing.T) {
	entityId, err := EntityIdFromString("0.0.123")
	assert.NoError(t, err)
	assert.NoError(t, entityId.ValidateChecksum(LedgerIdMainnet))
}

func TestEntityIdEquals(t *testing.T) {
	a, _ := EntityIdFromString("0.0.123")
	b, _ := EntityIdFromString("0.0.123-vfmkw")
	c, _ := EntityIdFromString("0.0.124")

	// the checksum is presentation only
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
