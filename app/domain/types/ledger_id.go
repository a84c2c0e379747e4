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
	"bytes"
	"encoding/hex"

	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-client-go/app/tools"
)

// LedgerId identifies the ledger a client talks to. Well-known networks use a
// single byte; other ledgers carry arbitrary bytes.
type LedgerId []byte

var (
	LedgerIdMainnet    = LedgerId{0}
	LedgerIdTestnet    = LedgerId{1}
	LedgerIdPreviewnet = LedgerId{2}
)

// LedgerIdFromString parses a network name or a hex encoded ledger id
func LedgerIdFromString(value string) (LedgerId, error) {
	switch value {
	case "mainnet":
		return LedgerIdMainnet, nil
	case "testnet":
		return LedgerIdTestnet, nil
	case "previewnet":
		return LedgerIdPreviewnet, nil
	}

	decoded, err := hex.DecodeString(tools.SafeRemoveHexPrefix(value))
	if err != nil {
		return nil, sdkerrors.ErrParse("Invalid ledger id %s", value)
	}

	return decoded, nil
}

func (l LedgerId) String() string {
	switch {
	case bytes.Equal(l, LedgerIdMainnet):
		return "mainnet"
	case bytes.Equal(l, LedgerIdTestnet):
		return "testnet"
	case bytes.Equal(l, LedgerIdPreviewnet):
		return "previewnet"
	default:
		return tools.SafeAddHexPrefix(hex.EncodeToString(l))
	}
}
