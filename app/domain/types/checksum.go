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
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
)

// Checksum is the five lowercase letter suffix a user may attach to an entity
// id string. It is advisory, derived from the ledger id and the id digits, and
// never participates in equality.
type Checksum string

const checksumLength = 5

func checksumFromString(value string) (Checksum, error) {
	if len(value) != checksumLength {
		return "", sdkerrors.ErrParse("Expected checksum to be exactly %d characters", checksumLength)
	}

	for _, c := range value {
		if c < 'a' || c > 'z' {
			return "", sdkerrors.ErrParse("Expected checksum to be lowercase letters, got %q", value)
		}
	}

	return Checksum(value), nil
}

// generateChecksum computes the checksum for the formatted entity id address
// against the ledger id. digits3 and digits6 are 26^3 and 26^6; the multiplier
// is the smallest prime above one million and the digit weight is coprime to
// 26^6.
func generateChecksum(ledgerId LedgerId, address string) Checksum {
	const (
		digits3 = 26 * 26 * 26
		digits6 = digits3 * digits3
		weight  = 31
		mult    = 1_000_003
	)

	hash := make([]byte, 0, len(ledgerId)+6)
	hash = append(hash, ledgerId...)
	hash = append(hash, 0, 0, 0, 0, 0, 0)

	var s, sumEven, sumOdd uint64
	for i, c := range address {
		var digit uint64
		if c == '.' {
			digit = 10
		} else {
			digit = uint64(c - '0')
		}

		s = (weight*s + digit) % digits3
		if i%2 == 0 {
			sumEven = (sumEven + digit) % 11
		} else {
			sumOdd = (sumOdd + digit) % 11
		}
	}

	var sh uint64
	for _, b := range hash {
		sh = (weight*sh + uint64(b)) % digits6
	}

	c := uint64(len(address) % 5)
	c = c*11 + sumEven
	c = c*11 + sumOdd
	c = c*digits3 + s + sh
	c = (c % digits6) * mult % digits6

	answer := make([]byte, checksumLength)
	for i := checksumLength - 1; i >= 0; i-- {
		answer[i] = byte('a' + c%26)
		c /= 26
	}

	return Checksum(answer)
}
