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
	"fmt"
	"strconv"
	"strings"

	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
)

// EntityId addresses a network entity within a shard/realm partition. The
// checksum is retained when the id was parsed from a user supplied string with
// a checksum suffix; it is advisory and excluded from equality.
type EntityId struct {
	Shard    uint64
	Realm    uint64
	Num      uint64
	checksum Checksum
}

// EntityIdFromString parses `<shard>.<realm>.<num>[-<checksum>]` or a bare
// `<num>`. Values that do not fit in an unsigned 64-bit integer fail.
func EntityIdFromString(value string) (EntityId, error) {
	partial, err := parsePartialEntityId(value)
	if err != nil {
		return EntityId{}, err
	}

	if partial.other != "" {
		return EntityId{}, sdkerrors.ErrParse("Expected `<shard>.<realm>.<num>`, got %s", value)
	}

	return EntityId{
		Shard:    partial.shard,
		Realm:    partial.realm,
		Num:      partial.num,
		checksum: partial.checksum,
	}, nil
}

func (e EntityId) String() string {
	return fmt.Sprintf("%d.%d.%d", e.Shard, e.Realm, e.Num)
}

// Checksum returns the checksum carried over from parsing, if any
func (e EntityId) Checksum() (Checksum, bool) {
	return e.checksum, e.checksum != ""
}

// ToStringWithChecksum renders the id with a checksum derived for ledgerId
func (e EntityId) ToStringWithChecksum(ledgerId LedgerId) string {
	address := e.String()
	return fmt.Sprintf("%s-%s", address, generateChecksum(ledgerId, address))
}

// ValidateChecksum verifies the parsed checksum, if present, against ledgerId.
// A mismatch is reported as a checksum error, distinct from a parse failure.
func (e EntityId) ValidateChecksum(ledgerId LedgerId) error {
	if e.checksum == "" {
		return nil
	}

	expected := generateChecksum(ledgerId, e.String())
	if expected != e.checksum {
		return sdkerrors.ErrChecksumMismatch("entity id "+e.String(), string(expected), string(e.checksum))
	}

	return nil
}

// Equals compares the shard/realm/num triple, ignoring any checksum
func (e EntityId) Equals(other EntityId) bool {
	return e.Shard == other.Shard && e.Realm == other.Realm && e.Num == other.Num
}

// partialEntityId is the intermediate result of parsing an entity id string
// whose trailing segment may be a number, an alias public key, or an EVM
// address. When the segment is not numeric it is kept verbatim in other.
type partialEntityId struct {
	shard    uint64
	realm    uint64
	num      uint64
	checksum Checksum
	other    string
	long     bool
}

func parsePartialEntityId(value string) (partialEntityId, error) {
	if value == "" {
		return partialEntityId{}, sdkerrors.ErrParse("Expected a non-empty entity id")
	}

	parts := strings.Split(value, ".")
	switch len(parts) {
	case 1:
		if num, err := strconv.ParseUint(parts[0], 10, 64); err == nil {
			return partialEntityId{num: num}, nil
		}
		return partialEntityId{other: parts[0]}, nil
	case 3:
		shard, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return partialEntityId{}, sdkerrors.ErrParse("Invalid shard %s", parts[0])
		}

		realm, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return partialEntityId{}, sdkerrors.ErrParse("Invalid realm %s", parts[1])
		}

		result := partialEntityId{shard: shard, realm: realm, long: true}
		last := parts[2]
		if last == "" {
			return partialEntityId{}, sdkerrors.ErrParse("Expected `<shard>.<realm>.<num>`, got %s", value)
		}

		if index := strings.LastIndex(last, "-"); index != -1 {
			num, err := strconv.ParseUint(last[:index], 10, 64)
			if err != nil {
				return partialEntityId{}, sdkerrors.ErrParse("Invalid entity number %s", last[:index])
			}

			checksum, err := checksumFromString(last[index+1:])
			if err != nil {
				return partialEntityId{}, err
			}

			result.num = num
			result.checksum = checksum
			return result, nil
		}

		if num, err := strconv.ParseUint(last, 10, 64); err == nil {
			result.num = num
			return result, nil
		}

		result.other = last
		return result, nil
	default:
		return partialEntityId{}, sdkerrors.ErrParse("Expected `<shard>.<realm>.<num>`, got %s", value)
	}
}
