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
	"encoding/hex"
	"fmt"

	"github.com/hashgraph/hedera-client-go/app/crypto"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-client-go/app/tools"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"google.golang.org/protobuf/proto"
)

const evmAddressLength = 20

// AccountId identifies an account by exactly one of a shard.realm.num triple,
// a public key alias, or a 20-byte EVM address. The three forms are mutually
// exclusive.
type AccountId struct {
	Shard      uint64
	Realm      uint64
	Num        uint64
	Alias      *crypto.PublicKey
	EvmAddress *[evmAddressLength]byte
	checksum   Checksum
}

// AccountIdFromString parses `<shard>.<realm>.<num>[-<checksum>]`,
// `<shard>.<realm>.<alias>`, `<shard>.<realm>.<40-hex>`, or a bare
// `0x`-prefixed EVM address. A trailing segment that parses as an unsigned
// integer is a num; otherwise an EVM address parse is attempted, then a public
// key parse.
func AccountIdFromString(value string) (AccountId, error) {
	partial, err := parsePartialEntityId(value)
	if err != nil {
		return AccountId{}, err
	}

	if partial.other == "" {
		return AccountId{
			Shard:    partial.shard,
			Realm:    partial.realm,
			Num:      partial.num,
			checksum: partial.checksum,
		}, nil
	}

	if !partial.long {
		evmAddress, err := evmAddressFromString(partial.other)
		if err != nil {
			return AccountId{}, sdkerrors.ErrParse("Invalid account id %s", value)
		}
		return AccountId{EvmAddress: evmAddress}, nil
	}

	if evmAddress, err := evmAddressFromString(partial.other); err == nil {
		return AccountId{Shard: partial.shard, Realm: partial.realm, EvmAddress: evmAddress}, nil
	}

	alias, err := crypto.PublicKeyFromString(partial.other)
	if err != nil {
		return AccountId{}, sdkerrors.ErrParse("Invalid account alias %s", partial.other)
	}

	return AccountId{Shard: partial.shard, Realm: partial.realm, Alias: &alias}, nil
}

// AccountIdFromNum builds a plain account id in shard 0, realm 0
func AccountIdFromNum(num uint64) AccountId {
	return AccountId{Num: num}
}

func evmAddressFromString(value string) (*[evmAddressLength]byte, error) {
	decoded, err := hex.DecodeString(tools.SafeRemoveHexPrefix(value))
	if err != nil || len(decoded) != evmAddressLength {
		return nil, sdkerrors.ErrParse("Invalid evm address %s", value)
	}

	address := new([evmAddressLength]byte)
	copy(address[:], decoded)
	return address, nil
}

func (a AccountId) String() string {
	switch {
	case a.Alias != nil:
		return fmt.Sprintf("%d.%d.%s", a.Shard, a.Realm, a.Alias.String())
	case a.EvmAddress != nil:
		address := tools.SafeAddHexPrefix(hex.EncodeToString(a.EvmAddress[:]))
		if a.Shard == 0 && a.Realm == 0 {
			return address
		}
		return fmt.Sprintf("%d.%d.%s", a.Shard, a.Realm, address)
	default:
		return fmt.Sprintf("%d.%d.%d", a.Shard, a.Realm, a.Num)
	}
}

// Checksum returns the checksum carried over from parsing, if any
func (a AccountId) Checksum() (Checksum, bool) {
	return a.checksum, a.checksum != ""
}

// ToStringWithChecksum fails for alias and EVM address forms, which have no
// checksum representation.
func (a AccountId) ToStringWithChecksum(ledgerId LedgerId) (string, error) {
	if a.Alias != nil || a.EvmAddress != nil {
		return "", sdkerrors.ErrParse("An account id with an alias or evm address cannot have a checksum")
	}

	address := a.String()
	return fmt.Sprintf("%s-%s", address, generateChecksum(ledgerId, address)), nil
}

func (a AccountId) ValidateChecksum(ledgerId LedgerId) error {
	if a.checksum == "" {
		return nil
	}

	expected := generateChecksum(ledgerId, fmt.Sprintf("%d.%d.%d", a.Shard, a.Realm, a.Num))
	if expected != a.checksum {
		return sdkerrors.ErrChecksumMismatch("account id "+a.String(), string(expected), string(a.checksum))
	}

	return nil
}

// Equals ignores checksums
func (a AccountId) Equals(other AccountId) bool {
	if a.Shard != other.Shard || a.Realm != other.Realm {
		return false
	}

	switch {
	case a.Alias != nil && other.Alias != nil:
		return a.Alias.Equals(*other.Alias)
	case a.EvmAddress != nil && other.EvmAddress != nil:
		return *a.EvmAddress == *other.EvmAddress
	case a.Alias == nil && other.Alias == nil && a.EvmAddress == nil && other.EvmAddress == nil:
		return a.Num == other.Num
	default:
		return false
	}
}

func (a AccountId) ToProtobuf() *services.AccountID {
	pb := &services.AccountID{
		ShardNum: int64(a.Shard),
		RealmNum: int64(a.Realm),
	}

	switch {
	case a.Alias != nil:
		data, _ := proto.Marshal(a.Alias.ToProtobufKey())
		pb.Account = &services.AccountID_Alias{Alias: data}
	case a.EvmAddress != nil:
		pb.Account = &services.AccountID_Alias{Alias: a.EvmAddress[:]}
	default:
		pb.Account = &services.AccountID_AccountNum{AccountNum: int64(a.Num)}
	}

	return pb
}

// AccountIdFromProtobuf decodes the account oneof; a 20-byte alias is an EVM
// address, anything else must decode as a public key.
func AccountIdFromProtobuf(pb *services.AccountID) (AccountId, error) {
	if pb == nil {
		return AccountId{}, sdkerrors.ErrParse("Missing account id")
	}

	accountId := AccountId{Shard: uint64(pb.ShardNum), Realm: uint64(pb.RealmNum)}

	switch account := pb.Account.(type) {
	case *services.AccountID_AccountNum:
		accountId.Num = uint64(account.AccountNum)
	case *services.AccountID_Alias:
		if len(account.Alias) == evmAddressLength {
			address := new([evmAddressLength]byte)
			copy(address[:], account.Alias)
			accountId.EvmAddress = address
			break
		}

		var key services.Key
		if err := proto.Unmarshal(account.Alias, &key); err != nil {
			return AccountId{}, sdkerrors.WrapParse(err, "Invalid account alias")
		}

		alias, err := crypto.PublicKeyFromProtobufKey(&key)
		if err != nil {
			return AccountId{}, err
		}
		accountId.Alias = &alias
	default:
		return AccountId{}, sdkerrors.ErrParse("Missing account number or alias")
	}

	return accountId, nil
}

func (a AccountId) ToBytes() []byte {
	data, _ := proto.Marshal(a.ToProtobuf())
	return data
}

func AccountIdFromBytes(data []byte) (AccountId, error) {
	var pb services.AccountID
	if err := proto.Unmarshal(data, &pb); err != nil {
		return AccountId{}, sdkerrors.WrapParse(err, "Invalid account id bytes")
	}
	return AccountIdFromProtobuf(&pb)
}
