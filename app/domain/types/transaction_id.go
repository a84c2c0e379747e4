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
	"math/rand"
	"strconv"
	"strings"
	"time"

	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-protobufs-go/services"
)

// TransactionId identifies one logical transaction by payer account and valid
// start instant. Scheduled and nonce distinguish the record of a scheduled or
// child transaction's execution from its creation. Immutable once constructed.
type TransactionId struct {
	AccountId  AccountId
	ValidStart Timestamp
	Scheduled  bool
	Nonce      *int32
}

// TransactionIdGenerate backdates the valid start by five to eight seconds so
// a submission is inside the node's receive window despite clock drift.
func TransactionIdGenerate(accountId AccountId) TransactionId {
	offset := time.Duration(5*int64(time.Second) + rand.Int63n(3*int64(time.Second)))
	return TransactionId{
		AccountId:  accountId,
		ValidStart: TimestampFromTime(time.Now().Add(-offset)),
	}
}

func TransactionIdWithValidStart(accountId AccountId, validStart Timestamp) TransactionId {
	return TransactionId{AccountId: accountId, ValidStart: validStart}
}

// TransactionIdFromString parses
// `<account>@<seconds>.<nanos>[?scheduled][/<nonce>]` and the mirror node form
// `<account>-<seconds>-<nanos>`.
func TransactionIdFromString(value string) (TransactionId, error) {
	s := value
	var nonce *int32

	if index := strings.LastIndex(s, "/"); index != -1 {
		parsed, err := strconv.ParseInt(s[index+1:], 10, 32)
		if err != nil {
			return TransactionId{}, sdkerrors.ErrParse("Invalid transaction id nonce in %s", value)
		}
		n := int32(parsed)
		nonce = &n
		s = s[:index]
	}

	scheduled := strings.HasSuffix(s, "?scheduled")
	s = strings.TrimSuffix(s, "?scheduled")

	var accountStr, secondsStr, nanosStr string
	if at := strings.Index(s, "@"); at != -1 {
		accountStr = s[:at]
		rest := s[at+1:]
		dot := strings.Index(rest, ".")
		if dot == -1 {
			return TransactionId{}, sdkerrors.ErrParse("Expected `<account>@<seconds>.<nanos>`, got %s", value)
		}
		secondsStr, nanosStr = rest[:dot], rest[dot+1:]
	} else {
		parts := strings.Split(s, "-")
		if len(parts) != 3 {
			return TransactionId{}, sdkerrors.ErrParse("Expected `<account>-<seconds>-<nanos>`, got %s", value)
		}
		accountStr, secondsStr, nanosStr = parts[0], parts[1], parts[2]
	}

	accountId, err := AccountIdFromString(accountStr)
	if err != nil {
		return TransactionId{}, err
	}

	seconds, err := strconv.ParseUint(secondsStr, 10, 64)
	if err != nil {
		return TransactionId{}, sdkerrors.ErrParse("Invalid transaction id seconds in %s", value)
	}

	nanos, err := strconv.ParseUint(nanosStr, 10, 32)
	if err != nil || nanos >= nanosPerSecond {
		return TransactionId{}, sdkerrors.ErrParse("Invalid transaction id nanos in %s", value)
	}

	return TransactionId{
		AccountId:  accountId,
		ValidStart: Timestamp{Seconds: seconds, Nanos: uint32(nanos)},
		Scheduled:  scheduled,
		Nonce:      nonce,
	}, nil
}

func (t TransactionId) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s@%d.%d", t.AccountId, t.ValidStart.Seconds, t.ValidStart.Nanos)
	if t.Scheduled {
		sb.WriteString("?scheduled")
	}
	if t.Nonce != nil {
		fmt.Fprintf(&sb, "/%d", *t.Nonce)
	}
	return sb.String()
}

// Equals is structural, ignoring account id checksums
func (t TransactionId) Equals(other TransactionId) bool {
	if !t.AccountId.Equals(other.AccountId) || t.ValidStart != other.ValidStart || t.Scheduled != other.Scheduled {
		return false
	}

	switch {
	case t.Nonce == nil && other.Nonce == nil:
		return true
	case t.Nonce != nil && other.Nonce != nil:
		return *t.Nonce == *other.Nonce
	default:
		return false
	}
}

func (t TransactionId) ToProtobuf() *services.TransactionID {
	pb := &services.TransactionID{
		TransactionValidStart: t.ValidStart.ToProtobuf(),
		AccountID:             t.AccountId.ToProtobuf(),
		Scheduled:             t.Scheduled,
	}
	if t.Nonce != nil {
		pb.Nonce = *t.Nonce
	}
	return pb
}

func TransactionIdFromProtobuf(pb *services.TransactionID) (TransactionId, error) {
	if pb == nil {
		return TransactionId{}, sdkerrors.ErrParse("Missing transaction id")
	}

	accountId, err := AccountIdFromProtobuf(pb.AccountID)
	if err != nil {
		return TransactionId{}, err
	}

	id := TransactionId{
		AccountId:  accountId,
		ValidStart: TimestampFromProtobuf(pb.TransactionValidStart),
		Scheduled:  pb.Scheduled,
	}
	if pb.Nonce != 0 {
		nonce := pb.Nonce
		id.Nonce = &nonce
	}
	return id, nil
}
