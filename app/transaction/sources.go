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

package transaction

import (
	"bytes"
	"crypto/sha512"
	"sync"

	"github.com/hashgraph/hedera-client-go/app/crypto"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"golang.org/x/exp/slices"
	"google.golang.org/protobuf/proto"
)

// chunkRange is a half-open index range into the signed transaction list
type chunkRange struct {
	start int
	end   int
}

// TransactionSources is the immutable bundle of every signed sub-transaction
// comprising one logical, possibly multi-chunk, multi-node transaction. It is
// safe for concurrent readers: derived transactions and hashes are computed
// at most once, and signing returns a new value instead of mutating.
type TransactionSources struct {
	signedTransactions []*services.SignedTransaction
	chunks             []chunkRange
	transactionIds     []types.TransactionId
	nodeAccountIds     []types.AccountId

	transactionsOnce sync.Once
	transactions     []*services.Transaction
	hashesOnce       sync.Once
	hashes           [][]byte
}

// NewTransactionSources validates and indexes a signed transaction list.
// Every sub-transaction must carry the same signer set; chunks are the
// maximal runs of equal transaction ids; transaction ids must be distinct
// across chunks; every chunk must address the nodes of the first chunk in the
// same order. Any violation is a structural error, never repaired.
func NewTransactionSources(signedTransactions []*services.SignedTransaction) (*TransactionSources, error) {
	if len(signedTransactions) == 0 {
		return nil, sdkerrors.ErrStructural("Expected at least one signed transaction")
	}

	signers := signerPrefixes(signedTransactions[0])
	for _, signedTransaction := range signedTransactions[1:] {
		if !slices.EqualFunc(signers, signerPrefixes(signedTransaction), bytes.Equal) {
			return nil, sdkerrors.ErrStructural("Signed transactions have mismatched signer sets")
		}
	}

	bodies := make([]*services.TransactionBody, len(signedTransactions))
	for i, signedTransaction := range signedTransactions {
		body := &services.TransactionBody{}
		if err := proto.Unmarshal(signedTransaction.BodyBytes, body); err != nil {
			return nil, sdkerrors.WrapParse(err, "Invalid transaction body bytes")
		}
		bodies[i] = body
	}

	var chunks []chunkRange
	var transactionIds []types.TransactionId
	start := 0
	for i := range bodies {
		transactionId, err := types.TransactionIdFromProtobuf(bodies[i].TransactionID)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			transactionIds = append(transactionIds, transactionId)
			continue
		}

		if transactionId.Equals(transactionIds[len(transactionIds)-1]) {
			continue
		}

		for _, seen := range transactionIds {
			if seen.Equals(transactionId) {
				return nil, sdkerrors.ErrStructural("Duplicate transaction id %s across chunks", transactionId)
			}
		}

		chunks = append(chunks, chunkRange{start: start, end: i})
		transactionIds = append(transactionIds, transactionId)
		start = i
	}
	chunks = append(chunks, chunkRange{start: start, end: len(bodies)})

	first := chunks[0]
	nodeAccountIds := make([]types.AccountId, 0, first.end-first.start)
	for i := first.start; i < first.end; i++ {
		nodeAccountId, err := types.AccountIdFromProtobuf(bodies[i].NodeAccountID)
		if err != nil {
			return nil, err
		}
		nodeAccountIds = append(nodeAccountIds, nodeAccountId)
	}

	for _, chunk := range chunks[1:] {
		if chunk.end-chunk.start != len(nodeAccountIds) {
			return nil, sdkerrors.ErrStructural("Chunk addresses %d nodes, expected %d", chunk.end-chunk.start, len(nodeAccountIds))
		}

		for offset := 0; offset < len(nodeAccountIds); offset++ {
			nodeAccountId, err := types.AccountIdFromProtobuf(bodies[chunk.start+offset].NodeAccountID)
			if err != nil {
				return nil, err
			}
			if !nodeAccountId.Equals(nodeAccountIds[offset]) {
				return nil, sdkerrors.ErrStructural("Chunk node order differs from the first chunk")
			}
		}
	}

	return &TransactionSources{
		signedTransactions: signedTransactions,
		chunks:             chunks,
		transactionIds:     transactionIds,
		nodeAccountIds:     nodeAccountIds,
	}, nil
}

func signerPrefixes(signedTransaction *services.SignedTransaction) [][]byte {
	if signedTransaction.SigMap == nil {
		return nil
	}

	prefixes := make([][]byte, 0, len(signedTransaction.SigMap.SigPair))
	for _, pair := range signedTransaction.SigMap.SigPair {
		prefixes = append(prefixes, pair.PubKeyPrefix)
	}

	slices.SortFunc(prefixes, bytes.Compare)
	return prefixes
}

// ChunkCount is the number of chunk groups
func (s *TransactionSources) ChunkCount() int {
	return len(s.chunks)
}

// TransactionIds lists one id per chunk, in order
func (s *TransactionSources) TransactionIds() []types.TransactionId {
	return append([]types.TransactionId(nil), s.transactionIds...)
}

// NodeAccountIds is the node order shared by every chunk
func (s *TransactionSources) NodeAccountIds() []types.AccountId {
	return append([]types.AccountId(nil), s.nodeAccountIds...)
}

func (s *TransactionSources) SignedTransactions() []*services.SignedTransaction {
	return append([]*services.SignedTransaction(nil), s.signedTransactions...)
}

// signedTransactionAt returns the sub-transaction for a chunk and node offset
func (s *TransactionSources) signedTransactionAt(chunk, nodeOffset int) *services.SignedTransaction {
	r := s.chunks[chunk]
	return s.signedTransactions[r.start+nodeOffset]
}

// Transactions derives the wire envelopes, computed once
func (s *TransactionSources) Transactions() []*services.Transaction {
	s.transactionsOnce.Do(func() {
		transactions := make([]*services.Transaction, len(s.signedTransactions))
		for i, signedTransaction := range s.signedTransactions {
			data, _ := proto.Marshal(signedTransaction)
			transactions[i] = &services.Transaction{SignedTransactionBytes: data}
		}
		s.transactions = transactions
	})

	return s.transactions
}

// Hashes derives the SHA-384 transaction hashes, computed once
func (s *TransactionSources) Hashes() [][]byte {
	s.hashesOnce.Do(func() {
		transactions := s.Transactions()
		hashes := make([][]byte, len(transactions))
		for i, transaction := range transactions {
			hash := sha512.Sum384(transaction.SignedTransactionBytes)
			hashes[i] = hash[:]
		}
		s.hashes = hashes
	})

	return s.hashes
}

// SignWith returns a new sources value with the keys' signatures applied to
// every sub-transaction. A key whose public key already signed the first
// sub-transaction is skipped entirely, keeping signing idempotent and uniform
// across chunks. The receiver is never modified.
func (s *TransactionSources) SignWith(keys ...crypto.PrivateKey) *TransactionSources {
	pending := make([]crypto.PrivateKey, 0, len(keys))
	existing := signerPrefixes(s.signedTransactions[0])
	for _, key := range keys {
		prefix := key.PublicKey().BytesRaw()
		if !slices.ContainsFunc(existing, func(p []byte) bool { return bytes.Equal(p, prefix) }) {
			pending = append(pending, key)
		}
	}

	if len(pending) == 0 {
		return s
	}

	signedTransactions := make([]*services.SignedTransaction, len(s.signedTransactions))
	for i, signedTransaction := range s.signedTransactions {
		sigPairs := append([]*services.SignaturePair(nil), signedTransaction.GetSigMap().GetSigPair()...)
		for _, key := range pending {
			sigPairs = append(sigPairs, signaturePair(key, signedTransaction.BodyBytes))
		}

		signedTransactions[i] = &services.SignedTransaction{
			BodyBytes: signedTransaction.BodyBytes,
			SigMap:    &services.SignatureMap{SigPair: sigPairs},
		}
	}

	return &TransactionSources{
		signedTransactions: signedTransactions,
		chunks:             s.chunks,
		transactionIds:     s.transactionIds,
		nodeAccountIds:     s.nodeAccountIds,
	}
}

// withSignature returns a new sources value with one precomputed signature
// pair appended to every sub-transaction. Idempotent on the prefix.
func (s *TransactionSources) withSignature(pair *services.SignaturePair) *TransactionSources {
	for _, existing := range signerPrefixes(s.signedTransactions[0]) {
		if bytes.Equal(existing, pair.PubKeyPrefix) {
			return s
		}
	}

	signedTransactions := make([]*services.SignedTransaction, len(s.signedTransactions))
	for i, signedTransaction := range s.signedTransactions {
		sigPairs := append([]*services.SignaturePair(nil), signedTransaction.GetSigMap().GetSigPair()...)
		signedTransactions[i] = &services.SignedTransaction{
			BodyBytes: signedTransaction.BodyBytes,
			SigMap:    &services.SignatureMap{SigPair: append(sigPairs, pair)},
		}
	}

	return &TransactionSources{
		signedTransactions: signedTransactions,
		chunks:             s.chunks,
		transactionIds:     s.transactionIds,
		nodeAccountIds:     s.nodeAccountIds,
	}
}

// signaturePair signs bodyBytes and wires the signature with the full raw
// public key as prefix.
func signaturePair(key crypto.PrivateKey, bodyBytes []byte) *services.SignaturePair {
	signature := key.Sign(bodyBytes)
	publicKey := key.PublicKey()

	pair := &services.SignaturePair{PubKeyPrefix: publicKey.BytesRaw()}
	if publicKey.IsEd25519() {
		pair.Signature = &services.SignaturePair_Ed25519{Ed25519: signature}
	} else {
		pair.Signature = &services.SignaturePair_ECDSASecp256K1{ECDSASecp256K1: signature}
	}
	return pair
}
