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
	"crypto/sha512"
	"testing"

	"github.com/hashgraph/hedera-client-go/app/crypto"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/proto"
)

var (
	node3 = types.AccountIdFromNum(3)
	node4 = types.AccountIdFromNum(4)
	payer = types.AccountIdFromNum(1001)
)

func chunkTransactionId(offset uint64) types.TransactionId {
	return types.TransactionIdWithValidStart(payer, types.Timestamp{Seconds: 1700000000, Nanos: uint32(offset)})
}

func signedTx(t *testing.T, transactionId types.TransactionId, nodeAccountId types.AccountId, pairs ...*services.SignaturePair) *services.SignedTransaction {
	body := &services.TransactionBody{
		TransactionID: transactionId.ToProtobuf(),
		NodeAccountID: nodeAccountId.ToProtobuf(),
		Data: &services.TransactionBody_CryptoTransfer{
			CryptoTransfer: &services.CryptoTransferTransactionBody{},
		},
	}

	bodyBytes, err := proto.Marshal(body)
	assert.NoError(t, err)

	return &services.SignedTransaction{
		BodyBytes: bodyBytes,
		SigMap:    &services.SignatureMap{SigPair: pairs},
	}
}

func TestNewTransactionSources(t *testing.T) {
	signedTransactions := []*services.SignedTransaction{
		signedTx(t, chunkTransactionId(0), node3),
		signedTx(t, chunkTransactionId(0), node4),
		signedTx(t, chunkTransactionId(1), node3),
		signedTx(t, chunkTransactionId(1), node4),
		signedTx(t, chunkTransactionId(2), node3),
		signedTx(t, chunkTransactionId(2), node4),
	}

	sources, err := NewTransactionSources(signedTransactions)
	assert.NoError(t, err)
	assert.Equal(t, 3, sources.ChunkCount())
	assert.Len(t, sources.NodeAccountIds(), 2)
	assert.True(t, node3.Equals(sources.NodeAccountIds()[0]))
	assert.True(t, node4.Equals(sources.NodeAccountIds()[1]))

	transactionIds := sources.TransactionIds()
	assert.Len(t, transactionIds, 3)
	for i, transactionId := range transactionIds {
		assert.True(t, chunkTransactionId(uint64(i)).Equals(transactionId))
	}
}

func TestNewTransactionSourcesEmpty(t *testing.T) {
	_, err := NewTransactionSources(nil)
	assert.Error(t, err)
	assert.True(t, sdkerrors.IsStructural(err))
}

func TestNewTransactionSourcesMismatchedSigners(t *testing.T) {
	key, _ := crypto.GenerateEd25519PrivateKey()
	first := signedTx(t, chunkTransactionId(0), node3)
	second := signedTx(t, chunkTransactionId(0), node4, signaturePair(key, []byte("body")))

	_, err := NewTransactionSources([]*services.SignedTransaction{first, second})
	assert.Error(t, err)
	assert.True(t, sdkerrors.IsStructural(err))
}

func TestNewTransactionSourcesDuplicateTransactionId(t *testing.T) {
	signedTransactions := []*services.SignedTransaction{
		signedTx(t, chunkTransactionId(0), node3),
		signedTx(t, chunkTransactionId(1), node3),
		signedTx(t, chunkTransactionId(0), node3),
	}

	_, err := NewTransactionSources(signedTransactions)
	assert.Error(t, err)
	assert.True(t, sdkerrors.IsStructural(err))
}

func TestNewTransactionSourcesUnevenChunks(t *testing.T) {
	signedTransactions := []*services.SignedTransaction{
		signedTx(t, chunkTransactionId(0), node3),
		signedTx(t, chunkTransactionId(0), node4),
		signedTx(t, chunkTransactionId(1), node3),
	}

	_, err := NewTransactionSources(signedTransactions)
	assert.Error(t, err)
	assert.True(t, sdkerrors.IsStructural(err))
}

func TestNewTransactionSourcesWrongNodeOrder(t *testing.T) {
	signedTransactions := []*services.SignedTransaction{
		signedTx(t, chunkTransactionId(0), node3),
		signedTx(t, chunkTransactionId(0), node4),
		signedTx(t, chunkTransactionId(1), node4),
		signedTx(t, chunkTransactionId(1), node3),
	}

	_, err := NewTransactionSources(signedTransactions)
	assert.Error(t, err)
	assert.True(t, sdkerrors.IsStructural(err))
}

func TestTransactionSourcesSignWith(t *testing.T) {
	key, _ := crypto.GenerateEd25519PrivateKey()

	sources, err := NewTransactionSources([]*services.SignedTransaction{
		signedTx(t, chunkTransactionId(0), node3),
		signedTx(t, chunkTransactionId(0), node4),
	})
	assert.NoError(t, err)

	signed := sources.SignWith(key)
	assert.NotSame(t, sources, signed)

	// every sub-transaction carries the signature, the original is untouched
	for _, signedTransaction := range signed.SignedTransactions() {
		pairs := signedTransaction.GetSigMap().GetSigPair()
		assert.Len(t, pairs, 1)
		assert.Equal(t, key.PublicKey().BytesRaw(), pairs[0].PubKeyPrefix)
	}
	for _, signedTransaction := range sources.SignedTransactions() {
		assert.Empty(t, signedTransaction.GetSigMap().GetSigPair())
	}

	// signing with the same key again is a no-op
	assert.Same(t, signed, signed.SignWith(key))
}

func TestTransactionSourcesSignWithSecondKey(t *testing.T) {
	first, _ := crypto.GenerateEd25519PrivateKey()
	second, _ := crypto.GenerateEcdsaPrivateKey()

	sources, err := NewTransactionSources([]*services.SignedTransaction{
		signedTx(t, chunkTransactionId(0), node3),
	})
	assert.NoError(t, err)

	signed := sources.SignWith(first).SignWith(second)
	pairs := signed.SignedTransactions()[0].GetSigMap().GetSigPair()
	assert.Len(t, pairs, 2)
}

func TestTransactionSourcesTransactionsAndHashes(t *testing.T) {
	sources, err := NewTransactionSources([]*services.SignedTransaction{
		signedTx(t, chunkTransactionId(0), node3),
		signedTx(t, chunkTransactionId(0), node4),
	})
	assert.NoError(t, err)

	transactions := sources.Transactions()
	assert.Len(t, transactions, 2)

	hashes := sources.Hashes()
	assert.Len(t, hashes, 2)
	for i, transaction := range transactions {
		expected := sha512.Sum384(transaction.SignedTransactionBytes)
		assert.Equal(t, expected[:], hashes[i])
	}

	// computed once
	assert.Same(t, transactions[0], sources.Transactions()[0])
}
