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
	"testing"

	"github.com/hashgraph/hedera-client-go/app/crypto"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"github.com/stretchr/testify/assert"
	"github.com/thanhpk/randstr"
	"google.golang.org/protobuf/proto"
)

func frozenTransfer(t *testing.T) *TransferTransaction {
	tx := NewTransferTransaction().
		AddHbarTransfer(payer, types.HbarFromTinybar(-100)).
		AddHbarTransfer(node3, types.HbarFromTinybar(100))
	tx.SetNodeAccountIds([]types.AccountId{node3})
	tx.SetTransactionId(chunkTransactionId(0))
	assert.NoError(t, tx.Freeze())
	return tx
}

func TestFreezeRequiresNodes(t *testing.T) {
	tx := NewTransferTransaction()
	tx.SetTransactionId(chunkTransactionId(0))
	assert.Error(t, tx.Freeze())
}

func TestFreezeRequiresTransactionId(t *testing.T) {
	tx := NewTransferTransaction()
	tx.SetNodeAccountIds([]types.AccountId{node3})
	assert.Error(t, tx.Freeze())
}

func TestFreeze(t *testing.T) {
	tx := frozenTransfer(t)

	assert.True(t, tx.IsFrozen())
	assert.NotNil(t, tx.Sources())
	assert.Equal(t, 1, tx.Sources().ChunkCount())

	// freezing again is a no-op
	assert.NoError(t, tx.Freeze())
}

func TestFrozenTransactionRejectsChanges(t *testing.T) {
	tx := frozenTransfer(t)

	assert.Panics(t, func() { tx.SetTransactionMemo("memo") })
	assert.Panics(t, func() { tx.SetNodeAccountIds([]types.AccountId{node4}) })
	assert.Panics(t, func() { tx.SetTransactionId(chunkTransactionId(1)) })
	assert.Panics(t, func() { tx.AddHbarTransfer(node4, types.HbarFromTinybar(1)) })
}

func TestSignWithAfterFreeze(t *testing.T) {
	key, _ := crypto.GenerateEd25519PrivateKey()
	tx := frozenTransfer(t)

	tx.SignWith(key)
	pairs := tx.Sources().SignedTransactions()[0].GetSigMap().GetSigPair()
	assert.Len(t, pairs, 1)

	// idempotent
	tx.SignWith(key)
	pairs = tx.Sources().SignedTransactions()[0].GetSigMap().GetSigPair()
	assert.Len(t, pairs, 1)
}

func TestSignWithBeforeFreeze(t *testing.T) {
	key, _ := crypto.GenerateEd25519PrivateKey()

	tx := NewTransferTransaction().AddHbarTransfer(payer, types.HbarFromTinybar(-1))
	tx.SetNodeAccountIds([]types.AccountId{node3})
	tx.SetTransactionId(chunkTransactionId(0))

	// registered before freezing, applied when the bodies exist
	tx.SignWith(key)
	assert.NoError(t, tx.Freeze())

	pairs := tx.Sources().SignedTransactions()[0].GetSigMap().GetSigPair()
	assert.Len(t, pairs, 1)
	assert.Equal(t, key.PublicKey().BytesRaw(), pairs[0].PubKeyPrefix)
}

func TestAddSignature(t *testing.T) {
	key, _ := crypto.GenerateEd25519PrivateKey()
	tx := frozenTransfer(t)

	bodyBytes := tx.Sources().SignedTransactions()[0].BodyBytes
	tx.AddSignature(key.PublicKey(), key.Sign(bodyBytes))

	pairs := tx.Sources().SignedTransactions()[0].GetSigMap().GetSigPair()
	assert.Len(t, pairs, 1)
}

func TestAddSignaturePanics(t *testing.T) {
	key, _ := crypto.GenerateEd25519PrivateKey()

	unfrozen := NewTransferTransaction()
	assert.Panics(t, func() { unfrozen.AddSignature(key.PublicKey(), []byte{1}) })

	multiNode := NewTransferTransaction().AddHbarTransfer(payer, types.HbarFromTinybar(-1))
	multiNode.SetNodeAccountIds([]types.AccountId{node3, node4})
	multiNode.SetTransactionId(chunkTransactionId(0))
	assert.NoError(t, multiNode.Freeze())
	assert.Panics(t, func() { multiNode.AddSignature(key.PublicKey(), []byte{1}) })
}

func TestTopicMessageSubmitChunking(t *testing.T) {
	message := randstr.Bytes(2500)

	tx := NewTopicMessageSubmitTransaction().
		SetTopicId(types.TopicId{EntityId: types.EntityId{Num: 1500}}).
		SetMessage(message).
		SetChunkSize(1000)
	tx.SetNodeAccountIds([]types.AccountId{node3, node4})
	tx.SetTransactionId(chunkTransactionId(0))
	assert.NoError(t, tx.Freeze())

	sources := tx.Sources()
	assert.Equal(t, 3, sources.ChunkCount())
	assert.Len(t, sources.SignedTransactions(), 6)

	// chunk ids advance one nanosecond at a time from the initial id
	transactionIds := sources.TransactionIds()
	for i, transactionId := range transactionIds {
		assert.True(t, chunkTransactionId(uint64(i)).Equals(transactionId))
	}

	// every chunk body references the initial id and its own position
	var reassembled []byte
	for chunk := 0; chunk < 3; chunk++ {
		body := &services.TransactionBody{}
		assert.NoError(t, proto.Unmarshal(sources.signedTransactionAt(chunk, 0).BodyBytes, body))

		chunkInfo := body.GetConsensusSubmitMessage().GetChunkInfo()
		assert.NotNil(t, chunkInfo)
		assert.Equal(t, int32(3), chunkInfo.GetTotal())
		assert.Equal(t, int32(chunk+1), chunkInfo.GetNumber())

		initial, err := types.TransactionIdFromProtobuf(chunkInfo.GetInitialTransactionID())
		assert.NoError(t, err)
		assert.True(t, chunkTransactionId(0).Equals(initial))

		reassembled = append(reassembled, body.GetConsensusSubmitMessage().GetMessage()...)
	}
	assert.Equal(t, message, reassembled)
}

func TestTopicMessageSubmitSingleChunkOmitsChunkInfo(t *testing.T) {
	tx := NewTopicMessageSubmitTransaction().
		SetTopicId(types.TopicId{EntityId: types.EntityId{Num: 1500}}).
		SetMessage([]byte("short"))
	tx.SetNodeAccountIds([]types.AccountId{node3})
	tx.SetTransactionId(chunkTransactionId(0))
	assert.NoError(t, tx.Freeze())

	body := &services.TransactionBody{}
	assert.NoError(t, proto.Unmarshal(tx.Sources().signedTransactionAt(0, 0).BodyBytes, body))
	assert.Nil(t, body.GetConsensusSubmitMessage().GetChunkInfo())
}

func TestChunkLimitExceeded(t *testing.T) {
	tx := NewTopicMessageSubmitTransaction().
		SetTopicId(types.TopicId{EntityId: types.EntityId{Num: 1500}}).
		SetMessage(randstr.Bytes(2500)).
		SetChunkSize(100).
		SetMaxChunks(5)
	tx.SetNodeAccountIds([]types.AccountId{node3})
	tx.SetTransactionId(chunkTransactionId(0))

	assert.Error(t, tx.Freeze())
}

func TestFileAppendChunking(t *testing.T) {
	contents := randstr.Bytes(2100)

	tx := NewFileAppendTransaction().
		SetFileId(types.FileId{EntityId: types.EntityId{Num: 150}}).
		SetContents(contents).
		SetChunkSize(1024)
	tx.SetNodeAccountIds([]types.AccountId{node3})
	tx.SetTransactionId(chunkTransactionId(0))
	assert.NoError(t, tx.Freeze())

	sources := tx.Sources()
	assert.Equal(t, 3, sources.ChunkCount())

	var reassembled []byte
	for chunk := 0; chunk < 3; chunk++ {
		body := &services.TransactionBody{}
		assert.NoError(t, proto.Unmarshal(sources.signedTransactionAt(chunk, 0).BodyBytes, body))
		reassembled = append(reassembled, body.GetFileAppend().GetContents()...)
	}
	assert.Equal(t, contents, reassembled)
}

func TestToBytesRequiresFrozen(t *testing.T) {
	_, err := NewTransferTransaction().ToBytes()
	assert.Error(t, err)
}

func TestBytesRoundTrip(t *testing.T) {
	key, _ := crypto.GenerateEd25519PrivateKey()

	tx := NewTransferTransaction().
		AddHbarTransfer(payer, types.HbarFromTinybar(-100)).
		AddHbarTransfer(node3, types.HbarFromTinybar(100))
	tx.SetNodeAccountIds([]types.AccountId{node3})
	tx.SetTransactionId(chunkTransactionId(0))
	tx.SetTransactionMemo("round trip")
	assert.NoError(t, tx.Freeze())
	tx.SignWith(key)

	data, err := tx.ToBytes()
	assert.NoError(t, err)

	restored, err := TransactionFromBytes(data)
	assert.NoError(t, err)

	transfer, ok := restored.(*TransferTransaction)
	assert.True(t, ok)
	assert.True(t, transfer.IsFrozen())
	assert.Equal(t, "round trip", transfer.memo)
	assert.Len(t, transfer.HbarTransfers(), 2)
	assert.Equal(t, types.HbarFromTinybar(-100), transfer.HbarTransfers()[payer.String()])

	// the signature survives and re-signing stays idempotent
	pairs := transfer.Sources().SignedTransactions()[0].GetSigMap().GetSigPair()
	assert.Len(t, pairs, 1)
	transfer.SignWith(key)
	pairs = transfer.Sources().SignedTransactions()[0].GetSigMap().GetSigPair()
	assert.Len(t, pairs, 1)

	// serialized forms match
	restoredData, err := transfer.ToBytes()
	assert.NoError(t, err)
	assert.Equal(t, data, restoredData)
}

func TestBytesRoundTripChunked(t *testing.T) {
	message := randstr.Bytes(2500)

	tx := NewTopicMessageSubmitTransaction().
		SetTopicId(types.TopicId{EntityId: types.EntityId{Num: 1500}}).
		SetMessage(message).
		SetChunkSize(1000)
	tx.SetNodeAccountIds([]types.AccountId{node3, node4})
	tx.SetTransactionId(chunkTransactionId(0))
	assert.NoError(t, tx.Freeze())

	data, err := tx.ToBytes()
	assert.NoError(t, err)

	restored, err := TransactionFromBytes(data)
	assert.NoError(t, err)

	submit, ok := restored.(*TopicMessageSubmitTransaction)
	assert.True(t, ok)
	assert.Equal(t, message, submit.Message())
	assert.Equal(t, uint64(1500), submit.TopicId().Num)
	assert.Equal(t, 3, submit.Sources().ChunkCount())
	assert.Len(t, submit.NodeAccountIds(), 2)
}

func TestTransactionFromBytesInvalid(t *testing.T) {
	_, err := TransactionFromBytes([]byte("not a transaction list"))
	assert.Error(t, err)

	// an empty list has no sub-transactions
	empty, _ := proto.Marshal(&services.TransactionBody{})
	_, err = TransactionFromBytes(empty)
	assert.Error(t, err)
}

func TestTransferFoldsRepeatedAccounts(t *testing.T) {
	tx := NewTransferTransaction().
		AddHbarTransfer(payer, types.HbarFromTinybar(-100)).
		AddHbarTransfer(payer, types.HbarFromTinybar(-50))

	assert.Equal(t, types.HbarFromTinybar(-150), tx.HbarTransfers()[payer.String()])
}
