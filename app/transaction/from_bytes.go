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
	"time"

	"github.com/hashgraph/hedera-client-go/app/domain/types"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-protobufs-go/sdk"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"google.golang.org/protobuf/proto"
)

// TransactionFromBytes restores a frozen transaction from its serialized
// transaction list, signatures included. The kind is recovered from the body;
// chunked payloads are reassembled from the chunk bodies. The restored
// transaction executes from the embedded sub-transactions, so its node set
// and ids are fixed and an expired id cannot be regenerated.
func TransactionFromBytes(data []byte) (TransactionInterface, error) {
	list := &sdk.TransactionList{}
	if err := proto.Unmarshal(data, list); err != nil {
		return nil, sdkerrors.WrapParse(err, "Invalid transaction list bytes")
	}

	signedTransactions := make([]*services.SignedTransaction, 0, len(list.TransactionList))
	for _, envelope := range list.TransactionList {
		if len(envelope.SignedTransactionBytes) == 0 {
			return nil, sdkerrors.ErrParse("Transaction envelope carries no signed transaction bytes")
		}

		signedTransaction := &services.SignedTransaction{}
		if err := proto.Unmarshal(envelope.SignedTransactionBytes, signedTransaction); err != nil {
			return nil, sdkerrors.WrapParse(err, "Invalid signed transaction bytes")
		}
		signedTransactions = append(signedTransactions, signedTransaction)
	}

	sources, err := NewTransactionSources(signedTransactions)
	if err != nil {
		return nil, err
	}

	bodies := make([]*services.TransactionBody, len(signedTransactions))
	for i, signedTransaction := range signedTransactions {
		body := &services.TransactionBody{}
		if err := proto.Unmarshal(signedTransaction.BodyBytes, body); err != nil {
			return nil, sdkerrors.WrapParse(err, "Invalid transaction body bytes")
		}
		bodies[i] = body
	}

	reference := normalizedBody(bodies[0])
	for _, body := range bodies[1:] {
		if !proto.Equal(reference, normalizedBody(body)) {
			return nil, sdkerrors.ErrStructural("Sub-transactions disagree on the transaction body")
		}
	}

	result, err := transactionFromBody(bodies, sources)
	if err != nil {
		return nil, err
	}

	base := result.base()
	transactionId := sources.transactionIds[0]
	base.transactionId = &transactionId
	base.nodeAccountIds = sources.NodeAccountIds()
	base.memo = bodies[0].Memo
	maxFee := types.HbarFromTinybar(int64(bodies[0].TransactionFee))
	base.maxFee = &maxFee
	if duration := bodies[0].TransactionValidDuration; duration != nil {
		base.validDuration = time.Duration(duration.Seconds) * time.Second
	}
	base.usedChunks = sources.ChunkCount()
	base.frozen = true
	base.externalSources = true
	base.sources = sources

	return result, nil
}

// restorable gives from-bytes access to the embedded core of a wrapper
type restorable interface {
	TransactionInterface
	base() *Transaction
}

func (t *Transaction) base() *Transaction {
	return t
}

// transactionFromBody rebuilds the concrete kind from the parsed bodies, one
// body per chunk taken at the first chunk's node.
func transactionFromBody(bodies []*services.TransactionBody, sources *TransactionSources) (restorable, error) {
	switch data := bodies[0].Data.(type) {
	case *services.TransactionBody_FileAppend:
		tx := NewFileAppendTransaction()
		tx.fileId = types.FileIdFromProtobuf(data.FileAppend.GetFileID())
		for _, chunk := range sources.chunks {
			tx.contents = append(tx.contents, bodies[chunk.start].GetFileAppend().GetContents()...)
		}
		return tx, nil
	case *services.TransactionBody_ConsensusSubmitMessage:
		tx := NewTopicMessageSubmitTransaction()
		tx.topicId = types.TopicIdFromProtobuf(data.ConsensusSubmitMessage.GetTopicID())
		for _, chunk := range sources.chunks {
			tx.message = append(tx.message, bodies[chunk.start].GetConsensusSubmitMessage().GetMessage()...)
		}
		return tx, nil
	case *services.TransactionBody_CryptoTransfer:
		tx := NewTransferTransaction()
		for _, amount := range data.CryptoTransfer.GetTransfers().GetAccountAmounts() {
			accountId, err := types.AccountIdFromProtobuf(amount.GetAccountID())
			if err != nil {
				return nil, err
			}
			tx.transfers = append(tx.transfers, hbarTransfer{
				accountId: accountId,
				amount:    types.HbarFromTinybar(amount.GetAmount()),
			})
		}
		return tx, nil
	default:
		return nil, sdkerrors.ErrParse("Unsupported transaction kind in transaction list")
	}
}

// normalizedBody strips the fields that legitimately vary between
// sub-transactions: the ids, the target node, and the chunked payload window.
func normalizedBody(body *services.TransactionBody) *services.TransactionBody {
	clone := proto.Clone(body).(*services.TransactionBody)
	clone.TransactionID = nil
	clone.NodeAccountID = nil

	switch data := clone.Data.(type) {
	case *services.TransactionBody_FileAppend:
		data.FileAppend.Contents = nil
	case *services.TransactionBody_ConsensusSubmitMessage:
		data.ConsensusSubmitMessage.Message = nil
		data.ConsensusSubmitMessage.ChunkInfo = nil
	}

	return clone
}
