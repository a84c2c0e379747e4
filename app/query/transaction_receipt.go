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

// Package query implements the read-only network operations. Queries reuse
// the submission loop of package execution; the ones here are free, so no
// payment transaction is attached.
package query

import (
	"context"

	"github.com/hashgraph/hedera-client-go/app/client"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-client-go/app/execution"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"google.golang.org/grpc"
)

// TransactionReceipt is the post-consensus outcome of a transaction
type TransactionReceipt struct {
	Status              services.ResponseCodeEnum
	AccountId           *types.AccountId
	FileId              *types.FileId
	TopicId             *types.TopicId
	TopicSequenceNumber uint64
	TopicRunningHash    []byte
}

// TransactionReceiptQuery polls a node for the receipt of a transaction. The
// receipt is typically not available right after submission, so a missing or
// still unknown receipt is retried by the execution loop rather than failing.
type TransactionReceiptQuery struct {
	transactionId  *types.TransactionId
	nodeAccountIds []types.AccountId
}

func NewTransactionReceiptQuery() *TransactionReceiptQuery {
	return &TransactionReceiptQuery{}
}

func (q *TransactionReceiptQuery) SetTransactionId(transactionId types.TransactionId) *TransactionReceiptQuery {
	q.transactionId = &transactionId
	return q
}

func (q *TransactionReceiptQuery) SetNodeAccountIds(nodeAccountIds []types.AccountId) *TransactionReceiptQuery {
	q.nodeAccountIds = append([]types.AccountId(nil), nodeAccountIds...)
	return q
}

func (q *TransactionReceiptQuery) Execute(ctx context.Context, c *client.Client) (TransactionReceipt, error) {
	if q.transactionId == nil {
		return TransactionReceipt{}, sdkerrors.ErrStructural("Transaction id must be set on a receipt query")
	}

	result, err := execution.Execute(ctx, c, q)
	if err != nil {
		return TransactionReceipt{}, err
	}
	return result.(TransactionReceipt), nil
}

func (q *TransactionReceiptQuery) TransactionId() *types.TransactionId {
	return q.transactionId
}

func (q *TransactionReceiptQuery) Nodes() []types.AccountId {
	return q.nodeAccountIds
}

func (q *TransactionReceiptQuery) MakeRequest(*client.Node) (interface{}, error) {
	return &services.Query{
		Query: &services.Query_TransactionGetReceipt{
			TransactionGetReceipt: &services.TransactionGetReceiptQuery{
				Header:        &services.QueryHeader{ResponseType: services.ResponseType_ANSWER_ONLY},
				TransactionID: q.transactionId.ToProtobuf(),
			},
		},
	}, nil
}

func (q *TransactionReceiptQuery) Submit(ctx context.Context, channel *grpc.ClientConn, request interface{}) (interface{}, error) {
	return services.NewCryptoServiceClient(channel).GetTransactionReceipts(ctx, request.(*services.Query))
}

func (q *TransactionReceiptQuery) ResponseStatus(_, response interface{}) services.ResponseCodeEnum {
	return response.(*services.Response).GetTransactionGetReceipt().GetHeader().GetNodeTransactionPrecheckCode()
}

// ShouldRetry keeps polling while the node has not yet seen the transaction
// reach consensus.
func (q *TransactionReceiptQuery) ShouldRetry(status services.ResponseCodeEnum, response interface{}) bool {
	switch status {
	case services.ResponseCodeEnum_UNKNOWN, services.ResponseCodeEnum_RECEIPT_NOT_FOUND:
		return true
	case services.ResponseCodeEnum_OK:
		receipt := response.(*services.Response).GetTransactionGetReceipt().GetReceipt()
		return receipt.GetStatus() == services.ResponseCodeEnum_UNKNOWN
	default:
		return false
	}
}

func (q *TransactionReceiptQuery) MakeResponse(_, response interface{}, _ *client.Node) (interface{}, error) {
	receipt := response.(*services.Response).GetTransactionGetReceipt().GetReceipt()
	if receipt == nil {
		return nil, sdkerrors.ErrParse("Receipt response carries no receipt")
	}

	result := TransactionReceipt{
		Status:              receipt.GetStatus(),
		TopicSequenceNumber: receipt.GetTopicSequenceNumber(),
		TopicRunningHash:    receipt.GetTopicRunningHash(),
	}

	if pb := receipt.GetAccountID(); pb != nil {
		accountId, err := types.AccountIdFromProtobuf(pb)
		if err != nil {
			return nil, err
		}
		result.AccountId = &accountId
	}
	if pb := receipt.GetFileID(); pb != nil {
		fileId := types.FileIdFromProtobuf(pb)
		result.FileId = &fileId
	}
	if pb := receipt.GetTopicID(); pb != nil {
		topicId := types.TopicIdFromProtobuf(pb)
		result.TopicId = &topicId
	}

	return result, nil
}

func (q *TransactionReceiptQuery) RegenerateTransactionId(*client.Client) bool {
	return false
}
