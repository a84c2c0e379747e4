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
	"context"
	"crypto/sha512"

	"github.com/hashgraph/hedera-client-go/app/client"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

// chunkSubmit adapts one chunk of a frozen transaction to the execution loop
type chunkSubmit struct {
	transaction *Transaction
	chunk       int
}

// chunkRequest carries the wire envelope plus the identifiers the response is
// reported under.
type chunkRequest struct {
	transactionId types.TransactionId
	transaction   *services.Transaction
	hash          []byte
}

func (c *chunkSubmit) TransactionId() *types.TransactionId {
	transactionId := c.transaction.sources.transactionIds[c.chunk]
	return &transactionId
}

func (c *chunkSubmit) Nodes() []types.AccountId {
	return c.transaction.nodeAccountIds
}

func (c *chunkSubmit) MakeRequest(node *client.Node) (interface{}, error) {
	nodeOffset := -1
	for i, nodeAccountId := range c.transaction.nodeAccountIds {
		if nodeAccountId.Equals(node.AccountId) {
			nodeOffset = i
			break
		}
	}
	if nodeOffset == -1 {
		return nil, sdkerrors.ErrStructural("Transaction is not bound to node %s", node.AccountId)
	}

	signedTransaction := c.transaction.sources.signedTransactionAt(c.chunk, nodeOffset)
	data, err := proto.Marshal(signedTransaction)
	if err != nil {
		return nil, sdkerrors.WrapParse(err, "Failed to serialize signed transaction")
	}

	hash := sha512.Sum384(data)
	return &chunkRequest{
		transactionId: c.transaction.sources.transactionIds[c.chunk],
		transaction:   &services.Transaction{SignedTransactionBytes: data},
		hash:          hash[:],
	}, nil
}

func (c *chunkSubmit) Submit(ctx context.Context, channel *grpc.ClientConn, request interface{}) (interface{}, error) {
	return c.transaction.data.submit(ctx, channel, request.(*chunkRequest).transaction)
}

func (c *chunkSubmit) ResponseStatus(_, response interface{}) services.ResponseCodeEnum {
	return response.(*services.TransactionResponse).NodeTransactionPrecheckCode
}

func (c *chunkSubmit) ShouldRetry(services.ResponseCodeEnum, interface{}) bool {
	return false
}

func (c *chunkSubmit) MakeResponse(request, _ interface{}, node *client.Node) (interface{}, error) {
	req := request.(*chunkRequest)
	return TransactionResponse{
		TransactionId: req.transactionId,
		NodeAccountId: node.AccountId,
		Hash:          req.hash,
	}, nil
}

func (c *chunkSubmit) RegenerateTransactionId(cl *client.Client) bool {
	return c.transaction.regenerateTransactionId(cl)
}
