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

	"github.com/hashgraph/hedera-client-go/app/client"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-client-go/app/query"
	"github.com/hashgraph/hedera-protobufs-go/services"
)

// TransactionResponse records where one chunk was accepted: the node that
// took it, the id it executes under, and the SHA-384 hash of the signed
// sub-transaction as submitted.
type TransactionResponse struct {
	TransactionId types.TransactionId
	NodeAccountId types.AccountId
	Hash          []byte
}

// GetReceipt polls the accepting node until the transaction's receipt is
// available.
func (r TransactionResponse) GetReceipt(ctx context.Context, c *client.Client) (query.TransactionReceipt, error) {
	return query.NewTransactionReceiptQuery().
		SetTransactionId(r.TransactionId).
		SetNodeAccountIds([]types.AccountId{r.NodeAccountId}).
		Execute(ctx, c)
}

// awaitSuccessfulReceipt blocks until the chunk reached consensus, so the
// next chunk is sequenced after it. A receipt with any status other than
// success fails the remaining chunks.
func awaitSuccessfulReceipt(ctx context.Context, c *client.Client, response TransactionResponse) error {
	receipt, err := response.GetReceipt(ctx, c)
	if err != nil {
		return err
	}

	if receipt.Status != services.ResponseCodeEnum_SUCCESS {
		return sdkerrors.ErrPrecheck(receipt.Status, response.TransactionId.String())
	}
	return nil
}
