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

	"github.com/hashgraph/hedera-client-go/app/domain/types"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"google.golang.org/grpc"
)

// hbarTransfer is one leg of a transfer, negative amounts debit the account
type hbarTransfer struct {
	accountId types.AccountId
	amount    types.Hbar
}

// TransferTransaction moves hbar between accounts. Transfers are accumulated
// per call and serialized in insertion order; the network requires the
// amounts to sum to zero.
type TransferTransaction struct {
	Transaction

	transfers []hbarTransfer
}

func NewTransferTransaction() *TransferTransaction {
	tx := &TransferTransaction{Transaction: newTransaction()}
	tx.data = tx
	return tx
}

// AddHbarTransfer appends one leg; repeated account ids are folded together
func (t *TransferTransaction) AddHbarTransfer(accountId types.AccountId, amount types.Hbar) *TransferTransaction {
	t.requireNotFrozen()

	for i, transfer := range t.transfers {
		if transfer.accountId.Equals(accountId) {
			t.transfers[i].amount = types.HbarFromTinybar(transfer.amount.Tinybar() + amount.Tinybar())
			return t
		}
	}

	t.transfers = append(t.transfers, hbarTransfer{accountId: accountId, amount: amount})
	return t
}

// HbarTransfers returns the accumulated legs keyed by account id string
func (t *TransferTransaction) HbarTransfers() map[string]types.Hbar {
	transfers := make(map[string]types.Hbar, len(t.transfers))
	for _, transfer := range t.transfers {
		transfers[transfer.accountId.String()] = transfer.amount
	}
	return transfers
}

func (t *TransferTransaction) applyData(body *services.TransactionBody, _ ChunkInfo) {
	amounts := make([]*services.AccountAmount, 0, len(t.transfers))
	for _, transfer := range t.transfers {
		amounts = append(amounts, &services.AccountAmount{
			AccountID: transfer.accountId.ToProtobuf(),
			Amount:    transfer.amount.Tinybar(),
		})
	}

	body.Data = &services.TransactionBody_CryptoTransfer{
		CryptoTransfer: &services.CryptoTransferTransactionBody{
			Transfers: &services.TransferList{AccountAmounts: amounts},
		},
	}
}

func (t *TransferTransaction) payload() *chunkPayload {
	return nil
}

func (t *TransferTransaction) defaultMaxFee() types.Hbar {
	return types.NewHbar(1)
}

func (t *TransferTransaction) submit(ctx context.Context, channel *grpc.ClientConn, request *services.Transaction) (*services.TransactionResponse, error) {
	return services.NewCryptoServiceClient(channel).CryptoTransfer(ctx, request)
}

func (t *TransferTransaction) waitForReceipts() bool {
	return false
}
