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

// AccountBalance is an account's hbar balance plus its token balances keyed
// by token id string.
type AccountBalance struct {
	AccountId types.AccountId
	Hbars     types.Hbar
	Tokens    map[string]uint64
}

// AccountBalanceQuery fetches the balance of an account or a contract. The
// query is free, so it carries no payment and needs no operator.
type AccountBalanceQuery struct {
	accountId      *types.AccountId
	contractId     *types.ContractId
	nodeAccountIds []types.AccountId
}

func NewAccountBalanceQuery() *AccountBalanceQuery {
	return &AccountBalanceQuery{}
}

func (q *AccountBalanceQuery) SetAccountId(accountId types.AccountId) *AccountBalanceQuery {
	q.accountId = &accountId
	q.contractId = nil
	return q
}

func (q *AccountBalanceQuery) SetContractId(contractId types.ContractId) *AccountBalanceQuery {
	q.contractId = &contractId
	q.accountId = nil
	return q
}

func (q *AccountBalanceQuery) SetNodeAccountIds(nodeAccountIds []types.AccountId) *AccountBalanceQuery {
	q.nodeAccountIds = append([]types.AccountId(nil), nodeAccountIds...)
	return q
}

func (q *AccountBalanceQuery) Execute(ctx context.Context, c *client.Client) (AccountBalance, error) {
	if q.accountId == nil && q.contractId == nil {
		return AccountBalance{}, sdkerrors.ErrStructural("Account or contract id must be set on a balance query")
	}

	result, err := execution.Execute(ctx, c, q)
	if err != nil {
		return AccountBalance{}, err
	}
	return result.(AccountBalance), nil
}

func (q *AccountBalanceQuery) TransactionId() *types.TransactionId {
	return nil
}

func (q *AccountBalanceQuery) Nodes() []types.AccountId {
	return q.nodeAccountIds
}

func (q *AccountBalanceQuery) MakeRequest(*client.Node) (interface{}, error) {
	balanceQuery := &services.CryptoGetAccountBalanceQuery{
		Header: &services.QueryHeader{ResponseType: services.ResponseType_ANSWER_ONLY},
	}
	if q.accountId != nil {
		balanceQuery.BalanceSource = &services.CryptoGetAccountBalanceQuery_AccountID{AccountID: q.accountId.ToProtobuf()}
	} else {
		balanceQuery.BalanceSource = &services.CryptoGetAccountBalanceQuery_ContractID{ContractID: q.contractId.ToProtobuf()}
	}

	return &services.Query{
		Query: &services.Query_CryptogetAccountBalance{CryptogetAccountBalance: balanceQuery},
	}, nil
}

func (q *AccountBalanceQuery) Submit(ctx context.Context, channel *grpc.ClientConn, request interface{}) (interface{}, error) {
	return services.NewCryptoServiceClient(channel).CryptoGetBalance(ctx, request.(*services.Query))
}

func (q *AccountBalanceQuery) ResponseStatus(_, response interface{}) services.ResponseCodeEnum {
	return response.(*services.Response).GetCryptogetAccountBalance().GetHeader().GetNodeTransactionPrecheckCode()
}

func (q *AccountBalanceQuery) ShouldRetry(services.ResponseCodeEnum, interface{}) bool {
	return false
}

func (q *AccountBalanceQuery) MakeResponse(_, response interface{}, _ *client.Node) (interface{}, error) {
	balance := response.(*services.Response).GetCryptogetAccountBalance()

	accountId, err := types.AccountIdFromProtobuf(balance.GetAccountID())
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]uint64, len(balance.GetTokenBalances()))
	for _, tokenBalance := range balance.GetTokenBalances() {
		tokenId := types.TokenIdFromProtobuf(tokenBalance.GetTokenId())
		tokens[tokenId.String()] = tokenBalance.GetBalance()
	}

	return AccountBalance{
		AccountId: accountId,
		Hbars:     types.HbarFromTinybar(int64(balance.GetBalance())),
		Tokens:    tokens,
	}, nil
}

func (q *AccountBalanceQuery) RegenerateTransactionId(*client.Client) bool {
	return false
}
