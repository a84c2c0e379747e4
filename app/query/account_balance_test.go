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
	"testing"

	"github.com/hashgraph/hedera-client-go/app/domain/types"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"github.com/stretchr/testify/assert"
)

func TestAccountBalanceQueryRequiresSource(t *testing.T) {
	_, err := NewAccountBalanceQuery().Execute(context.Background(), nil)
	assert.Error(t, err)
	assert.True(t, sdkerrors.IsStructural(err))
}

func TestAccountBalanceQueryMakeRequest(t *testing.T) {
	q := NewAccountBalanceQuery().SetAccountId(types.AccountIdFromNum(1001))

	request, err := q.MakeRequest(nil)
	assert.NoError(t, err)

	balanceQuery := request.(*services.Query).GetCryptogetAccountBalance()
	assert.Equal(t, services.ResponseType_ANSWER_ONLY, balanceQuery.GetHeader().GetResponseType())
	assert.Equal(t, int64(1001), balanceQuery.GetAccountID().GetAccountNum())
	assert.Nil(t, balanceQuery.GetContractID())
}

func TestAccountBalanceQueryMakeRequestForContract(t *testing.T) {
	contractId, err := types.ContractIdFromString("0.0.2002")
	assert.NoError(t, err)
	q := NewAccountBalanceQuery().SetContractId(contractId)

	request, err := q.MakeRequest(nil)
	assert.NoError(t, err)

	balanceQuery := request.(*services.Query).GetCryptogetAccountBalance()
	assert.Equal(t, int64(2002), balanceQuery.GetContractID().GetContractNum())
	assert.Nil(t, balanceQuery.GetAccountID())
}

func TestAccountBalanceQuerySourcesAreMutuallyExclusive(t *testing.T) {
	contractId, err := types.ContractIdFromString("0.0.2002")
	assert.NoError(t, err)

	q := NewAccountBalanceQuery().
		SetAccountId(types.AccountIdFromNum(1001)).
		SetContractId(contractId)

	request, err := q.MakeRequest(nil)
	assert.NoError(t, err)
	assert.Nil(t, request.(*services.Query).GetCryptogetAccountBalance().GetAccountID())
}

func TestAccountBalanceQueryMakeResponse(t *testing.T) {
	q := NewAccountBalanceQuery()
	response := &services.Response{
		Response: &services.Response_CryptogetAccountBalance{
			CryptogetAccountBalance: &services.CryptoGetAccountBalanceResponse{
				Header:    &services.ResponseHeader{NodeTransactionPrecheckCode: services.ResponseCodeEnum_OK},
				AccountID: &services.AccountID{Account: &services.AccountID_AccountNum{AccountNum: 1001}},
				Balance:   250_000_000,
				TokenBalances: []*services.TokenBalance{
					{TokenId: &services.TokenID{TokenNum: 7007}, Balance: 99},
				},
			},
		},
	}

	assert.Equal(t, services.ResponseCodeEnum_OK, q.ResponseStatus(nil, response))

	result, err := q.MakeResponse(nil, response, nil)
	assert.NoError(t, err)

	balance := result.(AccountBalance)
	assert.True(t, types.AccountIdFromNum(1001).Equals(balance.AccountId))
	assert.Equal(t, int64(250_000_000), balance.Hbars.Tinybar())
	assert.Equal(t, map[string]uint64{"0.0.7007": 99}, balance.Tokens)
}
