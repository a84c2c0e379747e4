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

package client

import (
	"github.com/hashgraph/hedera-client-go/app/crypto"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
)

// Operator is the account paying for generated transactions and the key that
// signs them.
type Operator struct {
	AccountId  types.AccountId
	PrivateKey crypto.PrivateKey
}

func (o Operator) PublicKey() crypto.PublicKey {
	return o.PrivateKey.PublicKey()
}

func (o Operator) Sign(message []byte) []byte {
	return o.PrivateKey.Sign(message)
}
