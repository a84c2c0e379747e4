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

package config

import (
	"time"

	"github.com/hashgraph/hedera-client-go/app/domain/types"
)

// NodeMap maps a node endpoint (host:port) to its account id
type NodeMap map[string]types.AccountId

// Operator is the account that pays for and signs every generated transaction
type Operator struct {
	Account string
	Key     string
}

// Retry bounds the execution loop
type Retry struct {
	MaxAttempts int           `validate:"gt=0"`
	MinBackoff  time.Duration `validate:"gt=0"`
	MaxBackoff  time.Duration `validate:"gt=0"`
}

// Config is the client configuration surface. Chunking limits, retry policy,
// and the node map are all consumed by the client and execution packages.
type Config struct {
	ChunkSize            int `validate:"gt=0"`
	MaxChunks            int `validate:"gt=0"`
	Network              string
	Nodes                NodeMap
	NodeUnhealthyBackoff time.Duration `validate:"gt=0"`
	Operator             Operator
	RequestTimeout       time.Duration `validate:"gt=0"`
	Retry                Retry
}
