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

// Package execution drives a single logical submission (one transaction
// chunk, or one query) across a rotated set of nodes with backoff between
// transient failures.
package execution

import (
	"context"

	"github.com/hashgraph/hedera-client-go/app/client"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"google.golang.org/grpc"
)

// Executable adapts one operation kind to the execution loop. Request and
// response values are the operation's protobuf messages; the loop treats them
// opaquely.
type Executable interface {
	// TransactionId is the id of the attempt, nil for free queries
	TransactionId() *types.TransactionId

	// Nodes is the explicit node set the operation is bound to, or nil to
	// sample from the network. Pre-signed sources are bound to the node each
	// sub-transaction embeds.
	Nodes() []types.AccountId

	// MakeRequest builds the signed wire request for the target node
	MakeRequest(node *client.Node) (interface{}, error)

	// Submit sends the request over the node's channel
	Submit(ctx context.Context, channel *grpc.ClientConn, request interface{}) (interface{}, error)

	// ResponseStatus extracts the precheck status from a raw response
	ResponseStatus(request, response interface{}) services.ResponseCodeEnum

	// ShouldRetry lets an operation extend the transient set beyond the fixed
	// classification table, e.g. a receipt not yet being available.
	ShouldRetry(status services.ResponseCodeEnum, response interface{}) bool

	// MakeResponse converts a successful raw response into the caller result
	MakeResponse(request, response interface{}, node *client.Node) (interface{}, error)

	// RegenerateTransactionId replaces an expired generated id, reporting
	// whether the operation was allowed to do so.
	RegenerateTransactionId(c *client.Client) bool
}
