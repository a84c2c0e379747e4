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
	"sync"

	"github.com/hashgraph/hedera-client-go/app/domain/types"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Node is one consensus node endpoint. The gRPC channel is dialed lazily and
// shared by every request addressed to the node.
type Node struct {
	AccountId types.AccountId
	Address   string

	mu   sync.Mutex
	conn *grpc.ClientConn
}

func NewNode(address string, accountId types.AccountId) *Node {
	return &Node{AccountId: accountId, Address: address}
}

// Channel returns the node's gRPC channel, dialing on first use
func (n *Node) Channel() (*grpc.ClientConn, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn != nil {
		return n.conn, nil
	}

	conn, err := grpc.NewClient(n.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, sdkerrors.WrapTransient(err, "Failed to open channel to "+n.Address)
	}

	n.conn = conn
	return conn, nil
}

func (n *Node) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn == nil {
		return nil
	}

	err := n.conn.Close()
	n.conn = nil
	return err
}
