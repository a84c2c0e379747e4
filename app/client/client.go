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
	"time"

	"github.com/hashgraph/hedera-client-go/app/config"
	"github.com/hashgraph/hedera-client-go/app/crypto"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
)

// Client holds the per-client context threaded through every operation: the
// node registry, the operator, and the chunking and retry limits. It has no
// global state; independent clients are fully isolated.
type Client struct {
	network  *Network
	operator *Operator

	chunkSize      int
	maxChunks      int
	maxAttempts    int
	minBackoff     time.Duration
	maxBackoff     time.Duration
	requestTimeout time.Duration

	regenerateTransactionId bool
}

// NewClient builds a client from a validated configuration
func NewClient(cfg *config.Config) (*Client, error) {
	ledgerId, err := types.LedgerIdFromString(cfg.Network)
	if err != nil {
		return nil, err
	}

	network, err := NewNetwork(cfg.Nodes, ledgerId, cfg.NodeUnhealthyBackoff)
	if err != nil {
		return nil, err
	}

	client := &Client{
		network:                 network,
		chunkSize:               cfg.ChunkSize,
		maxChunks:               cfg.MaxChunks,
		maxAttempts:             cfg.Retry.MaxAttempts,
		minBackoff:              cfg.Retry.MinBackoff,
		maxBackoff:              cfg.Retry.MaxBackoff,
		requestTimeout:          cfg.RequestTimeout,
		regenerateTransactionId: true,
	}

	if cfg.Operator.Account != "" {
		accountId, err := types.AccountIdFromString(cfg.Operator.Account)
		if err != nil {
			return nil, err
		}

		key, err := crypto.PrivateKeyFromString(cfg.Operator.Key)
		if err != nil {
			return nil, err
		}

		client.operator = &Operator{AccountId: accountId, PrivateKey: key}
	}

	return client, nil
}

func (c *Client) Network() *Network {
	return c.network
}

// Operator returns the configured operator, or nil when the client only
// builds unsigned transactions.
func (c *Client) Operator() *Operator {
	return c.operator
}

func (c *Client) RequireOperator() (*Operator, error) {
	if c.operator == nil {
		return nil, sdkerrors.ErrKey("Client has no operator configured")
	}
	return c.operator, nil
}

func (c *Client) ChunkSize() int {
	return c.chunkSize
}

func (c *Client) MaxChunks() int {
	return c.maxChunks
}

func (c *Client) MaxAttempts() int {
	return c.maxAttempts
}

func (c *Client) MinBackoff() time.Duration {
	return c.minBackoff
}

func (c *Client) MaxBackoff() time.Duration {
	return c.maxBackoff
}

func (c *Client) RequestTimeout() time.Duration {
	return c.requestTimeout
}

// RegenerateTransactionIdOnExpiry controls whether an expired generated
// transaction id is replaced and retried instead of failing.
func (c *Client) RegenerateTransactionIdOnExpiry() bool {
	return c.regenerateTransactionId
}

func (c *Client) SetRegenerateTransactionIdOnExpiry(value bool) {
	c.regenerateTransactionId = value
}

func (c *Client) Close() error {
	return c.network.Close()
}
