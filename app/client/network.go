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
	"math/rand"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	log "github.com/sirupsen/logrus"
)

// Network is the registry of known nodes with their health state. A node
// marked unhealthy is skipped by selection until the backoff window lapses;
// the TTL cache provides the lapse.
type Network struct {
	nodes     []*Node
	byAccount map[string]*Node
	unhealthy *cache.Cache[string, time.Time]
	backoff   time.Duration
	ledgerId  types.LedgerId
}

func NewNetwork(nodes map[string]types.AccountId, ledgerId types.LedgerId, unhealthyBackoff time.Duration) (*Network, error) {
	if len(nodes) == 0 {
		return nil, sdkerrors.ErrParse("Expected at least one network node")
	}

	network := &Network{
		byAccount: make(map[string]*Node, len(nodes)),
		unhealthy: cache.New[string, time.Time](),
		backoff:   unhealthyBackoff,
		ledgerId:  ledgerId,
	}

	for address, accountId := range nodes {
		node := NewNode(address, accountId)
		network.nodes = append(network.nodes, node)
		network.byAccount[accountId.String()] = node
	}

	return network, nil
}

func (n *Network) LedgerId() types.LedgerId {
	return n.ledgerId
}

// MarkUnhealthy removes the node from selection for the backoff window
func (n *Network) MarkUnhealthy(accountId types.AccountId) {
	log.Warnf("Marking node %s unhealthy for %s", accountId, n.backoff)
	n.unhealthy.Set(accountId.String(), time.Now(), cache.WithExpiration(n.backoff))
}

func (n *Network) IsHealthy(node *Node) bool {
	_, found := n.unhealthy.Get(node.AccountId.String())
	return !found
}

// NodeForAccountId resolves a node by its account id
func (n *Network) NodeForAccountId(accountId types.AccountId) (*Node, bool) {
	node, ok := n.byAccount[accountId.String()]
	return node, ok
}

// SelectNodes samples about a third of the healthy nodes in random order.
// When every node is unhealthy the full set is used, otherwise a submission
// with an entirely unhealthy network could never make an attempt.
func (n *Network) SelectNodes() []*Node {
	healthy := make([]*Node, 0, len(n.nodes))
	for _, node := range n.nodes {
		if n.IsHealthy(node) {
			healthy = append(healthy, node)
		}
	}

	if len(healthy) == 0 {
		healthy = append(healthy, n.nodes...)
	}

	count := (len(healthy) + 2) / 3
	if count < 1 {
		count = 1
	}

	selected := append([]*Node(nil), healthy...)
	rand.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	return selected[:count]
}

// Close releases every node channel
func (n *Network) Close() error {
	var lastErr error
	for _, node := range n.nodes {
		if err := node.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
