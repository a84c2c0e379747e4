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
	"fmt"
	"testing"
	"time"

	"github.com/hashgraph/hedera-client-go/app/domain/types"
	"github.com/stretchr/testify/assert"
)

func testNetwork(t *testing.T, size int) *Network {
	nodes := make(map[string]types.AccountId, size)
	for i := 0; i < size; i++ {
		nodes[fmt.Sprintf("10.0.0.%d:50211", i+1)] = types.AccountIdFromNum(uint64(3 + i))
	}

	network, err := NewNetwork(nodes, types.LedgerIdTestnet, 100*time.Millisecond)
	assert.NoError(t, err)
	return network
}

func TestNewNetworkRequiresNodes(t *testing.T) {
	_, err := NewNetwork(nil, types.LedgerIdTestnet, time.Minute)
	assert.Error(t, err)
}

func TestSelectNodesSamplesAThird(t *testing.T) {
	tests := []struct {
		size     int
		expected int
	}{
		{size: 1, expected: 1},
		{size: 2, expected: 1},
		{size: 3, expected: 1},
		{size: 4, expected: 2},
		{size: 7, expected: 3},
		{size: 10, expected: 4},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dNodes", tt.size), func(t *testing.T) {
			network := testNetwork(t, tt.size)
			assert.Len(t, network.SelectNodes(), tt.expected)
		})
	}
}

func TestSelectNodesSkipsUnhealthy(t *testing.T) {
	network := testNetwork(t, 4)
	unhealthy := types.AccountIdFromNum(3)
	network.MarkUnhealthy(unhealthy)

	for i := 0; i < 10; i++ {
		for _, node := range network.SelectNodes() {
			assert.False(t, unhealthy.Equals(node.AccountId))
		}
	}
}

func TestSelectNodesFallsBackWhenAllUnhealthy(t *testing.T) {
	network := testNetwork(t, 3)
	for _, node := range network.nodes {
		network.MarkUnhealthy(node.AccountId)
	}

	assert.Len(t, network.SelectNodes(), 1)
}

func TestUnhealthyExpires(t *testing.T) {
	network := testNetwork(t, 1)
	node := network.nodes[0]

	network.MarkUnhealthy(node.AccountId)
	assert.False(t, network.IsHealthy(node))

	time.Sleep(150 * time.Millisecond)
	assert.True(t, network.IsHealthy(node))
}

func TestNodeForAccountId(t *testing.T) {
	network := testNetwork(t, 2)

	node, ok := network.NodeForAccountId(types.AccountIdFromNum(3))
	assert.True(t, ok)
	assert.True(t, types.AccountIdFromNum(3).Equals(node.AccountId))

	_, ok = network.NodeForAccountId(types.AccountIdFromNum(99))
	assert.False(t, ok)
}
