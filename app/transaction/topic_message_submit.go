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

// TopicMessageSubmitTransaction publishes a message to a consensus topic. A
// message larger than the chunk size is split, and every chunk after the
// first references the first chunk's transaction id so consumers can
// reassemble the message.
type TopicMessageSubmitTransaction struct {
	Transaction

	topicId   types.TopicId
	message   []byte
	chunkSize int
	maxChunks int
}

func NewTopicMessageSubmitTransaction() *TopicMessageSubmitTransaction {
	tx := &TopicMessageSubmitTransaction{Transaction: newTransaction()}
	tx.data = tx
	return tx
}

func (t *TopicMessageSubmitTransaction) TopicId() types.TopicId {
	return t.topicId
}

func (t *TopicMessageSubmitTransaction) SetTopicId(topicId types.TopicId) *TopicMessageSubmitTransaction {
	t.requireNotFrozen()
	t.topicId = topicId
	return t
}

func (t *TopicMessageSubmitTransaction) Message() []byte {
	return t.message
}

func (t *TopicMessageSubmitTransaction) SetMessage(message []byte) *TopicMessageSubmitTransaction {
	t.requireNotFrozen()
	t.message = message
	return t
}

// SetChunkSize overrides the client's configured chunk size
func (t *TopicMessageSubmitTransaction) SetChunkSize(size int) *TopicMessageSubmitTransaction {
	t.requireNotFrozen()
	t.chunkSize = size
	return t
}

// SetMaxChunks overrides the client's configured chunk limit
func (t *TopicMessageSubmitTransaction) SetMaxChunks(count int) *TopicMessageSubmitTransaction {
	t.requireNotFrozen()
	t.maxChunks = count
	return t
}

func (t *TopicMessageSubmitTransaction) applyData(body *services.TransactionBody, chunk ChunkInfo) {
	data := &services.ConsensusSubmitMessageTransactionBody{
		TopicID: t.topicId.ToProtobuf(),
		Message: chunkSlice(t.message, chunk),
	}

	if chunk.Total > 1 {
		data.ChunkInfo = &services.ConsensusMessageChunkInfo{
			InitialTransactionID: chunk.InitialTransactionId.ToProtobuf(),
			Total:                int32(chunk.Total),
			Number:               int32(chunk.Current),
		}
	}

	body.Data = &services.TransactionBody_ConsensusSubmitMessage{ConsensusSubmitMessage: data}
}

func (t *TopicMessageSubmitTransaction) payload() *chunkPayload {
	return &chunkPayload{data: t.message, chunkSize: t.chunkSize, maxChunks: t.maxChunks}
}

func (t *TopicMessageSubmitTransaction) defaultMaxFee() types.Hbar {
	return types.NewHbar(2)
}

func (t *TopicMessageSubmitTransaction) submit(ctx context.Context, channel *grpc.ClientConn, request *services.Transaction) (*services.TransactionResponse, error) {
	return services.NewConsensusServiceClient(channel).SubmitMessage(ctx, request)
}

func (t *TopicMessageSubmitTransaction) waitForReceipts() bool {
	return true
}

// chunkSlice cuts the chunk's window out of the full payload
func chunkSlice(data []byte, chunk ChunkInfo) []byte {
	if chunk.Total == 1 {
		return data
	}

	start := (chunk.Current - 1) * chunk.ChunkSize
	end := start + chunk.ChunkSize
	if end > len(data) {
		end = len(data)
	}
	if start > len(data) {
		start = len(data)
	}
	return data[start:end]
}
