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

// FileAppendTransaction appends contents to an existing file. Contents larger
// than the chunk size become one append per chunk, each under its own
// transaction id, and each waits for the previous chunk's receipt so the
// appends land in order.
type FileAppendTransaction struct {
	Transaction

	fileId    types.FileId
	contents  []byte
	chunkSize int
	maxChunks int
}

func NewFileAppendTransaction() *FileAppendTransaction {
	tx := &FileAppendTransaction{Transaction: newTransaction()}
	tx.data = tx
	return tx
}

func (t *FileAppendTransaction) FileId() types.FileId {
	return t.fileId
}

func (t *FileAppendTransaction) SetFileId(fileId types.FileId) *FileAppendTransaction {
	t.requireNotFrozen()
	t.fileId = fileId
	return t
}

func (t *FileAppendTransaction) Contents() []byte {
	return t.contents
}

func (t *FileAppendTransaction) SetContents(contents []byte) *FileAppendTransaction {
	t.requireNotFrozen()
	t.contents = contents
	return t
}

func (t *FileAppendTransaction) SetChunkSize(size int) *FileAppendTransaction {
	t.requireNotFrozen()
	t.chunkSize = size
	return t
}

func (t *FileAppendTransaction) SetMaxChunks(count int) *FileAppendTransaction {
	t.requireNotFrozen()
	t.maxChunks = count
	return t
}

func (t *FileAppendTransaction) applyData(body *services.TransactionBody, chunk ChunkInfo) {
	body.Data = &services.TransactionBody_FileAppend{
		FileAppend: &services.FileAppendTransactionBody{
			FileID:   t.fileId.ToProtobuf(),
			Contents: chunkSlice(t.contents, chunk),
		},
	}
}

func (t *FileAppendTransaction) payload() *chunkPayload {
	return &chunkPayload{data: t.contents, chunkSize: t.chunkSize, maxChunks: t.maxChunks}
}

func (t *FileAppendTransaction) defaultMaxFee() types.Hbar {
	return types.NewHbar(5)
}

func (t *FileAppendTransaction) submit(ctx context.Context, channel *grpc.ClientConn, request *services.Transaction) (*services.TransactionResponse, error) {
	return services.NewFileServiceClient(channel).AppendContent(ctx, request)
}

func (t *FileAppendTransaction) waitForReceipts() bool {
	return true
}
