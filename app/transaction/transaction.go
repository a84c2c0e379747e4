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

// Package transaction models ledger transactions: building and chunking
// bodies, freezing them against a node set, collecting signatures, and
// submitting chunk by chunk through the execution loop.
package transaction

import (
	"context"
	"time"

	"github.com/hashgraph/hedera-client-go/app/client"
	"github.com/hashgraph/hedera-client-go/app/crypto"
	"github.com/hashgraph/hedera-client-go/app/domain/types"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-client-go/app/execution"
	"github.com/hashgraph/hedera-protobufs-go/sdk"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

const (
	defaultValidDuration = 120 * time.Second
	defaultChunkSize     = 1024
	defaultMaxChunks     = 20
)

// TransactionInterface is the surface shared by every transaction kind
type TransactionInterface interface {
	SignWith(keys ...crypto.PrivateKey)
	FreezeWith(c *client.Client) error
	IsFrozen() bool
	Execute(ctx context.Context, c *client.Client) (TransactionResponse, error)
	ExecuteAll(ctx context.Context, c *client.Client) ([]TransactionResponse, error)
	ToBytes() ([]byte, error)
	Sources() *TransactionSources
}

// ChunkInfo describes one chunk while its body is being built
type ChunkInfo struct {
	// Current is 1-based
	Current              int
	Total                int
	ChunkSize            int
	InitialTransactionId types.TransactionId
	CurrentTransactionId types.TransactionId
	NodeAccountId        types.AccountId
}

// chunkPayload is the splittable part of a chunked transaction kind. Zero
// limits fall back to the client's configuration.
type chunkPayload struct {
	data      []byte
	chunkSize int
	maxChunks int
}

// transactionData is implemented by each concrete transaction kind
type transactionData interface {
	// applyData sets the kind-specific body field for one chunk
	applyData(body *services.TransactionBody, chunk ChunkInfo)

	// payload returns the splittable content, nil for single-chunk kinds
	payload() *chunkPayload

	defaultMaxFee() types.Hbar

	// submit invokes the kind's service method on an open channel
	submit(ctx context.Context, channel *grpc.ClientConn, request *services.Transaction) (*services.TransactionResponse, error)

	// waitForReceipts gates multi-chunk submission on per-chunk receipts so
	// the network sequences the chunks in order
	waitForReceipts() bool
}

// Transaction is the kind-independent core embedded by every transaction
// type. Before freezing it is a mutable builder; freezing fixes the node set,
// transaction id, and chunking, and builds the signable sub-transactions.
// After freezing only signatures may be added.
type Transaction struct {
	data transactionData

	nodeAccountIds []types.AccountId
	transactionId  *types.TransactionId
	validDuration  time.Duration
	maxFee         *types.Hbar
	memo           string

	frozen          bool
	generatedId     bool
	externalSources bool
	usedChunks      int
	usedChunkSize   int
	operator        *client.Operator
	signers         []crypto.PrivateKey
	sources         *TransactionSources
}

func newTransaction() Transaction {
	return Transaction{validDuration: defaultValidDuration}
}

func (t *Transaction) requireNotFrozen() {
	if t.frozen {
		panic("transaction is frozen; no further changes are possible")
	}
}

func (t *Transaction) requireFrozen() error {
	if !t.frozen {
		return sdkerrors.ErrStructural("Transaction is not frozen")
	}
	return nil
}

func (t *Transaction) IsFrozen() bool {
	return t.frozen
}

// TransactionId is the initial transaction id, nil until set or frozen
func (t *Transaction) TransactionId() *types.TransactionId {
	return t.transactionId
}

func (t *Transaction) SetTransactionId(transactionId types.TransactionId) {
	t.requireNotFrozen()
	t.transactionId = &transactionId
	t.generatedId = false
}

func (t *Transaction) NodeAccountIds() []types.AccountId {
	return append([]types.AccountId(nil), t.nodeAccountIds...)
}

func (t *Transaction) SetNodeAccountIds(nodeAccountIds []types.AccountId) {
	t.requireNotFrozen()
	t.nodeAccountIds = append([]types.AccountId(nil), nodeAccountIds...)
}

func (t *Transaction) SetTransactionValidDuration(duration time.Duration) {
	t.requireNotFrozen()
	t.validDuration = duration
}

func (t *Transaction) SetMaxTransactionFee(fee types.Hbar) {
	t.requireNotFrozen()
	t.maxFee = &fee
}

func (t *Transaction) SetTransactionMemo(memo string) {
	t.requireNotFrozen()
	t.memo = memo
}

// Sources exposes the frozen sub-transactions, nil before freezing
func (t *Transaction) Sources() *TransactionSources {
	return t.sources
}

// SignWith registers signing keys. Before freezing the keys are held and
// applied when the transaction freezes; afterwards the signatures are applied
// immediately. Signing twice with the same key is a no-op.
func (t *Transaction) SignWith(keys ...crypto.PrivateKey) {
	t.signers = append(t.signers, keys...)
	if t.frozen {
		t.sources = t.sources.SignWith(keys...)
	}
}

// AddSignature attaches an externally computed signature. Only supported for
// a frozen single-chunk transaction bound to exactly one node, since the
// signature covers exactly one body.
func (t *Transaction) AddSignature(publicKey crypto.PublicKey, signature []byte) {
	if !t.frozen {
		panic("AddSignature requires a frozen transaction")
	}
	if t.usedChunks != 1 || len(t.nodeAccountIds) != 1 {
		panic("AddSignature requires a single-node, single-chunk transaction")
	}

	pair := &services.SignaturePair{PubKeyPrefix: publicKey.BytesRaw()}
	if publicKey.IsEd25519() {
		pair.Signature = &services.SignaturePair_Ed25519{Ed25519: signature}
	} else {
		pair.Signature = &services.SignaturePair_ECDSASecp256K1{ECDSASecp256K1: signature}
	}
	t.sources = t.sources.withSignature(pair)
}

// Freeze fixes the transaction without a client; the node set and transaction
// id must have been set explicitly.
func (t *Transaction) Freeze() error {
	return t.FreezeWith(nil)
}

// FreezeWith fixes the node set, transaction id, and chunk count, builds
// every sub-transaction body, and applies the registered signers plus the
// client operator's signature. Freezing an already frozen transaction is a
// no-op.
func (t *Transaction) FreezeWith(c *client.Client) error {
	if t.frozen {
		return nil
	}

	if len(t.nodeAccountIds) == 0 {
		if c == nil {
			return sdkerrors.ErrStructural("Node account ids must be set to freeze without a client")
		}
		for _, node := range c.Network().SelectNodes() {
			t.nodeAccountIds = append(t.nodeAccountIds, node.AccountId)
		}
	}

	if t.transactionId == nil {
		if c == nil || c.Operator() == nil {
			return sdkerrors.ErrStructural("Transaction id must be set to freeze without an operator")
		}
		transactionId := types.TransactionIdGenerate(c.Operator().AccountId)
		t.transactionId = &transactionId
		t.generatedId = true
	}

	if c != nil {
		t.operator = c.Operator()
	}

	usedChunks, chunkSize, err := t.chunkCount(c)
	if err != nil {
		return err
	}
	t.usedChunks = usedChunks
	t.usedChunkSize = chunkSize

	if err := t.buildSources(); err != nil {
		return err
	}

	t.frozen = true
	return nil
}

// chunkCount sizes the payload against the effective chunk limits. A
// transaction always occupies at least one chunk, even with an empty payload.
func (t *Transaction) chunkCount(c *client.Client) (int, int, error) {
	payload := t.data.payload()
	if payload == nil {
		return 1, 0, nil
	}

	chunkSize := payload.chunkSize
	maxChunks := payload.maxChunks
	if chunkSize == 0 {
		chunkSize = defaultChunkSize
		if c != nil {
			chunkSize = c.ChunkSize()
		}
	}
	if maxChunks == 0 {
		maxChunks = defaultMaxChunks
		if c != nil {
			maxChunks = c.MaxChunks()
		}
	}

	chunks := (len(payload.data) + chunkSize - 1) / chunkSize
	if chunks == 0 {
		chunks = 1
	}
	if chunks > maxChunks {
		return 0, 0, sdkerrors.ErrStructural("Payload of %d bytes requires %d chunks, the maximum is %d", len(payload.data), chunks, maxChunks)
	}

	return chunks, chunkSize, nil
}

// buildSources materializes the chunk-major sub-transaction list and signs it
// with the operator and the registered signers. Chunks after the first derive
// their id by advancing the initial valid start one nanosecond per chunk.
func (t *Transaction) buildSources() error {
	initial := *t.transactionId

	signedTransactions := make([]*services.SignedTransaction, 0, t.usedChunks*len(t.nodeAccountIds))
	for chunk := 0; chunk < t.usedChunks; chunk++ {
		current := initial
		if chunk > 0 {
			current = types.TransactionIdWithValidStart(initial.AccountId, initial.ValidStart.AddNanos(uint64(chunk)))
		}

		for _, nodeAccountId := range t.nodeAccountIds {
			body := t.buildBody(ChunkInfo{
				Current:              chunk + 1,
				Total:                t.usedChunks,
				ChunkSize:            t.usedChunkSize,
				InitialTransactionId: initial,
				CurrentTransactionId: current,
				NodeAccountId:        nodeAccountId,
			})

			bodyBytes, err := proto.Marshal(body)
			if err != nil {
				return sdkerrors.WrapParse(err, "Failed to serialize transaction body")
			}

			signedTransactions = append(signedTransactions, &services.SignedTransaction{
				BodyBytes: bodyBytes,
				SigMap:    &services.SignatureMap{},
			})
		}
	}

	sources, err := NewTransactionSources(signedTransactions)
	if err != nil {
		return err
	}

	keys := make([]crypto.PrivateKey, 0, len(t.signers)+1)
	if t.operator != nil {
		keys = append(keys, t.operator.PrivateKey)
	}
	keys = append(keys, t.signers...)
	if len(keys) > 0 {
		sources = sources.SignWith(keys...)
	}

	t.sources = sources
	return nil
}

func (t *Transaction) buildBody(chunk ChunkInfo) *services.TransactionBody {
	maxFee := t.data.defaultMaxFee()
	if t.maxFee != nil {
		maxFee = *t.maxFee
	}

	body := &services.TransactionBody{
		TransactionID:            chunk.CurrentTransactionId.ToProtobuf(),
		NodeAccountID:            chunk.NodeAccountId.ToProtobuf(),
		TransactionFee:           uint64(maxFee.Tinybar()),
		TransactionValidDuration: &services.Duration{Seconds: int64(t.validDuration / time.Second)},
		Memo:                     t.memo,
	}
	t.data.applyData(body, chunk)
	return body
}

// regenerateTransactionId replaces an expired generated id and rebuilds and
// re-signs every sub-transaction. Not possible when the id was set explicitly
// or the sub-transactions were loaded from bytes.
func (t *Transaction) regenerateTransactionId(c *client.Client) bool {
	if !t.generatedId || t.externalSources || !c.RegenerateTransactionIdOnExpiry() {
		return false
	}

	transactionId := types.TransactionIdGenerate(t.transactionId.AccountId)
	t.transactionId = &transactionId
	return t.buildSources() == nil
}

// ToBytes serializes the frozen transaction, signatures included, as a
// transaction list in chunk-major order.
func (t *Transaction) ToBytes() ([]byte, error) {
	if err := t.requireFrozen(); err != nil {
		return nil, err
	}

	list := &sdk.TransactionList{TransactionList: t.sources.Transactions()}
	data, err := proto.Marshal(list)
	if err != nil {
		return nil, sdkerrors.WrapParse(err, "Failed to serialize transaction list")
	}
	return data, nil
}

// ExecuteAll freezes the transaction if needed and submits every chunk in
// order. Kinds that require network-side sequencing wait for each chunk's
// receipt before submitting the next.
func (t *Transaction) ExecuteAll(ctx context.Context, c *client.Client) ([]TransactionResponse, error) {
	if !t.frozen {
		if err := t.FreezeWith(c); err != nil {
			return nil, err
		}
	}

	// an operator configured after freezing still pays, so make sure its
	// signature is present
	if c.Operator() != nil {
		t.sources = t.sources.SignWith(c.Operator().PrivateKey)
	}

	responses := make([]TransactionResponse, 0, t.usedChunks)
	for chunk := 0; chunk < t.usedChunks; chunk++ {
		raw, err := execution.Execute(ctx, c, &chunkSubmit{transaction: t, chunk: chunk})
		if err != nil {
			return responses, err
		}

		response := raw.(TransactionResponse)
		responses = append(responses, response)

		if t.data.waitForReceipts() && chunk < t.usedChunks-1 {
			if err := awaitSuccessfulReceipt(ctx, c, response); err != nil {
				return responses, err
			}
		}
	}

	return responses, nil
}

// Execute submits the transaction and returns the first chunk's response
func (t *Transaction) Execute(ctx context.Context, c *client.Client) (TransactionResponse, error) {
	responses, err := t.ExecuteAll(ctx, c)
	if err != nil {
		return TransactionResponse{}, err
	}
	return responses[0], nil
}
