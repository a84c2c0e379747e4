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

package execution

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashgraph/hedera-client-go/app/client"
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-protobufs-go/services"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorClass is the verdict for one attempt
type errorClass int

const (
	classSuccess errorClass = iota
	// classPermanent surfaces immediately to the caller
	classPermanent
	// classTransient backs off and retries, possibly on another node
	classTransient
	// classNextNode advances to the next node with no delay
	classNextNode
	// classExpired regenerates the transaction id before retrying
	classExpired
)

// Execute runs the submission state machine: pick a node, build and send the
// request, classify the outcome, and either return, rotate, back off, or
// regenerate. Exhausting the attempt or backoff budget yields a timed-out
// error wrapping the last attempt's failure.
func Execute(ctx context.Context, c *client.Client, e Executable) (interface{}, error) {
	nodes, err := resolveNodes(c, e)
	if err != nil {
		return nil, err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.MinBackoff()
	policy.MaxInterval = c.MaxBackoff()
	policy.MaxElapsedTime = c.RequestTimeout()
	policy.Reset()

	var lastErr error
	for attempt := 0; attempt < c.MaxAttempts(); attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, sdkerrors.WrapTransient(err, "Context cancelled")
		}

		node := nodes[attempt%len(nodes)]
		result, class, err := executeSingle(ctx, c, e, node)
		attemptsTotal.WithLabelValues(classLabel(class)).Inc()

		switch class {
		case classSuccess:
			return result, nil
		case classPermanent:
			return nil, err
		case classNextNode:
			log.Infof("Node %s is unable to serve the request, trying the next node", node.AccountId)
			lastErr = err
			continue
		case classExpired:
			lastErr = err
			if !e.RegenerateTransactionId(c) {
				return nil, err
			}
			log.Info("Transaction expired, regenerated the transaction id")
			continue
		case classTransient:
			lastErr = err
			delay := policy.NextBackOff()
			if delay == backoff.Stop {
				return nil, sdkerrors.ErrTimedOut(lastErr)
			}

			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, sdkerrors.WrapTransient(ctx.Err(), "Context cancelled during backoff")
			case <-timer.C:
			}
		}
	}

	return nil, sdkerrors.ErrTimedOut(lastErr)
}

// resolveNodes maps the operation's explicit node set to registered nodes, or
// samples the network when the operation is unbound.
func resolveNodes(c *client.Client, e Executable) ([]*client.Node, error) {
	explicit := e.Nodes()
	if len(explicit) == 0 {
		return c.Network().SelectNodes(), nil
	}

	nodes := make([]*client.Node, 0, len(explicit))
	for _, accountId := range explicit {
		node, ok := c.Network().NodeForAccountId(accountId)
		if !ok {
			return nil, sdkerrors.ErrParse("Node account id %s is not part of the configured network", accountId)
		}
		nodes = append(nodes, node)
	}

	// prefer healthy nodes but keep the full set as fallback
	healthy := make([]*client.Node, 0, len(nodes))
	for _, node := range nodes {
		if c.Network().IsHealthy(node) {
			healthy = append(healthy, node)
		}
	}
	if len(healthy) != 0 {
		return healthy, nil
	}

	return nodes, nil
}

func executeSingle(ctx context.Context, c *client.Client, e Executable, node *client.Node) (interface{}, errorClass, error) {
	request, err := e.MakeRequest(node)
	if err != nil {
		return nil, classPermanent, err
	}

	channel, err := node.Channel()
	if err != nil {
		c.Network().MarkUnhealthy(node.AccountId)
		nodeUnhealthyTotal.Inc()
		return nil, classTransient, err
	}

	response, err := e.Submit(ctx, channel, request)
	if err != nil {
		return nil, classifyGrpcError(c, node, err), err
	}

	precheck := e.ResponseStatus(request, response)
	switch precheck {
	case services.ResponseCodeEnum_OK:
		if e.ShouldRetry(precheck, response) {
			return nil, classTransient, sdkerrors.ErrTransient("Response for %s is not yet available", node.AccountId)
		}

		result, err := e.MakeResponse(request, response, node)
		if err != nil {
			return nil, classPermanent, err
		}
		return result, classSuccess, nil
	case services.ResponseCodeEnum_BUSY, services.ResponseCodeEnum_PLATFORM_NOT_ACTIVE:
		return nil, classNextNode, precheckError(e, precheck)
	case services.ResponseCodeEnum_TRANSACTION_EXPIRED:
		return nil, classExpired, precheckError(e, precheck)
	case services.ResponseCodeEnum_PLATFORM_TRANSACTION_NOT_CREATED:
		return nil, classTransient, precheckError(e, precheck)
	default:
		if e.ShouldRetry(precheck, response) {
			return nil, classTransient, precheckError(e, precheck)
		}
		return nil, classPermanent, precheckError(e, precheck)
	}
}

// classifyGrpcError maps channel-level failures. An unavailable or exhausted
// node is taken out of rotation; anything else is surfaced as-is.
func classifyGrpcError(c *client.Client, node *client.Node, err error) errorClass {
	grpcStatus, ok := status.FromError(err)
	if !ok {
		return classPermanent
	}

	switch grpcStatus.Code() {
	case codes.Unavailable, codes.ResourceExhausted:
		c.Network().MarkUnhealthy(node.AccountId)
		nodeUnhealthyTotal.Inc()
		return classTransient
	case codes.DeadlineExceeded, codes.Canceled:
		return classTransient
	default:
		return classPermanent
	}
}

func precheckError(e Executable, precheck services.ResponseCodeEnum) error {
	transactionId := ""
	if id := e.TransactionId(); id != nil {
		transactionId = id.String()
	}
	return sdkerrors.ErrPrecheck(precheck, transactionId)
}

func classLabel(class errorClass) string {
	switch class {
	case classSuccess:
		return "success"
	case classPermanent:
		return "permanent"
	case classTransient:
		return "transient"
	case classNextNode:
		return "next_node"
	case classExpired:
		return "expired"
	default:
		return "unknown"
	}
}
