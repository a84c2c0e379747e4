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

package errors

import (
	"testing"

	"github.com/hashgraph/hedera-protobufs-go/services"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
	}{
		{name: "Parse", err: ErrParse("bad input %q", "x"), predicate: IsParse},
		{name: "Key", err: ErrKey("unsupported algorithm"), predicate: IsKey},
		{name: "Transient", err: ErrTransient("node busy"), predicate: IsTransient},
		{name: "Structural", err: ErrStructural("uneven chunks"), predicate: IsStructural},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.predicate(tt.err))
			assert.False(t, tt.predicate(errors.New("unrelated")))

			// predicates see through wrapping
			assert.True(t, tt.predicate(errors.Wrap(tt.err, "context")))
		})
	}
}

func TestKindsAreDisjoint(t *testing.T) {
	err := ErrParse("bad input")
	assert.True(t, IsParse(err))
	assert.False(t, IsKey(err))
	assert.False(t, IsStructural(err))
	assert.False(t, IsTransient(err))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, WrapParse(nil, "context"))
	assert.Nil(t, WrapKey(nil, "context"))
	assert.Nil(t, WrapTransient(nil, "context"))
}

func TestChecksumMismatchError(t *testing.T) {
	err := ErrChecksumMismatch("0.0.123", "vfmkw", "abcde")
	assert.True(t, IsChecksumMismatch(err))
	assert.False(t, IsParse(err))
	assert.Contains(t, err.Error(), "vfmkw")
	assert.Contains(t, err.Error(), "abcde")
}

func TestPrecheckError(t *testing.T) {
	err := ErrPrecheck(services.ResponseCodeEnum_INSUFFICIENT_PAYER_BALANCE, "0.0.1001@1641088801.0")
	assert.True(t, IsPrecheck(err))
	assert.Contains(t, err.Error(), "INSUFFICIENT_PAYER_BALANCE")
	assert.Contains(t, err.Error(), "0.0.1001@1641088801.0")

	status, ok := PrecheckStatus(err)
	assert.True(t, ok)
	assert.Equal(t, services.ResponseCodeEnum_INSUFFICIENT_PAYER_BALANCE, status)

	_, ok = PrecheckStatus(errors.New("unrelated"))
	assert.False(t, ok)
}

func TestTimedOutError(t *testing.T) {
	cause := ErrTransient("node busy")
	err := ErrTimedOut(cause)
	assert.True(t, IsTimedOut(err))
	assert.True(t, IsTransient(err))
	assert.Contains(t, err.Error(), "node busy")
}
