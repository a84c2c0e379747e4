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

package types

import (
	"fmt"
	"time"

	"github.com/hashgraph/hedera-protobufs-go/services"
)

const nanosPerSecond = 1_000_000_000

// Timestamp is a wire timestamp, normalized so Nanos is always below one
// second.
type Timestamp struct {
	Seconds uint64
	Nanos   uint32
}

// NewTimestamp folds nanosecond overflow into seconds
func NewTimestamp(seconds uint64, nanos uint64) Timestamp {
	return Timestamp{
		Seconds: seconds + nanos/nanosPerSecond,
		Nanos:   uint32(nanos % nanosPerSecond),
	}
}

func TimestampFromTime(t time.Time) Timestamp {
	t = t.UTC()
	return NewTimestamp(uint64(t.Unix()), uint64(t.Nanosecond()))
}

func (t Timestamp) ToTime() time.Time {
	return time.Unix(int64(t.Seconds), int64(t.Nanos)).UTC()
}

// AddNanos returns a timestamp advanced by the given nanoseconds
func (t Timestamp) AddNanos(nanos uint64) Timestamp {
	return NewTimestamp(t.Seconds, uint64(t.Nanos)+nanos)
}

func (t Timestamp) ToProtobuf() *services.Timestamp {
	return &services.Timestamp{Seconds: int64(t.Seconds), Nanos: int32(t.Nanos)}
}

func TimestampFromProtobuf(pb *services.Timestamp) Timestamp {
	if pb == nil {
		return Timestamp{}
	}
	return NewTimestamp(uint64(pb.Seconds), uint64(pb.Nanos))
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%d", t.Seconds, t.Nanos)
}

// Before reports whether t precedes other
func (t Timestamp) Before(other Timestamp) bool {
	if t.Seconds != other.Seconds {
		return t.Seconds < other.Seconds
	}
	return t.Nanos < other.Nanos
}
