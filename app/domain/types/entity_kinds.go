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
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"google.golang.org/protobuf/proto"
)

// The entity id variants all share the EntityId shape and string grammar;
// only the protobuf message differs.

type FileId struct{ EntityId }

func FileIdFromString(value string) (FileId, error) {
	id, err := EntityIdFromString(value)
	return FileId{id}, err
}

func (f FileId) ToProtobuf() *services.FileID {
	return &services.FileID{ShardNum: int64(f.Shard), RealmNum: int64(f.Realm), FileNum: int64(f.Num)}
}

func FileIdFromProtobuf(pb *services.FileID) FileId {
	if pb == nil {
		return FileId{}
	}
	return FileId{EntityId{Shard: uint64(pb.ShardNum), Realm: uint64(pb.RealmNum), Num: uint64(pb.FileNum)}}
}

func (f FileId) ToBytes() []byte {
	data, _ := proto.Marshal(f.ToProtobuf())
	return data
}

func FileIdFromBytes(data []byte) (FileId, error) {
	var pb services.FileID
	if err := proto.Unmarshal(data, &pb); err != nil {
		return FileId{}, sdkerrors.WrapParse(err, "Invalid file id bytes")
	}
	return FileIdFromProtobuf(&pb), nil
}

type TokenId struct{ EntityId }

func TokenIdFromString(value string) (TokenId, error) {
	id, err := EntityIdFromString(value)
	return TokenId{id}, err
}

func (t TokenId) ToProtobuf() *services.TokenID {
	return &services.TokenID{ShardNum: int64(t.Shard), RealmNum: int64(t.Realm), TokenNum: int64(t.Num)}
}

func TokenIdFromProtobuf(pb *services.TokenID) TokenId {
	if pb == nil {
		return TokenId{}
	}
	return TokenId{EntityId{Shard: uint64(pb.ShardNum), Realm: uint64(pb.RealmNum), Num: uint64(pb.TokenNum)}}
}

func (t TokenId) ToBytes() []byte {
	data, _ := proto.Marshal(t.ToProtobuf())
	return data
}

func TokenIdFromBytes(data []byte) (TokenId, error) {
	var pb services.TokenID
	if err := proto.Unmarshal(data, &pb); err != nil {
		return TokenId{}, sdkerrors.WrapParse(err, "Invalid token id bytes")
	}
	return TokenIdFromProtobuf(&pb), nil
}

type TopicId struct{ EntityId }

func TopicIdFromString(value string) (TopicId, error) {
	id, err := EntityIdFromString(value)
	return TopicId{id}, err
}

func (t TopicId) ToProtobuf() *services.TopicID {
	return &services.TopicID{ShardNum: int64(t.Shard), RealmNum: int64(t.Realm), TopicNum: int64(t.Num)}
}

func TopicIdFromProtobuf(pb *services.TopicID) TopicId {
	if pb == nil {
		return TopicId{}
	}
	return TopicId{EntityId{Shard: uint64(pb.ShardNum), Realm: uint64(pb.RealmNum), Num: uint64(pb.TopicNum)}}
}

func (t TopicId) ToBytes() []byte {
	data, _ := proto.Marshal(t.ToProtobuf())
	return data
}

func TopicIdFromBytes(data []byte) (TopicId, error) {
	var pb services.TopicID
	if err := proto.Unmarshal(data, &pb); err != nil {
		return TopicId{}, sdkerrors.WrapParse(err, "Invalid topic id bytes")
	}
	return TopicIdFromProtobuf(&pb), nil
}

type ContractId struct{ EntityId }

func ContractIdFromString(value string) (ContractId, error) {
	id, err := EntityIdFromString(value)
	return ContractId{id}, err
}

func (c ContractId) ToProtobuf() *services.ContractID {
	return &services.ContractID{
		ShardNum: int64(c.Shard),
		RealmNum: int64(c.Realm),
		Contract: &services.ContractID_ContractNum{ContractNum: int64(c.Num)},
	}
}

func ContractIdFromProtobuf(pb *services.ContractID) ContractId {
	if pb == nil {
		return ContractId{}
	}

	id := ContractId{EntityId{Shard: uint64(pb.ShardNum), Realm: uint64(pb.RealmNum)}}
	if num, ok := pb.Contract.(*services.ContractID_ContractNum); ok {
		id.Num = uint64(num.ContractNum)
	}
	return id
}

func (c ContractId) ToBytes() []byte {
	data, _ := proto.Marshal(c.ToProtobuf())
	return data
}

func ContractIdFromBytes(data []byte) (ContractId, error) {
	var pb services.ContractID
	if err := proto.Unmarshal(data, &pb); err != nil {
		return ContractId{}, sdkerrors.WrapParse(err, "Invalid contract id bytes")
	}
	return ContractIdFromProtobuf(&pb), nil
}

type ScheduleId struct{ EntityId }

func ScheduleIdFromString(value string) (ScheduleId, error) {
	id, err := EntityIdFromString(value)
	return ScheduleId{id}, err
}

func (s ScheduleId) ToProtobuf() *services.ScheduleID {
	return &services.ScheduleID{ShardNum: int64(s.Shard), RealmNum: int64(s.Realm), ScheduleNum: int64(s.Num)}
}

func ScheduleIdFromProtobuf(pb *services.ScheduleID) ScheduleId {
	if pb == nil {
		return ScheduleId{}
	}
	return ScheduleId{EntityId{Shard: uint64(pb.ShardNum), Realm: uint64(pb.RealmNum), Num: uint64(pb.ScheduleNum)}}
}

func (s ScheduleId) ToBytes() []byte {
	data, _ := proto.Marshal(s.ToProtobuf())
	return data
}

func ScheduleIdFromBytes(data []byte) (ScheduleId, error) {
	var pb services.ScheduleID
	if err := proto.Unmarshal(data, &pb); err != nil {
		return ScheduleId{}, sdkerrors.WrapParse(err, "Invalid schedule id bytes")
	}
	return ScheduleIdFromProtobuf(&pb), nil
}
