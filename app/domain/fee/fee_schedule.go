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

// Package fee holds the passive codecs for the network's fee component
// tables. The types carry no behavior beyond protobuf round-tripping.
package fee

import (
	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"google.golang.org/protobuf/proto"
)

// FeeComponents prices one dimension of a request
type FeeComponents struct {
	Min                    int64
	Max                    int64
	Constant               int64
	BandwidthByte          int64
	Verification           int64
	RamByteHour            int64
	StorageByteHour        int64
	ContractTransactionGas int64
	TransferVolumeHbar     int64
	ResponseMemoryByte     int64
	ResponseDiskByte       int64
}

func FeeComponentsFromProtobuf(pb *services.FeeComponents) FeeComponents {
	if pb == nil {
		return FeeComponents{}
	}

	return FeeComponents{
		Min:                    pb.Min,
		Max:                    pb.Max,
		Constant:               pb.Constant,
		BandwidthByte:          pb.Bpt,
		Verification:           pb.Vpt,
		RamByteHour:            pb.Rbh,
		StorageByteHour:        pb.Sbh,
		ContractTransactionGas: pb.Gas,
		TransferVolumeHbar:     pb.Tv,
		ResponseMemoryByte:     pb.Bpr,
		ResponseDiskByte:       pb.Sbpr,
	}
}

func (f FeeComponents) ToProtobuf() *services.FeeComponents {
	return &services.FeeComponents{
		Min:      f.Min,
		Max:      f.Max,
		Constant: f.Constant,
		Bpt:      f.BandwidthByte,
		Vpt:      f.Verification,
		Rbh:      f.RamByteHour,
		Sbh:      f.StorageByteHour,
		Gas:      f.ContractTransactionGas,
		Tv:       f.TransferVolumeHbar,
		Bpr:      f.ResponseMemoryByte,
		Sbpr:     f.ResponseDiskByte,
	}
}

// FeeData prices a request across the node, network, and service dimensions
type FeeData struct {
	NodeData    FeeComponents
	NetworkData FeeComponents
	ServiceData FeeComponents
	SubType     services.SubType
}

func FeeDataFromProtobuf(pb *services.FeeData) FeeData {
	if pb == nil {
		return FeeData{}
	}

	return FeeData{
		NodeData:    FeeComponentsFromProtobuf(pb.Nodedata),
		NetworkData: FeeComponentsFromProtobuf(pb.Networkdata),
		ServiceData: FeeComponentsFromProtobuf(pb.Servicedata),
		SubType:     pb.SubType,
	}
}

func (f FeeData) ToProtobuf() *services.FeeData {
	return &services.FeeData{
		Nodedata:    f.NodeData.ToProtobuf(),
		Networkdata: f.NetworkData.ToProtobuf(),
		Servicedata: f.ServiceData.ToProtobuf(),
		SubType:     f.SubType,
	}
}

// TransactionFeeSchedule lists the fees for one request type
type TransactionFeeSchedule struct {
	RequestType services.HederaFunctionality
	Fees        []FeeData
}

func TransactionFeeScheduleFromProtobuf(pb *services.TransactionFeeSchedule) TransactionFeeSchedule {
	if pb == nil {
		return TransactionFeeSchedule{}
	}

	fees := make([]FeeData, 0, len(pb.Fees))
	for _, fee := range pb.Fees {
		fees = append(fees, FeeDataFromProtobuf(fee))
	}

	return TransactionFeeSchedule{RequestType: pb.HederaFunctionality, Fees: fees}
}

func (t TransactionFeeSchedule) ToProtobuf() *services.TransactionFeeSchedule {
	fees := make([]*services.FeeData, 0, len(t.Fees))
	for _, fee := range t.Fees {
		fees = append(fees, fee.ToProtobuf())
	}

	return &services.TransactionFeeSchedule{HederaFunctionality: t.RequestType, Fees: fees}
}

// FeeSchedule is the full fee table with its expiry
type FeeSchedule struct {
	TransactionFeeSchedules []TransactionFeeSchedule
	ExpirationTime          int64
}

func FeeScheduleFromProtobuf(pb *services.FeeSchedule) FeeSchedule {
	if pb == nil {
		return FeeSchedule{}
	}

	schedules := make([]TransactionFeeSchedule, 0, len(pb.TransactionFeeSchedule))
	for _, schedule := range pb.TransactionFeeSchedule {
		schedules = append(schedules, TransactionFeeScheduleFromProtobuf(schedule))
	}

	result := FeeSchedule{TransactionFeeSchedules: schedules}
	if pb.ExpiryTime != nil {
		result.ExpirationTime = pb.ExpiryTime.Seconds
	}
	return result
}

func (f FeeSchedule) ToProtobuf() *services.FeeSchedule {
	schedules := make([]*services.TransactionFeeSchedule, 0, len(f.TransactionFeeSchedules))
	for _, schedule := range f.TransactionFeeSchedules {
		schedules = append(schedules, schedule.ToProtobuf())
	}

	return &services.FeeSchedule{
		TransactionFeeSchedule: schedules,
		ExpiryTime:             &services.TimestampSeconds{Seconds: f.ExpirationTime},
	}
}

// FeeSchedules pairs the schedule in force with its successor
type FeeSchedules struct {
	Current FeeSchedule
	Next    FeeSchedule
}

func FeeSchedulesFromProtobuf(pb *services.CurrentAndNextFeeSchedule) FeeSchedules {
	if pb == nil {
		return FeeSchedules{}
	}

	return FeeSchedules{
		Current: FeeScheduleFromProtobuf(pb.CurrentFeeSchedule),
		Next:    FeeScheduleFromProtobuf(pb.NextFeeSchedule),
	}
}

func (f FeeSchedules) ToProtobuf() *services.CurrentAndNextFeeSchedule {
	return &services.CurrentAndNextFeeSchedule{
		CurrentFeeSchedule: f.Current.ToProtobuf(),
		NextFeeSchedule:    f.Next.ToProtobuf(),
	}
}

func (f FeeSchedules) ToBytes() []byte {
	data, _ := proto.Marshal(f.ToProtobuf())
	return data
}

func FeeSchedulesFromBytes(data []byte) (FeeSchedules, error) {
	var pb services.CurrentAndNextFeeSchedule
	if err := proto.Unmarshal(data, &pb); err != nil {
		return FeeSchedules{}, sdkerrors.WrapParse(err, "Invalid fee schedules bytes")
	}
	return FeeSchedulesFromProtobuf(&pb), nil
}
