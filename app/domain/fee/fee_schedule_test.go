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

package fee

import (
	"testing"

	sdkerrors "github.com/hashgraph/hedera-client-go/app/errors"
	"github.com/hashgraph/hedera-protobufs-go/services"
	"github.com/stretchr/testify/assert"
)

func testFeeSchedules() FeeSchedules {
	components := FeeComponents{
		Min:                1,
		Max:                1000000,
		Constant:           11461413665,
		BandwidthByte:      508982,
		Verification:       1272455960,
		RamByteHour:        339,
		StorageByteHour:    25,
		TransferVolumeHbar: 508982,
		ResponseMemoryByte: 508982,
		ResponseDiskByte:   12725,
	}

	transfer := TransactionFeeSchedule{
		RequestType: services.HederaFunctionality_CryptoTransfer,
		Fees: []FeeData{
			{
				NodeData:    components,
				NetworkData: components,
				ServiceData: components,
				SubType:     services.SubType_DEFAULT,
			},
			{
				NodeData: components,
				SubType:  services.SubType_TOKEN_FUNGIBLE_COMMON,
			},
		},
	}
	submitMessage := TransactionFeeSchedule{
		RequestType: services.HederaFunctionality_ConsensusSubmitMessage,
		Fees:        []FeeData{{ServiceData: components}},
	}

	return FeeSchedules{
		Current: FeeSchedule{
			TransactionFeeSchedules: []TransactionFeeSchedule{transfer, submitMessage},
			ExpirationTime:          1633392000,
		},
		Next: FeeSchedule{
			TransactionFeeSchedules: []TransactionFeeSchedule{transfer},
			ExpirationTime:          1633395600,
		},
	}
}

func TestFeeSchedulesBytesRoundTrip(t *testing.T) {
	schedules := testFeeSchedules()

	parsed, err := FeeSchedulesFromBytes(schedules.ToBytes())
	assert.NoError(t, err)
	assert.Equal(t, schedules, parsed)

	assert.Equal(t, 1633392000, int(parsed.Current.ExpirationTime))
	assert.Len(t, parsed.Current.TransactionFeeSchedules, 2)
	assert.Equal(t, services.HederaFunctionality_CryptoTransfer, parsed.Current.TransactionFeeSchedules[0].RequestType)
	assert.Equal(t, services.SubType_TOKEN_FUNGIBLE_COMMON, parsed.Current.TransactionFeeSchedules[0].Fees[1].SubType)
	assert.Equal(t, int64(11461413665), parsed.Next.TransactionFeeSchedules[0].Fees[0].NodeData.Constant)
}

func TestFeeSchedulesFromBytesInvalid(t *testing.T) {
	_, err := FeeSchedulesFromBytes([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
	assert.True(t, sdkerrors.IsParse(err))
}

func TestFeeSchedulesFromProtobufNil(t *testing.T) {
	assert.Equal(t, FeeSchedules{}, FeeSchedulesFromProtobuf(nil))
	assert.Equal(t, FeeSchedule{}, FeeScheduleFromProtobuf(nil))
	assert.Equal(t, FeeData{}, FeeDataFromProtobuf(nil))
}
