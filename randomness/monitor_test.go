// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
	"github.com/randa-mu/dcipher-sub000/contracts/bindings/bindingstest"
	"github.com/randa-mu/dcipher-sub000/randomness/randomnessmock"
	"github.com/randa-mu/dcipher-sub000/utils/logging"
)

var errTest = errors.New("non-nil error")

func testMonitorConfig() MonitorConfig {
	config := DefaultMonitorConfig(bindingstest.ContractAddress)
	config.PollInterval = 10 * time.Millisecond
	return config
}

func windowQuery(from, to uint64) ethereum.FilterQuery {
	return ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{bindingstest.ContractAddress},
	}
}

func atBlock(log types.Log, block uint64) types.Log {
	log.BlockNumber = block
	return log
}

func sampleCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestMonitorPoll(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	requester := common.HexToAddress("0x0000000000000000000000000000000000000abc")
	requested1 := atBlock(bindingstest.EventLog(t, EventRandomnessRequested, big.NewInt(1), big.NewInt(1), requester, big.NewInt(100)), 2)
	requested2 := atBlock(bindingstest.EventLog(t, EventRandomnessRequested, big.NewInt(2), big.NewInt(2), requester, big.NewInt(101)), 3)
	fulfilled1 := atBlock(bindingstest.EventLog(t, EventRandomnessCallbackSuccess, big.NewInt(1), common.Hash{0x01}, []byte{0x02}), 6)
	configSet := atBlock(bindingstest.EventLog(t, EventConfigSet,
		uint32(1), uint32(2), uint32(3), uint32(4), uint32(5), uint8(6), uint16(7),
	), 7)

	reader := randomnessmock.NewChainReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().BlockNumber(gomock.Any()).Return(uint64(10), nil),
		reader.EXPECT().FilterLogs(gomock.Any(), windowQuery(1, 4)).Return([]types.Log{requested1, requested2}, nil),
		reader.EXPECT().FilterLogs(gomock.Any(), windowQuery(5, 8)).Return([]types.Log{fulfilled1, configSet}, nil),
	)

	config := testMonitorConfig()
	config.StartBlock = 1
	config.Window = 4
	config.Confirmations = 2

	var names []string
	handler := func(_ context.Context, ev *Event) error {
		names = append(names, ev.Name)
		return nil
	}
	monitor, err := NewMonitor(config, reader, logging.NoLog{}, prometheus.NewRegistry(), handler)
	require.NoError(err)

	require.NoError(monitor.Poll(t.Context()))
	require.Equal([]string{
		EventRandomnessRequested,
		EventRandomnessRequested,
		EventRandomnessCallbackSuccess,
		EventConfigSet,
	}, names)
	require.Equal([]*big.Int{big.NewInt(2)}, monitor.InFlight())
	require.Equal(uint64(9), monitor.NextBlock())

	m := monitor.metrics
	require.InDelta(2, testutil.ToFloat64(m.requests), 0)
	require.InDelta(1, testutil.ToFloat64(m.fulfillments.WithLabelValues(resultSuccess)), 0)
	require.InDelta(0, testutil.ToFloat64(m.fulfillments.WithLabelValues(resultFailed)), 0)
	require.InDelta(1, testutil.ToFloat64(m.inFlight), 0)
	require.InDelta(8, testutil.ToFloat64(m.processedBlock), 0)
	require.InDelta(1, testutil.ToFloat64(m.events.WithLabelValues(EventConfigSet)), 0)
	require.Equal(uint64(1), sampleCount(t, m.fulfillmentBlocks))
}

func TestMonitorStartsAtSafeHead(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	reader := randomnessmock.NewChainReader(ctrl)
	reader.EXPECT().BlockNumber(gomock.Any()).Return(uint64(20), nil)
	reader.EXPECT().FilterLogs(gomock.Any(), windowQuery(17, 17)).Return(nil, nil)

	config := testMonitorConfig()
	config.Confirmations = 3
	monitor, err := NewMonitor(config, reader, logging.NoLog{}, prometheus.NewRegistry(), nil)
	require.NoError(err)

	require.NoError(monitor.Poll(t.Context()))
	require.Equal(uint64(18), monitor.NextBlock())
}

func TestMonitorHeadBelowConfirmations(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	reader := randomnessmock.NewChainReader(ctrl)
	reader.EXPECT().BlockNumber(gomock.Any()).Return(uint64(2), nil)

	config := testMonitorConfig()
	config.Confirmations = 5
	monitor, err := NewMonitor(config, reader, logging.NoLog{}, prometheus.NewRegistry(), nil)
	require.NoError(err)
	require.NoError(monitor.Poll(t.Context()))
}

func TestMonitorRetriesFailedWindow(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	reader := randomnessmock.NewChainReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().BlockNumber(gomock.Any()).Return(uint64(5), nil),
		reader.EXPECT().FilterLogs(gomock.Any(), windowQuery(1, 5)).Return(nil, errTest),
		reader.EXPECT().BlockNumber(gomock.Any()).Return(uint64(5), nil),
		reader.EXPECT().FilterLogs(gomock.Any(), windowQuery(1, 5)).Return(nil, nil),
	)

	config := testMonitorConfig()
	config.StartBlock = 1
	monitor, err := NewMonitor(config, reader, logging.NoLog{}, prometheus.NewRegistry(), nil)
	require.NoError(err)

	require.ErrorIs(monitor.Poll(t.Context()), errTest)
	require.Equal(uint64(1), monitor.NextBlock())
	require.NoError(monitor.Poll(t.Context()))
	require.Equal(uint64(6), monitor.NextBlock())
}

func TestMonitorSkipsUndecodableLogs(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	removed := atBlock(bindingstest.EventLog(t, EventRandomnessCallbackFailed, big.NewInt(1)), 1)
	removed.Removed = true
	unknown := types.Log{
		Address:     bindingstest.ContractAddress,
		Topics:      []common.Hash{{0x01}},
		BlockNumber: 1,
	}
	failed := atBlock(bindingstest.EventLog(t, EventRandomnessCallbackFailed, big.NewInt(2)), 1)

	reader := randomnessmock.NewChainReader(ctrl)
	reader.EXPECT().BlockNumber(gomock.Any()).Return(uint64(1), nil)
	reader.EXPECT().FilterLogs(gomock.Any(), windowQuery(1, 1)).Return([]types.Log{removed, unknown, failed}, nil)

	var count int
	monitor, err := NewMonitor(testMonitorConfig(), reader, logging.NoLog{}, prometheus.NewRegistry(), func(context.Context, *Event) error {
		count++
		return nil
	})
	require.NoError(err)

	require.NoError(monitor.Poll(t.Context()))
	require.Equal(1, count)
	require.InDelta(1, testutil.ToFloat64(monitor.metrics.fulfillments.WithLabelValues(resultFailed)), 0)
	// Requested before the monitor started so no latency is recorded.
	require.Zero(sampleCount(t, monitor.metrics.fulfillmentBlocks))
}

func TestMonitorRunStopsOnHandlerError(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	log := atBlock(bindingstest.EventLog(t, EventEnabled), 1)
	reader := randomnessmock.NewChainReader(ctrl)
	reader.EXPECT().BlockNumber(gomock.Any()).Return(uint64(1), nil)
	reader.EXPECT().FilterLogs(gomock.Any(), windowQuery(1, 1)).Return([]types.Log{log}, nil)

	monitor, err := NewMonitor(testMonitorConfig(), reader, logging.NoLog{}, prometheus.NewRegistry(), func(context.Context, *Event) error {
		return errTest
	})
	require.NoError(err)

	err = monitor.Run(t.Context())
	require.ErrorIs(err, errTest)
	require.ErrorContains(err, EventEnabled)
	// The failed window is scanned again on restart.
	require.Equal(uint64(1), monitor.NextBlock())
}

func TestMonitorResumesAtFailedEvent(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	requester := common.HexToAddress("0x0000000000000000000000000000000000000abc")
	requested1 := atBlock(bindingstest.EventLog(t, EventRandomnessRequested, big.NewInt(1), big.NewInt(1), requester, big.NewInt(100)), 1)
	requested2 := atBlock(bindingstest.EventLog(t, EventRandomnessRequested, big.NewInt(2), big.NewInt(2), requester, big.NewInt(101)), 2)

	reader := randomnessmock.NewChainReader(ctrl)
	reader.EXPECT().BlockNumber(gomock.Any()).Return(uint64(2), nil).Times(2)
	reader.EXPECT().FilterLogs(gomock.Any(), windowQuery(1, 2)).Return([]types.Log{requested1, requested2}, nil).Times(2)

	config := testMonitorConfig()
	config.StartBlock = 1
	var (
		handled []string
		fail    = true
	)
	handler := func(_ context.Context, ev *Event) error {
		id := ev.Payload.(*bindings.RandomnessSenderRandomnessRequested).RequestID
		handled = append(handled, id.String())
		if id.Cmp(big.NewInt(2)) == 0 && fail {
			fail = false
			return errTest
		}
		return nil
	}
	monitor, err := NewMonitor(config, reader, logging.NoLog{}, prometheus.NewRegistry(), handler)
	require.NoError(err)

	require.ErrorIs(monitor.Poll(t.Context()), errTest)
	require.Equal(uint64(1), monitor.NextBlock())
	require.InDelta(1, testutil.ToFloat64(monitor.metrics.requests), 0)
	require.Equal([]*big.Int{big.NewInt(1)}, monitor.InFlight())

	require.NoError(monitor.Poll(t.Context()))
	require.Equal([]string{"1", "2", "2"}, handled)
	require.Equal(uint64(3), monitor.NextBlock())
	require.InDelta(2, testutil.ToFloat64(monitor.metrics.requests), 0)
	require.InDelta(2, testutil.ToFloat64(monitor.metrics.events.WithLabelValues(EventRandomnessRequested)), 0)
	require.Len(monitor.InFlight(), 2)
}

func TestMonitorRunStopsOnCancel(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	ctx, cancel := context.WithCancel(t.Context())
	reader := randomnessmock.NewChainReader(ctrl)
	reader.EXPECT().BlockNumber(gomock.Any()).Return(uint64(0), errTest).Times(1)
	reader.EXPECT().BlockNumber(gomock.Any()).DoAndReturn(func(context.Context) (uint64, error) {
		cancel()
		return 0, context.Canceled
	}).MinTimes(1)

	monitor, err := NewMonitor(testMonitorConfig(), reader, logging.NoLog{}, prometheus.NewRegistry(), nil)
	require.NoError(err)
	require.NoError(monitor.Run(ctx))
}

func TestMonitorWithBackend(t *testing.T) {
	require := require.New(t)

	backend := bindingstest.NewContractBackend()
	requester := common.HexToAddress("0x0000000000000000000000000000000000000abc")
	backend.Emit(bindingstest.EventLog(t, EventRandomnessRequested, big.NewInt(5), big.NewInt(1), requester, big.NewInt(100)))
	backend.Commit(3)
	backend.Emit(bindingstest.EventLog(t, EventRandomnessCallbackFailed, big.NewInt(5)))

	config := testMonitorConfig()
	config.StartBlock = 1
	config.Window = 2
	monitor, err := NewMonitor(config, backend, logging.NoLog{}, prometheus.NewRegistry(), nil)
	require.NoError(err)

	require.NoError(monitor.Poll(t.Context()))
	require.Empty(monitor.InFlight())
	require.Equal(backend.Head()+1, monitor.NextBlock())
	require.Equal(uint64(1), sampleCount(t, monitor.metrics.fulfillmentBlocks))
}

func TestMonitorConfigVerify(t *testing.T) {
	tests := map[string]struct {
		modify      func(*MonitorConfig)
		expectedErr error
	}{
		"valid": {
			modify: func(*MonitorConfig) {},
		},
		"zero address": {
			modify:      func(c *MonitorConfig) { c.Address = common.Address{} },
			expectedErr: errZeroAddress,
		},
		"zero window": {
			modify:      func(c *MonitorConfig) { c.Window = 0 },
			expectedErr: errZeroWindow,
		},
		"zero poll interval": {
			modify:      func(c *MonitorConfig) { c.PollInterval = 0 },
			expectedErr: errNonPositiveDuration,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			config := testMonitorConfig()
			test.modify(&config)
			require.ErrorIs(t, config.Verify(), test.expectedErr)
		})
	}
}
