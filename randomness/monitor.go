// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/randa-mu/dcipher-sub000/contracts/bindings"
	"github.com/randa-mu/dcipher-sub000/utils/logging"
)

// ChainReader is the part of the node API a Monitor reads from.
type ChainReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// Handler is called with every decoded event in block order. Returning an
// error stops the monitor. A later Poll resumes at the failed event, so each
// event is handled successfully once.
type Handler func(ctx context.Context, ev *Event) error

// Monitor follows the contract's events and tracks requests awaiting a
// callback.
type Monitor struct {
	config  MonitorConfig
	reader  ChainReader
	log     logging.Logger
	metrics *monitorMetrics
	decoder *EventDecoder
	handler Handler

	lock    sync.Mutex
	started bool
	// next is the first block not yet scanned.
	next uint64
	// inFlight maps request ids to the block they were requested in.
	inFlight map[string]pendingRequest

	// delivered is the last log handled successfully. Only the polling
	// goroutine reads it.
	delivered    logPosition
	hasDelivered bool
}

type logPosition struct {
	block uint64
	index uint
}

func (p logPosition) after(o logPosition) bool {
	return p.block > o.block || (p.block == o.block && p.index > o.index)
}

type pendingRequest struct {
	id    *big.Int
	block uint64
}

// NewMonitor returns a monitor over [reader]. [handler] may be nil.
func NewMonitor(
	config MonitorConfig,
	reader ChainReader,
	log logging.Logger,
	registerer prometheus.Registerer,
	handler Handler,
) (*Monitor, error) {
	if err := config.Verify(); err != nil {
		return nil, fmt.Errorf("invalid monitor config: %w", err)
	}
	decoder, err := NewEventDecoder(config.Address)
	if err != nil {
		return nil, err
	}
	metrics, err := newMonitorMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register monitor metrics: %w", err)
	}
	return &Monitor{
		config:   config,
		reader:   reader,
		log:      log.With(zap.Stringer("contract", config.Address)),
		metrics:  metrics,
		decoder:  decoder,
		handler:  handler,
		inFlight: make(map[string]pendingRequest),
	}, nil
}

// Run polls until [ctx] is cancelled or the handler fails. RPC failures are
// logged and retried on the next tick.
func (m *Monitor) Run(ctx context.Context) error {
	m.log.Info("starting monitor",
		zap.Uint64("startBlock", m.config.StartBlock),
		zap.Uint64("window", m.config.Window),
		zap.Uint64("confirmations", m.config.Confirmations),
	)
	defer m.log.Info("stopped monitor")

	ticker := time.NewTicker(m.config.PollInterval)
	defer ticker.Stop()
	for {
		err := m.Poll(ctx)
		var handlerErr *handlerError
		switch {
		case ctx.Err() != nil:
			return nil
		case errors.As(err, &handlerErr):
			return err
		case err != nil:
			m.log.Warn("failed to poll events", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

type handlerError struct {
	event string
	err   error
}

func (e *handlerError) Error() string {
	return fmt.Sprintf("handler failed on %s: %v", e.event, e.err)
}

func (e *handlerError) Unwrap() error {
	return e.err
}

// Poll scans every confirmed block that has not been scanned yet.
func (m *Monitor) Poll(ctx context.Context) error {
	head, err := m.reader.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch head: %w", err)
	}
	if head < m.config.Confirmations {
		return nil
	}
	safe := head - m.config.Confirmations

	m.lock.Lock()
	if !m.started {
		m.next = m.config.StartBlock
		if m.next == 0 {
			m.next = safe
		}
		m.started = true
	}
	m.lock.Unlock()

	for {
		m.lock.Lock()
		from := m.next
		m.lock.Unlock()
		if from > safe {
			return nil
		}
		to := min(from+m.config.Window-1, safe)

		logs, err := m.reader.FilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(from),
			ToBlock:   new(big.Int).SetUint64(to),
			Addresses: []common.Address{m.config.Address},
		})
		if err != nil {
			return fmt.Errorf("failed to filter logs in [%d, %d]: %w", from, to, err)
		}
		m.log.Verbo("scanned blocks",
			zap.Uint64("from", from),
			zap.Uint64("to", to),
			zap.Int("logs", len(logs)),
		)
		for _, log := range logs {
			if err := m.process(ctx, log); err != nil {
				return err
			}
		}

		m.lock.Lock()
		m.next = to + 1
		m.lock.Unlock()
		m.metrics.processedBlock.Set(float64(to))
	}
}

func (m *Monitor) process(ctx context.Context, log types.Log) error {
	if log.Removed {
		m.log.Debug("skipping removed log",
			zap.Stringer("txHash", log.TxHash),
			zap.Uint("index", log.Index),
		)
		return nil
	}
	pos := logPosition{block: log.BlockNumber, index: log.Index}
	if m.hasDelivered && !pos.after(m.delivered) {
		// Handled before the window was rescanned.
		return nil
	}
	ev, err := m.decoder.Decode(log)
	if err != nil {
		m.log.Warn("failed to decode log",
			zap.Stringer("txHash", log.TxHash),
			zap.Uint64("block", log.BlockNumber),
			zap.Error(err),
		)
		return nil
	}

	if m.handler != nil {
		if err := m.handler(ctx, ev); err != nil {
			return &handlerError{event: ev.Name, err: err}
		}
	}
	m.delivered = pos
	m.hasDelivered = true
	m.track(ev)
	return nil
}

// track updates the request bookkeeping and metrics for a handled event.
func (m *Monitor) track(ev *Event) {
	block := ev.Log.BlockNumber
	m.metrics.events.WithLabelValues(ev.Name).Inc()

	switch p := ev.Payload.(type) {
	case *bindings.RandomnessSenderRandomnessRequested:
		m.requested(p.RequestID, block)
		m.metrics.requests.Inc()
		m.log.Info("randomness requested",
			zap.Stringer("requestID", p.RequestID),
			zap.Stringer("requester", p.Requester),
			zap.Uint64("block", block),
		)
	case *bindings.RandomnessSenderRandomnessCallbackSuccess:
		m.fulfilled(p.RequestID, block, resultSuccess)
		m.log.Info("randomness delivered",
			zap.Stringer("requestID", p.RequestID),
			zap.Stringer("randomness", common.Hash(p.Randomness)),
			zap.Uint64("block", block),
		)
	case *bindings.RandomnessSenderRandomnessCallbackFailed:
		m.fulfilled(p.RequestID, block, resultFailed)
		m.log.Warn("randomness callback failed",
			zap.Stringer("requestID", p.RequestID),
			zap.Uint64("block", block),
		)
	default:
		m.log.Debug("observed event",
			zap.String("event", ev.Name),
			zap.Uint64("block", block),
		)
	}
}

func (m *Monitor) requested(id *big.Int, block uint64) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.inFlight[id.String()] = pendingRequest{id: id, block: block}
	m.metrics.inFlight.Set(float64(len(m.inFlight)))
}

func (m *Monitor) fulfilled(id *big.Int, block uint64, result string) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.metrics.fulfillments.WithLabelValues(result).Inc()
	req, ok := m.inFlight[id.String()]
	if !ok {
		// Requested before the monitor started.
		return
	}
	delete(m.inFlight, id.String())
	m.metrics.inFlight.Set(float64(len(m.inFlight)))
	if block >= req.block {
		m.metrics.fulfillmentBlocks.Observe(float64(block - req.block))
	}
}

// InFlight returns the ids of observed requests without a callback, in
// ascending order.
func (m *Monitor) InFlight() []*big.Int {
	m.lock.Lock()
	defer m.lock.Unlock()

	ids := make([]*big.Int, 0, len(m.inFlight))
	for _, req := range m.inFlight {
		ids = append(ids, req.id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Cmp(ids[j]) < 0
	})
	return ids
}

// NextBlock returns the first block that has not been scanned.
func (m *Monitor) NextBlock() uint64 {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.next
}
