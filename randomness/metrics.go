// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package randomness

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/randa-mu/dcipher-sub000/utils/metric"
)

const (
	namespace = "randomness"

	resultLabel = "result"
	nameLabel   = "name"
	methodLabel = "method"

	resultSuccess = "success"
	resultFailed  = "failed"
)

type clientMetrics struct {
	transactions    *prometheus.CounterVec
	reverts         *prometheus.CounterVec
	fulfillmentWait prometheus.Histogram
}

func newClientMetrics(registerer prometheus.Registerer) (*clientMetrics, error) {
	m := &clientMetrics{
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions",
			Help:      "Number of transactions sent by method",
		}, []string{methodLabel}),
		reverts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reverts",
			Help:      "Number of reverted contract interactions by error name",
		}, []string{nameLabel}),
		fulfillmentWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fulfillment_wait_seconds",
			Help:      "Time spent waiting for a request to be fulfilled",
			Buckets:   metric.SecondsBuckets,
		}),
	}
	err := errors.Join(
		registerer.Register(m.transactions),
		registerer.Register(m.reverts),
		registerer.Register(m.fulfillmentWait),
	)
	return m, err
}

type monitorMetrics struct {
	requests          prometheus.Counter
	fulfillments      *prometheus.CounterVec
	events            *prometheus.CounterVec
	inFlight          prometheus.Gauge
	fulfillmentBlocks prometheus.Histogram
	processedBlock    prometheus.Gauge
}

func newMonitorMetrics(registerer prometheus.Registerer) (*monitorMetrics, error) {
	m := &monitorMetrics{
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests",
			Help:      "Number of randomness requests observed",
		}),
		fulfillments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fulfillments",
			Help:      "Number of randomness callbacks by result",
		}, []string{resultLabel}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events",
			Help:      "Number of contract events decoded by name",
		}, []string{nameLabel}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "in_flight",
			Help:      "Number of requests awaiting a callback",
		}),
		fulfillmentBlocks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fulfillment_blocks",
			Help:      "Blocks between a request and its callback",
			Buckets:   metric.BlocksBuckets,
		}),
		processedBlock: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "processed_block",
			Help:      "Last block scanned for contract events",
		}),
	}
	err := errors.Join(
		registerer.Register(m.requests),
		registerer.Register(m.fulfillments),
		registerer.Register(m.events),
		registerer.Register(m.inFlight),
		registerer.Register(m.fulfillmentBlocks),
		registerer.Register(m.processedBlock),
	)
	return m, err
}
