// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

var (
	// Useful latency buckets

	SecondsBuckets = []float64{
		(100 * time.Millisecond).Seconds(),
		(500 * time.Millisecond).Seconds(),
		time.Second.Seconds(),
		(2 * time.Second).Seconds(),
		(5 * time.Second).Seconds(),
		(10 * time.Second).Seconds(),
		(30 * time.Second).Seconds(),
		time.Minute.Seconds(),
		// anything larger than a minute will be bucketed together
	}

	// Useful block count buckets

	BlocksBuckets = []float64{
		1,
		2,
		3,
		5,
		10,
		20,
		50,
		100,
		// anything larger than 100 blocks will be bucketed together
	}
)
