// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"io"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/randa-mu/dcipher-sub000/utils/logging"
)

func TestServer(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_counter",
		Help: "counter used by the metrics server test",
	})
	require.NoError(registry.Register(counter))
	counter.Add(3)

	server := NewServer("127.0.0.1:0", registry, logging.NoLog{})
	runErr, err := server.Start()
	require.NoError(err)
	require.NotEqual("127.0.0.1:0", server.Addr())

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://"+server.Addr()+Path, nil)
	require.NoError(err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(resp.Body.Close())
	require.NoError(err)
	require.Equal(http.StatusOK, resp.StatusCode)
	require.Contains(string(body), "test_counter 3")

	require.NoError(server.Stop())
	select {
	case err := <-runErr:
		require.FailNow("unexpected serve error", err)
	default:
	}
}

func TestServerListenError(t *testing.T) {
	server := NewServer("invalid-address", prometheus.NewRegistry(), logging.NoLog{})
	_, err := server.Start()
	require.Error(t, err)
}
