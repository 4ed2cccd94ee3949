// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/randa-mu/dcipher-sub000/utils/logging"
)

const (
	Path = "/metrics"

	readTimeout     = time.Second
	shutdownTimeout = time.Second
)

// Server exposes a prometheus registry over HTTP.
type Server struct {
	addr     string
	gatherer prometheus.Gatherer
	server   http.Server
	log      logging.Logger
}

func NewServer(addr string, gatherer prometheus.Gatherer, log logging.Logger) *Server {
	return &Server{
		addr:     addr,
		gatherer: gatherer,
		log:      log,
	}
}

func (*Server) String() string {
	return "metrics server"
}

// Addr is the listening address. It is only resolved after Start.
func (s *Server) Addr() string {
	return s.addr
}

// Start listens on the configured address and serves in the background. The
// returned channel reports a failure of the serving goroutine.
func (s *Server) Start() (runError <-chan error, err error) {
	mux := http.NewServeMux()
	mux.Handle(Path, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, err
	}
	s.addr = listener.Addr().String()

	s.server = http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: readTimeout,
		ReadTimeout:       readTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		err := s.server.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
		errs <- err
	}()

	s.log.Info("serving metrics",
		zap.String("url", "http://"+s.addr+Path),
	)
	return errs, nil
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}
