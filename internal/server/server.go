package server

import (
	"context"
	"errors"
	"io"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-idiotic-api/internal/config"
	"github.com/MKhiriev/go-idiotic-api/internal/handler"
	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	// closers are released after the HTTP server has drained.
	closers []io.Closer

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ServerListener, logger *logger.Logger, closers ...io.Closer) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger)
	if err != nil {
		return nil, err
	}

	return &server{
		httpServer:      httpSrv,
		shutdownTimeout: cfg.ShutdownTimeout,
		closers:         closers,
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Msg("Launching HTTP server")
		return s.httpServer.RunServer()
	})

	// listen for stop signals or a failed Serve
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx := context.Background()
		if s.shutdownTimeout > 0 {
			var cancel context.CancelFunc
			shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.shutdownTimeout)
			defer cancel()
		}
		return s.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if err == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return err
}

// Shutdown drains the HTTP server and then closes the registered resources.
// All errors are reported together.
func (s *server) Shutdown(ctx context.Context) error {
	errs := []error{s.httpServer.Shutdown(ctx)}

	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}

func (s *server) addr() net.Addr {
	return s.httpServer.Addr()
}
