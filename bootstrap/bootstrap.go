package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"
	"golang.org/x/sync/errgroup"

	"github.com/fulldump/clientsdb/api"
	"github.com/fulldump/clientsdb/configuration"
	"github.com/fulldump/clientsdb/database"
	"github.com/fulldump/clientsdb/service"
)

var VERSION = "dev"

type Server struct {
	// Addr is the address actually listening, useful with port 0
	Addr string

	db       *database.Database
	http     *http.Server
	ln       net.Listener
	logger   *slog.Logger
	stopped  chan struct{}
	stopOnce sync.Once
}

// Bootstrap wires database, service and API and starts listening. Serving
// begins with Start.
func Bootstrap(c *configuration.Configuration, logger *slog.Logger) (*Server, error) {

	db := database.NewDatabase(&database.Config{
		Dir:    c.Dir,
		Engine: c.Engine,
	})
	db.Logger = logger

	b := api.Build(service.NewService(db), c.Statics, VERSION)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(logger),
		api.PrettyErrorInterceptor,
		api.InterceptorUnavailable(db),
		api.RecoverFromPanic(logger),
	)

	s := &http.Server{
		Addr:     c.HttpAddr,
		Handler:  box.Box2Http(b),
		ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}
	logger.Info("listening", "addr", ln.Addr().String())

	return &Server{
		Addr:    ln.Addr().String(),
		db:      db,
		http:    s,
		ln:      ln,
		logger:  logger,
		stopped: make(chan struct{}),
	}, nil
}

// Start loads the database and serves HTTP until Stop is called, a signal
// arrives or one of both fails.
func (s *Server) Start() error {

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(signalChan)

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		err := s.db.Start()
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := s.http.Serve(s.ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		select {
		case sig := <-signalChan:
			s.logger.Info("signal received", "signal", sig.String())
		case <-ctx.Done():
		case <-s.stopped:
			return nil
		}
		s.Stop()
		return nil
	})

	return g.Wait()
}

func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopped)

		err := s.db.Stop()
		if err != nil {
			s.logger.Error("stop database", "err", err)
		}

		err = s.http.Shutdown(context.Background())
		if err != nil {
			s.logger.Error("shutdown http", "err", err)
		}
	})
}
