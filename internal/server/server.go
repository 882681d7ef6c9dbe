package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"runtime/debug"
	"sync"
	"time"

	"github.com/muurk/tinyhttpd/internal/cgi"
	"github.com/muurk/tinyhttpd/internal/config"
	"github.com/muurk/tinyhttpd/internal/httpwire"
	"github.com/muurk/tinyhttpd/internal/logging"
	"github.com/muurk/tinyhttpd/internal/sandbox"
	"github.com/muurk/tinyhttpd/internal/static"
	"go.uber.org/zap"
)

// shutdownTimeout bounds Start's graceful shutdown
const shutdownTimeout = 10 * time.Second

// Server accepts connections and serves one request per connection
type Server struct {
	config  *config.Config
	docRoot string
	cgiRoot string
	static  *static.Handler
	cgi     *cgi.Executor

	// ctx is cancelled on shutdown, killing running CGI processes
	ctx    context.Context
	cancel context.CancelFunc

	listener    net.Listener
	wg          sync.WaitGroup
	mu          sync.Mutex
	closing     bool
	activeConns map[net.Conn]struct{}
}

// New creates a new Server instance. The document and CGI roots are
// canonicalized here, once.
func New(cfg *config.Config) (*Server, error) {
	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	docRoot, err := sandbox.Canonicalize(cfg.DocumentRoot)
	if err != nil {
		return nil, err
	}
	cgiRoot, err := sandbox.Canonicalize(cfg.CGIRoot)
	if err != nil {
		return nil, err
	}

	framing, err := cgi.ParseFraming(cfg.CGIFraming)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		config:      cfg,
		docRoot:     docRoot,
		cgiRoot:     cgiRoot,
		static:      static.NewHandler(docRoot),
		cgi:         cgi.NewExecutor(cgi.Config{Root: cgiRoot, Framing: framing}, logging.Named("cgi")),
		ctx:         ctx,
		cancel:      cancel,
		activeConns: make(map[net.Conn]struct{}),
	}, nil
}

// Listen binds the configured address. It is called by Start; tests call it
// directly to learn the bound port before serving.
func (s *Server) Listen() error {
	addr := s.config.Addr()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	logging.Info("Server listening for connections",
		zap.String("addr", listener.Addr().String()),
		zap.String("document_root", s.docRoot),
		zap.String("cgi_root", s.cgiRoot),
		zap.String("cgi_framing", s.config.CGIFraming),
	)
	return nil
}

// Addr returns the bound address, or nil before Listen
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Start serves until ctx is cancelled or accepting fails, calling Listen
// first if needed. Cancelling ctx triggers a graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	if s.Addr() == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Serve()
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown requested, stopping server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}

// Serve accepts connections until the listener is closed (returns nil) or
// Accept fails (returns the error). Each connection gets its own goroutine.
func (s *Server) Serve() error {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()
	if listener == nil {
		return errors.New("server is not listening")
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			logging.Error("Failed to accept connection", zap.Error(err))
			return fmt.Errorf("accept failed: %w", err)
		}

		s.dispatch(conn)
	}
}

// dispatch registers conn and starts its handler goroutine. Once Shutdown has
// begun the connection is closed instead, so no handler is added after
// wg.Wait starts and every registered conn is seen by Shutdown.
func (s *Server) dispatch(conn net.Conn) bool {
	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		logging.Debug("Rejecting connection during shutdown",
			zap.String("remote_addr", conn.RemoteAddr().String()),
		)
		_ = conn.Close()
		return false
	}
	s.activeConns[conn] = struct{}{}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.handleConnection(conn)
	}()
	return true
}

// handleConnection serves a single request on conn and closes it
func (s *Server) handleConnection(conn net.Conn) {
	remoteAddr := conn.RemoteAddr().String()

	defer func() {
		_ = conn.Close()
		s.mu.Lock()
		delete(s.activeConns, conn)
		s.mu.Unlock()
		logging.LogConnection(remoteAddr, "connection_closed")
	}()

	defer func() {
		if r := recover(); r != nil {
			logging.Error("Handler panic",
				zap.String("remote_addr", remoteAddr),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()),
			)
			s.writeResponse(conn, remoteAddr, httpwire.InternalError(fmt.Sprint(r)))
		}
	}()

	logging.LogConnection(remoteAddr, "connection_accepted")

	reader := bufio.NewReaderSize(conn, MaxRequestLine)
	line, err := ReadRequestLine(reader)
	if err != nil {
		logging.Warn("Failed to read request line",
			zap.String("remote_addr", remoteAddr),
			zap.Error(err),
		)
		s.writeResponse(conn, remoteAddr, httpwire.BadRequest())
		return
	}

	req, err := ParseRequestLine(line)
	if err != nil {
		logging.Warn("Malformed request",
			zap.String("remote_addr", remoteAddr),
			zap.Error(err),
		)
		s.writeResponse(conn, remoteAddr, httpwire.BadRequest())
		return
	}

	logging.LogRequest(remoteAddr, req.Method, req.Path, req.Handler())

	switch req.Handler() {
	case HandlerCGI:
		if err := s.cgi.Execute(s.ctx, conn, req.Path); err != nil {
			logging.Error("Failed to write CGI response",
				zap.String("remote_addr", remoteAddr),
				zap.String("path", req.Path),
				zap.Error(err),
			)
		}
	default:
		s.writeResponse(conn, remoteAddr, s.static.Serve(req.Path))
	}
}

// writeResponse writes a buffered response, logging the outcome
func (s *Server) writeResponse(conn net.Conn, remoteAddr string, resp httpwire.Response) {
	if _, err := resp.WriteTo(conn); err != nil {
		logging.Error("Failed to write response",
			zap.String("remote_addr", remoteAddr),
			zap.String("status", resp.Status),
			zap.Error(err),
		)
		return
	}
	logging.LogResponse(remoteAddr, resp.Status, len(resp.Body))
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	s.mu.Lock()
	s.closing = true
	listener := s.listener
	s.mu.Unlock()
	if listener != nil {
		if err := listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			logging.Error("Error closing listener", zap.Error(err))
		}
	}

	// Kill running CGI processes
	s.cancel()

	s.mu.Lock()
	for conn := range s.activeConns {
		logging.Info("Closing active connection", zap.String("remote_addr", conn.RemoteAddr().String()))
		_ = conn.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
		logging.Info("All connections closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
		err = ctx.Err()
	}

	logging.Sync()

	return err
}

// GetActiveConnections returns the number of active connections
func (s *Server) GetActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeConns)
}
