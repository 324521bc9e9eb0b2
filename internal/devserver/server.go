package devserver

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/vrec/internal/demo"
	"github.com/vango-dev/vrec/internal/errors"
	"github.com/vango-dev/vrec/internal/snapshot"
)

// Server is the devtools HTTP server.
type Server struct {
	session  *demo.Session
	hub      *Hub
	store    snapshot.Store
	gatherer prometheus.Gatherer
	logger   *slog.Logger
	addr     string

	router     chi.Router
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAddr sets the listen address used by Start.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithGatherer exposes g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithStore enables the /snapshots routes.
func WithStore(store snapshot.Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

// New creates a server for session. hub must be registered as an observer
// on the session's root; New attaches it to the session body.
func New(session *demo.Session, hub *Hub, opts ...Option) *Server {
	s := &Server{
		session: session,
		hub:     hub,
		logger:  slog.Default(),
		addr:    "localhost:7070",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "devserver")
	hub.Attach(session.Body)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/tree", s.handleTree)
	r.Get("/journal", s.handleJournal)
	r.Post("/events/{id}/{event}", s.handleEvent)
	r.Get("/ws", s.handleWebSocket)

	if s.store != nil {
		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/", s.handleListSnapshots)
			r.Post("/{name}", s.handleSaveSnapshot)
			r.Get("/{name}", s.handleGetSnapshot)
		})
	}
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the session loop and serves HTTP on the configured address
// until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		s.session.Run(ctx)
	}()

	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("devserver running", "addr", "http://"+ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	s.hub.Close()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	s.httpServer.Shutdown(shutdownCtx)

	cancel()
	<-loopDone
	return serveErr
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// do runs fn on the loop goroutine. A fault raised by fn is returned.
func (s *Server) do(ctx context.Context, fn func() error) error {
	var err error
	if derr := s.session.Do(ctx, func() {
		defer func() {
			if p := recover(); p != nil {
				if f, ok := errors.AsFault(p); ok {
					err = f
					return
				}
				err = fmt.Errorf("panic: %v", p)
			}
		}()
		err = fn()
	}); derr != nil {
		return derr
	}
	return err
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var html string
	if err := s.do(r.Context(), func() error {
		html = s.session.HTML()
		return nil
	}); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageTemplate, html)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	var msg Message
	if err := s.do(r.Context(), func() error {
		msg = s.hub.Message(MessageHello, "", nil)
		return nil
	}); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, msg.Tree)
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	var journal []string
	if err := s.do(r.Context(), func() error {
		journal = s.session.App.Journal()
		return nil
	}); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, journal)
}

// EventResult is the response of POST /events/{id}/{event}.
type EventResult struct {
	Type    string `json:"type"`
	Handled int    `json:"handled"`
	Stopped bool   `json:"stopped"`
	HTML    string `json:"html"`
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	event := chi.URLParam(r, "event")

	var payload any
	if r.Body != nil {
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&payload); err != nil && err != io.EOF {
			writeError(w, http.StatusBadRequest, fmt.Errorf("decode payload: %w", err))
			return
		}
	}

	var res EventResult
	err := s.do(r.Context(), func() error {
		ev, err := s.session.DispatchPayload(id, event, payload)
		if err != nil {
			return err
		}
		res = EventResult{Type: ev.Type, Handled: ev.Handled, Stopped: ev.Stopped(), HTML: s.session.HTML()}
		return nil
	})
	switch {
	case stderrors.Is(err, demo.ErrNoTarget):
		writeError(w, http.StatusNotFound, err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.hub.HandleWebSocket(w, r, func() (Message, error) {
		var msg Message
		err := s.do(r.Context(), func() error {
			msg = s.hub.Message(MessageHello, "", nil)
			return nil
		})
		return msg, err
	})
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !snapshot.ValidName(name) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid snapshot name %q", name))
		return
	}

	var snap *snapshot.Snapshot
	if err := s.do(r.Context(), func() error {
		snap = snapshot.New(name, s.session.Body)
		snap.Journal = s.session.App.Journal()
		return nil
	}); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.store.Put(r.Context(), snap); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		status := http.StatusInternalServerError
		if f, ok := errors.AsFault(err); ok && f.Code == errors.CodeSnapshotNotFound {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	if f, ok := errors.AsFault(err); ok {
		writeJSON(w, status, f)
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
