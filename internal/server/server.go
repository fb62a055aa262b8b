package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/example/go-hakka-tone/internal/config"
	"github.com/example/go-hakka-tone/internal/rules"
	"github.com/example/go-hakka-tone/internal/tone"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// Converter converts romanized text between the diacritic and numeric
// forms. *tone.Tables implements it.
type Converter interface {
	ToNumeric(text, dialectCode string) (string, error)
	ToDiacritic(text, dialectChar string) string
	Dialects() []string
}

// Conversion directions accepted by POST /convert.
const (
	DirectionNumeric   = "numeric"
	DirectionDiacritic = "diacritic"
)

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes int
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{
		maxTextBytes: 4096,
		logger:       slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes for POST /convert.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

type handler struct {
	conv Converter
	opts options
	log  *slog.Logger
}

// NewHandler returns an http.Handler that serves /health, /dialects, and POST /convert.
func NewHandler(conv Converter, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		conv: conv,
		opts: opts,
		log:  opts.logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/dialects", h.handleDialects)
	mux.HandleFunc("/convert", h.handleConvert)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

// dialectInfo describes a catalog dialect. Numeric reports whether reverse
// rules are loaded for it.
type dialectInfo struct {
	rules.Dialect
	Numeric bool `json:"numeric"`
}

func (h *handler) handleDialects(w http.ResponseWriter, _ *http.Request) {
	loaded := make(map[string]bool)
	for _, code := range h.conv.Dialects() {
		loaded[code] = true
	}

	out := make([]dialectInfo, 0, len(rules.Dialects()))
	for _, d := range rules.Dialects() {
		out = append(out, dialectInfo{Dialect: d, Numeric: loaded[d.Code]})
	}
	writeJSON(w, http.StatusOK, out)
}

type convertRequest struct {
	Text      string `json:"text"`
	Dialect   string `json:"dialect"`
	Direction string `json:"direction"`
}

type convertResponse struct {
	Result string `json:"result"`
}

func (h *handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "request body is required")
		return
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if len(req.Text) > h.opts.maxTextBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return
	}

	dialect, ok := rules.Resolve(req.Dialect)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown dialect %q", req.Dialect))
		return
	}

	start := time.Now()
	var result string
	switch strings.ToLower(req.Direction) {
	case DirectionNumeric, "":
		var err error
		result, err = h.conv.ToNumeric(req.Text, dialect.Code)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, tone.ErrUnknownDialect) {
				status = http.StatusUnprocessableEntity
			}
			h.log.WarnContext(r.Context(), "conversion failed",
				slog.String("dialect", dialect.Code),
				slog.Int("text_len", len(req.Text)),
				slog.String("error", err.Error()),
			)
			writeError(w, status, err.Error())
			return
		}
	case DirectionDiacritic:
		result = h.conv.ToDiacritic(req.Text, dialect.Char)
	default:
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("invalid direction %q (want %s|%s)", req.Direction, DirectionNumeric, DirectionDiacritic))
		return
	}

	h.log.InfoContext(r.Context(), "conversion complete",
		slog.String("dialect", dialect.Code),
		slog.String("direction", strings.ToLower(req.Direction)),
		slog.Int("text_len", len(req.Text)),
		slog.Int64("duration_us", time.Since(start).Microseconds()),
	)

	writeJSON(w, http.StatusOK, convertResponse{Result: result})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful shutdown.
type Server struct {
	cfg             config.Config
	conv            Converter
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

func New(cfg config.Config, conv Converter) *Server {
	timeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Server{
		cfg:             cfg,
		conv:            conv,
		logger:          slog.Default(),
		shutdownTimeout: timeout,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

// WithLogger overrides the request logger.
func (s *Server) WithLogger(l *slog.Logger) *Server {
	s.logger = l
	return s
}

func (s *Server) Start(ctx context.Context) error {
	if s.conv == nil {
		return errors.New("server: no converter")
	}

	h := NewHandler(s.conv,
		WithMaxTextBytes(s.cfg.Server.MaxTextBytes),
		WithLogger(s.logger),
	)

	httpServer := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}

func ProbeHTTP(addr string) error {
	resp, err := http.Get("http://" + addr + "/health") //nolint:noctx
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status: %s", resp.Status)
	}
	return nil
}
