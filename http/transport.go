package http

import (
	"encoding/json"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"
	"io"
	"net/http"
	"time"
	"travel-companion/exchange"
	"travel-companion/session"
	"travel-companion/translate"
)

// maxBodyBytes caps request bodies; every request here is a few fields of JSON
const maxBodyBytes = 64 << 10

// Server dependencies for HTTP Server functions
type Server struct {
	Exchange  exchange.Service
	Translate translate.Service
	Logger    log.Logger

	router   *http.ServeMux
	handler  http.Handler
	validate *validator.Validate
	limiter  *rateLimiter
	now      func() time.Time
}

// Option configures a Server
type Option func(*Server)

// WithRateLimit limits each client IP to rps requests per second with bursts
// of up to burst requests. A zero rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		if rps > 0 {
			s.limiter = newRateLimiter(rps, burst)
		}
	}
}

// NewServer constructs a Server with all routes registered.
func NewServer(ex exchange.Service, tr translate.Service, logger log.Logger, opts ...Option) *Server {
	server := &Server{
		Exchange:  ex,
		Translate: tr,
		Logger:    logger,
		router:    http.NewServeMux(),
		validate:  validator.New(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(server)
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("POST /convert", s.convert())
	s.router.Handle("POST /convert/swap", s.swap())
	s.router.Handle("GET /currencies", s.currencies())
	s.router.Handle("POST /translate", s.translate())
	s.router.Handle("GET /languages", s.languages())
	s.router.Handle("GET /history", s.history())
	s.router.Handle("DELETE /history", s.clearHistory())
	s.router.Handle("POST /phrases", s.savePhrase())
	s.router.Handle("GET /phrases", s.phrases())
	s.router.Handle("GET /health", s.health())

	var h http.Handler = s.router
	if s.limiter != nil {
		h = s.limit(h)
	}
	s.handler = s.logRequests(h)
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(rw, r)
}

// errorResponse the body of every failed request
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// error codes reported to clients
const (
	codeInvalidCurrency     = "InvalidCurrency"
	codeInvalidAmount       = "InvalidAmount"
	codeEmptyInput          = "EmptyInput"
	codeUnsupportedLanguage = "UnsupportedLanguage"
	codeEmptyPhrase         = "EmptyPhrase"
	codeUnknownCategory     = "UnknownCategory"
	codeInvalidRequest      = "InvalidRequest"
	codeRateLimited         = "RateLimited"
	codeInternal            = "Internal"
)

// classify maps a service error to a status code and client error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, exchange.ErrInvalidCurrency):
		return http.StatusBadRequest, codeInvalidCurrency
	case errors.Is(err, exchange.ErrInvalidAmount):
		return http.StatusBadRequest, codeInvalidAmount
	case errors.Is(err, translate.ErrEmptyInput):
		return http.StatusBadRequest, codeEmptyInput
	case errors.Is(err, translate.ErrUnsupportedLanguage):
		return http.StatusBadRequest, codeUnsupportedLanguage
	case errors.Is(err, translate.ErrEmptyPhrase):
		return http.StatusBadRequest, codeEmptyPhrase
	case errors.Is(err, translate.ErrUnknownCategory):
		return http.StatusBadRequest, codeUnknownCategory
	case errors.Is(err, session.ErrNoSession):
		return http.StatusBadRequest, codeInvalidRequest
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

// fail writes the error response for err. Internal details are only logged.
func (s *Server) fail(rw http.ResponseWriter, err error) {
	status, code := classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		level.Error(s.Logger).Log("msg", "request failed", "err", err)
		message = "internal error"
	}
	s.writeError(rw, status, code, message)
}

func (s *Server) writeError(rw http.ResponseWriter, status int, code, message string) {
	s.writeJSON(rw, status, errorResponse{Error: code, Message: message})
}

func (s *Server) writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		level.Warn(s.Logger).Log("msg", "failed json encoding", "err", err)
	}
}

// decode reads a JSON body into v and validates it. On failure the error
// response has been written and false is returned.
func (s *Server) decode(rw http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()

	bytes, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(rw, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return false
	}

	if err := json.Unmarshal(bytes, v); err != nil {
		s.writeError(rw, http.StatusBadRequest, codeInvalidRequest, "invalid json")
		return false
	}

	if err := s.validate.Struct(v); err != nil {
		s.writeError(rw, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return false
	}
	return true
}
