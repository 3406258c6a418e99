// Package http exposes the conversion operations over a JSON API.
package http

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/go-kit/log"
	"github.com/shopspring/decimal"

	coin "go-coin-overlay"
	"go-coin-overlay/chat"
	"go-coin-overlay/convert"
	"go-coin-overlay/format"
	"go-coin-overlay/hook"
	"go-coin-overlay/settings"
)

// Server dependencies for HTTP Server functions
type Server struct {
	settings  *settings.Settings
	converter convert.Service
	formatter *format.Formatter
	hooks     *hook.Registry
	logger    log.Logger

	// settingsPath where toggles are persisted; empty disables persistence
	settingsPath string

	mu     sync.Mutex
	router http.ServeMux
}

// NewServer constructs a ready-to-serve Server
func NewServer(s *settings.Settings, c convert.Service, f *format.Formatter, h *hook.Registry, settingsPath string, logger log.Logger) *Server {
	server := &Server{
		settings:     s,
		converter:    c,
		formatter:    f,
		hooks:        h,
		settingsPath: settingsPath,
		logger:       logger,
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/convert", s.convert())
	s.router.Handle("/api/parse", s.parse())
	s.router.Handle("/api/rewrite", s.rewrite())
	s.router.Handle("/api/enabled", s.enabled())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// convert produces the HTTP handler for one-off conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		Amount coin.Copper `json:"amount"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Rate      decimal.Decimal `json:"rate"`
		Value     decimal.Decimal `json:"value"`
		Formatted string          `json:"formatted"`
		Plain     string          `json:"plain"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		var request request
		if !s.decode(rw, r.Body, &request) {
			return
		}

		result := s.converter.Convert(request.Amount)
		response := response{
			Rate:      result.Rate,
			Value:     result.Value,
			Formatted: s.formatter.Format(request.Amount, true),
			Plain:     s.formatter.Format(request.Amount, false),
		}
		s.encode(rw, &response)
	}
}

// parse produces the HTTP handler for chat-message parsing
func (s *Server) parse() http.HandlerFunc {

	type request struct {
		Message string `json:"message"`
	}

	type response struct {
		Amount    coin.Copper `json:"amount"`
		Formatted string      `json:"formatted"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		var request request
		if !s.decode(rw, r.Body, &request) {
			return
		}

		amount := chat.ParseMoney(request.Message)
		response := response{
			Amount:    amount,
			Formatted: s.formatter.Format(amount, false),
		}
		s.encode(rw, &response)
	}
}

// rewrite produces the HTTP handler exercising the chat message filter
func (s *Server) rewrite() http.HandlerFunc {

	type request struct {
		Surface string `json:"surface"`
		Event   string `json:"event"`
		Message string `json:"message"`
	}

	type response struct {
		Suppress bool   `json:"suppress"`
		Message  string `json:"message"`
	}

	filter := s.hooks.MessageFilter()

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		var request request
		if !s.decode(rw, r.Body, &request) {
			return
		}

		suppress, rewritten := filter(request.Surface, request.Event, request.Message)
		s.encode(rw, &response{Suppress: suppress, Message: rewritten})
	}
}

// enabled produces the HTTP handler reading and toggling the display flag
func (s *Server) enabled() http.HandlerFunc {

	type body struct {
		Enabled bool `json:"enabled"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		switch r.Method {
		case http.MethodGet:
			s.encode(rw, &body{Enabled: s.settings.IsEnabled()})

		case http.MethodPut, http.MethodPost:
			var request body
			if !s.decode(rw, r.Body, &request) {
				return
			}
			s.settings.SetEnabled(request.Enabled)
			s.persist(request.Enabled)
			s.encode(rw, &body{Enabled: s.settings.IsEnabled()})

		default:
			rw.WriteHeader(http.StatusMethodNotAllowed)
			rw.Write([]byte(`{"error": "method not allowed"}`))
		}
	}
}

// persist writes the toggled flag back to the settings file
func (s *Server) persist(enabled bool) {
	if s.settingsPath == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	file := settings.File{
		Enabled:  enabled,
		Rate:     s.settings.Rate().String(),
		Currency: s.settings.Currency(),
	}
	if err := settings.Save(s.settingsPath, file); err != nil {
		s.logger.Log("msg", "persisting enabled flag failed", "error", err)
	}
}

func (s *Server) decode(rw http.ResponseWriter, body io.Reader, v interface{}) bool {
	bytes, err := io.ReadAll(body)
	if err != nil {
		rw.WriteHeader(http.StatusBadRequest)
		rw.Write([]byte(`{"error": "invalid request"}`))
		return false
	}
	if err := json.Unmarshal(bytes, v); err != nil {
		rw.WriteHeader(http.StatusBadRequest)
		rw.Write([]byte(`{"error": "invalid json"}`))
		return false
	}
	return true
}

func (s *Server) encode(rw http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		rw.Write([]byte(`{"error": "failed json encoding"}`))
	}
}
