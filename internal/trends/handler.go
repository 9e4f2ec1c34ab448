package trends

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/ytgap/internal/metrics"
)

// Route is the path the endpoint is mounted on.
const Route = "/api/trends"

// MaxBodyBytes caps the size of a request envelope.
const MaxBodyBytes = 1 << 20

// Actions accepted by the endpoint.
const (
	ActionFetchTrends   = "fetchTrends"
	ActionGenerateIdeas = "generateIdeas"
)

var (
	// ErrMethodNotAllowed is reported for any method other than POST.
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ErrInvalidAction is reported for an action the endpoint does not know.
	ErrInvalidAction = errors.New("invalid action specified")
	// ErrInvalidBody is reported when the request body is not a JSON envelope.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrTimeout is reported when the request deadline passes before the
	// gateway answers.
	ErrTimeout = errors.New("request timed out")
)

// Messages sent to callers for each rejected request.
var messages = map[error]string{
	ErrMethodNotAllowed: "Method Not Allowed",
	ErrInvalidAction:    "Invalid action specified.",
	ErrInvalidBody:      "Invalid request body.",
	ErrTimeout:          "Server error: request timed out.",
}

// Message returns the caller-facing text for one of the endpoint's sentinel
// errors, or the error text for anything else.
func Message(err error) string {
	for sentinel, msg := range messages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return err.Error()
}

// Request is the envelope every call carries.
type Request struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Handler serves the trends endpoint.
type Handler struct {
	svc *Service
	log zerolog.Logger
}

// NewHandler creates a Handler backed by svc.
func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log.With().Str("component", "trends_handler").Logger()}
}

// RegisterRoutes mounts the endpoint on r. Every method is routed to the
// handler so that non-POST requests get the JSON 405 body.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Handle(Route, h)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.reply(w, "", http.StatusMethodNotAllowed, ErrorResponse{Message: Message(ErrMethodNotAllowed)})
		return
	}

	var req Request
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		h.reply(w, "", http.StatusBadRequest, ErrorResponse{Message: Message(ErrInvalidBody)})
		return
	}

	var (
		result any
		err    error
	)
	switch req.Action {
	case ActionFetchTrends:
		var p FetchTrendsPayload
		if err = decodePayload(req.Payload, &p); err == nil {
			result, err = h.svc.FetchTrends(r.Context(), p)
		}
	case ActionGenerateIdeas:
		var p GenerateIdeasPayload
		if err = decodePayload(req.Payload, &p); err == nil {
			result, err = h.svc.GenerateIdeas(r.Context(), p)
		}
	default:
		h.reply(w, "unknown", http.StatusBadRequest, ErrorResponse{Message: Message(ErrInvalidAction)})
		return
	}

	if err != nil {
		h.log.Error().
			Err(err).
			Str("action", req.Action).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("trends request failed")
		if errors.Is(err, context.DeadlineExceeded) {
			h.reply(w, req.Action, http.StatusGatewayTimeout, ErrorResponse{Message: Message(ErrTimeout)})
			return
		}
		h.reply(w, req.Action, http.StatusInternalServerError, ErrorResponse{Message: "Server error: " + err.Error()})
		return
	}

	h.reply(w, req.Action, http.StatusOK, result)
}

func (h *Handler) reply(w http.ResponseWriter, action string, status int, v any) {
	metrics.RecordAPIRequest(action, status)
	writeJSON(w, status, v)
}

// decodePayload fills dst from raw. An absent or null payload leaves dst at
// its zero value.
func decodePayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
