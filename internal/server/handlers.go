package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/veldtchat/veldt/pkg/chat"
	"github.com/veldtchat/veldt/pkg/compose"
	"github.com/veldtchat/veldt/pkg/narrow"
)

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string `json:"status"`
	Users   int    `json:"users"`
	Streams int    `json:"streams"`
}

// StatusResponse is the GET /status body.
type StatusResponse struct {
	Realm           string          `json:"realm"`
	CapabilityLevel int             `json:"capability_level"`
	UptimeSeconds   int64           `json:"uptime_seconds"`
	Metrics         MetricsSnapshot `json:"metrics"`
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Users:   len(s.snap.Users),
			Streams: len(s.snap.Streams),
		})
	}
}

func (s *Server) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, StatusResponse{
			Realm:           s.snap.Realm.BaseURL.String(),
			CapabilityLevel: s.snap.Realm.CapabilityLevel,
			UptimeSeconds:   int64(time.Since(s.startedAt).Seconds()),
			Metrics:         s.metrics.Snapshot(),
		})
	}
}

// handleQuote composes a quote-and-reply body for POST /api/compose/quote.
func (s *Server) handleQuote() http.HandlerFunc {
	type response struct {
		Body string `json:"body"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.metrics.RecordError()
			httpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}

		if req.MessageID <= 0 {
			s.metrics.RecordError()
			httpError(w, http.StatusBadRequest, "message_id must be positive")
			return
		}
		// The library treats a missing sender as a caller bug and
		// panics; over HTTP it is just a bad request.
		if _, ok := s.snap.Users[req.SenderID]; !ok {
			s.metrics.RecordError()
			httpError(w, http.StatusBadRequest, "sender_id not in user directory")
			return
		}
		conv, err := req.Conversation.toConversation()
		if err != nil {
			s.metrics.RecordError()
			httpError(w, http.StatusBadRequest, err.Error())
			return
		}

		c := compose.Composer{
			Realm:   s.snap.Realm,
			Users:   s.snap.Users,
			Streams: s.snap.Streams,
		}
		msg := chat.Message{ID: req.MessageID, SenderID: req.SenderID, Conversation: conv}

		var body string
		if req.Placeholder {
			body = c.QuoteAndReplyPlaceholder(msg)
		} else {
			body = c.QuoteAndReply(msg, req.RawContent)
		}

		s.metrics.RecordQuote()
		writeJSON(w, http.StatusOK, response{Body: body})
	}
}

// handleLink builds a narrow link for POST /api/narrow/link.
func (s *Server) handleLink() http.HandlerFunc {
	type response struct {
		URL string `json:"url"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req linkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.metrics.RecordError()
			httpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}

		expr := make(narrow.Expression, 0, len(req.Filters))
		for i, spec := range req.Filters {
			f, err := spec.toFilter()
			if err != nil {
				s.metrics.RecordError()
				httpError(w, http.StatusBadRequest, fmt.Sprintf("filters[%d]: %v", i, err))
				return
			}
			expr = append(expr, f)
		}

		expr = expr.Resolve(s.snap.Realm.CapabilityLevel)
		url := narrow.Link(s.snap.Realm, s.snap.Streams, expr, req.Near)

		s.metrics.RecordLink()
		writeJSON(w, http.StatusOK, response{URL: url})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
