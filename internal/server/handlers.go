package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/partdesk-core/server/internal/router"
	logx "github.com/partdesk-core/server/pkg/logger"
)

// maxBodyBytes caps the request body; histories past this are a client bug.
const maxBodyBytes = 1 << 20

type chatRequest struct {
	Message string        `json:"message"`
	History []router.Turn `json:"history"`
}

func handleChat(engine *router.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// an uncaught failure inside the engine becomes the generic apology
		// with a server-error status, never a 200
		defer func() {
			if rec := recover(); rec != nil {
				logx.Error().Interface("panic", rec).Msg("chat turn panicked")
				writeJSON(w, http.StatusInternalServerError, router.ServerErrorResponse())
			}
		}()

		var req chatRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
			// malformed bodies and non-string messages get the same answer as
			// a missing one
			writeJSON(w, http.StatusBadRequest, router.EmptyMessageResponse())
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			writeJSON(w, http.StatusBadRequest, router.EmptyMessageResponse())
			return
		}

		resp := engine.HandleChatTurn(r.Context(), req.Message, req.History)
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logx.Error().Err(err).Msg("failed to write response")
	}
}
