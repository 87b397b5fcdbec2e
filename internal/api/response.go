package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Response is the envelope every JSON route answers with.
type Response struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func writeResponse(ctx context.Context, w http.ResponseWriter, statusCode int, resp Response) {
	resp.Timestamp = time.Now().UnixMilli()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

func writeData(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	writeResponse(ctx, w, statusCode, Response{Success: true, Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, statusCode int, msg string) {
	writeResponse(ctx, w, statusCode, Response{Success: false, Error: msg})
}

// writeRaw writes a bare JSON payload without the envelope. The builders
// names route answers with a plain array for dashboard compatibility.
func writeRaw(ctx context.Context, w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
