package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// GetAnalytics serves cached analytics rows for one upstream query.
func (s *Server) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	queryID := chi.URLParam(r, "queryID")
	if queryID == "" {
		writeError(ctx, w, http.StatusBadRequest, "query id is required")
		return
	}

	view, err := s.service.GetAnalytics(ctx, queryID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("query_id", queryID).Msg("failed to get analytics")
		writeError(ctx, w, http.StatusInternalServerError, "failed to fetch analytics")
		return
	}

	writeData(ctx, w, http.StatusOK, view)
}

type revalidateResult struct {
	Revalidated bool  `json:"revalidated"`
	Deleted     int64 `json:"deleted"`
}

// RevalidateAnalytics drops the cached rows for one query so the next read
// fetches fresh data. Guarded by a bearer secret when one is configured.
func (s *Server) RevalidateAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if secret := s.cfg.Cache.RevalidateSecret; secret != "" {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			writeError(ctx, w, http.StatusUnauthorized, "unauthorized")
			return
		}
	}

	queryID := chi.URLParam(r, "queryID")
	if queryID == "" {
		writeError(ctx, w, http.StatusBadRequest, "query id is required")
		return
	}

	deleted, err := s.service.RevalidateAnalytics(ctx, queryID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("query_id", queryID).Msg("failed to revalidate analytics")
		writeError(ctx, w, http.StatusInternalServerError, "failed to revalidate analytics")
		return
	}

	writeData(ctx, w, http.StatusOK, revalidateResult{
		Revalidated: deleted > 0,
		Deleted:     deleted,
	})
}
