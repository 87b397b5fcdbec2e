package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.service.Ping(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("healthcheck failed")
		writeError(ctx, w, http.StatusInternalServerError, "service unhealthy")
		return
	}

	writeData(ctx, w, http.StatusOK, "ok")
}
