package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/morlord/builders-service/internal/services"
	"github.com/morlord/builders-service/internal/stats"
	"github.com/morlord/builders-service/internal/types"
)

// GetBuilderNames answers with a plain JSON array of builder display names.
// Any upstream failure degrades to an empty array with a 500 status.
func (s *Server) GetBuilderNames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	names, err := s.service.ListBuilderNames(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list builder names")
		writeRaw(ctx, w, http.StatusInternalServerError, []string{})
		return
	}
	if names == nil {
		names = []string{}
	}

	writeRaw(ctx, w, http.StatusOK, names)
}

type subnetsResponse struct {
	Success   bool                 `json:"success"`
	Network   string               `json:"network"`
	Timestamp int64                `json:"timestamp"`
	Data      services.SubnetsView `json:"data"`
	Error     string               `json:"error,omitempty"`
}

// GetSubnets returns every subnet of one network with aggregated totals.
// Failures keep the envelope shape and carry a typed zero payload.
func (s *Server) GetSubnets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	network, err := types.ParseNetwork(r.URL.Query().Get("network"))
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := s.service.GetSubnets(ctx, network)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("network", network.String()).Msg("failed to get subnets")
		writeRaw(ctx, w, http.StatusInternalServerError, subnetsResponse{
			Network:   network.String(),
			Timestamp: time.Now().UnixMilli(),
			Data: services.SubnetsView{
				Subnets: []services.SubnetView{},
				Totals:  stats.TotalsForSubnets(nil),
			},
			Error: "failed to fetch subnets",
		})
		return
	}

	w.Header().Set("Cache-Control", cacheControlValue(s.cfg.Cache.MaxAge, s.cfg.Cache.StaleWhileRevalidate))
	writeRaw(ctx, w, http.StatusOK, subnetsResponse{
		Success:   true,
		Network:   network.String(),
		Timestamp: time.Now().UnixMilli(),
		Data:      *view,
	})
}

func cacheControlValue(maxAge, staleWhileRevalidate time.Duration) string {
	return "public, s-maxage=" + strconv.Itoa(int(maxAge.Seconds())) +
		", stale-while-revalidate=" + strconv.Itoa(int(staleWhileRevalidate.Seconds()))
}
