package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/morlord/builders-service/internal/types"
	"github.com/morlord/builders-service/pkg"
)

// GetSubnetStakers returns the staking positions of one subnet together with
// aggregates. The optional address query param is the caller's own wallet,
// excluded from the distinct-participant count.
func (s *Server) GetSubnetStakers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	network, err := types.ParseNetwork(r.URL.Query().Get("network"))
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	subnetID := chi.URLParam(r, "subnetID")
	if subnetID == "" {
		writeError(ctx, w, http.StatusBadRequest, "subnet id is required")
		return
	}

	self := r.URL.Query().Get("address")
	if self != "" {
		if err := pkg.ValidateEthAddress(self); err != nil {
			writeError(ctx, w, http.StatusBadRequest, err.Error())
			return
		}
	}

	view, err := s.service.GetSubnetStakers(ctx, network, subnetID, self)
	if err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("network", network.String()).
			Str("subnet_id", subnetID).
			Msg("failed to get subnet stakers")
		writeError(ctx, w, http.StatusInternalServerError, "failed to fetch stakers")
		return
	}

	writeData(ctx, w, http.StatusOK, view)
}
