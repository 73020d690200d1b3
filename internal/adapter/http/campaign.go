package httpadapter

import (
	"net/http"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// handleCreateCampaign opens a campaign owned by the caller. The body holds
// the name, goal and RFC 3339 deadline. It responds 201 with the campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	caller, _ := CallerFrom(r.Context())
	var req createCampaignRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeDecodeError(w, err)
		return
	}
	campaign, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Creator:  caller,
		Name:     req.Name,
		Goal:     domain.Amount(req.Goal),
		Deadline: req.Deadline,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/campaigns/"+campaign.ID.String())
	writeJSON(w, http.StatusCreated, newCampaignResponse(*campaign), h.logger)
}

// handleGetCampaign returns the campaign with its vault balance and state.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.Campaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignViewResponse(*view), h.logger)
}
