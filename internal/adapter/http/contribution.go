package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// handleContribute moves the requested amount from the caller into the
// campaign vault and returns the caller's updated stake.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	caller, _ := CallerFrom(r.Context())
	var req contributeRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeDecodeError(w, err)
		return
	}
	resp, err := h.svc.Contribute(r.Context(), port.ContributeReq{
		CampaignID:  id,
		Contributor: caller,
		Amount:      domain.Amount(req.Amount),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	raised := resp.Raised
	writeJSON(w, http.StatusOK, contributionResponse{
		CampaignID:  resp.Contribution.CampaignID,
		Contributor: resp.Contribution.Contributor,
		Amount:      resp.Contribution.Amount,
		Raised:      &raised,
	}, h.logger)
}

// handleGetContribution returns the outstanding stake of {account}.
func (h *Handler) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	account := domain.AccountID(chi.URLParam(r, "account"))
	stake, err := h.svc.Contribution(r.Context(), id, account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contributionResponse{
		CampaignID:  stake.CampaignID,
		Contributor: stake.Contributor,
		Amount:      stake.Amount,
	}, h.logger)
}
