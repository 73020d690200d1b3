package httpadapter

import (
	"net/http"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// handleWithdraw pays the vault out to the caller, who must be the creator.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	caller, _ := CallerFrom(r.Context())
	resp, err := h.svc.Withdraw(r.Context(), port.WithdrawReq{CampaignID: id, Caller: caller})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSettlementResponse(*resp), h.logger)
}

// handleRefund returns the caller's stake, or the "amount" given in the
// optional body, from a campaign that missed its goal.
func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	caller, _ := CallerFrom(r.Context())
	var req refundRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeDecodeError(w, err)
		return
	}
	resp, err := h.svc.Refund(r.Context(), port.RefundReq{
		CampaignID:  id,
		Contributor: caller,
		Amount:      domain.Amount(req.Amount),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSettlementResponse(*resp), h.logger)
}
