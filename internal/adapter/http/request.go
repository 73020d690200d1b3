package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type createCampaignRequest struct {
	Name     string    `json:"name"`
	Goal     int64     `json:"goal"`
	Deadline time.Time `json:"deadline"`
}

type contributeRequest struct {
	Amount int64 `json:"amount"`
}

// refundRequest may be empty; a missing amount refunds the full stake.
type refundRequest struct {
	Amount int64 `json:"amount"`
}

type campaignResponse struct {
	ID           domain.CampaignID `json:"id"`
	Creator      domain.AccountID  `json:"creator"`
	Name         string            `json:"name"`
	Goal         domain.Amount     `json:"goal"`
	Raised       domain.Amount     `json:"raised"`
	Deadline     time.Time         `json:"deadline"`
	Claimed      bool              `json:"claimed"`
	CreatedAt    time.Time         `json:"created_at"`
	Vault        domain.AccountID  `json:"vault"`
	VaultBalance *domain.Amount    `json:"vault_balance,omitempty"`
	State        domain.State      `json:"state,omitempty"`
}

func newCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:        c.ID,
		Creator:   c.Creator,
		Name:      c.Name,
		Goal:      c.Goal,
		Raised:    c.Raised,
		Deadline:  c.Deadline,
		Claimed:   c.Claimed,
		CreatedAt: c.CreatedAt,
		Vault:     c.Vault(),
	}
}

func newCampaignViewResponse(v port.CampaignView) campaignResponse {
	resp := newCampaignResponse(v.Campaign)
	balance := v.VaultBalance
	resp.VaultBalance = &balance
	resp.State = v.State
	return resp
}

type contributionResponse struct {
	CampaignID  domain.CampaignID `json:"campaign_id"`
	Contributor domain.AccountID  `json:"contributor"`
	Amount      domain.Amount     `json:"amount"`
	Raised      *domain.Amount    `json:"raised,omitempty"`
}

type settlementResponse struct {
	CampaignID  domain.CampaignID `json:"campaign_id"`
	Recipient   domain.AccountID  `json:"recipient"`
	Transferred domain.Amount     `json:"transferred"`
	Remaining   domain.Amount     `json:"remaining"`
	Raised      domain.Amount     `json:"raised"`
}

func newSettlementResponse(s port.SettlementResp) settlementResponse {
	return settlementResponse(s)
}

// decodeJSON decodes a strict JSON body. An empty body is accepted when
// allowEmpty is set and leaves v untouched.
func decodeJSON(r *http.Request, v any, allowEmpty bool) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	if allowEmpty && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeDecodeError reports a body that decodeJSON rejected. Bodies cut off
// by the size limit are 413, anything else is malformed JSON.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeProblem(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "request body too large", err.Error())
		return
	}
	writeProblem(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON", err.Error())
}

// campaignID parses the {id} path parameter, writing a 400 on failure.
func campaignID(w http.ResponseWriter, r *http.Request) (domain.CampaignID, bool) {
	id, err := domain.ParseCampaignID(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "INVALID_CAMPAIGN_ID", "invalid campaign id", err.Error())
		return domain.CampaignID{}, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response error", slog.Any("error", err))
	}
}
