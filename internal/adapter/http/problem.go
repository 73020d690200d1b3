package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"crowdfund/internal/core/domain"
)

// Problem is an RFC 7807 error body. Code is a stable machine-readable
// name for the rejection.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Code   string `json:"code,omitempty"`
}

func writeProblem(w http.ResponseWriter, status int, code, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Problem{Title: title, Status: status, Detail: detail, Code: code})
}

type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{domain.ErrCampaignNotFound, http.StatusNotFound, "CAMPAIGN_NOT_FOUND"},
	{domain.ErrNotAuthorized, http.StatusForbidden, "NOT_AUTHORIZED"},

	{domain.ErrInvalidDeadline, http.StatusUnprocessableEntity, "INVALID_DEADLINE"},
	{domain.ErrInvalidGoal, http.StatusUnprocessableEntity, "INVALID_GOAL"},
	{domain.ErrNameTooLong, http.StatusUnprocessableEntity, "NAME_TOO_LONG"},
	{domain.ErrInvalidAccount, http.StatusUnprocessableEntity, "INVALID_ACCOUNT"},
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity, "INVALID_AMOUNT"},
	{domain.ErrInsufficientContribution, http.StatusUnprocessableEntity, "INSUFFICIENT_CONTRIBUTION"},

	{domain.ErrCampaignExists, http.StatusConflict, "CAMPAIGN_EXISTS"},
	{domain.ErrCampaignEnded, http.StatusConflict, "CAMPAIGN_ENDED"},
	{domain.ErrCampaignNotEnded, http.StatusConflict, "CAMPAIGN_NOT_ENDED"},
	{domain.ErrGoalNotMet, http.StatusConflict, "GOAL_NOT_MET"},
	{domain.ErrGoalMetCannotRefund, http.StatusConflict, "GOAL_MET_CANNOT_REFUND"},
	{domain.ErrAlreadyClaimed, http.StatusConflict, "ALREADY_CLAIMED"},
	{domain.ErrArithmeticOverflow, http.StatusConflict, "ARITHMETIC_OVERFLOW"},
}

// writeError maps a use case error onto a problem response. Unknown errors
// are logged and reported as 500 without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var terr *domain.TransferError
	if errors.As(err, &terr) {
		writeProblem(w, http.StatusPaymentRequired, "TRANSFER_FAILED", "transfer failed", terr.Error())
		return
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			writeProblem(w, m.status, m.code, http.StatusText(m.status), m.err.Error())
			return
		}
	}
	h.logger.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	writeProblem(w, http.StatusInternalServerError, "INTERNAL", "internal error", "")
}
