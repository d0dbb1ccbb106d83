package handover

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/internal/dto"
	"github.com/GlebRadaev/frontdesk/internal/service/handoverservice"
	"github.com/GlebRadaev/frontdesk/pkg/utils"
)

//go:generate mockgen -source=handover.go -destination=mock_handover.go -package=handover
type Service interface {
	ListPending(ctx context.Context) ([]domain.PaymentView, error)
	Confirm(ctx context.Context, paymentID, treasurerRFID, notes string) (*domain.HandoverRecord, error)
	History(ctx context.Context, days int) ([]domain.PaymentView, error)
}

type HandoverHandler struct {
	handoverService Service
}

func New(handoverService Service) *HandoverHandler {
	return &HandoverHandler{
		handoverService: handoverService,
	}
}

// Confirm godoc
//
//	@Summary		Confirm a cash handover
//	@Description	A treasurer takes custody of the cash of one payment. Each payment is handed over once.
//	@Tags			Handover
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmHandoverRequestDTO	true	"Handover"
//	@Success		200		{object}	dto.ConfirmHandoverResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed request"
//	@Failure		403		{object}	utils.Response	"Not allowed to take custody"
//	@Failure		404		{object}	utils.Response	"Payment not found"
//	@Failure		409		{object}	utils.Response	"Payment already transferred"
//	@Failure		502		{object}	utils.Response	"ERP rejected the handover"
//	@Router			/api/v1/payment/handover/confirm [post]
func (h *HandoverHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmHandoverRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PaymentID == "" || strings.TrimSpace(req.TreasurerRFID) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "payment_id and treasurer_rfid are required")
		return
	}

	rec, err := h.handoverService.Confirm(r.Context(), req.PaymentID, strings.TrimSpace(req.TreasurerRFID), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrAlreadyTransferred):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithUpstreamError(w, err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmHandoverResponseDTO{
		Status:     string(domain.HandoverTransferred),
		HandoverID: rec.ID,
		PaymentID:  rec.PaymentID,
		Message:    fmt.Sprintf("Payment successfully transferred to %s", rec.TransferredToName),
	})
}

// Pending godoc
//
//	@Summary		List payments awaiting handover
//	@Tags			Handover
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentSummaryDTO
//	@Failure		503	{object}	utils.Response	"ERP unavailable"
//	@Router			/api/v1/payment/handover/pending [get]
func (h *HandoverHandler) Pending(w http.ResponseWriter, r *http.Request) {
	views, err := h.handoverService.ListPending(r.Context())
	if err != nil {
		respondWithUpstreamError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summaries(views))
}

// History godoc
//
//	@Summary		Custody history
//	@Description	Payments of the last days with their handover state, plus handovers of older payments.
//	@Tags			Handover
//	@Security		BearerAuth
//	@Produce		json
//	@Param			days	query		int	false	"Window in days, 1..366, default 30"
//	@Success		200		{array}		dto.PaymentSummaryDTO
//	@Failure		400		{object}	utils.Response	"Invalid days"
//	@Router			/api/v1/payment/handover/history [get]
func (h *HandoverHandler) History(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, handoverservice.ErrInvalidDays.Error())
			return
		}
		days = n
		if days == 0 {
			// an explicit zero is out of range, not a request for the default
			days = -1
		}
	}

	views, err := h.handoverService.History(r.Context(), days)
	if err != nil {
		if errors.Is(err, handoverservice.ErrInvalidDays) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithUpstreamError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summaries(views))
}

func respondWithUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSubmissionFailed):
		zap.L().Error("handover submission failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadGateway, "Handover could not be recorded")
	case errors.Is(err, domain.ErrUpstreamTimeout):
		utils.RespondWithError(w, http.StatusGatewayTimeout, "ERP did not answer in time")
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "ERP unavailable")
	default:
		zap.L().Error("handover request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func summaries(views []domain.PaymentView) []dto.PaymentSummaryDTO {
	out := make([]dto.PaymentSummaryDTO, 0, len(views))
	for _, v := range views {
		p := v.Payment
		s := dto.PaymentSummaryDTO{
			PaymentID:    p.ID,
			CustomerName: p.PayerName,
			Amount:       p.Total.InexactFloat64(),
			Currency:     p.Currency,
			ReceivedBy:   v.ReceivedByName,
			ReceivedByID: p.Collector(),
			ReceivedAt:   formatTime(p.CreatedAt),
			ReferenceNo:  p.ReferenceNo,
			Invoices:     v.InvoiceIDs,
			Status:       string(v.Status),
		}
		if !p.PostingDate.IsZero() {
			s.Date = p.PostingDate.Format(time.DateOnly)
		}
		if s.Invoices == nil {
			s.Invoices = []string{}
		}
		if rec := v.Handover; rec != nil {
			if rec.ReceivedBy != "" {
				s.ReceivedByID = rec.ReceivedBy
			}
			s.HandoverID = rec.ID
			s.TransferredTo = v.TransferredToName
			s.TransferredToID = rec.TransferredTo
			s.TransferredAt = formatTime(rec.TransferredAt)
			s.HandoverNotes = rec.Notes
		}
		out = append(out, s)
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
