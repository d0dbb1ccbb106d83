package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/internal/dto"
	"github.com/GlebRadaev/frontdesk/pkg/auth"
	"github.com/GlebRadaev/frontdesk/pkg/utils"
)

const sessionExpiredMessage = "Session expired, please scan your card again"

//go:generate mockgen -source=payment.go -destination=mock_payment.go -package=payment
type Service interface {
	Begin(ctx context.Context, rfid string) (*domain.PaymentSession, error)
	GetSession(ctx context.Context, id string) (*domain.PaymentSession, error)
	EndSession(ctx context.Context, id string)
	AuthorizeStaff(ctx context.Context, rfid string) (*domain.Staff, error)
	Submit(ctx context.Context, req domain.SubmitRequest) (*domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	Attempts(ctx context.Context, status string, limit int) ([]domain.PaymentAttempt, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Scan godoc
//
//	@Summary		Scan a customer card
//	@Description	Resolve the customer (and family payer) behind an RFID card and open a payment session with the payer's outstanding invoices.
//	@Tags			Payment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ScanRequestDTO	true	"Scanned card"
//	@Success		200		{object}	dto.ScanResponseDTO
//	@Failure		400		{object}	utils.Response	"RFID input required"
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Failure		409		{object}	utils.Response	"Card assigned to more than one customer"
//	@Failure		503		{object}	utils.Response	"ERP unavailable"
//	@Router			/api/v1/payment/scan [post]
func (h *PaymentHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req dto.ScanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rfid := strings.TrimSpace(req.RFID)
	if rfid == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "RFID input required")
		return
	}

	sess, err := h.paymentService.Begin(r.Context(), rfid)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	bc := domain.BillingContext{Scanned: sess.ScannedMember, Payer: sess.Payer, FamilyGroup: sess.FamilyGroup}
	utils.RespondWithJSON(w, http.StatusOK, dto.ScanResponseDTO{
		Status:        "success",
		SessionID:     sess.ID,
		CustomerType:  bc.CustomerType(),
		ScannedMember: payerDTO(sess.ScannedMember),
		Payer:         payerDTO(sess.Payer),
		FamilyGroup:   familyGroupDTO(sess.FamilyGroup),
		Invoices:      invoiceDTOs(sess.Invoices),
	})
}

// GetSession godoc
//
//	@Summary		Get a payment session
//	@Tags			Payment
//	@Security		BearerAuth
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session id"
//	@Success		200			{object}	dto.SessionResponseDTO
//	@Failure		404			{object}	utils.Response	"Session expired"
//	@Router			/api/v1/payment/session/{sessionID} [get]
func (h *PaymentHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.paymentService.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{
		SessionID:     sess.ID,
		Payer:         payerDTO(sess.Payer),
		ScannedMember: payerDTO(sess.ScannedMember),
		FamilyGroup:   familyGroupDTO(sess.FamilyGroup),
		Invoices:      invoiceDTOs(sess.Invoices),
		CreatedAt:     sess.CreatedAt.Format(time.RFC3339),
	})
}

// EndSession godoc
//
//	@Summary		Abandon a payment session
//	@Tags			Payment
//	@Security		BearerAuth
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session id"
//	@Success		200			{object}	utils.Response
//	@Router			/api/v1/payment/session/{sessionID} [delete]
func (h *PaymentHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	h.paymentService.EndSession(r.Context(), chi.URLParam(r, "sessionID"))
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Status: "success", Message: "session closed"})
}

// AuthorizeStaff godoc
//
//	@Summary		Check a staff card
//	@Description	Verify that the staff card may take money. Nothing is recorded.
//	@Tags			Payment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AuthorizeStaffRequestDTO	true	"Staff card"
//	@Success		200		{object}	dto.AuthorizeStaffResponseDTO
//	@Failure		400		{object}	utils.Response			"Staff RFID required"
//	@Failure		403		{object}	dto.StaffRejectedDTO	"Staff not authorized"
//	@Router			/api/v1/payment/authorize-staff [post]
func (h *PaymentHandler) AuthorizeStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthorizeStaffRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.StaffRFID) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Staff RFID required")
		return
	}

	staff, err := h.paymentService.AuthorizeStaff(r.Context(), strings.TrimSpace(req.StaffRFID))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			utils.RespondWithJSON(w, http.StatusForbidden, dto.StaffRejectedDTO{Verified: false, Error: err.Error()})
			return
		}
		respondWithServiceError(w, r, err)
		return
	}

	roles := staff.Roles
	if roles == nil {
		roles = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthorizeStaffResponseDTO{
		Status:     "success",
		Authorized: true,
		StaffName:  staff.FullName,
		Roles:      roles,
	})
}

// ProcessPayment godoc
//
//	@Summary		Record a cash payment
//	@Description	Allocate a cash amount over the session's invoices and record it in the ERP under the staff member's authority.
//	@Tags			Payment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProcessPaymentRequestDTO	true	"Payment"
//	@Success		200		{object}	dto.ProcessPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed request"
//	@Failure		403		{object}	utils.Response	"Staff or invoice not authorized"
//	@Failure		404		{object}	utils.Response	"Session expired"
//	@Failure		422		{object}	utils.Response	"Amounts do not add up"
//	@Failure		502		{object}	utils.Response	"ERP rejected the payment"
//	@Router			/api/v1/payment/process-payment [post]
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.ProcessPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SessionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	if strings.TrimSpace(req.StaffRFID) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Staff RFID required")
		return
	}

	p, err := h.paymentService.Submit(r.Context(), domain.SubmitRequest{
		SessionID:  req.SessionID,
		StaffRFID:  strings.TrimSpace(req.StaffRFID),
		InvoiceIDs: req.Invoices,
		Amounts:    req.InvoiceAmounts,
		Total:      req.TotalAmount,
		Notes:      req.Notes,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProcessPaymentResponseDTO{
		Status:    "success",
		PaymentID: p.ID,
		Amount:    p.Total.InexactFloat64(),
		Currency:  p.Currency,
	})
}

// GetPayment godoc
//
//	@Summary		Get payment details
//	@Tags			Payment
//	@Security		BearerAuth
//	@Produce		json
//	@Param			paymentID	path		string	true	"Payment Entry name"
//	@Success		200			{object}	dto.PaymentDetailsDTO
//	@Failure		404			{object}	utils.Response	"Payment not found"
//	@Router			/api/v1/payment/{paymentID} [get]
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	p, err := h.paymentService.GetPayment(r.Context(), chi.URLParam(r, "paymentID"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	allocs := make([]dto.AllocationDTO, 0, len(p.Allocations))
	for _, a := range p.Allocations {
		allocs = append(allocs, dto.AllocationDTO{InvoiceID: a.InvoiceID, Amount: a.Amount.InexactFloat64()})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentDetailsDTO{
		PaymentID:    p.ID,
		Customer:     p.Payer,
		CustomerName: p.PayerName,
		Amount:       p.Total.InexactFloat64(),
		Currency:     p.Currency,
		Date:         formatDate(p.PostingDate),
		ReferenceNo:  p.ReferenceNo,
		AuthorizedBy: p.Collector(),
		Notes:        p.Notes,
		Submitted:    p.Submitted,
		Allocations:  allocs,
	})
}

// GetAttempts godoc
//
//	@Summary		List journaled payment attempts
//	@Tags			Payment
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"pending, draft, submitted, rolled_back, orphaned or reconciled"
//	@Param			limit	query		int		false	"Maximum rows, default 50"
//	@Success		200		{array}		dto.PaymentAttemptDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Router			/api/v1/payment/attempts [get]
func (h *PaymentHandler) GetAttempts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	attempts, err := h.paymentService.Attempts(r.Context(), r.URL.Query().Get("status"), limit)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	response := make([]dto.PaymentAttemptDTO, len(attempts))
	for i, a := range attempts {
		response[i] = dto.PaymentAttemptDTO{
			ID:        a.ID,
			SessionID: a.SessionID,
			Payer:     a.Payer,
			Amount:    a.Amount,
			Currency:  a.Currency,
			StaffUser: a.StaffUser,
			DraftName: a.DraftName,
			Status:    a.Status,
			Error:     a.Error,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
			UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, sessionExpiredMessage)
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorizedInvoice), errors.Is(err, domain.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrAmountMismatch), errors.Is(err, domain.ErrInvalidAllocation):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrDuplicateRFID):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrSubmissionFailed):
		zap.L().Error("payment submission failed", zap.String("kiosk", auth.KioskID(r.Context())), zap.Error(err))
		utils.RespondWithError(w, http.StatusBadGateway, "Payment could not be recorded, nothing was charged")
	case errors.Is(err, domain.ErrUpstreamTimeout):
		utils.RespondWithError(w, http.StatusGatewayTimeout, "ERP did not answer in time")
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "ERP unavailable")
	default:
		zap.L().Error("payment request failed", zap.String("path", r.URL.Path), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func payerDTO(p domain.Payer) dto.PayerDTO {
	return dto.PayerDTO{ID: p.ID, Name: p.Name, Email: p.Email, Phone: p.Phone}
}

func familyGroupDTO(g *domain.FamilyGroup) *dto.FamilyGroupDTO {
	if g == nil {
		return nil
	}
	members := g.Members
	if members == nil {
		members = []string{}
	}
	return &dto.FamilyGroupDTO{ID: g.ID, PrimaryPayer: g.PrimaryPayer, PackageType: g.PackageType, Members: members}
}

func invoiceDTOs(invoices []domain.Invoice) []dto.InvoiceDTO {
	out := make([]dto.InvoiceDTO, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.InvoiceDTO{
			InvoiceID:   inv.ID,
			Customer:    inv.Customer,
			PostingDate: formatDate(inv.PostingDate),
			DueDate:     formatDate(inv.DueDate),
			Total:       inv.Total.InexactFloat64(),
			Outstanding: inv.Outstanding.InexactFloat64(),
			Status:      inv.Status,
			Description: inv.Description(),
		})
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
