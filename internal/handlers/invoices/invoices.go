package invoices

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/internal/dto"
	"github.com/GlebRadaev/frontdesk/pkg/utils"
)

//go:generate mockgen -source=invoices.go -destination=mock_invoices.go -package=invoices
type Service interface {
	Overview(ctx context.Context) (*domain.InvoiceOverview, error)
}

type InvoiceHandler struct {
	invoiceService Service
}

func New(invoiceService Service) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// Overview godoc
//
//	@Summary		Outstanding invoices overview
//	@Description	All unpaid and overdue invoices, overdue first by days late, then unpaid by due date.
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.InvoiceOverviewResponseDTO
//	@Failure		503	{object}	utils.Response	"ERP unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/invoices/overview [get]
func (h *InvoiceHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.invoiceService.Overview(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUpstreamTimeout):
			utils.RespondWithError(w, http.StatusGatewayTimeout, "ERP did not answer in time")
		case errors.Is(err, domain.ErrUpstreamUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "ERP unavailable")
		default:
			zap.L().Error("invoice overview failed", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.InvoiceOverviewResponseDTO{
		Overdue: items(ov.Overdue),
		Unpaid:  items(ov.Unpaid),
		Totals: dto.OverviewTotalsDTO{
			Overdue: ov.OverdueTotal.InexactFloat64(),
			Unpaid:  ov.UnpaidTotal.InexactFloat64(),
			Total:   ov.Total.InexactFloat64(),
		},
	})
}

func items(in []domain.InvoiceOverviewItem) []dto.OverviewInvoiceDTO {
	out := make([]dto.OverviewInvoiceDTO, 0, len(in))
	for _, it := range in {
		inv := it.Invoice
		item := dto.OverviewInvoiceDTO{
			InvoiceID:    inv.ID,
			Customer:     inv.Customer,
			CustomerName: inv.CustomerName,
			Total:        inv.Total.InexactFloat64(),
			Outstanding:  inv.Outstanding.InexactFloat64(),
			Status:       inv.Status,
			Description:  inv.Description(),
			DaysOverdue:  it.DaysOverdue,
			DaysUntilDue: it.DaysUntilDue,
		}
		if !inv.DueDate.IsZero() {
			item.DueDate = inv.DueDate.Format(time.DateOnly)
		}
		out = append(out, item)
	}
	return out
}
