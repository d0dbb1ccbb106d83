package service

import (
	"github.com/GlebRadaev/frontdesk/internal/config"
	"github.com/GlebRadaev/frontdesk/internal/handlers/handover"
	"github.com/GlebRadaev/frontdesk/internal/handlers/invoices"
	"github.com/GlebRadaev/frontdesk/internal/handlers/payment"
	"github.com/GlebRadaev/frontdesk/internal/repo"
	"github.com/GlebRadaev/frontdesk/internal/service/directoryservice"
	"github.com/GlebRadaev/frontdesk/internal/service/handoverservice"
	"github.com/GlebRadaev/frontdesk/internal/service/invoiceservice"
	"github.com/GlebRadaev/frontdesk/internal/service/paymentservice"
	"github.com/GlebRadaev/frontdesk/internal/service/staffservice"
	"github.com/GlebRadaev/frontdesk/pkg/metrics"
)

type Services struct {
	PaymentService  payment.Service
	HandoverService handover.Service
	InvoiceService  invoices.Service
}

func New(repos *repo.Repositories, sessions paymentservice.Sessions, cfg *config.Config, m *metrics.Metrics) *Services {
	directoryService := directoryservice.New(repos.Customers)
	staffService := staffservice.New(repos.Staff, cfg.Roles)
	invoiceService := invoiceservice.New(repos.Invoices)

	paymentService := paymentservice.New(directoryService, invoiceService, staffService, sessions,
		repos.Payments, repos.Attempts, cfg.Currency, m)
	handoverService := handoverservice.New(repos.Payments, repos.Handovers, repos.Staff, staffService, m)

	return &Services{
		PaymentService:  paymentService,
		HandoverService: handoverService,
		InvoiceService:  invoiceService,
	}
}
