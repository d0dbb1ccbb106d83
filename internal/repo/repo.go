package repo

import (
	"github.com/GlebRadaev/frontdesk/internal/erp"
	"github.com/GlebRadaev/frontdesk/internal/pg"
	"github.com/GlebRadaev/frontdesk/internal/reconcile"
	attemptrepo "github.com/GlebRadaev/frontdesk/internal/repo/attempt-repo"
	customerrepo "github.com/GlebRadaev/frontdesk/internal/repo/customer-repo"
	handoverrepo "github.com/GlebRadaev/frontdesk/internal/repo/handover-repo"
	invoicerepo "github.com/GlebRadaev/frontdesk/internal/repo/invoice-repo"
	paymentrepo "github.com/GlebRadaev/frontdesk/internal/repo/payment-repo"
	staffrepo "github.com/GlebRadaev/frontdesk/internal/repo/staff-repo"
	"github.com/GlebRadaev/frontdesk/internal/service/directoryservice"
	"github.com/GlebRadaev/frontdesk/internal/service/handoverservice"
	"github.com/GlebRadaev/frontdesk/internal/service/invoiceservice"
	"github.com/GlebRadaev/frontdesk/internal/service/paymentservice"
)

// Journal is the attempt journal as used by capture and reconciliation.
type Journal interface {
	paymentservice.Journal
	reconcile.Journal
}

type Repositories struct {
	Customers directoryservice.Repo
	Staff     *staffrepo.Repository
	Invoices  invoiceservice.Repo
	Payments  *paymentrepo.Repository
	Handovers handoverservice.HandoverRepo
	Attempts  Journal
}

// New wires the ERP-backed repositories. Without conn the attempt journal is a no-op.
func New(gateway erp.Gateway, settings paymentrepo.Settings, conn pg.Database, txManager pg.TXManager) *Repositories {
	var attempts Journal = attemptrepo.NopRepository{}
	if conn != nil {
		attempts = attemptrepo.New(conn, txManager)
	}

	return &Repositories{
		Customers: customerrepo.New(gateway),
		Staff:     staffrepo.New(gateway),
		Invoices:  invoicerepo.New(gateway),
		Payments:  paymentrepo.New(gateway, settings),
		Handovers: handoverrepo.New(gateway),
		Attempts:  attempts,
	}
}
