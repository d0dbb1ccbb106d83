package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/frontdesk/docs"
	handoverhandlers "github.com/GlebRadaev/frontdesk/internal/handlers/handover"
	invoicehandlers "github.com/GlebRadaev/frontdesk/internal/handlers/invoices"
	paymenthandlers "github.com/GlebRadaev/frontdesk/internal/handlers/payment"
	"github.com/GlebRadaev/frontdesk/internal/service"
	"github.com/GlebRadaev/frontdesk/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers
type PaymentHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	EndSession(w http.ResponseWriter, r *http.Request)
	AuthorizeStaff(w http.ResponseWriter, r *http.Request)
	ProcessPayment(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	GetAttempts(w http.ResponseWriter, r *http.Request)
}

type HandoverHandler interface {
	Confirm(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PaymentHandler  PaymentHandler
	HandoverHandler HandoverHandler
	InvoiceHandler  InvoiceHandler

	jwtService auth.JWTServiceInterface
	metrics    http.Handler
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, metrics http.Handler) *Handlers {
	return &Handlers{
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		HandoverHandler: handoverhandlers.New(s.HandoverService),
		InvoiceHandler:  invoicehandlers.New(s.InvoiceService),
		jwtService:      jwtService,
		metrics:         metrics,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(h.jwtService))

		r.Route("/payment", func(r chi.Router) {
			r.Post("/scan", h.PaymentHandler.Scan)
			r.Get("/session/{sessionID}", h.PaymentHandler.GetSession)
			r.Delete("/session/{sessionID}", h.PaymentHandler.EndSession)
			r.Post("/authorize-staff", h.PaymentHandler.AuthorizeStaff)
			r.Post("/process-payment", h.PaymentHandler.ProcessPayment)
			r.Get("/attempts", h.PaymentHandler.GetAttempts)

			r.Route("/handover", func(r chi.Router) {
				r.Post("/confirm", h.HandoverHandler.Confirm)
				r.Get("/pending", h.HandoverHandler.Pending)
				r.Get("/history", h.HandoverHandler.History)
			})

			r.Get("/{paymentID}", h.PaymentHandler.GetPayment)
		})
		r.Get("/invoices/overview", h.InvoiceHandler.Overview)
	})

	return r
}
