package staffrepo

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/internal/erp"
)

const userDoctype = "User"

type roleDoc struct {
	Role string `json:"role"`
}

type userDoc struct {
	Name     string    `json:"name"`
	FullName string    `json:"full_name"`
	Enabled  int       `json:"enabled"`
	Roles    []roleDoc `json:"roles"`
}

func (d userDoc) toDomain() domain.Staff {
	s := domain.Staff{
		UserID:   d.Name,
		FullName: d.FullName,
		Enabled:  d.Enabled == 1,
	}
	if s.FullName == "" {
		s.FullName = d.Name
	}
	for _, r := range d.Roles {
		if r.Role != "" {
			s.Roles = append(s.Roles, r.Role)
		}
	}
	return s
}

type Repository struct {
	erp erp.Gateway
}

func New(gateway erp.Gateway) *Repository {
	return &Repository{
		erp: gateway,
	}
}

// FindByRFID returns the users carrying the card tag, enabled or not, without roles.
// Disabled accounts are kept so callers can tell "unknown card" from "disabled account".
func (r *Repository) FindByRFID(ctx context.Context, tag string) ([]domain.Staff, error) {
	var docs []userDoc
	err := r.erp.List(ctx, userDoctype, erp.ListQuery{
		Fields:  []string{"name", "full_name", "enabled"},
		Filters: []erp.Filter{erp.Eq("custom_user_rfid", tag)},
		Limit:   2,
	}, &docs)
	if err != nil {
		zap.L().Error("failed to search user by rfid", zap.Error(err))
		return nil, err
	}

	staff := make([]domain.Staff, 0, len(docs))
	for _, d := range docs {
		staff = append(staff, d.toDomain())
	}
	return staff, nil
}

// Get loads a user with the role table. The resource endpoint hides child tables from
// API users without System Manager, so the whitelisted frappe.client.get is used instead.
func (r *Repository) Get(ctx context.Context, userID string) (*domain.Staff, error) {
	params := url.Values{}
	params.Set("doctype", userDoctype)
	params.Set("name", userID)

	var doc userDoc
	if err := r.erp.Call(ctx, "frappe.client.get", params, &doc); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		zap.L().Error("failed to get user", zap.String("user", userID), zap.Error(err))
		return nil, err
	}
	if doc.Name == "" {
		return nil, nil
	}
	staff := doc.toDomain()
	return &staff, nil
}

// FullName resolves a user id to a display name, falling back to the id itself.
func (r *Repository) FullName(ctx context.Context, userID string) (string, error) {
	var doc userDoc
	err := r.erp.Get(ctx, userDoctype, userID, &doc)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return userID, nil
		}
		return "", err
	}
	if doc.FullName == "" {
		return userID, nil
	}
	return doc.FullName, nil
}
