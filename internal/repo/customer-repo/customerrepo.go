package customerrepo

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/internal/erp"
)

const (
	customerDoctype    = "Customer"
	familyGroupDoctype = "Family Group"
)

type customerDoc struct {
	Name         string `json:"name"`
	CustomerName string `json:"customer_name"`
	EmailID      string `json:"email_id"`
	MobileNo     string `json:"mobile_no"`
	RFID         string `json:"custom_customer_rfid"`
}

func (d customerDoc) toDomain() domain.Payer {
	name := d.CustomerName
	if name == "" {
		name = d.Name
	}
	return domain.Payer{
		ID:    d.Name,
		Name:  name,
		Email: d.EmailID,
		Phone: d.MobileNo,
		RFID:  d.RFID,
	}
}

type familyMemberDoc struct {
	Member string `json:"member"`
}

type familyGroupDoc struct {
	Name          string            `json:"name"`
	PrimaryPayer  string            `json:"primary_payer"`
	PackageType   string            `json:"package_type"`
	Status        string            `json:"status"`
	FamilyMembers []familyMemberDoc `json:"family_members"`
}

type Repository struct {
	erp erp.Gateway
}

func New(gateway erp.Gateway) *Repository {
	return &Repository{
		erp: gateway,
	}
}

// FindByRFID returns every customer whose card tag equals tag. At most two rows are fetched:
// enough to tell a unique match from a duplicate.
func (r *Repository) FindByRFID(ctx context.Context, tag string) ([]domain.Payer, error) {
	var docs []customerDoc
	err := r.erp.List(ctx, customerDoctype, erp.ListQuery{
		Fields:  []string{"name", "customer_name", "email_id", "mobile_no", "custom_customer_rfid"},
		Filters: []erp.Filter{erp.Eq("custom_customer_rfid", tag)},
		Limit:   2,
	}, &docs)
	if err != nil {
		zap.L().Error("failed to search customer by rfid", zap.Error(err))
		return nil, err
	}

	payers := make([]domain.Payer, 0, len(docs))
	for _, d := range docs {
		payers = append(payers, d.toDomain())
	}
	return payers, nil
}

// FindByName loads a customer by document name. A missing customer yields nil, nil.
func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Payer, error) {
	var doc customerDoc
	err := r.erp.Get(ctx, customerDoctype, name, &doc)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		zap.L().Error("failed to get customer", zap.String("customer", name), zap.Error(err))
		return nil, err
	}
	if doc.Name == "" {
		return nil, nil
	}
	payer := doc.toDomain()
	return &payer, nil
}

// ActiveFamilyGroups lists the names of every active family group.
func (r *Repository) ActiveFamilyGroups(ctx context.Context) ([]string, error) {
	var docs []familyGroupDoc
	err := r.erp.List(ctx, familyGroupDoctype, erp.ListQuery{
		Fields:  []string{"name"},
		Filters: []erp.Filter{erp.Eq("status", "Active")},
	}, &docs)
	if err != nil {
		zap.L().Error("failed to list family groups", zap.Error(err))
		return nil, err
	}

	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names, nil
}

// FamilyGroup loads a group together with its member table. A missing group yields nil, nil.
func (r *Repository) FamilyGroup(ctx context.Context, name string) (*domain.FamilyGroup, error) {
	var doc familyGroupDoc
	err := r.erp.Get(ctx, familyGroupDoctype, name, &doc)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		zap.L().Error("failed to get family group", zap.String("group", name), zap.Error(err))
		return nil, err
	}

	group := &domain.FamilyGroup{
		ID:           doc.Name,
		PrimaryPayer: doc.PrimaryPayer,
		PackageType:  doc.PackageType,
		Members:      make([]string, 0, len(doc.FamilyMembers)),
	}
	for _, m := range doc.FamilyMembers {
		if m.Member != "" {
			group.Members = append(group.Members, m.Member)
		}
	}
	return group, nil
}
