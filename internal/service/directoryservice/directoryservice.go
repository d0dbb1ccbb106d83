package directoryservice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/pkg/logger"
)

//go:generate mockgen -source=directoryservice.go -destination=mock_directoryservice.go -package=directoryservice
type Repo interface {
	FindByRFID(ctx context.Context, tag string) ([]domain.Payer, error)
	FindByName(ctx context.Context, name string) (*domain.Payer, error)
	ActiveFamilyGroups(ctx context.Context) ([]string, error)
	FamilyGroup(ctx context.Context, name string) (*domain.FamilyGroup, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) ResolveByRFID(ctx context.Context, tag string) (*domain.Payer, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, domain.ErrPayerNotFound
	}

	payers, err := s.repo.FindByRFID(ctx, tag)
	if err != nil {
		return nil, err
	}
	switch len(payers) {
	case 0:
		zap.L().Info("no customer for rfid", logger.RFID(tag))
		return nil, domain.ErrPayerNotFound
	case 1:
		return &payers[0], nil
	default:
		zap.L().Warn("rfid assigned to several customers",
			logger.RFID(tag), zap.String("first", payers[0].ID), zap.String("second", payers[1].ID))
		return nil, fmt.Errorf("customer card: %w", domain.ErrDuplicateRFID)
	}
}

func (s *Service) ResolveByName(ctx context.Context, name string) (*domain.Payer, error) {
	payer, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if payer == nil {
		return nil, domain.ErrPayerNotFound
	}
	return payer, nil
}

// ResolveFamily returns the active family group payerID belongs to, as primary payer or as
// member, or nil when it belongs to none. Groups are scanned one by one.
func (s *Service) ResolveFamily(ctx context.Context, payerID string) (*domain.FamilyGroup, error) {
	names, err := s.repo.ActiveFamilyGroups(ctx)
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		group, err := s.repo.FamilyGroup(ctx, name)
		if err != nil {
			return nil, err
		}
		if group.Contains(payerID) {
			return group, nil
		}
	}
	return nil, nil
}

// ResolveBillingContext resolves a scanned card to the member and to the customer who
// pays for them. A dependent's bills go to the group's primary payer.
func (s *Service) ResolveBillingContext(ctx context.Context, tag string) (*domain.BillingContext, error) {
	scanned, err := s.ResolveByRFID(ctx, tag)
	if err != nil {
		return nil, err
	}

	group, err := s.ResolveFamily(ctx, scanned.ID)
	if err != nil {
		return nil, err
	}

	bc := &domain.BillingContext{
		Scanned:     *scanned,
		Payer:       *scanned,
		FamilyGroup: group,
	}
	if group == nil || group.IsPrimary(scanned.ID) || group.PrimaryPayer == "" {
		return bc, nil
	}

	primary, err := s.ResolveByName(ctx, group.PrimaryPayer)
	if err != nil {
		zap.L().Error("primary payer of family group not found",
			zap.String("group", group.ID), zap.String("primary_payer", group.PrimaryPayer), zap.Error(err))
		return nil, err
	}
	bc.Payer = *primary
	return bc, nil
}
