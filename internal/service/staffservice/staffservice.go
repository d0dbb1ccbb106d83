package staffservice

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/config"
	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/pkg/logger"
)

//go:generate mockgen -source=staffservice.go -destination=mock_staffservice.go -package=staffservice
type Repo interface {
	FindByRFID(ctx context.Context, tag string) ([]domain.Staff, error)
	Get(ctx context.Context, userID string) (*domain.Staff, error)
}

// Service verifies staff cards. It never caches: every money movement re-reads the user.
type Service struct {
	repo  Repo
	roles config.Roles
}

func New(repo Repo, roles config.Roles) *Service {
	return &Service{
		repo:  repo,
		roles: roles,
	}
}

// Verify resolves rfid to an enabled user holding one of allowed. Any doubt is a refusal.
func (s *Service) Verify(ctx context.Context, rfid string, allowed []string) (*domain.Staff, error) {
	rfid = strings.TrimSpace(rfid)
	if rfid == "" {
		return nil, domain.ErrInvalidStaffRFID
	}

	matches, err := s.repo.FindByRFID(ctx, rfid)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		zap.L().Info("unknown staff rfid", logger.RFID(rfid))
		return nil, domain.ErrInvalidStaffRFID
	}
	if len(matches) > 1 {
		zap.L().Warn("staff rfid assigned to several users", logger.RFID(rfid))
		return nil, domain.ErrInvalidStaffRFID
	}
	if !matches[0].Enabled {
		zap.L().Info("disabled staff account", zap.String("user", matches[0].UserID))
		return nil, domain.ErrStaffDisabled
	}

	staff, err := s.repo.Get(ctx, matches[0].UserID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrInvalidStaffRFID
	}
	if !staff.Enabled {
		return nil, domain.ErrStaffDisabled
	}
	if !staff.HasAnyRole(allowed) {
		zap.L().Info("staff lacks required role",
			zap.String("user", staff.UserID), zap.Strings("roles", staff.Roles), zap.Strings("allowed", allowed))
		return nil, domain.ErrMissingRole
	}
	return staff, nil
}

// AuthorizeMoneyHandling checks that rfid may take cash from a member.
func (s *Service) AuthorizeMoneyHandling(ctx context.Context, rfid string) (*domain.Staff, error) {
	return s.Verify(ctx, rfid, s.roles.MoneyHandling)
}

// AuthorizeCustody checks that rfid may receive cash collected by others.
func (s *Service) AuthorizeCustody(ctx context.Context, rfid string) (*domain.Staff, error) {
	return s.Verify(ctx, rfid, s.roles.Custody)
}
