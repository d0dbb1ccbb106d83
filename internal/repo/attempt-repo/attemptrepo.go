package attemptrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/internal/pg"
)

const attemptColumns = "id, session_id, payer, amount, currency, staff_user, draft_name, status, error, created_at, updated_at"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, a *domain.PaymentAttempt) (int, error) {
	query := `
        INSERT INTO payment_attempts (session_id, payer, amount, currency, staff_user, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, a.SessionID, a.Payer, a.Amount, a.Currency, a.StaffUser, a.Status).Scan(&id)
	if err != nil {
		zap.L().Error("can't create payment attempt", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// UpdateStatus moves an attempt to status. Empty draftName or errMsg keep the stored values.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status, draftName, errMsg string) error {
	query := `
        UPDATE payment_attempts
        SET status = $1,
            draft_name = COALESCE(NULLIF($2, ''), draft_name),
            error = COALESCE(NULLIF($3, ''), error),
            updated_at = NOW()
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, status, draftName, errMsg, id)
	if err != nil {
		zap.L().Error("can't update payment attempt", zap.Int("attempt", id), zap.Error(err))
		return err
	}
	return nil
}

// FindByStatus lists attempts oldest first. An empty status lists every attempt.
func (r *Repository) FindByStatus(ctx context.Context, status string, limit int) ([]domain.PaymentAttempt, error) {
	query := `
        SELECT ` + attemptColumns + `
        FROM payment_attempts
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, status, limit)
	if err != nil {
		zap.L().Error("can't get payment attempts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var attempts []domain.PaymentAttempt
	for rows.Next() {
		var a domain.PaymentAttempt
		err := rows.Scan(&a.ID, &a.SessionID, &a.Payer, &a.Amount, &a.Currency, &a.StaffUser,
			&a.DraftName, &a.Status, &a.Error, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan payment attempt row", zap.Error(err))
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Transition moves an attempt from one status to another under a row lock. It reports false
// when the attempt is missing or no longer in the from status.
func (r *Repository) Transition(ctx context.Context, id int, from, to string) (bool, error) {
	moved := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var current string
		err := r.db.QueryRow(ctx, "SELECT status FROM payment_attempts WHERE id = $1 FOR UPDATE", id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("can't lock payment attempt", zap.Int("attempt", id), zap.Error(err))
			return err
		}
		if current != from {
			return nil
		}
		_, err = r.db.Exec(ctx, "UPDATE payment_attempts SET status = $1, updated_at = NOW() WHERE id = $2", to, id)
		if err != nil {
			zap.L().Error("can't transition payment attempt", zap.Int("attempt", id), zap.Error(err))
			return err
		}
		moved = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return moved, nil
}

// NopRepository stands in for the journal when no database is configured.
type NopRepository struct{}

func (NopRepository) Create(context.Context, *domain.PaymentAttempt) (int, error) {
	return 0, nil
}

func (NopRepository) UpdateStatus(context.Context, int, string, string, string) error {
	return nil
}

func (NopRepository) FindByStatus(context.Context, string, int) ([]domain.PaymentAttempt, error) {
	return nil, nil
}

func (NopRepository) Transition(context.Context, int, string, string) (bool, error) {
	return false, nil
}
