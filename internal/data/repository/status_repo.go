package repository

import (
	"context"
	"fmt"

	"goldentouch-booking/internal/data/entity"
	"goldentouch-booking/pkg/database"

	"go.uber.org/zap"
)

type StatusCheckRepository interface {
	Create(ctx context.Context, check *entity.StatusCheck) error
	FindAll(ctx context.Context, limit int) ([]entity.StatusCheck, error)
}

type statusCheckRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStatusCheckRepository(db database.PgxIface, log *zap.Logger) StatusCheckRepository {
	return &statusCheckRepository{
		db:  db,
		log: log.With(zap.String("repository", "status_check")),
	}
}

func (r *statusCheckRepository) Create(ctx context.Context, check *entity.StatusCheck) error {
	query := `INSERT INTO status_checks (id, client_name, timestamp) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, check.ID, check.ClientName, formatTimestamp(check.Timestamp))
	if err != nil {
		r.log.Error("Failed to create status check",
			zap.Error(err),
			zap.String("id", check.ID),
		)
		return fmt.Errorf("failed to create status check: %w", err)
	}

	return nil
}

func (r *statusCheckRepository) FindAll(ctx context.Context, limit int) ([]entity.StatusCheck, error) {
	query := `SELECT id, client_name, timestamp FROM status_checks ORDER BY timestamp DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to list status checks", zap.Error(err))
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	defer rows.Close()

	checks := []entity.StatusCheck{}
	for rows.Next() {
		var (
			check entity.StatusCheck
			ts    string
		)
		if err := rows.Scan(&check.ID, &check.ClientName, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan status check: %w", err)
		}
		if check.Timestamp, err = parseTimestamp(ts); err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read status checks: %w", err)
	}

	return checks, nil
}
