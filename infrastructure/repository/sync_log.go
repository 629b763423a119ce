package repository

//go:generate mockgen -source=sync_log.go -destination=mocks/sync_log.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-mirror-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

const syncLogsTable = "sync_logs"

var ErrSyncLogAlreadyCompleted = errors.New("sync log already completed")

type SyncLogRepository interface {
	CreateSyncLog(ctx context.Context, log *domain.SyncLog) error
	// CompleteSyncLog grava o estado final. Só atualiza registros IN_PROGRESS.
	CompleteSyncLog(ctx context.Context, log *domain.SyncLog) error
	GetLatestSyncLog(ctx context.Context, userID int) (*domain.SyncLog, error)
}

type syncLogRepository struct {
	conn postgres.Executor
}

func NewSyncLogRepository(conn postgres.Executor) SyncLogRepository {
	return &syncLogRepository{
		conn: conn,
	}
}

func (r *syncLogRepository) CreateSyncLog(ctx context.Context, log *domain.SyncLog) error {
	sqlQuery, args, err := squirrel.
		Insert(syncLogsTable).
		Columns("id", "user_id", "type", "status", "accounts_count", "ads_count", "started_at").
		Values(log.ID, log.UserID, log.Type, log.Status, log.AccountsCount, log.AdsCount, log.StartedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *syncLogRepository) CompleteSyncLog(ctx context.Context, log *domain.SyncLog) error {
	var errorText *string
	if log.Error != "" {
		errorText = &log.Error
	}

	sqlQuery, args, err := squirrel.
		Update(syncLogsTable).
		Set("status", log.Status).
		Set("accounts_count", log.AccountsCount).
		Set("ads_count", log.AdsCount).
		Set("error", errorText).
		Set("completed_at", log.CompletedAt).
		Where(squirrel.Eq{"id": log.ID, "status": domain.SyncStatusInProgress}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrSyncLogAlreadyCompleted
	}

	return nil
}

func (r *syncLogRepository) GetLatestSyncLog(ctx context.Context, userID int) (*domain.SyncLog, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "user_id", "type", "status", "accounts_count", "ads_count", "error", "started_at", "completed_at").
		From(syncLogsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("started_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	log := &domain.SyncLog{}
	var errorText sql.NullString
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&log.ID,
		&log.UserID,
		&log.Type,
		&log.Status,
		&log.AccountsCount,
		&log.AdsCount,
		&errorText,
		&log.StartedAt,
		&log.CompletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	log.Error = errorText.String

	return log, nil
}
