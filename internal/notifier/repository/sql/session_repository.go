package sql

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/YazzTTV/productif-notifier/internal/common/metrics"
	"github.com/YazzTTV/productif-notifier/internal/database"
	customerrors "github.com/YazzTTV/productif-notifier/internal/domain/errors"
	"github.com/YazzTTV/productif-notifier/internal/domain/models"
	"github.com/YazzTTV/productif-notifier/pkg/txs"
)

type SessionRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewSessionRepository(db *database.PostgresDB) *SessionRepository {
	return &SessionRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SessionRepository) ListActiveSessions(ctx context.Context) (_ []*models.FocusSession, err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery("list_active_sessions", err, time.Since(start)) }()

	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select(
		"id", "user_id", "started_at", "planned_minutes", "status",
		"completed_at", "actual_minutes", "created_at",
	).From("focus_sessions").
		Where(sq.Eq{"status": string(models.SessionActive)}).
		OrderBy("started_at")

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "список активных сессий", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "список активных сессий", Cause: err}
	}
	defer rows.Close()

	var sessions []*models.FocusSession

	for rows.Next() {
		var session models.FocusSession

		var status string

		err = rows.Scan(
			&session.ID,
			&session.UserID,
			&session.StartedAt,
			&session.PlannedMinutes,
			&status,
			&session.CompletedAt,
			&session.ActualMinutes,
			&session.CreatedAt,
		)
		if err != nil {
			return nil, &customerrors.ErrSQLExecution{Operation: "чтение фокус-сессии", Cause: err}
		}

		session.Status = models.SessionStatus(status)
		sessions = append(sessions, &session)
	}

	if err = rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "список активных сессий", Cause: err}
	}

	return sessions, nil
}

func (r *SessionRepository) UpdateSession(ctx context.Context, id string, patch *models.FocusSessionPatch) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery("update_session", err, time.Since(start)) }()

	querier := txs.GetQuerier(ctx, r.db.Pool)

	updateQuery := r.sq.Update("focus_sessions").Where(sq.Eq{"id": id})

	changed := false

	if patch.Status != nil {
		updateQuery = updateQuery.Set("status", string(*patch.Status))
		changed = true
	}

	if patch.CompletedAt != nil {
		updateQuery = updateQuery.Set("completed_at", *patch.CompletedAt)
		changed = true
	}

	if patch.ActualMinutes != nil {
		updateQuery = updateQuery.Set("actual_minutes", *patch.ActualMinutes)
		changed = true
	}

	if !changed {
		return nil
	}

	updateQuery = updateQuery.Set("updated_at", time.Now())

	query, args, err := updateQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "обновление фокус-сессии", Cause: err}
	}

	result, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "обновление фокус-сессии", Cause: err}
	}

	if result.RowsAffected() == 0 {
		return &customerrors.ErrSessionNotFound{SessionID: id}
	}

	return nil
}
