package sql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/YazzTTV/productif-notifier/internal/common/metrics"
	"github.com/YazzTTV/productif-notifier/internal/database"
	customerrors "github.com/YazzTTV/productif-notifier/internal/domain/errors"
	"github.com/YazzTTV/productif-notifier/internal/domain/models"
	"github.com/YazzTTV/productif-notifier/pkg/txs"
)

type PreferenceRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewPreferenceRepository(db *database.PostgresDB) *PreferenceRepository {
	return &PreferenceRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PreferenceRepository) GetPreferences(ctx context.Context, userID string) (_ *models.NotificationPreference, err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery("get_preferences", err, time.Since(start)) }()

	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select(
		"user_id", "enabled", "chat_enabled", "push_enabled", "email_enabled",
		"categories", "start_hour", "end_hour", "allowed_days", "timezone",
		"chat_address", "push_token", "email_address", "created_at", "updated_at",
	).From("notification_preferences").Where(sq.Eq{"user_id": userID})

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "чтение настроек уведомлений", Cause: err}
	}

	row := querier.QueryRow(ctx, query, args...)

	var pref models.NotificationPreference

	var categories []string

	var allowedDays []int64

	err = row.Scan(
		&pref.UserID,
		&pref.Enabled,
		&pref.ChatEnabled,
		&pref.PushEnabled,
		&pref.EmailEnabled,
		&categories,
		&pref.StartHour,
		&pref.EndHour,
		&allowedDays,
		&pref.Timezone,
		&pref.ChatAddress,
		&pref.PushToken,
		&pref.EmailAddress,
		&pref.CreatedAt,
		&pref.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrPreferencesNotFound{UserID: userID}
		}

		return nil, &customerrors.ErrSQLExecution{Operation: "чтение настроек уведомлений", Cause: err}
	}

	pref.Categories = make([]models.ReminderCategory, 0, len(categories))
	for _, c := range categories {
		pref.Categories = append(pref.Categories, models.ReminderCategory(c))
	}

	pref.AllowedDays = make([]time.Weekday, 0, len(allowedDays))
	for _, d := range allowedDays {
		pref.AllowedDays = append(pref.AllowedDays, time.Weekday(d))
	}

	return &pref, nil
}

func (r *PreferenceRepository) GetCheckInSchedule(ctx context.Context, userID string) (_ *models.CheckInSchedule, err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery("get_checkin_schedule", err, time.Since(start)) }()

	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select(
		"user_id", "enabled", "slots", "randomize", "skip_weekends", "created_at", "updated_at",
	).From("checkin_schedules").Where(sq.Eq{"user_id": userID})

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "чтение расписания чек-инов", Cause: err}
	}

	row := querier.QueryRow(ctx, query, args...)

	var schedule models.CheckInSchedule

	var slotsData []byte

	err = row.Scan(
		&schedule.UserID,
		&schedule.Enabled,
		&slotsData,
		&schedule.Randomize,
		&schedule.SkipWeekends,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrScheduleNotFound{UserID: userID}
		}

		return nil, &customerrors.ErrSQLExecution{Operation: "чтение расписания чек-инов", Cause: err}
	}

	if err = json.Unmarshal(slotsData, &schedule.Slots); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "десериализация слотов расписания", Cause: err}
	}

	return &schedule, nil
}

func (r *PreferenceRepository) ListUserIDs(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery("list_user_ids", err, time.Since(start)) }()

	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("user_id").From("notification_preferences")

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "список пользователей", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "список пользователей", Cause: err}
	}
	defer rows.Close()

	var ids []string

	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, &customerrors.ErrSQLExecution{Operation: "чтение идентификатора пользователя", Cause: err}
		}

		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "список пользователей", Cause: err}
	}

	return ids, nil
}

func (r *PreferenceRepository) SaveConversationState(ctx context.Context, state *models.ConversationState) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery("save_conversation_state", err, time.Since(start)) }()

	querier := txs.GetQuerier(ctx, r.db.Pool)

	if state.PromptedAt.IsZero() {
		state.PromptedAt = time.Now()
	}

	insertQuery := r.sq.Insert("conversation_states").
		Columns("user_id", "awaiting_type", "platform", "prompted_at").
		Values(state.UserID, string(state.AwaitingType), string(state.Platform), state.PromptedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET awaiting_type = EXCLUDED.awaiting_type, platform = EXCLUDED.platform, prompted_at = EXCLUDED.prompted_at")

	query, args, err := insertQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "сохранение состояния диалога", Cause: err}
	}

	if _, err = querier.Exec(ctx, query, args...); err != nil {
		return &customerrors.ErrSQLExecution{Operation: "сохранение состояния диалога", Cause: err}
	}

	return nil
}
