package sql

import (
	"context"
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

type DeliveryRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewDeliveryRepository(db *database.PostgresDB) *DeliveryRepository {
	return &DeliveryRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *DeliveryRepository) Save(ctx context.Context, record *models.DeliveryRecord) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery("save_delivery", err, time.Since(start)) }()

	querier := txs.GetQuerier(ctx, r.db.Pool)

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	insertQuery := r.sq.Insert("delivery_records").
		Columns("recipient", "fingerprint", "channel", "outcome", "provider_message_id", "error", "created_at").
		Values(
			record.Recipient,
			record.Fingerprint,
			string(record.Channel),
			string(record.Outcome),
			record.ProviderMessageID,
			record.Error,
			record.CreatedAt,
		).
		Suffix("RETURNING id")

	query, args, err := insertQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "сохранение записи о доставке", Cause: err}
	}

	if err = querier.QueryRow(ctx, query, args...).Scan(&record.ID); err != nil {
		return &customerrors.ErrSQLExecution{Operation: "сохранение записи о доставке", Cause: err}
	}

	return nil
}

func (r *DeliveryRepository) FindRecent(
	ctx context.Context,
	recipient, fingerprint string,
	window time.Duration,
) (_ *models.DeliveryRecord, err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery("find_recent_delivery", err, time.Since(start)) }()

	querier := txs.GetQuerier(ctx, r.db.Pool)

	since := time.Now().Add(-window)

	selectQuery := r.sq.Select(
		"id", "recipient", "fingerprint", "channel", "outcome", "provider_message_id", "error", "created_at",
	).From("delivery_records").
		Where(sq.Eq{"recipient": recipient, "fingerprint": fingerprint, "outcome": string(models.OutcomeSent)}).
		Where(sq.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC").
		Limit(1)

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "поиск недавней доставки", Cause: err}
	}

	row := querier.QueryRow(ctx, query, args...)

	var record models.DeliveryRecord

	var channel, outcome string

	err = row.Scan(
		&record.ID,
		&record.Recipient,
		&record.Fingerprint,
		&channel,
		&outcome,
		&record.ProviderMessageID,
		&record.Error,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, &customerrors.ErrSQLExecution{Operation: "поиск недавней доставки", Cause: err}
	}

	record.Channel = models.Channel(channel)
	record.Outcome = models.DeliveryOutcome(outcome)

	return &record, nil
}
