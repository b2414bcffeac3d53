package repository

import (
	"context"
	"time"

	"janseva/internal/dto"
	"janseva/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// InteractionRepository is append-only: resolved chat turns are
// inserted once and only ever read back for analytics.
type InteractionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInteractionRepository(db *pgxpool.Pool, logger *zap.Logger) *InteractionRepository {
	return &InteractionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *InteractionRepository) Create(ctx context.Context, in *models.Interaction) error {
	query := squirrel.Insert("interactions").
		Columns("id", "user_id", "query", "response", "intent", "source", "timestamp").
		Values(in.ID, in.UserID, in.Query, in.Response, in.Intent, in.Source, in.Timestamp).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *InteractionRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM interactions").Scan(&count)
	return count, err
}

func (r *InteractionRepository) CountBySource(ctx context.Context) ([]dto.SourceCount, error) {
	query := squirrel.Select("source", "COUNT(*) AS count").
		From("interactions").
		GroupBy("source").
		OrderBy("count DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []dto.SourceCount
	for rows.Next() {
		var sc dto.SourceCount
		if err := rows.Scan(&sc.Source, &sc.Count); err != nil {
			return nil, err
		}
		results = append(results, sc)
	}
	return results, rows.Err()
}

// TopIntents groups interactions by intent label, optionally windowed
// by [from, to], most frequent first.
func (r *InteractionRepository) TopIntents(ctx context.Context, from, to *time.Time, limit uint64) ([]dto.IntentCount, error) {
	query := squirrel.Select("intent", "COUNT(*) AS count").
		From("interactions").
		GroupBy("intent").
		OrderBy("count DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if from != nil {
		query = query.Where(squirrel.GtOrEq{"timestamp": *from})
	}
	if to != nil {
		query = query.Where(squirrel.LtOrEq{"timestamp": *to})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []dto.IntentCount
	for rows.Next() {
		var ic dto.IntentCount
		if err := rows.Scan(&ic.Intent, &ic.Count); err != nil {
			return nil, err
		}
		results = append(results, ic)
	}
	return results, rows.Err()
}

// TopQueries groups interactions by the literal query text, most
// frequent first, carrying the most recent timestamp per group.
func (r *InteractionRepository) TopQueries(ctx context.Context, limit uint64) ([]dto.QueryCount, error) {
	query := squirrel.Select("query", "COUNT(*) AS count", "MAX(timestamp) AS last_asked_at").
		From("interactions").
		GroupBy("query").
		OrderBy("count DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []dto.QueryCount
	for rows.Next() {
		var qc dto.QueryCount
		if err := rows.Scan(&qc.Query, &qc.Count, &qc.LastAskedAt); err != nil {
			return nil, err
		}
		results = append(results, qc)
	}
	return results, rows.Err()
}
