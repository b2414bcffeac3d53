package repository

import (
	"context"

	"janseva/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schemeSearchVector = "to_tsvector('english', scheme_name || ' ' || short_description || ' ' || " +
	"description || ' ' || array_to_string(keywords, ' '))"

var schemeColumns = []string{
	"id", "scheme_name", "category", "short_description", "description", "eligibility",
	"benefits", "documents_required", "how_to_apply", "official_link", "keywords", "state",
	"created_at", "updated_at",
}

type SchemeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSchemeRepository(db *pgxpool.Pool, logger *zap.Logger) *SchemeRepository {
	return &SchemeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SchemeRepository) Create(ctx context.Context, s *models.Scheme) error {
	query := squirrel.Insert("schemes").
		Columns(schemeColumns...).
		Values(s.ID, s.SchemeName, s.Category, s.ShortDescription, s.Description, s.Eligibility,
			s.Benefits, s.DocumentsRequired, s.HowToApply, s.OfficialLink, s.Keywords, s.State,
			s.CreatedAt, s.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SchemeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Scheme, error) {
	query := squirrel.Select(schemeColumns...).
		From("schemes").
		Where(squirrel.Eq{"id": id}).
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

	results, err := scanSchemes(rows, false)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, pgx.ErrNoRows
	}
	return results[0], nil
}

// SchemeFilter narrows List and SearchRanked results.
// Category and state match exactly, case-insensitively.
type SchemeFilter struct {
	Category string
	State    string
	Limit    uint64
	Offset   uint64
}

func (r *SchemeRepository) List(ctx context.Context, filter SchemeFilter) ([]*models.Scheme, error) {
	query := squirrel.Select(schemeColumns...).
		From("schemes").
		OrderBy("updated_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	query = applySchemeFilter(query, filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSchemes(rows, false)
}

// SearchRanked returns the schemes most relevant to the query text,
// ordered by descending full-text rank, optionally filtered by
// category and state. Score is set on each result.
func (r *SchemeRepository) SearchRanked(ctx context.Context, queryText string, filter SchemeFilter) ([]*models.Scheme, error) {
	query := squirrel.Select(schemeColumns...).
		Column(squirrel.Expr("ts_rank("+schemeSearchVector+", plainto_tsquery('english', ?)) AS score", queryText)).
		From("schemes").
		Where(squirrel.Expr(schemeSearchVector+" @@ plainto_tsquery('english', ?)", queryText)).
		OrderBy("score DESC").
		PlaceholderFormat(squirrel.Dollar)

	query = applySchemeFilter(query, filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSchemes(rows, true)
}

// ListAll loads the whole scheme corpus, in insertion order.
func (r *SchemeRepository) ListAll(ctx context.Context) ([]*models.Scheme, error) {
	query := squirrel.Select(schemeColumns...).
		From("schemes").
		OrderBy("created_at ASC").
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

	return scanSchemes(rows, false)
}

func (r *SchemeRepository) Update(ctx context.Context, s *models.Scheme) error {
	query := squirrel.Update("schemes").
		Set("scheme_name", s.SchemeName).
		Set("category", s.Category).
		Set("short_description", s.ShortDescription).
		Set("description", s.Description).
		Set("eligibility", s.Eligibility).
		Set("benefits", s.Benefits).
		Set("documents_required", s.DocumentsRequired).
		Set("how_to_apply", s.HowToApply).
		Set("official_link", s.OfficialLink).
		Set("keywords", s.Keywords).
		Set("state", s.State).
		Set("updated_at", s.UpdatedAt).
		Where(squirrel.Eq{"id": s.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *SchemeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("schemes").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *SchemeRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM schemes").Scan(&count)
	return count, err
}

func applySchemeFilter(query squirrel.SelectBuilder, filter SchemeFilter) squirrel.SelectBuilder {
	if filter.Category != "" {
		query = query.Where(squirrel.Expr("lower(category) = lower(?)", filter.Category))
	}
	if filter.State != "" {
		query = query.Where(squirrel.Expr("lower(state) = lower(?)", filter.State))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	return query
}

func scanSchemes(rows pgx.Rows, withScore bool) ([]*models.Scheme, error) {
	var results []*models.Scheme
	for rows.Next() {
		var s models.Scheme
		dest := []interface{}{
			&s.ID, &s.SchemeName, &s.Category, &s.ShortDescription, &s.Description, &s.Eligibility,
			&s.Benefits, &s.DocumentsRequired, &s.HowToApply, &s.OfficialLink, &s.Keywords, &s.State,
			&s.CreatedAt, &s.UpdatedAt,
		}
		if withScore {
			dest = append(dest, &s.Score)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		results = append(results, &s)
	}
	return results, rows.Err()
}
