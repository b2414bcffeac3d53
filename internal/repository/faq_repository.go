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

// faqSearchVector is the tsvector expression covering all searchable
// FAQ fields, mirroring the compound text index on the corpus.
const faqSearchVector = "to_tsvector('english', question || ' ' || answer || ' ' || " +
	"array_to_string(tags, ' ') || ' ' || array_to_string(keywords, ' '))"

var faqColumns = []string{"id", "question", "answer", "tags", "keywords", "department", "created_at", "updated_at"}

type FaqRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFaqRepository(db *pgxpool.Pool, logger *zap.Logger) *FaqRepository {
	return &FaqRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FaqRepository) Create(ctx context.Context, faq *models.Faq) error {
	query := squirrel.Insert("faqs").
		Columns(faqColumns...).
		Values(faq.ID, faq.Question, faq.Answer, faq.Tags, faq.Keywords, faq.Department, faq.CreatedAt, faq.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *FaqRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	query := squirrel.Select(faqColumns...).
		From("faqs").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var faq models.Faq
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&faq.ID, &faq.Question, &faq.Answer, &faq.Tags, &faq.Keywords, &faq.Department, &faq.CreatedAt, &faq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &faq, nil
}

// FaqFilter narrows List results. Zero values mean "no filter".
type FaqFilter struct {
	Department string
	Tags       []string
	Limit      uint64
	Offset     uint64
}

func (r *FaqRepository) List(ctx context.Context, filter FaqFilter) ([]*models.Faq, error) {
	query := squirrel.Select(faqColumns...).
		From("faqs").
		OrderBy("updated_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Department != "" {
		query = query.Where(squirrel.Expr("lower(department) = lower(?)", filter.Department))
	}
	if len(filter.Tags) > 0 {
		query = query.Where(squirrel.Expr("tags @> ?", filter.Tags))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
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

	return scanFaqs(rows, false)
}

// SearchRanked returns the FAQs most relevant to the query text,
// ordered by descending full-text rank. Score is set on each result.
func (r *FaqRepository) SearchRanked(ctx context.Context, queryText string, limit uint64) ([]*models.Faq, error) {
	query := squirrel.Select(faqColumns...).
		Column(squirrel.Expr("ts_rank("+faqSearchVector+", plainto_tsquery('english', ?)) AS score", queryText)).
		From("faqs").
		Where(squirrel.Expr(faqSearchVector+" @@ plainto_tsquery('english', ?)", queryText)).
		OrderBy("score DESC").
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

	return scanFaqs(rows, true)
}

// ListAll loads the whole FAQ corpus, in insertion order. Used by the
// keyword scan and by index rebuilds; the corpus is small by design.
func (r *FaqRepository) ListAll(ctx context.Context) ([]*models.Faq, error) {
	query := squirrel.Select(faqColumns...).
		From("faqs").
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

	return scanFaqs(rows, false)
}

func (r *FaqRepository) Update(ctx context.Context, faq *models.Faq) error {
	query := squirrel.Update("faqs").
		Set("question", faq.Question).
		Set("answer", faq.Answer).
		Set("tags", faq.Tags).
		Set("keywords", faq.Keywords).
		Set("department", faq.Department).
		Set("updated_at", faq.UpdatedAt).
		Where(squirrel.Eq{"id": faq.ID}).
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

func (r *FaqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("faqs").
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

func (r *FaqRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM faqs").Scan(&count)
	return count, err
}

func scanFaqs(rows pgx.Rows, withScore bool) ([]*models.Faq, error) {
	var results []*models.Faq
	for rows.Next() {
		var faq models.Faq
		dest := []interface{}{
			&faq.ID, &faq.Question, &faq.Answer, &faq.Tags, &faq.Keywords, &faq.Department, &faq.CreatedAt, &faq.UpdatedAt,
		}
		if withScore {
			dest = append(dest, &faq.Score)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		results = append(results, &faq)
	}
	return results, rows.Err()
}
