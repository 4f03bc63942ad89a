// Package keyword implements the QuestionKeyword repository using PostgreSQL.
package keyword

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Jeetch8/softfix-helper/internal/adapter/postgres"
	"github.com/Jeetch8/softfix-helper/internal/domain"
)

// Repo provides keyword persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new keyword repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const keywordColumns = `
    id, user_id, keyword, competition, overall, search_volume, thirty_day_ago_searches,
    observed_at, number_of_words, added_to_title, created_at, updated_at`

var keywordColumnList = strings.Split(strings.Join(strings.Fields(keywordColumns), ""), ",")

// sortColumns maps API sort fields to SQL columns.
var sortColumns = map[domain.KeywordSortField]string{
	domain.KeywordSortOverall:              "overall",
	domain.KeywordSortSearchVolume:         "search_volume",
	domain.KeywordSortCompetition:          "competition",
	domain.KeywordSortThirtyDayAgoSearches: "thirty_day_ago_searches",
	domain.KeywordSortNumberOfWords:        "number_of_words",
	domain.KeywordSortKeyword:              "keyword",
	domain.KeywordSortCreatedAt:            "created_at",
}

const (
	getByIDSQL   = `SELECT` + keywordColumns + ` FROM question_keywords WHERE id = $1 AND user_id = $2`
	getForUpdSQL = getByIDSQL + ` FOR UPDATE`

	deleteSQL = `DELETE FROM question_keywords WHERE id = $1 AND user_id = $2 RETURNING` + keywordColumns

	setAddedSQL = `
UPDATE question_keywords SET added_to_title = $3, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING` + keywordColumns

	// upsertSQL reports inserted=true for a new row. xmax is 0 only for rows
	// created by this statement.
	upsertSQL = `
INSERT INTO question_keywords
    (user_id, keyword, competition, overall, search_volume, thirty_day_ago_searches, observed_at, number_of_words)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id, keyword) DO UPDATE SET
    competition = EXCLUDED.competition,
    overall = EXCLUDED.overall,
    search_volume = EXCLUDED.search_volume,
    thirty_day_ago_searches = EXCLUDED.thirty_day_ago_searches,
    observed_at = coalesce(EXCLUDED.observed_at, question_keywords.observed_at),
    number_of_words = EXCLUDED.number_of_words,
    updated_at = now()
RETURNING (xmax = 0),` + keywordColumns

	statsSQL = `
SELECT
    count(*),
    coalesce(round(avg(overall)::numeric, 2), 0)::float8,
    coalesce(round(avg(competition)::numeric, 2), 0)::float8,
    coalesce(round(avg(search_volume)), 0)::bigint,
    count(*) FILTER (WHERE overall >= 70),
    count(*) FILTER (WHERE competition <= 30)
FROM question_keywords WHERE user_id = $1`
)

// GetByID returns a keyword owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Keyword, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	k, err := scanKeyword(q.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "keyword", id)
	}
	return k, nil
}

// GetForUpdate returns a keyword and row-locks it until the surrounding
// transaction ends. Outside a transaction it behaves like GetByID.
func (r *Repo) GetForUpdate(ctx context.Context, userID string, id uuid.UUID) (*domain.Keyword, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	k, err := scanKeyword(q.QueryRow(ctx, getForUpdSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "keyword", id)
	}
	return k, nil
}

// List returns one page of keywords matching f together with the total match count.
func (r *Repo) List(ctx context.Context, userID string, f domain.KeywordFilter) ([]*domain.Keyword, int, error) {
	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if s := strings.TrimSpace(f.Search); s != "" {
		where = append(where, squirrel.ILike{"keyword": "%" + escapeLike(s) + "%"})
	}
	if f.MinOverall != nil {
		where = append(where, squirrel.GtOrEq{"overall": *f.MinOverall})
	}
	if f.MaxOverall != nil {
		where = append(where, squirrel.LtOrEq{"overall": *f.MaxOverall})
	}
	if f.MinSearchVolume != nil {
		where = append(where, squirrel.GtOrEq{"search_volume": *f.MinSearchVolume})
	}
	if f.MaxSearchVolume != nil {
		where = append(where, squirrel.LtOrEq{"search_volume": *f.MaxSearchVolume})
	}
	if f.MinCompetition != nil {
		where = append(where, squirrel.GtOrEq{"competition": *f.MinCompetition})
	}
	if f.MaxCompetition != nil {
		where = append(where, squirrel.LtOrEq{"competition": *f.MaxCompetition})
	}
	if f.AddedToTitle != nil {
		where = append(where, squirrel.Eq{"added_to_title": *f.AddedToTitle})
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From("question_keywords").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build keyword count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count keywords: %w", err)
	}

	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = "overall"
	}
	dir := "DESC"
	if f.SortOrder == domain.SortAsc {
		dir = "ASC"
	}

	listSQL, args, err := postgres.Builder.
		Select(keywordColumnList...).
		From("question_keywords").
		Where(where).
		OrderBy(col+" "+dir, "id").
		Limit(uint64(f.Limit)).
		Offset(uint64((f.Page - 1) * f.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build keyword list: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list keywords: %w", err)
	}
	defer rows.Close()

	keywords := []*domain.Keyword{}
	for rows.Next() {
		k, err := scanKeyword(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan keyword: %w", err)
		}
		keywords = append(keywords, k)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list keywords: %w", err)
	}
	return keywords, total, nil
}

// Stats returns aggregate keyword metrics for userID.
func (r *Repo) Stats(ctx context.Context, userID string) (domain.KeywordStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.KeywordStats
	err := q.QueryRow(ctx, statsSQL, userID).Scan(
		&s.TotalKeywords, &s.AvgOverall, &s.AvgCompetition, &s.AvgSearchVolume,
		&s.HighScoreCount, &s.LowCompetitionCount,
	)
	if err != nil {
		return domain.KeywordStats{}, fmt.Errorf("keyword stats: %w", err)
	}
	return s, nil
}

// Upsert stores k, or updates the metrics of the existing (user, keyword) row.
// It reports whether a new row was inserted.
func (r *Repo) Upsert(ctx context.Context, k *domain.Keyword) (*domain.Keyword, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var inserted bool
	saved, err := scanKeyword(prefixedRow{row: q.QueryRow(ctx, upsertSQL,
		k.UserID, k.Keyword, k.Competition, k.Overall, k.SearchVolume, k.ThirtyDayAgoSearches,
		k.Timestamp, k.NumberOfWords,
	), prefix: []any{&inserted}})
	if err != nil {
		return nil, false, postgres.MapError(err, "keyword", k.Keyword)
	}
	return saved, inserted, nil
}

// Update applies a partial update and returns the updated keyword.
func (r *Repo) Update(ctx context.Context, userID string, id uuid.UUID, p domain.KeywordPatch) (*domain.Keyword, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, userID, id)
	}

	b := postgres.Builder.Update("question_keywords").Set("updated_at", squirrel.Expr("now()"))
	if p.Keyword != nil {
		b = b.Set("keyword", *p.Keyword)
	}
	if p.Competition != nil {
		b = b.Set("competition", *p.Competition)
	}
	if p.Overall != nil {
		b = b.Set("overall", *p.Overall)
	}
	if p.SearchVolume != nil {
		b = b.Set("search_volume", *p.SearchVolume)
	}
	if p.ThirtyDayAgoSearches != nil {
		b = b.Set("thirty_day_ago_searches", *p.ThirtyDayAgoSearches)
	}
	if p.NumberOfWords != nil {
		b = b.Set("number_of_words", *p.NumberOfWords)
	}
	if p.Timestamp != nil {
		b = b.Set("observed_at", *p.Timestamp)
	}

	sql, args, err := b.Where(squirrel.Eq{"id": id, "user_id": userID}).Suffix("RETURNING" + keywordColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build keyword update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	k, err := scanKeyword(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "keyword", id)
	}
	return k, nil
}

// SetAddedToTitle sets the added-to-title flag.
func (r *Repo) SetAddedToTitle(ctx context.Context, userID string, id uuid.UUID, added bool) (*domain.Keyword, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	k, err := scanKeyword(q.QueryRow(ctx, setAddedSQL, id, userID, added))
	if err != nil {
		return nil, postgres.MapError(err, "keyword", id)
	}
	return k, nil
}

// Delete removes a keyword and returns the deleted row.
func (r *Repo) Delete(ctx context.Context, userID string, id uuid.UUID) (*domain.Keyword, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	k, err := scanKeyword(q.QueryRow(ctx, deleteSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "keyword", id)
	}
	return k, nil
}

// prefixedRow scans extra leading columns before the keyword columns.
type prefixedRow struct {
	row    pgx.Row
	prefix []any
}

func (p prefixedRow) Scan(dest ...any) error {
	return p.row.Scan(append(p.prefix, dest...)...)
}

func scanKeyword(row pgx.Row) (*domain.Keyword, error) {
	var k domain.Keyword
	err := row.Scan(
		&k.ID, &k.UserID, &k.Keyword, &k.Competition, &k.Overall, &k.SearchVolume, &k.ThirtyDayAgoSearches,
		&k.Timestamp, &k.NumberOfWords, &k.AddedToTitle, &k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
