// Package idea implements the Idea repository using PostgreSQL.
package idea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Jeetch8/softfix-helper/internal/adapter/postgres"
	"github.com/Jeetch8/softfix-helper/internal/domain"
)

// Repo provides idea persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new idea repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const ideaColumns = `
    id, user_id, title, description, competition, overall, search_volume, thirty_day_ago_searches,
    number_of_words, converted_to_topic, created_at, updated_at`

var ideaColumnList = strings.Split(strings.Join(strings.Fields(ideaColumns), ""), ",")

var sortColumns = map[domain.IdeaSortField]string{
	domain.IdeaSortCreatedAt:    "created_at",
	domain.IdeaSortTitle:        "title",
	domain.IdeaSortOverall:      "overall",
	domain.IdeaSortSearchVolume: "search_volume",
	domain.IdeaSortCompetition:  "competition",
}

const (
	createSQL = `
INSERT INTO ideas
    (user_id, title, description, competition, overall, search_volume, thirty_day_ago_searches, number_of_words)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING` + ideaColumns

	getByIDSQL = `SELECT` + ideaColumns + ` FROM ideas WHERE id = $1 AND user_id = $2`

	deleteSQL = `DELETE FROM ideas WHERE id = $1 AND user_id = $2 RETURNING` + ideaColumns

	// markConvertedSQL is a one-way latch: it matches only while the idea is unconverted.
	markConvertedSQL = `
UPDATE ideas SET converted_to_topic = true, updated_at = now()
WHERE id = $1 AND user_id = $2 AND NOT converted_to_topic
RETURNING` + ideaColumns

	existsSQL = `SELECT EXISTS (SELECT 1 FROM ideas WHERE id = $1 AND user_id = $2)`

	statsSQL = `
SELECT count(*), count(*) FILTER (WHERE converted_to_topic)
FROM ideas WHERE user_id = $1`
)

// Create inserts a new idea and returns the stored row.
func (r *Repo) Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	saved, err := scanIdea(q.QueryRow(ctx, createSQL,
		i.UserID, i.Title, i.Description, i.Competition, i.Overall, i.SearchVolume,
		i.ThirtyDayAgoSearches, i.NumberOfWords,
	))
	if err != nil {
		return nil, postgres.MapError(err, "idea", i.Title)
	}
	return saved, nil
}

// GetByID returns an idea owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	i, err := scanIdea(q.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return i, nil
}

// List returns one page of ideas matching f together with the total match count.
func (r *Repo) List(ctx context.Context, userID string, f domain.IdeaFilter) ([]*domain.Idea, int, error) {
	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if s := strings.TrimSpace(f.Search); s != "" {
		where = append(where, squirrel.ILike{"title": "%" + escapeLike(s) + "%"})
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From("ideas").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build idea count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ideas: %w", err)
	}

	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if f.SortOrder == domain.SortAsc {
		dir = "ASC"
	}

	listSQL, args, err := postgres.Builder.
		Select(ideaColumnList...).
		From("ideas").
		Where(where).
		OrderBy(col+" "+dir, "id").
		Limit(uint64(f.Limit)).
		Offset(uint64((f.Page - 1) * f.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build idea list: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	ideas := []*domain.Idea{}
	for rows.Next() {
		i, err := scanIdea(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list ideas: %w", err)
	}
	return ideas, total, nil
}

// Stats returns the idea counts for userID.
func (r *Repo) Stats(ctx context.Context, userID string) (domain.IdeaStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.IdeaStats
	if err := q.QueryRow(ctx, statsSQL, userID).Scan(&s.TotalIdeas, &s.ConvertedCount); err != nil {
		return domain.IdeaStats{}, fmt.Errorf("idea stats: %w", err)
	}
	return s, nil
}

// Update changes the title and/or description of an idea.
func (r *Repo) Update(ctx context.Context, userID string, id uuid.UUID, p domain.IdeaPatch) (*domain.Idea, error) {
	if p.Title == nil && p.Description == nil {
		return r.GetByID(ctx, userID, id)
	}

	b := postgres.Builder.Update("ideas").Set("updated_at", squirrel.Expr("now()"))
	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.Description != nil {
		b = b.Set("description", *p.Description)
	}

	sql, args, err := b.Where(squirrel.Eq{"id": id, "user_id": userID}).Suffix("RETURNING" + ideaColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build idea update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	i, err := scanIdea(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return i, nil
}

// Delete removes an idea and returns the deleted row.
func (r *Repo) Delete(ctx context.Context, userID string, id uuid.UUID) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	i, err := scanIdea(q.QueryRow(ctx, deleteSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return i, nil
}

// MarkConverted latches converted_to_topic. A second call on the same idea
// returns ErrConflict; an unknown idea returns ErrNotFound.
func (r *Repo) MarkConverted(ctx context.Context, userID string, id uuid.UUID) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	i, err := scanIdea(q.QueryRow(ctx, markConvertedSQL, id, userID))
	if err == nil {
		return i, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "idea", id)
	}

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, id, userID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("idea %s: %w", id, err)
	}
	if !exists {
		return nil, fmt.Errorf("idea %s: %w", id, domain.ErrNotFound)
	}
	return nil, fmt.Errorf("idea %s: already converted to a topic: %w", id, domain.ErrConflict)
}

func scanIdea(row pgx.Row) (*domain.Idea, error) {
	var i domain.Idea
	err := row.Scan(
		&i.ID, &i.UserID, &i.Title, &i.Description, &i.Competition, &i.Overall, &i.SearchVolume,
		&i.ThirtyDayAgoSearches, &i.NumberOfWords, &i.ConvertedToTopic, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
