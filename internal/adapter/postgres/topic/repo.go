// Package topic implements the Topic repository using PostgreSQL.
// Every lifecycle write is a single guarded UPDATE: the WHERE clause repeats the
// precondition so a concurrent change makes the write miss instead of clobbering.
package topic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Jeetch8/softfix-helper/internal/adapter/postgres"
	"github.com/Jeetch8/softfix-helper/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const topicColumns = `
    id, user_id, topic_name, description,
    narration_script, narration_script_variations, status, level,
    generated_titles, title_prompt_variations, selected_title,
    generated_thumbnails, thumbnail_prompt_results, selected_thumbnail,
    seo_description, tags, timestamps, audio_url,
    error_message, processed_at, source_keyword_id, claim_id, claimed_at,
    created_at, updated_at`

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

// Stage writes keep the stored level when it is already past the target, so a
// slow generation cannot undo a selection committed while it ran.
const (
	forwardLevel4 = `CASE WHEN topic_level_rank(level) < topic_level_rank($4::text) THEN $4::text ELSE level END`
	forwardLevel6 = `CASE WHEN topic_level_rank(level) < topic_level_rank($6::text) THEN $6::text ELSE level END`
)

const (
	createSQL = `
INSERT INTO topics (user_id, topic_name, description, source_keyword_id)
VALUES ($1, $2, $3, $4)
RETURNING` + topicColumns

	getByIDSQL = `SELECT` + topicColumns + ` FROM topics WHERE id = $1 AND user_id = $2`

	listSQL = `SELECT` + topicColumns + ` FROM topics WHERE user_id = $1 ORDER BY created_at DESC, id`

	statusStatsSQL = `
SELECT
    count(*) FILTER (WHERE status = 'pending'),
    count(*) FILTER (WHERE status = 'processing'),
    count(*) FILTER (WHERE status = 'completed'),
    count(*) FILTER (WHERE status = 'failed'),
    count(*)
FROM topics WHERE user_id = $1`

	levelStatsSQL = `SELECT level, count(*) FROM topics WHERE user_id = $1 GROUP BY level`

	deleteSQL = `DELETE FROM topics WHERE id = $1 AND user_id = $2 RETURNING` + topicColumns

	deleteBySourceKeywordSQL = `DELETE FROM topics WHERE source_keyword_id = $1 AND user_id = $2 RETURNING` + topicColumns

	resetScriptSQL = `
UPDATE topics
SET status = 'pending', level = 'scripting', narration_script = NULL, error_message = NULL,
    claim_id = NULL, claimed_at = NULL, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING` + topicColumns

	setScriptSQL = `
UPDATE topics
SET narration_script = $3, status = 'completed', processed_at = now(), error_message = NULL,
    claim_id = NULL, claimed_at = NULL, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING` + topicColumns

	saveTitlesSQL = `
UPDATE topics
SET generated_titles = $3::jsonb,
    title_prompt_variations = append_capped(title_prompt_variations, $4::jsonb, $5),
    level = ` + forwardLevel6 + `, status = $7, updated_at = now()
WHERE id = $1 AND user_id = $2 AND narration_script IS NOT NULL AND status = 'completed'
RETURNING` + topicColumns

	selectTitleSQL = `
UPDATE topics
SET selected_title = $3, level = ` + forwardLevel4 + `, status = $5, updated_at = now()
WHERE id = $1 AND user_id = $2 AND narration_script IS NOT NULL AND status = 'completed'
RETURNING` + topicColumns

	updateTitleSQL = `
UPDATE topics
SET selected_title = $3, updated_at = now()
WHERE id = $1 AND user_id = $2 AND selected_title IS NOT NULL
RETURNING` + topicColumns

	saveThumbnailsSQL = `
UPDATE topics
SET generated_thumbnails = $3::jsonb,
    thumbnail_prompt_results = append_capped(thumbnail_prompt_results, $4::jsonb, $5),
    level = ` + forwardLevel6 + `, status = $7, updated_at = now()
WHERE id = $1 AND user_id = $2 AND narration_script IS NOT NULL AND selected_title IS NOT NULL
RETURNING` + topicColumns

	selectThumbnailSQL = `
UPDATE topics
SET selected_thumbnail = $3, level = ` + forwardLevel4 + `, status = $5, updated_at = now()
WHERE id = $1 AND user_id = $2 AND selected_title IS NOT NULL AND status = 'completed'
RETURNING` + topicColumns

	saveExtraAssetsSQL = `
UPDATE topics
SET seo_description = $3, tags = $4, timestamps = $5::jsonb, audio_url = $6, updated_at = now()
WHERE id = $1 AND user_id = $2 AND narration_script IS NOT NULL AND selected_title IS NOT NULL
RETURNING` + topicColumns

	markEditingSQL = `
UPDATE topics
SET level = 'editing', updated_at = now()
WHERE id = $1 AND user_id = $2 AND level = 'finished'
  AND seo_description IS NOT NULL AND audio_url IS NOT NULL
RETURNING` + topicColumns

	markUploadedSQL = `
UPDATE topics
SET level = 'uploaded', updated_at = now()
WHERE id = $1 AND user_id = $2 AND level = 'editing'
RETURNING` + topicColumns

	claimPendingSQL = `
UPDATE topics
SET status = 'processing', claim_id = $1, claimed_at = now(), updated_at = now()
WHERE id IN (
    SELECT id FROM topics
    WHERE status = 'pending' AND level = 'scripting'
    ORDER BY created_at, id
    LIMIT $2
    FOR UPDATE SKIP LOCKED
)
RETURNING` + topicColumns

	completeClaimSQL = `
UPDATE topics
SET narration_script = $3,
    narration_script_variations = append_capped(narration_script_variations, $4::jsonb, $5),
    status = 'completed', processed_at = now(), error_message = NULL,
    claim_id = NULL, claimed_at = NULL, updated_at = now()
WHERE id = $1 AND claim_id = $2 AND status = 'processing'`

	failClaimSQL = `
UPDATE topics
SET status = 'failed', error_message = $3, claim_id = NULL, claimed_at = NULL, updated_at = now()
WHERE id = $1 AND claim_id = $2 AND status = 'processing'`

	renewClaimsSQL = `
UPDATE topics
SET claimed_at = now(), updated_at = now()
WHERE claim_id = $1 AND status = 'processing'
RETURNING id`

	releaseClaimSQL = `
UPDATE topics
SET status = 'pending', claim_id = NULL, claimed_at = NULL, updated_at = now()
WHERE id = $1 AND claim_id = $2 AND status = 'processing'`

	releaseStaleSQL = `
UPDATE topics
SET status = 'pending', claim_id = NULL, claimed_at = NULL, updated_at = now()
WHERE status = 'processing' AND (claimed_at IS NULL OR claimed_at < $1)`
)

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Create inserts a new topic in the scripting/pending stage.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanTopic(q.QueryRow(ctx, createSQL, t.UserID, t.TopicName, t.Description, t.SourceKeywordID))
	if err != nil {
		return nil, postgres.MapError(err, "topic", t.TopicName)
	}
	return created, nil
}

// GetByID returns a topic owned by userID.
// Returns domain.ErrNotFound if the topic does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(q.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return t, nil
}

// List returns every topic of userID, newest first.
// Returns an empty slice (not nil) when the user has no topics.
func (r *Repo) List(ctx context.Context, userID string) ([]*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return collectTopics(rows)
}

// Stats counts the topics of userID per status and per level.
func (r *Repo) Stats(ctx context.Context, userID string) (domain.TopicStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.TopicStats
	err := q.QueryRow(ctx, statusStatsSQL, userID).Scan(&s.Pending, &s.Processing, &s.Completed, &s.Failed, &s.Total)
	if err != nil {
		return domain.TopicStats{}, fmt.Errorf("topic status stats: %w", err)
	}

	rows, err := q.Query(ctx, levelStatsSQL, userID)
	if err != nil {
		return domain.TopicStats{}, fmt.Errorf("topic level stats: %w", err)
	}
	defer rows.Close()

	s.ByLevel = make(map[domain.TopicLevel]int, len(domain.TopicLevels))
	for _, lvl := range domain.TopicLevels {
		s.ByLevel[lvl] = 0
	}
	for rows.Next() {
		var (
			level string
			n     int
		)
		if err := rows.Scan(&level, &n); err != nil {
			return domain.TopicStats{}, fmt.Errorf("scan level stats: %w", err)
		}
		s.ByLevel[domain.TopicLevel(level)] = n
	}
	if err := rows.Err(); err != nil {
		return domain.TopicStats{}, fmt.Errorf("topic level stats: %w", err)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Deletes
// ---------------------------------------------------------------------------

// Delete removes a topic and returns the deleted row.
func (r *Repo) Delete(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(q.QueryRow(ctx, deleteSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return t, nil
}

// DeleteBySourceKeyword removes every topic spun off from keywordID and returns them.
func (r *Repo) DeleteBySourceKeyword(ctx context.Context, userID string, keywordID uuid.UUID) ([]*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, deleteBySourceKeywordSQL, keywordID, userID)
	if err != nil {
		return nil, fmt.Errorf("delete topics by source keyword %s: %w", keywordID, err)
	}
	return collectTopics(rows)
}

// ---------------------------------------------------------------------------
// Lifecycle writes
// ---------------------------------------------------------------------------

// ResetScript moves a topic back to scripting/pending, clearing the script,
// the error and any outstanding claim. Downstream selections are kept.
func (r *Repo) ResetScript(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(q.QueryRow(ctx, resetScriptSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return t, nil
}

// SetScript stores a manually written script and marks it completed.
// The level is left untouched and any outstanding claim is dropped.
func (r *Repo) SetScript(ctx context.Context, userID string, id uuid.UUID, script string) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(q.QueryRow(ctx, setScriptSQL, id, userID, script))
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return t, nil
}

// SaveTitles overwrites the generated titles, appends the attempt to the
// capped title variations and moves the topic to stage.
func (r *Repo) SaveTitles(ctx context.Context, userID string, id uuid.UUID, titles []string, v domain.Variation, limit int, stage domain.Stage) (*domain.Topic, error) {
	titlesJSON, err := marshal(titles)
	if err != nil {
		return nil, err
	}
	varJSON, err := marshal([]domain.Variation{v})
	if err != nil {
		return nil, err
	}

	return r.guardedUpdate(ctx, "save titles", id, saveTitlesSQL,
		id, userID, titlesJSON, varJSON, limit, string(stage.Level()), string(stage.Status()))
}

// SelectTitle stores the chosen title and moves the topic to stage.
func (r *Repo) SelectTitle(ctx context.Context, userID string, id uuid.UUID, title string, stage domain.Stage) (*domain.Topic, error) {
	return r.guardedUpdate(ctx, "select title", id, selectTitleSQL,
		id, userID, title, string(stage.Level()), string(stage.Status()))
}

// UpdateTitle edits an already selected title without changing the stage.
func (r *Repo) UpdateTitle(ctx context.Context, userID string, id uuid.UUID, title string) (*domain.Topic, error) {
	return r.guardedUpdate(ctx, "update title", id, updateTitleSQL, id, userID, title)
}

// SaveThumbnails overwrites the generated thumbnails, appends the prompt results
// to the capped list and moves the topic to stage.
func (r *Repo) SaveThumbnails(ctx context.Context, userID string, id uuid.UUID, thumbs []domain.Thumbnail, results []domain.ThumbnailResult, limit int, stage domain.Stage) (*domain.Topic, error) {
	thumbsJSON, err := marshal(thumbs)
	if err != nil {
		return nil, err
	}
	resultsJSON, err := marshal(results)
	if err != nil {
		return nil, err
	}

	return r.guardedUpdate(ctx, "save thumbnails", id, saveThumbnailsSQL,
		id, userID, thumbsJSON, resultsJSON, limit, string(stage.Level()), string(stage.Status()))
}

// SelectThumbnail stores the chosen thumbnail URL and moves the topic to stage.
func (r *Repo) SelectThumbnail(ctx context.Context, userID string, id uuid.UUID, url string, stage domain.Stage) (*domain.Topic, error) {
	return r.guardedUpdate(ctx, "select thumbnail", id, selectThumbnailSQL,
		id, userID, url, string(stage.Level()), string(stage.Status()))
}

// SaveExtraAssets commits the SEO description, tags, timestamps and audio URL together.
func (r *Repo) SaveExtraAssets(ctx context.Context, userID string, id uuid.UUID, a domain.ExtraAssets) (*domain.Topic, error) {
	tsJSON, err := marshal(a.Timestamps)
	if err != nil {
		return nil, err
	}
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return r.guardedUpdate(ctx, "save extra assets", id, saveExtraAssetsSQL,
		id, userID, a.SEODescription, tags, tsJSON, a.AudioURL)
}

// MarkEditing moves a finished topic with extra assets to editing.
func (r *Repo) MarkEditing(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error) {
	return r.guardedUpdate(ctx, "mark editing", id, markEditingSQL, id, userID)
}

// MarkUploaded moves a topic in editing to uploaded.
func (r *Repo) MarkUploaded(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error) {
	return r.guardedUpdate(ctx, "mark uploaded", id, markUploadedSQL, id, userID)
}

// guardedUpdate runs an UPDATE ... RETURNING whose WHERE clause repeats the
// operation's precondition. A miss means the row changed after the caller
// checked it and is reported as domain.ErrPreconditionFailed.
func (r *Repo) guardedUpdate(ctx context.Context, op string, id uuid.UUID, sql string, args ...any) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(q.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("topic %s: %w", id, domain.NewPreconditionError(op, "topic changed concurrently or is not in the required stage"))
	}
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return t, nil
}

// ---------------------------------------------------------------------------
// Poller claims
// ---------------------------------------------------------------------------

// ClaimPending atomically moves up to limit scripting/pending topics (oldest
// first) to processing under claimID. Rows locked by a concurrent claimer are
// skipped, so two claimers never receive the same topic.
func (r *Repo) ClaimPending(ctx context.Context, claimID uuid.UUID, limit int) ([]*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, claimPendingSQL, claimID, limit)
	if err != nil {
		return nil, fmt.Errorf("claim pending topics: %w", err)
	}
	return collectTopics(rows)
}

// CompleteClaim stores the generated script if the topic is still held by claimID.
// It reports false when the claim was lost.
func (r *Repo) CompleteClaim(ctx context.Context, id, claimID uuid.UUID, script string, v domain.Variation, limit int) (bool, error) {
	varJSON, err := marshal([]domain.Variation{v})
	if err != nil {
		return false, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, completeClaimSQL, id, claimID, script, varJSON, limit)
	if err != nil {
		return false, postgres.MapError(err, "topic", id)
	}
	return tag.RowsAffected() == 1, nil
}

// FailClaim records a generation failure if the topic is still held by claimID.
// It reports false when the claim was lost.
func (r *Repo) FailClaim(ctx context.Context, id, claimID uuid.UUID, errMsg string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, failClaimSQL, id, claimID, errMsg)
	if err != nil {
		return false, postgres.MapError(err, "topic", id)
	}
	return tag.RowsAffected() == 1, nil
}

// RenewClaims restarts the stale clock of every topic still held by claimID
// and returns their ids.
func (r *Repo) RenewClaims(ctx context.Context, claimID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, renewClaimsSQL, claimID)
	if err != nil {
		return nil, fmt.Errorf("renew claims: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("renew claims: %w", err)
	}
	return ids, nil
}

// ReleaseClaim returns a topic held by claimID to pending without recording
// an outcome. It reports false when the claim was lost.
func (r *Repo) ReleaseClaim(ctx context.Context, id, claimID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, releaseClaimSQL, id, claimID)
	if err != nil {
		return false, postgres.MapError(err, "topic", id)
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseStale returns topics stuck in processing since before cutoff to pending.
func (r *Repo) ReleaseStale(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, releaseStaleSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("release stale claims: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var (
		t                                domain.Topic
		status, level                    string
		scriptVars, titles, titleVars    []byte
		thumbs, thumbResults, timestamps []byte
	)

	err := row.Scan(
		&t.ID, &t.UserID, &t.TopicName, &t.Description,
		&t.NarrationScript, &scriptVars, &status, &level,
		&titles, &titleVars, &t.SelectedTitle,
		&thumbs, &thumbResults, &t.SelectedThumbnail,
		&t.SEODescription, &t.Tags, &timestamps, &t.AudioURL,
		&t.ErrorMessage, &t.ProcessedAt, &t.SourceKeywordID, &t.ClaimID, &t.ClaimedAt,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Stage, err = domain.ParseStage(level, status)
	if err != nil {
		return nil, fmt.Errorf("topic %s: %w", t.ID, err)
	}

	for _, f := range []struct {
		raw []byte
		dst any
	}{
		{scriptVars, &t.NarrationScriptVariations},
		{titles, &t.GeneratedTitles},
		{titleVars, &t.TitlePromptVariations},
		{thumbs, &t.GeneratedThumbnails},
		{thumbResults, &t.ThumbnailPromptResults},
		{timestamps, &t.Timestamps},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("topic %s: decode json column: %w", t.ID, err)
		}
	}

	return &t, nil
}

func collectTopics(rows pgx.Rows) ([]*domain.Topic, error) {
	defer rows.Close()

	topics := []*domain.Topic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return topics, nil
}

func marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json column: %w", err)
	}
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}
