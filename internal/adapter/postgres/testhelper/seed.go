package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewUserID returns a user id no other test uses.
func NewUserID() string {
	return "user-" + uniqueSuffix()
}

// SeedKeyword inserts a keyword for userID and returns its id.
func SeedKeyword(t *testing.T, pool *pgxpool.Pool, userID, keyword string, m domain.Metrics) uuid.UUID {
	t.Helper()
	if m.NumberOfWords == 0 {
		m.NumberOfWords = 1
	}

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO question_keywords
		     (user_id, keyword, competition, overall, search_volume, thirty_day_ago_searches, number_of_words)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		userID, keyword, m.Competition, m.Overall, m.SearchVolume, m.ThirtyDayAgoSearches, m.NumberOfWords,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedKeyword: %v", err)
	}
	return id
}

// SeedIdea inserts an unconverted idea for userID and returns its id.
func SeedIdea(t *testing.T, pool *pgxpool.Pool, userID, title string, m domain.Metrics) uuid.UUID {
	t.Helper()
	if m.NumberOfWords == 0 {
		m.NumberOfWords = 1
	}

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO ideas
		     (user_id, title, description, competition, overall, search_volume, thirty_day_ago_searches, number_of_words)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		userID, title, "seeded idea "+uniqueSuffix(), m.Competition, m.Overall, m.SearchVolume, m.ThirtyDayAgoSearches, m.NumberOfWords,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedIdea: %v", err)
	}
	return id
}

// SeedTopic inserts a pending topic in the scripting stage and returns its id.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, userID, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO topics (user_id, topic_name) VALUES ($1, $2) RETURNING id`,
		userID, name,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}
	return id
}

// SeedScriptedTopic inserts a topic with a completed narration script at the given level.
func SeedScriptedTopic(t *testing.T, pool *pgxpool.Pool, userID, name string, level domain.TopicLevel) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO topics (user_id, topic_name, narration_script, status, level, processed_at)
		 VALUES ($1, $2, $3, 'completed', $4, now())
		 RETURNING id`,
		userID, name, "In this video we look at "+name+".", string(level),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedScriptedTopic: %v", err)
	}
	return id
}
