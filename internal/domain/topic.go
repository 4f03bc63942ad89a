package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserID owns records created without an authenticated caller.
const DefaultUserID = "default-user"

// Variation records one generation attempt: the prompt sent and the text returned.
type Variation struct {
	Prompt      string    `json:"prompt"`
	Result      string    `json:"result"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Thumbnail is one generated thumbnail candidate.
type Thumbnail struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}

// ThumbnailResult records one thumbnail prompt and the stored image it produced.
type ThumbnailResult struct {
	Prompt      string    `json:"prompt"`
	URL         string    `json:"url"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Timestamp is a chapter marker in the video description.
type Timestamp struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

// Topic is the unit of video-production work.
type Topic struct {
	ID          uuid.UUID
	UserID      string
	TopicName   string
	Description string

	NarrationScript           *string
	NarrationScriptVariations []Variation
	Stage                     Stage

	GeneratedTitles       []string
	TitlePromptVariations []Variation
	SelectedTitle         *string

	GeneratedThumbnails    []Thumbnail
	ThumbnailPromptResults []ThumbnailResult
	SelectedThumbnail      *string

	SEODescription *string
	Tags           []string
	Timestamps     []Timestamp
	AudioURL       *string

	ErrorMessage    *string
	ProcessedAt     *time.Time
	SourceKeywordID *uuid.UUID
	ClaimID         *uuid.UUID
	ClaimedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasScript reports whether a non-empty narration script is present.
func (t *Topic) HasScript() bool {
	return t.NarrationScript != nil && *t.NarrationScript != ""
}

// HasSelectedTitle reports whether a title has been selected.
func (t *Topic) HasSelectedTitle() bool {
	return t.SelectedTitle != nil && *t.SelectedTitle != ""
}

// HasExtraAssets reports whether the SEO description and audio have been produced.
func (t *Topic) HasExtraAssets() bool {
	return t.SEODescription != nil && t.AudioURL != nil
}

// StoredObjectURLs returns every object-store URL referenced by the topic, deduplicated.
func (t *Topic) StoredObjectURLs() []string {
	seen := make(map[string]struct{})
	var urls []string
	add := func(u string) {
		if u == "" {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	for _, th := range t.GeneratedThumbnails {
		add(th.URL)
	}
	if t.SelectedThumbnail != nil {
		add(*t.SelectedThumbnail)
	}
	if t.AudioURL != nil {
		add(*t.AudioURL)
	}
	return urls
}

// ExtraAssets is the bundle committed by one generateExtraAssets call.
type ExtraAssets struct {
	SEODescription string
	Tags           []string
	Timestamps     []Timestamp
	AudioURL       string
}

// TopicStats holds aggregate topic counts for one user.
type TopicStats struct {
	Pending    int
	Processing int
	Completed  int
	Failed     int
	Total      int
	ByLevel    map[TopicLevel]int
}
