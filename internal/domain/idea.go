package domain

import (
	"time"

	"github.com/google/uuid"
)

// Idea is a user-curated candidate that can be converted into a topic once.
type Idea struct {
	ID          uuid.UUID
	UserID      string
	Title       string
	Description string
	Metrics
	ConvertedToTopic bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IdeaSortField names a sortable idea column.
type IdeaSortField string

const (
	IdeaSortCreatedAt    IdeaSortField = "createdAt"
	IdeaSortTitle        IdeaSortField = "title"
	IdeaSortOverall      IdeaSortField = "overall"
	IdeaSortSearchVolume IdeaSortField = "searchVolume"
	IdeaSortCompetition  IdeaSortField = "competition"
)

func (f IdeaSortField) IsValid() bool {
	switch f {
	case IdeaSortCreatedAt, IdeaSortTitle, IdeaSortOverall, IdeaSortSearchVolume, IdeaSortCompetition:
		return true
	}
	return false
}

// IdeaFilter contains search, sorting and pagination parameters for idea lists.
type IdeaFilter struct {
	Search    string
	SortBy    IdeaSortField
	SortOrder SortOrder
	Page      int
	Limit     int
}

// IdeaStats holds aggregate idea counts for one user.
type IdeaStats struct {
	TotalIdeas     int
	ConvertedCount int
}

// IdeaPatch lists the idea fields to change; nil fields are left as is.
type IdeaPatch struct {
	Title       *string
	Description *string
}
