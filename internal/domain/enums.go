package domain

// TopicStatus tracks the asynchronous narration-script generation of a topic.
type TopicStatus string

const (
	TopicStatusPending    TopicStatus = "pending"
	TopicStatusProcessing TopicStatus = "processing"
	TopicStatusCompleted  TopicStatus = "completed"
	TopicStatusFailed     TopicStatus = "failed"
)

func (s TopicStatus) String() string { return string(s) }

func (s TopicStatus) IsValid() bool {
	switch s {
	case TopicStatusPending, TopicStatusProcessing, TopicStatusCompleted, TopicStatusFailed:
		return true
	}
	return false
}

// TopicStatuses lists every status in lifecycle order.
var TopicStatuses = []TopicStatus{
	TopicStatusPending, TopicStatusProcessing, TopicStatusCompleted, TopicStatusFailed,
}

// TopicLevel is the coarse, forward-only production stage of a topic.
type TopicLevel string

const (
	TopicLevelScripting TopicLevel = "scripting"
	TopicLevelTitle     TopicLevel = "title"
	TopicLevelThumbnail TopicLevel = "thumbnail"
	TopicLevelFinished  TopicLevel = "finished"
	TopicLevelEditing   TopicLevel = "editing"
	TopicLevelUploaded  TopicLevel = "uploaded"
)

// TopicLevels lists every level in production order.
var TopicLevels = []TopicLevel{
	TopicLevelScripting, TopicLevelTitle, TopicLevelThumbnail,
	TopicLevelFinished, TopicLevelEditing, TopicLevelUploaded,
}

func (l TopicLevel) String() string { return string(l) }

func (l TopicLevel) IsValid() bool {
	return l.rank() >= 0
}

// rank returns the position of l in TopicLevels, or -1 for unknown levels.
func (l TopicLevel) rank() int {
	for i, lvl := range TopicLevels {
		if lvl == l {
			return i
		}
	}
	return -1
}

// SortOrder is the direction of a list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}
