package domain

import "fmt"

// Stage is the single production state of a topic.
//
// While the level is scripting the narration status varies freely. Every later
// level implies a completed script, so combinations such as finished+failed
// cannot be constructed. The zero value is not a valid stage; build one with
// ScriptingStage, ParseStage or Stage.Advance.
type Stage struct {
	level  TopicLevel
	status TopicStatus
}

// ScriptingStage returns the scripting stage with the given narration status.
func ScriptingStage(status TopicStatus) (Stage, error) {
	if !status.IsValid() {
		return Stage{}, NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	return Stage{level: TopicLevelScripting, status: status}, nil
}

// PendingStage is the stage of a freshly created or regenerated topic.
func PendingStage() Stage {
	return Stage{level: TopicLevelScripting, status: TopicStatusPending}
}

// ParseStage rebuilds a stage from its stored level and status columns.
func ParseStage(level, status string) (Stage, error) {
	lvl, st := TopicLevel(level), TopicStatus(status)
	if !lvl.IsValid() {
		return Stage{}, NewValidationError("level", fmt.Sprintf("unknown level %q", level))
	}
	if !st.IsValid() {
		return Stage{}, NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	if lvl != TopicLevelScripting && st != TopicStatusCompleted {
		return Stage{}, NewValidationError("status", fmt.Sprintf("level %q requires a completed script, got %q", level, status))
	}
	return Stage{level: lvl, status: st}, nil
}

// Level returns the production level.
func (s Stage) Level() TopicLevel { return s.level }

// Status returns the narration status.
func (s Stage) Status() TopicStatus { return s.status }

// IsZero reports whether s was never initialised.
func (s Stage) IsZero() bool { return s.level == "" }

// ScriptReady reports whether the narration script has completed.
func (s Stage) ScriptReady() bool { return s.status == TopicStatusCompleted }

// AtLeast reports whether s has reached level l.
func (s Stage) AtLeast(l TopicLevel) bool { return s.level.rank() >= l.rank() }

// Advance moves the stage forward to level to. It never regresses: advancing
// to a level already reached returns s unchanged. Leaving scripting requires a
// completed script.
func (s Stage) Advance(to TopicLevel) (Stage, error) {
	if !to.IsValid() {
		return s, NewValidationError("level", fmt.Sprintf("unknown level %q", to))
	}
	if s.AtLeast(to) {
		return s, nil
	}
	if !s.ScriptReady() {
		return s, NewPreconditionError("advance to "+string(to), "narration script is not completed")
	}
	return Stage{level: to, status: TopicStatusCompleted}, nil
}

func (s Stage) String() string {
	if s.level == TopicLevelScripting {
		return string(s.level) + "/" + string(s.status)
	}
	return string(s.level)
}
