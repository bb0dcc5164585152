package browse

import (
	"path"

	"github.com/filetug/allocfs/pkg/files"
	"github.com/google/uuid"
)

// Session scopes browsing to one allocation and optional task.
// Requests issued under a session are never applied to another one.
type Session struct {
	ID       uuid.UUID
	AllocID  string
	TaskName string
}

func newSession(allocID, taskName string) *Session {
	return &Session{
		ID:       uuid.New(),
		AllocID:  allocID,
		TaskName: taskName,
	}
}

// EffectivePath maps a browsing path to the path inside the allocation directory.
func (s *Session) EffectivePath(p string) string {
	p = files.CleanPath(p)
	if s.TaskName == "" {
		return p
	}
	return path.Join("/", s.TaskName, p)
}

func (s *Session) matches(allocID, taskName string) bool {
	return s != nil && s.AllocID == allocID && s.TaskName == taskName
}
