package shared

import "fmt"

// NoticeLevel mirrors the info/warning/error toasts shown to players
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice explains to the player why an operation did nothing. Notices are
// results, not errors: state is unchanged whenever one is returned.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Info creates an informational notice
func Info(format string, args ...any) *Notice {
	return &Notice{Level: NoticeInfo, Message: fmt.Sprintf(format, args...)}
}

// Warn creates a warning notice
func Warn(format string, args ...any) *Notice {
	return &Notice{Level: NoticeWarning, Message: fmt.Sprintf(format, args...)}
}

func (n *Notice) String() string {
	if n == nil {
		return ""
	}
	return n.Message
}
