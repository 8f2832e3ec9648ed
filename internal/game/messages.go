package game

import "strings"

// MsgPriority picks the color of a line in the event log.
type MsgPriority uint8

const (
	MsgInfo        MsgPriority = iota // cyan
	MsgDiscovery                      // green
	MsgAchievement                    // yellow
	MsgHint                           // gray
)

// LogWidth is the column width log lines are wrapped at.
const LogWidth = 46

// Message is a single wrapped line of the event log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of wrapped lines.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add wraps text at LogWidth and appends the lines, evicting the oldest when full.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	for _, line := range WrapText(text, LogWidth) {
		msg := Message{Text: line, Priority: priority}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n lines (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// WrapText splits s on whitespace into lines no longer than width.
// A single word longer than width gets a line of its own.
func WrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
