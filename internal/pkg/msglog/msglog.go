package msglog

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/pampered-pooch/site-api/internal/domain"
	"github.com/pampered-pooch/site-api/internal/pkg/id"
)

// Log appends delivered contact messages to a local JSONL file. It is a
// best-effort backup, not a system of record: append failures are logged and
// never surfaced to the caller.
type Log struct {
	path string
}

func New(path string) *Log {
	return &Log{path: path}
}

type entry struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
}

// Append records one delivered message. Safe to call concurrently only to the
// extent O_APPEND writes are; entries fit well under the atomic-append limit.
func (l *Log) Append(msg domain.ContactMessage) {
	if l == nil || l.path == "" {
		return
	}

	e := entry{
		ID:       id.New(),
		Date:     time.Now().UTC().Format(time.RFC3339),
		Name:     msg.Name,
		Email:    msg.Email,
		Phone:    msg.Phone,
		Message:  msg.Message,
		Verified: true,
	}
	line, err := json.Marshal(e)
	if err != nil {
		slog.Warn("marshal message log entry", "err", err)
		return
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		slog.Warn("open message log", "path", l.path, "err", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		slog.Warn("append message log", "path", l.path, "err", err)
	}
}
