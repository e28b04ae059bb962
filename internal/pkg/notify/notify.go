// Package notify is the transient notification channel. Messages are kept in
// a bounded ring exposed over the API and mirrored to the log; nothing blocks
// and nothing is fatal.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxRecent = 50

type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier is the port the use cases emit user-facing messages through.
type Notifier interface {
	Notify(message string)
}

// Center collects recent notifications for polling clients.
type Center struct {
	mu     sync.Mutex
	recent []Notification
	logger *zap.Logger
}

func NewCenter(logger *zap.Logger) *Center {
	return &Center{
		recent: make([]Notification, 0, maxRecent),
		logger: logger,
	}
}

func (c *Center) Notify(message string) {
	n := Notification{
		ID:      uuid.NewString(),
		Message: message,
		At:      time.Now().UTC(),
	}

	c.mu.Lock()
	c.recent = append(c.recent, n)
	if len(c.recent) > maxRecent {
		c.recent = c.recent[len(c.recent)-maxRecent:]
	}
	c.mu.Unlock()

	c.logger.Info("Notification", zap.String("id", n.ID), zap.String("message", message))
}

// Recent returns a copy of the retained notifications, oldest first.
func (c *Center) Recent() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.recent))
	copy(out, c.recent)
	return out
}
