package audit

import (
	"context"
	"time"

	"github.com/medonline/consultation-scheduler/internal/store"
)

type entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id,omitempty"`
	Metadata  any       `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Logger appends audit entries under audit/{id} in the record store.
type Logger struct {
	store store.Store
}

func New(s store.Store) *Logger {
	return &Logger{store: s}
}

func (l *Logger) Log(
	userID string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	id := l.store.NewID()
	return l.store.Write(context.Background(), "audit/"+id, entry{
		ID:        id,
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	})
}
