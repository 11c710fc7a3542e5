package persistence

import (
	"github.com/dms/backend/internal/domain/shared"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventLogger drains pending domain events from aggregates after a
// successful write and records them on the application log. Events stay
// in-process; there is no outbox.
type EventLogger struct {
	log *zap.Logger
}

// NewEventLogger creates a new EventLogger
func NewEventLogger(log *zap.Logger) *EventLogger {
	return &EventLogger{log: log}
}

// RegisterCallbacks hooks the event logger into GORM's create and update
// pipelines
func (el *EventLogger) RegisterCallbacks(db *gorm.DB) {
	_ = db.Callback().Create().After("gorm:create").Register("events:after_create", el.afterWrite)
	_ = db.Callback().Update().After("gorm:update").Register("events:after_update", el.afterWrite)
}

// afterWrite runs after a write statement. Failed or no-op writes keep
// their events pending so a retry can still emit them.
func (el *EventLogger) afterWrite(db *gorm.DB) {
	if db.Error != nil || db.DryRun || db.RowsAffected == 0 {
		return
	}

	if root, ok := db.Statement.Model.(shared.AggregateRoot); ok {
		el.drain(root)
		return
	}
	if root, ok := db.Statement.Dest.(shared.AggregateRoot); ok {
		el.drain(root)
	}
}

func (el *EventLogger) drain(root shared.AggregateRoot) {
	for _, event := range root.GetDomainEvents() {
		el.log.Info("domain event",
			zap.String("event_id", event.EventID().String()),
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_type", event.AggregateType()),
			zap.String("aggregate_id", event.AggregateID().String()),
			zap.String("dealer_id", event.DealerID().String()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
	root.ClearDomainEvents()
}
