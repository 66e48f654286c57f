package events

import "time"

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregateId"`
	EventType   string    `json:"eventType"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// Catalog actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
	ActionPrimary = "primary_set"
)

// CatalogChanged is raised when a catalog entity is written.
// EventType is "<entity>.<action>", e.g. "product.created".
type CatalogChanged struct {
	BaseEvent
	Entity  string   `json:"entity"`
	Action  string   `json:"action"`
	ActorID string   `json:"actorId,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

// NewCatalogChanged creates a CatalogChanged event
func NewCatalogChanged(entity, action, id, actorID string, fields []string, timestamp time.Time) CatalogChanged {
	return CatalogChanged{
		BaseEvent: BaseEvent{
			AggregateID: id,
			EventType:   entity + "." + action,
			Timestamp:   timestamp,
			Version:     1,
		},
		Entity:  entity,
		Action:  action,
		ActorID: actorID,
		Fields:  fields,
	}
}

// UserSignedIn is raised after a successful login.
type UserSignedIn struct {
	BaseEvent
	Email string `json:"email"`
	Mode  string `json:"mode"`
}

// NewUserSignedIn creates a UserSignedIn event
func NewUserSignedIn(userID, email, mode string, timestamp time.Time) UserSignedIn {
	return UserSignedIn{
		BaseEvent: BaseEvent{
			AggregateID: userID,
			EventType:   "user.signed_in",
			Timestamp:   timestamp,
			Version:     1,
		},
		Email: email,
		Mode:  mode,
	}
}
