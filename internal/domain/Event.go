package domain

import (
	"fmt"
	"time"
)

type EventType string

const (
	EventEntityChanged  EventType = "entity.changed"
	EventMessageCreated EventType = "message.created"
	EventSyncCompleted  EventType = "sync.completed"
	EventKeepalive      EventType = "keepalive"
)

// Event é o envelope publicado no barramento
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Key       string    `json:"key"`
	Data      any       `json:"data,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func UserKey(userID int) string {
	return fmt.Sprintf("user:%d", userID)
}

func PageKey(pageID string) string {
	return "page:" + pageID
}

type EntityKind string

const (
	EntityCampaign EntityKind = "campaign"
	EntityAdSet    EntityKind = "adset"
	EntityAd       EntityKind = "ad"
)

type ChangeEvent struct {
	Kind               EntityKind `json:"kind"`
	ID                 string     `json:"id"`
	AccountID          string     `json:"account_id"`
	OldStatus          string     `json:"old_status"`
	NewStatus          string     `json:"new_status"`
	OldEffectiveStatus string     `json:"old_effective_status"`
	NewEffectiveStatus string     `json:"new_effective_status"`
	OldBudget          float64    `json:"old_budget"`
	NewBudget          float64    `json:"new_budget"`
	DetectedAt         time.Time  `json:"detected_at"`
}

// EntityState é o recorte observado pelo polling
type EntityState struct {
	Kind            EntityKind
	ID              string
	AccountID       string
	Status          string
	EffectiveStatus string
	Budget          float64
}

// Snapshot indexado por "kind:id"
type Snapshot map[string]EntityState

func SnapshotKey(kind EntityKind, id string) string {
	return string(kind) + ":" + id
}

func (s Snapshot) Add(state EntityState) {
	s[SnapshotKey(state.Kind, state.ID)] = state
}
