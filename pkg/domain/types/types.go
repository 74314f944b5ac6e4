package types

import (
	"github.com/google/uuid"
)

// RecordKind identifies the shape of a demo record
type RecordKind string

const (
	RecordKindUser RecordKind = "user"
	RecordKindPost RecordKind = "post"
)

// String returns the string representation
func (k RecordKind) String() string {
	return string(k)
}

// IsValid checks if the kind is known
func (k RecordKind) IsValid() bool {
	switch k {
	case RecordKindUser, RecordKindPost:
		return true
	default:
		return false
	}
}

// RegionID identifies a display region whose content is fully replaced on each render
type RegionID string

// String returns the string representation
func (id RegionID) String() string {
	return string(id)
}

// PanelID identifies a demo panel (a result region plus its loading region)
type PanelID string

// String returns the string representation
func (id PanelID) String() string {
	return string(id)
}

// ResultRegion returns the region holding rendered results for the panel
func (id PanelID) ResultRegion() RegionID {
	return RegionID(string(id) + "-result")
}

// LoadingRegion returns the region holding the loading indicator for the panel
func (id PanelID) LoadingRegion() RegionID {
	return RegionID(string(id) + "-status")
}

const (
	// PanelDemo shows simulated requests backed by the sample data store
	PanelDemo PanelID = "demo"
	// PanelAPI shows requests sent to the remote API
	PanelAPI PanelID = "api"
)

// ActionName identifies a demo action
type ActionName string

// String returns the string representation
func (n ActionName) String() string {
	return string(n)
}

const (
	ActionLoadUsers       ActionName = "users"
	ActionLoadPosts       ActionName = "posts"
	ActionSimulateError   ActionName = "error"
	ActionLoadRemotePosts ActionName = "api-posts"
	ActionLoadRemoteUsers ActionName = "api-users"
)

// ActionState is the state of a panel while running an action
type ActionState string

const (
	ActionStateIdle     ActionState = "idle"
	ActionStateLoading  ActionState = "loading"
	ActionStateRendered ActionState = "rendered"
	ActionStateErrored  ActionState = "errored"
)

// String returns the string representation
func (s ActionState) String() string {
	return string(s)
}

// NotificationKind is the visual kind of a notification
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// String returns the string representation
func (k NotificationKind) String() string {
	return string(k)
}

// IsValid checks if the kind is known
func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationSuccess, NotificationError, NotificationInfo:
		return true
	default:
		return false
	}
}

// NotificationPhase is the lifecycle phase of a notification
type NotificationPhase string

const (
	NotificationVisible NotificationPhase = "visible"
	NotificationHidden  NotificationPhase = "hidden"
)

// NotificationID represents a notification identifier
type NotificationID string

// String returns the string representation
func (id NotificationID) String() string {
	return string(id)
}

// NewNotificationID creates a new NotificationID
func NewNotificationID() NotificationID {
	return NotificationID(uuid.New().String())
}
