package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Draft is a JSON document owned by one user+service pair and stored under a type.
// At most one Draft exists per (UserID, Service, Type).
type Draft struct {
	ID        int64
	UserID    string
	Service   string
	Type      string
	Document  json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the draft belongs to the given caller.
func (d Draft) OwnedBy(owner UserAndService) bool {
	return d.UserID == owner.UserID && d.Service == owner.Service
}

// Key is the ownership key that scopes exactly one draft per caller per type.
type Key struct {
	UserID  string
	Service string
	Type    string
}

// Owner returns the user+service part of the key.
func (k Key) Owner() UserAndService {
	return UserAndService{UserID: k.UserID, Service: k.Service}
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.UserID, k.Service, k.Type)
}

// SaveStatus reports whether an upsert created a new draft or replaced an existing one.
type SaveStatus int

const (
	SaveCreated SaveStatus = iota + 1
	SaveUpdated
)

func (s SaveStatus) String() string {
	switch s {
	case SaveCreated:
		return "created"
	case SaveUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// SaveResult is the outcome of an upsert.
type SaveResult struct {
	ID     int64
	Status SaveStatus
}

// ListFilter narrows and pages a listing of a caller's drafts.
// Drafts are ordered by ID; After is an exclusive ID cursor (0 = from the start).
type ListFilter struct {
	Type  *string
	After int64
	Limit int
}
