package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	Status          string
	RequestHash     string
	ResultListingID *uuid.UUID
	ExpiresAt       time.Time
}

// UserCredentials is the write-side view used to authenticate a login.
type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
	IsActive     bool
}

const (
	OutboxStatusQueued = "queued"
	OutboxStatusSent   = "sent"
	OutboxStatusFailed = "failed"
)

type OutboxMessage struct {
	Kind        string
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	Headers     map[string]string
	RunAt       time.Time
}

type OutboxEvent struct {
	ID          uuid.UUID
	Kind        string
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	Headers     map[string]string
	Attempts    int32
}
