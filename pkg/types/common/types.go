// Package common holds the small set of cross-cutting value types shared by
// every layer of MolViz-Engine: identifiers, timestamps, and the audit base
// embedded in transient models.
package common

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ID is a string alias for UUID v4.
type ID string

// NewID generates a new UUID v4.
func NewID() ID {
	return ID(uuid.New().String())
}

// Validate checks if the ID is a valid UUID.
func (id ID) Validate() error {
	if id == "" {
		return fmt.Errorf("ID cannot be empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return fmt.Errorf("invalid ID format: %w", err)
	}
	return nil
}

// Timestamp is a time.Time alias with ISO 8601 JSON serialization.
type Timestamp time.Time

// NewTimestamp returns the current UTC time as a Timestamp.
func NewTimestamp() Timestamp {
	return Timestamp(time.Now().UTC())
}

// MarshalJSON implements json.Marshaler, using RFC 3339 format.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	*t = Timestamp(parsed.UTC())
	return nil
}

// BaseEntity carries identity and creation metadata for constructed models.
// All MolViz models are transient (rebuilt per request), so there is no
// update/version bookkeeping here.
type BaseEntity struct {
	ID        ID        `json:"id"`
	CreatedAt Timestamp `json:"created_at"`
}

// NewBaseEntity returns a BaseEntity with a fresh UUID and the current time.
func NewBaseEntity() BaseEntity {
	return BaseEntity{
		ID:        NewID(),
		CreatedAt: NewTimestamp(),
	}
}

// Metadata is an open-ended key-value bag.
type Metadata map[string]interface{}
