// Package appconfig holds runtime key/value configuration stored in the
// database, distinct from the process configuration loaded at startup.
package appconfig

import (
	"context"
	"strconv"
	"strings"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
)

// Entry is one configuration key/value pair. Keys are unique.
type Entry struct {
	shared.BaseEntity
	Key         string
	Value       string
	Description string
}

// NewEntry creates a config entry with a validated key
func NewEntry(key, value, description string) (*Entry, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Config key must not be empty")
	}

	return &Entry{
		BaseEntity:  shared.NewBaseEntity(),
		Key:         key,
		Value:       value,
		Description: strings.TrimSpace(description),
	}, nil
}

// SetValue updates the stored value
func (e *Entry) SetValue(value string) {
	e.Value = value
	e.Touch()
}

// AsInt parses the value as an integer
func (e *Entry) AsInt() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(e.Value))
	if err != nil {
		return 0, shared.NewDomainError("INVALID_INPUT", "Config value is not an integer")
	}
	return n, nil
}

// AsBool parses the value as a boolean
func (e *Entry) AsBool() (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(e.Value))
	if err != nil {
		return false, shared.NewDomainError("INVALID_INPUT", "Config value is not a boolean")
	}
	return b, nil
}

// Repository defines persistence operations for config entries
type Repository interface {
	FindByKey(ctx context.Context, key string) (*Entry, error)
	Save(ctx context.Context, e *Entry) error
	List(ctx context.Context) ([]Entry, error)
	Delete(ctx context.Context, key string) error
}
