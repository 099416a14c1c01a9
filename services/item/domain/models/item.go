package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field length limits enforced at construction and mirrored by the DB schema.
const (
	maxNameLength        = 100
	maxDescriptionLength = 255
	maxEmailLength       = 120
)

// Item is the core aggregate for this bounded context.
type Item struct {
	ID          uuid.UUID
	Name        string
	Description string // optional
	Status      Status
	Email       string // unique across the store
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem constructs a valid Item aggregate with generated ID and current timestamp.
// Email deliverability is checked separately by the application layer; this only
// enforces structural constraints.
func NewItem(name, description, status, email string) (*Item, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	if err := validateFields(name, description, email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Status:      st,
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply overwrites the item's mutable fields, enforcing the same structural
// constraints as NewItem. ID and CreatedAt never change.
func (i *Item) Apply(name, description, status, email string) error {
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}
	if err := validateFields(name, description, email); err != nil {
		return err
	}

	i.Name = name
	i.Description = description
	i.Status = st
	i.Email = email
	i.UpdatedAt = time.Now().UTC()
	return nil
}

func validateFields(name, description, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name must not exceed %d characters", maxNameLength)
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description must not exceed %d characters", maxDescriptionLength)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("email must not exceed %d characters", maxEmailLength)
	}
	return nil
}
