package models

import "fmt"

// Status is the lifecycle state of an Item.
type Status string

const (
	StatusNew       Status = "NEW"
	StatusProcessed Status = "PROCESSED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus validates s against the known status set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNew, StatusProcessed, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("status must be one of NEW, PROCESSED, CANCELLED; got %q", s)
	}
}

// String returns the underlying string value.
func (s Status) String() string {
	return string(s)
}
