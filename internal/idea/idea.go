package idea

import (
	"errors"
	"fmt"
)

// Status is the lifecycle stage of an idea
type Status string

const (
	StatusInbox     Status = "inbox"     // 새로 캡처됨
	StatusProcessed Status = "processed" // 카탈로그로 분류됨
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s == StatusInbox || s == StatusProcessed
}

// Conventional tag categories. Tags is open-ended, these are just the keys
// the presentation layer knows how to label.
const (
	TagProductType = "productType"
	TagTechnique   = "technique"
	TagMaterial    = "material"
)

// Tags maps a category name to an ordered list of tag values
type Tags map[string][]string

// Get returns the tags of a category. An absent category and an empty list
// are both reported as ok=false.
func (t Tags) Get(category string) ([]string, bool) {
	values, ok := t[category]
	if !ok || len(values) == 0 {
		return nil, false
	}
	return values, true
}

// Clone returns a deep copy of t
func (t Tags) Clone() Tags {
	if t == nil {
		return nil
	}
	out := make(Tags, len(t))
	for k, v := range t {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Idea is a single woodworking project idea
type Idea struct {
	ID          string `json:"id" yaml:"id"`
	ImageURL    string `json:"imageUrl" yaml:"image_url"`
	Description string `json:"description" yaml:"description"`
	Tags        Tags   `json:"tags" yaml:"tags,omitempty"`
	Status      Status `json:"status" yaml:"status"`
}

// Clone returns a copy of the idea that shares no slices with it
func (i Idea) Clone() Idea {
	i.Tags = i.Tags.Clone()
	return i
}

var (
	ErrEmptyID       = errors.New("пустой идентификатор идеи")
	ErrInvalidStatus = errors.New("неизвестный статус идеи")
	ErrDuplicateID   = errors.New("повторяющийся идентификатор идеи")
)

// Validate checks a single record
func (i Idea) Validate() error {
	if i.ID == "" {
		return ErrEmptyID
	}
	if !i.Status.Valid() {
		return fmt.Errorf("%s: %w: %q", i.ID, ErrInvalidStatus, i.Status)
	}
	return nil
}

// ValidateAll checks every record and the uniqueness of IDs across the collection
func ValidateAll(ideas []Idea) error {
	seen := make(map[string]bool, len(ideas))
	for n, it := range ideas {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("идея #%d: %w", n+1, err)
		}
		if seen[it.ID] {
			return fmt.Errorf("%s: %w", it.ID, ErrDuplicateID)
		}
		seen[it.ID] = true
	}
	return nil
}
