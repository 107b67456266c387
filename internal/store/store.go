// Package store provides the verb storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/verbseed/internal/model"
)

// ErrNotFound is returned when a verb is not stored.
var ErrNotFound = errors.New("verb not found")

// ListParams holds parameters for listing verbs.
type ListParams struct {
	Category      string
	IrregularOnly bool
	Limit         int
}

// SearchParams holds parameters for a reverse form lookup.
type SearchParams struct {
	Form string
	// Partial matches any form containing Form, so "levanto" also finds
	// "me levanto".
	Partial bool
	Limit   int
}

// Store defines the verb storage interface.
type Store interface {
	// Put stores a verb, replacing any verb with the same infinitive.
	Put(ctx context.Context, v model.Verb) (*model.StoredVerb, error)

	// Get retrieves a verb by infinitive.
	Get(ctx context.Context, infinitive string) (*model.StoredVerb, error)

	// List lists verbs matching the given filters in insertion order.
	List(ctx context.Context, p ListParams) ([]model.StoredVerb, error)

	// Search finds the verbs, tenses and persons that produce a form.
	Search(ctx context.Context, p SearchParams) ([]model.FormMatch, error)

	// Rm deletes a verb and its indexed forms.
	Rm(ctx context.Context, infinitive string) error

	// Close closes the store.
	Close() error
}
