// Package model defines the verb record types read from and written to the
// seed dataset.
package model

import (
	"time"

	"github.com/rcliao/verbseed/internal/conjugation"
)

// VerbRecord is a seed entry as it appears in the input dataset.
// Unknown keys, including a previously generated "conjugations", are ignored.
type VerbRecord struct {
	Infinitive     string  `json:"infinitive"`
	English        string  `json:"english"`
	IsIrregular    bool    `json:"isIrregular,omitempty"`
	Category       *string `json:"category,omitempty"`
	ExampleSpanish *string `json:"exampleSpanish,omitempty"`
	ExampleEnglish *string `json:"exampleEnglish,omitempty"`
}

// Verb is an expanded dataset entry. Missing optional fields encode as null.
type Verb struct {
	Infinitive     string            `json:"infinitive"`
	English        string            `json:"english"`
	Conjugations   conjugation.Table `json:"conjugations"`
	ExampleSpanish *string           `json:"exampleSpanish"`
	ExampleEnglish *string           `json:"exampleEnglish"`
	IsIrregular    bool              `json:"isIrregular"`
	Category       *string           `json:"category"`
}

// StoredVerb is a Verb persisted in the verb store.
type StoredVerb struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Verb
}

// FormMatch locates one surface form inside a stored verb's table.
type FormMatch struct {
	Infinitive string `json:"infinitive"`
	English    string `json:"english"`
	Tense      string `json:"tense"`
	Person     string `json:"person"`
	Form       string `json:"form"`
}

// Expand builds the output record for r around an already computed table.
func (r VerbRecord) Expand(t conjugation.Table) Verb {
	return Verb{
		Infinitive:     r.Infinitive,
		English:        r.English,
		Conjugations:   t,
		ExampleSpanish: r.ExampleSpanish,
		ExampleEnglish: r.ExampleEnglish,
		IsIrregular:    r.IsIrregular,
		Category:       r.Category,
	}
}

// ValidCategories are the category tags used by the seed data.
// Records may carry other tags; these are only used for CLI completion.
var ValidCategories = map[string]bool{
	"essential": true,
	"social":    true,
	"slang":     true,
}
