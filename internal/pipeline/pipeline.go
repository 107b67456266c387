// Package pipeline expands seed verb records into full dataset entries.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rcliao/verbseed/internal/conjugation"
	"github.com/rcliao/verbseed/internal/model"
)

// ErrMissingField marks a seed record without a required field.
var ErrMissingField = errors.New("missing required field")

// RecordError locates a failing record in the input.
type RecordError struct {
	Index      int
	Infinitive string
	Field      string
	Err        error
}

func (e *RecordError) Error() string {
	if e.Infinitive != "" {
		return fmt.Sprintf("record %d (%s): %s: %v", e.Index, e.Infinitive, e.Field, e.Err)
	}
	return fmt.Sprintf("record %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Options configures a pipeline run.
type Options struct {
	// Workers bounds concurrent conjugation. Zero means GOMAXPROCS.
	Workers int
	// SkipUnsupported drops records whose infinitive has no recognised
	// ending instead of emitting them with an empty table.
	SkipUnsupported bool
}

// Report summarises a run.
type Report struct {
	Processed int `json:"processed"`
	Written   int `json:"written"`
	// Unsupported lists infinitives that produced an empty table.
	Unsupported []string `json:"unsupported,omitempty"`
	// FlagMismatches lists infinitives flagged irregular that are not in the
	// irregular catalog and were conjugated as regular verbs.
	FlagMismatches []string `json:"flag_mismatches,omitempty"`
}

// Validate checks the required fields of every record and returns the first
// failure as a *RecordError.
func Validate(records []model.VerbRecord) error {
	for i, r := range records {
		if r.Infinitive == "" {
			return &RecordError{Index: i, Field: "infinitive", Err: ErrMissingField}
		}
		if r.English == "" {
			return &RecordError{Index: i, Infinitive: r.Infinitive, Field: "english", Err: ErrMissingField}
		}
	}
	return nil
}

type result struct {
	verb        model.Verb
	unsupported bool
	mismatch    bool
}

// Expand validates records and conjugates each one. Output order matches
// input order. A missing required field aborts the run before any
// conjugation; unsupported infinitives never do.
func Expand(ctx context.Context, records []model.VerbRecord, opts Options) ([]model.Verb, *Report, error) {
	if err := Validate(records); err != nil {
		return nil, nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]result, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range records {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = expandOne(records[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	report := &Report{Processed: len(records)}
	verbs := make([]model.Verb, 0, len(records))
	for i, res := range results {
		inf := records[i].Infinitive
		if res.mismatch {
			report.FlagMismatches = append(report.FlagMismatches, inf)
			log.Warn().Int("index", i).Str("infinitive", inf).
				Msg("flagged irregular but not in the irregular catalog; conjugated as regular")
		}
		if res.unsupported {
			report.Unsupported = append(report.Unsupported, inf)
			log.Warn().Int("index", i).Str("infinitive", inf).Bool("skipped", opts.SkipUnsupported).
				Msg("unsupported infinitive form")
			if opts.SkipUnsupported {
				continue
			}
		}
		verbs = append(verbs, res.verb)
		log.Info().Str("infinitive", inf).Msg("converted")
	}
	report.Written = len(verbs)
	return verbs, report, nil
}

func expandOne(r model.VerbRecord) result {
	t, err := conjugation.Derive(r.Infinitive, r.IsIrregular)
	return result{
		verb:        r.Expand(t),
		unsupported: errors.Is(err, conjugation.ErrUnsupportedForm),
		mismatch:    r.IsIrregular && !conjugation.IsCatalogued(r.Infinitive),
	}
}
