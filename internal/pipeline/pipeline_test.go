package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/verbseed/internal/conjugation"
	"github.com/rcliao/verbseed/internal/model"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestExpandEndToEnd(t *testing.T) {
	captureLog(t)
	records := []model.VerbRecord{
		{Infinitive: "hablar", English: "to speak"},
		{Infinitive: "tener", English: "to have", IsIrregular: true},
		{Infinitive: "xyz", English: "nonsense"},
		{Infinitive: "levantarse", English: "to get up"},
	}

	verbs, report, err := Expand(context.Background(), records, Options{})
	require.NoError(t, err)
	require.Len(t, verbs, 4)

	assert.Equal(t, "hablo", verbs[0].Conjugations[conjugation.Presente][conjugation.Yo])
	assert.Equal(t, "hablarían", verbs[0].Conjugations[conjugation.Condicional][conjugation.Ellos])
	assert.Equal(t, "tengo", verbs[1].Conjugations[conjugation.Presente][conjugation.Yo])
	assert.Equal(t, "tendremos", verbs[1].Conjugations[conjugation.Futuro][conjugation.Nosotros])
	assert.True(t, verbs[2].Conjugations.Empty())
	assert.Equal(t, "se levantan", verbs[3].Conjugations[conjugation.Presente][conjugation.Ellos])

	assert.Equal(t, 4, report.Processed)
	assert.Equal(t, 4, report.Written)
	assert.Equal(t, []string{"xyz"}, report.Unsupported)
	assert.Empty(t, report.FlagMismatches)
}

func TestExpandSkipUnsupported(t *testing.T) {
	captureLog(t)
	records := []model.VerbRecord{
		{Infinitive: "xyz", English: "nonsense"},
		{Infinitive: "vivir", English: "to live"},
	}

	verbs, report, err := Expand(context.Background(), records, Options{SkipUnsupported: true})
	require.NoError(t, err)
	require.Len(t, verbs, 1)
	assert.Equal(t, "vivir", verbs[0].Infinitive)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Written)
	assert.Equal(t, []string{"xyz"}, report.Unsupported)
}

func TestExpandPreservesOrder(t *testing.T) {
	captureLog(t)
	var records []model.VerbRecord
	for i := 0; i < 200; i++ {
		records = append(records, model.VerbRecord{Infinitive: fmt.Sprintf("v%dar", i), English: "x"})
	}

	verbs, _, err := Expand(context.Background(), records, Options{Workers: 8})
	require.NoError(t, err)
	require.Len(t, verbs, len(records))
	for i, v := range verbs {
		assert.Equal(t, records[i].Infinitive, v.Infinitive)
		assert.Equal(t, fmt.Sprintf("v%do", i), v.Conjugations[conjugation.Presente][conjugation.Yo])
	}
}

func TestExpandMissingField(t *testing.T) {
	records := []model.VerbRecord{
		{Infinitive: "hablar", English: "to speak"},
		{Infinitive: "comer"},
	}
	verbs, report, err := Expand(context.Background(), records, Options{})
	require.Error(t, err)
	assert.Nil(t, verbs)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, ErrMissingField))

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 1, recErr.Index)
	assert.Equal(t, "comer", recErr.Infinitive)
	assert.Equal(t, "english", recErr.Field)
	assert.Equal(t, "record 1 (comer): english: missing required field", err.Error())

	err = Validate([]model.VerbRecord{{English: "orphan"}})
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, "infinitive", recErr.Field)
	assert.Equal(t, "record 0: infinitive: missing required field", err.Error())
}

func TestExpandFlagMismatchIsLogged(t *testing.T) {
	buf := captureLog(t)
	records := []model.VerbRecord{{Infinitive: "cantar", English: "to sing", IsIrregular: true}}

	verbs, report, err := Expand(context.Background(), records, Options{})
	require.NoError(t, err)
	assert.Equal(t, "canto", verbs[0].Conjugations[conjugation.Presente][conjugation.Yo])
	assert.True(t, verbs[0].IsIrregular)
	assert.Equal(t, []string{"cantar"}, report.FlagMismatches)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"infinitive":"cantar"`)
}

func TestExpandCancelled(t *testing.T) {
	captureLog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Expand(ctx, []model.VerbRecord{{Infinitive: "hablar", English: "to speak"}}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExpandEmpty(t *testing.T) {
	verbs, report, err := Expand(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, verbs)
	assert.Equal(t, 0, report.Processed)
}
