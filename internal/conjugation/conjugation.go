// Package conjugation builds Spanish conjugation tables for five indicative
// tenses and six persons (with "vos" as the second person singular) from an
// infinitive and an irregularity flag.
package conjugation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedForm is returned by Derive and Classify when the infinitive
// does not end in -ar, -er, -ir, or one of those followed by -se.
var ErrUnsupportedForm = errors.New("unsupported infinitive form")

// Class is the regular conjugation class of an infinitive.
type Class int

const (
	ClassAR Class = iota
	ClassER
	ClassIR
)

func (c Class) String() string {
	switch c {
	case ClassAR:
		return "ar"
	case ClassER:
		return "er"
	case ClassIR:
		return "ir"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

const reflexiveSuffix = "se"

// Classify returns the regular class of infinitive and whether it is
// reflexive. Reflexive infinitives are classified by their base, so
// "levantarse" is ClassAR.
func Classify(infinitive string) (Class, bool, error) {
	reflexive := false
	base := infinitive
	if strings.HasSuffix(base, reflexiveSuffix) {
		reflexive = true
		base = strings.TrimSuffix(base, reflexiveSuffix)
	}
	switch {
	case strings.HasSuffix(base, "ar"):
		return ClassAR, reflexive, nil
	case strings.HasSuffix(base, "er"):
		return ClassER, reflexive, nil
	case strings.HasSuffix(base, "ir"):
		return ClassIR, reflexive, nil
	}
	return 0, reflexive, fmt.Errorf("%w: %q", ErrUnsupportedForm, infinitive)
}

// Conjugate returns the conjugation table for infinitive. A catalogued
// irregular verb flagged as irregular gets its hand-authored table; anything
// else is derived from the regular endings. Unsupported forms yield the empty
// table.
func Conjugate(infinitive string, irregular bool) Table {
	t, _ := Derive(infinitive, irregular)
	return t
}

// Derive is Conjugate, but also reports ErrUnsupportedForm when the returned
// table is empty.
func Derive(infinitive string, irregular bool) (Table, error) {
	if irregular {
		if t, ok := Irregular(infinitive); ok {
			return t, nil
		}
	}

	class, reflexive, err := Classify(infinitive)
	if err != nil {
		return Table{}, err
	}

	base := infinitive
	if reflexive {
		base = strings.TrimSuffix(infinitive, reflexiveSuffix)
	}
	stem := base[:len(base)-2]

	var t Table
	switch class {
	case ClassAR:
		t = RegularAR(stem)
	case ClassER:
		t = RegularER(stem)
	case ClassIR:
		t = RegularIR(stem)
	}
	if reflexive {
		t = Reflexive(t)
	}
	return t, nil
}
