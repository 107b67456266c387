package conjugation

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Tense is one of the five conjugated tenses, in canonical order.
type Tense int

const (
	Presente Tense = iota
	Preterito
	Imperfecto
	Futuro
	Condicional

	numTenses
)

var tenseNames = [numTenses]string{
	Presente:    "presente",
	Preterito:   "preterito",
	Imperfecto:  "imperfecto",
	Futuro:      "futuro",
	Condicional: "condicional",
}

func (t Tense) String() string {
	if t < 0 || t >= numTenses {
		return fmt.Sprintf("Tense(%d)", int(t))
	}
	return tenseNames[t]
}

// Tenses returns all tenses in canonical order.
func Tenses() []Tense {
	return []Tense{Presente, Preterito, Imperfecto, Futuro, Condicional}
}

// ParseTense maps a tense name such as "futuro" to its Tense.
func ParseTense(name string) (Tense, error) {
	for i, n := range tenseNames {
		if n == name {
			return Tense(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tense %q", name)
}

// Person is the grammatical subject a form is conjugated for.
// El covers él/ella/usted and Ellos covers ellos/ellas/ustedes.
type Person int

const (
	Yo Person = iota
	Vos
	El
	Nosotros
	Vosotros
	Ellos

	numPersons
)

var personNames = [numPersons]string{
	Yo:       "yo",
	Vos:      "vos",
	El:       "el",
	Nosotros: "nosotros",
	Vosotros: "vosotros",
	Ellos:    "ellos",
}

func (p Person) String() string {
	if p < 0 || p >= numPersons {
		return fmt.Sprintf("Person(%d)", int(p))
	}
	return personNames[p]
}

// Persons returns all persons in canonical order.
func Persons() []Person {
	return []Person{Yo, Vos, El, Nosotros, Vosotros, Ellos}
}

// ParsePerson maps a person label such as "nosotros" to its Person.
func ParsePerson(name string) (Person, error) {
	for i, n := range personNames {
		if n == name {
			return Person(i), nil
		}
	}
	return 0, fmt.Errorf("unknown person %q", name)
}

// Forms holds the six conjugated forms of one tense, indexed by Person.
type Forms [numPersons]string

// Table holds a full conjugation, indexed by Tense then Person.
// The zero value is the empty table. Table is an array, so assigning or
// returning it copies every form.
type Table [numTenses]Forms

// ErrMalformedTable is returned when decoding a table that is neither empty
// nor complete.
var ErrMalformedTable = errors.New("malformed conjugation table")

// Empty reports whether the table holds no forms.
func (t Table) Empty() bool {
	return t == Table{}
}

// Complete reports whether every tense and person has a non-empty form.
func (t Table) Complete() bool {
	for _, forms := range t {
		for _, f := range forms {
			if f == "" {
				return false
			}
		}
	}
	return true
}

// Form returns the form for the given tense and person.
func (t Table) Form(tense Tense, person Person) string {
	return t[tense][person]
}

// Each calls fn for every form in canonical tense/person order.
// Empty tables yield nothing.
func (t Table) Each(fn func(tense Tense, person Person, form string)) {
	if t.Empty() {
		return
	}
	for ti, forms := range t {
		for pi, f := range forms {
			fn(Tense(ti), Person(pi), f)
		}
	}
}

// formsJSON and tableJSON pin the key order of the encoded output.
type formsJSON struct {
	Yo       string `json:"yo"`
	Vos      string `json:"vos"`
	El       string `json:"el"`
	Nosotros string `json:"nosotros"`
	Vosotros string `json:"vosotros"`
	Ellos    string `json:"ellos"`
}

type tableJSON struct {
	Presente    Forms `json:"presente"`
	Preterito   Forms `json:"preterito"`
	Imperfecto  Forms `json:"imperfecto"`
	Futuro      Forms `json:"futuro"`
	Condicional Forms `json:"condicional"`
}

func (f Forms) MarshalJSON() ([]byte, error) {
	return json.Marshal(formsJSON{
		Yo:       f[Yo],
		Vos:      f[Vos],
		El:       f[El],
		Nosotros: f[Nosotros],
		Vosotros: f[Vosotros],
		Ellos:    f[Ellos],
	})
}

// MarshalJSON encodes an empty table as {} and a complete one as a nested
// object keyed by tense then person, both in canonical order.
func (t Table) MarshalJSON() ([]byte, error) {
	if t.Empty() {
		return []byte("{}"), nil
	}
	return json.Marshal(tableJSON{
		Presente:    t[Presente],
		Preterito:   t[Preterito],
		Imperfecto:  t[Imperfecto],
		Futuro:      t[Futuro],
		Condicional: t[Condicional],
	})
}

// UnmarshalJSON accepts {} or a table with all five tenses and six persons.
func (t *Table) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out Table
	if len(raw) == 0 {
		*t = out
		return nil
	}
	if len(raw) != int(numTenses) {
		return fmt.Errorf("%w: want %d tenses, got %d", ErrMalformedTable, numTenses, len(raw))
	}
	for tenseName, persons := range raw {
		tense, err := ParseTense(tenseName)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedTable, err)
		}
		if len(persons) != int(numPersons) {
			return fmt.Errorf("%w: %s: want %d persons, got %d", ErrMalformedTable, tenseName, numPersons, len(persons))
		}
		for personName, form := range persons {
			person, err := ParsePerson(personName)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrMalformedTable, tenseName, err)
			}
			if form == "" {
				return fmt.Errorf("%w: %s.%s is empty", ErrMalformedTable, tenseName, personName)
			}
			out[tense][person] = form
		}
	}
	*t = out
	return nil
}
