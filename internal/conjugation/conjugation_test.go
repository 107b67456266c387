package conjugation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestRegularClasses(t *testing.T) {
	stems := []string{"habl", "cant", "com", "viv", "escrib", ""}
	for _, stem := range stems {
		if got := Conjugate(stem+"ar", false)[Presente][Yo]; got != stem+"o" {
			t.Errorf("Conjugate(%q)[presente][yo] = %q, want %q", stem+"ar", got, stem+"o")
		}
		if got := Conjugate(stem+"er", false)[Preterito][El]; got != stem+"ió" {
			t.Errorf("Conjugate(%q)[preterito][el] = %q, want %q", stem+"er", got, stem+"ió")
		}
		if got := Conjugate(stem+"ir", false)[Futuro][Nosotros]; got != stem+"iremos" {
			t.Errorf("Conjugate(%q)[futuro][nosotros] = %q, want %q", stem+"ir", got, stem+"iremos")
		}
	}
}

func TestRegularEndingsVerbatim(t *testing.T) {
	tests := []struct {
		infinitive string
		tense      Tense
		want       Forms
	}{
		{"hablar", Presente, Forms{"hablo", "hablás", "habla", "hablamos", "habláis", "hablan"}},
		{"hablar", Preterito, Forms{"hablé", "hablaste", "habló", "hablamos", "hablasteis", "hablaron"}},
		{"hablar", Imperfecto, Forms{"hablaba", "hablabas", "hablaba", "hablábamos", "hablabais", "hablaban"}},
		{"hablar", Futuro, Forms{"hablaré", "hablarás", "hablará", "hablaremos", "hablaréis", "hablarán"}},
		{"hablar", Condicional, Forms{"hablaría", "hablarías", "hablaría", "hablaríamos", "hablaríais", "hablarían"}},
		{"comer", Presente, Forms{"como", "comés", "come", "comemos", "coméis", "comen"}},
		{"comer", Preterito, Forms{"comí", "comiste", "comió", "comimos", "comisteis", "comieron"}},
		{"comer", Imperfecto, Forms{"comía", "comías", "comía", "comíamos", "comíais", "comían"}},
		{"comer", Futuro, Forms{"comeré", "comerás", "comerá", "comeremos", "comeréis", "comerán"}},
		{"comer", Condicional, Forms{"comería", "comerías", "comería", "comeríamos", "comeríais", "comerían"}},
		{"vivir", Presente, Forms{"vivo", "vivís", "vive", "vivimos", "vivís", "viven"}},
		{"vivir", Preterito, Forms{"viví", "viviste", "vivió", "vivimos", "vivisteis", "vivieron"}},
		{"vivir", Imperfecto, Forms{"vivía", "vivías", "vivía", "vivíamos", "vivíais", "vivían"}},
		{"vivir", Futuro, Forms{"viviré", "vivirás", "vivirá", "viviremos", "viviréis", "vivirán"}},
		{"vivir", Condicional, Forms{"viviría", "vivirías", "viviría", "viviríamos", "viviríais", "vivirían"}},
	}
	for _, tt := range tests {
		t.Run(tt.infinitive+"/"+tt.tense.String(), func(t *testing.T) {
			got := Conjugate(tt.infinitive, false)[tt.tense]
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIrregularTakesPrecedence(t *testing.T) {
	if got := Conjugate("ser", true)[Presente][Yo]; got != "soy" {
		t.Errorf("Conjugate(ser, true)[presente][yo] = %q, want %q", got, "soy")
	}
	if got := Conjugate("ser", false)[Presente][Yo]; got != "so" {
		t.Errorf("Conjugate(ser, false)[presente][yo] = %q, want %q", got, "so")
	}
	tener := Conjugate("tener", true)
	if tener[Presente][Yo] != "tengo" || tener[Futuro][Nosotros] != "tendremos" {
		t.Errorf("tener: presente.yo=%q futuro.nosotros=%q", tener[Presente][Yo], tener[Futuro][Nosotros])
	}
}

func TestIrregularFlagWithoutCatalogEntry(t *testing.T) {
	got := Conjugate("cantar", true)
	want := Conjugate("cantar", false)
	if got != want {
		t.Errorf("cantar flagged irregular should fall back to regular endings")
	}
	if IsCatalogued("cantar") {
		t.Error("cantar should not be catalogued")
	}
}

func TestIrregularCatalog(t *testing.T) {
	want := []string{"andar", "dar", "decir", "estar", "hacer", "ir", "poder", "poner",
		"querer", "saber", "salir", "ser", "tener", "traer", "venir", "ver"}
	got := IrregularVerbs()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("IrregularVerbs() = %v, want %v", got, want)
	}
	for _, inf := range got {
		tbl, ok := Irregular(inf)
		if !ok {
			t.Fatalf("Irregular(%q) missing", inf)
		}
		if !tbl.Complete() {
			t.Errorf("Irregular(%q) is not complete", inf)
		}
	}
	if _, ok := Irregular("hablar"); ok {
		t.Error("Irregular(hablar) should be absent")
	}
}

func TestIrregularSpotChecks(t *testing.T) {
	tests := []struct {
		infinitive string
		tense      Tense
		person     Person
		want       string
	}{
		{"ser", Imperfecto, Nosotros, "éramos"},
		{"estar", Presente, Vos, "estás"},
		{"hacer", Preterito, El, "hizo"},
		{"decir", Futuro, Yo, "diré"},
		{"ir", Preterito, Ellos, "fueron"},
		{"ir", Imperfecto, Nosotros, "íbamos"},
		{"venir", Condicional, Vosotros, "vendríais"},
		{"poder", Presente, El, "puede"},
		{"querer", Futuro, Ellos, "querrán"},
		{"saber", Presente, Yo, "sé"},
		{"dar", Preterito, Yo, "di"},
		{"ver", Imperfecto, Yo, "veía"},
		{"salir", Presente, Yo, "salgo"},
		{"poner", Preterito, Vos, "pusiste"},
		{"traer", Presente, Vos, "traés"},
		{"andar", Preterito, Nosotros, "anduvimos"},
	}
	for _, tt := range tests {
		if got := Conjugate(tt.infinitive, true).Form(tt.tense, tt.person); got != tt.want {
			t.Errorf("%s %s %s = %q, want %q", tt.infinitive, tt.tense, tt.person, got, tt.want)
		}
	}
}

func TestReflexive(t *testing.T) {
	tbl := Conjugate("levantarse", false)
	if got := tbl[Presente][Yo]; got != "me levanto" {
		t.Errorf("levantarse presente yo = %q, want %q", got, "me levanto")
	}
	if got := tbl[Presente][Ellos]; got != "se levantan" {
		t.Errorf("levantarse presente ellos = %q, want %q", got, "se levantan")
	}

	base := Conjugate("levantar", false)
	pronouns := []string{"me", "te", "se", "nos", "os", "se"}
	tbl.Each(func(tense Tense, person Person, form string) {
		want := pronouns[person] + " " + base[tense][person]
		if form != want {
			t.Errorf("levantarse %s %s = %q, want %q", tense, person, form, want)
		}
	})

	if got := Conjugate("aburrirse", false)[Condicional][Nosotros]; got != "nos aburriríamos" {
		t.Errorf("aburrirse condicional nosotros = %q", got)
	}
	if got := Conjugate("moverse", false)[Preterito][Vosotros]; got != "os movisteis" {
		t.Errorf("moverse preterito vosotros = %q", got)
	}
}

func TestUnsupportedForms(t *testing.T) {
	for _, inf := range []string{"xyz", "", "se", "casa", "hablase"} {
		tbl, err := Derive(inf, false)
		if !errors.Is(err, ErrUnsupportedForm) {
			t.Errorf("Derive(%q) error = %v, want ErrUnsupportedForm", inf, err)
		}
		if !tbl.Empty() {
			t.Errorf("Derive(%q) returned a non-empty table", inf)
		}
		if !Conjugate(inf, true).Empty() {
			t.Errorf("Conjugate(%q) returned a non-empty table", inf)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		infinitive string
		class      Class
		reflexive  bool
	}{
		{"hablar", ClassAR, false},
		{"comer", ClassER, false},
		{"vivir", ClassIR, false},
		{"levantarse", ClassAR, true},
		{"ponerse", ClassER, true},
		{"irse", ClassIR, true},
	}
	for _, tt := range tests {
		class, reflexive, err := Classify(tt.infinitive)
		if err != nil {
			t.Fatalf("Classify(%q): %v", tt.infinitive, err)
		}
		if class != tt.class || reflexive != tt.reflexive {
			t.Errorf("Classify(%q) = %s, %v; want %s, %v", tt.infinitive, class, reflexive, tt.class, tt.reflexive)
		}
	}
}

func TestShape(t *testing.T) {
	for _, inf := range []string{"hablar", "comer", "vivir", "lavarse", "ser", "andar"} {
		tbl := Conjugate(inf, true)
		if !tbl.Complete() {
			t.Errorf("%s: table not complete", inf)
		}
		var raw map[string]map[string]string
		b, err := json.Marshal(tbl)
		if err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			t.Fatal(err)
		}
		if len(raw) != 5 {
			t.Errorf("%s: %d tenses, want 5", inf, len(raw))
		}
		for tense, persons := range raw {
			if len(persons) != 6 {
				t.Errorf("%s %s: %d persons, want 6", inf, tense, len(persons))
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, inf := range []string{"hablar", "ser", "levantarse", "xyz"} {
		if Conjugate(inf, true) != Conjugate(inf, true) {
			t.Errorf("Conjugate(%q) is not deterministic", inf)
		}
	}
}

func TestReturnedTablesAreIndependent(t *testing.T) {
	first := Conjugate("ser", true)
	first[Presente][Yo] = "mutated"

	second := Conjugate("ser", true)
	if second[Presente][Yo] != "soy" {
		t.Fatalf("catalog table was mutated through a returned copy: %q", second[Presente][Yo])
	}
	cat, _ := Irregular("ser")
	cat[Futuro][El] = "mutated"
	if again, _ := Irregular("ser"); again[Futuro][El] != "será" {
		t.Fatalf("Irregular returned a shared table")
	}
}

func TestParseNames(t *testing.T) {
	for _, tense := range Tenses() {
		got, err := ParseTense(tense.String())
		if err != nil || got != tense {
			t.Errorf("ParseTense(%q) = %v, %v", tense, got, err)
		}
	}
	for _, person := range Persons() {
		got, err := ParsePerson(person.String())
		if err != nil || got != person {
			t.Errorf("ParsePerson(%q) = %v, %v", person, got, err)
		}
	}
	if _, err := ParseTense("subjuntivo"); err == nil {
		t.Error("ParseTense(subjuntivo) should fail")
	}
	if _, err := ParsePerson("tú"); err == nil {
		t.Error("ParsePerson(tú) should fail")
	}
}
