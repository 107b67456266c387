package conjugation

// reflexivePronouns is indexed by Person.
var reflexivePronouns = [numPersons]string{
	Yo:       "me",
	Vos:      "te",
	El:       "se",
	Nosotros: "nos",
	Vosotros: "os",
	Ellos:    "se",
}

// Reflexive prefixes every form of t with the reflexive pronoun of its person,
// separated by a single space. The empty table is returned unchanged.
func Reflexive(t Table) Table {
	if t.Empty() {
		return t
	}
	for ti := range t {
		for pi, form := range t[ti] {
			t[ti][pi] = reflexivePronouns[pi] + " " + form
		}
	}
	return t
}
