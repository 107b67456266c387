package conjugation

// Endings appended to the stem (infinitive minus its two-letter ending)
// of regular verbs. Accents are part of the ending.
var (
	arEndings = Table{
		Presente:    {"o", "ás", "a", "amos", "áis", "an"},
		Preterito:   {"é", "aste", "ó", "amos", "asteis", "aron"},
		Imperfecto:  {"aba", "abas", "aba", "ábamos", "abais", "aban"},
		Futuro:      {"aré", "arás", "ará", "aremos", "aréis", "arán"},
		Condicional: {"aría", "arías", "aría", "aríamos", "aríais", "arían"},
	}
	erEndings = Table{
		Presente:    {"o", "és", "e", "emos", "éis", "en"},
		Preterito:   {"í", "iste", "ió", "imos", "isteis", "ieron"},
		Imperfecto:  {"ía", "ías", "ía", "íamos", "íais", "ían"},
		Futuro:      {"eré", "erás", "erá", "eremos", "eréis", "erán"},
		Condicional: {"ería", "erías", "ería", "eríamos", "eríais", "erían"},
	}
	irEndings = Table{
		Presente:    {"o", "ís", "e", "imos", "ís", "en"},
		Preterito:   {"í", "iste", "ió", "imos", "isteis", "ieron"},
		Imperfecto:  {"ía", "ías", "ía", "íamos", "íais", "ían"},
		Futuro:      {"iré", "irás", "irá", "iremos", "iréis", "irán"},
		Condicional: {"iría", "irías", "iría", "iríamos", "iríais", "irían"},
	}
)

// RegularAR conjugates an -ar stem such as "habl".
func RegularAR(stem string) Table {
	return attach(stem, arEndings)
}

// RegularER conjugates an -er stem such as "com".
func RegularER(stem string) Table {
	return attach(stem, erEndings)
}

// RegularIR conjugates an -ir stem such as "viv".
func RegularIR(stem string) Table {
	return attach(stem, irEndings)
}

func attach(stem string, endings Table) Table {
	var t Table
	for ti, forms := range endings {
		for pi, ending := range forms {
			t[ti][pi] = stem + ending
		}
	}
	return t
}
