package conjugation

import "sort"

// irregulars holds the hand-authored tables for verbs whose forms cannot be
// derived from the regular endings. Entries are never mutated.
var irregulars = map[string]Table{
	"ser": {
		Presente:    {"soy", "sos", "es", "somos", "sois", "son"},
		Preterito:   {"fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"},
		Imperfecto:  {"era", "eras", "era", "éramos", "erais", "eran"},
		Futuro:      {"seré", "serás", "será", "seremos", "seréis", "serán"},
		Condicional: {"sería", "serías", "sería", "seríamos", "seríais", "serían"},
	},
	"estar": {
		Presente:    {"estoy", "estás", "está", "estamos", "estáis", "están"},
		Preterito:   {"estuve", "estuviste", "estuvo", "estuvimos", "estuvisteis", "estuvieron"},
		Imperfecto:  {"estaba", "estabas", "estaba", "estábamos", "estabais", "estaban"},
		Futuro:      {"estaré", "estarás", "estará", "estaremos", "estaréis", "estarán"},
		Condicional: {"estaría", "estarías", "estaría", "estaríamos", "estaríais", "estarían"},
	},
	"tener": {
		Presente:    {"tengo", "tenés", "tiene", "tenemos", "tenéis", "tienen"},
		Preterito:   {"tuve", "tuviste", "tuvo", "tuvimos", "tuvisteis", "tuvieron"},
		Imperfecto:  {"tenía", "tenías", "tenía", "teníamos", "teníais", "tenían"},
		Futuro:      {"tendré", "tendrás", "tendrá", "tendremos", "tendréis", "tendrán"},
		Condicional: {"tendría", "tendrías", "tendría", "tendríamos", "tendríais", "tendrían"},
	},
	"hacer": {
		Presente:    {"hago", "hacés", "hace", "hacemos", "hacéis", "hacen"},
		Preterito:   {"hice", "hiciste", "hizo", "hicimos", "hicisteis", "hicieron"},
		Imperfecto:  {"hacía", "hacías", "hacía", "hacíamos", "hacíais", "hacían"},
		Futuro:      {"haré", "harás", "hará", "haremos", "haréis", "harán"},
		Condicional: {"haría", "harías", "haría", "haríamos", "haríais", "harían"},
	},
	"decir": {
		Presente:    {"digo", "decís", "dice", "decimos", "decís", "dicen"},
		Preterito:   {"dije", "dijiste", "dijo", "dijimos", "dijisteis", "dijeron"},
		Imperfecto:  {"decía", "decías", "decía", "decíamos", "decíais", "decían"},
		Futuro:      {"diré", "dirás", "dirá", "diremos", "diréis", "dirán"},
		Condicional: {"diría", "dirías", "diría", "diríamos", "diríais", "dirían"},
	},
	"ir": {
		Presente:    {"voy", "vas", "va", "vamos", "vais", "van"},
		Preterito:   {"fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"},
		Imperfecto:  {"iba", "ibas", "iba", "íbamos", "ibais", "iban"},
		Futuro:      {"iré", "irás", "irá", "iremos", "iréis", "irán"},
		Condicional: {"iría", "irías", "iría", "iríamos", "iríais", "irían"},
	},
	"venir": {
		Presente:    {"vengo", "venís", "viene", "venimos", "venís", "vienen"},
		Preterito:   {"vine", "viniste", "vino", "vinimos", "vinisteis", "vinieron"},
		Imperfecto:  {"venía", "venías", "venía", "veníamos", "veníais", "venían"},
		Futuro:      {"vendré", "vendrás", "vendrá", "vendremos", "vendréis", "vendrán"},
		Condicional: {"vendría", "vendrías", "vendría", "vendríamos", "vendríais", "vendrían"},
	},
	"poder": {
		Presente:    {"puedo", "podés", "puede", "podemos", "podéis", "pueden"},
		Preterito:   {"pude", "pudiste", "pudo", "pudimos", "pudisteis", "pudieron"},
		Imperfecto:  {"podía", "podías", "podía", "podíamos", "podíais", "podían"},
		Futuro:      {"podré", "podrás", "podrá", "podremos", "podréis", "podrán"},
		Condicional: {"podría", "podrías", "podría", "podríamos", "podríais", "podrían"},
	},
	"querer": {
		Presente:    {"quiero", "querés", "quiere", "queremos", "queréis", "quieren"},
		Preterito:   {"quise", "quisiste", "quiso", "quisimos", "quisisteis", "quisieron"},
		Imperfecto:  {"quería", "querías", "quería", "queríamos", "queríais", "querían"},
		Futuro:      {"querré", "querrás", "querrá", "querremos", "querréis", "querrán"},
		Condicional: {"querría", "querrías", "querría", "querríamos", "querríais", "querrían"},
	},
	"saber": {
		Presente:    {"sé", "sabés", "sabe", "sabemos", "sabéis", "saben"},
		Preterito:   {"supe", "supiste", "supo", "supimos", "supisteis", "supieron"},
		Imperfecto:  {"sabía", "sabías", "sabía", "sabíamos", "sabíais", "sabían"},
		Futuro:      {"sabré", "sabrás", "sabrá", "sabremos", "sabréis", "sabrán"},
		Condicional: {"sabría", "sabrías", "sabría", "sabríamos", "sabríais", "sabrían"},
	},
	"dar": {
		Presente:    {"doy", "das", "da", "damos", "dais", "dan"},
		Preterito:   {"di", "diste", "dio", "dimos", "disteis", "dieron"},
		Imperfecto:  {"daba", "dabas", "daba", "dábamos", "dabais", "daban"},
		Futuro:      {"daré", "darás", "dará", "daremos", "daréis", "darán"},
		Condicional: {"daría", "darías", "daría", "daríamos", "daríais", "darían"},
	},
	"ver": {
		Presente:    {"veo", "ves", "ve", "vemos", "veis", "ven"},
		Preterito:   {"vi", "viste", "vio", "vimos", "visteis", "vieron"},
		Imperfecto:  {"veía", "veías", "veía", "veíamos", "veíais", "veían"},
		Futuro:      {"veré", "verás", "verá", "veremos", "veréis", "verán"},
		Condicional: {"vería", "verías", "vería", "veríamos", "veríais", "verían"},
	},
	"salir": {
		Presente:    {"salgo", "salís", "sale", "salimos", "salís", "salen"},
		Preterito:   {"salí", "saliste", "salió", "salimos", "salisteis", "salieron"},
		Imperfecto:  {"salía", "salías", "salía", "salíamos", "salíais", "salían"},
		Futuro:      {"saldré", "saldrás", "saldrá", "saldremos", "saldréis", "saldrán"},
		Condicional: {"saldría", "saldrías", "saldría", "saldríamos", "saldríais", "saldrían"},
	},
	"poner": {
		Presente:    {"pongo", "ponés", "pone", "ponemos", "ponéis", "ponen"},
		Preterito:   {"puse", "pusiste", "puso", "pusimos", "pusisteis", "pusieron"},
		Imperfecto:  {"ponía", "ponías", "ponía", "poníamos", "poníais", "ponían"},
		Futuro:      {"pondré", "pondrás", "pondrá", "pondremos", "pondréis", "pondrán"},
		Condicional: {"pondría", "pondrías", "pondría", "pondríamos", "pondríais", "pondrían"},
	},
	"traer": {
		Presente:    {"traigo", "traés", "trae", "traemos", "traéis", "traen"},
		Preterito:   {"traje", "trajiste", "trajo", "trajimos", "trajisteis", "trajeron"},
		Imperfecto:  {"traía", "traías", "traía", "traíamos", "traíais", "traían"},
		Futuro:      {"traeré", "traerás", "traerá", "traeremos", "traeréis", "traerán"},
		Condicional: {"traería", "traerías", "traería", "traeríamos", "traeríais", "traerían"},
	},
	"andar": {
		Presente:    {"ando", "andás", "anda", "andamos", "andáis", "andan"},
		Preterito:   {"anduve", "anduviste", "anduvo", "anduvimos", "anduvisteis", "anduvieron"},
		Imperfecto:  {"andaba", "andabas", "andaba", "andábamos", "andabais", "andaban"},
		Futuro:      {"andaré", "andarás", "andará", "andaremos", "andaréis", "andarán"},
		Condicional: {"andaría", "andarías", "andaría", "andaríamos", "andaríais", "andarían"},
	},
}

// Irregular returns the catalogued table for infinitive. The second result is
// false when the verb is not in the catalog; callers fall back to the regular
// endings in that case.
func Irregular(infinitive string) (Table, bool) {
	t, ok := irregulars[infinitive]
	return t, ok
}

// IsCatalogued reports whether infinitive has a hand-authored irregular table.
func IsCatalogued(infinitive string) bool {
	_, ok := irregulars[infinitive]
	return ok
}

// IrregularVerbs lists the catalogued infinitives in alphabetical order.
func IrregularVerbs() []string {
	out := make([]string, 0, len(irregulars))
	for inf := range irregulars {
		out = append(out, inf)
	}
	sort.Strings(out)
	return out
}
