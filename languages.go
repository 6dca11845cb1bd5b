package humandate

// languageData holds the language definitions shipped by default. Keeping
// the tables in a single literal map keeps adding a language a data-only
// change; the tokens follow the showcase tables of the original library.
var languageData = map[string]LanguageDef{
	"es": {
		Code:      "es",
		Name:      "Español",
		Today:     []string{"hoy", "ya", "ahora"},
		Tomorrow:  []string{"mañana"},
		Yesterday: []string{"ayer"},
		Units: map[string]string{
			"d": "day",
			"s": "week",
			"m": "month",
			"a": "year",
		},
		Months: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		DateTemplate: "{day} de {month} de {year}",
	},
	"en": {
		Code:      "en",
		Name:      "English",
		Today:     []string{"today", "now"},
		Tomorrow:  []string{"tomorrow", "tmr", "tmw", "tmrw"},
		Yesterday: []string{"yesterday", "ytd"},
		Units: map[string]string{
			"d": "day",
			"w": "week",
			"m": "month",
			"y": "year",
		},
		Months: []string{
			"january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december",
		},
		DateTemplate: "{month} {day}, {year}",
	},
	"que": {
		Code:      "que",
		Name:      "Runasimi",
		Today:     []string{"kunan", "kaypi", "ña"},
		Tomorrow:  []string{"paqarin", "qaya", "haya"},
		Yesterday: []string{"qayna", "jainapunchau", "qaynunchay"},
		Units: map[string]string{
			"p": "day",
			"h": "week",
			"k": "month",
			"w": "year",
		},
		Months: []string{
			"Qulla puquy", "Hatun puquy", "Pawqar waray", "Ayriway",
			"Aymuray", "Inti raymi", "Anta Sitwa", "Qhapaq Sitwa",
			"Quya raymi", "Kantaray", "Ayamarq'a", "Qhapaq Raymi",
		},
		DateTemplate: "{day} {month} killa, {year}",
	},
}

// Spanish returns the built-in Spanish language.
func Spanish() *Language { return builtin("es") }

// English returns the built-in English language.
func English() *Language { return builtin("en") }

// Quechua returns the built-in Quechua language.
func Quechua() *Language { return builtin("que") }

func builtin(code string) *Language {
	return MustLanguage(languageData[code])
}

// builtinLanguages constructs every shipped language, used to seed a
// Registry.
func builtinLanguages() []*Language {
	langs := make([]*Language, 0, len(languageData))
	for _, code := range []string{"es", "en", "que"} {
		langs = append(langs, builtin(code))
	}
	return langs
}
