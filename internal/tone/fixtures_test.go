package tone

// Test tables modeled on the Sixian (四縣) rule files.

var testVowels = map[string]string{
	"á": "a", "à": "a", "â": "a", "ǎ": "a", "ā": "a", "ã": "a",
	"é": "e", "è": "e", "ê": "e", "ě": "e", "ē": "e",
	"í": "i", "ì": "i", "î": "i", "ǐ": "i", "ī": "i",
	"ó": "o", "ò": "o", "ô": "o", "ǒ": "o", "ō": "o",
	"ú": "u", "ù": "u", "û": "u", "ǔ": "u", "ū": "u",
	"ḿ": "m", "m\u0304": "m",
	"ń": "n", "ǹ": "n", "ň": "n",
}

var testPriority = []string{"a", "o", "e", "u", "i", "n", "m"}

// testSeed mixes the key spellings found in hand-written seeds: a spacing
// accent, composed vowels, the literal "none" and checked suffixes.
var testSeed = Seed{
	"si": {
		"´":    "1",
		"à":    "2",
		"none": "3",
		"ad":   "4",
		"ǎ":    "5",
		"ád":   "8",
	},
	"ha": {
		"ˋ":  "1",
		"ˊ":  "2",
		"ˇ":  "3",
		"ad": "5",
		"ád": "8",
	},
}

var testToneDefaults = map[string]map[string]string{
	"1": {"a": "á", "o": "ó", "e": "é", "u": "ú", "i": "í", "n": "ń", "m": "ḿ"},
	"2": {"a": "à", "o": "ò", "e": "è", "u": "ù", "i": "ì", "n": "ǹ"},
	"5": {"a": "ǎ", "o": "ǒ", "e": "ě", "u": "ǔ", "i": "ǐ", "n": "ň"},
}

var testToneDialects = map[string]map[string]map[string]string{
	"四": {
		"3": {"a": "â", "o": "ô", "e": "ê", "u": "û", "i": "î"},
	},
	"海": {
		"1": {"a": "à", "o": "ò", "e": "è", "u": "ù", "i": "ì"},
		"2": {"a": "á", "o": "ó", "e": "é", "u": "ú", "i": "í"},
	},
}

func newTestTables() *Tables {
	return NewTables(TablesConfig{
		Vowels:       testVowels,
		Priority:     testPriority,
		Seed:         testSeed,
		ToneDefaults: testToneDefaults,
		ToneDialects: testToneDialects,
	})
}
