package strategy

import (
	"regexp"
	"strconv"
)

// Static lookup tables, built once at init and never mutated, so
// strategies stay safe to share across concurrent optimize calls.
// English and Italian entries match the bilingual prompts this tool is
// pointed at.

// fillerWords are intensifiers and hedges that rarely carry meaning.
var fillerWords = map[string]bool{
	// Italian
	"molto": true, "abbastanza": true, "piuttosto": true, "davvero": true,
	"veramente": true, "sostanzialmente": true, "praticamente": true,
	"effettivamente": true, "ovviamente": true, "chiaramente": true,
	"sicuramente": true, "certamente": true, "probabilmente": true,
	"possibilmente": true, "eventualmente": true, "naturalmente": true,
	"attualmente": true,
	// English
	"very": true, "quite": true, "rather": true, "really": true,
	"actually": true, "basically": true, "essentially": true,
	"obviously": true, "clearly": true, "certainly": true,
	"definitely": true, "probably": true, "possibly": true,
	"eventually": true, "naturally": true, "literally": true,
	"absolutely": true, "completely": true, "totally": true,
	"extremely": true, "incredibly": true, "currently": true,
	"presently": true,
}

// defaultGuardPatterns mark contexts where a filler word changes
// meaning and must survive. Pattern-based and approximate by design;
// overridable per strategy via Config.Params["context_patterns"].
var defaultGuardPatterns = compileAll([]string{
	`very important`,
	`really need`,
	`actually means`,
	`molto importante`,
	`davvero necessario`,
	`effettivamente significa`,
})

type replacement struct {
	pattern *regexp.Regexp
	with    string
}

// redundantPhrases collapse verbose constructions. Order matters: a
// longer phrase must be rewritten before a shorter phrase it contains.
var redundantPhrases = []replacement{
	{regexp.MustCompile(`(?i)in order to`), "to"},
	{regexp.MustCompile(`(?i)for the purpose of`), "to"},
	{regexp.MustCompile(`(?i)due to the fact that`), "because"},
	{regexp.MustCompile(`(?i)in spite of the fact that`), "although"},
	{regexp.MustCompile(`(?i)at this point in time`), "now"},
	{regexp.MustCompile(`(?i)a large number of`), "many"},
	{regexp.MustCompile(`(?i)a small number of`), "few"},
	{regexp.MustCompile(`(?i)al fine di`), "per"},
	{regexp.MustCompile(`(?i)allo scopo di`), "per"},
	{regexp.MustCompile(`(?i)a causa del fatto che`), "perché"},
	{regexp.MustCompile(`(?i)nonostante il fatto che`), "anche se"},
	{regexp.MustCompile(`(?i)in questo momento`), "ora"},
	{regexp.MustCompile(`(?i)un gran numero di`), "molti"},
	{regexp.MustCompile(`(?i)un piccolo numero di`), "pochi"},
	{regexp.MustCompile(`(?i)please note that\s*`), ""},
	{regexp.MustCompile(`(?i)it should be noted that\s*`), ""},
	{regexp.MustCompile(`(?i)it is important to note that\s*`), ""},
	{regexp.MustCompile(`(?i)si noti che\s*`), ""},
	{regexp.MustCompile(`(?i)è importante notare che\s*`), ""},
	{regexp.MustCompile(`(?i)as you can see,?\s*`), ""},
	{regexp.MustCompile(`(?i)as mentioned before,?\s*`), ""},
	{regexp.MustCompile(`(?i)come si può vedere,?\s*`), ""},
	{regexp.MustCompile(`(?i)come menzionato prima,?\s*`), ""},
}

// simplificationRules rewrite nominalizations and heavy constructions.
var simplificationRules = []replacement{
	{regexp.MustCompile(`(?i)it is recommended that`), "recommend"},
	{regexp.MustCompile(`(?i)it is suggested that`), "suggest"},
	{regexp.MustCompile(`(?i)it is believed that`), "believe"},
	{regexp.MustCompile(`(?i)make a decision`), "decide"},
	{regexp.MustCompile(`(?i)give consideration to`), "consider"},
	{regexp.MustCompile(`(?i)make an assumption`), "assume"},
	{regexp.MustCompile(`(?i)conduct an analysis`), "analyze"},
	{regexp.MustCompile(`(?i)prendere una decisione`), "decidere"},
	{regexp.MustCompile(`(?i)dare considerazione a`), "considerare"},
	{regexp.MustCompile(`(?i)fare un'analisi`), "analizzare"},
	{regexp.MustCompile(`(?i)there are many (.+?) that`), "many $1"},
	{regexp.MustCompile(`(?i)there is a (.+?) that`), "a $1"},
	{regexp.MustCompile(`(?i)ci sono molti (.+?) che`), "molti $1"},
	{regexp.MustCompile(`(?i)c'è un (.+?) che`), "un $1"},
}

// abbreviations replace whole words, case-insensitively.
var abbreviations = []replacement{
	// English
	{wholeWord("information"), "info"},
	{wholeWord("maximum"), "max"},
	{wholeWord("minimum"), "min"},
	{wholeWord("administration"), "admin"},
	{wholeWord("application"), "app"},
	{wholeWord("documentation"), "docs"},
	{wholeWord("configuration"), "config"},
	{wholeWord("organization"), "org"},
	{wholeWord("university"), "univ"},
	{wholeWord("department"), "dept"},
	{wholeWord("management"), "mgmt"},
	{wholeWord("development"), "dev"},
	{wholeWord("environment"), "env"},
	{wholeWord("specification"), "spec"},
	{wholeWord("description"), "desc"},
	{wholeWord("reference"), "ref"},
	{wholeWord("example"), "ex"},
	{wholeWord("between"), "btw"},
	{wholeWord("without"), "w/o"},
	{wholeWord("within"), "w/in"},
	{wholeWord("through"), "thru"},
	{wholeWord("because"), "bc"},
	// Italian
	{wholeWord("informazione"), "info"},
	{wholeWord("informazioni"), "info"},
	{wholeWord("massimo"), "max"},
	{wholeWord("minimo"), "min"},
	{wholeWord("amministrazione"), "admin"},
	{wholeWord("applicazione"), "app"},
	{wholeWord("documentazione"), "docs"},
	{wholeWord("configurazione"), "config"},
	{wholeWord("organizzazione"), "org"},
	// \b is ASCII-only in RE2, so the accent-final word needs an
	// explicit right boundary.
	{regexp.MustCompile(`(?i)\buniversità(\z|[^\p{L}])`), "univ$1"},
	{wholeWord("dipartimento"), "dip"},
	{wholeWord("sviluppo"), "dev"},
	{wholeWord("esempio"), "es"},
	{wholeWord("riferimento"), "rif"},
	{wholeWord("descrizione"), "desc"},
	// Common technical terms
	{wholeWord("database"), "db"},
	{wholeWord("server"), "srv"},
	{wholeWord("client"), "cli"},
	{wholeWord("programming"), "prog"},
	{wholeWord("function"), "func"},
	{wholeWord("variable"), "var"},
	{wholeWord("parameter"), "param"},
	{wholeWord("algorithm"), "algo"},
}

// contractions apply standard grammatical contractions.
var contractions = []replacement{
	{wholeWord("do not"), "don't"},
	{wholeWord("does not"), "doesn't"},
	{wholeWord("did not"), "didn't"},
	{wholeWord("will not"), "won't"},
	{wholeWord("would not"), "wouldn't"},
	{wholeWord("could not"), "couldn't"},
	{wholeWord("should not"), "shouldn't"},
	{wholeWord("cannot"), "can't"},
	{wholeWord("is not"), "isn't"},
	{wholeWord("are not"), "aren't"},
	{wholeWord("was not"), "wasn't"},
	{wholeWord("were not"), "weren't"},
	{wholeWord("have not"), "haven't"},
	{wholeWord("has not"), "hasn't"},
	{wholeWord("had not"), "hadn't"},
	{wholeWord("I am"), "I'm"},
	{wholeWord("you are"), "you're"},
	{wholeWord("it is"), "it's"},
	{wholeWord("we are"), "we're"},
	{wholeWord("they are"), "they're"},
	{wholeWord("I will"), "I'll"},
	{wholeWord("you will"), "you'll"},
	{wholeWord("it will"), "it'll"},
	{wholeWord("we will"), "we'll"},
	{wholeWord("they will"), "they'll"},
	{wholeWord("I would"), "I'd"},
	{wholeWord("you would"), "you'd"},
	{wholeWord("we would"), "we'd"},
	{wholeWord("they would"), "they'd"},
}

// symbolReplacements swap words for equivalent symbols.
var symbolReplacements = []replacement{
	{wholeWord("greater than"), ">"},
	{wholeWord("less than"), "<"},
	{wholeWord("percent"), "%"},
	{wholeWord("per cent"), "%"},
	{wholeWord("plus"), "+"},
	{wholeWord("minus"), "-"},
	{wholeWord("equals"), "="},
	{wholeWord("number"), "#"},
	{wholeWord("versus"), "vs"},
	// Italian
	{wholeWord("maggiore di"), ">"},
	{wholeWord("minore di"), "<"},
	{wholeWord("percento"), "%"},
	{regexp.MustCompile(`(?i)\bpiù(\z|[^\p{L}])`), "+$1"},
	{wholeWord("meno"), "-"},
	{wholeWord("uguale"), "="},
	{wholeWord("numero"), "#"},
	{wholeWord("contro"), "vs"},
}

// removableWords may be elided when the essential-in-context guard
// does not fire.
var removableWords = map[string]bool{
	// Articles
	"a": true, "an": true, "the": true,
	"il": true, "la": true, "lo": true, "gli": true, "le": true,
	"un": true, "una": true, "uno": true,
	// Redundant prepositions
	"of": true, "in": true, "on": true, "at": true, "by": true,
	"for": true, "from": true, "up": true, "about": true,
	"di": true, "da": true, "su": true, "per": true, "con": true,
	"tra": true, "fra": true,
	// Simple conjunctions
	"and": true, "or": true, "but": true,
	"e": true, "o": true, "ma": true,
	// Redundant linkers
	"also": true, "too": true,
	"anche": true, "pure": true, "inoltre": true,
	// Intensifiers
	"just": true, "only": true, "simply": true,
	"solo": true, "soltanto": true, "semplicemente": true,
}

// essentialPatterns mark contexts where a removable word is load-bearing.
var essentialPatterns = compileAll([]string{
	`the\s+(most|best|worst|first|last)`,
	`a\s+(lot|few|little)`,
	`an\s+(example|instance)`,
})

// numberWords map written numbers to digits.
var numberWords = []replacement{
	{wholeWord("zero"), "0"},
	{wholeWord("one"), "1"},
	{wholeWord("two"), "2"},
	{wholeWord("three"), "3"},
	{wholeWord("four"), "4"},
	{wholeWord("five"), "5"},
	{wholeWord("six"), "6"},
	{wholeWord("seven"), "7"},
	{wholeWord("eight"), "8"},
	{wholeWord("nine"), "9"},
	{wholeWord("ten"), "10"},
	{wholeWord("eleven"), "11"},
	{wholeWord("twelve"), "12"},
	{wholeWord("thirteen"), "13"},
	{wholeWord("fourteen"), "14"},
	{wholeWord("fifteen"), "15"},
	{wholeWord("sixteen"), "16"},
	{wholeWord("seventeen"), "17"},
	{wholeWord("eighteen"), "18"},
	{wholeWord("nineteen"), "19"},
	{wholeWord("twenty"), "20"},
	// Italian
	{wholeWord("uno"), "1"},
	{wholeWord("due"), "2"},
	{wholeWord("tre"), "3"},
	{wholeWord("quattro"), "4"},
	{wholeWord("cinque"), "5"},
	{wholeWord("sei"), "6"},
	{wholeWord("sette"), "7"},
	{wholeWord("otto"), "8"},
	{wholeWord("nove"), "9"},
	{wholeWord("dieci"), "10"},
	{wholeWord("undici"), "11"},
	{wholeWord("dodici"), "12"},
	{wholeWord("tredici"), "13"},
	{wholeWord("quattordici"), "14"},
	{wholeWord("quindici"), "15"},
	{wholeWord("sedici"), "16"},
	{wholeWord("diciassette"), "17"},
	{wholeWord("diciotto"), "18"},
	{wholeWord("diciannove"), "19"},
	{wholeWord("venti"), "20"},
}

// monthReplacements compact spelled-out dates: "January 1, 2024" -> "1/1/2024".
var monthReplacements = buildMonthReplacements()

func buildMonthReplacements() []replacement {
	months := []string{
		"January|Jan", "February|Feb", "March|Mar", "April|Apr", "May",
		"June|Jun", "July|Jul", "August|Aug", "September|Sep|Sept",
		"October|Oct", "November|Nov", "December|Dec",
	}
	out := make([]replacement, 0, len(months))
	for i, names := range months {
		out = append(out, replacement{
			pattern: regexp.MustCompile(`(?i)\b(?:` + names + `)\s+(\d{1,2}),?\s+(\d{4})\b`),
			with:    strconv.Itoa(i+1) + "/$1/$2",
		})
	}
	return out
}

// Paragraph bucket keywords for structural classification.
var (
	contextKeywords = []string{
		"background", "context", "situation", "given", "assume", "scenario",
		"setting", "environment",
		"contesto", "situazione", "dato", "supponi", "ambiente",
	}
	instructionKeywords = []string{
		"please", "write", "create", "generate", "analyze", "explain",
		"describe", "list", "identify", "compare",
		"per favore", "scrivi", "crea", "genera", "analizza", "spiega",
		"descrivi", "elenca", "identifica", "confronta",
	}
	constraintKeywords = []string{
		"do not", "avoid", "must not", "never", "only", "limit", "restrict",
		"constraint", "requirement",
		"evita", "non devi", "mai", "solo", "limita", "restrizione",
		"vincolo", "requisito",
	}
	exampleKeywords = []string{
		"example", "for instance", "such as", "e.g.",
		"esempio", "ad esempio", "tipo",
	}
	formatKeywords = []string{
		"format", "output", "response", "answer", "result",
		"formato", "risposta", "risultato",
	}
)

func wholeWord(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}
