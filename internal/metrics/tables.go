package metrics

// Static word tables, built once and never mutated. English and Italian
// entries match the bilingual prompts the optimizer is used on.

var stopWords = map[string]bool{
	// Italian
	"il": true, "la": true, "le": true, "lo": true, "gli": true, "i": true,
	"un": true, "una": true, "uno": true, "di": true, "da": true, "a": true,
	"in": true, "su": true, "per": true, "con": true, "tra": true, "fra": true,
	"e": true, "o": true, "ma": true, "però": true, "anche": true, "se": true,
	"che": true, "cui": true, "dove": true, "chi": true, "cosa": true,
	"quanto": true, "quale": true, "come": true, "quando": true,
	// English
	"the": true, "an": true, "and": true, "or": true, "but": true, "on": true,
	"at": true, "to": true, "for": true, "of": true, "with": true, "by": true,
	"from": true, "up": true, "about": true, "into": true, "through": true,
	"during": true, "before": true, "after": true, "above": true, "below": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "must": true, "shall": true,
	"can": true, "if": true, "when": true, "how": true,
}

var verbosityFillers = map[string]bool{
	"basically": true, "actually": true, "really": true, "very": true,
	"quite": true, "rather": true,
	"sostanzialmente": true, "praticamente": true, "effettivamente": true,
	"molto": true, "abbastanza": true, "piuttosto": true,
}

// connectives indicate logical flow between sentences; their frequency
// feeds the coherence score.
var connectives = map[string]bool{
	"quindi": true, "perciò": true, "tuttavia": true, "inoltre": true,
	"infatti": true, "cioè": true,
	"therefore": true, "however": true, "moreover": true, "furthermore": true,
	"indeed": true, "thus": true,
}
