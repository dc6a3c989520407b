package service

import "strings"

// englishStopWords is the standard English stop-word list used by the
// offline preprocessing pipeline. Query text must be cleaned against the
// same list so query and corpus vectors stay comparable.
var englishStopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		i me my myself we our ours ourselves you your yours yourself yourselves
		he him his himself she her hers herself it its itself they them their
		theirs themselves what which who whom this that these those am is are
		was were be been being have has had having do does did doing a an the
		and but if or because as until while of at by for with about against
		between into through during before after above below to from up down
		in out on off over under again further then once here there when where
		why how all any both each few more most other some such no nor not
		only own same so than too very s t can will just don should now d ll
		m o re ve y ain aren couldn didn doesn hadn hasn haven isn ma mightn
		mustn needn shan shouldn wasn weren won wouldn`) {
		englishStopWords[w] = struct{}{}
	}
}

// CleanText normalizes free text the same way the catalog's rich
// features were built: lower-case, non-letters stripped, stop words
// removed, tokens of length <= 2 dropped, remaining tokens lemmatized.
// Returns "" when nothing survives.
func CleanText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || r == ' ' || r == '\t' || r == '\n' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(b.String())
	kept := tokens[:0]
	for _, token := range tokens {
		if _, stop := englishStopWords[token]; stop {
			continue
		}
		if len(token) <= 2 {
			continue
		}
		kept = append(kept, lemmatize(token))
	}

	return strings.Join(kept, " ")
}

// irregularNouns covers the common irregular plurals that suffix rules
// get wrong.
var irregularNouns = map[string]string{
	"movies":   "movie",
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"people":   "person",
	"feet":     "foot",
	"teeth":    "tooth",
	"mice":     "mouse",
	"lives":    "life",
	"wives":    "wife",
	"knives":   "knife",
	"wolves":   "wolf",
	"heroes":   "hero",
}

// lemmatize reduces plural noun forms to their singular lemma with a
// small irregular table and suffix rules.
func lemmatize(token string) string {
	if lemma, ok := irregularNouns[token]; ok {
		return lemma
	}
	n := len(token)
	switch {
	case n > 4 && strings.HasSuffix(token, "ies"):
		return token[:n-3] + "y"
	case n > 4 && strings.HasSuffix(token, "sses"):
		return token[:n-2]
	case n > 4 && (strings.HasSuffix(token, "xes") ||
		strings.HasSuffix(token, "zes") ||
		strings.HasSuffix(token, "ches") ||
		strings.HasSuffix(token, "shes")):
		return token[:n-2]
	case n > 3 && strings.HasSuffix(token, "s") &&
		!strings.HasSuffix(token, "ss") &&
		!strings.HasSuffix(token, "us") &&
		!strings.HasSuffix(token, "is"):
		return token[:n-1]
	}
	return token
}
