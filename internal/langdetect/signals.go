package langdetect

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// nonEnglishChars are diacritics and letters typical for other European languages,
// patterns are lowercase and matched against the lowercased text
var nonEnglishChars = []*regexp.Regexp{
	// german
	regexp.MustCompile(`[äöüß]`),
	// french
	regexp.MustCompile(`[éèêëàâçùûüÿæœ]`),
	// spanish
	regexp.MustCompile(`[áéíóúüñ¡¿]`),
	// italian
	regexp.MustCompile(`[àèìòùé]`),
	// scandinavian
	regexp.MustCompile(`[åøæ]`),
	// polish
	regexp.MustCompile(`[ąćęłńóśźż]`),
	// turkish
	regexp.MustCompile(`[şğçıöü]`),
}

var nonEnglishEndings = []*regexp.Regexp{
	regexp.MustCompile(`keit$`),
	regexp.MustCompile(`schaft$`),
	regexp.MustCompile(`ción$`),
	regexp.MustCompile(`zione$`),
	regexp.MustCompile(`mente$`),
	regexp.MustCompile(`baar$`),
	regexp.MustCompile(`lijk$`),
	regexp.MustCompile(`eur$`),
	regexp.MustCompile(`agem$`),
	regexp.MustCompile(`ção$`),
}

// closedClassWords are function words, pronouns and common short words, one set per language
var closedClassWords = []map[string]struct{}{
	wordSet("und oder wann aber kann wenn weil dass ob für nicht kein keine nur sehr schon noch jetzt immer wieder möchte würde hätte könnte sollte müsste dürfte"),
	wordSet("que como porque pero cuando donde quien cual este esta estos estas ese esa esos esas aquel aquella aquellos aquellas"),
	wordSet("est sont était être avoir faire dire voir pouvoir vouloir devoir falloir savoir quand où pourquoi qui quel quelle quels quelles ce cette ces cet"),
	wordSet("sono sei è siamo siete essere avere fare dire andare vedere dare sapere potere volere come quando dove perché chi quale quali"),
	wordSet("en hoe es er wanneer je stel kritiek et kritisk maar want omdat hoewel terwijl tenzij indien toen totdat voordat nadat zodat mits toch dus immers namelijk"),
	wordSet("eu tu ele ela nós vós eles elas isto isso aquilo mesmo mesma mesmos mesmas próprio própria próprios próprias"),
	wordSet("ben sen biz siz onlar bana sana ona bize size onlara benim senin onun bizim sizin onların"),
	wordSet("jeg mig min mit mine dig din dit dine han ham hans hun hende hendes den det de dem deres denne dette disse"),
}

// nonEnglishArticles are short articles and prepositions of romance, germanic, dutch and portuguese languages
var nonEnglishArticles = wordSet("le la les du des dans avec sans sur sous entre el los las del al con sin por der die das den dem des ein eine einen einem einer eines mit il lo gli het een op aan voor met door os dos das nos nas um uma")

func wordSet(words string) map[string]struct{} {
	fields := strings.Fields(words)
	set := make(map[string]struct{}, len(fields))
	for _, word := range fields {
		set[strings.ToLower(word)] = struct{}{}
	}
	return set
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func hasNonEnglishCharacters(text string) bool {
	return anyMatch(nonEnglishChars, strings.ToLower(text))
}

func hasNonEnglishEndings(text string) bool {
	return anyMatch(nonEnglishEndings, strings.ToLower(text))
}

func hasNonEnglishWordPatterns(text string) bool {
	lower := strings.ToLower(text)
	for _, set := range closedClassWords {
		if _, ok := set[lower]; ok {
			return true
		}
	}
	return false
}

// HasObviousNonEnglishIndicators checks a single word (or short phrase) for strong non-English signals:
// diacritics and suffixes (words without spaces only), closed-class words and articles
func HasObviousNonEnglishIndicators(text string) bool {
	if utf8.RuneCountInString(text) < 2 {
		return false
	}

	if !strings.Contains(text, " ") {
		if hasNonEnglishCharacters(text) || hasNonEnglishEndings(text) {
			return true
		}
	}

	if hasNonEnglishWordPatterns(text) {
		return true
	}

	_, ok := nonEnglishArticles[strings.ToLower(text)]
	return ok
}
