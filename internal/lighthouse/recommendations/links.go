package recommendations

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`https?://[^\s<>()\[\]"']+`)
	emptyLinkPattern  = regexp.MustCompile(`\[[^\]]*\]\(\s*\)`)
	repeatedSpaces    = regexp.MustCompile(`[ \t]{2,}`)
	trailingLeftovers = " \t\r\n.,;:!?()[]"
	leadingLeftovers  = " \t\r\n.,;:!?"
	urlTrailingPunct  = ".,;:!?"
)

// SplitLearnMore separates embedded links from a description. Every absolute
// http(s) URL is removed from the text and the first one is returned as the
// learn-more link. Sentence punctuation that followed a URL stays in the text.
// Text without URLs comes back trimmed with a nil link.
func SplitLearnMore(text string) (string, *string) {
	locs := urlPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return strings.TrimSpace(text), nil
	}
	first := strings.TrimRight(text[locs[0][0]:locs[0][1]], urlTrailingPunct)

	cleaned := removeURLs(text, locs)
	cleaned = emptyLinkPattern.ReplaceAllString(cleaned, "")
	cleaned = repeatedSpaces.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimRight(cleaned, trailingLeftovers)
	cleaned = strings.TrimLeft(cleaned, leadingLeftovers)
	return strings.TrimSpace(cleaned), &first
}

func removeURLs(text string, locs [][]int) string {
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(text[last:loc[0]])
		match := text[loc[0]:loc[1]]
		if punct := match[len(strings.TrimRight(match, urlTrailingPunct)):]; punct != "" {
			kept := strings.TrimRight(b.String(), " \t")
			b.Reset()
			b.WriteString(kept)
			b.WriteString(punct)
		}
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
