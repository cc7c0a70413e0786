package i18n

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the locales with a full translation. The first entry is the fallback.
var Supported = []language.Tag{language.English, language.Thai}

var (
	cat     *catalog.Builder
	matcher = language.NewMatcher(Supported)
)

func init() {
	cat = catalog.NewBuilder(catalog.Fallback(language.English))
	for key := range thai {
		mustSet(language.English, key, key)
	}
	for key, msg := range thai {
		mustSet(language.Thai, key, msg)
	}
}

func mustSet(tag language.Tag, key, msg string) {
	if err := cat.SetString(tag, key, msg); err != nil {
		panic(fmt.Sprintf("i18n: register %q for %s: %v", key, tag, err))
	}
}

// Match picks the best supported locale. Candidates are tried in order and may be
// plain tags ("th") or Accept-Language values; the first one that parses wins.
func Match(candidates ...string) language.Tag {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(candidate)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, index, confidence := matcher.Match(tags...)
		if confidence == language.No {
			continue
		}
		return Supported[index]
	}
	return Supported[0]
}

func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// QuitWords returns every locale's spelling of the quit command plus "exit".
func QuitWords() []string {
	words := []string{"quit", "exit"}
	for _, tag := range Supported {
		words = append(words, NewPrinter(tag).Sprintf(MsgQuitWord))
	}
	return lo.Uniq(words)
}

// ContextKey is the gin context key holding the request's language.Tag.
const ContextKey = "locale"
