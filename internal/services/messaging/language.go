package messaging

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.Russian,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the fallback language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag))
}

// Match maps any tag onto the closest supported one.
func Match(tag language.Tag) language.Tag {
	_, idx, _ := tagMatcher.Match(tag)
	return supportedTags[idx]
}

// ParseTag parses a user supplied language value such as "ru" or "en-GB".
// The bool reports whether the value named a supported language.
func ParseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Und, false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, false
	}
	_, idx, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supportedTags[idx], true
}

// ResolveTag picks a language from an explicit choice, then an
// Accept-Language header, then the fallback.
func ResolveTag(explicit, acceptLanguage string, fallback language.Tag) language.Tag {
	if tag, ok := ParseTag(explicit); ok {
		return tag
	}

	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := tagMatcher.Match(tags...)
			if confidence != language.No {
				return supportedTags[idx]
			}
		}
	}

	if fallback == language.Und {
		return Default()
	}
	return Match(fallback)
}
