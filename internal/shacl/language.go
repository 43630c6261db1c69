package shacl

import (
	"golang.org/x/text/language"
)

// Languages lists the message languages, default first.
var Languages = []language.Tag{language.English, language.Korean}

var matcher = language.NewMatcher(Languages)

// MatchLanguage maps tag to the closest supported language.
func MatchLanguage(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Languages[0]
	}
	return Languages[idx]
}

// MatchAcceptLanguage picks a supported language from an Accept-Language
// header value, or fallback when nothing in the header is supported.
func MatchAcceptLanguage(header string, fallback language.Tag) language.Tag {
	if header == "" {
		return MatchLanguage(fallback)
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return MatchLanguage(fallback)
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return MatchLanguage(fallback)
	}
	return Languages[idx]
}

// ParseLanguage parses a BCP 47 tag such as "en" or "ko-KR".
func ParseLanguage(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, err
	}
	return MatchLanguage(tag), nil
}
