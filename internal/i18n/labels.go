// Package i18n holds the static English/Georgian label table and
// language negotiation for HTTP clients.
package i18n

import (
	"fmt"
	"maps"
	"strings"

	"golang.org/x/text/language"

	"github.com/rezkam/hostitask/internal/domain"
)

// Lang is a supported display language.
type Lang string

const (
	English  Lang = "en"
	Georgian Lang = "ka"
)

// DefaultLang is used when nothing better can be negotiated.
const DefaultLang = English

var (
	georgianTag = language.MustParse("ka")

	// The first tag is the matcher's fallback.
	matcher = language.NewMatcher([]language.Tag{language.English, georgianTag})
)

// ParseLang validates an explicit language code such as "ka" or "en-US".
func ParseLang(s string) (Lang, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidLanguage, s)
	}
	base, _ := tag.Base()
	switch Lang(base.String()) {
	case English:
		return English, nil
	case Georgian:
		return Georgian, nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidLanguage, s)
	}
}

// Negotiate picks the best supported language for an Accept-Language header.
// Malformed or empty headers yield DefaultLang.
func Negotiate(acceptLanguage string) Lang {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLang
	}
	if index == 1 {
		return Georgian
	}
	return English
}

// Label returns the text for key in lang, falling back to English and then to the key itself.
func Label(lang Lang, key string) string {
	if v, ok := table[lang][key]; ok {
		return v
	}
	if v, ok := table[English][key]; ok {
		return v
	}
	return key
}

// Labels returns a copy of the full table for lang, with English filling any gaps.
func Labels(lang Lang) map[string]string {
	out := maps.Clone(table[English])
	maps.Copy(out, table[lang])
	return out
}

// StatusLabel returns the display name of a task status.
func StatusLabel(lang Lang, s domain.TaskStatus) string {
	return Label(lang, "status."+string(s))
}

// DepartmentLabel returns the display name of a department.
func DepartmentLabel(lang Lang, d domain.Department) string {
	return Label(lang, "department."+string(d))
}

// UrgencyLabel returns the display name of an urgency.
func UrgencyLabel(lang Lang, u domain.Urgency) string {
	return Label(lang, "urgency."+string(u))
}
