package property

import (
	"regexp"
	"sort"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const DefaultLanguage = "en"

// LocalizedText maps a language code to text.
type LocalizedText map[string]string

// In returns the text for lang, falling back to the default language and
// then to the first language in alphabetical order.
func (t LocalizedText) In(lang string) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t[DefaultLanguage]; ok && v != "" {
		return v
	}
	langs := make([]string, 0, len(t))
	for k := range t {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	for _, k := range langs {
		if t[k] != "" {
			return t[k]
		}
	}
	return ""
}
