// Package i18n loads locale files and hands out typed translation lookups.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// T translates a key. Missing keys fall back to the default locale and then
// to the key itself.
type T func(Key) string

type Bundle struct {
	fallback language.Tag
	tags     []language.Tag
	messages map[language.Tag]map[Key]string
	matcher  language.Matcher
}

// Load reads every embedded locale file. defaultLocale must be one of them.
func Load(defaultLocale string) (*Bundle, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("default locale %q: %w", defaultLocale, err)
	}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}

	b := &Bundle{fallback: fallback, messages: map[language.Tag]map[Key]string{}}
	// fallback first so the matcher prefers it on ties
	b.tags = append(b.tags, fallback)
	for _, e := range entries {
		name := e.Name()
		tag, err := language.Parse(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			return nil, fmt.Errorf("locale file %s: %w", name, err)
		}
		data, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			return nil, err
		}
		msgs := map[Key]string{}
		if err := yaml.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		b.messages[tag] = msgs
		if tag != fallback {
			b.tags = append(b.tags, tag)
		}
	}
	if _, ok := b.messages[fallback]; !ok {
		return nil, fmt.Errorf("default locale %q has no locale file", defaultLocale)
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Match picks the best supported locale for an Accept-Language header value.
func (b *Bundle) Match(acceptLanguage string) language.Tag {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.fallback
	}
	return b.tags[idx]
}

// Translator returns the lookup for tag.
func (b *Bundle) Translator(tag language.Tag) T {
	msgs := b.messages[tag]
	base := b.messages[b.fallback]
	return func(k Key) string {
		if v, ok := msgs[k]; ok && v != "" {
			return v
		}
		if v, ok := base[k]; ok && v != "" {
			return v
		}
		return string(k)
	}
}

// Messages returns the full table for tag, with fallback values filled in.
func (b *Bundle) Messages(tag language.Tag) map[Key]string {
	t := b.Translator(tag)
	out := make(map[Key]string, len(AllKeys))
	for _, k := range AllKeys {
		out[k] = t(k)
	}
	return out
}
