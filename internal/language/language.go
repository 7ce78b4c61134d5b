package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"
)

// Verdict is the language determination for a cue sequence.
type Verdict string

const (
	Chinese   Verdict = "chinese"
	English   Verdict = "english"
	Bilingual Verdict = "bilingual"
	Unknown   Verdict = "unknown"
)

func (v Verdict) String() string { return string(v) }

// Other returns the opposite monolingual verdict, or Unknown when v is not
// monolingual.
func (v Verdict) Other() Verdict {
	switch v {
	case Chinese:
		return English
	case English:
		return Chinese
	default:
		return Unknown
	}
}

type entry struct {
	verdict Verdict
	code2   string   // ISO 639-1
	code3   string   // ISO 639-2 primary
	alt3    string   // ISO 639-2 alternate
	display string   // Human-readable name
	words   []string // Other accepted spellings
}

var languages = []entry{
	{Chinese, "zh", "zho", "chi", "Chinese", []string{"chinese", "中文", "zh-cn", "zh-hans", "zh-tw", "zh-hant", "cmn"}},
	{English, "en", "eng", "", "English", []string{"english", "en-us", "en-gb"}},
}

var byKey map[string]*entry

func init() {
	byKey = make(map[string]*entry, len(languages)*8)
	for i := range languages {
		e := &languages[i]
		byKey[e.code2] = e
		byKey[e.code3] = e
		if e.alt3 != "" {
			byKey[e.alt3] = e
		}
		byKey[string(e.verdict)] = e
		for _, w := range e.words {
			byKey[w] = e
		}
	}
}

func lookup(value string) *entry {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return nil
	}
	if e, ok := byKey[value]; ok {
		return e
	}
	if e, ok := byKey[strings.ReplaceAll(value, "_", "-")]; ok {
		return e
	}
	return nil
}

// Parse maps a language code or name to a monolingual Verdict.
func Parse(value string) (Verdict, error) {
	if e := lookup(value); e != nil {
		return e.verdict, nil
	}
	return Unknown, fmt.Errorf("unsupported language %q (expected chinese or english)", value)
}

// ToISO2 returns the ISO 639-1 code for a monolingual verdict, "" otherwise.
func ToISO2(v Verdict) string {
	if e := lookup(string(v)); e != nil {
		return e.code2
	}
	return ""
}

// DisplayName returns a human-readable name for any verdict.
func DisplayName(v Verdict) string {
	if e := lookup(string(v)); e != nil {
		return e.display
	}
	if strings.TrimSpace(string(v)) == "" {
		return "Unknown"
	}
	return cases.Title(xlanguage.Und).String(string(v))
}
