// Package words turns an hour and a minute into a short phrase spread over
// the three lines of the watch face.
package words

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

var (
	ErrUnknownLocale     = errors.New("unknown locale")
	ErrUnknownZeroPolicy = errors.New("unknown minute zero policy")
)

// Rules is the grammar of one locale. The renderer calls the hooks in order:
// SpecialHourWord while composing, SplitOverflow on the middle line, then
// GenderAdjust and Connective on a non-empty bottom line.
type Rules interface {
	Vocabulary() *Vocabulary
	// SpecialHourWord returns the fixed word for hours that must not go
	// through the namer (0 and 12).
	SpecialHourWord(hour int) (string, bool)
	// SplitOverflow breaks a long teen word into prefix and suffix.
	SplitOverflow(word string) (prefix, suffix string, ok bool)
	GenderAdjust(word string) string
	Connective() (string, bool)
}

// Locale selects one of the built-in rule sets.
type Locale int

const (
	English Locale = iota
	Romanian
)

var locales = []language.Tag{language.English, language.Romanian}

var matcher = language.NewMatcher(locales)

func (l Locale) String() string {
	switch l {
	case English:
		return "en"
	case Romanian:
		return "ro"
	default:
		return fmt.Sprintf("Locale(%d)", int(l))
	}
}

// Rules returns the rule set of the locale.
func (l Locale) Rules() Rules {
	if l == Romanian {
		return romanian{}
	}
	return english{}
}

// ParseLocale maps a BCP 47 tag such as "ro-RO" or "en_GB" to a locale.
func ParseLocale(s string) (Locale, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return English, fmt.Errorf("%w %q: %v", ErrUnknownLocale, s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English, fmt.Errorf("%w %q", ErrUnknownLocale, s)
	}
	return Locale(idx), nil
}

// ZeroPolicy decides what the minute 0 renders as.
type ZeroPolicy int

const (
	// ZeroExplicit renders the locale zero word ("o'clock").
	ZeroExplicit ZeroPolicy = iota
	// ZeroOmit leaves the minute clause out.
	ZeroOmit
)

func (p ZeroPolicy) String() string {
	if p == ZeroOmit {
		return "omit"
	}
	return "explicit"
}

func ParseZeroPolicy(s string) (ZeroPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "explicit":
		return ZeroExplicit, nil
	case "omit":
		return ZeroOmit, nil
	}
	return ZeroExplicit, fmt.Errorf("%w %q", ErrUnknownZeroPolicy, s)
}

// splitSuffix cuts suffix off word when word has more than limit letters.
func splitSuffix(word, suffix string, limit int) (string, string, bool) {
	if utf8.RuneCountInString(word) <= limit {
		return word, "", false
	}
	i := strings.Index(word, suffix)
	if i <= 0 {
		return word, "", false
	}
	return word[:i], word[i:], true
}
