package words

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithZeroPolicy sets how minute 0 is rendered.
func WithZeroPolicy(p ZeroPolicy) Option {
	return func(r *Renderer) { r.zero = p }
}

// WithASCII strips diacritics from the rendered lines ("două" -> "doua").
func WithASCII(on bool) Option {
	return func(r *Renderer) { r.ascii = on }
}

// Renderer renders times with one set of locale rules.
type Renderer struct {
	rules Rules
	zero  ZeroPolicy
	ascii bool
}

func NewRenderer(rules Rules, opts ...Option) *Renderer {
	r := &Renderer{rules: rules}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Phrase returns the full space separated phrase before line splitting.
func (r *Renderer) Phrase(hour, minute int) string {
	checkTime(hour, minute)
	voc := r.rules.Vocabulary()

	var tokens []string
	if w, ok := r.rules.SpecialHourWord(hour); ok {
		tokens = append(tokens, w)
	} else {
		tokens = append(tokens, voc.Name(hour%12)...)
	}
	if minute != 0 || r.zero == ZeroExplicit {
		tokens = append(tokens, voc.Name(minute)...)
	}
	return strings.Join(tokens, " ")
}

// Texts renders the three lines as plain strings, before they are written
// into fixed buffers.
func (r *Renderer) Texts(hour, minute int) [3]string {
	var out [3]string
	fragments := strings.Fields(r.Phrase(hour, minute))
	for i := 0; i < len(fragments) && i < 2; i++ {
		out[i] = fragments[i]
	}
	if len(fragments) > 2 {
		out[2] = strings.Join(fragments[2:], " ")
	}

	if prefix, suffix, ok := r.rules.SplitOverflow(out[1]); ok {
		out[1], out[2] = prefix, suffix
	} else if out[2] != "" {
		first, rest, _ := strings.Cut(out[2], " ")
		out[2] = r.rules.GenderAdjust(first)
		if rest != "" {
			out[2] += " " + rest
		}
		if c, ok := r.rules.Connective(); ok {
			out[2] = c + " " + out[2]
		}
	}

	if r.ascii {
		for i := range out {
			out[i] = fold(out[i])
		}
	}
	return out
}

// Render renders hour (0..23) and minute (0..59) into three line buffers.
func (r *Renderer) Render(hour, minute int) Lines {
	var lines Lines
	for i, s := range r.Texts(hour, minute) {
		lines[i].Write(s)
	}
	return lines
}

func checkTime(hour, minute int) {
	if hour < 0 || hour > 23 {
		panic(fmt.Sprintf("words: hour %d out of range 0..23", hour))
	}
	if minute < 0 || minute > 59 {
		panic(fmt.Sprintf("words: minute %d out of range 0..59", minute))
	}
}

// fold removes combining marks: "șase" -> "sase".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
