package face

import "github.com/sumwatshade/textwatch/cmd/words"

// NeedsUpdate reports whether candidate differs from the text currently on
// screen for slot. Clearing a non-empty line counts as a change.
//
// The candidate is held to the same buffer contract as the stored text, so
// an over-long candidate whose truncation equals the stored text is not a
// change.
func NeedsUpdate(slot *LineSlot, candidate string) bool {
	return !matches(slot.buffer(slot.active), candidate)
}

func matches(buf *words.LineBuffer, text string) bool {
	var next words.LineBuffer
	next.Write(text)
	return next == *buf
}
