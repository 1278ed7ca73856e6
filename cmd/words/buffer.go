package words

import "unicode/utf8"

// Capacity is the size of a line buffer in bytes, terminator included.
const Capacity = 44

// LineBuffer holds one display line. The content never exceeds Capacity-1
// bytes and is always followed by at least one NUL byte.
type LineBuffer struct {
	b [Capacity]byte
}

// Lines is the output of one render pass: top, middle and bottom line.
type Lines [3]LineBuffer

// Write zero-fills the buffer and copies s into it. Text that does not fit is
// dropped at the last rune boundary that leaves room for the terminator.
func (l *LineBuffer) Write(s string) {
	l.Reset()
	n := len(s)
	if n > Capacity-1 {
		n = Capacity - 1
		// don't leave half a letter behind
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
	}
	copy(l.b[:n], s[:n])
}

// Reset zero-fills the buffer.
func (l *LineBuffer) Reset() {
	l.b = [Capacity]byte{}
}

// Len returns the content length up to the first NUL.
func (l *LineBuffer) Len() int {
	for i, c := range l.b {
		if c == 0 {
			return i
		}
	}
	return Capacity
}

func (l *LineBuffer) String() string { return string(l.b[:l.Len()]) }

// Bytes returns the raw buffer including the NUL padding.
func (l *LineBuffer) Bytes() []byte { return l.b[:] }

// Empty reports whether the line has no content.
func (l *LineBuffer) Empty() bool { return l.b[0] == 0 }

// Strings returns the three lines as plain strings.
func (ls *Lines) Strings() [3]string {
	return [3]string{ls[0].String(), ls[1].String(), ls[2].String()}
}
