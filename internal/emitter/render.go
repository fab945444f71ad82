package emitter

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// backtickEscape replaces a selected backtick so templates that quote the
// substitution in inline code stay unambiguous.
const backtickEscape = "` ` `"

// renderTemplate expands the two placeholder forms against the original
// decoded source, scanning left to right without overlap:
//
//	%c[±N] — the character N characters away from the one at offset
//	%x     — upper-case hex code point of the character at offset
//
// A sign without digits is not a shift; it stays literal text. Selections
// that fall outside the document substitute nothing.
func renderTemplate(tpl string, src []byte, offset int) string {
	if !strings.Contains(tpl, "%") {
		return tpl
	}

	var b strings.Builder
	b.Grow(len(tpl) + 8)
	i := 0
	for i < len(tpl) {
		c := tpl[i]
		if c != '%' || i+1 >= len(tpl) {
			b.WriteByte(c)
			i++
			continue
		}
		switch tpl[i+1] {
		case 'c':
			i += 2
			shift := 0
			if i < len(tpl) && (tpl[i] == '+' || tpl[i] == '-') {
				j := i + 1
				for j < len(tpl) && tpl[j] >= '0' && tpl[j] <= '9' {
					j++
				}
				if j > i+1 {
					n := 0
					for k := i + 1; k < j; k++ {
						n = n*10 + int(tpl[k]-'0')
						if n > 1<<20 {
							n = 1 << 20
						}
					}
					if tpl[i] == '-' {
						n = -n
					}
					shift = n
					i = j
				}
			}
			if cp, ok := selectChar(src, offset, shift); ok {
				if cp == '`' {
					b.WriteString(backtickEscape)
				} else {
					b.WriteRune(rune(cp))
				}
			}
		case 'x':
			i += 2
			if cp, ok := selectChar(src, offset, 0); ok {
				fmt.Fprintf(&b, "0x%X", cp)
			}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// selectChar picks the code point shift characters away from the one the
// byte offset lands in. An offset inside a multi-byte character snaps to
// that character's start; stepping is character-wise in both directions.
// Selections outside the document report ok=false.
func selectChar(src []byte, offset, shift int) (cp int, ok bool) {
	pos := offset
	if pos < 0 {
		pos = 0
	}
	if pos > len(src) {
		pos = len(src)
	}
	for pos > 0 && pos < len(src) && isContinuation(src[pos]) {
		pos--
	}

	for shift > 0 {
		if pos >= len(src) {
			return 0, false
		}
		_, size := decodeChar(src, pos)
		pos += size
		shift--
	}
	for shift < 0 {
		if pos <= 0 {
			return 0, false
		}
		pos = backUp(src, pos)
		shift++
	}

	if pos >= len(src) {
		return 0, false
	}
	cp, _ = decodeChar(src, pos)
	return cp, true
}

// decodeChar reads one character at pos. Unlike utf8.DecodeRune it also
// accepts WTF-8 surrogate sequences, so a lone surrogate the parser left
// in the stream reports its real code point (0xD800..0xDFFF) instead of
// the replacement character. Stray invalid bytes decode as themselves.
func decodeChar(src []byte, pos int) (cp int, size int) {
	b0 := src[pos]
	if b0 < utf8.RuneSelf {
		return int(b0), 1
	}
	if b0 == 0xED && pos+2 < len(src) &&
		src[pos+1] >= 0xA0 && src[pos+1] <= 0xBF &&
		isContinuation(src[pos+2]) {
		cp = int(b0&0x0F)<<12 | int(src[pos+1]&0x3F)<<6 | int(src[pos+2]&0x3F)
		return cp, 3
	}
	r, n := utf8.DecodeRune(src[pos:])
	if r == utf8.RuneError && n <= 1 {
		return int(b0), 1
	}
	return int(r), n
}

func backUp(src []byte, pos int) int {
	p := pos - 1
	for p > 0 && isContinuation(src[p]) && pos-p < utf8.UTFMax {
		p--
	}
	return p
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}
