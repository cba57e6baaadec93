package glyphmap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Entry is a single <map> element of a ttx cmap dump.
type Entry struct {
	Code string // hex digits of the code point, as written in the input
	Name string // glyph name
}

var mapPattern = regexp.MustCompile(`<map code="0x([0-9a-fA-F]+)" name="(.+)"/>`)

// Extract matches a line against the <map> pattern. It is the only place
// where the matching policy lives.
func Extract(line string) (Entry, bool) {
	m := mapPattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	return Entry{Code: m[1], Name: m[2]}, true
}

// Rune returns the code point of e. Codes outside of the Unicode
// range decode to -1.
func (e Entry) Rune() rune {
	n, err := strconv.ParseUint(e.Code, 16, 32)
	if err != nil || n > 0x10FFFF {
		return -1
	}
	return rune(n)
}

// Nibble returns the value of the last hex digit of the code.
func (e Entry) Nibble() int {
	if e.Code == "" {
		return 0
	}
	n, _ := strconv.ParseUint(e.Code[len(e.Code)-1:], 16, 8)
	return int(n)
}

// IsBMP is true for codes written with at most 4 hex digits.
func (e Entry) IsBMP() bool {
	return len(e.Code) <= 4
}

// IsLastBMP is true for code 0xFFFF.
func (e Entry) IsLastBMP() bool {
	return strings.EqualFold(e.Code, "ffff")
}

// Glyph returns the name of the duplicate for e, i.e. name_<hex nibble>.
func (e Entry) Glyph() string {
	return GlyphName(e.Name, e.Nibble())
}

// GlyphName returns name_<hex n>.
func GlyphName(name string, n int) string {
	return fmt.Sprintf("%s_%x", name, n)
}

// MapLine formats a <map> element with the fixed indentation of ttx
// subtable entries.
func MapLine(code, glyph string) string {
	return fmt.Sprintf(`      <map code="0x%s" name="%s"/>`, code, glyph)
}
