package glyphmap

// Prefix is the common prefix of all glyph names of the Last Resort font.
const Prefix = "lastresort"

// Notdef is the name of glyph 0.
const Notdef = ".notdef"

// NotAUnicodeMarker identifies lines for noncharacter code points.
const NotAUnicodeMarker = "notaunicode"

// NotdefPlanes lists the notdef glyphs, one for each of the 17 Unicode planes.
// Each of them is duplicated 16 times in the header of the output.
var NotdefPlanes = [...]string{
	"notdefplanezero", "notdefplaneone", "notdefplanetwo",
	"notdefplanethree", "notdefplanefour", "notdefplanefive",
	"notdefplanesix", "notdefplaneseven", "notdefplaneeight",
	"notdefplanenine", "notdefplaneten", "notdefplaneeleven",
	"notdefplanetwelve", "notdefplanethirteen",
	"notdefplanefourteen", "privateplane15", "privateplane16",
}

// NotAUnicode lists the name suffixes of the 18 glyphs used for the
// 66 noncharacter code points, following "lastresortnotaunicode".
var NotAUnicode = [...]string{
	"arabic", "", "1", "2", "3", "4", "5", "6", "7", "8",
	"9", "10", "11", "12", "13", "14", "15", "16",
}

// NotAUnicodeGlyph returns the full glyph name for suffix s of NotAUnicode.
func NotAUnicodeGlyph(s string) string {
	return Prefix + NotAUnicodeMarker + s
}
