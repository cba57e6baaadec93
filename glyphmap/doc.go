/*
Package glyphmap converts the entries of a Format 13 'cmap' subtable of the
Last Resort font into glyph duplication data.

The Last Resort font maps every code point of a Unicode block (or of an
unassigned plane region) to one representative glyph. This is what a Format 13
subtable ("many-to-one range mappings") expresses. For fonts which must
carry Format 4 and Format 12 subtables instead, each representative glyph is
duplicated up to 16 times, one instance per value of the last hex digit of the
code point:

    <map code="0x0041" name="lastresortbasiclatin"/>
    ⇒ <map code="0x0041" name="lastresortbasiclatin_1"/>

A Converter consumes lines of a ttx dump of the subtable and produces

▪︎ the entries of an AFDKO “mergefonts” mapping file, telling which new glyph
is a copy of which original glyph,

▪︎ the entries of an AFDKO “GlyphOrderAndAliasDB” file, fixing glyph order,

▪︎ two fragments of re-encoded <map> lines, one for all code points and one
for the code points of the BMP.

Glyphs for the 66 noncharacter code points (names containing “notaunicode”)
are never duplicated; their lines are copied verbatim.

Lines are scraped with a regular expression, not parsed as XML. Lines which do
not look like a <map> element are ignored.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lastresort.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("lastresort.glyphs")
}
