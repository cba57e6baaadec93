/*
Package ttx writes the 'cmap' table of the Last Resort font as a ttx document,
with a Format 4 subtable for the BMP and a Format 12 subtable for all of Unicode.

The header of the Format 12 subtable declares its byte length and number of
groups. These are not derived from the <map> entries, but taken from a Layout,
which by default holds the values for the Last Resort font. Groups and
Layout.Check may be used to verify a layout against the actual entries.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ttx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lastresort.ttx'
func tracer() tracing.Trace {
	return tracing.Select("lastresort.ttx")
}
