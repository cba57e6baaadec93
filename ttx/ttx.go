package ttx

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/lastresort/core"
)

// Layout holds the values declared in the document, which are not computed
// from the <map> entries.
type Layout struct {
	TTLibVersion   string // ttLibVersion attribute of <ttFont>
	Format12Length int    // declared byte length of the Format 12 subtable
	Format12Groups int    // declared number of groups of the Format 12 subtable
}

// Last Resort font values
const (
	DefaultTTLibVersion   = "4.33"
	DefaultFormat12Length = 851536
	DefaultFormat12Groups = 70960
)

// DefaultLayout returns the layout of the Last Resort font.
func DefaultLayout() Layout {
	return Layout{
		TTLibVersion:   DefaultTTLibVersion,
		Format12Length: DefaultFormat12Length,
		Format12Groups: DefaultFormat12Groups,
	}
}

// Format12Length returns the byte length of a Format 12 subtable with
// nGroups groups: a 16 byte header plus 12 bytes per group.
func Format12Length(nGroups int) int {
	return 16 + 12*nGroups
}

// Validate checks that the declared length fits the declared number of groups.
func (l Layout) Validate() error {
	if l.Format12Groups < 0 || l.Format12Length != Format12Length(l.Format12Groups) {
		return core.Error(core.EINVALID, "format 12 length %d does not fit %d groups",
			l.Format12Length, l.Format12Groups)
	}
	return nil
}

// Check compares the declared layout with groups computed from the actual
// entries (see Groups). It returns the byte length the groups make up, and
// an error if the declared number of groups differs.
func (l Layout) Check(groups []Group) (int, error) {
	n := len(groups)
	length := Format12Length(n)
	if n != l.Format12Groups {
		return length, core.Error(core.EINVALID,
			"format 12 subtable declares %d groups (length %d), entries make up %d groups (length %d)",
			l.Format12Groups, l.Format12Length, n, length)
	}
	return length, nil
}

const header = `<?xml version="1.0" encoding="UTF-8"?>
<ttFont sfntVersion="\x00\x01\x00\x00" ttLibVersion="%s">

  <cmap>
    <tableVersion version="0"/>
    <cmap_format_4 platformID="3" platEncID="1" language="0">
`

const middle = `    </cmap_format_4>
    <cmap_format_12 platformID="3" platEncID="10" format="12" reserved="0" length="%d" language="0" nGroups="%d">
`

const trailer = `    </cmap_format_12>
  </cmap>

</ttFont>
`

// Write writes the ttx document to w. data16 holds the <map> lines for the
// Format 4 subtable, data those for the Format 12 subtable. Both are expected
// to be newline-terminated.
func Write(w io.Writer, layout Layout, data16, data string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, header, layout.TTLibVersion)
	bw.WriteString(data16)
	fmt.Fprintf(bw, middle, layout.Format12Length, layout.Format12Groups)
	bw.WriteString(data)
	bw.WriteString(trailer)
	if err := bw.Flush(); err != nil {
		return core.WrapError(err, core.EIO, "cannot write ttx document")
	}
	tracer().Debugf("wrote ttx with %d+%d bytes of <map> entries", len(data16), len(data))
	return nil
}
