package glyphmap

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/lastresort/core"
)

// Mapping is an entry of the mergefonts map: Glyph will be a copy of Source.
type Mapping struct {
	Glyph  string
	Source string
}

// Stats collects counters for a conversion run.
type Stats struct {
	Lines       int // lines read
	Matched     int // lines matching the <map> pattern
	NotAUnicode int // verbatim noncharacter lines
	Full        int // entries in the full-range fragment
	BMP         int // entries in the 16-bit fragment
	Glyphs      int // entries in the glyph order, including the header
	Duplicates  int // entries skipped by the registry
}

// Result holds everything a conversion run produces.
type Result struct {
	Mappings   []Mapping // mergefonts entries, .notdef first
	GlyphOrder []string  // glyph order, .notdef first
	CMap       []Entry   // full-range entries with their final glyph names
	Stats      Stats
	data       strings.Builder
	data16     strings.Builder
}

// Data returns the <map> lines for the full-range (Format 12) subtable.
func (r *Result) Data() string {
	return r.data.String()
}

// Data16 returns the <map> lines for the 16-bit (Format 4) subtable.
func (r *Result) Data16() string {
	return r.data16.String()
}

// Converter folds input lines into a Result.
// The zero value is not usable, use NewConverter.
type Converter struct {
	registry *Registry
	result   *Result
	header   bool
}

// NewConverter creates a Converter with an empty registry.
func NewConverter() *Converter {
	return &Converter{
		registry: NewRegistry(),
		result:   &Result{},
	}
}

// Registry returns the registry of c.
func (c *Converter) Registry() *Registry {
	return c.registry
}

// Result returns the result collected so far.
func (c *Converter) Result() *Result {
	return c.result
}

func (c *Converter) emit(glyph, source string) {
	c.result.Mappings = append(c.result.Mappings, Mapping{Glyph: glyph, Source: source})
	c.result.GlyphOrder = append(c.result.GlyphOrder, glyph)
	c.result.Stats.Glyphs++
}

// EmitHeader writes the special glyphs: .notdef, 16 instances of each of the
// plane notdef glyphs and the noncharacter glyphs. Calling it more than once
// has no effect.
func (c *Converter) EmitHeader() {
	if c.header {
		return
	}
	c.header = true
	c.emit(Notdef, Notdef)
	for _, plane := range NotdefPlanes {
		source := Prefix + plane
		for n := 0; n <= 0xf; n++ {
			c.emit(GlyphName(source, n), source)
			c.registry.Add(RegistryKey(source, n))
		}
	}
	// noncharacter glyphs are unique and not registered
	for _, s := range NotAUnicode {
		g := NotAUnicodeGlyph(s)
		c.emit(g, g)
	}
	tracer().Debugf("header has %d glyphs", c.result.Stats.Glyphs)
}

// Line processes a single input line. Lines not matching the <map> pattern
// are skipped; the return value tells if line has been matched.
func (c *Converter) Line(line string) bool {
	r := c.result
	r.Stats.Lines++
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	entry, ok := Extract(line)
	if !ok {
		return false
	}
	r.Stats.Matched++
	if strings.Contains(line, NotAUnicodeMarker) {
		r.Stats.NotAUnicode++
		c.appendFull(entry, line)
		if entry.IsBMP() && !entry.IsLastBMP() {
			c.appendBMP(line)
		}
		return true
	}
	n := entry.Nibble()
	glyph := GlyphName(entry.Name, n)
	mapline := MapLine(entry.Code, glyph)
	c.appendFull(Entry{Code: entry.Code, Name: glyph}, mapline)
	if entry.IsBMP() {
		c.appendBMP(mapline)
	}
	if c.registry.Add(RegistryKey(entry.Name, n)) {
		c.emit(glyph, entry.Name)
	} else {
		r.Stats.Duplicates++
	}
	return true
}

func (c *Converter) appendFull(entry Entry, line string) {
	c.result.CMap = append(c.result.CMap, entry)
	c.result.data.WriteString(line)
	c.result.data.WriteByte('\n')
	c.result.Stats.Full++
}

func (c *Converter) appendBMP(line string) {
	c.result.data16.WriteString(line)
	c.result.data16.WriteByte('\n')
	c.result.Stats.BMP++
}

// Convert emits the header and then processes every line from r.
func Convert(r io.Reader) (*Result, error) {
	c := NewConverter()
	c.EmitHeader()
	// lines may be of any length
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			c.Line(line)
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, core.WrapError(err, core.EIO, "cannot read input after line %d", c.result.Stats.Lines)
		}
	}
	s := c.result.Stats
	tracer().Infof("read %d lines, %d <map> entries, %d glyphs, %d duplicates skipped",
		s.Lines, s.Matched, s.Glyphs, s.Duplicates)
	return c.result, nil
}

// WriteMergeMap writes the AFDKO mergefonts map.
func (r *Result) WriteMergeMap(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("mergefonts\n")
	for _, m := range r.Mappings {
		bw.WriteString(m.Glyph)
		bw.WriteByte('\t')
		bw.WriteString(m.Source)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteGlyphOrder writes the AFDKO GlyphOrderAndAliasDB, aliasing every glyph
// to itself.
func (r *Result) WriteGlyphOrder(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, g := range r.GlyphOrder {
		bw.WriteString(g)
		bw.WriteByte('\t')
		bw.WriteString(g)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
