package glyphmap

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/lastresort/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const headerSize = 1 + 17*16 + 18

func TestExtract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lastresort.glyphs")
	defer teardown()
	//
	e, ok := Extract(`      <map code="0x1F600" name="abc"/>`)
	require.True(t, ok)
	assert.Equal(t, Entry{Code: "1F600", Name: "abc"}, e)
	assert.Equal(t, rune(0x1F600), e.Rune())
	assert.Equal(t, 0, e.Nibble())
	assert.False(t, e.IsBMP())
	//
	e, ok = Extract(`<map code="0xfffe" name="lastresortnotaunicode"/>`)
	require.True(t, ok)
	assert.Equal(t, 14, e.Nibble())
	assert.Equal(t, "lastresortnotaunicode_e", e.Glyph())
	assert.True(t, e.IsBMP())
	//
	// the name runs up to the last "/> of the line
	e, ok = Extract(`<map code="0x41" name="a"/><map code="0x42" name="b"/>`)
	require.True(t, ok)
	assert.Equal(t, Entry{Code: "41", Name: `a"/><map code="0x42" name="b`}, e)
	//
	for _, line := range []string{
		`<cmap_format_13 platformID="3" platEncID="10" format="13">`,
		`<map code="0x" name="abc"/>`,
		`<map code="0x41" name=""/>`,
		`<map code="41" name="abc"/>`,
		``,
	} {
		_, ok = Extract(line)
		assert.False(t, ok, "line %q should not match", line)
	}
}

func TestGlyphName(t *testing.T) {
	assert.Equal(t, "x_a", GlyphName("x", 10))
	assert.Equal(t, "x_0", GlyphName("x", 0))
	assert.Equal(t, "x_10", RegistryKey("x", 10))
}

func TestHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lastresort.glyphs")
	defer teardown()
	//
	c := NewConverter()
	c.EmitHeader()
	c.EmitHeader()
	r := c.Result()
	require.Len(t, r.GlyphOrder, headerSize)
	assert.Equal(t, Mapping{Notdef, Notdef}, r.Mappings[0])
	assert.Equal(t, 17*16, c.Registry().Size())
	for _, plane := range NotdefPlanes {
		source := Prefix + plane
		count := 0
		for _, m := range r.Mappings {
			if m.Source == source {
				assert.True(t, strings.HasPrefix(m.Glyph, source+"_"))
				count++
			}
		}
		assert.Equal(t, 16, count, "plane %s", plane)
		for n := 0; n < 16; n++ {
			assert.True(t, c.Registry().Contains(RegistryKey(source, n)))
		}
	}
	assert.Equal(t, "lastresortnotdefplanezero_f", r.GlyphOrder[16])
	for i, s := range NotAUnicode {
		g := NotAUnicodeGlyph(s)
		m := r.Mappings[1+17*16+i]
		assert.Equal(t, Mapping{g, g}, m)
		assert.False(t, c.Registry().Contains(g))
	}
}

func TestLineSupplementary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lastresort.glyphs")
	defer teardown()
	//
	c := NewConverter()
	assert.True(t, c.Line(`<map code="0x1F600" name="abc"/>`))
	r := c.Result()
	assert.Equal(t, "      <map code=\"0x1F600\" name=\"abc_0\"/>\n", r.Data())
	assert.Empty(t, r.Data16())
	assert.Equal(t, []Mapping{{"abc_0", "abc"}}, r.Mappings)
	assert.Equal(t, []string{"abc_0"}, r.GlyphOrder)
}

func TestLineBMP(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lastresort.glyphs")
	defer teardown()
	//
	c := NewConverter()
	assert.True(t, c.Line(`<map code="0x0041" name="zed"/>   `))
	r := c.Result()
	expected := "      <map code=\"0x0041\" name=\"zed_1\"/>\n"
	assert.Equal(t, expected, r.Data())
	assert.Equal(t, expected, r.Data16())
	assert.Equal(t, []Entry{{Code: "0041", Name: "zed_1"}}, r.CMap)
}

func TestLineNotAUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lastresort.glyphs")
	defer teardown()
	//
	c := NewConverter()
	ffff := `      <map code="0xFFFF" name="lastresortnotaunicode"/>`
	fdd0 := `      <map code="0xfdd0" name="lastresortnotaunicodearabic"/>`
	assert.True(t, c.Line(ffff+" \t"))
	assert.True(t, c.Line(fdd0))
	r := c.Result()
	assert.Equal(t, ffff+"\n"+fdd0+"\n", r.Data())
	assert.Equal(t, fdd0+"\n", r.Data16())
	assert.Empty(t, r.Mappings, "noncharacter lines must not produce glyphs")
	assert.Equal(t, 2, r.Stats.NotAUnicode)
}

func TestLastBMPRetained(t *testing.T) {
	c := NewConverter()
	c.Line(`<map code="0xffff" name="specials"/>`)
	assert.Equal(t, "      <map code=\"0xffff\" name=\"specials_f\"/>\n", c.Result().Data16())
}

func TestLineSkipped(t *testing.T) {
	c := NewConverter()
	assert.False(t, c.Line(`<cmap_format_13 platformID="3">`))
	assert.False(t, c.Line(""))
	r := c.Result()
	assert.Empty(t, r.Data())
	assert.Equal(t, 2, r.Stats.Lines)
	assert.Equal(t, 0, r.Stats.Matched)
}

func TestDeduplication(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lastresort.glyphs")
	defer teardown()
	//
	c := NewConverter()
	c.Line(`<map code="0x0041" name="latin"/>`)
	c.Line(`<map code="0x0051" name="latin"/>`)
	c.Line(`<map code="0x004a" name="latin"/>`)
	c.Line(`<map code="0x005a" name="latin"/>`)
	r := c.Result()
	assert.Equal(t, []string{"latin_1", "latin_a"}, r.GlyphOrder)
	assert.Equal(t, 2, r.Stats.Duplicates)
	assert.Equal(t, 4, r.Stats.Full)
	assert.Equal(t, []string{"latin_1", "latin_10"}, c.Registry().Keys())
}

func TestHeaderGlyphsNotDuplicated(t *testing.T) {
	c := NewConverter()
	c.EmitHeader()
	c.Line(`<map code="0x0378" name="lastresortnotdefplanezero"/>`)
	r := c.Result()
	assert.Len(t, r.GlyphOrder, headerSize)
	assert.Equal(t, 1, r.Stats.Duplicates)
}

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<ttFont sfntVersion="\x00\x01\x00\x00" ttLibVersion="4.33">
  <cmap>
    <cmap_format_13 platformID="3" platEncID="10" format="13" reserved="0" length="16" language="0" nGroups="1">
      <map code="0x0" name="lastresortnotdefplanezero"/>
      <map code="0x41" name="lastresortbasiclatin"/>
      <map code="0x42" name="lastresortbasiclatin"/>
      <map code="0xfdd0" name="lastresortnotaunicodearabic"/>
      <map code="0xffff" name="lastresortnotaunicode"/>
      <map code="0x1f600" name="lastresortemoticons"/>
    </cmap_format_13>
  </cmap>
</ttFont>
`

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lastresort.glyphs")
	defer teardown()
	//
	r, err := Convert(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 6, r.Stats.Matched)
	assert.Equal(t, 6, r.Stats.Full)
	assert.Equal(t, 4, r.Stats.BMP)
	assert.Equal(t, headerSize+3, len(r.GlyphOrder))
	//
	var mm, goadb bytes.Buffer
	require.NoError(t, r.WriteMergeMap(&mm))
	require.NoError(t, r.WriteGlyphOrder(&goadb))
	mlines := strings.Split(strings.TrimSuffix(mm.String(), "\n"), "\n")
	assert.Equal(t, "mergefonts", mlines[0])
	assert.Equal(t, ".notdef\t.notdef", mlines[1])
	assert.Equal(t, "lastresortnotdefplanezero_0\tlastresortnotdefplanezero", mlines[2])
	assert.Equal(t, "lastresortemoticons_0\tlastresortemoticons", mlines[len(mlines)-1])
	glines := strings.Split(strings.TrimSuffix(goadb.String(), "\n"), "\n")
	assert.Equal(t, ".notdef\t.notdef", glines[0])
	assert.Equal(t, "lastresortbasiclatin_1\tlastresortbasiclatin_1", glines[headerSize])
	assert.Equal(t, len(mlines)-1, len(glines))
	//
	seen := map[string]bool{}
	for _, g := range r.GlyphOrder {
		assert.False(t, seen[g], "glyph %s listed twice", g)
		seen[g] = true
	}
}

func TestConvertDeterministic(t *testing.T) {
	r1, err := Convert(strings.NewReader(sample))
	require.NoError(t, err)
	r2, err := Convert(strings.NewReader(sample))
	require.NoError(t, err)
	var b1, b2 bytes.Buffer
	r1.WriteMergeMap(&b1)
	r2.WriteMergeMap(&b2)
	assert.Equal(t, b1.Bytes(), b2.Bytes())
	assert.Equal(t, r1.Data(), r2.Data())
	assert.Equal(t, r1.Data16(), r2.Data16())
}

func TestConvertLongLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lastresort.glyphs")
	defer teardown()
	//
	comment := "<!-- " + strings.Repeat("x", 2*1024*1024) + " -->\n"
	r, err := Convert(strings.NewReader(comment + `<map code="0x41" name="zed"/>`))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Stats.Lines)
	assert.Equal(t, 1, r.Stats.Matched)
	assert.Equal(t, "      <map code=\"0x41\" name=\"zed_1\"/>\n", r.Data())
	assert.Equal(t, "zed_1", r.GlyphOrder[len(r.GlyphOrder)-1])
}

func TestConvertLongMapLine(t *testing.T) {
	name := strings.Repeat("n", 100*1024)
	r, err := Convert(strings.NewReader(`<map code="0x1F600" name="` + name + `"/>` + "\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{name + "_0"}, r.GlyphOrder[headerSize:])
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestConvertReadError(t *testing.T) {
	_, err := Convert(failingReader{})
	require.Error(t, err)
	assert.Equal(t, core.EIO, core.Code(err))
}
