package ttx

import (
	"sort"

	"github.com/npillmayer/lastresort/glyphmap"
)

// Group is a Format 12 sequential map group: code points Start…End map to
// glyph IDs StartGID…StartGID+(End-Start).
type Group struct {
	Start, End rune
	StartGID   uint32
}

// GlyphIDs assigns glyph IDs from a glyph order. If a name occurs more than
// once, its first position counts.
func GlyphIDs(order []string) map[string]uint32 {
	ids := make(map[string]uint32, len(order))
	for i, g := range order {
		if _, ok := ids[g]; !ok {
			ids[g] = uint32(i)
		}
	}
	return ids
}

type codeGID struct {
	code rune
	gid  uint32
}

// Groups computes the Format 12 groups for cmap entries, with glyph IDs taken
// from order. Glyphs missing from order map to glyph 0. Entries with codes
// outside of Unicode are dropped.
func Groups(cmap []glyphmap.Entry, order []string) []Group {
	ids := GlyphIDs(order)
	pairs := make([]codeGID, 0, len(cmap))
	for _, e := range cmap {
		r := e.Rune()
		if r < 0 {
			tracer().Infof("dropping entry with code 0x%s", e.Code)
			continue
		}
		gid, ok := ids[e.Name]
		if !ok {
			tracer().Debugf("glyph %s not in glyph order", e.Name)
		}
		pairs = append(pairs, codeGID{code: r, gid: gid})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].code < pairs[j].code
	})
	var groups []Group
	for _, p := range pairs {
		if n := len(groups); n > 0 {
			g := &groups[n-1]
			if p.code == g.End {
				continue // first mapping for a code point wins
			}
			if p.code == g.End+1 && p.gid == g.StartGID+uint32(p.code-g.Start) {
				g.End = p.code
				continue
			}
		}
		groups = append(groups, Group{Start: p.code, End: p.code, StartGID: p.gid})
	}
	tracer().Debugf("%d cmap entries make up %d groups", len(pairs), len(groups))
	return groups
}
