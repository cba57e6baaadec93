/*
Command lastresort13to12 takes as its only argument a ttx dump of a Format 13
'cmap' subtable of the Last Resort font, and generates three files:

	mergefonts.map          AFDKO mergefonts mapping file
	GlyphOrderAndAliasDB2   AFDKO makeotf glyph order and alias file
	cmap-f12.ttx            'cmap' table with Format 4 and Format 12 subtables

Usage:

	lastresort13to12 [-trace level] [-outdir dir] [-check] cmap-f13.ttx

Without flags, files are written to the current directory.

Settings may be put into a NestedText file at the usual configuration
locations, e.g. ~/.config/lastresort/config.nt:

	ttx:
	    ttlibversion: 4.33
	    format12:
	        length: 851536
	        ngroups: 70960

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/lastresort/core"
	"github.com/npillmayer/lastresort/glyphmap"
	"github.com/npillmayer/lastresort/ttx"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const version = "1.0.0"

// Output files
const (
	MergeMapFile   = "mergefonts.map"
	GlyphOrderFile = "GlyphOrderAndAliasDB2"
	CMapFile       = "cmap-f12.ttx"
)

// tracer traces with key 'lastresort.cli'
func tracer() tracing.Trace {
	return tracing.Select("lastresort.cli")
}

func main() {
	initDisplay()
	os.Exit(run(os.Args[1:], newConfiguration()))
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// run executes the tool and returns the exit code.
func run(args []string, conf schuko.Configuration) int {
	flags := flag.NewFlagSet("lastresort13to12", flag.ContinueOnError)
	tlevel := flags.String("trace", "", "Trace level [Debug|Info|Error]")
	outdir := flags.String("outdir", "", "Directory for output files")
	check := flags.Bool("check", false, "Compare declared format 12 groups to actual ones")
	showVersion := flags.Bool("version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: lastresort13to12 [flags] <format-13-cmap.ttx>\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		pterm.Printfln("lastresort13to12 version %s", version)
		return 0
	}
	s := newSettings(conf)
	if *tlevel != "" {
		for _, t := range tracerKeys {
			s.set("trace."+t, *tlevel)
		}
	}
	if *outdir != "" {
		s.set(keyOutputDir, *outdir)
	}
	if err := setupTracing(s); err != nil {
		core.UserError(err)
		return core.Code(err)
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return core.EINVALID
	}
	if err := convert(flags.Arg(0), s, *check); err != nil {
		tracer().Errorf("%v", err)
		pterm.Error.Println(core.UserMessage(err))
		return core.Code(err)
	}
	return 0
}

func setupTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return core.WrapError(err, core.EINTERNAL, "error configuring tracing")
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// convert reads the input completely before any output file is created.
func convert(input string, s *settings, check bool) error {
	layout, err := s.layout()
	if err != nil {
		return err
	}
	result, err := readInput(input)
	if err != nil {
		return err
	}
	dir := s.GetString(keyOutputDir)
	tracer().Infof("writing output files to %s", dir)
	if err = writeFile(filepath.Join(dir, MergeMapFile), result.WriteMergeMap); err != nil {
		return err
	}
	if err = writeFile(filepath.Join(dir, GlyphOrderFile), result.WriteGlyphOrder); err != nil {
		return err
	}
	err = writeFile(filepath.Join(dir, CMapFile), func(w io.Writer) error {
		return ttx.Write(w, layout, result.Data16(), result.Data())
	})
	if err != nil {
		return err
	}
	summary(result, dir)
	if check {
		groups := ttx.Groups(result.CMap, result.GlyphOrder)
		if length, err := layout.Check(groups); err != nil {
			pterm.Warning.Println(core.UserMessage(err))
		} else {
			pterm.Success.Printfln("format 12 subtable has %d groups (length %d), as declared", len(groups), length)
		}
	}
	return nil
}

func readInput(path string) (*glyphmap.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open input file %q", path)
	}
	defer f.Close()
	tracer().Infof("reading %s", path)
	return glyphmap.Convert(f)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot create output file %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = core.WrapError(cerr, core.EIO, "cannot close output file %q", path)
		}
	}()
	if err = write(f); err != nil {
		return core.WrapError(err, core.EIO, "cannot write output file %q", path)
	}
	tracer().Debugf("wrote %s", path)
	return nil
}

func summary(r *glyphmap.Result, dir string) {
	p := message.NewPrinter(language.English)
	st := r.Stats
	pterm.Info.Println(p.Sprintf("%d <map> entries in %d lines", st.Matched, st.Lines))
	pterm.Info.Println(p.Sprintf("format 4: %d code points, format 12: %d code points", st.BMP, st.Full))
	pterm.Info.Println(p.Sprintf("%d glyphs, %d duplicates skipped", st.Glyphs, st.Duplicates))
	pterm.Success.Printfln("wrote %s, %s and %s to %s", MergeMapFile, GlyphOrderFile, CMapFile, dir)
}
