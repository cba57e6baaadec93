package main

import (
	"strconv"

	"github.com/npillmayer/lastresort/core"
	"github.com/npillmayer/lastresort/ttx"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
)

// appTag identifies configuration files, e.g. ~/.config/lastresort/config.nt
const appTag = "lastresort"

// Configuration keys
const (
	keyOutputDir    = "output.dir"
	keyTTLibVersion = "ttx.ttlibversion"
	keyF12Length    = "ttx.format12.length"
	keyF12Groups    = "ttx.format12.ngroups"
)

// tracers used by this tool, configured with key prefix "trace"
var tracerKeys = []string{"root", "lastresort.cli", "lastresort.glyphs", "lastresort.ttx"}

func defaults() map[string]string {
	d := map[string]string{
		"tracing.adapter": "go",
		keyOutputDir:      ".",
		keyTTLibVersion:   ttx.DefaultTTLibVersion,
		keyF12Length:      strconv.Itoa(ttx.DefaultFormat12Length),
		keyF12Groups:      strconv.Itoa(ttx.DefaultFormat12Groups),
	}
	for _, t := range tracerKeys {
		d["trace."+t] = "Error"
	}
	return d
}

// newConfiguration loads configuration from NestedText files at the usual
// configuration locations for appTag.
func newConfiguration() schuko.Configuration {
	conf := koanfadapter.New(nil, appTag, []string{"nt"})
	conf.InitDefaults()
	return conf
}

// settings layers command line overrides and defaults around a configuration.
type settings struct {
	base      schuko.Configuration
	overrides map[string]string
	defaults  map[string]string
}

var _ schuko.Configuration = &settings{}

func newSettings(base schuko.Configuration) *settings {
	return &settings{
		base:      base,
		overrides: make(map[string]string),
		defaults:  defaults(),
	}
}

func (s *settings) set(key, value string) {
	s.overrides[key] = value
}

func (s *settings) InitDefaults() {}

func (s *settings) IsSet(key string) bool {
	if _, ok := s.overrides[key]; ok {
		return true
	}
	if s.base != nil && s.base.IsSet(key) {
		return true
	}
	_, ok := s.defaults[key]
	return ok
}

func (s *settings) GetString(key string) string {
	if v, ok := s.overrides[key]; ok {
		return v
	}
	if s.base != nil && s.base.IsSet(key) {
		if v := s.base.GetString(key); v != "" {
			return v
		}
	}
	return s.defaults[key]
}

func (s *settings) GetInt(key string) int {
	n, _ := strconv.Atoi(s.GetString(key))
	return n
}

func (s *settings) GetBool(key string) bool {
	b, _ := strconv.ParseBool(s.GetString(key))
	return b
}

func (s *settings) IsInteractive() bool { return false }

// layout reads the declared ttx layout from the configuration.
func (s *settings) layout() (ttx.Layout, error) {
	l := ttx.Layout{TTLibVersion: s.GetString(keyTTLibVersion)}
	var err error
	if l.Format12Length, err = strconv.Atoi(s.GetString(keyF12Length)); err != nil {
		return l, core.WrapError(err, core.EINVALID, "configuration value %s is not a number", keyF12Length)
	}
	if l.Format12Groups, err = strconv.Atoi(s.GetString(keyF12Groups)); err != nil {
		return l, core.WrapError(err, core.EINVALID, "configuration value %s is not a number", keyF12Groups)
	}
	return l, l.Validate()
}
