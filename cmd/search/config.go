package main

import (
	"strconv"
	"strings"

	"github.com/scottcagno/kmpsearch/pkg/source"
)

const (
	defaultInput    = source.Stdin
	defaultLogLevel = "info"
	defaultContext  = 16

	// context bounds, in bytes on each side of a match
	minContextAllowed = 0
	maxContextAllowed = 256
)

// Config holds the settings shared by the search commands.
type Config struct {
	Input     string // file to search, or "-" for stdin
	UseMmap   bool   // map the input file instead of reading it
	Count     bool   // print only the number of matches
	Highlight bool   // print each match with surrounding text
	Context   int    // bytes of text shown on each side of a match
	Limit     int    // max positions printed, 0 prints all
	LogLevel  string // trace, debug, info, warn, error or off
	NoColor   bool   // disable colored output
}

func (conf *Config) String() string {
	var sb strings.Builder
	sb.WriteString("Input: ")
	sb.WriteString(conf.Input)
	sb.WriteString(", UseMmap: ")
	sb.WriteString(strconv.FormatBool(conf.UseMmap))
	sb.WriteString(", Count: ")
	sb.WriteString(strconv.FormatBool(conf.Count))
	sb.WriteString(", Highlight: ")
	sb.WriteString(strconv.FormatBool(conf.Highlight))
	sb.WriteString(", Context: ")
	sb.WriteString(strconv.Itoa(conf.Context))
	sb.WriteString(", Limit: ")
	sb.WriteString(strconv.Itoa(conf.Limit))
	return sb.String()
}

// checkConfig fills in missing options and clamps the rest to their
// allowed bounds.
func checkConfig(conf *Config) *Config {
	if conf == nil {
		conf = &Config{Context: defaultContext}
	}
	if conf.Input == "" {
		conf.Input = defaultInput
	}
	if conf.LogLevel == "" {
		conf.LogLevel = defaultLogLevel
	}
	if conf.Context < minContextAllowed {
		conf.Context = minContextAllowed
	}
	if conf.Context > maxContextAllowed {
		conf.Context = maxContextAllowed
	}
	if conf.Limit < 0 {
		conf.Limit = 0
	}
	return conf
}
