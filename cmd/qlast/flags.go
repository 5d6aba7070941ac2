package main

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/pflag"
)

// Language selects the query front end.
type Language string

const (
	// LangKQL is the tabular pipeline language.
	LangKQL Language = "kql"
	// LangTraceQL is the tracing-filter language.
	LangTraceQL Language = "traceql"
	// LangMulti is a multi-segment query mixing both languages.
	LangMulti Language = "multi"
)

var languages = []string{string(LangKQL), string(LangTraceQL), string(LangMulti)}

var _ pflag.Value = (*Language)(nil)

// String implements [pflag.Value].
func (l *Language) String() string {
	return string(*l)
}

// Set implements [pflag.Value].
func (l *Language) Set(val string) error {
	switch v := Language(strings.ToLower(strings.TrimSpace(val))); v {
	case LangKQL, LangTraceQL, LangMulti:
		*l = v
		return nil
	default:
		return errors.Errorf("unknown language %q, expected one of %s", val, strings.Join(languages, ", "))
	}
}

// Type implements [pflag.Value].
func (l *Language) Type() string {
	return "language"
}

// Format selects the AST output format.
type Format string

const (
	FormatTree Format = "tree"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
)

var formats = []string{string(FormatTree), string(FormatJSON), string(FormatDOT)}

var _ pflag.Value = (*Format)(nil)

// String implements [pflag.Value].
func (f *Format) String() string {
	return string(*f)
}

// Set implements [pflag.Value].
func (f *Format) Set(val string) error {
	switch v := Format(strings.ToLower(strings.TrimSpace(val))); v {
	case FormatTree, FormatJSON, FormatDOT:
		*f = v
		return nil
	default:
		return errors.Errorf("unknown format %q, expected one of %s", val, strings.Join(formats, ", "))
	}
}

// Type implements [pflag.Value].
func (f *Format) Type() string {
	return "format"
}
