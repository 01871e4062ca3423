// SPDX-License-Identifier: MIT

// Package report renders solved matchings for the command line.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flowmatch/match"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDOT  = "dot"
)

// Formats lists every format Write accepts.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatDOT}

var ErrUnknownFormat = errors.New("report: unknown format")

// banner frames the text report.
var banner = strings.Repeat("*", 51)

// Document is the structured form shared by the JSON and YAML renderers.
type Document struct {
	MaxFlow int64        `json:"max_flow" yaml:"max_flow"`
	Matches []match.Pair `json:"matches" yaml:"matches"`
}

// NewDocument converts an Answer. Matches is never nil.
func NewDocument(ans *match.Answer) Document {
	return Document{MaxFlow: ans.MaxFlow(), Matches: ans.Matches()}
}

// Text writes the banner report:
//
//	***************************************************
//	Max Flow: 2
//	Matches:
//		A-->Y
//		B-->X
//	***************************************************
func Text(w io.Writer, ans *match.Answer) error {
	var sb strings.Builder
	sb.WriteString(banner + "\n")
	fmt.Fprintf(&sb, "Max Flow: %d\n", ans.MaxFlow())
	sb.WriteString("Matches:\n")
	for _, p := range ans.Matches() {
		fmt.Fprintf(&sb, "\t%s-->%s\n", p.Left, p.Right)
	}
	sb.WriteString(banner + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// JSON writes the Document as indented JSON.
func JSON(w io.Writer, ans *match.Answer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(ans))
}

// YAML writes the Document as YAML.
func YAML(w io.Writer, ans *match.Answer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(ans)); err != nil {
		return err
	}
	return enc.Close()
}

// Write renders res in format.
func Write(w io.Writer, format string, res *match.Result) error {
	switch format {
	case FormatText:
		return Text(w, res.Answer)
	case FormatJSON:
		return JSON(w, res.Answer)
	case FormatYAML:
		return YAML(w, res.Answer)
	case FormatDOT:
		return DOT(w, res.Network, res.Flow)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// IsValidFormat reports whether format is one of Formats.
func IsValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
