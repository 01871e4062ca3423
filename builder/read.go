// SPDX-License-Identifier: MIT
// Package: flowmatch/builder
//
// read.go: relation readers.
//
// Line format (one left entity per line):
//
//	<left>><right1>,<right2>,...
//
// Rules:
//   • Blank lines are skipped; labels are trimmed.
//   • Exactly one '>' separator per line; none or several → ErrMalformedLine.
//   • "A>" declares A with no eligible entities.
//   • Empty right tokens ("A>x,,y") are skipped.
//
// YAML format: a mapping of left label → sequence of right labels (or null).
// Files ending in .yaml/.yml are read as YAML; anything else uses the line
// format.

package builder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	relationSep = ">"
	rightSep    = ","

	// maxLineBytes bounds one input line.
	maxLineBytes = 1 << 20
)

// Read parses the line format from r into a new builder.
//
// Errors:
//   - *ParseError wrapping ErrMalformedLine or ErrEmptyLabel.
//   - ErrUnreadableInput when r fails.
func Read(r io.Reader) (*NetworkBuilder, error) {
	b := NewNetworkBuilder()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		left, rights, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}
		if err = b.Add(left, rights...); err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: ErrEmptyLabel}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableInput, err)
	}

	return b, nil
}

// parseLine splits one non-blank line into its left label and right tokens.
func parseLine(text string) (string, []string, error) {
	parts := strings.Split(text, relationSep)
	if len(parts) != 2 {
		return "", nil, ErrMalformedLine
	}
	left := strings.TrimSpace(parts[0])
	if left == "" {
		return "", nil, ErrEmptyLabel
	}
	if strings.TrimSpace(parts[1]) == "" {
		return left, nil, nil
	}

	return left, strings.Split(parts[1], rightSep), nil
}

// ReadYAML parses a YAML mapping of left label → list of right labels.
// An empty document yields an empty builder.
//
// Errors:
//   - *ParseError wrapping ErrMalformedLine for any other shape.
//   - ErrUnreadableInput when r fails or the YAML does not parse.
func ReadYAML(r io.Reader) (*NetworkBuilder, error) {
	b := NewNetworkBuilder()

	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return b, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrUnreadableInput, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return b, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return b, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, yamlError(root, "top level must be a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, yamlError(key, "left label must be a scalar")
		}
		rights, err := yamlRights(val)
		if err != nil {
			return nil, err
		}
		if err = b.Add(key.Value, rights...); err != nil {
			return nil, &ParseError{Line: key.Line, Text: key.Value, Err: ErrEmptyLabel}
		}
	}

	return b, nil
}

// yamlRights accepts a sequence of scalars or null.
func yamlRights(n *yaml.Node) ([]string, error) {
	switch {
	case n.Kind == yaml.ScalarNode && n.Tag == "!!null":
		return nil, nil
	case n.Kind != yaml.SequenceNode:
		return nil, yamlError(n, "right labels must be a sequence")
	}

	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, yamlError(item, "right label must be a scalar")
		}
		out = append(out, item.Value)
	}

	return out, nil
}

func yamlError(n *yaml.Node, msg string) error {
	return &ParseError{Line: n.Line, Text: msg, Err: ErrMalformedLine}
}

// ReadFile opens path and dispatches on its extension.
func ReadFile(path string) (*NetworkBuilder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableInput, err)
	}
	defer f.Close()

	if IsYAMLPath(path) {
		return ReadYAML(f)
	}

	return Read(f)
}

// IsYAMLPath reports whether path carries a .yaml or .yml extension.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}

	return false
}
