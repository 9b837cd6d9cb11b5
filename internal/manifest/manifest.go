// Package manifest loads YAML document manifests and renders them to
// Markdown through the mdbuild builder. A manifest is an ordered list of
// typed blocks; block order in the file is the block order in the output.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownBlock is returned when a manifest block carries a key that does
// not name a supported block kind.
var ErrUnknownBlock = errors.New("unknown block kind")

// Document is a parsed manifest.
type Document struct {
	Title  string  `yaml:"title,omitempty"`
	Blocks []Block `yaml:"blocks"`
}

// Block is one document block. Exactly one field is expected to be set,
// keyed by the block kind in YAML.
type Block struct {
	Heading    *Heading    `yaml:"heading,omitempty"`
	Paragraph  string      `yaml:"paragraph,omitempty"`
	Quote      string      `yaml:"quote,omitempty"`
	Rule       bool        `yaml:"rule,omitempty"`
	Image      *Image      `yaml:"image,omitempty"`
	List       *List       `yaml:"list,omitempty"`
	Tasks      []Task      `yaml:"tasks,omitempty"`
	Definition *Definition `yaml:"definition,omitempty"`
	Code       *Code       `yaml:"code,omitempty"`
	Math       string      `yaml:"math,omitempty"`
	Table      *Table      `yaml:"table,omitempty"`
	Footnote   *Footnote   `yaml:"footnote,omitempty"`
	Details    *Details    `yaml:"details,omitempty"`
	Note       string      `yaml:"note,omitempty"`
	Tip        string      `yaml:"tip,omitempty"`
	Warning    string      `yaml:"warning,omitempty"`
}

// Heading is a section heading block.
type Heading struct {
	Level  int    `yaml:"level,omitempty"` // 1..6, defaults to 2
	Text   string `yaml:"text"`
	Anchor string `yaml:"anchor,omitempty"` // level-2 headings only
}

// Image is an image block.
type Image struct {
	Alt string `yaml:"alt,omitempty"`
	URL string `yaml:"url"`
}

// List is a bullet or numbered list block.
type List struct {
	Style string   `yaml:"style,omitempty"` // "bullet" (default) or "numbered"
	Items []string `yaml:"items"`
}

// Task is one entry of a task-list block.
type Task struct {
	Text string `yaml:"text"`
	Done bool   `yaml:"done,omitempty"`
}

// Definition is a term/definition pair.
type Definition struct {
	Term       string `yaml:"term"`
	Definition string `yaml:"definition"`
}

// Code is a fenced code block.
type Code struct {
	Lang   string `yaml:"lang,omitempty"`
	Source string `yaml:"source"`
}

// Table is a pipe-table block.
type Table struct {
	Headers []string   `yaml:"headers"`
	Align   []string   `yaml:"align,omitempty"` // left, center, right, default
	Rows    [][]string `yaml:"rows,omitempty"`
}

// Footnote is a footnote definition block.
type Footnote struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// Details is a collapsible section block.
type Details struct {
	Summary string `yaml:"summary"`
	Body    string `yaml:"body"`
}

var knownBlockKeys = map[string]bool{
	"heading": true, "paragraph": true, "quote": true, "rule": true,
	"image": true, "list": true, "tasks": true, "definition": true,
	"code": true, "math": true, "table": true, "footnote": true,
	"details": true, "note": true, "tip": true, "warning": true,
}

// UnmarshalYAML decodes a block mapping and rejects unrecognized kinds, so
// a typo in a manifest fails loudly instead of silently dropping content.
func (b *Block) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("block at line %d: expected a mapping", node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !knownBlockKeys[key] {
			return fmt.Errorf("block at line %d: %w: %q", node.Content[i].Line, ErrUnknownBlock, key)
		}
	}
	type plain Block
	return node.Decode((*plain)(b))
}

// Load reads and parses a manifest file. Environment variables referenced
// in the manifest ($VAR or ${VAR}) are expanded before parsing; a .env file
// in the working directory is loaded first if present.
func Load(path string) (*Document, error) {
	// A missing .env is the normal case, not an error.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse parses manifest bytes.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &doc, nil
}
