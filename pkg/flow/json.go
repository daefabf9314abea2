package flow

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON decodes a parsed flow tree from r. The root node must be a module
// scope; parsers emit exactly one module per source buffer.
func ReadJSON(r io.Reader) (*Scope, error) {
	var root Scope
	dec := json.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode flow tree: %w", err)
	}
	if root.Kind != KindModule {
		return nil, fmt.Errorf("flow tree root is %q, want %q", root.Kind, KindModule)
	}
	return &root, nil
}

// LoadJSON reads a parsed flow tree from a file at path.
// This is a convenience wrapper around [ReadJSON] for file-based input.
func LoadJSON(path string) (*Scope, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes a flow tree as indented JSON and writes it to w.
// The output round-trips through [ReadJSON].
func WriteJSON(root *Scope, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode flow tree: %w", err)
	}
	return nil
}
