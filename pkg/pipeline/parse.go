package pipeline

import (
	"bytes"
	"fmt"
	"os"

	"github.com/flowcanvas/flowcanvas/pkg/flow"
)

// Parse reads the scope tree from the options' source bytes or path.
func Parse(opts Options) (*flow.Scope, error) {
	data, err := SourceBytes(opts)
	if err != nil {
		return nil, err
	}
	tree, err := flow.ReadJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse tree: %w", err)
	}
	return tree, nil
}

// SourceBytes returns the raw serialized tree, reading the path when no
// inline source was provided. The bytes feed both the parser and the tree
// cache key.
func SourceBytes(opts Options) ([]byte, error) {
	if len(opts.Source) > 0 {
		return opts.Source, nil
	}
	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.Path, err)
	}
	return data, nil
}
