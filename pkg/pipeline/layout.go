package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/flowcanvas/flowcanvas/pkg/cache"
	"github.com/flowcanvas/flowcanvas/pkg/canvas"
	"github.com/flowcanvas/flowcanvas/pkg/flow"
)

// Target is one interactive region of the laid-out diagram: a hit rectangle
// with the source range and tooltip of the element behind it. Hosts use the
// target list for hover and click-to-navigate without walking the cell grid.
type Target struct {
	Region  canvas.Rect `json:"region"`
	Lines   flow.Span   `json:"lines"`
	Tooltip string      `json:"tooltip"`
}

// LayoutInfo is the serializable summary of a layout pass: the negotiated
// diagram size plus every interaction target. It is what the layout cache
// stores; the cell grid itself is rebuilt when artifacts need re-rendering.
type LayoutInfo struct {
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Targets []Target `json:"targets,omitempty"`
}

// ComputeLayout builds the cell grid for a tree and negotiates its geometry.
// The returned canvas is ready to draw; the LayoutInfo summarizes it.
func ComputeLayout(tree *flow.Scope, opts Options) (*canvas.Canvas, LayoutInfo, error) {
	opts.SetLayoutDefaults()

	cvs, err := canvas.Build(opts.Settings, tree)
	if err != nil {
		return nil, LayoutInfo{}, fmt.Errorf("build canvas: %w", err)
	}
	size, err := cvs.Render()
	if err != nil {
		return nil, LayoutInfo{}, fmt.Errorf("negotiate geometry: %w", err)
	}

	info := LayoutInfo{Width: size.Width, Height: size.Height}

	// A throwaway draw pass collects the interaction targets.
	collector := &targetSurface{}
	if err := cvs.Draw(collector, 0, 0); err != nil {
		return nil, LayoutInfo{}, fmt.Errorf("collect targets: %w", err)
	}
	info.Targets = collector.targets

	return cvs, info, nil
}

// MarshalLayoutInfo serializes layout geometry for caching.
func MarshalLayoutInfo(info LayoutInfo) ([]byte, error) {
	return json.Marshal(info)
}

// UnmarshalLayoutInfo deserializes cached layout geometry.
func UnmarshalLayoutInfo(data []byte) (LayoutInfo, error) {
	var info LayoutInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return LayoutInfo{}, fmt.Errorf("parse layout: %w", err)
	}
	return info, nil
}

// SettingsHash returns the content hash of a settings snapshot, used to key
// cached layouts. Settings are plain data, so JSON is a stable encoding.
func SettingsHash(s *canvas.Settings) string {
	if s == nil {
		s = canvas.DefaultSettings()
	}
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

// targetSurface discards primitives and records interaction targets.
type targetSurface struct {
	targets []Target
}

func (s *targetSurface) DrawRect(canvas.Rect, canvas.Pen, canvas.Color)                  {}
func (s *targetSurface) DrawRoundedRect(canvas.Rect, float64, canvas.Pen, canvas.Color)  {}
func (s *targetSurface) DrawLine(canvas.Point, canvas.Point, canvas.Pen)                 {}
func (s *targetSurface) DrawPath([]canvas.Point, canvas.Pen)                             {}
func (s *targetSurface) DrawPolygon([]canvas.Point, canvas.Pen, canvas.Color)            {}
func (s *targetSurface) DrawText(canvas.Point, string, canvas.FontMetrics, canvas.Color) {}

func (s *targetSurface) RegisterTarget(el canvas.Element, region canvas.Rect, tooltip string) {
	s.targets = append(s.targets, Target{
		Region:  region,
		Lines:   el.LineRange(),
		Tooltip: tooltip,
	})
}

var _ canvas.Surface = (*targetSurface)(nil)
