// Package fonts provides the typefaces used by the raster renderer and the
// character-cell metrics used by the layout engine.
//
// Layout never touches a rasterizer: cell sizes are computed from fixed
// character-cell metrics so the same input always yields the same geometry.
// The parsed truetype fonts are only needed when a diagram is rasterized.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/flowcanvas/flowcanvas/pkg/canvas"
)

// FontFamily is the CSS font-family emitted into SVG documents.
const FontFamily = "Go Mono"

// FallbackFontFamily lists fallbacks for systems without the Go fonts.
const FallbackFontFamily = `'Go Mono', 'Menlo', 'DejaVu Sans Mono', monospace`

var (
	monoOnce    sync.Once
	monoFont    *truetype.Font
	regularOnce sync.Once
	regularFont *truetype.Font
)

// Mono returns the parsed Go Mono font, used for declarations, comments and
// docstrings.
func Mono() *truetype.Font {
	monoOnce.Do(func() {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			// The embedded font data is a build-time constant.
			panic("fonts: parse gomono: " + err.Error())
		}
		monoFont = f
	})
	return monoFont
}

// Regular returns the parsed Go Regular font, used for badge labels.
func Regular() *truetype.Font {
	regularOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			panic("fonts: parse goregular: " + err.Error())
		}
		regularFont = f
	})
	return regularFont
}

// Face creates a rendering face for the given font at a point size.
func Face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72})
}

// Metrics derives character-cell metrics for a font at a point size. The
// character width is the advance of 'M'; for Go Mono every glyph shares it.
func Metrics(f *truetype.Font, size float64) canvas.FontMetrics {
	face := Face(f, size)
	defer face.Close()

	m := face.Metrics()
	cw := 0.0
	if adv, ok := face.GlyphAdvance('M'); ok {
		cw = fixedToFloat(adv)
	}
	return canvas.FontMetrics{
		CharWidth:  cw,
		LineHeight: fixedToFloat(m.Height),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
