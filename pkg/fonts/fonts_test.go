package fonts

import "testing"

func TestMonoMetrics(t *testing.T) {
	m := Metrics(Mono(), 12)
	if m.CharWidth <= 0 {
		t.Errorf("CharWidth = %v, want positive", m.CharWidth)
	}
	if m.LineHeight <= 0 {
		t.Errorf("LineHeight = %v, want positive", m.LineHeight)
	}

	// Metrics are deterministic across calls.
	if again := Metrics(Mono(), 12); again != m {
		t.Errorf("metrics not stable: %v then %v", m, again)
	}
}

func TestMonoBoundsScaleWithText(t *testing.T) {
	m := Metrics(Mono(), 12)
	one := m.Bounds("x")
	ten := m.Bounds("xxxxxxxxxx")
	if ten.Width != 10*one.Width {
		t.Errorf("10-char width = %v, want %v", ten.Width, 10*one.Width)
	}

	multi := m.Bounds("a\nb\nc")
	if multi.Height != 3*one.Height {
		t.Errorf("3-line height = %v, want %v", multi.Height, 3*one.Height)
	}
}

func TestFaces(t *testing.T) {
	for _, f := range []struct {
		name string
		face func() interface{ Close() error }
	}{
		{"mono", func() interface{ Close() error } { return Face(Mono(), 12) }},
		{"regular", func() interface{ Close() error } { return Face(Regular(), 10) }},
	} {
		face := f.face()
		if face == nil {
			t.Errorf("%s face is nil", f.name)
			continue
		}
		face.Close()
	}
}
