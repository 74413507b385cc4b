package layout

import "testing"

func sampleBubbles() []Bubble {
	return []Bubble{
		{Index: 0, Center: Point{1, 2}, Radius: 0.5},
		{Index: 1, Center: Point{-3, 0.25}, Radius: 0.5},
	}
}

func TestMirrorIdentity(t *testing.T) {
	in := sampleBubbles()
	m := Mirror{}
	if !m.Identity() {
		t.Error("zero Mirror should be identity")
	}
	out := m.Apply(in)
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("identity changed bubble %d: %+v -> %+v", i, in[i], out[i])
		}
	}
}

func TestMirrorInvolution(t *testing.T) {
	for _, m := range []Mirror{{FlipX: true}, {FlipY: true}, {FlipX: true, FlipY: true}} {
		in := sampleBubbles()
		twice := m.Apply(m.Apply(in))
		for i := range in {
			if twice[i] != in[i] {
				t.Errorf("%+v applied twice changed bubble %d: %+v", m, i, twice[i])
			}
		}
	}
}

func TestMirrorAxes(t *testing.T) {
	p := Point{1, 2}
	tests := []struct {
		m    Mirror
		want Point
	}{
		{Mirror{FlipX: true}, Point{-1, 2}},
		{Mirror{FlipY: true}, Point{1, -2}},
		{Mirror{FlipX: true, FlipY: true}, Point{-1, -2}},
	}
	for _, tt := range tests {
		if got := tt.m.Point(p); got != tt.want {
			t.Errorf("%+v.Point(%v) = %v, want %v", tt.m, p, got, tt.want)
		}
	}
}

func TestMirrorDoesNotModifyInput(t *testing.T) {
	in := sampleBubbles()
	_ = Mirror{FlipX: true}.Apply(in)
	if in[0].Center != (Point{1, 2}) {
		t.Errorf("input modified: %+v", in[0].Center)
	}
}

func TestWithHighlights(t *testing.T) {
	in := sampleBubbles()
	for i := range in {
		in[i].Highlight = NoHighlight
	}
	out := WithHighlights(in, []int{NoHighlight, 3})
	if out[0].Highlighted() || !out[1].Highlighted() || out[1].Highlight != 3 {
		t.Errorf("WithHighlights = %+v", out)
	}
	if in[1].Highlighted() {
		t.Error("input modified")
	}
}
