package shape

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBodyAnchor(t *testing.T) {
	body := Body{
		Position:       mgl64.Vec2{1, 2},
		GlobalPosition: mgl64.Vec2{101, 102},
	}

	if got := body.Anchor(FrameLocal); !vec2Equal(got, mgl64.Vec2{1, 2}, 1e-9) {
		t.Errorf("Anchor(FrameLocal) = %v, want {1 2}", got)
	}
	if got := body.Anchor(FrameGlobal); !vec2Equal(got, mgl64.Vec2{101, 102}, 1e-9) {
		t.Errorf("Anchor(FrameGlobal) = %v, want {101 102}", got)
	}
}

func TestBodyGetMass(t *testing.T) {
	tests := []struct {
		name string
		mass float64
		want float64
	}{
		{name: "zero value defaults to 1", mass: 0, want: 1},
		{name: "below one clamps to 1", mass: 0.25, want: 1},
		{name: "negative clamps to 1", mass: -3, want: 1},
		{name: "exactly one", mass: 1, want: 1},
		{name: "heavy body kept", mass: 8, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := Body{Mass: tt.mass}
			if got := body.GetMass(); got != tt.want {
				t.Errorf("GetMass() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstructorsSeedBothFrames(t *testing.T) {
	rect := NewRectangle(4, 5, 10, 10)
	if !vec2Equal(rect.Position, rect.GlobalPosition, 1e-9) {
		t.Errorf("rectangle frames differ: %v vs %v", rect.Position, rect.GlobalPosition)
	}
	if rect.Mass != 1 {
		t.Errorf("rectangle Mass = %v, want 1", rect.Mass)
	}

	circle := NewCircle(-2, 3, 6)
	if !vec2Equal(circle.Position, circle.GlobalPosition, 1e-9) {
		t.Errorf("circle frames differ: %v vs %v", circle.Position, circle.GlobalPosition)
	}
	if circle.Mass != 1 {
		t.Errorf("circle Mass = %v, want 1", circle.Mass)
	}
}
