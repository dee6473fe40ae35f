package rain

import "testing"

func TestDensityClampsAtFloor(t *testing.T) {
	s := DefaultSettings()

	// 20 presses from the default 0.4 must saturate at 0.05, never
	// going negative.
	for i := 0; i < 20; i++ {
		s.Apply(ActionSparser)
		if s.Density < 0.05 {
			t.Fatalf("density fell below floor: %v", s.Density)
		}
	}
	if s.Density != 0.05 {
		t.Errorf("density = %v, expected 0.05 after repeated decreases", s.Density)
	}
	if s.SpawnsPerFrame != 1 {
		t.Errorf("spawns = %d, expected 1 after repeated decreases", s.SpawnsPerFrame)
	}
}

func TestDensityClampsAtCeiling(t *testing.T) {
	s := DefaultSettings()

	for i := 0; i < 30; i++ {
		s.Apply(ActionDenser)
	}
	if s.Density != 1.0 {
		t.Errorf("density = %v, expected 1.0 after repeated increases", s.Density)
	}
	if s.SpawnsPerFrame != 20 {
		t.Errorf("spawns = %d, expected 20 after repeated increases", s.SpawnsPerFrame)
	}
}

func TestFrameDelayBounds(t *testing.T) {
	s := DefaultSettings()

	for i := 0; i < 30; i++ {
		s.Apply(ActionFaster)
	}
	if s.FrameDelayMs != 5 {
		t.Errorf("delay = %d, expected floor 5", s.FrameDelayMs)
	}

	for i := 0; i < 30; i++ {
		s.Apply(ActionSlower)
	}
	if s.FrameDelayMs != 100 {
		t.Errorf("delay = %d, expected ceiling 100", s.FrameDelayMs)
	}
}

func TestLengthBoundsKeepMinMaxOrdered(t *testing.T) {
	s := DefaultSettings()

	for i := 0; i < 20; i++ {
		s.Apply(ActionShorter)
		if s.MinLength > s.MaxLength {
			t.Fatalf("min length %d exceeds max length %d", s.MinLength, s.MaxLength)
		}
	}
	if s.MaxLength != 5 {
		t.Errorf("max length = %d, expected floor 5", s.MaxLength)
	}

	for i := 0; i < 20; i++ {
		s.Apply(ActionLonger)
	}
	if s.MaxLength != 50 {
		t.Errorf("max length = %d, expected ceiling 50", s.MaxLength)
	}
}

func TestSchemeActions(t *testing.T) {
	tests := []struct {
		action Action
		want   Scheme
	}{
		{ActionGreen, SchemeGreen},
		{ActionBlue, SchemeBlue},
		{ActionRed, SchemeRed},
		{ActionPurple, SchemePurple},
		{ActionCyan, SchemeCyan},
		{ActionRainbow, SchemeRainbow},
	}

	s := DefaultSettings()
	for _, tt := range tests {
		s.Apply(tt.action)
		if s.Scheme != tt.want {
			t.Errorf("Apply(%v): scheme = %v, expected %v", tt.action, s.Scheme, tt.want)
		}
	}
}

func TestClampNormalizesBadInput(t *testing.T) {
	s := Settings{
		FrameDelayMs:   -10,
		Density:        7.5,
		SpawnsPerFrame: 0,
		MinLength:      12,
		MaxLength:      3,
		MinSpeed:       0,
		MaxSpeed:       0,
	}
	s.Clamp()

	if s.FrameDelayMs < 1 {
		t.Errorf("delay not normalized: %d", s.FrameDelayMs)
	}
	if s.Density != 1.0 {
		t.Errorf("density = %v, expected clamp to 1.0", s.Density)
	}
	if s.SpawnsPerFrame != 1 {
		t.Errorf("spawns = %d, expected 1", s.SpawnsPerFrame)
	}
	if s.MinLength > s.MaxLength {
		t.Errorf("length range still inverted: [%d, %d]", s.MinLength, s.MaxLength)
	}
	if s.MinSpeed < 1 || s.MaxSpeed < s.MinSpeed {
		t.Errorf("speed range invalid: [%d, %d]", s.MinSpeed, s.MaxSpeed)
	}
}
