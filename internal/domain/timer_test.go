package domain

import "testing"

func TestNewTimerState(t *testing.T) {
	s := NewTimerState()

	if s.Mode != ModePomodoro {
		t.Errorf("Mode = %v, want %v", s.Mode, ModePomodoro)
	}
	if s.Remaining != 1500 {
		t.Errorf("Remaining = %d, want 1500", s.Remaining)
	}
	if s.Running {
		t.Error("Running should be false at mount")
	}
	if s.Accent != DefaultColor {
		t.Errorf("Accent = %v, want %v", s.Accent, DefaultColor)
	}
	if s.Status() != TimerIdle {
		t.Errorf("Status = %v, want %v", s.Status(), TimerIdle)
	}
}

func TestTimerState_SelectMode(t *testing.T) {
	for _, m := range Modes {
		t.Run(string(m), func(t *testing.T) {
			s := NewTimerState()
			s.Running = true
			s.Remaining = 42

			if err := s.SelectMode(m); err != nil {
				t.Fatalf("SelectMode() error = %v", err)
			}
			if s.Mode != m {
				t.Errorf("Mode = %v, want %v", s.Mode, m)
			}
			if s.Remaining != m.Seconds() {
				t.Errorf("Remaining = %d, want %d", s.Remaining, m.Seconds())
			}
			if s.Running {
				t.Error("SelectMode should stop the countdown")
			}
		})
	}
}

func TestTimerState_SelectMode_Unknown(t *testing.T) {
	s := NewTimerState()
	s.Remaining = 100

	if err := s.SelectMode("coffee"); err == nil {
		t.Fatal("SelectMode(coffee) should fail")
	}
	if s.Mode != ModePomodoro || s.Remaining != 100 {
		t.Errorf("state changed on rejected mode: %+v", s)
	}
}

func TestTimerState_Reset(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		remaining int
		running   bool
	}{
		{"idle full", ModePomodoro, 1500, false},
		{"running mid", ModeShortBreak, 120, true},
		{"paused mid", ModeLongBreak, 3, false},
		{"expired", ModePomodoro, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := TimerState{Mode: tt.mode, Remaining: tt.remaining, Running: tt.running, Accent: DefaultColor}
			s.Reset()
			if s.Remaining != tt.mode.Seconds() {
				t.Errorf("Remaining = %d, want %d", s.Remaining, tt.mode.Seconds())
			}
			if s.Running {
				t.Error("Reset should stop the countdown")
			}
		})
	}
}

func TestTimerState_Toggle(t *testing.T) {
	s := NewTimerState()

	s.Toggle()
	if !s.Running || s.Status() != TimerRunning {
		t.Fatalf("Toggle from idle: Running = %v, Status = %v", s.Running, s.Status())
	}

	s.Toggle()
	if s.Running || s.Status() != TimerIdle {
		t.Fatalf("Toggle from running: Running = %v, Status = %v", s.Running, s.Status())
	}
	if s.Remaining != 1500 {
		t.Errorf("Toggle should not change Remaining, got %d", s.Remaining)
	}
}

func TestTimerState_Toggle_ExpiredRestarts(t *testing.T) {
	s := TimerState{Mode: ModeShortBreak, Remaining: 0, Accent: DefaultColor}
	if s.Status() != TimerExpired {
		t.Fatalf("Status = %v, want expired", s.Status())
	}

	s.Toggle()

	if s.Remaining != 300 {
		t.Errorf("Remaining = %d, want 300", s.Remaining)
	}
	if !s.Running {
		t.Error("Toggle from expired should start a fresh countdown")
	}
}

func TestTimerState_Tick(t *testing.T) {
	s := NewTimerState()

	if s.Tick() {
		t.Error("Tick on idle timer should not expire")
	}
	if s.Remaining != 1500 {
		t.Errorf("Tick on idle timer changed Remaining to %d", s.Remaining)
	}

	s.Toggle()
	s.Tick()
	if s.Remaining != 1499 {
		t.Errorf("Remaining = %d, want 1499", s.Remaining)
	}
	if !s.Running {
		t.Error("Running should stay true mid-countdown")
	}
}

func TestTimerState_Tick_ExpiresOnce(t *testing.T) {
	s := TimerState{Mode: ModePomodoro, Remaining: 2, Running: true, Accent: DefaultColor}

	if s.Tick() {
		t.Fatal("2 -> 1 should not expire")
	}
	if !s.Tick() {
		t.Fatal("1 -> 0 should expire")
	}
	if s.Remaining != 0 || s.Running {
		t.Errorf("after expiry: Remaining = %d, Running = %v", s.Remaining, s.Running)
	}
	if s.Tick() {
		t.Error("a tick at zero must not expire again")
	}
	if s.Remaining != 0 {
		t.Errorf("Remaining went below zero: %d", s.Remaining)
	}
}

func TestTimerState_SetAccent(t *testing.T) {
	s := NewTimerState()
	s.Toggle()
	s.Tick()

	if err := s.SetAccent("#56768d"); err != nil {
		t.Fatalf("SetAccent() error = %v", err)
	}
	if s.Accent != "#56768D" {
		t.Errorf("Accent = %v, want palette spelling #56768D", s.Accent)
	}
	if s.Remaining != 1499 || !s.Running {
		t.Errorf("SetAccent changed timer fields: %+v", s)
	}

	if err := s.SetAccent("#000000"); err == nil {
		t.Error("SetAccent should reject colors outside the palette")
	}
}

func TestTimerState_ToggleLabel(t *testing.T) {
	s := NewTimerState()
	if got := s.ToggleLabel(); got != "Start" {
		t.Errorf("ToggleLabel() = %q, want Start", got)
	}
	s.Toggle()
	if got := s.ToggleLabel(); got != "Pause" {
		t.Errorf("ToggleLabel() = %q, want Pause", got)
	}
}

func TestTimerState_Progress(t *testing.T) {
	tests := []struct {
		remaining int
		want      float64
	}{
		{300, 0},
		{150, 0.5},
		{0, 1},
	}

	for _, tt := range tests {
		s := TimerState{Mode: ModeShortBreak, Remaining: tt.remaining}
		if got := s.Progress(); got != tt.want {
			t.Errorf("Progress() with %d remaining = %v, want %v", tt.remaining, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{125, "02:05"},
		{0, "00:00"},
		{1500, "25:00"},
		{59, "00:59"},
		{900, "15:00"},
		{-3, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatClock(tt.seconds); got != tt.want {
				t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
