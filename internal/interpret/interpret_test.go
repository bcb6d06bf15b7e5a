package interpret

import (
	"testing"

	"calibctl/internal/derive"
	"calibctl/internal/metrics"
)

func TestInterpret_NoRunBaseline(t *testing.T) {
	got := Interpret(nil, nil)
	want := Interpretation{Pressure: LevelLow, Load: LevelLow, Clarity: LevelLow, Readiness: NotReady}
	if got != want {
		t.Fatalf("baseline mismatch: got %+v, want %+v", got, want)
	}
}

func TestInterpret_PressureBoundaries(t *testing.T) {
	cases := []struct {
		mean       float64
		textLength int
		want       Level
	}{
		{100, 100, LevelMedium}, // exactly 200 stays Medium
		{101, 100, LevelHigh},   // 201 crosses
		{40, 40, LevelLow},      // exactly 80 stays Low
		{40, 41, LevelMedium},
		{0, 0, LevelLow},
	}
	for _, tc := range cases {
		m := &metrics.Metrics{Mean: tc.mean, Count: 1}
		d := &derive.Derived{TextLength: tc.textLength, SentenceCount: 1}
		got := Interpret(m, d)
		if got.Pressure != tc.want {
			t.Errorf("mean=%f textLength=%d: pressure %s, want %s", tc.mean, tc.textLength, got.Pressure, tc.want)
		}
	}
}

func TestInterpret_LoadBoundaries(t *testing.T) {
	cases := []struct {
		count         int
		sentenceCount int
		want          Level
	}{
		{14, 1, LevelMedium}, // exactly 15 stays Medium
		{12, 4, LevelHigh},   // 16 crosses
		{4, 4, LevelLow},     // exactly 8 stays Low
		{5, 4, LevelMedium},  // 9
		{1, 1, LevelLow},
	}
	for _, tc := range cases {
		m := &metrics.Metrics{Count: tc.count}
		d := &derive.Derived{SentenceCount: tc.sentenceCount}
		got := Interpret(m, d)
		if got.Load != tc.want {
			t.Errorf("count=%d sentences=%d: load %s, want %s", tc.count, tc.sentenceCount, got.Load, tc.want)
		}
	}
}

func TestInterpret_ClarityInverted(t *testing.T) {
	cases := []struct {
		sentenceCount int
		want          Level
	}{
		{1, LevelHigh},
		{3, LevelHigh},
		{4, LevelMedium},
		{6, LevelMedium},
		{7, LevelLow},
	}
	for _, tc := range cases {
		m := &metrics.Metrics{}
		d := &derive.Derived{SentenceCount: tc.sentenceCount}
		got := Interpret(m, d)
		if got.Clarity != tc.want {
			t.Errorf("sentences=%d: clarity %s, want %s", tc.sentenceCount, got.Clarity, tc.want)
		}
	}
}

func TestInterpret_ZeroSentenceFloor(t *testing.T) {
	// Zero sentence count is coerced to 1, so clarity is High, not degenerate.
	m := &metrics.Metrics{Count: 3}
	d := &derive.Derived{SentenceCount: 0}
	got := Interpret(m, d)
	if got.Clarity != LevelHigh {
		t.Errorf("expected High clarity with coerced sentence count, got %s", got.Clarity)
	}
	// Load sees the floored value too: 3 + 1 = 4 → Low.
	if got.Load != LevelLow {
		t.Errorf("expected Low load, got %s", got.Load)
	}
}

func TestInterpret_NilDerivedDefaults(t *testing.T) {
	// Nil derived behaves as textLength 0, sentenceCount 1.
	m := &metrics.Metrics{Mean: 50, Count: 2}
	got := Interpret(m, nil)
	if got.Pressure != LevelLow {
		t.Errorf("expected Low pressure, got %s", got.Pressure)
	}
	if got.Clarity != LevelHigh {
		t.Errorf("expected High clarity, got %s", got.Clarity)
	}
}

func TestInterpret_Readiness(t *testing.T) {
	cases := []struct {
		name string
		m    metrics.Metrics
		d    derive.Derived
		want Readiness
	}{
		{
			name: "calm short text is ready",
			m:    metrics.Metrics{Mean: 10, Count: 5},
			d:    derive.Derived{TextLength: 20, SentenceCount: 2},
			want: Ready,
		},
		{
			name: "high pressure blocks readiness",
			m:    metrics.Metrics{Mean: 150, Count: 5},
			d:    derive.Derived{TextLength: 100, SentenceCount: 2},
			want: NotReady,
		},
		{
			name: "medium clarity blocks readiness",
			m:    metrics.Metrics{Mean: 10, Count: 5},
			d:    derive.Derived{TextLength: 20, SentenceCount: 5},
			want: NotReady,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Interpret(&tc.m, &tc.d)
			if got.Readiness != tc.want {
				t.Errorf("readiness %s, want %s", got.Readiness, tc.want)
			}
		})
	}
}
