package clock

import (
	"testing"
	"time"
)

func TestRealClockAdvances(t *testing.T) {
	clk := Real()
	first := clk.Now()
	second := clk.Now()
	if second.Before(first) {
		t.Errorf("real clock went backwards: %v then %v", first, second)
	}
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clk := Fake(start)

	if !clk.Now().Equal(start) {
		t.Errorf("Now = %v, want %v", clk.Now(), start)
	}
	if !clk.Now().Equal(start) {
		t.Error("fake clock moved without Advance")
	}

	got := clk.Advance(time.Hour)
	want := start.Add(time.Hour)
	if !got.Equal(want) || !clk.Now().Equal(want) {
		t.Errorf("after Advance: %v, want %v", clk.Now(), want)
	}

	past := start.Add(-time.Hour)
	clk.Set(past)
	if !clk.Now().Equal(past) {
		t.Errorf("after Set: %v, want %v", clk.Now(), past)
	}
}
