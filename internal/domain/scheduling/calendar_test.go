package scheduling

import (
	"testing"
	"time"
)

func utc(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestWorkingWindows_Weekend(t *testing.T) {
	sat := utc(2025, time.March, 8, 10, 0)
	sun := utc(2025, time.March, 9, 10, 0)
	if got := WorkingWindows(sat); got != nil {
		t.Errorf("expected no windows on Saturday, got %v", got)
	}
	if got := WorkingWindows(sun); got != nil {
		t.Errorf("expected no windows on Sunday, got %v", got)
	}
}

func TestWorkingWindows_Weekday(t *testing.T) {
	mon := utc(2025, time.March, 10, 0, 0)
	ws := WorkingWindows(mon)
	if len(ws) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(ws))
	}
	if !ws[0].Start.Equal(utc(2025, time.March, 10, 8, 0)) || !ws[0].End.Equal(utc(2025, time.March, 10, 12, 0)) {
		t.Errorf("unexpected morning window: %v", ws[0])
	}
	if !ws[1].Start.Equal(utc(2025, time.March, 10, 13, 0)) || !ws[1].End.Equal(utc(2025, time.March, 10, 17, 0)) {
		t.Errorf("unexpected afternoon window: %v", ws[1])
	}
}

func TestWorkingWindows_IgnoresTimeOfDay(t *testing.T) {
	a := WorkingWindows(utc(2025, time.March, 10, 0, 0))
	b := WorkingWindows(utc(2025, time.March, 10, 23, 59))
	if !a[0].Start.Equal(b[0].Start) || !a[1].End.Equal(b[1].End) {
		t.Error("windows must depend only on the calendar date")
	}
}

func TestTimeWindow_HalfOpen(t *testing.T) {
	w := TimeWindow{Start: utc(2025, time.March, 10, 8, 0), End: utc(2025, time.March, 10, 12, 0)}
	if !w.Contains(w.Start) {
		t.Error("window start must be included")
	}
	if w.Contains(w.End) {
		t.Error("window end must be excluded")
	}
	if !w.Contains(utc(2025, time.March, 10, 11, 30)) {
		t.Error("11:30 must be inside [08:00, 12:00)")
	}
}

func TestInWorkingWindow(t *testing.T) {
	cases := []struct {
		at   time.Time
		want bool
	}{
		{utc(2025, time.March, 10, 8, 0), true},    // open
		{utc(2025, time.March, 10, 11, 30), true},  // late morning
		{utc(2025, time.March, 10, 12, 0), false},  // break start
		{utc(2025, time.March, 10, 12, 30), false}, // inside break
		{utc(2025, time.March, 10, 13, 0), true},   // afternoon open
		{utc(2025, time.March, 10, 16, 30), true},  // last slot
		{utc(2025, time.March, 10, 17, 0), false},  // close
		{utc(2025, time.March, 10, 7, 30), false},  // before open
		{utc(2025, time.March, 8, 10, 0), false},   // Saturday
	}
	for _, tc := range cases {
		if got := InWorkingWindow(tc.at); got != tc.want {
			t.Errorf("InWorkingWindow(%v) = %v, want %v", tc.at, got, tc.want)
		}
	}
}

func TestIsClosedDay(t *testing.T) {
	if !IsClosedDay(utc(2025, time.March, 8, 0, 0)) || !IsClosedDay(utc(2025, time.March, 9, 0, 0)) {
		t.Error("Saturday and Sunday must be closed")
	}
	if IsClosedDay(utc(2025, time.March, 10, 0, 0)) {
		t.Error("Monday must not be closed")
	}
}
