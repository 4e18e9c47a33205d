package service

import (
	"testing"
	"time"
)

func TestCropCalendarByMonth(t *testing.T) {
	c := NewCropCalendar()

	for _, month := range []int{0, 13, -1} {
		if _, err := c.ByMonth(month); err == nil {
			t.Errorf("ByMonth(%d) expected error", month)
		}
	}

	for month := 1; month <= 12; month++ {
		crops, err := c.ByMonth(month)
		if err != nil {
			t.Fatalf("ByMonth(%d): %v", month, err)
		}
		for _, crop := range crops {
			if !crop.PlantedIn(month) {
				t.Errorf("%s returned for month %d but not planted then", crop.ID, month)
			}
		}
	}
}

func TestCropCalendarAllIsACopy(t *testing.T) {
	c := NewCropCalendar()
	all := c.All()
	if len(all) == 0 {
		t.Fatal("expected crops")
	}
	all[0].NameEn = "changed"
	if c.All()[0].NameEn == "changed" {
		t.Fatal("All() exposed the internal slice")
	}
}

func TestCropCalendarCurrentSeason(t *testing.T) {
	c := NewCropCalendar()
	c.now = func() time.Time { return time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC) }

	want, _ := c.ByMonth(10)
	got := c.CurrentSeason()
	if len(got) != len(want) {
		t.Fatalf("CurrentSeason() returned %d crops, want %d", len(got), len(want))
	}
	for _, crop := range got {
		if !crop.PlantedIn(10) {
			t.Errorf("%s is not planted in October", crop.ID)
		}
	}
}
