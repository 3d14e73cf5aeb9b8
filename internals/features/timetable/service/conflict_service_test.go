package service

import (
	"testing"

	"github.com/google/uuid"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/timetable/model"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/helpers/dbtime"
)

func tod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	v, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical intervals", "10:00", "12:00", "10:00", "12:00", true},
		{"partial overlap at tail", "10:00", "12:00", "11:00", "13:00", true},
		{"partial overlap at head", "11:00", "13:00", "10:00", "12:00", true},
		{"contained interval", "10:00", "12:00", "10:30", "11:30", true},
		{"containing interval", "10:30", "11:30", "10:00", "12:00", true},
		{"back-to-back a before b", "09:00", "10:00", "10:00", "11:00", false},
		{"back-to-back b before a", "10:00", "11:00", "09:00", "10:00", false},
		{"fully disjoint", "08:00", "09:00", "13:00", "14:00", false},
		{"one minute overlap", "10:00", "11:01", "11:00", "12:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tod(t, tc.aStart), tod(t, tc.aEnd), tod(t, tc.bStart), tod(t, tc.bEnd))
			if got != tc.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}

			// Symmetry: overlap(A,B) == overlap(B,A)
			rev := Overlaps(tod(t, tc.bStart), tod(t, tc.bEnd), tod(t, tc.aStart), tod(t, tc.aEnd))
			if rev != got {
				t.Errorf("Overlaps is not symmetric for %s-%s vs %s-%s", tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			}
		})
	}
}

func TestHasConflict(t *testing.T) {
	session := func(id uuid.UUID, start, end string) model.TimetableModel {
		return model.TimetableModel{
			ID:        id,
			StartTime: tod(t, start),
			EndTime:   tod(t, end),
		}
	}

	existingID := uuid.New()

	t.Run("no sessions means no conflict", func(t *testing.T) {
		if HasConflict(nil, tod(t, "10:00"), tod(t, "12:00"), uuid.Nil) {
			t.Error("expected no conflict on empty scope")
		}
	})

	t.Run("overlapping session conflicts", func(t *testing.T) {
		existing := []model.TimetableModel{session(existingID, "10:00", "12:00")}
		if !HasConflict(existing, tod(t, "11:00"), tod(t, "13:00"), uuid.Nil) {
			t.Error("expected conflict for 11:00-13:00 against 10:00-12:00")
		}
	})

	t.Run("back-to-back session does not conflict", func(t *testing.T) {
		existing := []model.TimetableModel{session(existingID, "10:00", "12:00")}
		if HasConflict(existing, tod(t, "12:00"), tod(t, "14:00"), uuid.Nil) {
			t.Error("back-to-back sessions must not conflict")
		}
	})

	t.Run("excluded session is skipped on reschedule", func(t *testing.T) {
		existing := []model.TimetableModel{session(existingID, "10:00", "12:00")}
		if HasConflict(existing, tod(t, "10:30"), tod(t, "11:30"), existingID) {
			t.Error("session must not conflict with itself during update")
		}
	})

	t.Run("exclude id skips only the matching session", func(t *testing.T) {
		other := session(uuid.New(), "10:00", "12:00")
		existing := []model.TimetableModel{session(existingID, "10:00", "12:00"), other}
		if !HasConflict(existing, tod(t, "10:30"), tod(t, "11:30"), existingID) {
			t.Error("expected conflict with the non-excluded session")
		}
	})
}
