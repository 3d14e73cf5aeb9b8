package service

import (
	"github.com/google/uuid"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/timetable/model"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/helpers/dbtime"
)

// Overlaps reports whether two half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Back-to-back sessions (aEnd == bStart) do not.
func Overlaps(aStart, aEnd, bStart, bEnd dbtime.Tod) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasConflict checks a candidate interval against existing sessions that
// were already fetched for the conflict scope (same day, room, faculty).
// excludeID skips the session being rescheduled; pass uuid.Nil on create.
func HasConflict(existing []model.TimetableModel, start, end dbtime.Tod, excludeID uuid.UUID) bool {
	for _, s := range existing {
		if excludeID != uuid.Nil && s.ID == excludeID {
			continue
		}
		if Overlaps(start, end, s.StartTime, s.EndTime) {
			return true
		}
	}
	return false
}
