package guard

import (
	"context"
	"fmt"

	"github.com/sgu-project/sgu-backend/internal/model"
)

// NoExclusion disables the exclude-schedule-id filter of IsRoomAvailable.
const NoExclusion = 0

// AvailabilityChecker decides whether a proposed classroom time slot
// conflicts with an existing schedule for the same room and day.
type AvailabilityChecker struct {
	schedules ScheduleReader
}

// NewAvailabilityChecker creates an AvailabilityChecker over the given
// schedule read interface.
func NewAvailabilityChecker(schedules ScheduleReader) *AvailabilityChecker {
	return &AvailabilityChecker{schedules: schedules}
}

// IsRoomAvailable reports whether the room is free on the given day for
// the half-open interval [start, end). Two slots conflict iff
// startA < endB && endA > startB, so back-to-back slots are permitted.
// excludeScheduleID removes the named record from the conflict set when
// re-validating an update; pass NoExclusion when creating.
//
// The caller guarantees start < end; this component does not re-validate
// time ordering.
func (c *AvailabilityChecker) IsRoomAvailable(
	ctx context.Context,
	classroomID int,
	day model.Weekday,
	start, end model.TimeOfDay,
	excludeScheduleID int,
) (bool, error) {
	if !day.IsValid() {
		return false, &Violation{Kind: KindInvalidInput, Detail: fmt.Sprintf("unknown weekday %q", day)}
	}

	existing, err := c.schedules.ListByClassroomDay(ctx, classroomID, day)
	if err != nil {
		return false, fmt.Errorf("list schedules for classroom %d: %w", classroomID, err)
	}

	for i := range existing {
		if existing[i].ID == excludeScheduleID {
			continue
		}
		if existing[i].Overlaps(start, end) {
			return false, nil
		}
	}
	return true, nil
}

// CheckRoom wraps IsRoomAvailable as a guard verdict, denying with
// RoomConflict when the slot is taken.
func (c *AvailabilityChecker) CheckRoom(
	ctx context.Context,
	classroomID int,
	day model.Weekday,
	start, end model.TimeOfDay,
	excludeScheduleID int,
) (Result, error) {
	available, err := c.IsRoomAvailable(ctx, classroomID, day, start, end, excludeScheduleID)
	if err != nil {
		var v *Violation
		if ok := asViolation(err, &v); ok {
			return Result{Allowed: false, Violation: v}, nil
		}
		return Result{}, err
	}
	if !available {
		return Deny(KindRoomConflict,
			"classroom %d is already occupied on %s between %s and %s",
			classroomID, day, start, end), nil
	}
	return Allow(), nil
}
