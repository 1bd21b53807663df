package guard

import (
	"context"
	"testing"

	"github.com/sgu-project/sgu-backend/internal/model"
)

type fakeScheduleReader struct {
	schedules []model.Schedule
}

func (f *fakeScheduleReader) ListByClassroomDay(_ context.Context, classroomID int, day model.Weekday) ([]model.Schedule, error) {
	var out []model.Schedule
	for _, s := range f.schedules {
		if s.ClassroomID == classroomID && s.Day == day {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleReader) CountByCourse(_ context.Context, courseID int) (int, error) {
	n := 0
	for _, s := range f.schedules {
		if s.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

func mustTime(t *testing.T, s string) model.TimeOfDay {
	t.Helper()
	v, err := model.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestIsRoomAvailable(t *testing.T) {
	ctx := context.Background()

	// Room 1 has an existing slot Monday 08:00-10:00 for course 100.
	reader := &fakeScheduleReader{schedules: []model.Schedule{
		{ID: 1, CourseID: 100, ClassroomID: 1, Day: model.Monday,
			StartTime: 8 * 60, EndTime: 10 * 60},
	}}
	checker := NewAvailabilityChecker(reader)

	tests := []struct {
		name       string
		classroom  int
		day        model.Weekday
		start, end string
		exclude    int
		want       bool
	}{
		{"overlapping slot rejected", 1, model.Monday, "09:00", "11:00", NoExclusion, false},
		{"contained slot rejected", 1, model.Monday, "08:30", "09:30", NoExclusion, false},
		{"containing slot rejected", 1, model.Monday, "07:00", "11:00", NoExclusion, false},
		{"identical slot rejected", 1, model.Monday, "08:00", "10:00", NoExclusion, false},
		{"touching slot after is allowed", 1, model.Monday, "10:00", "12:00", NoExclusion, true},
		{"touching slot before is allowed", 1, model.Monday, "06:00", "08:00", NoExclusion, true},
		{"other day is free", 1, model.Tuesday, "09:00", "11:00", NoExclusion, true},
		{"other room is free", 2, model.Monday, "09:00", "11:00", NoExclusion, true},
		{"update excludes own record", 1, model.Monday, "08:30", "10:30", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checker.IsRoomAvailable(ctx, tt.classroom, tt.day,
				mustTime(t, tt.start), mustTime(t, tt.end), tt.exclude)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsRoomAvailable = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRoomAvailableRejectsUnknownDay(t *testing.T) {
	checker := NewAvailabilityChecker(&fakeScheduleReader{})

	_, err := checker.IsRoomAvailable(context.Background(), 1, "Funday", 8*60, 10*60, NoExclusion)
	if err == nil {
		t.Fatal("expected error for unknown weekday")
	}
	var v *Violation
	if !asViolation(err, &v) || v.Kind != KindInvalidInput {
		t.Errorf("expected InvalidInput violation, got %v", err)
	}
}

func TestOverlapSymmetry(t *testing.T) {
	// overlaps(A, B) must equal overlaps(B, A) for any pair of intervals.
	intervals := []struct{ start, end model.TimeOfDay }{
		{8 * 60, 10 * 60},
		{9 * 60, 11 * 60},
		{10 * 60, 12 * 60},
		{7 * 60, 13 * 60},
		{8 * 60, 8*60 + 30},
	}

	for i, a := range intervals {
		for j, b := range intervals {
			sa := model.Schedule{StartTime: a.start, EndTime: a.end}
			sb := model.Schedule{StartTime: b.start, EndTime: b.end}
			if sa.Overlaps(b.start, b.end) != sb.Overlaps(a.start, a.end) {
				t.Errorf("overlap not symmetric for intervals %d and %d", i, j)
			}
		}
	}
}

func TestCheckRoomReportsConflictKind(t *testing.T) {
	reader := &fakeScheduleReader{schedules: []model.Schedule{
		{ID: 1, CourseID: 100, ClassroomID: 1, Day: model.Monday,
			StartTime: 8 * 60, EndTime: 10 * 60},
	}}
	checker := NewAvailabilityChecker(reader)

	res, err := checker.CheckRoom(context.Background(), 1, model.Monday,
		mustTime(t, "09:00"), mustTime(t, "11:00"), NoExclusion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Allowed {
		t.Fatal("expected rejection for overlapping slot")
	}
	if res.Violation.Kind != KindRoomConflict {
		t.Errorf("kind = %s, want %s", res.Violation.Kind, KindRoomConflict)
	}

	res, err = checker.CheckRoom(context.Background(), 1, model.Monday,
		mustTime(t, "10:00"), mustTime(t, "12:00"), NoExclusion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Allowed {
		t.Errorf("back-to-back slot should be allowed, got %v", res.Violation)
	}
}
