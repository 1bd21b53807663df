package guard

import (
	"context"
	"testing"

	"github.com/sgu-project/sgu-backend/internal/model"
)

type fakeEnrollmentReader struct {
	enrollments []model.Enrollment
}

func (f *fakeEnrollmentReader) Find(_ context.Context, studentID, courseID int, semester model.Semester) (*model.Enrollment, error) {
	for i, e := range f.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID && e.Semester == semester {
			return &f.enrollments[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEnrollmentReader) CountActiveByStudent(_ context.Context, studentID int, semester model.Semester) (int, error) {
	n := 0
	for _, e := range f.enrollments {
		if e.StudentID == studentID && e.Semester == semester && e.Status == model.EnrollmentActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeEnrollmentReader) CountActiveByCourse(_ context.Context, courseID int, semester model.Semester) (int, error) {
	n := 0
	for _, e := range f.enrollments {
		if e.CourseID == courseID && e.Semester == semester && e.Status == model.EnrollmentActive {
			n++
		}
	}
	return n, nil
}

type fakeClassroomReader struct {
	classrooms map[int]*model.Classroom
}

func (f *fakeClassroomReader) GetByID(_ context.Context, id int) (*model.Classroom, error) {
	return f.classrooms[id], nil
}

func activeEnrollments(studentID, courseCount int, semester model.Semester) []model.Enrollment {
	out := make([]model.Enrollment, 0, courseCount)
	for i := 0; i < courseCount; i++ {
		out = append(out, model.Enrollment{
			StudentID: studentID,
			CourseID:  500 + i,
			Semester:  semester,
			Status:    model.EnrollmentActive,
		})
	}
	return out
}

func newGuard(schedules *fakeScheduleReader, enrollments *fakeEnrollmentReader, classrooms *fakeClassroomReader) *CapacityAndLoadGuard {
	if schedules == nil {
		schedules = &fakeScheduleReader{}
	}
	if enrollments == nil {
		enrollments = &fakeEnrollmentReader{}
	}
	if classrooms == nil {
		classrooms = &fakeClassroomReader{classrooms: map[int]*model.Classroom{}}
	}
	return NewCapacityAndLoadGuard(schedules, enrollments, classrooms, 0)
}

func TestCanEnrollRejectsDuplicate(t *testing.T) {
	enrollments := &fakeEnrollmentReader{enrollments: []model.Enrollment{
		{StudentID: 7, CourseID: 100, Semester: model.FirstSemester, Status: model.EnrollmentActive},
	}}
	schedules := &fakeScheduleReader{schedules: []model.Schedule{
		{ID: 1, CourseID: 100, ClassroomID: 1, Day: model.Monday, StartTime: 8 * 60, EndTime: 10 * 60},
	}}
	g := newGuard(schedules, enrollments, nil)

	res, err := g.CanEnroll(context.Background(), 7, 100, model.FirstSemester)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Allowed {
		t.Fatal("expected rejection for duplicate enrollment")
	}
	if res.Violation.Kind != KindDuplicateEnrollment {
		t.Errorf("kind = %s, want %s", res.Violation.Kind, KindDuplicateEnrollment)
	}
}

func TestCanEnrollRejectsUnscheduledCourse(t *testing.T) {
	// Course 200 has zero schedule records.
	g := newGuard(&fakeScheduleReader{}, &fakeEnrollmentReader{}, nil)

	res, err := g.CanEnroll(context.Background(), 7, 200, model.FirstSemester)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Allowed {
		t.Fatal("expected rejection for unscheduled course")
	}
	if res.Violation.Kind != KindUnscheduledCourse {
		t.Errorf("kind = %s, want %s", res.Violation.Kind, KindUnscheduledCourse)
	}
}

func TestCanEnrollLoadLimitBoundary(t *testing.T) {
	schedules := &fakeScheduleReader{schedules: []model.Schedule{
		{ID: 1, CourseID: 100, ClassroomID: 1, Day: model.Monday, StartTime: 8 * 60, EndTime: 10 * 60},
	}}

	tests := []struct {
		name     string
		existing int
		allowed  bool
	}{
		{"five enrollments allow a sixth", 5, true},
		{"six enrollments reject a seventh", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enrollments := &fakeEnrollmentReader{
				enrollments: activeEnrollments(7, tt.existing, model.FirstSemester),
			}
			g := newGuard(schedules, enrollments, nil)

			res, err := g.CanEnroll(context.Background(), 7, 100, model.FirstSemester)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Allowed != tt.allowed {
				t.Errorf("Allowed = %v, want %v", res.Allowed, tt.allowed)
			}
			if !tt.allowed && res.Violation.Kind != KindEnrollmentLimitExceeded {
				t.Errorf("kind = %s, want %s", res.Violation.Kind, KindEnrollmentLimitExceeded)
			}
		})
	}
}

func TestCanEnrollIgnoresWithdrawnEnrollments(t *testing.T) {
	schedules := &fakeScheduleReader{schedules: []model.Schedule{
		{ID: 1, CourseID: 100, ClassroomID: 1, Day: model.Monday, StartTime: 8 * 60, EndTime: 10 * 60},
	}}
	enrollments := &fakeEnrollmentReader{enrollments: activeEnrollments(7, 6, model.FirstSemester)}
	for i := range enrollments.enrollments {
		enrollments.enrollments[i].Status = model.EnrollmentWithdrawn
	}
	g := newGuard(schedules, enrollments, nil)

	res, err := g.CanEnroll(context.Background(), 7, 100, model.FirstSemester)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Allowed {
		t.Errorf("withdrawn enrollments must not count toward the load limit: %v", res.Violation)
	}
}

func TestCanEnrollRejectsUnknownSemester(t *testing.T) {
	g := newGuard(nil, nil, nil)

	res, err := g.CanEnroll(context.Background(), 7, 100, "Tercer Semestre")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Allowed || res.Violation.Kind != KindInvalidInput {
		t.Errorf("expected InvalidInput rejection, got %+v", res)
	}
}

func TestCanAssignRoomCapacityBoundary(t *testing.T) {
	classrooms := &fakeClassroomReader{classrooms: map[int]*model.Classroom{
		1: {ID: 1, Code: "A101", Capacity: 30},
	}}

	tests := []struct {
		name     string
		enrolled int
		allowed  bool
	}{
		{"exactly at capacity is valid", 30, true},
		{"one over capacity is rejected", 31, false},
		{"empty course is valid", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var enrollments fakeEnrollmentReader
			for i := 0; i < tt.enrolled; i++ {
				enrollments.enrollments = append(enrollments.enrollments, model.Enrollment{
					StudentID: 1000 + i,
					CourseID:  100,
					Semester:  model.FirstSemester,
					Status:    model.EnrollmentActive,
				})
			}
			g := newGuard(nil, &enrollments, classrooms)

			res, err := g.CanAssignRoom(context.Background(), 100, 1, model.FirstSemester)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Allowed != tt.allowed {
				t.Errorf("Allowed = %v, want %v", res.Allowed, tt.allowed)
			}
			if !tt.allowed && res.Violation.Kind != KindCapacityExceeded {
				t.Errorf("kind = %s, want %s", res.Violation.Kind, KindCapacityExceeded)
			}
		})
	}
}

func TestCanAssignRoomRejectsUnknownClassroom(t *testing.T) {
	g := newGuard(nil, nil, &fakeClassroomReader{classrooms: map[int]*model.Classroom{}})

	res, err := g.CanAssignRoom(context.Background(), 100, 99, model.FirstSemester)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Allowed || res.Violation.Kind != KindInvalidInput {
		t.Errorf("expected InvalidInput rejection, got %+v", res)
	}
}

func TestCanAssignRoomRejectsNonPositiveCapacity(t *testing.T) {
	g := newGuard(nil, nil, &fakeClassroomReader{classrooms: map[int]*model.Classroom{
		1: {ID: 1, Code: "B201", Capacity: 0},
	}})

	res, err := g.CanAssignRoom(context.Background(), 100, 1, model.FirstSemester)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Allowed || res.Violation.Kind != KindInvalidInput {
		t.Errorf("expected InvalidInput rejection, got %+v", res)
	}
}

func TestDefaultLoadLimit(t *testing.T) {
	g := NewCapacityAndLoadGuard(&fakeScheduleReader{}, &fakeEnrollmentReader{}, &fakeClassroomReader{}, 0)
	if g.MaxCoursesPerSemester() != DefaultMaxCoursesPerSemester {
		t.Errorf("default limit = %d, want %d", g.MaxCoursesPerSemester(), DefaultMaxCoursesPerSemester)
	}

	g = NewCapacityAndLoadGuard(&fakeScheduleReader{}, &fakeEnrollmentReader{}, &fakeClassroomReader{}, 4)
	if g.MaxCoursesPerSemester() != 4 {
		t.Errorf("configured limit = %d, want 4", g.MaxCoursesPerSemester())
	}
}
