package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sgu-project/sgu-backend/internal/config"
	"github.com/sgu-project/sgu-backend/internal/database"
	"github.com/sgu-project/sgu-backend/internal/guard"
	"github.com/sgu-project/sgu-backend/internal/logger"
	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/repository"
	"github.com/sgu-project/sgu-backend/internal/service"
)

var (
	facultyNames = []string{
		"Ingeniería", "Medicina", "Ciencias", "Arquitectura", "Derecho",
		"Economía", "Psicología", "Comunicación",
	}
	deptNames      = []string{"Ciencias Básicas", "Investigación", "Postgrados", "Extensión"}
	coursePrefixes = []string{"MAT", "FIS", "QUI", "BIO", "ING", "MED", "DER", "ECO"}
	firstNames     = []string{
		"Carlos", "María", "José", "Ana", "Luis", "Carmen", "Jorge", "Lucía",
		"Miguel", "Sofía", "Pedro", "Valentina", "Diego", "Camila", "Andrés", "Paula",
	}
	lastNames = []string{
		"García", "Rodríguez", "Martínez", "López", "González", "Hernández",
		"Pérez", "Sánchez", "Ramírez", "Torres", "Flores", "Rivera",
	}
	buildings = []string{"A", "B", "C", "D"}
	roomTypes = []string{"Aula", "Laboratorio", "Auditorio"}
	weekdays  = []model.Weekday{
		model.Monday, model.Tuesday, model.Wednesday,
		model.Thursday, model.Friday,
	}
)

// Seed volumes, scaled down from the full dataset so a local run
// finishes in seconds.
const (
	studentCount   = 200
	professorCount = 40
	classroomCount = 30
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	facultyRepo := repository.NewFacultyRepository(pool)
	departmentRepo := repository.NewDepartmentRepository(pool)
	majorRepo := repository.NewMajorRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	professorRepo := repository.NewProfessorRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	classroomRepo := repository.NewClassroomRepository(pool)

	scheduleService := service.NewScheduleService(pool, cfg.MaxCoursesPerSemester, log)
	enrollmentService := service.NewEnrollmentService(pool, cfg.MaxCoursesPerSemester, log)

	fmt.Println("=== Seeding SGU database ===")

	// Faculties.
	var faculties []model.Faculty
	for i, name := range facultyNames {
		foundation := time.Date(1960+rng.Intn(40), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
		f := model.Faculty{
			Name:           "Facultad de " + name,
			Location:       fmt.Sprintf("Edificio %c", 'A'+i),
			FoundationDate: &foundation,
			Phone:          fmt.Sprintf("+52 55 %04d %04d", rng.Intn(10000), rng.Intn(10000)),
			Dean:           randomName(rng),
		}
		if err := facultyRepo.Create(ctx, &f); err != nil {
			log.Fatal().Err(err).Msg("Failed to create faculty")
		}
		faculties = append(faculties, f)
	}
	fmt.Printf("%d faculties created\n", len(faculties))

	// Departments: 2 to 4 per faculty.
	var departments []model.Department
	for _, f := range faculties {
		for _, deptName := range deptNames[:2+rng.Intn(3)] {
			d := model.Department{
				Name:      fmt.Sprintf("%s (%s)", deptName, f.Name),
				FacultyID: f.ID,
				Head:      randomName(rng),
				Email:     fmt.Sprintf("depto%d@sgu.edu.mx", len(departments)+1),
			}
			if err := departmentRepo.Create(ctx, &d); err != nil {
				log.Fatal().Err(err).Msg("Failed to create department")
			}
			departments = append(departments, d)
		}
	}
	fmt.Printf("%d departments created\n", len(departments))

	// Majors: one per faculty.
	var majors []model.Major
	for _, f := range faculties {
		m := model.Major{
			Name:          "Licenciatura en " + f.Name[len("Facultad de "):],
			FacultyID:     f.ID,
			DurationYears: 3 + rng.Intn(3),
			TotalCredits:  180 + rng.Intn(120),
			Degree:        "Licenciatura",
		}
		if err := majorRepo.Create(ctx, &m); err != nil {
			log.Fatal().Err(err).Msg("Failed to create major")
		}
		majors = append(majors, m)
	}
	fmt.Printf("%d majors created\n", len(majors))

	// Classrooms.
	var classrooms []model.Classroom
	for i := 0; i < classroomCount; i++ {
		c := model.Classroom{
			Code:         fmt.Sprintf("%s%03d", buildings[rng.Intn(len(buildings))], i+1),
			Building:     "Edificio " + buildings[rng.Intn(len(buildings))],
			Capacity:     20 + rng.Intn(60),
			RoomType:     roomTypes[rng.Intn(len(roomTypes))],
			HasProjector: rng.Intn(4) > 0,
		}
		if err := classroomRepo.Create(ctx, &c); err != nil {
			log.Fatal().Err(err).Msg("Failed to create classroom")
		}
		classrooms = append(classrooms, c)
	}
	fmt.Printf("%d classrooms created\n", len(classrooms))

	// Professors.
	for i := 0; i < professorCount; i++ {
		dept := departments[rng.Intn(len(departments))]
		salary := 25000 + float64(rng.Intn(40000))
		p := model.Professor{
			FirstName:      firstNames[rng.Intn(len(firstNames))],
			LastName:       lastNames[rng.Intn(len(lastNames))],
			Specialization: "Docencia",
			DepartmentID:   dept.ID,
			HireDate:       time.Date(2000+rng.Intn(24), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC),
			Salary:         &salary,
			Email:          fmt.Sprintf("prof%d@sgu.edu.mx", i+1),
			Active:         rng.Intn(4) > 0,
		}
		if err := professorRepo.Create(ctx, &p); err != nil {
			log.Fatal().Err(err).Msg("Failed to create professor")
		}
	}
	fmt.Printf("%d professors created\n", professorCount)

	// Students: 10% without a major.
	var students []model.Student
	for i := 0; i < studentCount; i++ {
		var majorID *int
		if rng.Float64() > 0.1 {
			id := majors[rng.Intn(len(majors))].ID
			majorID = &id
		}
		s := model.Student{
			FirstName:     firstNames[rng.Intn(len(firstNames))],
			LastName:      lastNames[rng.Intn(len(lastNames))],
			BirthDate:     time.Date(1995+rng.Intn(10), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC),
			Address:       fmt.Sprintf("Calle %d #%d", 1+rng.Intn(100), 1+rng.Intn(500)),
			Phone:         fmt.Sprintf("+52 55 %04d %04d", rng.Intn(10000), rng.Intn(10000)),
			Email:         fmt.Sprintf("alumno%d@sgu.edu.mx", i+1),
			MajorID:       majorID,
			AdmissionDate: time.Date(2020+rng.Intn(5), 8, 1, 0, 0, 0, 0, time.UTC),
			Status:        "Activo",
		}
		if err := studentRepo.Create(ctx, &s); err != nil {
			log.Fatal().Err(err).Msg("Failed to create student")
		}
		students = append(students, s)
	}
	fmt.Printf("%d students created\n", len(students))

	// Courses: 5 to 8 per major.
	var courses []model.Course
	for _, m := range majors {
		for i := 0; i < 5+rng.Intn(4); i++ {
			prefix := coursePrefixes[rng.Intn(len(coursePrefixes))]
			c := model.Course{
				Code:    fmt.Sprintf("%s%04d", prefix, 1000+len(courses)),
				Name:    fmt.Sprintf("%s %d", m.Name, i+1),
				Credits: 1 + rng.Intn(6),
				MajorID: m.ID,
			}
			if err := courseRepo.Create(ctx, &c); err != nil {
				log.Fatal().Err(err).Msg("Failed to create course")
			}
			courses = append(courses, c)
		}
	}
	fmt.Printf("%d courses created\n", len(courses))

	// Schedules go through the guarded write path; slots that collide
	// with an earlier assignment are skipped, not forced.
	scheduled := 0
	for _, c := range courses {
		slots := 1 + rng.Intn(2)
		for i := 0; i < slots; i++ {
			startHour := 7 + rng.Intn(12)
			sched := &model.Schedule{
				CourseID:    c.ID,
				ClassroomID: classrooms[rng.Intn(len(classrooms))].ID,
				Semester:    model.Semesters[rng.Intn(len(model.Semesters))],
				Day:         weekdays[rng.Intn(len(weekdays))],
				StartTime:   model.TimeOfDay(startHour * 60),
				EndTime:     model.TimeOfDay((startHour + 2) * 60),
			}
			err := scheduleService.Create(ctx, sched)
			if err != nil {
				var v *guard.Violation
				if errors.As(err, &v) {
					continue
				}
				log.Fatal().Err(err).Msg("Failed to create schedule")
			}
			scheduled++
		}
	}
	fmt.Printf("%d schedules created\n", scheduled)

	// Enrollments go through the guarded write path as well, so the
	// duplicate, load and capacity rules hold for generated data too.
	enrolled := 0
	for _, s := range students {
		wanted := 3 + rng.Intn(4)
		for i := 0; i < wanted; i++ {
			course := courses[rng.Intn(len(courses))]
			semester := model.Semesters[rng.Intn(len(model.Semesters))]
			_, err := enrollmentService.Enroll(ctx, s.ID, course.ID, semester)
			if err != nil {
				var v *guard.Violation
				if errors.As(err, &v) {
					continue
				}
				log.Fatal().Err(err).Msg("Failed to create enrollment")
			}
			enrolled++
		}
	}
	fmt.Printf("%d enrollments created\n", enrolled)

	fmt.Println("Seed complete")
}

func randomName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}
