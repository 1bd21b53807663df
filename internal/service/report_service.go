package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sgu-project/sgu-backend/internal/config"
	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ReportService builds the enrollment and department reports. Row data
// is cached in Redis so repeated downloads within the TTL skip the
// aggregate queries; the XLSX is rendered per request.
type ReportService struct {
	reportRepo repository.ReportRepository
	rdb        *redis.Client
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo repository.ReportRepository, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		rdb:        rdb,
		cacheTTL:   cacheTTL,
		log:        log.With().Str("component", "report_service").Logger(),
	}
}

// EnrollmentRows returns the filtered enrollment report rows, serving
// from the Redis cache when a fresh copy exists.
func (s *ReportService) EnrollmentRows(ctx context.Context, filter repository.EnrollmentReportFilter) ([]model.EnrollmentReportRow, error) {
	majorFilter := ""
	if filter.MajorID > 0 {
		majorFilter = fmt.Sprintf("%d", filter.MajorID)
	}
	key := config.CacheKey.EnrollmentReportKey(string(filter.Semester), majorFilter)

	// MinCredits is an ad-hoc filter, only unfiltered-credit reports
	// are cached.
	if filter.MinCredits == 0 {
		if rows, ok := s.cachedRows(ctx, key); ok {
			return rows, nil
		}
	}

	rows, err := s.reportRepo.EnrollmentRows(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("enrollment rows: %w", err)
	}

	if filter.MinCredits == 0 {
		s.cacheRows(ctx, key, rows)
	}
	return rows, nil
}

// DepartmentStats returns the department statistics, cached in Redis.
func (s *ReportService) DepartmentStats(ctx context.Context) ([]model.DepartmentStat, error) {
	key := config.CacheKey.DepartmentStatsKey()

	data, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var stats []model.DepartmentStat
		if err := json.Unmarshal(data, &stats); err == nil {
			return stats, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Report cache read failed, falling back to database")
	}

	stats, err := s.reportRepo.DepartmentStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("department stats: %w", err)
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Report cache write failed")
		}
	}
	return stats, nil
}

// WriteEnrollmentXLSX renders the enrollment report as an XLSX workbook.
func (s *ReportService) WriteEnrollmentXLSX(ctx context.Context, filter repository.EnrollmentReportFilter, w io.Writer) error {
	rows, err := s.EnrollmentRows(ctx, filter)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inscripciones"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Matrícula", "Estudiante", "Correo", "Carrera", "Código", "Materia", "Créditos", "Semestre", "Estado", "Calificación"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.StudentID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.StudentName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), row.Email)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", r), row.MajorName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", r), row.CourseCode)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", r), row.CourseName)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", r), row.Credits)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", r), string(row.Semester))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", r), row.Status)
		if row.Grade != nil {
			f.SetCellValue(sheet, fmt.Sprintf("J%d", r), *row.Grade)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteDepartmentStatsXLSX renders the department statistics as an
// XLSX workbook.
func (s *ReportService) WriteDepartmentStatsXLSX(ctx context.Context, w io.Writer) error {
	stats, err := s.DepartmentStats(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Departamentos"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Departamento", "Facultad", "Profesores", "Materias", "Créditos promedio"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, st := range stats {
		r := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), st.DepartmentName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), st.FacultyName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), st.ProfessorCount)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", r), st.CourseCount)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", r), st.AvgCredits)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ExportToDir writes the current enrollment report and department
// statistics as timestamped XLSX files under dir. Used by the report
// worker.
func (s *ReportService) ExportToDir(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	stamp := time.Now().Format("20060102_150405")

	enrollPath := filepath.Join(dir, fmt.Sprintf("inscripciones_%s.xlsx", stamp))
	if err := s.writeFile(enrollPath, func(w io.Writer) error {
		return s.WriteEnrollmentXLSX(ctx, repository.EnrollmentReportFilter{}, w)
	}); err != nil {
		return err
	}

	statsPath := filepath.Join(dir, fmt.Sprintf("departamentos_%s.xlsx", stamp))
	if err := s.writeFile(statsPath, func(w io.Writer) error {
		return s.WriteDepartmentStatsXLSX(ctx, w)
	}); err != nil {
		return err
	}

	s.log.Info().Str("dir", dir).Msg("Report export complete")
	return nil
}

func (s *ReportService) writeFile(path string, render func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	if err := render(file); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}

func (s *ReportService) cachedRows(ctx context.Context, key string) ([]model.EnrollmentReportRow, bool) {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Msg("Report cache read failed, falling back to database")
		}
		return nil, false
	}
	var rows []model.EnrollmentReportRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (s *ReportService) cacheRows(ctx context.Context, key string, rows []model.EnrollmentReportRow) {
	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Report cache write failed")
	}
}
