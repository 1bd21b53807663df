package config

import "fmt"

// CacheKeyStruct builds the Redis key names used by the report cache.
type CacheKeyStruct struct{}

// CacheKey is the shared key builder instance.
var CacheKey = &CacheKeyStruct{}

// EnrollmentReportKey returns the cache key for an enrollment report
// filtered by semester and major. Empty filter parts are encoded as "-".
func (r *CacheKeyStruct) EnrollmentReportKey(semester, majorFilter string) string {
	if semester == "" {
		semester = "-"
	}
	if majorFilter == "" {
		majorFilter = "-"
	}
	return fmt.Sprintf("report:enrollments:%s:%s", semester, majorFilter)
}

// DepartmentStatsKey returns the cache key for the department
// statistics report.
func (r *CacheKeyStruct) DepartmentStatsKey() string {
	return "report:department_stats"
}
