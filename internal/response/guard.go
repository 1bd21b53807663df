package response

import (
	"net/http"

	"github.com/sgu-project/sgu-backend/internal/guard"
)

// FromGuardKind maps a guard rejection kind to its HTTP status and API
// error code. Invariant rejections are conflicts, not server faults.
func FromGuardKind(kind guard.Kind) (int, ErrCode) {
	switch kind {
	case guard.KindDuplicateEnrollment:
		return http.StatusConflict, ErrDuplicateEnrollment
	case guard.KindUnscheduledCourse:
		return http.StatusConflict, ErrUnscheduledCourse
	case guard.KindEnrollmentLimitExceeded:
		return http.StatusConflict, ErrEnrollmentLimitExceeded
	case guard.KindCapacityExceeded:
		return http.StatusConflict, ErrCapacityExceeded
	case guard.KindRoomConflict:
		return http.StatusConflict, ErrRoomConflict
	case guard.KindInvalidInput:
		return http.StatusBadRequest, ErrInvalidInput
	default:
		return http.StatusInternalServerError, ErrInternal
	}
}
