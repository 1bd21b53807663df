package response

import (
	"net/http"
	"testing"

	"github.com/sgu-project/sgu-backend/internal/guard"
)

func TestFromGuardKind(t *testing.T) {
	tests := []struct {
		kind       guard.Kind
		wantStatus int
		wantCode   ErrCode
	}{
		{guard.KindDuplicateEnrollment, http.StatusConflict, ErrDuplicateEnrollment},
		{guard.KindUnscheduledCourse, http.StatusConflict, ErrUnscheduledCourse},
		{guard.KindEnrollmentLimitExceeded, http.StatusConflict, ErrEnrollmentLimitExceeded},
		{guard.KindCapacityExceeded, http.StatusConflict, ErrCapacityExceeded},
		{guard.KindRoomConflict, http.StatusConflict, ErrRoomConflict},
		{guard.KindInvalidInput, http.StatusBadRequest, ErrInvalidInput},
		{guard.Kind("desconocido"), http.StatusInternalServerError, ErrInternal},
	}

	for _, tt := range tests {
		status, code := FromGuardKind(tt.kind)
		if status != tt.wantStatus || code != tt.wantCode {
			t.Errorf("FromGuardKind(%q) = (%d, %s), want (%d, %s)",
				tt.kind, status, code, tt.wantStatus, tt.wantCode)
		}
	}
}

func TestGetMessageCoversGuardCodes(t *testing.T) {
	codes := []ErrCode{
		ErrDuplicateEnrollment, ErrUnscheduledCourse, ErrEnrollmentLimitExceeded,
		ErrCapacityExceeded, ErrRoomConflict, ErrInvalidInput,
	}
	for _, code := range codes {
		if msg := GetMessage(code); msg == "" || msg == GetMessage("NO_SUCH_CODE") {
			t.Errorf("GetMessage(%s) has no dedicated message", code)
		}
	}
}
