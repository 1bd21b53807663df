package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"
	ErrAdminAccessOnly    ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrInvalidInput   ErrCode = "INVALID_INPUT"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrDependencyExists ErrCode = "DEPENDENCY_EXISTS"

	// ─── Academic invariants ───────────────────────────────────────────
	ErrDuplicateEnrollment     ErrCode = "DUPLICATE_ENROLLMENT"
	ErrUnscheduledCourse       ErrCode = "UNSCHEDULED_COURSE"
	ErrEnrollmentLimitExceeded ErrCode = "ENROLLMENT_LIMIT_EXCEEDED"
	ErrCapacityExceeded        ErrCode = "CAPACITY_EXCEEDED"
	ErrRoomConflict            ErrCode = "ROOM_CONFLICT"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Correo o contraseña incorrectos."
	case ErrTokenRequired:
		return "Se requiere un token de autenticación."
	case ErrTokenInvalid:
		return "El token de autenticación no es válido."
	case ErrTokenExpired:
		return "El token de autenticación ha expirado."
	case ErrAdminAccessOnly:
		return "Este recurso está restringido a administradores."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "La validación falló. Revise los datos ingresados."
	case ErrInvalidID:
		return "El formato del ID no es válido."
	case ErrInvalidPayload:
		return "El cuerpo de la solicitud no es válido."
	case ErrInvalidInput:
		return "Los datos proporcionados no son válidos."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Recurso no encontrado."
	case ErrConflict:
		return "El recurso ya existe."
	case ErrDependencyExists:
		return "No se puede eliminar porque otros registros dependen de este."

	// ─── Academic invariants ───────────────────────────────────────────
	case ErrDuplicateEnrollment:
		return "El estudiante ya está matriculado en este curso para el semestre seleccionado."
	case ErrUnscheduledCourse:
		return "El curso no tiene horarios asignados."
	case ErrEnrollmentLimitExceeded:
		return "El estudiante ha alcanzado el límite de cursos para este semestre."
	case ErrCapacityExceeded:
		return "El aula no tiene capacidad para todos los estudiantes inscritos."
	case ErrRoomConflict:
		return "El aula ya está ocupada en este horario."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Demasiadas solicitudes. Intente nuevamente más tarde."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Ocurrió un error interno del servidor."
	default:
		return "Ocurrió un error inesperado."
	}
}
