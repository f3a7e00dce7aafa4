package service

import (
	"errors"
	"fmt"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/repository"
)

type PlanErrorCode string

const (
	CodeProfileMissing     PlanErrorCode = "PROFILE_MISSING"
	CodePlanNotFound       PlanErrorCode = "PLAN_NOT_FOUND"
	CodeSessionNotFound    PlanErrorCode = "SESSION_NOT_FOUND"
	CodeInvalidSessionType PlanErrorCode = "INVALID_SESSION_TYPE"
	CodeInvalidDistance    PlanErrorCode = "INVALID_DISTANCE"
	CodeInvalidSession     PlanErrorCode = "INVALID_SESSION"
	CodeInvalidProfile     PlanErrorCode = "INVALID_PROFILE"
	CodeInvalidImport      PlanErrorCode = "INVALID_IMPORT"
)

// PlanError is a caller-facing failure with a stable code.
type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// CodeOf extracts the PlanError code from err, if any.
func CodeOf(err error) (PlanErrorCode, bool) {
	var pe *PlanError
	if errors.As(err, &pe) {
		return pe.Code, true
	}
	return "", false
}

func invalidSessionType(t domain.SessionType) error {
	return &PlanError{
		Code:    CodeInvalidSessionType,
		Message: fmt.Sprintf("session type %q is not one of pool, open_water", t),
	}
}

// notFound converts repository.ErrNotFound into a coded error and wraps
// anything else.
func notFound(err error, code PlanErrorCode, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &PlanError{Code: code, Message: what + " not found"}
	}
	return fmt.Errorf("loading %s: %w", what, err)
}
