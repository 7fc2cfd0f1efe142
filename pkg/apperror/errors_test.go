package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGetAppError(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewInvalidArgumentError("x_axis", "unknown axis"))
	appErr := GetAppError(wrapped)
	if appErr.Code != http.StatusBadRequest {
		t.Errorf("Code = %d, want 400", appErr.Code)
	}
	if !IsInvalidArgument(wrapped) {
		t.Error("IsInvalidArgument() = false, want true")
	}

	plain := errors.New("connection refused")
	appErr = GetAppError(plain)
	if appErr.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d, want 500", appErr.Code)
	}
	if !errors.Is(appErr, plain) {
		t.Error("internal error should keep its cause")
	}
	if IsAppError(plain) {
		t.Error("IsAppError(plain) = true, want false")
	}
}

func TestErrNotFound(t *testing.T) {
	wrapped := fmt.Errorf("route: %w", ErrNotFound)
	appErr := GetAppError(wrapped)
	if appErr != ErrNotFound || appErr.Code != http.StatusNotFound {
		t.Errorf("GetAppError() = %+v, want ErrNotFound", appErr)
	}
	if IsInvalidArgument(wrapped) {
		t.Error("not found is not an invalid argument")
	}
}
