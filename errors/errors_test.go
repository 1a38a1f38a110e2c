package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found", http.StatusNotFound)
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("NOT_FOUND should not be retryable")
	}
}

func TestAppError_WeakPassword_CarriesAllRules(t *testing.T) {
	rules := []string{"must contain an uppercase letter", "must contain a digit"}
	err := WeakPassword(rules)
	if err.Code != ErrCodeWeakPassword {
		t.Errorf("expected WEAK_PASSWORD, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
	got, ok := err.Details["rules"].([]string)
	if !ok || len(got) != 2 {
		t.Fatalf("expected 2 rules in details, got %v", err.Details["rules"])
	}
}

func TestAppError_DuplicateEmail_Success(t *testing.T) {
	err := DuplicateEmail()
	if err.Code != ErrCodeDuplicateEmail {
		t.Errorf("expected DUPLICATE_EMAIL, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusConflict {
		t.Errorf("expected 409, got %d", err.HTTPStatus)
	}
}

func TestAppError_InvalidCredentials_GenericMessage(t *testing.T) {
	a := InvalidCredentials()
	b := InvalidCredentials()
	if a.Message != b.Message {
		t.Error("InvalidCredentials must produce an identical message every time")
	}
	if a.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", a.HTTPStatus)
	}
}

func TestAppError_InvalidToken_Kind(t *testing.T) {
	err := InvalidToken("refresh")
	if err.Details["kind"] != "refresh" {
		t.Errorf("expected kind=refresh, got %v", err.Details["kind"])
	}
	if err.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", err.HTTPStatus)
	}
}

func TestAppError_InsufficientRole_Is403(t *testing.T) {
	err := InsufficientRole()
	if err.HTTPStatus != http.StatusForbidden {
		t.Errorf("expected 403, got %d", err.HTTPStatus)
	}
}

func TestAppError_Internal_HidesCause(t *testing.T) {
	cause := fmt.Errorf("db connection lost")
	err := Internal(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	resp := err.ToResponse()
	if resp.Error.Message == cause.Error() {
		t.Error("response must not expose the cause")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to match the wrapped cause")
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := DatabaseError(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected Unwrap to surface cause")
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", DuplicateEmail())
	if !IsCode(err, ErrCodeDuplicateEmail) {
		t.Error("expected IsCode to match through wrapping")
	}
	if IsCode(err, ErrCodeInternal) {
		t.Error("expected IsCode to reject a different code")
	}
	if IsCode(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("expected IsCode to reject non-AppError")
	}
}

func TestAppError_ToResponse_OmitsEmptyDetails(t *testing.T) {
	err := MissingToken()
	resp := err.ToResponse()
	if resp.Error.Details != nil {
		t.Errorf("expected no details, got %v", resp.Error.Details)
	}
	if resp.Error.Code != ErrCodeMissingToken {
		t.Errorf("expected MISSING_TOKEN, got %s", resp.Error.Code)
	}
}
