package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	t.Parallel()

	err := NewConflict("email already in use")
	domainErr := ToDomainError(err)
	if domainErr.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409, got %d", domainErr.HTTPStatus)
	}
	if domainErr.Message != "email already in use" {
		t.Fatalf("unexpected message %q", domainErr.Message)
	}

	wrapped := fmt.Errorf("service: %w", NewNotFound("item"))
	if got := ToDomainError(wrapped).HTTPStatus; got != http.StatusNotFound {
		t.Fatalf("expected 404 through wrapping, got %d", got)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	t.Parallel()

	domainErr := ToDomainError(pgx.ErrNoRows)
	if domainErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404 for pgx.ErrNoRows, got %d", domainErr.HTTPStatus)
	}
}

func TestToDomainErrorHidesInternalDetail(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	domainErr := ToDomainError(cause)
	if domainErr.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", domainErr.HTTPStatus)
	}
	if domainErr.Message != "internal server error" {
		t.Fatalf("client message must be generic, got %q", domainErr.Message)
	}
	if !errors.Is(domainErr, cause) {
		t.Fatal("cause must stay reachable for server-side logging")
	}
}
