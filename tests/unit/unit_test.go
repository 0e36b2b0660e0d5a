package unit

import (
	"strings"
	"testing"

	"shopapi/internal/usecase"
)

// エラーメッセージの部分一致を確認
func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error containing %q, got %q", want, err.Error())
	}
}

// HTTPErrorのステータスを確認
func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()

	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Status != want {
		t.Fatalf("expected status %d, got %d (%s)", want, he.Status, he.Message)
	}
}
