package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/gridline/f1-mirror/internal/usecase"
)

func TestWriteSuccessEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var envelope struct {
		APIVersion string            `json:"apiVersion"`
		Data       map[string]string `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.APIVersion != googleAPIVersion {
		t.Fatalf("expected apiVersion %q, got %q", googleAPIVersion, envelope.APIVersion)
	}
	if envelope.Data["hello"] != "world" {
		t.Fatalf("payload not preserved: %v", envelope.Data)
	}
}

func TestWriteErrorMapsSentinels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"invalid input", fmt.Errorf("%w: bad year", usecase.ErrInvalidInput), http.StatusBadRequest, "invalidInput"},
		{"not found", fmt.Errorf("%w: season 9", usecase.ErrNotFound), http.StatusNotFound, "notFound"},
		{"dependency", fmt.Errorf("%w: db down", usecase.ErrDependencyUnavailable), http.StatusServiceUnavailable, "dependencyUnavailable"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internalError"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}

			var envelope googleResponseEnvelope
			if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if envelope.Error == nil {
				t.Fatal("error body missing")
			}
			if len(envelope.Error.Errors) == 0 || envelope.Error.Errors[0].Reason != tc.wantReason {
				t.Fatalf("expected reason %q, got %+v", tc.wantReason, envelope.Error.Errors)
			}
		})
	}
}
