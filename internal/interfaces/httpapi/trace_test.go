package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", "/HEALTHZ"} {
		if shouldTraceRequest(path) {
			t.Fatalf("health probe %q should not be traced", path)
		}
	}
	for _, path := range []string{"/v1/seasons", "/v1/import/all", "/"} {
		if !shouldTraceRequest(path) {
			t.Fatalf("%q should be traced", path)
		}
	}
}

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	t.Parallel()

	if !shouldCreateHTTPAPISpan("httpapi.Handler.ListSeasons") {
		t.Fatal("handler spans should be created")
	}
	if shouldCreateHTTPAPISpan("httpapi.writeJSON") {
		t.Fatal("helper spans should be suppressed")
	}
}
