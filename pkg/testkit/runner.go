package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// Factory builds a fresh handler with its own empty state.
type Factory func(t *testing.T) http.Handler

// Run executes the scenario at path against handler.
func Run(t *testing.T, handler http.Handler, path string) {
	t.Helper()

	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("testkit: load scenario %q: %v", path, err)
	}

	t.Run(s.Name, func(t *testing.T) {
		runScenario(t, handler, s)
	})
}

// RunDir runs every *.json scenario in dir as a subtest. Each scenario gets
// its own handler from newHandler, so scenarios never share state. Files
// that are referenced only as request/response bodies must not sit in dir;
// keep them in a subdirectory.
func RunDir(t *testing.T, newHandler Factory, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			t.Errorf("testkit: load %q: %v", path, err)
			continue
		}

		t.Run(s.Name, func(t *testing.T) {
			runScenario(t, newHandler(t), s)
		})
	}
}

func runScenario(t *testing.T, handler http.Handler, s *Scenario) {
	t.Helper()

	for i, st := range s.Requests() {
		body, err := s.requestBody(st)
		if err != nil {
			t.Fatalf("[%s] step %d: read request body: %v", s.Name, i, err)
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req := httptest.NewRequest(st.RequestMethod, st.RequestURL, reader)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		for k, v := range st.Headers {
			req.Header.Set(k, v)
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		AssertStatusCode(t, s.Name, i, st.ExpectedCode, rec.Code, rec.Body.Bytes())

		expected, err := s.expectedBody(st)
		if err != nil {
			t.Errorf("[%s] step %d: read expected body: %v", s.Name, i, err)
			continue
		}
		AssertJSONBody(t, s.Name, i, expected, rec.Body.Bytes())
	}
}
