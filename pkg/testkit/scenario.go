// Package testkit drives HTTP API tests from JSON scenario files.
//
// A scenario is an ordered list of requests fired at one handler, each
// with its expected status and, optionally, its expected JSON body:
//
//	testdata/
//	  create_widget.json        scenario
//	  widget_req.json           request body
//	  widget_list_res.json      expected response body
//
//	{
//	  "name": "create widget",
//	  "steps": [
//	    {"requestMethod": "POST", "requestUrl": "/api/products",
//	     "requestFileName": "widget_req.json", "expectedCode": 201},
//	    {"requestUrl": "/api/products", "expectedCode": 200,
//	     "responseFileName": "widget_list_res.json"}
//	  ]
//	}
//
// A scenario with a single request may put the step fields at top level.
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Step is one request and its expectations.
type Step struct {
	RequestMethod   string            `json:"requestMethod"` // defaults to GET
	RequestURL      string            `json:"requestUrl"`
	RequestFileName string            `json:"requestFileName"` // relative to the scenario file
	RequestBody     json.RawMessage   `json:"requestBody"`     // inline alternative to requestFileName
	Headers         map[string]string `json:"headers"`

	ExpectedCode     int             `json:"expectedCode"`
	ResponseFileName string          `json:"responseFileName"`
	ResponseBody     json.RawMessage `json:"responseBody"`
}

// Scenario describes one test case loaded from a JSON file.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Steps       []Step `json:"steps"`

	// Single-request form.
	Step

	dir string
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}

	s.dir = filepath.Dir(abs)
	return &s, nil
}

// Requests returns the steps to run, in order.
func (s *Scenario) Requests() []Step {
	if len(s.Steps) > 0 {
		return s.Steps
	}
	return []Step{s.Step}
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) > 0 && s.Step.RequestURL != "" {
		return fmt.Errorf("use either steps or top-level request fields, not both")
	}

	steps := s.Requests()
	for i := range steps {
		st := &steps[i]
		if st.RequestURL == "" {
			return fmt.Errorf("step %d: requestUrl is required", i)
		}
		if st.ExpectedCode == 0 {
			return fmt.Errorf("step %d: expectedCode is required", i)
		}
		if st.RequestFileName != "" && len(st.RequestBody) > 0 {
			return fmt.Errorf("step %d: requestFileName and requestBody are exclusive", i)
		}
		if st.RequestMethod == "" {
			st.RequestMethod = "GET"
		}
		st.RequestMethod = strings.ToUpper(st.RequestMethod)
	}
	if len(s.Steps) == 0 {
		s.Step = steps[0]
	}
	return nil
}

func (s *Scenario) resolve(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// requestBody returns the body for step, or nil for none.
func (s *Scenario) requestBody(st Step) ([]byte, error) {
	if len(st.RequestBody) > 0 {
		return st.RequestBody, nil
	}
	if p := s.resolve(st.RequestFileName); p != "" {
		return os.ReadFile(p)
	}
	return nil, nil
}

// expectedBody returns the expected JSON for step, or nil when the body is
// not asserted.
func (s *Scenario) expectedBody(st Step) ([]byte, error) {
	if len(st.ResponseBody) > 0 {
		return st.ResponseBody, nil
	}
	if p := s.resolve(st.ResponseFileName); p != "" {
		return os.ReadFile(p)
	}
	return nil, nil
}
