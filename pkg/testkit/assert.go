package testkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode checks one step's status; body is shown on mismatch.
func AssertStatusCode(t *testing.T, scenario string, step, want, got int, body []byte) {
	t.Helper()
	assert.Equal(t, want, got, "[%s] step %d: status code mismatch\nbody: %s", scenario, step, body)
}

// AssertJSONBody compares both documents after decoding, so key order and
// whitespace never matter. An empty expected document skips the check.
func AssertJSONBody(t *testing.T, scenario string, step int, expected, actual []byte) {
	t.Helper()
	if len(expected) == 0 {
		return
	}

	var expVal, actVal interface{}
	require.NoError(t, json.Unmarshal(expected, &expVal),
		"[%s] step %d: expected body is not valid JSON", scenario, step)

	if !assert.NoError(t, json.Unmarshal(actual, &actVal),
		"[%s] step %d: response is not valid JSON\nbody: %s", scenario, step, actual) {
		return
	}

	assert.Equal(t, expVal, actVal, "[%s] step %d: response body mismatch", scenario, step)
}
