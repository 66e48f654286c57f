package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, Write(rec, http.StatusCreated, OK(map[string]string{"id": "p-1"})))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"id":"p-1"}}`, rec.Body.String())
}

func TestWriteErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, Write(rec, http.StatusBadRequest, Fail("VALIDATION_ERROR", "email is required").WithMessage("Login failed")))

	assert.JSONEq(t, `{"success":false,"error":"email is required","code":"VALIDATION_ERROR","message":"Login failed"}`, rec.Body.String())
}

func TestExtraFieldsKeepEmptySlices(t *testing.T) {
	body, err := json.Marshal(Result{Success: true}.With("tags", []string{}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":true,"tags":[]}`, string(body))
}

func TestExtraCannotOverrideReservedKeys(t *testing.T) {
	result := Fail("X", "bad").With("success", true)

	body, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, false, decoded["success"])
}

func TestParseLimit(t *testing.T) {
	cases := map[string]int{
		"/":            0,
		"/?limit=25":   25,
		"/?limit=-1":   DefaultLimit,
		"/?limit=x":    DefaultLimit,
		"/?limit=5000": MaxLimit,
	}
	for target, want := range cases {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		assert.Equal(t, want, ParseLimit(req), target)
	}
}
