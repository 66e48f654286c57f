package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email string `validate:"required,email"`
	Role  string `validate:"omitempty,oneof=admin ejecutivo cliente"`
}

func TestValidateStructMessages(t *testing.T) {
	err := ValidateStruct(signup{Role: "root"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "role must be one of: admin ejecutivo cliente")
	assert.NoError(t, ValidateStruct(signup{Email: "a@b.co", Role: "cliente"}))
}

func TestFormatISO(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 123456789, time.FixedZone("X", 3600))
	assert.Equal(t, "2024-03-09T13:05:07.123Z", FormatISO(ts))

	parsed, err := ParseISO("2024-03-09T13:05:07.123Z")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts.Truncate(time.Millisecond)))
}

func TestLaterISONeverGoesBackwards(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	Now = func() time.Time { return fixed }
	defer func() { Now = time.Now }()

	future := "2024-06-01T00:00:00.000Z"
	assert.Equal(t, future, LaterISO("2023-01-01T00:00:00.000Z", future, ""))
	assert.Equal(t, "2024-01-01T00:00:00.000Z", LaterISO("garbage"))
}
