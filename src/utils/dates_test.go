package utils_test

import (
	"testing"
	"time"

	"crm/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input       string
		expected    time.Time
		expectError bool
	}{
		{input: "2024-08-01", expected: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)},
		{input: " 2024-02-29 ", expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{input: "2023-02-29", expectError: true},
		{input: "01/08/2024", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		got, err := utils.ParseDate(tt.input)
		if tt.expectError {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.True(t, tt.expected.Equal(got), "%s parsed as %v", tt.input, got)
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := utils.ParseOptionalDate("   ")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = utils.ParseOptionalDate("2024-12-31")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2024-12-31", utils.FormatDate(*got))

	_, err = utils.ParseOptionalDate("tomorrow")
	assert.Error(t, err)
}

func TestFormatOptionalDate(t *testing.T) {
	assert.Nil(t, utils.FormatOptionalDate(nil))

	d := time.Date(2024, 3, 9, 17, 45, 0, 0, time.UTC)
	got := utils.FormatOptionalDate(&d)
	require.NotNil(t, got)
	assert.Equal(t, "2024-03-09", *got)
}

func TestDateOnly(t *testing.T) {
	local := time.FixedZone("UTC+2", 2*60*60)
	got := utils.DateOnly(time.Date(2024, 5, 20, 23, 30, 0, 0, local))

	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), got)
}

func TestIsBeforeDay(t *testing.T) {
	morning := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 5, 20, 20, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)

	assert.False(t, utils.IsBeforeDay(morning, evening))
	assert.False(t, utils.IsBeforeDay(evening, morning))
	assert.True(t, utils.IsBeforeDay(evening, nextDay))
	assert.False(t, utils.IsBeforeDay(nextDay, morning))
}
