package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-03-01", "2024-03-01T00:00:00.000Z"},
		{"2024-03-01T10:30:00Z", "2024-03-01T10:30:00.000Z"},
		{"2024-03-01T10:30:00+02:00", "2024-03-01T08:30:00.000Z"},
		{"2024-03-01T10:30:00.250Z", "2024-03-01T10:30:00.250Z"},
		{"2024-03-01T10:30:00", "2024-03-01T10:30:00.000Z"},
		{" 2024-03-01 10:30:00 ", "2024-03-01T10:30:00.000Z"},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		require.NoError(t, err, tt.input)
		require.NotNil(t, got, tt.input)
		assert.Equal(t, tt.want, FormatTimestamp(*got), tt.input)
		assert.Equal(t, time.UTC, got.Location())
	}
}

func TestParseDate_EmptyAndInvalid(t *testing.T) {
	got, err := ParseDate("  ")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDate("next tuesday")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-40")
	assert.Error(t, err)
}
