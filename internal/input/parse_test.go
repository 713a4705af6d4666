package input

import (
	"testing"

	"roster/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeID(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "1", want: 1},
		{input: " 42 ", want: 42},
		{input: "0", wantErr: true},
		{input: "-2", wantErr: true},
		{input: "two", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := EmployeeID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPosition(t *testing.T) {
	got, err := Position("1")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = Position(" 3")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	for _, text := range []string{"0", "-1", "first"} {
		_, err := Position(text)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput), text)
	}
}

func TestHours(t *testing.T) {
	got, err := Hours("hours", "-3")
	require.NoError(t, err, "sign is checked by the roster")
	assert.Equal(t, -3, got)

	got, err = Hours("duration", " 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	for _, text := range []string{"ten", "", "1.5", "99999999999999999999"} {
		_, err = Hours("duration", text)
		require.Error(t, err, text)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput), text)
		assert.Contains(t, err.Error(), "invalid input for duration")
	}
}
