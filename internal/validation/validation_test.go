package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string  `json:"name" validate:"required,max=5"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Count    int     `json:"count" validate:"gt=0"`
	Released string  `json:"released" validate:"omitempty,datetime=2006-01-02"`
	Nick     *string `json:"nick,omitempty" validate:"omitempty,min=2"`
	Internal string  `json:"-" validate:"max=1"`
}

func TestStruct(t *testing.T) {
	short := "a"

	tests := []struct {
		name  string
		input sample
		want  Errors
	}{
		{
			name:  "valid",
			input: sample{Name: "ash", Count: 1, Released: "1999-01-09"},
		},
		{
			name:  "required and gt",
			input: sample{},
			want: Errors{
				{Field: "name", Error: "is required"},
				{Field: "count", Error: "must be greater than 0"},
			},
		},
		{
			name:  "string bounds and formats",
			input: sample{Name: "charizard", Email: "nope", Count: 1, Released: "09/01/1999", Nick: &short},
			want: Errors{
				{Field: "name", Error: "must not exceed 5 characters"},
				{Field: "email", Error: "must be a valid email address"},
				{Field: "released", Error: "must be a date in 2006-01-02 format"},
				{Field: "nick", Error: "must be at least 2 characters long"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}

			var got Errors
			require.True(t, errors.As(err, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStruct_SkippedJSONNameUsesGoName(t *testing.T) {
	err := Struct(sample{Name: "ash", Count: 1, Internal: "too long"})

	var got Errors
	require.True(t, errors.As(err, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Internal", got[0].Field)
}

func TestStruct_NotAStruct(t *testing.T) {
	err := Struct("plain string")
	assert.Error(t, err)

	var got Errors
	assert.False(t, errors.As(err, &got))
}

func TestErrors_Error(t *testing.T) {
	err := Errors{{Field: "name", Error: "is required"}, {Field: "count", Error: "must be greater than 0"}}
	assert.Equal(t, "validation failed: name is required; count must be greater than 0", err.Error())
}
