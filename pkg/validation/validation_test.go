package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "recordkeeper/pkg/domain-errors"
)

func TestIsValidDateSyntax(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2024-01-01", true},
		{"2024/01/01", false},
		{"2024-1-1", false},
		{"2024-13-99", true},
		{"0000-00-00", true},
		{"", false},
		{"2024-01-011", false},
		{"20a4-01-01", false},
		{"2024-01-0x", false},
		{"2024--01-01", false},
		{"２024-01-01", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidDateSyntax(tc.in))
		})
	}
}

type ageRequest struct {
	Kind       int    `json:"kind" validate:"required"`
	Age        int    `json:"age" validate:"max=200"`
	BirthPlace string `json:"birth_place,omitempty" validate:"omitempty,oneof=north south"`
	NoTag      int    `validate:"min=0"`
	MiddleName string `json:"-" validate:"max=3"`
}

func TestValidate(t *testing.T) {
	t.Run("passes valid struct", func(t *testing.T) {
		require.NoError(t, Validate(ageRequest{Kind: 1, Age: 30}))
	})

	t.Run("required field reports snake case name", func(t *testing.T) {
		err := Validate(ageRequest{Age: 30})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, "kind is required", err.Error())
	})

	t.Run("uses json name with options stripped", func(t *testing.T) {
		err := Validate(ageRequest{Kind: 1, BirthPlace: "east"})
		require.Error(t, err)
		assert.Equal(t, "birth_place must be one of [north south]", err.Error())
	})

	t.Run("falls back to snake case struct field", func(t *testing.T) {
		err := Validate(ageRequest{Kind: 1, NoTag: -1})
		require.Error(t, err)
		assert.Equal(t, "no_tag must be at least 0", err.Error())

		err = Validate(ageRequest{Kind: 1, MiddleName: "Anne"})
		require.Error(t, err)
		assert.Equal(t, "middle_name must be at most 3", err.Error())
	})

	t.Run("max violation", func(t *testing.T) {
		err := Validate(ageRequest{Kind: 1, Age: 201})
		require.Error(t, err)
		assert.Equal(t, "age must be at most 200", err.Error())
	})
}
