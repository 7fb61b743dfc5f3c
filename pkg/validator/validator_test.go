package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/pkg/validator"
)

type towerInput struct {
	TowerLocation string `json:"towerLocation" validate:"required,tower"`
	Bases         int    `json:"bases" validate:"min=0"`
}

func TestIsTowerLocation(t *testing.T) {
	for _, ok := range []string{"00", "01", "42", "99"} {
		assert.True(t, validator.IsTowerLocation(ok), ok)
	}
	for _, bad := range []string{"", "1", "abc", "123", "1a", " 1", "01 "} {
		assert.False(t, validator.IsTowerLocation(bad), bad)
	}
}

func TestStruct_TowerRule(t *testing.T) {
	require.NoError(t, validator.Struct(towerInput{TowerLocation: "07"}))

	for _, bad := range []string{"1", "abc", "123"} {
		err := validator.Struct(towerInput{TowerLocation: bad})
		require.Error(t, err, bad)

		var verr *validator.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "towerLocation", verr.Fields[0].Field)
		assert.Equal(t, "tower", verr.Fields[0].Rule)
	}
}

func TestStruct_NegativeNumber(t *testing.T) {
	err := validator.Struct(towerInput{TowerLocation: "01", Bases: -1})

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bases", verr.Fields[0].Field)
	assert.Contains(t, err.Error(), "bases debe ser mayor o igual a 0")
}

type codeInput struct {
	Code  string  `json:"code" validate:"required,notblank"`
	Alias *string `json:"alias" validate:"omitempty,notblank"`
}

func TestStruct_NotBlank(t *testing.T) {
	require.NoError(t, validator.Struct(codeInput{Code: "P-001"}))

	err := validator.Struct(codeInput{Code: "   "})
	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "code", verr.Fields[0].Field)
	assert.Equal(t, "notblank", verr.Fields[0].Rule)
	assert.Contains(t, err.Error(), "code no puede estar en blanco")

	blank := " \t"
	err = validator.Struct(codeInput{Code: "P-001", Alias: &blank})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "alias", verr.Fields[0].Field)
}
