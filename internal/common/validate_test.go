package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validateTarget struct {
	Name     string `validate:"required,min=3,max=50"`
	Password string `validate:"required,min=8"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(validateTarget{Name: "alice", Password: "password123"}))

	fields := ValidateStruct(validateTarget{Name: "al", Password: ""})
	require.NotNil(t, fields)
	assert.Contains(t, fields["Name"], "at least 3")
	assert.Contains(t, fields["Password"], "required")
}
