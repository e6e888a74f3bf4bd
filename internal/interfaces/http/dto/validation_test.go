package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCurrencyValidator(t *testing.T) {
	require.NoError(t, RegisterCurrencyValidator([]string{"SAR", "usd"}))

	type payload struct {
		Currency string `binding:"required,currency"`
	}

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	assert.NoError(t, v.Struct(payload{Currency: "SAR"}))
	assert.NoError(t, v.Struct(payload{Currency: "USD"}), "supported set is case-insensitive at registration")
	assert.Error(t, v.Struct(payload{Currency: "usd"}), "field values must be uppercase codes")
	assert.Error(t, v.Struct(payload{Currency: "GBP"}))
	assert.Error(t, v.Struct(payload{Currency: ""}))
}
