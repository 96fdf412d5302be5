package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DaSparky/daham-blogsite/internal/domains/user"
)

func TestFieldErrors(t *testing.T) {
	form := user.RegisterForm{Name: "Alice", Email: "not-an-email", Password: "secret"}
	got := FieldErrors(form.Validate())

	assert.Contains(t, got, "Email")
	assert.NotContains(t, got, "Name")
	assert.NotContains(t, got, "Password")
}

func TestFieldErrorsNil(t *testing.T) {
	assert.Empty(t, FieldErrors(nil))
}

func TestFieldErrorsPlainError(t *testing.T) {
	got := FieldErrors(errors.New("boom"))
	assert.Equal(t, map[string]string{"": "boom"}, got)
}
