package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("athlete@gym.cl"))
	assert.NoError(t, ValidateEmail("first.last+tag@mail.example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("no-at-sign.com"))
	assert.Error(t, ValidateEmail("a@b.c"))
}

func TestNormalizePhone(t *testing.T) {
	phone, err := NormalizePhone("+56 9 1234 5678")
	require.Error(t, err)
	assert.Empty(t, phone)

	phone, err = NormalizePhone("9 1234-5678")
	require.NoError(t, err)
	assert.Equal(t, "912345678", phone)

	_, err = NormalizePhone("   ")
	assert.EqualError(t, err, "phone is required")
}

func TestPasswordProblems(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{"strong", "Str0ng!Pass", nil},
		{"blank", "   ", []string{"password is required"}},
		{"short lowercase", "abc", []string{
			"must be at least 8 characters",
			"must include an uppercase letter",
			"must include a number",
			"must include a symbol",
		}},
		{"spaces", "Str0ng Pass!", []string{"must not contain spaces"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordProblems(tt.password))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Str0ng!Pass"))
	err := ValidatePassword("weak")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid password")
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Great workout!", CleanText("  Great workout!  "))
	assert.Equal(t, "bold move", CleanText("<b>bold</b> move"))
	assert.Equal(t, "", CleanText("<script>alert(1)</script>"))
	assert.Equal(t, "Tom's 5 & 10k", CleanText("Tom's 5 & 10k"))
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "plain", query: "leg", want: "%leg%"},
		{name: "percent", query: "50%", want: `%50\%%`},
		{name: "underscore", query: "a_b", want: `%a\_b%`},
		{name: "backslash", query: `a\b`, want: `%a\\b%`},
		{name: "empty", query: "", want: "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPattern(tt.query))
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Str0ng!Pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!Pass", hash)
	assert.NoError(t, CheckPassword("Str0ng!Pass", hash))

	err = CheckPassword("wrong", hash)
	assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
}

func TestPasswordHashing_Errors(t *testing.T) {
	tests := []struct {
		name        string
		run         func() error
		wantErr     error
		errContains string
	}{
		{
			name: "password longer than 72 bytes",
			run: func() error {
				_, err := HashPassword(strings.Repeat("a", 73))
				return err
			},
			wantErr:     bcrypt.ErrPasswordTooLong,
			errContains: "failed to hash password",
		},
		{
			name:        "stored hash is not bcrypt",
			run:         func() error { return CheckPassword("Str0ng!Pass", "plaintext") },
			wantErr:     bcrypt.ErrHashTooShort,
			errContains: "failed to check password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
