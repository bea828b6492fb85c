package tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/achola/yummy-recipes/internal/server/validation"
)

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"achola@example.com", true},
		{"a.cho-la@mail.example.co", true},
		{"_underscore@example.org", true},
		{"no-at-sign.example.com", false},
		{"double@@example.com", false},
		{"achola@example", false},
		{"achola@example.c", false},
		{"Upper@example.com", false}, // email нормализуется до вызова
		{"", false},
	}

	for _, tc := range cases {
		if got := validation.ValidEmail(tc.email); got != tc.want {
			t.Fatalf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestStrongPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Passw0rd", true},
		{"aB3xyz", true}, // ровно 6 символов
		{"aB3xy", false}, // короче 6
		{"password1", false}, // нет верхнего регистра
		{"PASSWORD1", false}, // нет нижнего регистра
		{"Password", false},  // нет цифры
		{"", false},
	}

	for _, tc := range cases {
		if got := validation.StrongPassword(tc.password); got != tc.want {
			t.Fatalf("StrongPassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestHasSpecialCharacter(t *testing.T) {
	require.False(t, validation.HasSpecialCharacter("achola"))
	require.False(t, validation.HasSpecialCharacter("achola 42")) // пробел разрешён
	require.True(t, validation.HasSpecialCharacter("achola!"))
	require.True(t, validation.HasSpecialCharacter("ach@la"))
	require.True(t, validation.HasSpecialCharacter("ach_ola"))
}

func TestLongEnough(t *testing.T) {
	require.True(t, validation.LongEnough("abcd", validation.MinUsernameLen))
	require.False(t, validation.LongEnough("abc", validation.MinUsernameLen))
	require.True(t, validation.LongEnough("pasta", validation.MinCategoryNameLen))
	require.False(t, validation.LongEnough("soup", validation.MinCategoryNameLen))
}

func TestError_Accumulates(t *testing.T) {
	verr := validation.NewError()
	require.True(t, verr.Empty())
	require.Nil(t, verr.ErrOrNil())

	verr.Add("username", "Username is required")
	verr.Add("username", "Username should be at least 4 characters long")
	verr.Add("email", "Please provide a valid email address")

	require.False(t, verr.Empty())
	require.Len(t, verr.Fields["username"], 2)
	require.Len(t, verr.Fields["email"], 1)
	require.Equal(t, "validation failed", verr.Error())
	require.Error(t, verr.ErrOrNil())
}
