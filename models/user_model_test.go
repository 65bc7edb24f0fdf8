package models_test

import (
	"testing"

	"github.com/Niaal-B/CareerPath/models"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	cases := []struct {
		name string
		user models.User
		want string
	}{
		{"both names", models.User{FirstName: "Asha", LastName: "Nair", Email: "asha@example.com"}, "Asha Nair"},
		{"first only", models.User{FirstName: "Asha", Email: "asha@example.com"}, "Asha"},
		{"last only", models.User{LastName: "Nair", Email: "asha@example.com"}, "Nair"},
		{"email local part fallback", models.User{Email: "asha.nair@example.com"}, "asha.nair"},
		{"malformed email", models.User{Email: "not-an-email"}, "not-an-email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.FullName())
		})
	}
}
