package jwt_test

import (
	"testing"

	"github.com/jhoicas/hotel-inventory/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerarYParsear(t *testing.T) {
	token, err := jwt.Generate("secret", "u1", "hotel-1", "admin", "hotel-inventory", 5)
	require.NoError(t, err)

	userID, siteID, role, err := jwt.Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "hotel-1", siteID)
	assert.Equal(t, "admin", role)
}

func TestParse_Rechaza(t *testing.T) {
	token, err := jwt.Generate("secret", "u1", "hotel-1", "admin", "hotel-inventory", 5)
	require.NoError(t, err)
	expired, err := jwt.Generate("secret", "u1", "hotel-1", "admin", "hotel-inventory", -5)
	require.NoError(t, err)
	noSite, err := jwt.Generate("secret", "u1", "", "admin", "hotel-inventory", 5)
	require.NoError(t, err)

	cases := []struct {
		name, secret, token string
	}{
		{"firma incorrecta", "otro", token},
		{"expirado", "secret", expired},
		{"sin sitio", "secret", noSite},
		{"basura", "secret", "no-es-un-token"},
		{"secret vacío", "", token},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := jwt.Parse(tc.secret, tc.token)
			assert.Error(t, err)
		})
	}
}
