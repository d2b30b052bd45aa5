package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

func TestReconcile_NoCacheReturnsBase(t *testing.T) {
	base := models.UserProfile{ID: "u1", Name: "Ana", Role: models.RoleUsuario}
	require.Equal(t, base, Reconcile(base, nil))
}

func TestReconcile_IDMismatchDiscardsCache(t *testing.T) {
	base := models.UserProfile{ID: "u1", Name: "Ana", Role: models.RoleUsuario}
	cached := models.UserProfile{
		ID:       "u2",
		Name:     "Otro",
		IsMentor: true,
		Role:     models.RoleMentor,
		Subjects: []string{"Cálculo"},
	}

	got := Reconcile(base, &cached)
	require.Equal(t, base, got, "cached fields must never leak across identities")
}

func TestReconcile_IDMatchCachedWins(t *testing.T) {
	base := models.UserProfile{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: models.RoleUsuario}
	cached := models.UserProfile{
		ID:        "u1",
		Name:      "Ana María",
		Role:      models.RoleMentor,
		IsMentor:  true,
		Biography: "bio",
		Subjects:  []string{"Cálculo"},
		Semester:  5,
	}

	got := Reconcile(base, &cached)
	require.Equal(t, "Ana María", got.Name)
	require.Equal(t, models.RoleMentor, got.Role)
	require.True(t, got.IsMentor)
	require.Equal(t, "bio", got.Biography)
	require.Equal(t, []string{"Cálculo"}, got.Subjects)
	require.Equal(t, 5, got.Semester)
	require.Equal(t, "ana@example.com", got.Email)
}
