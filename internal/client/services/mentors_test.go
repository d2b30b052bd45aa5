package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apipkg "github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/client/session"
	"github.com/skillswap/skillswap-cli/internal/common"
)

type fakeMentorAPI struct {
	activateResp models.MentorActivationResponse
	activateErr  error
	updateResp   models.MentorActivationResponse
	updateCalls  int
}

func (f *fakeMentorAPI) ActivateMentor(ctx context.Context, p models.MentorActivation) (models.MentorActivationResponse, error) {
	return f.activateResp, f.activateErr
}

func (f *fakeMentorAPI) UpdateMentorProfile(ctx context.Context, p models.MentorActivation) (models.MentorActivationResponse, error) {
	f.updateCalls++
	return f.updateResp, nil
}

func (f *fakeMentorAPI) MentorPublicProfile(ctx context.Context, id string) (models.MentorPublicProfile, error) {
	return models.MentorPublicProfile{}, nil
}

func TestMentorService_ActivateNormalizesRole(t *testing.T) {
	ctx := context.Background()
	sessions := session.NewManager(newMemStore(), nil)
	require.NoError(t, sessions.EstablishSession(ctx, models.AuthResponse{
		Token: "tok",
		User:  models.UserProfile{ID: "u1", Name: "Ana", Role: models.RoleEstudiante},
	}))

	// Backend may answer with the flag set but the old role.
	api := &fakeMentorAPI{activateResp: models.MentorActivationResponse{
		User: models.UserProfile{ID: "u1", Name: "Ana", Role: models.RoleEstudiante, IsMentor: true, Subjects: []string{"Cálculo"}},
	}}
	svc := NewMentorService(api, sessions)

	user, err := svc.Activate(ctx, models.MentorActivation{Subjects: []string{"Cálculo"}})
	require.NoError(t, err)
	assert.Equal(t, models.RoleMentor, user.Role)
	assert.True(t, user.IsMentor)
	assert.True(t, sessions.HasMentorAccess(), "published state reflects the promotion")
}

func TestMentorService_ActivatePromotesStaleResponse(t *testing.T) {
	ctx := context.Background()
	sessions := session.NewManager(newMemStore(), nil)
	require.NoError(t, sessions.EstablishSession(ctx, models.AuthResponse{
		Token: "tok",
		User:  models.UserProfile{ID: "u1", Name: "Ana", Role: models.RoleEstudiante},
	}))

	// Backend may also answer with the pre-activation snapshot, flag unset
	// and the form fields missing. Activation succeeded, so the account is
	// a mentor regardless of what the response claims.
	api := &fakeMentorAPI{activateResp: models.MentorActivationResponse{
		User: models.UserProfile{ID: "u1", Name: "Ana", Role: models.RoleEstudiante, IsMentor: false},
	}}
	svc := NewMentorService(api, sessions)

	user, err := svc.Activate(ctx, models.MentorActivation{
		Biography: "Doy clases de cálculo",
		Semester:  6,
		Subjects:  []string{"Cálculo"},
	})
	require.NoError(t, err)
	require.True(t, user.IsMentor)
	assert.Equal(t, models.RoleMentor, user.Role)
	assert.Equal(t, "Doy clases de cálculo", user.Biography)
	assert.Equal(t, 6, user.Semester)
	assert.Equal(t, []string{"Cálculo"}, user.Subjects)
	assert.True(t, sessions.HasMentorAccess())
}

func TestMentorService_ActivateAlreadyActive(t *testing.T) {
	ctx := context.Background()
	sessions := session.NewManager(newMemStore(), nil)
	require.NoError(t, sessions.EstablishSession(ctx, models.AuthResponse{
		Token: "tok",
		User:  models.UserProfile{ID: "u1", Name: "Ana", Role: models.RoleEstudiante},
	}))

	api := &fakeMentorAPI{activateErr: &apipkg.APIError{
		Status:  400,
		Message: "El usuario ya tiene perfil de mentor activo",
	}}
	svc := NewMentorService(api, sessions)

	user, err := svc.Activate(ctx, models.MentorActivation{Subjects: []string{"Física"}})
	require.NoError(t, err, "an already active profile is not a failure")
	assert.True(t, user.IsMentor)
	assert.Equal(t, models.RoleMentor, user.Role)
	assert.Equal(t, []string{"Física"}, user.Subjects)
}

func TestMentorService_ActivateValidation(t *testing.T) {
	sessions := session.NewManager(newMemStore(), nil)
	svc := NewMentorService(&fakeMentorAPI{}, sessions)

	_, err := svc.Activate(context.Background(), models.MentorActivation{})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestMentorService_UpdateProfileRequiresMentorAccess(t *testing.T) {
	ctx := context.Background()
	sessions := session.NewManager(newMemStore(), nil)
	require.NoError(t, sessions.EstablishSession(ctx, models.AuthResponse{
		Token: "tok",
		User:  models.UserProfile{ID: "u1", Role: models.RoleEstudiante},
	}))

	api := &fakeMentorAPI{}
	svc := NewMentorService(api, sessions)

	_, err := svc.UpdateProfile(ctx, models.MentorActivation{Subjects: []string{"Física"}})
	require.ErrorIs(t, err, common.ErrForbidden)
	assert.Zero(t, api.updateCalls)
}

func TestMentorService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	sessions := session.NewManager(newMemStore(), nil)
	require.NoError(t, sessions.EstablishSession(ctx, models.AuthResponse{
		Token: "tok",
		User:  models.UserProfile{ID: "u1", Role: models.RoleMentor, IsMentor: true},
	}))

	api := &fakeMentorAPI{updateResp: models.MentorActivationResponse{
		User: models.UserProfile{ID: "u1", Role: models.RoleMentor, IsMentor: true, Biography: "Nueva bio"},
	}}
	svc := NewMentorService(api, sessions)

	user, err := svc.UpdateProfile(ctx, models.MentorActivation{Biography: "Nueva bio", Subjects: []string{"Física"}})
	require.NoError(t, err)
	assert.Equal(t, "Nueva bio", user.Biography)
}
