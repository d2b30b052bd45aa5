package services

import (
	"context"
	"errors"
	"strings"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/client/session"
	"github.com/skillswap/skillswap-cli/internal/common"
)

// mentorAlreadyActiveMessage is the backend's answer when the profile was
// activated in an earlier session. The account is a mentor either way, so
// the session is updated locally instead of surfacing a failure.
const mentorAlreadyActiveMessage = "El usuario ya tiene perfil de mentor activo"

type mentorAPI interface {
	ActivateMentor(ctx context.Context, payload models.MentorActivation) (models.MentorActivationResponse, error)
	UpdateMentorProfile(ctx context.Context, payload models.MentorActivation) (models.MentorActivationResponse, error)
	MentorPublicProfile(ctx context.Context, mentorID string) (models.MentorPublicProfile, error)
}

// MentorService handles mentor activation and the public mentor profile.
type MentorService interface {
	Activate(ctx context.Context, payload models.MentorActivation) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, payload models.MentorActivation) (*models.UserProfile, error)
	PublicProfile(ctx context.Context, mentorID string) (models.MentorPublicProfile, error)
}

type mentorService struct {
	api      mentorAPI
	sessions *session.Manager
}

func NewMentorService(api mentorAPI, sessions *session.Manager) MentorService {
	return &mentorService{api: api, sessions: sessions}
}

// Activate turns the current account into a mentor. The returned user is run
// through role normalization and republished so the whole app sees the new
// capabilities at once.
func (s *mentorService) Activate(ctx context.Context, payload models.MentorActivation) (*models.UserProfile, error) {
	if err := checkStruct(payload); err != nil {
		return nil, err
	}

	resp, err := s.api.ActivateMentor(ctx, payload)
	if err != nil {
		if cur, ok := s.alreadyActive(err); ok {
			u := s.sessions.ApplyUser(ctx, promoteMentor(cur, payload))
			return &u, nil
		}
		return nil, err
	}

	u := s.sessions.ApplyUser(ctx, promoteMentor(resp.User, payload))
	return &u, nil
}

// promoteMentor forces mentor capabilities onto the profile the backend
// returned. Activation responses have been seen with esMentor still false
// and the submitted form fields missing, so the payload fills in whatever
// the response left out.
func promoteMentor(u models.UserProfile, payload models.MentorActivation) models.UserProfile {
	u.IsMentor = true
	if u.Role != models.RoleAdmin {
		u.Role = models.RoleMentor
	}
	if payload.Biography != "" {
		u.Biography = payload.Biography
	}
	if payload.Semester != 0 {
		u.Semester = payload.Semester
	}
	if len(payload.Subjects) > 0 {
		u.Subjects = payload.Subjects
	}
	return u
}

func (s *mentorService) alreadyActive(err error) (models.UserProfile, bool) {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 400 || apiErr.Message != mentorAlreadyActiveMessage {
		return models.UserProfile{}, false
	}
	cur := s.sessions.CurrentUser()
	if cur == nil {
		return models.UserProfile{}, false
	}
	return *cur, true
}

func (s *mentorService) UpdateProfile(ctx context.Context, payload models.MentorActivation) (*models.UserProfile, error) {
	if !s.sessions.HasMentorAccess() {
		return nil, common.ErrForbidden
	}
	if err := checkStruct(payload); err != nil {
		return nil, err
	}

	resp, err := s.api.UpdateMentorProfile(ctx, payload)
	if err != nil {
		return nil, err
	}

	u := s.sessions.ApplyUser(ctx, resp.User)
	return &u, nil
}

func (s *mentorService) PublicProfile(ctx context.Context, mentorID string) (models.MentorPublicProfile, error) {
	if strings.TrimSpace(mentorID) == "" {
		return models.MentorPublicProfile{}, common.ErrValidation
	}
	return s.api.MentorPublicProfile(ctx, mentorID)
}
