package services

import (
	"context"
	"strings"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/common"
)

type courseAPI interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id string) (models.Course, error)
	CreateCourse(ctx context.Context, payload models.CoursePayload) (models.Course, error)
	UpdateCourse(ctx context.Context, id string, payload models.CoursePayload) error
	DeleteCourse(ctx context.Context, id string) error
	CoursePreview(ctx context.Context, id string) (models.CoursePreview, error)
}

// CourseService exposes catalog operations to the CLI.
type CourseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id string) (models.Course, error)
	Create(ctx context.Context, payload models.CoursePayload) (models.Course, error)
	Update(ctx context.Context, id string, payload models.CoursePayload) error
	Delete(ctx context.Context, id string) error
	Preview(ctx context.Context, id string) (models.CoursePreview, error)
}

type courseService struct {
	api courseAPI
}

func NewCourseService(api courseAPI) CourseService {
	return &courseService{api: api}
}

func (s *courseService) List(ctx context.Context) ([]models.Course, error) {
	return s.api.ListCourses(ctx)
}

func (s *courseService) Get(ctx context.Context, id string) (models.Course, error) {
	if strings.TrimSpace(id) == "" {
		return models.Course{}, common.ErrValidation
	}
	return s.api.GetCourse(ctx, id)
}

func (s *courseService) Create(ctx context.Context, payload models.CoursePayload) (models.Course, error) {
	if err := checkStruct(payload); err != nil {
		return models.Course{}, err
	}
	return s.api.CreateCourse(ctx, payload)
}

func (s *courseService) Update(ctx context.Context, id string, payload models.CoursePayload) error {
	if strings.TrimSpace(id) == "" {
		return common.ErrValidation
	}
	if err := checkStruct(payload); err != nil {
		return err
	}
	return s.api.UpdateCourse(ctx, id, payload)
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return common.ErrValidation
	}
	return s.api.DeleteCourse(ctx, id)
}

func (s *courseService) Preview(ctx context.Context, id string) (models.CoursePreview, error) {
	if strings.TrimSpace(id) == "" {
		return models.CoursePreview{}, common.ErrValidation
	}
	return s.api.CoursePreview(ctx, id)
}
