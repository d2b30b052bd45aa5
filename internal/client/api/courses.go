package api

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	err := c.get(ctx, "/api/Cursos", nil, &out)
	return out, err
}

func (c *Client) GetCourse(ctx context.Context, id string) (models.Course, error) {
	var out models.Course
	err := c.get(ctx, "/api/Cursos/"+id, nil, &out)
	return out, err
}

func (c *Client) CreateCourse(ctx context.Context, payload models.CoursePayload) (models.Course, error) {
	var out models.Course
	err := c.post(ctx, "/api/Cursos", payload, &out)
	return out, err
}

// UpdateCourse replaces a course. A successful PUT returns no content.
func (c *Client) UpdateCourse(ctx context.Context, id string, payload models.CoursePayload) error {
	return c.put(ctx, "/api/Cursos/"+id, payload, nil)
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/Cursos/"+id)
}

// CoursePreview fetches the public pre-purchase view of a course.
func (c *Client) CoursePreview(ctx context.Context, id string) (models.CoursePreview, error) {
	var out models.CoursePreview
	err := c.get(ctx, "/api/Cursos/"+id+"/preview", nil, &out)
	return out, err
}
