package models

import "time"

// CourseLevel mirrors the backend NivelCurso enum.
type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "Principiante"
	CourseLevelIntermediate CourseLevel = "Intermedio"
	CourseLevelAdvanced     CourseLevel = "Avanzado"
)

// CourseStatus mirrors the backend EstadoCurso enum.
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "Borrador"
	CourseStatusPublished CourseStatus = "Publicado"
	CourseStatusArchived  CourseStatus = "Archivado"
)

// Course is a marketplace course as returned by the backend.
type Course struct {
	ID            string       `json:"id"`
	Name          string       `json:"nombre"`
	Description   string       `json:"descripcion"`
	Category      string       `json:"categoria"`
	Level         CourseLevel  `json:"nivel"`
	Price         float64      `json:"precio"`
	Duration      int          `json:"duracion,omitempty"`
	ImageURL      string       `json:"imageUrl,omitempty"`
	CreatorID     string       `json:"creadorId"`
	CreatorName   string       `json:"creadorNombre,omitempty"`
	CreatedAt     *time.Time   `json:"fechaCreacion,omitempty"`
	UpdatedAt     *time.Time   `json:"fechaActualizacion,omitempty"`
	Status        CourseStatus `json:"estado,omitempty"`
	StudentCount  int          `json:"numeroEstudiantes,omitempty"`
	AverageRating float64      `json:"calificacionPromedio,omitempty"`
}

// CoursePayload is the create/update request body. The backend assigns the
// id and creator fields.
type CoursePayload struct {
	Name        string  `json:"nombre" validate:"required,min=3"`
	Description string  `json:"descripcion" validate:"required"`
	Category    string  `json:"categoria" validate:"required"`
	Level       string  `json:"nivel" validate:"required,oneof=Principiante Intermedio Avanzado"`
	Price       float64 `json:"precio" validate:"gte=0"`
	Duration    int     `json:"duracion,omitempty" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// CoursePreview is the enriched public preview of a purchasable course.
type CoursePreview struct {
	ID               string          `json:"id"`
	Name             string          `json:"nombre"`
	CreatorName      string          `json:"creadorNombre"`
	CreatorID        string          `json:"creadorId"`
	ImageURL         string          `json:"imageUrl"`
	LongDescription  string          `json:"descripcionLarga"`
	Category         string          `json:"categoria"`
	Level            string          `json:"nivel"`
	Price            float64         `json:"precio"`
	KeyPoints        []string        `json:"puntosClave"`
	Curriculum       []LessonPreview `json:"curriculumPreview"`
	RemainingLessons int             `json:"numeroLeccionesRestantes"`
	DurationHours    int             `json:"duracionHoras"`
	ArticleCount     int             `json:"numeroArticulos"`
	LessonCount      int             `json:"numeroLecciones"`
}

// LessonPreview is a curriculum entry visible before purchase.
type LessonPreview struct {
	Title string `json:"titulo"`
}
