package models

// Enum values mirror the backend's tutoring wire format.
type (
	SessionLevel    string
	SessionModality string
	SessionStatus   string
	RequestStatus   string
)

const (
	SessionLevelBeginner     SessionLevel = "Principiante"
	SessionLevelIntermediate SessionLevel = "Intermedio"
	SessionLevelAdvanced     SessionLevel = "Avanzado"
	SessionLevelAll          SessionLevel = "Todos los niveles"

	SessionModalityInPerson SessionModality = "Presencial"
	SessionModalityVirtual  SessionModality = "Virtual"
	SessionModalityHybrid   SessionModality = "Hibrida"

	SessionStatusAvailable SessionStatus = "Disponible"
	SessionStatusFull      SessionStatus = "Completa"
	SessionStatusCancelled SessionStatus = "Cancelada"
	SessionStatusFinished  SessionStatus = "Finalizada"

	RequestStatusPending  RequestStatus = "Pendiente"
	RequestStatusAccepted RequestStatus = "Aceptada"
	RequestStatusRejected RequestStatus = "Rechazada"
)

// TutoringSession is a scheduled peer tutoring session offered by a mentor.
type TutoringSession struct {
	ID              string        `json:"id"`
	Title           string        `json:"titulo"`
	Description     string        `json:"descripcion"`
	Subject         string        `json:"materia"`
	RequiredLevel   string        `json:"nivelRequerido"`
	Modality        string        `json:"modalidad"`
	ScheduledAt     string        `json:"fechaHora"`
	DurationMinutes int           `json:"duracionMinutos"`
	Capacity        int           `json:"cupoMaximo"`
	SeatsLeft       int           `json:"cuposDisponibles"`
	Location        string        `json:"ubicacionPresencial,omitempty"`
	MeetingLink     string        `json:"enlaceVirtual,omitempty"`
	Topics          []string      `json:"temasEspecificos,omitempty"`
	MentorID        string        `json:"mentorId"`
	MentorName      string        `json:"mentorNombre"`
	MentorRating    float64       `json:"mentorCalificacion"`
	Status          SessionStatus `json:"estado"`
	CreatedAt       string        `json:"fechaCreacion"`
}

// SessionRequest is a student's request to join a tutoring session.
type SessionRequest struct {
	ID          string        `json:"id"`
	SessionID   string        `json:"tutoriaId"`
	StudentID   string        `json:"estudianteId"`
	StudentName string        `json:"estudianteNombre"`
	Message     string        `json:"mensaje,omitempty"`
	Status      RequestStatus `json:"estado"`
	CreatedAt   string        `json:"fechaCreacion"`
}

// CreateSessionPayload creates a new tutoring session (mentor only).
type CreateSessionPayload struct {
	Title         string   `json:"titulo" validate:"required,min=3"`
	Description   string   `json:"descripcion" validate:"required"`
	Subject       string   `json:"materia" validate:"required"`
	RequiredLevel string   `json:"nivelRequerido" validate:"required"`
	Modality      string   `json:"modalidad" validate:"required,oneof=Presencial Virtual Hibrida"`
	ScheduledAt   string   `json:"fechaHora" validate:"required"`
	Capacity      int      `json:"cupoMaximo" validate:"required,gte=1"`
	Location      string   `json:"ubicacionPresencial,omitempty" validate:"required_if=Modality Presencial"`
	MeetingLink   string   `json:"enlaceVirtual,omitempty" validate:"omitempty,url"`
	Topics        []string `json:"temasEspecificos,omitempty"`
}

// SearchSessionsQuery drives GET /api/Tutorias/buscar. Zero-valued fields are
// omitted from the query string.
type SearchSessionsQuery struct {
	Subject  string
	Modality string
	Level    string
	Date     string
	Text     string
	Page     int
	PageSize int
}

// SessionSearchResult is the paginated search response.
type SessionSearchResult struct {
	Sessions []TutoringSession `json:"tutorias"`
	Total    int               `json:"total"`
	Page     int               `json:"pagina"`
	PageSize int               `json:"tamanoPagina"`
}

// JoinRequestPayload is the optional message sent when requesting a seat.
type JoinRequestPayload struct {
	Message string `json:"mensajeEstudiante,omitempty"`
}

// RejectRequestPayload carries the optional rejection reason.
type RejectRequestPayload struct {
	Reason string `json:"razonRechazo,omitempty"`
}

// RatingPayload rates a received tutoring session.
type RatingPayload struct {
	Score       int    `json:"puntuacion" validate:"required,gte=1,lte=5"`
	Clarity     int    `json:"claridad" validate:"required,gte=1,lte=5"`
	Mastery     int    `json:"dominioTema" validate:"required,gte=1,lte=5"`
	Punctuality int    `json:"puntualidad" validate:"required,gte=1,lte=5"`
	Usefulness  int    `json:"utilidad" validate:"required,gte=1,lte=5"`
	Comment     string `json:"comentario,omitempty"`
	Anonymous   bool   `json:"esAnonima"`
}

// Rating is a stored tutoring-session rating.
type Rating struct {
	ID          string `json:"id"`
	SessionID   string `json:"tutoriaId"`
	StudentID   string `json:"estudianteId"`
	StudentName string `json:"estudianteNombre,omitempty"`
	Score       int    `json:"puntuacion"`
	Clarity     int    `json:"claridad"`
	Mastery     int    `json:"dominioTema"`
	Punctuality int    `json:"puntualidad"`
	Usefulness  int    `json:"utilidad"`
	Comment     string `json:"comentario,omitempty"`
	Anonymous   bool   `json:"esAnonima"`
	CreatedAt   string `json:"fechaCreacion"`
}
