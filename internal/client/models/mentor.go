package models

// MentorActivation activates or updates a mentor profile. The subjects field
// keeps the backend's PascalCase wire name.
type MentorActivation struct {
	Biography string   `json:"biografia,omitempty"`
	Semester  int      `json:"semestre,omitempty" validate:"omitempty,gte=1,lte=12"`
	Subjects  []string `json:"MateriasQueDomine" validate:"required,min=1,dive,required"`
}

// MentorActivationResponse wraps the updated profile returned by the
// activation and profile-update endpoints.
type MentorActivationResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

// MentorPublicProfile is the public view of a mentor.
type MentorPublicProfile struct {
	ID             string            `json:"id"`
	Name           string            `json:"nombre"`
	Email          string            `json:"email"`
	Biography      string            `json:"biografia,omitempty"`
	Semester       int               `json:"semestre,omitempty"`
	AverageRating  float64           `json:"calificacionPromedio"`
	SessionsGiven  int               `json:"totalTutoriasDadas"`
	StudentsHelped int               `json:"totalEstudiantesAyudados"`
	Subjects       []string          `json:"materiasQueDomina"`
	Ratings        []MentorRating    `json:"calificaciones"`
	UpcomingSlots  []UpcomingSession `json:"proximasTutorias"`
	Stats          MentorStats       `json:"estadisticas"`
}

// MentorRating is a single rating shown on the public profile.
type MentorRating struct {
	ID          string `json:"id"`
	StudentName string `json:"estudianteNombre"`
	Score       int    `json:"puntuacion"`
	Comment     string `json:"comentario,omitempty"`
	CreatedAt   string `json:"fechaCreacion"`
	Anonymous   bool   `json:"esAnonima"`
}

// UpcomingSession is a short listing of a mentor's next sessions.
type UpcomingSession struct {
	ID        string `json:"id"`
	Title     string `json:"titulo"`
	StartsAt  string `json:"fechaHora"`
	Modality  string `json:"modalidad"`
	SeatsLeft int    `json:"cuposDisponibles"`
	Capacity  int    `json:"cupoMaximo"`
}

// MentorStats aggregates a mentor's activity.
type MentorStats struct {
	TotalRatings      int     `json:"totalCalificaciones"`
	OverallAverage    float64 `json:"promedioGeneral"`
	CompletedSessions int     `json:"tutoriasCompletadas"`
	ActiveSessions    int     `json:"tutoriasActivas"`
	UniqueStudents    int     `json:"estudiantesUnicos"`
}
