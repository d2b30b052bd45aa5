package models

// ExchangeStatus mirrors the backend exchange states.
type ExchangeStatus string

const (
	ExchangeStatusPending  ExchangeStatus = "PENDIENTE"
	ExchangeStatusAccepted ExchangeStatus = "ACEPTADO"
	ExchangeStatusRejected ExchangeStatus = "RECHAZADO"
)

// Exchange is a course-for-course swap proposal between two users.
type Exchange struct {
	ID                string         `json:"id"`
	ProposerID        string         `json:"solicitanteId"`
	OwnerID           string         `json:"ofertanteId"`
	RequestedCourseID string         `json:"cursoSolicitadoId"`
	OfferedCourseID   string         `json:"cursoOfrecidoId"`
	Status            ExchangeStatus `json:"estado"`
	CreatedAt         string         `json:"fechaCreacion"`

	// Enriched display fields, present on the detailed listing endpoints.
	RequestedCourseName string `json:"nombreCursoSolicitado,omitempty"`
	OfferedCourseName   string `json:"nombreCursoOfrecido,omitempty"`
	ProposerName        string `json:"nombreSolicitante,omitempty"`
	OwnerName           string `json:"nombreOfertante,omitempty"`
}

// ExchangeProposal is the request body for a new swap proposal.
type ExchangeProposal struct {
	RequestedCourseID string `json:"cursoSolicitadoId" validate:"required"`
	OfferedCourseID   string `json:"cursoOfrecidoId" validate:"required,nefield=RequestedCourseID"`
}
