// Package models defines client-side data models for the SkillSwap CLI.
// JSON tags follow the backend wire format, which uses Spanish field names.
package models

// Role is the backend-assigned user role.
type Role string

const (
	// RoleUsuario is the baseline role every session starts with. Elevated
	// roles are only ever applied from explicit server data.
	RoleUsuario    Role = "Usuario"
	RoleEstudiante Role = "Estudiante"
	RoleMentor     Role = "Mentor"
	RoleAdmin      Role = "Admin"
)

// UserProfile is the reconciled identity and role record. Instances come from
// three places: decoded token claims (identity only), the locally cached
// profile, and live server responses.
type UserProfile struct {
	ID            string   `json:"id"`
	Name          string   `json:"nombre"`
	Email         string   `json:"email"`
	Role          Role     `json:"rol"`
	Biography     string   `json:"biografia,omitempty"`
	Subjects      []string `json:"materiasQueDomina,omitempty"`
	SubjectsAlias []string `json:"materias,omitempty"` // older endpoints still send this name
	IsMentor      bool     `json:"esMentor,omitempty"`
	Semester      int      `json:"semestre,omitempty"`
	AverageRating float64  `json:"calificacionPromedio,omitempty"`
	SessionsGiven int      `json:"totalTutoriasDadas,omitempty"`
}

// MentorSubjects returns the claimed competency subjects, preferring the
// current wire field over the legacy alias.
func (u UserProfile) MentorSubjects() []string {
	if len(u.Subjects) > 0 {
		return u.Subjects
	}
	return u.SubjectsAlias
}

// Normalized recomputes the derived mentor fields so that role and esMentor
// agree: a profile is a mentor if the flag is set or the role is Mentor or
// Admin, and a mentor's role is forced to Mentor unless it is already Admin.
// The server occasionally returns the two out of sync; this is the client's
// authoritative correction. Applying it twice yields the same result as once.
func (u UserProfile) Normalized() UserProfile {
	out := u
	out.IsMentor = u.IsMentor || u.Role == RoleMentor || u.Role == RoleAdmin
	if out.IsMentor && u.Role != RoleAdmin {
		out.Role = RoleMentor
	}
	return out
}

// HasMentorAccess reports whether the profile may use mentor-only operations.
func (u UserProfile) HasMentorAccess() bool {
	return u.IsMentor || u.Role == RoleMentor || u.Role == RoleAdmin
}

// MergeCached produces the field-wise union of u (the token-derived base
// identity) and cached, with cached fields taking precedence: the cached
// profile is assumed more complete since it may carry mentor status, subjects
// and biography that the token never does. The caller is responsible for
// checking that both profiles describe the same identity before merging.
func (u UserProfile) MergeCached(cached UserProfile) UserProfile {
	out := u
	if cached.Name != "" {
		out.Name = cached.Name
	}
	if cached.Email != "" {
		out.Email = cached.Email
	}
	if cached.Role != "" {
		out.Role = cached.Role
	}
	if cached.Biography != "" {
		out.Biography = cached.Biography
	}
	if len(cached.Subjects) > 0 {
		out.Subjects = cached.Subjects
	}
	if len(cached.SubjectsAlias) > 0 {
		out.SubjectsAlias = cached.SubjectsAlias
	}
	if cached.IsMentor {
		out.IsMentor = true
	}
	if cached.Semester != 0 {
		out.Semester = cached.Semester
	}
	if cached.AverageRating != 0 {
		out.AverageRating = cached.AverageRating
	}
	if cached.SessionsGiven != 0 {
		out.SessionsGiven = cached.SessionsGiven
	}
	return out
}

// IsMentorProfileComplete reports whether a mentor profile carries enough
// data to be publicly listed: a biography and at least one subject.
func (u UserProfile) IsMentorProfileComplete() bool {
	if !u.IsMentor {
		return false
	}
	return u.Biography != "" && len(u.MentorSubjects()) > 0
}
