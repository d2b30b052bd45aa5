package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/common"
)

func printSession(s models.TutoringSession) {
	printlnFn(fmt.Sprintf("[%s] %s — %s, %s (%d/%d cupos) por %s",
		s.ID, s.Title, s.Subject, s.Modality, s.SeatsLeft, s.Capacity, s.MentorName))
}

// Search prompts for filters and lists matching sessions.
func (a *App) Search(ctx context.Context) error {
	subject, err := GetSimpleText(a.reader, "Materia (vacío para todas)", os.Stdout)
	if err != nil {
		return err
	}
	text, err := GetSimpleText(a.reader, "Búsqueda libre (vacío para omitir)", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.tutoring.Search(ctx, models.SearchSessionsQuery{Subject: subject, Text: text})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(res.Sessions) == 0 {
		printlnFn("Sin resultados.")
		return nil
	}
	for _, s := range res.Sessions {
		printSession(s)
	}
	printlnFn(fmt.Sprintf("Página %d, %d en total", res.Page, res.Total))
	return nil
}

// Mine lists the sessions the user participates in.
func (a *App) Mine(ctx context.Context) error {
	sessions, err := a.tutoring.Mine(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(sessions) == 0 {
		printlnFn("No tienes tutorías.")
		return nil
	}
	for _, s := range sessions {
		printSession(s)
	}
	return nil
}

// Today lists the sessions scheduled for today.
func (a *App) Today(ctx context.Context) error {
	sessions, err := a.tutoring.Today(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(sessions) == 0 {
		printlnFn("No hay tutorías para hoy.")
		return nil
	}
	for _, s := range sessions {
		printSession(s)
	}
	return nil
}

// Join requests a seat in a session.
func (a *App) Join(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "ID de la tutoría", os.Stdout)
	if err != nil {
		return err
	}
	message, err := GetSimpleText(a.reader, "Mensaje para el mentor (opcional)", os.Stdout)
	if err != nil {
		return err
	}

	req, err := a.tutoring.RequestJoin(ctx, id, message)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			printlnFn("Ya tienes una solicitud para esta tutoría.")
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn("Solicitud enviada, estado:", string(req.Status))
	return nil
}

// Rate collects the per-aspect scores for an attended session.
func (a *App) Rate(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "ID de la tutoría", os.Stdout)
	if err != nil {
		return err
	}

	var payload models.RatingPayload
	aspects := []struct {
		name string
		dst  *int
	}{
		{"Puntuación general", &payload.Score},
		{"Claridad", &payload.Clarity},
		{"Dominio del tema", &payload.Mastery},
		{"Puntualidad", &payload.Punctuality},
		{"Utilidad", &payload.Usefulness},
	}
	for _, aspect := range aspects {
		v, err := GetInt(a.reader, aspect.name+" (1-5)", 0, os.Stdout)
		if err != nil {
			return err
		}
		*aspect.dst = v
	}

	payload.Comment, err = GetSimpleText(a.reader, "Comentario (opcional)", os.Stdout)
	if err != nil {
		return err
	}
	payload.Anonymous, err = GetConfirm(a.reader, "¿Calificación anónima?", os.Stdout)
	if err != nil {
		return err
	}

	rating, err := a.tutoring.Rate(ctx, id, payload)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Calificación registrada:", rating.Score, "estrellas")
	return nil
}

// Cancel removes one of the mentor's own sessions.
func (a *App) Cancel(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "ID de la tutoría", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := GetConfirm(a.reader, "¿Seguro que quieres cancelarla?", os.Stdout)
	if err != nil || !ok {
		return err
	}

	if err := a.tutoring.Cancel(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Tutoría cancelada.")
	return nil
}

// Publish creates a new tutoring session (mentor only).
func (a *App) Publish(ctx context.Context) error {
	if !a.hasMentorAccess() {
		printlnFn("Necesitas ser mentor para publicar tutorías. Usa 'mentor'.")
		return common.ErrForbidden
	}

	var payload models.CreateSessionPayload
	var err error

	payload.Title, err = GetSimpleText(a.reader, "Título", os.Stdout)
	if err != nil {
		return err
	}
	payload.Description, err = GetMultiline(a.reader, "Descripción", os.Stdout)
	if err != nil {
		return err
	}
	payload.Subject, err = GetSimpleText(a.reader, "Materia", os.Stdout)
	if err != nil {
		return err
	}
	payload.RequiredLevel, err = GetSimpleText(a.reader, "Nivel requerido (Principiante/Intermedio/Avanzado)", os.Stdout)
	if err != nil {
		return err
	}
	payload.Modality, err = GetSimpleText(a.reader, "Modalidad (Presencial/Virtual/Hibrida)", os.Stdout)
	if err != nil {
		return err
	}
	payload.ScheduledAt, err = GetSimpleText(a.reader, "Fecha y hora (RFC 3339, ej. 2026-09-15T16:00:00Z)", os.Stdout)
	if err != nil {
		return err
	}
	payload.Capacity, err = GetInt(a.reader, "Cupo máximo", 5, os.Stdout)
	if err != nil {
		return err
	}
	switch payload.Modality {
	case string(models.SessionModalityVirtual):
		payload.MeetingLink, err = GetSimpleText(a.reader, "Enlace de la reunión", os.Stdout)
	case string(models.SessionModalityInPerson):
		payload.Location, err = GetSimpleText(a.reader, "Ubicación", os.Stdout)
	}
	if err != nil {
		return err
	}
	payload.Topics, err = GetList(a.reader, "Temas específicos", os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.tutoring.Create(ctx, payload)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Tutoría publicada con ID", session.ID)
	return nil
}
