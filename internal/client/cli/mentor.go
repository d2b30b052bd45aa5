package cli

import (
	"context"
	"errors"
	"os"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/common"
)

// BecomeMentor activates the mentor profile, or updates it when the user
// already is one.
func (a *App) BecomeMentor(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Inicia sesión primero.")
		return common.ErrNoSession
	}

	var payload models.MentorActivation
	var err error

	payload.Subjects, err = GetList(a.reader, "Materias que dominas", os.Stdout)
	if err != nil {
		return err
	}
	payload.Biography, err = GetMultiline(a.reader, "Biografía", os.Stdout)
	if err != nil {
		return err
	}
	payload.Semester, err = GetInt(a.reader, "Semestre (1-12, vacío para omitir)", 0, os.Stdout)
	if err != nil {
		return err
	}

	var user *models.UserProfile
	if a.hasMentorAccess() {
		user, err = a.mentors.UpdateProfile(ctx, payload)
	} else {
		user, err = a.mentors.Activate(ctx, payload)
	}
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			printlnFn("Datos incompletos:", err.Error())
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn("Perfil de mentor activo. Rol:", string(user.Role))
	return nil
}

// MentorProfile shows the public profile of any mentor.
func (a *App) MentorProfile(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "ID del mentor", os.Stdout)
	if err != nil {
		return err
	}

	profile, err := a.mentors.PublicProfile(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Mentor no encontrado.")
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn(profile.Name)
	if profile.Biography != "" {
		printlnFn(profile.Biography)
	}
	printlnFn("Materias:", joinList(profile.Subjects))
	printlnFn("Calificación:", profile.AverageRating, "| Tutorías dadas:", profile.SessionsGiven)
	if len(profile.UpcomingSlots) > 0 {
		printlnFn("Próximas tutorías:")
		for _, s := range profile.UpcomingSlots {
			printlnFn(" -", s.Title, s.StartsAt, "("+s.Modality+")")
		}
	}
	return nil
}

// Pay starts a payment transaction for a paid course.
func (a *App) Pay(ctx context.Context) error {
	sourceID, err := GetInt(a.reader, "ID del medio de pago", 0, os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.payments.CreateTransaction(ctx, models.TransactionRequest{PaymentSourceID: sourceID})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Transacción", resp.Data.ID, "creada, estado:", resp.Data.Status)
	return nil
}
