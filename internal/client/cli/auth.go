package cli

import (
	"context"
	"errors"
	"os"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/common"
)

// Login prompts for credentials and authenticates. A previously remembered
// email is offered as the default.
func (a *App) Login(ctx context.Context) error {
	prompt := "Email"
	remembered := a.auth.RememberedEmail(ctx)
	if remembered != "" {
		prompt += " [" + remembered + "]"
	}

	email, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = remembered
	}

	password, err := GetPassword(os.Stdout, "Contraseña")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := GetConfirm(a.reader, "¿Recordar email?", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, models.Credentials{Email: email, Password: string(password)}, remember)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrLoginBlocked):
			printlnFn("Demasiados intentos fallidos.", err.Error())
		case errors.Is(err, common.ErrUnauthorized):
			printlnFn("Credenciales incorrectas.")
		case errors.Is(err, common.ErrUnavailable):
			printlnFn("No se pudo conectar con el servidor.")
		default:
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn("¡Bienvenido,", user.Name+"!")
	return nil
}

// Register prompts for the new account data and signs in.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Nombre completo", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout, "Contraseña (mínimo 8 caracteres)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Register(ctx, models.Registration{Name: name, Email: email, Password: string(password)})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			printlnFn("Ya existe una cuenta con ese email.")
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn("Cuenta creada. ¡Bienvenido,", user.Name+"!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Sesión cerrada.")
	return nil
}

// Whoami prints the current profile.
func (a *App) Whoami(ctx context.Context) error {
	u := a.sessions.CurrentUser()
	if u == nil {
		printlnFn("No has iniciado sesión.")
		return common.ErrNoSession
	}

	printlnFn("Nombre:", u.Name)
	printlnFn("Email:", u.Email)
	printlnFn("Rol:", string(u.Role))
	if u.IsMentor {
		printlnFn("Materias:", joinList(u.MentorSubjects()))
		printlnFn("Calificación promedio:", u.AverageRating)
	}
	return nil
}

// Refresh re-fetches the profile from the server.
func (a *App) Refresh(ctx context.Context) error {
	user, err := a.auth.RefreshProfile(ctx)
	if err != nil {
		if errors.Is(err, common.ErrSessionExpired) {
			printlnFn("Tu sesión expiró, inicia sesión de nuevo.")
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}
	printlnFn("Perfil actualizado:", user.Name)
	return nil
}
