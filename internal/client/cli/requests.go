package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/common"
)

func printRequest(r models.SessionRequest) {
	line := fmt.Sprintf("[%s] tutoría %s — %s (%s)", r.ID, r.SessionID, r.StudentName, r.Status)
	if r.Message != "" {
		line += " «" + r.Message + "»"
	}
	printlnFn(line)
}

// MyRequests lists the join requests the user has sent.
func (a *App) MyRequests(ctx context.Context) error {
	reqs, err := a.requests.Sent(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(reqs) == 0 {
		printlnFn("No has enviado solicitudes.")
		return nil
	}
	for _, r := range reqs {
		printRequest(r)
	}
	return nil
}

// Inbox lists the join requests received for the mentor's sessions.
func (a *App) Inbox(ctx context.Context) error {
	if !a.hasMentorAccess() {
		printlnFn("Solo los mentores reciben solicitudes.")
		return common.ErrForbidden
	}

	reqs, err := a.requests.Received(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(reqs) == 0 {
		printlnFn("No tienes solicitudes pendientes.")
		return nil
	}
	for _, r := range reqs {
		printRequest(r)
	}
	return nil
}

// Accept approves a received join request.
func (a *App) Accept(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "ID de la solicitud", os.Stdout)
	if err != nil {
		return err
	}

	req, err := a.requests.Accept(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Solicitud de", req.StudentName, "aceptada.")
	return nil
}

// Reject declines a received join request with an optional reason.
func (a *App) Reject(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "ID de la solicitud", os.Stdout)
	if err != nil {
		return err
	}
	reason, err := GetSimpleText(a.reader, "Razón (opcional)", os.Stdout)
	if err != nil {
		return err
	}

	req, err := a.requests.Reject(ctx, id, reason)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Solicitud de", req.StudentName, "rechazada.")
	return nil
}
