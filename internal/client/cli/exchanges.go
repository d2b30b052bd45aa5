package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

func printExchange(e models.Exchange) {
	printlnFn(fmt.Sprintf("[%s] %s ofrece «%s» por «%s» (%s)",
		e.ID, e.ProposerName, e.OfferedCourseName, e.RequestedCourseName, e.Status))
}

// Exchanges lists swap proposals, received first.
func (a *App) Exchanges(ctx context.Context) error {
	received, err := a.exchanges.Received(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	sent, err := a.exchanges.Sent(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Recibidos:")
	if len(received) == 0 {
		printlnFn("  (ninguno)")
	}
	for _, e := range received {
		printExchange(e)
	}

	printlnFn("Enviados:")
	if len(sent) == 0 {
		printlnFn("  (ninguno)")
	}
	for _, e := range sent {
		printExchange(e)
	}

	if len(received) == 0 {
		return nil
	}

	// Offer an inline decision on the received ones.
	id, err := GetSimpleText(a.reader, "ID a decidir (vacío para salir)", os.Stdout)
	if err != nil || id == "" {
		return err
	}
	accept, err := GetConfirm(a.reader, "¿Aceptar el intercambio?", os.Stdout)
	if err != nil {
		return err
	}

	if accept {
		err = a.exchanges.Accept(ctx, id)
	} else {
		err = a.exchanges.Reject(ctx, id)
	}
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Intercambio actualizado.")
	return nil
}

// Propose starts a new course-for-course swap.
func (a *App) Propose(ctx context.Context) error {
	requested, err := GetSimpleText(a.reader, "ID del curso que quieres", os.Stdout)
	if err != nil {
		return err
	}
	offered, err := GetSimpleText(a.reader, "ID del curso que ofreces", os.Stdout)
	if err != nil {
		return err
	}

	exchange, err := a.exchanges.Propose(ctx, models.ExchangeProposal{
		RequestedCourseID: requested,
		OfferedCourseID:   offered,
	})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Propuesta enviada, estado:", string(exchange.Status))
	return nil
}
