package cli

import (
	"bufio"
	"context"
	"os"
)

func (a *App) getStatus() string {
	u := a.sessions.CurrentUser()
	if u == nil {
		return ""
	}
	s := "(" + u.Name
	if u.IsMentor {
		s += " ★"
	}
	return s + ")"
}

// Root starts the interactive loop on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Bienvenido a SkillSwap CLI (escribe 'help' para ver los comandos)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
