package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App type
// satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	hasMentorAccess() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Refresh(ctx context.Context) error

	Courses(ctx context.Context) error
	Course(ctx context.Context) error
	NewCourse(ctx context.Context) error
	EditCourse(ctx context.Context) error
	DeleteCourse(ctx context.Context) error

	Search(ctx context.Context) error
	Mine(ctx context.Context) error
	Today(ctx context.Context) error
	Join(ctx context.Context) error
	Rate(ctx context.Context) error
	Cancel(ctx context.Context) error

	MyRequests(ctx context.Context) error
	Inbox(ctx context.Context) error
	Accept(ctx context.Context) error
	Reject(ctx context.Context) error

	Exchanges(ctx context.Context) error
	Propose(ctx context.Context) error

	BecomeMentor(ctx context.Context) error
	MentorProfile(ctx context.Context) error
	Publish(ctx context.Context) error
	Pay(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command and dispatches to methods on 'a'. The loop exits on EOF or when
// the user types "exit" or "quit". Handlers report their own errors; the
// loop only cares about I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("skillswap %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printHelp(a)

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "refresh":
			_ = a.Refresh(ctx)

		case "courses":
			_ = a.Courses(ctx)
		case "course":
			_ = a.Course(ctx)
		case "newcourse":
			_ = a.NewCourse(ctx)
		case "editcourse":
			_ = a.EditCourse(ctx)
		case "delcourse":
			_ = a.DeleteCourse(ctx)

		case "s", "search":
			_ = a.Search(ctx)
		case "mine":
			_ = a.Mine(ctx)
		case "today":
			_ = a.Today(ctx)
		case "join":
			_ = a.Join(ctx)
		case "rate":
			_ = a.Rate(ctx)
		case "cancel":
			_ = a.Cancel(ctx)

		case "myrequests":
			_ = a.MyRequests(ctx)
		case "inbox":
			_ = a.Inbox(ctx)
		case "accept":
			_ = a.Accept(ctx)
		case "reject":
			_ = a.Reject(ctx)

		case "exchanges":
			_ = a.Exchanges(ctx)
		case "propose":
			_ = a.Propose(ctx)

		case "mentor":
			_ = a.BecomeMentor(ctx)
		case "mentorprofile":
			_ = a.MentorProfile(ctx)
		case "publish":
			_ = a.Publish(ctx)
		case "pay":
			_ = a.Pay(ctx)

		case "exit", "quit":
			printlnFn("¡Hasta luego!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: register, login, courses, course, (s)earch, exit")
		return
	}
	printlnFn("Available commands: whoami, refresh, courses, course, newcourse, editcourse, delcourse, (s)earch, mine, today, join, rate, myrequests, exchanges, propose, mentor, mentorprofile, pay, logout, exit")
	if a.hasMentorAccess() {
		printlnFn("Mentor commands: publish, inbox, accept, reject, cancel")
	}
}
