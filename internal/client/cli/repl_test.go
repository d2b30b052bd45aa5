package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	mentor   bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool     { return f.loggedIn }
func (f *fakeExec) hasMentorAccess() bool { return f.mentor }

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Whoami(ctx context.Context) error     { return f.record("whoami") }
func (f *fakeExec) Refresh(ctx context.Context) error    { return f.record("refresh") }
func (f *fakeExec) Courses(ctx context.Context) error      { return f.record("courses") }
func (f *fakeExec) Course(ctx context.Context) error       { return f.record("course") }
func (f *fakeExec) NewCourse(ctx context.Context) error    { return f.record("newcourse") }
func (f *fakeExec) EditCourse(ctx context.Context) error   { return f.record("editcourse") }
func (f *fakeExec) DeleteCourse(ctx context.Context) error { return f.record("delcourse") }
func (f *fakeExec) Search(ctx context.Context) error     { return f.record("search") }
func (f *fakeExec) Mine(ctx context.Context) error       { return f.record("mine") }
func (f *fakeExec) Today(ctx context.Context) error      { return f.record("today") }
func (f *fakeExec) Join(ctx context.Context) error       { return f.record("join") }
func (f *fakeExec) Rate(ctx context.Context) error       { return f.record("rate") }
func (f *fakeExec) Cancel(ctx context.Context) error     { return f.record("cancel") }
func (f *fakeExec) MyRequests(ctx context.Context) error { return f.record("myrequests") }
func (f *fakeExec) Inbox(ctx context.Context) error      { return f.record("inbox") }
func (f *fakeExec) Accept(ctx context.Context) error     { return f.record("accept") }
func (f *fakeExec) Reject(ctx context.Context) error     { return f.record("reject") }
func (f *fakeExec) Exchanges(ctx context.Context) error  { return f.record("exchanges") }
func (f *fakeExec) Propose(ctx context.Context) error    { return f.record("propose") }
func (f *fakeExec) BecomeMentor(ctx context.Context) error  { return f.record("mentor") }
func (f *fakeExec) MentorProfile(ctx context.Context) error { return f.record("mentorprofile") }
func (f *fakeExec) Publish(ctx context.Context) error    { return f.record("publish") }
func (f *fakeExec) Pay(ctx context.Context) error        { return f.record("pay") }

func runScript(t *testing.T, f *fakeExec, script ...string) []string {
	t.Helper()

	origPrint := printlnFn
	var out []string
	printlnFn = func(args ...any) (int, error) {
		out = append(out, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	scanner := bufio.NewScanner(strings.NewReader(strings.Join(script, "\n") + "\n"))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
	return out
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "login", "search", "mine", "join", "logout", "exit")

	assert.Equal(t, []string{"login", "search", "mine", "join", "logout"}, f.calls)
}

func TestRunREPL_ShortAliases(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "s", "quit")

	assert.Equal(t, []string{"search"}, f.calls)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "frobnicate", "exit")

	assert.Empty(t, f.calls)
	joined := strings.Join(out, "\n")
	assert.Contains(t, joined, "Unknown command")
}

func TestRunREPL_EmptyLinesIgnored(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "", "   ", "whoami", "exit")

	assert.Equal(t, []string{"whoami"}, f.calls)
}

func TestRunREPL_HelpVariesWithState(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "help", "exit")
	assert.Contains(t, strings.Join(out, "\n"), "register")

	f = &fakeExec{loggedIn: true, mentor: true}
	out = runScript(t, f, "help", "exit")
	joined := strings.Join(out, "\n")
	assert.Contains(t, joined, "whoami")
	assert.Contains(t, joined, "Mentor commands")
}

func TestRunREPL_EOFExits(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "whoami")

	assert.Equal(t, []string{"whoami"}, f.calls)
}

func TestRunREPL_MentorCommands(t *testing.T) {
	f := &fakeExec{loggedIn: true, mentor: true}
	runScript(t, f, "publish", "inbox", "accept", "reject", "cancel", "exit")

	assert.Equal(t, []string{"publish", "inbox", "accept", "reject", "cancel"}, f.calls)
}
