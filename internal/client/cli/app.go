package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/skillswap/skillswap-cli/internal/client/api"
	"github.com/skillswap/skillswap-cli/internal/client/config"
	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/client/services"
	"github.com/skillswap/skillswap-cli/internal/client/session"
	"github.com/skillswap/skillswap-cli/internal/client/storage"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

// App wires the SkillSwap client together: local storage, session state,
// the API gateway and the application services behind the REPL commands.
type App struct {
	config   *config.Config
	sessions *session.Manager
	notifier *services.Notifier
	log      logging.Logger
	reader   *bufio.Reader
	db       *sql.DB

	auth      services.AuthService
	courses   services.CourseService
	tutoring  services.TutoringService
	requests  services.RequestService
	exchanges services.ExchangeService
	mentors   services.MentorService
	payments  services.PaymentService
}

// NewApp opens local storage, runs migrations and constructs the full
// service graph. An empty StoragePath keeps everything in memory.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	ctx := context.Background()

	var (
		db    *sql.DB
		store storage.Store
	)
	if c.StoragePath != "" {
		var err error
		db, err = storage.Open(ctx, c.StoragePath)
		if err != nil {
			log.Error(ctx, "error initializing local storage", "error", err)
			return nil, err
		}
		store = storage.NewSQLiteStore(db)
	}

	sessions := session.NewManager(store, log)
	lockout := session.NewLockout(store, log)
	gateway := api.NewClient(c.BaseURL, sessions.Tokens(), c.RequestTimeout, log)

	return &App{
		config:    c,
		sessions:  sessions,
		notifier:  services.NewNotifier(gateway, sessions, log),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		db:        db,
		auth:      services.NewAuthService(gateway, sessions, lockout, log),
		courses:   services.NewCourseService(gateway),
		tutoring:  services.NewTutoringService(gateway),
		requests:  services.NewRequestService(gateway),
		exchanges: services.NewExchangeService(gateway),
		mentors:   services.NewMentorService(gateway, sessions),
		payments:  services.NewPaymentService(gateway),
	}, nil
}

// Run restores any persisted session, starts the notification watcher and
// hands control to the REPL until it exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.sessions.Initialize(ctx)
	if u := a.sessions.CurrentUser(); u != nil {
		printlnFn("Sesión restaurada:", u.Name)
	}

	go a.startNotificationWatcher(ctx)

	a.Root(ctx)
}

// Close releases the underlying storage handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsLoggedIn(context.Background())
}

func (a *App) hasMentorAccess() bool {
	return a.sessions.HasMentorAccess()
}

func (a *App) startNotificationWatcher(ctx context.Context) {
	interval := a.config.PollInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	a.notifier.Start(ctx, interval, func(req models.SessionRequest) {
		printlnFn("Nueva solicitud de", req.StudentName, "— usa 'inbox' para revisarla")
	})
}
