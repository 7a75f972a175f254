package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/RANGASWAMY-MK/my-space/internal/client/config"
	"github.com/RANGASWAMY-MK/my-space/internal/client/drive"
	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
	"github.com/RANGASWAMY-MK/my-space/internal/client/repositories/files"
	"github.com/RANGASWAMY-MK/my-space/internal/client/repositories/session"
	"github.com/RANGASWAMY-MK/my-space/internal/client/services"
	"github.com/RANGASWAMY-MK/my-space/internal/dbx"
	"github.com/RANGASWAMY-MK/my-space/internal/logging"
)

// App ties the CLI together: the session-backed auth service, the drive
// dashboard and the interactive input plumbing.
type App struct {
	config      *config.Config
	authService services.AuthService
	dashboard   *drive.Dashboard
	user        *models.User
	reader      *bufio.Reader
	out         io.Writer
	log         logging.Logger
	db          *sql.DB
}

// initSessionDB opens (creating if needed) the local session database and
// applies its schema.
func initSessionDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return session.Migrate(ctx, tx)
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return db, nil
}

// NewApp wires an App from configuration. The drive content is the built-in
// demo set; the session survives restarts through the sqlite store.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := initSessionDB(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	sessions := session.NewSQLiteRepository(db)
	as := services.NewAuthService(sessions, c)

	repoOpts := []files.Option{files.WithRecords(files.DemoRecords(time.Now()))}
	if c.SimulateLatency {
		repoOpts = append(repoOpts, files.WithSimulatedLatency())
	}
	repo := files.NewInMemory(repoOpts...)

	dashboard := drive.NewDashboard(repo, log, drive.WithNotificationTTL(c.NotificationTTL))

	return &App{
		config:      c,
		authService: as,
		dashboard:   dashboard,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		log:         log,
		db:          db,
	}, nil
}

// Run restores a persisted session if one exists, then hands control to the
// REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if user, err := a.authService.Restore(ctx); err == nil {
		a.user = user
		fmt.Fprintf(a.out, "Welcome back, %s\n", user.ID)
		a.dashboard.Refresh(ctx)
		a.renderListing()
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// status renders the prompt decoration: user id plus the current location.
func (a *App) status() string {
	if !a.isLoggedIn() {
		return ""
	}
	s := a.user.ID + " " + a.dashboard.Title()
	if q := a.dashboard.Query(); q != "" {
		s += fmt.Sprintf(" [search: %s]", q)
	}
	return fmt.Sprintf("(%s)", s)
}

// printNotification surfaces the dashboard's active notification, if any.
func (a *App) printNotification() {
	n := a.dashboard.Notification()
	if n == nil {
		return
	}
	prefix := "ok"
	if n.Kind == drive.NoteError {
		prefix = "error"
	}
	fmt.Fprintf(a.out, "[%s] %s\n", prefix, n.Message)
}
