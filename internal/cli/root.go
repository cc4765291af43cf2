// Package cli is the presentation layer: seeker and employer flows as
// subcommands over the shared containers. Commands orchestrate; every
// business rule stays server-side.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Ayushs57139/jobportal-go/internal/api"
	"github.com/Ayushs57139/jobportal-go/internal/chatbot"
	"github.com/Ayushs57139/jobportal-go/internal/config"
	"github.com/Ayushs57139/jobportal-go/internal/device"
	"github.com/Ayushs57139/jobportal-go/internal/state"
)

// App carries the wired containers shared by every command.
type App struct {
	cfg    *config.Config
	client *api.Client
	device *device.Store
	auth   *state.AuthStore
	jobs   *state.JobStore
	bot    *chatbot.Bot
}

// Execute runs the CLI.
func Execute() error {
	app := &App{}
	root := newRootCmd(app)
	return root.Execute()
}

func newRootCmd(app *App) *cobra.Command {
	var configPath string
	var verbose bool

	root := &cobra.Command{
		Use:           "jobportal",
		Short:         "Job portal client: search jobs, apply, post, and manage the admin dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			return app.init(configPath)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			app.close()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.jobportal/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newJobsCmd(app),
		newSuggestCmd(app),
		newApplyCmd(app),
		newApplicationsCmd(app),
		newPostCmd(app),
		newMyJobsCmd(app),
		newChatCmd(app),
		newDashboardCmd(app),
	)
	return root
}

// init wires the containers. Called once per invocation by the root command.
func (a *App) init(configPath string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	dev, err := device.Open(cfg.Device.Path)
	if err != nil {
		return err
	}
	a.device = dev

	// A 401 invalidates the persisted token too, not just the in-memory
	// one, so the next run starts unauthenticated instead of retrying a
	// dead session.
	a.client = api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithRateLimit(cfg.API.RateLimitRPS, cfg.API.RateLimitBurst),
		api.WithOnUnauthorized(func() {
			if err := dev.DeleteToken(); err != nil {
				slog.Warn("auth: token delete failed", slog.Any("error", err))
			}
		}),
	)

	cache := api.NewSuggestionCache(cfg.Redis.URL, 0, 500)
	a.auth = state.NewAuthStore(a.client, dev)
	a.jobs = state.NewJobStore(a.client, cache)
	a.bot = chatbot.New(dev)
	return nil
}

func (a *App) close() {
	if a.device != nil {
		if err := a.device.Close(); err != nil {
			slog.Debug("device close failed", slog.Any("error", err))
		}
	}
}

// requireAuth rehydrates the persisted session and fails the command when
// no valid session exists.
func (a *App) requireAuth(cmd *cobra.Command) error {
	res := a.auth.CheckAuthState(cmd.Context())
	if !res.OK {
		if res.Err != "" {
			return fmt.Errorf("%s", res.Err)
		}
		return fmt.Errorf("not logged in, run `jobportal login` first")
	}
	return nil
}

// FatalIfErr is the top-level error printer used by main.
func FatalIfErr(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
