package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/internal/config"
	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/internal/service"
	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

const cliRole = "idiotic-cli"

type App struct {
	root    *cobra.Command
	flagCfg *config.StructuredConfig
	info    models.AppBuildInfo

	out    io.Writer
	errOut io.Writer

	newGenerator GeneratorFactory
	copyText     func(string) error
	newLogger    func(level string) *logger.Logger
}

// AppOption customizes an [App].
type AppOption func(*App)

// WithOutput redirects command output and diagnostics.
func WithOutput(out, errOut io.Writer) AppOption {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithGeneratorFactory replaces the API client constructor.
func WithGeneratorFactory(f GeneratorFactory) AppOption {
	return func(a *App) { a.newGenerator = f }
}

// WithClipboard replaces the clipboard writer used by "text --copy".
func WithClipboard(copyText func(string) error) AppOption {
	return func(a *App) { a.copyText = copyText }
}

// WithLogger makes every command log through l.
func WithLogger(l *logger.Logger) AppOption {
	return func(a *App) {
		a.newLogger = func(string) *logger.Logger { return l }
	}
}

func NewApp(info models.AppBuildInfo, opts ...AppOption) *App {
	a := &App{
		flagCfg:      &config.StructuredConfig{},
		info:         info,
		out:          os.Stdout,
		errOut:       os.Stderr,
		newGenerator: newIdioticClient,
		copyText:     clipboard.WriteAll,
		newLogger: func(level string) *logger.Logger {
			return logger.NewClientLogger(cliRole, level)
		},
	}
	for _, opt := range opts {
		opt(a)
	}

	a.root = a.rootCommand()
	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "idiotic",
		Short: "Generate images and styled text with the Idiotic API",
		Long: `idiotic calls the Idiotic image and text API.

The API token is read from --token, API_TOKEN or the JSON config file.
Endpoints marked development-only need --env development.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	config.BindAPIFlags(root.PersistentFlags(), a.flagCfg)

	root.AddCommand(
		a.imageCommand(),
		a.textCommand(),
		a.endpointsCommand(),
		a.batchCommand(),
		a.versionCommand(),
	)

	return root
}

// session is what a command needs to reach the API.
type session struct {
	cfg      *config.ClientConfig
	services *service.Services
	logger   *logger.Logger
	closer   io.Closer
}

func (s *session) Close() {
	if s.closer == nil {
		return
	}
	if err := s.closer.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("error closing api client")
	}
}

func (a *App) loadConfig(requireToken bool) (*config.ClientConfig, *logger.Logger, error) {
	cfg, err := config.GetClientConfig(a.flagCfg, requireToken)
	if err != nil {
		return nil, nil, err
	}

	log := a.newLogger(cfg.LogLevel)
	log.Debug().
		Str("environment", cfg.API.Environment.String()).
		Str("base_url", cfg.API.BaseURL).
		Dur("timeout", cfg.API.RequestTimeout).
		Msg("configuration loaded")

	return cfg, log, nil
}

func (a *App) openSession() (*session, error) {
	cfg, log, err := a.loadConfig(true)
	if err != nil {
		return nil, err
	}

	gen, closer, err := a.newGenerator(cfg.API, log)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	services, err := service.NewServices(gen, a.info, log)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &session{cfg: cfg, services: services, logger: log, closer: closer}, nil
}

func newIdioticClient(cfg config.APIConfig, log *logger.Logger) (idiotic.Generator, io.Closer, error) {
	opts := []idiotic.Option{
		idiotic.WithEnvironment(cfg.Environment),
		idiotic.WithTimeout(cfg.RequestTimeout),
		idiotic.WithLogger(log.Logger),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, idiotic.WithBaseURL(cfg.BaseURL))
	}

	cli, err := idiotic.New(cfg.Token, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cli, cli, nil
}
