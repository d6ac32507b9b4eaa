package idiotic

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Observer is called once per remote request with the endpoint name, the HTTP
// status (0 when no response was received), the elapsed time and the request
// error, if any.
type Observer func(endpoint string, status int, elapsed time.Duration, err error)

// Option configures a [Client] in [New].
type Option func(*options)

type options struct {
	env      models.Environment
	session  *resty.Client
	baseURL  string
	timeout  time.Duration
	logger   zerolog.Logger
	observer Observer
}

func defaultOptions() options {
	return options{
		env:    models.Production,
		logger: zerolog.Nop(),
	}
}

// WithEnvironment selects the API deployment. The default is production.
func WithEnvironment(env models.Environment) Option {
	return func(o *options) { o.env = env }
}

// WithHTTPClient makes the client use a shared resty session. The session is
// not closed by [Client.Close]; its owner keeps that responsibility.
func WithHTTPClient(cli *resty.Client) Option {
	return func(o *options) { o.session = cli }
}

// WithBaseURL overrides the environment's base URL. The auth header and path
// layout still follow the environment.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/") }
}

// WithTimeout sets a request timeout on the client-owned session. It has no
// effect together with WithHTTPClient; use a context deadline per call.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger attaches a logger for per-request debug records.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver registers a per-request hook, typically a metrics recorder.
func WithObserver(fn Observer) Option {
	return func(o *options) { o.observer = fn }
}
