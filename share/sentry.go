package share

import (
	"fmt"
	"net/http"

	"parkour_scoreboard/logging"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// InitSentry configures the global hub. An empty dsn leaves capturing
// disabled.
func InitSentry(dsn string) error {
	return sentry.Init(
		sentry.ClientOptions{
			Dsn:           dsn,
			HTTPTransport: new(http.Transport),
		},
	)
}

// Report sends err to sentry and logs it with its stack.
func Report(err error) {
	if err == nil {
		return
	}

	sentry.CaptureException(err)
	logging.Log.Error(fmt.Sprintf("%+v", errors.WithStack(err)))
}
