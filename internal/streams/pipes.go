package streams

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// LogClose closes the stream, unless it reports being closed already, and logs a failure
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close: %v", err)
		return err
	}
	log.Tracef("Closed %v", closer)
	return nil
}
