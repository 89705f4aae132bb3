package oncecell

import (
	"github.com/sirupsen/logrus"
)

// LogObserver is an Observer that writes cell events to a logrus logger.
// Cache hits and coalesced requests log at debug level, launches and
// settlements at info, and failure resets at warn.
type LogObserver struct {
	logger *logrus.Logger
}

// NewLogObserver returns a LogObserver writing to logger. A nil logger
// falls back to the logrus standard logger.
func NewLogObserver(logger *logrus.Logger) *LogObserver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogObserver{logger: logger}
}

// On implements Observer.
func (o *LogObserver) On(eventData EventData) {
	entry := o.logger.WithFields(logrus.Fields{
		"cell":    eventData.Cell,
		"phase":   eventData.Phase.String(),
		"waiters": eventData.Waiters,
	})
	switch eventData.Event {
	case EventLaunch:
		entry.Info("producer launched")
	case EventCoalesce:
		entry.Debug("request coalesced into in-flight round")
	case EventHit:
		entry.Debug("request served from cache")
	case EventSettle:
		entry.Info("cell settled")
	case EventReset:
		entry.Warn("producer failed, cell reset")
	}
}
