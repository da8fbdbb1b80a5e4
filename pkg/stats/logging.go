package stats

import (
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingSink reports every solve at debug level and a summary line at
// OnEnd, the way operator-lifecycle-manager's resolver threads a
// logrus.FieldLogger through SatResolver rather than a bespoke logging
// type.
type LoggingSink struct {
	Log logrus.FieldLogger

	calls map[Kind]int
	total map[Kind]time.Duration
}

// NewLoggingSink returns a sink that logs through log, allocating its
// internal counters. A nil log falls back to logrus.StandardLogger().
func NewLoggingSink(log logrus.FieldLogger) *LoggingSink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LoggingSink{
		Log:   log,
		calls: make(map[Kind]int),
		total: make(map[Kind]time.Duration),
	}
}

func (s *LoggingSink) OnSolveBegin(kind Kind) {
	s.Log.WithField("kind", kind).Debug("dispatching sat solve")
}

func (s *LoggingSink) OnSolveEnd(kind Kind, d time.Duration, sat bool) {
	s.calls[kind]++
	s.total[kind] += d
	s.Log.WithFields(logrus.Fields{
		"kind":     kind,
		"sat":      sat,
		"duration": d,
	}).Debug("sat solve finished")
}

func (s *LoggingSink) OnEnd() {
	for kind, n := range s.calls {
		s.Log.WithFields(logrus.Fields{
			"kind":  kind,
			"calls": n,
			"total": s.total[kind],
		}).Info("sat solve summary")
	}
}

var _ Sink = (*LoggingSink)(nil)
