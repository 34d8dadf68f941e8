// Package commands implements the CLI commands for the flights tool
package commands

import (
	"time"

	"go.uber.org/zap"

	"flights/internal/models"
	"flights/internal/storage"
)

// session holds the flights of one invocation between loading the data
// file and writing it back
type session struct {
	log     *zap.SugaredLogger
	path    string
	flights []models.Flight
	dirty   bool
	loadErr error
}

// guard runs fn, logging instead of propagating any panic, and always logs
// the elapsed time of the command
func guard(log *zap.SugaredLogger, fn func()) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("unexpected failure: %v", r)
		}
		log.Infof("command completed in %.3f seconds", time.Since(start).Seconds())
	}()
	fn()
}

// runSession loads the data file at path, runs op against the loaded
// flights and saves them back if op marked the session dirty. Errors from
// any step are logged and absorbed. A panicking op leaves the file untouched.
func runSession(log *zap.SugaredLogger, path string, op func(s *session) error) {
	guard(log, func() {
		s := &session{log: log, path: path}
		s.load()

		if err := op(s); err != nil {
			log.Error(err.Error())
		}

		if s.dirty {
			s.save()
		}
	})
}

func (s *session) load() {
	flights, err := storage.Load(s.path)
	if err != nil {
		s.log.Errorf("loading flights: %v", err)
		s.loadErr = err
	}
	s.flights = flights
}

func (s *session) save() {
	if err := storage.Save(s.path, s.flights); err != nil {
		s.log.Errorf("saving flights: %v", err)
		return
	}
	s.log.Infof("saved %d flights to %s", len(s.flights), s.path)
}
