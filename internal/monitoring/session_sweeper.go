package monitoring

import (
	"github.com/isdelr/warbler-be/internal/auth"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// SessionSweeper periodically purges expired sessions so the sessions
// table doesn't grow without bound.
type SessionSweeper struct {
	sessions *auth.SessionService
	cron     *cron.Cron
}

// NewSessionSweeper creates a sweeper for the given session service.
func NewSessionSweeper(sessions *auth.SessionService) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		cron:     cron.New(),
	}
}

// Run sweeps once immediately, then hourly until Stop is called.
func (s *SessionSweeper) Run() {
	log.Info().Msg("Starting session sweeper")
	s.sweep()

	if _, err := s.cron.AddFunc("@hourly", s.sweep); err != nil {
		log.Error().Err(err).Msg("Failed to schedule session sweep")
		return
	}
	s.cron.Start()
}

// Stop halts the sweeper.
func (s *SessionSweeper) Stop() {
	s.cron.Stop()
	log.Info().Msg("Stopped session sweeper")
}

func (s *SessionSweeper) sweep() {
	removed, err := s.sessions.Sweep()
	if err != nil {
		log.Error().Err(err).Msg("Session sweep failed")
		return
	}
	if removed > 0 {
		SessionsSwept.Add(float64(removed))
		log.Info().Int64("removed", removed).Msg("Swept expired sessions")
	}
}
