package picker

import (
	"time"

	"github.com/google/uuid"
)

// CleanupExpired закрывает сессии, к которым не обращались дольше ttl
func (s *Service) CleanupExpired() int {
	now := s.timeProvider.Now()

	s.mu.Lock()
	expired := make([]*session, 0)
	for id, sess := range s.sessions {
		sess.mu.Lock()
		stale := now.After(sess.expiresAt)
		sess.mu.Unlock()

		if stale {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		s.closeSession(sess)
	}

	if len(expired) > 0 {
		s.logger.Info("CleanupExpired: closed %d expired sessions", len(expired))
	}
	return len(expired)
}

// RunJanitor периодически удаляет истекшие сессии до закрытия stopCh
func (s *Service) RunJanitor(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.CleanupExpired()
		}
	}
}

// CloseAll закрывает все сессии при остановке сервиса
func (s *Service) CloseAll() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[uuid.UUID]*session)
	s.mu.Unlock()

	for _, sess := range all {
		s.closeSession(sess)
	}
}
