package mediasvc

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// sessionState — фаза жизненного цикла одной стриминговой сессии.
// Переходы только вперёд: resolving → validating → header_sent → streaming →
// {completed | aborted | failed}.
type sessionState string

const (
	stateResolving  sessionState = "resolving"
	stateValidating sessionState = "validating"
	stateHeaderSent sessionState = "header_sent"
	stateStreaming  sessionState = "streaming"
	stateCompleted  sessionState = "completed"
	stateAborted    sessionState = "aborted"
	stateFailed     sessionState = "failed"
)

// streamSession живёт ровно один HTTP-ответ: один файловый дескриптор,
// ноль или один байтовый диапазон. Используется для корреляции логов.
type streamSession struct {
	id      string
	state   sessionState
	started time.Time
	log     zerolog.Logger
}

// newStreamSession создаёт сессию с собственным uuid в полях логгера.
func newStreamSession(base zerolog.Logger, target string) *streamSession {
	id := uuid.NewString()
	return &streamSession{
		id:      id,
		state:   stateResolving,
		started: time.Now(),
		log: base.With().
			Str("session", id).
			Str("target", target).
			Logger(),
	}
}

// advance переводит сессию в следующую фазу.
func (s *streamSession) advance(next sessionState) {
	s.state = next
}

// finish фиксирует терминальное состояние и пишет итоговую строку лога
// с количеством отданных байт и длительностью сессии.
func (s *streamSession) finish(terminal sessionState, bytesSent int64, err error) {
	s.state = terminal

	evt := s.log.Info()
	switch terminal {
	case stateFailed:
		evt = s.log.Error().Err(err)
	case stateAborted:
		evt = s.log.Debug()
	}

	evt.Str("state", string(terminal)).
		Int64("bytes_sent", bytesSent).
		Dur("elapsed", time.Since(s.started)).
		Msg("stream session finished")
}
