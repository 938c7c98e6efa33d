package session

import (
	"log"
	"strings"
)

// LoggingListener is a decorator that logs every session event before
// forwarding it.
type LoggingListener struct {
	inner  Listener
	logger *log.Logger
}

// WithLogging wraps a Listener with event logging. A nil inner listener
// only logs.
func WithLogging(inner Listener, logger *log.Logger) Listener {
	if inner == nil {
		inner = NopListener{}
	}
	if logger == nil {
		return inner
	}
	return &LoggingListener{inner: inner, logger: logger}
}

func (l *LoggingListener) QuestionReady(e QuestionReady) {
	l.logger.Printf("session=%s tier=%s q=%d/%d prompt=%q choices=[%s]",
		e.SessionID, e.Tier, e.Number, e.Total, e.Prompt, strings.Join(e.Choices, ","))
	l.inner.QuestionReady(e)
}

func (l *LoggingListener) Answered(e Outcome) {
	result := "wrong"
	if e.Correct {
		result = "correct"
	}
	l.logger.Printf("session=%s q=%d chose=%d result=%s answer=%q score=%d/%d",
		e.SessionID, e.Number, e.Chosen, result, e.CorrectText, e.Score.Correct, e.Score.Wrong)
	l.inner.Answered(e)
}

func (l *LoggingListener) Finished(e Summary) {
	l.logger.Printf("session=%s tier=%s finished correct=%d wrong=%d total=%d",
		e.SessionID, e.Tier, e.Correct, e.Wrong, e.Total)
	l.inner.Finished(e)
}

func (l *LoggingListener) DifficultyChanged(e DifficultyChange) {
	l.logger.Printf("session=%s difficulty=%s", e.SessionID, e.Tier)
	l.inner.DifficultyChanged(e)
}
