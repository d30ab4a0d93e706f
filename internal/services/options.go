package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// Business errors returned by the services. Handlers map them to HTTP
// statuses with errors.Is.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrEmailTaken       = errors.New("email already registered")
	ErrPasswordMismatch = errors.New("old password does not match")
	ErrModuleNotFound   = errors.New("module not found")
	ErrLessonNotFound   = errors.New("lesson not found for module")
)

// EventPublisher delivers domain events to other services.
type EventPublisher interface {
	Publish(event interface{}) error
}

type options struct {
	now       func() time.Time
	log       *zap.Logger
	publisher EventPublisher
}

// Option configures a service.
type Option func(*options)

// WithClock replaces the time source used for audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger sets the service logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithPublisher enables event publication.
func WithPublisher(p EventPublisher) Option {
	return func(o *options) { o.publisher = p }
}

func newOptions(opts []Option) options {
	o := options{
		now: func() time.Time { return time.Now().UTC() },
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) publish(event interface{}) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.Publish(event); err != nil {
		o.log.Warn("failed to publish event", zap.Error(err))
	}
}
