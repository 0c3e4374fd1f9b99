package contact

import (
	"context"
	"errors"
	"log"
	"time"
)

// ErrValidation marks a submit that was blocked before any send.
var ErrValidation = errors.New("message has validation errors")

// Sender delivers a contact message.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// SimulatedSender stands in until a mail backend exists: it waits the
// configured latency so the form's submitting state is real, then logs
// the message.
type SimulatedSender struct {
	Delay time.Duration
}

func (s SimulatedSender) Send(ctx context.Context, m Message) error {
	delay := s.Delay
	if delay <= 0 {
		delay = 1500 * time.Millisecond
	}
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return ctx.Err()
	}
	log.Printf("contact: message from %s <%s>: %s", m.Name, m.Email, m.Subject)
	return nil
}

// Service provides business logic for the contact form.
type Service struct {
	sender Sender
}

func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// Submit validates and sends the message. When validation fails the
// returned map holds the per-field messages and nothing is sent.
func (s *Service) Submit(ctx context.Context, m Message) (map[string]string, error) {
	if errs := Validate(m); len(errs) > 0 {
		return errs, ErrValidation
	}
	if err := s.sender.Send(ctx, m); err != nil {
		return nil, err
	}
	return nil, nil
}
