package checkout

import (
	"time"

	"github.com/google/uuid"

	"minimalstore/internal/cart"
)

// Status tracks the submission state machine:
// Idle → Validating → (Invalid | Processing → Success). There is no retry
// and no failure branch; the simulated payment always resolves to success.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusValidating Status = "validating"
	StatusInvalid    Status = "invalid"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
)

type Result struct {
	Status         Status
	FieldErrors    map[string]string
	ConfirmationID string
}

// Processor simulates the payment step: a fixed delay standing in for the
// gateway round-trip.
type Processor struct {
	Delay time.Duration
}

func NewProcessor(delay time.Duration) *Processor {
	return &Processor{Delay: delay}
}

// Submit validates all fields at once and blocks submission when any
// required validator fails. On success it waits the simulated delay, clears
// the cart and returns a confirmation id for the thank-you view.
func (p *Processor) Submit(f Form, ct *cart.Cart) Result {
	if errs := Validate(f); len(errs) > 0 {
		return Result{Status: StatusInvalid, FieldErrors: errs}
	}

	if p.Delay > 0 {
		time.Sleep(p.Delay)
	}

	ct.Clear()
	return Result{Status: StatusSuccess, ConfirmationID: uuid.NewString()}
}
