// internal/insights/dialog.go
package insights

import (
	"context"

	"college-compass/internal/common/logger"

	"github.com/google/uuid"
)

// Dialog couples one Session with the Service to model a single insight
// dialog: one outstanding request at a time, async completion, and stale
// replies dropped after the user has moved on.
type Dialog struct {
	ID      uuid.UUID
	session *Session
	service *Service
	logger  logger.Logger
}

func NewDialog(service *Service, log logger.Logger) *Dialog {
	id := uuid.New()
	return &Dialog{
		ID:      id,
		session: NewSession(),
		service: service,
		logger:  log.WithFields(map[string]interface{}{"dialogId": id.String()}),
	}
}

// Submit validates the input and, if the dialog is idle, dispatches the
// request asynchronously. Submitting while a request is pending is a no-op
// returning ErrSubmissionPending; invalid input never enters Submitting.
func (d *Dialog) Submit(input SubmitInput) error {
	if d.session.State() == StateSubmitting {
		return ErrSubmissionPending
	}

	prep, err := d.service.Prepare(input)
	if err != nil {
		return err
	}

	token, err := d.session.Begin()
	if err != nil {
		return err
	}

	// Detached context: dismissing the dialog never aborts the call, it
	// only causes the eventual reply to fail the token check.
	go func() {
		result := d.service.Generate(context.Background(), prep)
		if !d.session.Complete(token, result) {
			d.logger.Info("stale narrative reply discarded", map[string]interface{}{
				"token": token.String(),
			})
		}
	}()

	return nil
}

func (d *Dialog) State() State {
	return d.session.State()
}

func (d *Dialog) Result() *SubmitResult {
	return d.session.Result()
}

// Reset returns the dialog to the form state, discarding any displayed
// result and orphaning any in-flight request.
func (d *Dialog) Reset() {
	d.session.Reset()
}
