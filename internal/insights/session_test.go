package insights

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Result())

	token, err := s.Begin()
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, token)
	assert.Equal(t, StateSubmitting, s.State())

	result := &SubmitResult{Success: true, Eligibility: "Eligible", Insights: "fine"}
	assert.True(t, s.Complete(token, result))
	assert.Equal(t, StateSuccess, s.State())
	assert.Equal(t, result, s.Result())

	s.Reset()
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Result())
}

func TestSessionFailedOutcome(t *testing.T) {
	s := NewSession()
	token, err := s.Begin()
	require.NoError(t, err)

	assert.True(t, s.Complete(token, &SubmitResult{Success: false, Error: "nope"}))
	assert.Equal(t, StateFailed, s.State())
}

func TestSessionRejectsConcurrentBegin(t *testing.T) {
	s := NewSession()
	_, err := s.Begin()
	require.NoError(t, err)

	_, err = s.Begin()
	assert.ErrorIs(t, err, ErrSubmissionPending)
	assert.Equal(t, StateSubmitting, s.State())
}

func TestSessionRequiresResetAfterTerminalState(t *testing.T) {
	s := NewSession()
	token, err := s.Begin()
	require.NoError(t, err)
	s.Complete(token, &SubmitResult{Success: true})

	_, err = s.Begin()
	assert.ErrorIs(t, err, ErrNotIdle)

	s.Reset()
	_, err = s.Begin()
	assert.NoError(t, err)
}

func TestSessionDiscardsStaleReply(t *testing.T) {
	s := NewSession()
	token, err := s.Begin()
	require.NoError(t, err)

	// User goes back to the form while the request is still in flight.
	s.Reset()

	assert.False(t, s.Complete(token, &SubmitResult{Success: true, Insights: "late"}))
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Result())
}

func TestSessionDiscardsReplyFromEarlierSubmission(t *testing.T) {
	s := NewSession()
	first, err := s.Begin()
	require.NoError(t, err)
	s.Reset()

	second, err := s.Begin()
	require.NoError(t, err)

	// The orphaned first reply arrives while the second is pending.
	assert.False(t, s.Complete(first, &SubmitResult{Success: false, Error: "stale"}))
	assert.Equal(t, StateSubmitting, s.State())

	assert.True(t, s.Complete(second, &SubmitResult{Success: true, Insights: "current"}))
	assert.Equal(t, StateSuccess, s.State())
	assert.Equal(t, "current", s.Result().Insights)
}

func TestSessionIgnoresWrongToken(t *testing.T) {
	s := NewSession()
	_, err := s.Begin()
	require.NoError(t, err)

	assert.False(t, s.Complete(uuid.New(), &SubmitResult{Success: true}))
	assert.Equal(t, StateSubmitting, s.State())
}
