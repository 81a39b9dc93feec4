package apperr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	copied := ErrActivityFull.Msg("Activity %q is full", "Chess Club")

	assert.ErrorIs(t, copied, ErrActivityFull)
	assert.ErrorIs(t, errors.Wrap(copied, "signup"), ErrActivityFull)
	assert.NotErrorIs(t, copied, ErrAlreadyRegistered)
	assert.NotErrorIs(t, errors.New("ACTIVITY_FULL: Activity is full"), ErrActivityFull)
}

func TestInvalidViolationsDoesNotMutateSentinel(t *testing.T) {
	e := NewInvalidViolations([]string{"email is required"})

	assert.NotNil(t, e.Extras)
	assert.Nil(t, ErrInvalidReq.Extras)
	assert.Equal(t, CodeInvalidRequest, e.ErrorCode)
}
