package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "sarai_backend/internals/helpers"
)

// A certificate may be issued at most once per (user, course): the first check
// passes, every later one short-circuits with the already-issued reason before
// any branch evaluation runs.
func TestEvaluateIssued_SingleIssueGuard(t *testing.T) {
	assert.Nil(t, EvaluateIssued(0))

	blocked := EvaluateIssued(1)
	require.NotNil(t, blocked)
	assert.False(t, blocked.Eligible)
	assert.Equal(t, "certificate already issued", blocked.Reason)

	// a racy double insert leaves more than one row visible; still blocked
	blocked = EvaluateIssued(2)
	require.NotNil(t, blocked)
	assert.False(t, blocked.Eligible)
}

// ErrAlreadyIssued is keyed off the same reason string the guard produces, so
// issuance and eligibility cannot drift apart.
func TestAlreadyIssuedReasonMatchesGuard(t *testing.T) {
	blocked := EvaluateIssued(1)
	require.NotNil(t, blocked)
	assert.Equal(t, reasonAlreadyIssued, blocked.Reason)
	assert.Equal(t, reasonAlreadyIssued, ErrAlreadyIssued.Error())
}

// Only a unique-constraint hit on the insert means a concurrent request won
// the race; infrastructure failures must not be reported as duplicates.
func TestIssueInsertErrorDiscrimination(t *testing.T) {
	assert.False(t, helper.IsUniqueViolation(assert.AnError))
}
