package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffEnrollments_BothDirections(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	diff := DiffEnrollments(
		[]uuid.UUID{a, b, c}, // progress rows
		[]uuid.UUID{b, c, d}, // active student roles
	)
	assert.Equal(t, []uuid.UUID{a}, diff.MissingRole)
	assert.Equal(t, []uuid.UUID{d}, diff.MissingProgress)
}

func TestDiffEnrollments_AlreadyConsistent(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	diff := DiffEnrollments([]uuid.UUID{a, b}, []uuid.UUID{b, a})
	assert.Empty(t, diff.MissingRole)
	assert.Empty(t, diff.MissingProgress)
}

func TestDiffEnrollments_EmptySides(t *testing.T) {
	a := uuid.New()

	diff := DiffEnrollments(nil, []uuid.UUID{a})
	assert.Empty(t, diff.MissingRole)
	assert.Equal(t, []uuid.UUID{a}, diff.MissingProgress)

	diff = DiffEnrollments([]uuid.UUID{a}, nil)
	assert.Equal(t, []uuid.UUID{a}, diff.MissingRole)
	assert.Empty(t, diff.MissingProgress)

	diff = DiffEnrollments(nil, nil)
	assert.Empty(t, diff.MissingRole)
	assert.Empty(t, diff.MissingProgress)
}

// Applying the diff to both sides converges: the second diff has nothing left
// to repair.
func TestDiffEnrollments_Converges(t *testing.T) {
	progress := []uuid.UUID{uuid.New(), uuid.New()}
	roles := []uuid.UUID{progress[0], uuid.New(), uuid.New()}

	diff := DiffEnrollments(progress, roles)
	require.NotEmpty(t, diff.MissingRole)
	require.NotEmpty(t, diff.MissingProgress)

	progress = append(progress, diff.MissingProgress...)
	roles = append(roles, diff.MissingRole...)

	second := DiffEnrollments(progress, roles)
	assert.Empty(t, second.MissingRole)
	assert.Empty(t, second.MissingProgress)
}
