package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapConstraint(t *testing.T) {
	// date and end_time migrate as timestamptz; only tstzrange has an
	// overload for them, tsrange would fail the ALTER TABLE at startup.
	assert.Contains(t, overlapConstraintSQL, `tstzrange(date, end_time, '[)')`)
	assert.NotContains(t, overlapConstraintSQL, ` tsrange(`)

	// Cancelled rows vacate the timeline; zero-duration rows cannot collide.
	assert.Contains(t, overlapConstraintSQL, `status <> 'cancelled'`)
	assert.Contains(t, overlapConstraintSQL, `end_time > date`)
}
