package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusNew, StatusPaid, StatusShipped, StatusCancelled} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("PENDING"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("new"))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusNew, StatusPaid, true},
		{StatusNew, StatusCancelled, true},
		{StatusNew, StatusShipped, false},
		{StatusPaid, StatusShipped, true},
		{StatusPaid, StatusCancelled, true},
		{StatusPaid, StatusNew, false},
		{StatusShipped, StatusCancelled, false},
		{StatusCancelled, StatusNew, false},
		// No-op transitions are allowed for known statuses only.
		{StatusShipped, StatusShipped, true},
		{"BOGUS", "BOGUS", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleCustomer))
	assert.True(t, ValidRole(RoleEmployee))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("customer"))
	assert.False(t, ValidRole(""))
}
