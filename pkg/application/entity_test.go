package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
		err  error
	}{
		{"accepted", StatusAccepted, nil},
		{"  Rejected ", StatusRejected, nil},
		{"PENDING", StatusPending, nil},
		{"", "", ErrStatusRequired},
		{"   ", "", ErrStatusRequired},
		{"hired", "", ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanTransitionTo(t *testing.T) {
	all := []Status{StatusPending, StatusAccepted, StatusRejected}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusPending}:   true,
		{StatusPending, StatusAccepted}:  true,
		{StatusPending, StatusRejected}:  true,
		{StatusAccepted, StatusAccepted}: true,
		{StatusRejected, StatusRejected}: true,
	}
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]Status{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}
