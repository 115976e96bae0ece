package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	tests := []struct {
		input string
		want  AppointmentStatus
		ok    bool
	}{
		{"PENDING", StatusPending, true},
		{"SCHEDULED", StatusScheduled, true},
		{"COMPLETED", StatusCompleted, true},
		{"CANCELLED", StatusCancelled, true},
		{"pending", "", false},
		{"CONFIRMED", "", false},
		{"", "", false},
		{"CANCELED", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseAppointmentStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusScheduled, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}
	assert.False(t, AppointmentStatus("RESCHEDULED").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestAppointmentStatusCancellable(t *testing.T) {
	assert.True(t, StatusPending.Cancellable())
	assert.False(t, StatusScheduled.Cancellable())
	assert.False(t, StatusCompleted.Cancellable())
	assert.False(t, StatusCancelled.Cancellable())
}
