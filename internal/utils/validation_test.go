package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingPayload struct {
	DoctorID        string `json:"doctor_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required,futuredate"`
	Time            string `json:"time" validate:"required,hhmm"`
	Type            string `json:"type" validate:"required,max=50"`
	Note            string `json:"note" validate:"omitempty,max=500"`
}

func validBooking() bookingPayload {
	return bookingPayload{
		DoctorID:        "d1",
		AppointmentDate: "2099-01-01",
		Time:            "09:30",
		Type:            "Checkup",
	}
}

func TestValidateAcceptsValidBooking(t *testing.T) {
	assert.NoError(t, Validate(validBooking()))
}

func TestTimeOfDayValidation(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"00:00", true},
		{"9:30", true},
		{"23:59", true},
		{"24:00", false},
		{"09:60", false},
		{"0930", false},
		{"morning", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := validBooking()
			p.Time = tt.input
			err := Validate(p)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFutureDateValidation(t *testing.T) {
	p := validBooking()

	p.AppointmentDate = "2000-01-01"
	assert.Error(t, Validate(p), "past dates must be rejected")

	p.AppointmentDate = "not-a-date"
	assert.Error(t, Validate(p), "unparseable dates must be rejected")

	p.AppointmentDate = time.Now().Format(DateLayout)
	assert.NoError(t, Validate(p), "today is allowed at day granularity")
}

func TestFieldErrorsEnumeratesEveryViolation(t *testing.T) {
	p := bookingPayload{
		Time: "25:00",
		Note: string(make([]byte, 501)),
	}

	err := Validate(p)
	require.Error(t, err)

	errs := FieldErrors(err)
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field] = fe.Message
	}

	// Every violated field is reported, under its json name, not just the first.
	assert.Contains(t, fields, "doctor_id")
	assert.Contains(t, fields, "appointment_date")
	assert.Contains(t, fields, "time")
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "note")
	assert.Equal(t, "time must be in HH:MM format", fields["time"])
}
