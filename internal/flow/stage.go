// Package flow drives the booking popup as a server-side state machine.
// Each visitor session walks the stages below; timers move toast and
// success states forward without a request.
package flow

type Stage string

const (
	// StageClosed means no popup is shown.
	StageClosed Stage = "closed"
	// StageDetails shows the cabin details view.
	StageDetails Stage = "details"
	// StageBooking shows the booking form.
	StageBooking Stage = "booking"
	// StageCalendar shows the date picker on top of the form.
	StageCalendar Stage = "calendar"
	// StageSuccess shows the confirmation view until the reset timer fires.
	StageSuccess Stage = "success"
)

// Calendar cursor field names. Dates enter the draft only through the
// picker, so the cursor records which field the picker is open for.
const (
	FieldCheckIn  = "checkin"
	FieldCheckOut = "checkout"
)
