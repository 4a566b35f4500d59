package enums

// Shift is the work shift selected at check-in.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

var validShifts = []Shift{
	ShiftMorning,
	ShiftAfternoon,
	ShiftNight,
}

func (s Shift) String() string { return string(s) }

func (s Shift) IsValid() bool { return isOneOf(validShifts, s) }

func ParseShift(value string) (Shift, error) { return parseOneOf("shift", validShifts, value) }
