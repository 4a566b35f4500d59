package enums

// AttendanceStatus is the presence state recorded on an attendance row.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLeave   AttendanceStatus = "leave"
)

var validAttendanceStatuses = []AttendanceStatus{
	AttendanceStatusPresent,
	AttendanceStatusAbsent,
	AttendanceStatusLeave,
}

func (a AttendanceStatus) String() string { return string(a) }

func (a AttendanceStatus) IsValid() bool { return isOneOf(validAttendanceStatuses, a) }

func ParseAttendanceStatus(value string) (AttendanceStatus, error) {
	return parseOneOf("attendance status", validAttendanceStatuses, value)
}
