package enums

// NotificationKind is the severity shown alongside a notification message.
type NotificationKind string

const (
	NotificationKindInfo    NotificationKind = "info"
	NotificationKindSuccess NotificationKind = "success"
	NotificationKindError   NotificationKind = "error"
)

var validNotificationKinds = []NotificationKind{
	NotificationKindInfo,
	NotificationKindSuccess,
	NotificationKindError,
}

func (n NotificationKind) String() string { return string(n) }

func (n NotificationKind) IsValid() bool { return isOneOf(validNotificationKinds, n) }

func ParseNotificationKind(value string) (NotificationKind, error) {
	return parseOneOf("notification kind", validNotificationKinds, value)
}
