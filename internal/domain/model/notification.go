package model

// NotificationSection is a headed block of a report message.
type NotificationSection struct {
	Heading string
	Body    string
	Inline  bool
}

// Notification is a transport-agnostic report message for downstream notifiers.
type Notification struct {
	Title    string
	Summary  string
	Sections []NotificationSection
	Footer   string
}
