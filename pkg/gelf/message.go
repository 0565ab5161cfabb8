package gelf

// Message is the wire representation of a single log event. Fields prefixed
// with an underscore are GELF custom fields.
type Message struct {
	Timestamp    int64  `json:"timestamp"`
	Level        int    `json:"level"`
	Host         string `json:"host"`
	ShortMessage string `json:"short_message"`
	FullMessage  any    `json:"full_message"`
	Service      string `json:"_service"`
	Environment  string `json:"_environment"`
	Release      string `json:"_release,omitempty"`
}
