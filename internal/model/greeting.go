package model

import "strings"

// DefaultMessage is the greeting served by revision 1 of the service.
const DefaultMessage = "Hello from Dockerized Python! Version 1.0"

// Greeting is the body of a GET /api response.  A new value is built for
// every request and never stored.
//
// Fields:
//
//	Message – the configured greeting text; never empty.
type Greeting struct {
	Message string `json:"message"`
}

// NewGreeting returns a Greeting carrying text.  Blank text falls back to
// DefaultMessage so the message field is always non-empty.
func NewGreeting(text string) Greeting {
	if strings.TrimSpace(text) == "" {
		text = DefaultMessage
	}
	return Greeting{Message: text}
}
