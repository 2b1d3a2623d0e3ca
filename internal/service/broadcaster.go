package service

// Broadcaster pushes live events to dashboard subscribers. Implemented by the
// websocket hub; services hold it optionally so they run fine without one.
type Broadcaster interface {
	Publish(event string, payload interface{})
}
