package events

import "reflect"

// Event is the interface that all game events must implement.
type Event interface {
	EventName() string // Returns a unique name for the event type
}

// EventHandler is a callback invoked for every event an engine emits.
type EventHandler func(event Event)

// GetGameID extracts the GameID field from an event, or "" when absent.
func GetGameID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	field := val.FieldByName("GameID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
