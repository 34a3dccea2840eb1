package events

import "reflect"

// Event is the interface that all game events must implement.
type Event interface {
	Name() string // Returns a unique name for the event type
}

// EventHandler is called for every event a game emits
type EventHandler func(event Event)

// GetGameID extracts the GameID field of an event, or "" if it has none
func GetGameID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ""
	}
	field := val.FieldByName("GameID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
