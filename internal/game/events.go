package game

import (
	"fmt"

	"go.uber.org/zap"
)

// EventKind indicates the category of a game event.
type EventKind string

const (
	EventMulligan  EventKind = "MULLIGAN"
	EventKeepHand  EventKind = "KEEP_HAND"
	EventBeginTurn EventKind = "BEGIN_TURN"
	EventSkipTurn  EventKind = "SKIP_TURN"
	EventDrawCard  EventKind = "DRAW_CARD"
	EventPlayLand  EventKind = "PLAY_LAND"
	EventCastSpell EventKind = "CAST_SPELL"
	EventDiscard   EventKind = "DISCARD"
	EventSearch    EventKind = "SEARCH"
	EventLookAt    EventKind = "LOOK_AT"
	EventBounce    EventKind = "RETURN_TO_HAND"
	EventReanimate EventKind = "REANIMATE"
	EventUntap     EventKind = "UNTAP"
	EventMill      EventKind = "MILL"
	EventDamage    EventKind = "DAMAGE"
	EventFloatMana EventKind = "FLOAT_MANA"
	EventGameOver  EventKind = "GAME_OVER"
)

// Event is one entry in a game's action log.
type Event struct {
	Turn   int       `json:"turn"`
	Kind   EventKind `json:"kind"`
	Card   string    `json:"card,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

func (e Event) String() string {
	s := fmt.Sprintf("[Turn %02d][%s]", e.Turn, e.Kind)
	if e.Card != "" {
		s += fmt.Sprintf(" %q", e.Card)
	}
	if e.Detail != "" {
		s += " " + e.Detail
	}
	return s
}

// EventLog is the append-only action log of one game. Every recorded
// event is mirrored to the logger at debug level.
type EventLog struct {
	events []Event
	log    *zap.Logger
}

// NewEventLog creates an event log mirroring to the given logger.
func NewEventLog(log *zap.Logger) *EventLog {
	return &EventLog{log: log}
}

// Record appends an event to the log.
func (l *EventLog) Record(e Event) {
	l.events = append(l.events, e)
	l.log.Debug(e.String(),
		zap.Int("turn", e.Turn),
		zap.String("kind", string(e.Kind)),
	)
}

// Events returns all recorded events in order.
func (l *EventLog) Events() []Event {
	return l.events
}
