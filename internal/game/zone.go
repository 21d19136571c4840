package game

import "fmt"

// Zone represents the zone a game object currently occupies. Every
// object is in exactly one zone at any time.
type Zone int

const (
	ZoneLibrary Zone = iota
	ZoneHand
	ZoneBattlefield
	ZoneGraveyard
	ZoneExile
	// ZoneOutside holds sideboard cards and objects temporarily set
	// aside mid-resolution.
	ZoneOutside
)

var zoneNames = map[Zone]string{
	ZoneLibrary:     "LIBRARY",
	ZoneHand:        "HAND",
	ZoneBattlefield: "BATTLEFIELD",
	ZoneGraveyard:   "GRAVEYARD",
	ZoneExile:       "EXILE",
	ZoneOutside:     "OUTSIDE",
}

func (z Zone) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return fmt.Sprintf("ZONE_%d", int(z))
}

// Step represents where the turn engine currently is.
type Step int

const (
	StepNotStarted Step = iota
	StepMulligan
	StepBeginTurn
	StepUntap
	StepDraw
	StepActions
	StepCleanup
	StepFinished
)

var stepNames = map[Step]string{
	StepNotStarted: "NOT_STARTED",
	StepMulligan:   "MULLIGAN",
	StepBeginTurn:  "BEGIN_TURN",
	StepUntap:      "UNTAP",
	StepDraw:       "DRAW",
	StepActions:    "ACTIONS",
	StepCleanup:    "CLEANUP",
	StepFinished:   "FINISHED",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STEP_%d", int(s))
}
