package core

// EventKind identifies something that happened during an engine call.
type EventKind int

const (
	EventPlateActivated EventKind = iota
	EventWin
	EventSegmentSpawned
	EventSegmentRemoved
	EventSegmentKilled
	EventDoorOpened
	EventDoorClosed
	EventRewound
	EventSpikeStrike
	EventMoveBlocked
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventPlateActivated:
		return "plate-activated"
	case EventWin:
		return "win"
	case EventSegmentSpawned:
		return "segment-spawned"
	case EventSegmentRemoved:
		return "segment-removed"
	case EventSegmentKilled:
		return "segment-killed"
	case EventDoorOpened:
		return "door-opened"
	case EventDoorClosed:
		return "door-closed"
	case EventRewound:
		return "rewound"
	case EventSpikeStrike:
		return "spike-strike"
	case EventMoveBlocked:
		return "move-blocked"
	default:
		return "unknown"
	}
}

// Event is returned by mutating engine calls so the front end can play
// sounds or animations. Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Pos     Pos
	Channel rune
	Entity  Entity
	Index   int
	Steps   int
}

// CountEvents returns how many events in evs are of kind k.
func CountEvents(evs []Event, k EventKind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == k {
			n++
		}
	}
	return n
}
