package modmeta

import (
	"slices"
	"strings"
)

// Record is the mod recommendation of one character as reported by a
// single row of the mod meta report.
type Record struct {
	Character string
	Sets      []string

	// observed primary stats, each may list alternatives separated by "/"
	Receiver    string
	HoloArray   string
	DataBus     string
	Multiplexer string
}

// Stat returns the observed primary stat text of a slot.
func (r Record) Stat(slot Slot) string {
	switch slot {
	case SlotReceiver:
		return r.Receiver
	case SlotHoloArray:
		return r.HoloArray
	case SlotDataBus:
		return r.DataBus
	case SlotMultiplexer:
		return r.Multiplexer
	}
	return ""
}

// StatOptions splits the observed primary stat of a slot into its trimmed
// alternatives.
func (r Record) StatOptions(slot Slot) []string {
	parts := strings.Split(r.Stat(slot), "/")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func (r Record) HasSet(name string) bool {
	return slices.Contains(r.Sets, name)
}
