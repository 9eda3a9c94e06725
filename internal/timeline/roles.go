package timeline

import (
	"strings"

	"subcast/internal/textutil"
)

// narratorLabels are raw labels that map straight to the narrator role.
var narratorLabels = map[string]struct{}{
	"narrator":  {},
	"narrador":  {},
	"narr":      {},
	"narration": {},
	"cold open": {},
	"cold_open": {},
	"coldopen":  {},
	"intro":     {},
}

// RoleSet resolves raw speaker labels to the closed role set using the
// configured display names. Matching is case- and accent-insensitive and
// accepts labels that merely start with a configured name, so "Héctor
// (riendo)" still resolves to the host.
type RoleSet struct {
	hostName  string
	guestName string
	hostKey   string
	guestKey  string
}

// NewRoleSet builds a RoleSet for the configured host and guest names.
func NewRoleSet(hostName, guestName string) RoleSet {
	return RoleSet{
		hostName:  strings.TrimSpace(hostName),
		guestName: strings.TrimSpace(guestName),
		hostKey:   textutil.NormalizeKey(hostName),
		guestKey:  textutil.NormalizeKey(guestName),
	}
}

// Normalize maps a raw label to a role. Unrecognized labels, including
// cold-open markers, map to the narrator.
func (r RoleSet) Normalize(raw string) Role {
	key := textutil.NormalizeKey(strings.TrimRight(strings.TrimSpace(raw), ":"))
	if key == "" {
		return RoleNarrator
	}
	if _, ok := narratorLabels[key]; ok {
		return RoleNarrator
	}
	if r.hostKey != "" && strings.HasPrefix(key, r.hostKey) {
		return RoleHost
	}
	if r.guestKey != "" && strings.HasPrefix(key, r.guestKey) {
		return RoleGuest
	}
	return RoleNarrator
}

// DisplayName returns the configured name for a role, or empty for the
// narrator.
func (r RoleSet) DisplayName(role Role) string {
	switch role {
	case RoleHost:
		return r.hostName
	case RoleGuest:
		return r.guestName
	default:
		return ""
	}
}

// HostKey returns the normalized host name, used for name-shortcut matching.
func (r RoleSet) HostKey() string { return r.hostKey }

// GuestKey returns the normalized guest name.
func (r RoleSet) GuestKey() string { return r.guestKey }
