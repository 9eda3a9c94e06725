package attribution

import (
	"strings"

	"subcast/internal/textutil"
	"subcast/internal/timeline"
)

const (
	// anchorPrefixChars bounds the caption prefix searched for inside a
	// buffer when consuming matched text.
	anchorPrefixChars = 32
	// fallbackAdvanceFraction is the share of the caption length a buffer is
	// advanced by when no anchor position is found. A heuristic against
	// transcription drift, not a contract.
	fallbackAdvanceFraction = 0.8
)

// Options holds resolver tunables.
type Options struct {
	// NarratorWindowSeconds force-assigns the narrator to captions starting
	// inside the initial window (cold-open convention).
	NarratorWindowSeconds float64
}

// DefaultOptions returns the repository default resolver settings.
func DefaultOptions() Options {
	return Options{NarratorWindowSeconds: 5.0}
}

// speakerBuffer is the remaining unmatched transcript text for one speaker,
// stored lowercased. Consumption is forward-only.
type speakerBuffer struct {
	remaining string
}

func (b *speakerBuffer) consume(caption string) {
	fragment := strings.ToLower(caption)
	anchor := fragment
	if runes := []rune(fragment); len(runes) > anchorPrefixChars {
		anchor = string(runes[:anchorPrefixChars])
	}

	if anchor != "" {
		if pos := strings.Index(b.remaining, anchor); pos >= 0 {
			cut := pos + len(fragment)
			if cut > len(b.remaining) {
				cut = len(b.remaining)
			}
			b.remaining = b.remaining[cut:]
			return
		}
	}

	skip := int(fallbackAdvanceFraction * float64(len(fragment)))
	if skip > len(b.remaining) {
		skip = len(b.remaining)
	}
	b.remaining = b.remaining[skip:]
}

// Resolver assigns speaker roles to captions by approximate alignment with a
// trusted transcript.
type Resolver struct {
	roles timeline.RoleSet
	opts  Options
}

// NewResolver builds a resolver for the configured speaker names.
func NewResolver(roles timeline.RoleSet, opts Options) *Resolver {
	return &Resolver{roles: roles, opts: opts}
}

// Resolve sets the Role of every caption in arrival order. Captions inside
// the narrator window are force-assigned to the narrator; the rest are
// matched against the host and guest buffers, falling back to alternation
// when neither buffer yields a score. Only the Role field is touched.
func (r *Resolver) Resolve(captions []timeline.Utterance, transcript []timeline.Utterance) {
	host := &speakerBuffer{remaining: joinSpeakerText(transcript, timeline.RoleHost)}
	guest := &speakerBuffer{remaining: joinSpeakerText(transcript, timeline.RoleGuest)}

	last := timeline.RoleHost
	for i := range captions {
		caption := &captions[i]
		if caption.Start < r.opts.NarratorWindowSeconds {
			caption.Role = timeline.RoleNarrator
			continue
		}

		role, matched := r.matchByName(caption.Text)
		if !matched {
			role, matched = matchByBuffer(caption.Text, host, guest)
		}
		if !matched {
			role = alternate(last)
		}

		caption.Role = role
		last = role
	}
}

// matchByName applies the cheap high-confidence shortcut: a caption that
// mentions exactly one speaker's name belongs to that speaker.
func (r *Resolver) matchByName(caption string) (timeline.Role, bool) {
	key := textutil.NormalizeKey(caption)
	hasHost := r.roles.HostKey() != "" && strings.Contains(key, r.roles.HostKey())
	hasGuest := r.roles.GuestKey() != "" && strings.Contains(key, r.roles.GuestKey())
	switch {
	case hasHost && !hasGuest:
		return timeline.RoleHost, true
	case hasGuest && !hasHost:
		return timeline.RoleGuest, true
	default:
		return timeline.RoleNarrator, false
	}
}

// matchByBuffer scores the caption against both buffers and consumes the
// winner past the matched text. Ties go to the host, mirroring stable
// first-key selection.
func matchByBuffer(caption string, host, guest *speakerBuffer) (timeline.Role, bool) {
	hostScore := textutil.MatchRatio(caption, host.remaining)
	guestScore := textutil.MatchRatio(caption, guest.remaining)
	if hostScore == 0 && guestScore == 0 {
		return timeline.RoleNarrator, false
	}
	if hostScore >= guestScore {
		host.consume(caption)
		return timeline.RoleHost, true
	}
	guest.consume(caption)
	return timeline.RoleGuest, true
}

func alternate(last timeline.Role) timeline.Role {
	if last == timeline.RoleHost {
		return timeline.RoleGuest
	}
	return timeline.RoleHost
}

// joinSpeakerText concatenates one speaker's transcript lines in order,
// lowercased for matching.
func joinSpeakerText(transcript []timeline.Utterance, role timeline.Role) string {
	var parts []string
	for _, u := range transcript {
		if u.Role == role && u.Text != "" {
			parts = append(parts, u.Text)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
