package timeline

// Role identifies one voice of the closed speaker set.
type Role string

const (
	// RoleNarrator covers cold opens and any label that cannot be resolved
	// to a configured speaker.
	RoleNarrator Role = "narrator"
	RoleHost     Role = "host"
	RoleGuest    Role = "guest"
)

// Utterance is one speaker's continuous spoken segment. Start and End are
// seconds from the beginning of the episode; they are zero until either a
// measured duration is attached or the synthesizer fills them in.
type Utterance struct {
	Role  Role
	Text  string
	Start float64
	End   float64
}

// Timed reports whether the utterance carries usable timing.
func (u Utterance) Timed() bool {
	return u.Start >= 0 && u.End > u.Start
}

// Duration returns the utterance's time span in seconds, or 0 when untimed.
func (u Utterance) Duration() float64 {
	if !u.Timed() {
		return 0
	}
	return u.End - u.Start
}
