package subtitles

import (
	"fmt"
	"strings"

	"subcast/internal/timeline"
)

// assColorWhite is the styled format's default primary colour.
const assColorWhite = "&H00FFFFFF"

// StyleSpec maps speaker roles to the visual presentation used by the styled
// serializer. Every role resolves to a named style; unrecognized roles fall
// back to the Base style.
type StyleSpec struct {
	Font       string
	FontSize   int
	MarginV    int
	MarginLR   int
	Outline    float64
	Shadow     float64
	HostColor  string
	GuestColor string
	UseColors  bool
}

// DefaultStyleSpec returns the repository default presentation.
func DefaultStyleSpec() StyleSpec {
	return StyleSpec{
		Font:       "Arial",
		FontSize:   64,
		MarginV:    70,
		MarginLR:   200,
		Outline:    2.0,
		Shadow:     1.0,
		HostColor:  "#2EA8E6",
		GuestColor: "#FFD23F",
		UseColors:  true,
	}
}

// StyleName returns the named style for a role. Colour-less rendering routes
// every event through Base.
func (s StyleSpec) StyleName(role timeline.Role) string {
	if !s.UseColors {
		return "Base"
	}
	switch role {
	case timeline.RoleHost:
		return "Host"
	case timeline.RoleGuest:
		return "Guest"
	default:
		return "Base"
	}
}

// primaryColor returns the ASS primary colour for a named style.
func (s StyleSpec) primaryColor(name string) string {
	if !s.UseColors {
		return assColorWhite
	}
	switch name {
	case "Host":
		return hexToASSColor(s.HostColor)
	case "Guest":
		return hexToASSColor(s.GuestColor)
	default:
		return assColorWhite
	}
}

// hexToASSColor converts #RRGGBB (or #RGB) to the styled format's
// &H00BBGGRR notation. Unparsable values fall back to white.
func hexToASSColor(hex string) string {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = strings.Repeat(string(h[0]), 2) + strings.Repeat(string(h[1]), 2) + strings.Repeat(string(h[2]), 2)
	}
	if len(h) != 6 {
		return assColorWhite
	}
	var r, g, b int
	if _, err := fmt.Sscanf(strings.ToUpper(h), "%02X%02X%02X", &r, &g, &b); err != nil {
		return assColorWhite
	}
	return fmt.Sprintf("&H00%02X%02X%02X", b, g, r)
}
