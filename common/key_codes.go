package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyH     = 72 // H key (ASCII)
	KeyM     = 77 // M key (ASCII)
	KeyO     = 79 // O key (ASCII)
	KeyR     = 82 // R key (ASCII)
	KeySpace = 32 // Spacebar (ASCII)
	KeyEqual = 61 // = and + share a key on US layouts (ASCII)
	KeyMinus = 45 // - and _ share a key on US layouts (ASCII)
	KeyPlus  = 43 // + as a character, delivered by terminal hosts (ASCII)
	KeyUnder = 95 // _ as a character, delivered by terminal hosts (ASCII)
)

// Navigation and editing keys (GLFW)
const (
	KeyEsc        = 256
	KeyEnter      = 257
	KeyBackspace  = 259
	KeyRight      = 262
	KeyLeft       = 263
	KeyDown       = 264
	KeyUp         = 265
	KeyPageUp     = 266
	KeyPageDown   = 267
	KeyHome       = 268
	KeyEnd        = 269
	KeyKPSubtract = 333
	KeyKPAdd      = 334
)

// Lowercase letters arrive from terminal hosts as runes; GLFW always reports uppercase.
const asciiCaseOffset = 'a' - 'A'

// NormalizeKey folds lowercase ASCII letters onto their GLFW key codes so
// that controllers only compare against the constants above.
//
// Parameters:
//   - code: a GLFW key code or an ASCII rune value
//
// Returns:
//   - uint32: the canonical key code
func NormalizeKey(code uint32) uint32 {
	if code >= 'a' && code <= 'z' {
		return code - asciiCaseOffset
	}
	return code
}
