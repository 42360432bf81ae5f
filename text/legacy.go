package text

import (
	"strings"
)

// LegacyChar is the formatting prefix used in raw menu definition strings.
const LegacyChar = '&'

var codeToColor = map[byte]Color{
	'0': ColorBlack,
	'1': ColorDarkBlue,
	'2': ColorDarkGreen,
	'3': ColorDarkAqua,
	'4': ColorDarkRed,
	'5': ColorDarkPurple,
	'6': ColorGold,
	'7': ColorGray,
	'8': ColorDarkGray,
	'9': ColorBlue,
	'a': ColorGreen,
	'b': ColorAqua,
	'c': ColorRed,
	'd': ColorLightPurple,
	'e': ColorYellow,
	'f': ColorWhite,
}

var colorToCode = func() map[Color]byte {
	m := make(map[Color]byte, len(codeToColor))
	for code, color := range codeToColor {
		m[color] = code
	}
	return m
}()

// DeserializeLegacy parses an ampersand-formatted string into a component.
// Color codes implicitly reset decorations, "&r" resets everything, and
// "&#rrggbb" selects a hex color. Sequences that are not valid codes are kept
// as literal text, so the function is total.
func DeserializeLegacy(s string) Component {
	var (
		segments []Component
		current  Component
		buf      strings.Builder
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		seg := current
		seg.Text = buf.String()
		segments = append(segments, seg)
		buf.Reset()
	}

	for i := 0; i < len(s); i++ {
		if s[i] != LegacyChar || i+1 >= len(s) {
			buf.WriteByte(s[i])
			continue
		}

		code := lower(s[i+1])
		switch {
		case code == '#' && i+7 < len(s) && isHex(s[i+2:i+8]):
			flush()
			current = Component{Color: Color("#" + strings.ToLower(s[i+2:i+8]))}
			i += 7
		case codeToColor[code] != "":
			flush()
			current = Component{Color: codeToColor[code]}
			i++
		case code == 'r':
			flush()
			current = Component{}
			i++
		case code == 'k':
			flush()
			current.Obfuscated = true
			i++
		case code == 'l':
			flush()
			current.Bold = true
			i++
		case code == 'm':
			flush()
			current.Strikethrough = true
			i++
		case code == 'n':
			flush()
			current.Underlined = true
			i++
		case code == 'o':
			flush()
			current.Italic = true
			i++
		default:
			buf.WriteByte(s[i])
		}
	}
	flush()

	if len(segments) == 1 {
		return segments[0]
	}
	return Component{Extra: segments}
}

// SerializeLegacy renders a component back into ampersand form. Each styled
// segment starts with its color code (or "&r" when it drops styling without
// declaring a color), followed by its decoration codes.
func SerializeLegacy(c Component) string {
	var sb strings.Builder
	writeLegacy(&sb, c, false)
	return sb.String()
}

func writeLegacy(sb *strings.Builder, c Component, styledBefore bool) bool {
	if c.Text != "" {
		switch {
		case c.Color != "":
			writeColor(sb, c.Color)
		case styledBefore:
			sb.WriteByte(LegacyChar)
			sb.WriteByte('r')
		}
		if c.Obfuscated {
			writeCode(sb, 'k')
		}
		if c.Bold {
			writeCode(sb, 'l')
		}
		if c.Strikethrough {
			writeCode(sb, 'm')
		}
		if c.Underlined {
			writeCode(sb, 'n')
		}
		if c.Italic {
			writeCode(sb, 'o')
		}
		sb.WriteString(c.Text)
		styledBefore = c.styled()
	}
	for _, child := range c.Extra {
		styledBefore = writeLegacy(sb, child, styledBefore)
	}
	return styledBefore
}

func writeColor(sb *strings.Builder, color Color) {
	if code, ok := colorToCode[color]; ok {
		sb.WriteByte(LegacyChar)
		sb.WriteByte(code)
		return
	}
	// Hex colors carry their own '#'.
	sb.WriteByte(LegacyChar)
	sb.WriteString(string(color))
}

func writeCode(sb *strings.Builder, code byte) {
	sb.WriteByte(LegacyChar)
	sb.WriteByte(code)
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := lower(s[i])
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
