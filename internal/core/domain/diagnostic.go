package domain

import "strings"

// ClassifyLine returns the severity of a compiler output line, or ok=false for ordinary lines.
// Cargo prints diagnostics as "error: ..." or "error[E0308]: ..." and "warning: ...".
func ClassifyLine(line string) (Severity, bool) {
	line = strings.TrimSpace(stripANSI(line))
	switch {
	case strings.HasPrefix(line, "error:"), strings.HasPrefix(line, "error["):
		return SeverityError, true
	case strings.HasPrefix(line, "warning:"), strings.HasPrefix(line, "warning["):
		return SeverityWarning, true
	default:
		return "", false
	}
}

// stripANSI removes CSI escape sequences so colored PTY output can be classified.
func stripANSI(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
