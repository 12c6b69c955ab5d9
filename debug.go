package journey

import (
	"fmt"
	"strings"
)

// FormatBrief renders every byte of brief as a single "hex | ascii" line,
// with non-printable bytes shown as '.' in the ASCII column, the way a hex
// dump utility would. It does not truncate; Load hands sinks at most
// briefLen bytes. It is meant for DebugSink
// implementations that want a human-readable summary of what Load visited.
func FormatBrief(brief []byte) string {
	if len(brief) == 0 {
		return ""
	}

	hexParts := make([]string, len(brief))
	ascii := make([]byte, len(brief))
	for i, b := range brief {
		hexParts[i] = fmt.Sprintf("%02x", b)
		if b >= 0x20 && b < 0x7f {
			ascii[i] = b
		} else {
			ascii[i] = '.'
		}
	}
	return fmt.Sprintf("%s | %s", strings.Join(hexParts, " "), ascii)
}
