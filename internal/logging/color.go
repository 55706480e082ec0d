package logging

import (
	"fmt"
	"os"

	"github.com/taigrr/colorhash"
)

// Bright ANSI foreground codes 91-96. Six colors is enough to tell apart the
// handful of candidates a worker pool interleaves at once.
const colorCount = 6

var colorEnabled bool

func initColor(console bool) {
	colorEnabled = console && isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == ""
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Label returns name wrapped in a stable per-name ANSI color when console
// color output is active, so interleaved worker log lines for one candidate
// are visually traceable. The hash keeps the color deterministic across runs.
func Label(name string) string {
	if !colorEnabled {
		return name
	}
	code := 91 + colorhash.HashString(name)%colorCount
	return fmt.Sprintf("\033[1;%dm%s\033[0m", code, name)
}
