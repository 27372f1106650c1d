package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"                 _            _        ",
	"  _ __ ___  __| |_   _  ___| |_ ___  ",
	" | '__/ _ \\/ _` | | | |/ __| __/ _ \\ ",
	" | | |  __/ (_| | |_| | (__| || (_) |",
	" |_|  \\___|\\__,_|\\__,_|\\___|\\__\\___/ ",
}

// Using a subtle gradient-like color scheme (Indigo/Violet)
var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

// PrintBanner writes the reducto banner and version to w.
// Colors are dropped when w is not a terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, out.String(line).Foreground(out.Color(bannerColors[i])))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, out.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
