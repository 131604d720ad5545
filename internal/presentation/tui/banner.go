package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"   ___                  _   ", "#818cf8"},
	{"  / _ \\ _   _  ___  ___| |_ ", "#a78bfa"},
	{" | | | | | | |/ _ \\/ __| __|", "#c084fc"},
	{" | |_| | |_| |  __/\\__ \\ |_ ", "#f472b6"},
	{"  \\__\\_\\\\__,_|\\___||___/\\__|", "#fb7185"},
}

// PrintBanner writes the Quest ASCII banner with a gradient.
func PrintBanner(w io.Writer) {
	p := termenv.EnvColorProfile()

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w)
}
