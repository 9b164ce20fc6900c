package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config) {
	serviceURL := fmt.Sprintf("http://%s:%d", config.Server.Host, config.Server.Port)

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 70
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		` .d8888b.  888                      888       .d8888b.  8888888b.  88888888888`,
		`d88P  Y88b 888                      888      d88P  Y88b 888   Y88b     888`,
		`Y88b.      888                      888      888    888 888    888     888`,
		` "Y888b.   888888  .d88b.   .d8888b 888  888 888        888   d88P     888`,
		`    "Y88b. 888    d88""88b d88P"    888 .88P 888  88888 8888888P"      888`,
		`      "888 888    888  888 888      888888K  888    888 888            888`,
		`Y88b  d88P Y88b.  Y88..88P Y88b.    888 "88b Y88b  d88P 888            888`,
		` "Y8888P"   "Y888  "Y88P"   "Y8888P 888  888  "Y8888P88 888            888`,
	}

	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n%s  AI Financial Analysis & PDF Reports%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)

	kvPad := 16
	kvLines := [][2]string{
		{"Version", GetVersion()},
		{"Build", Build},
		{"Commit", GitCommit},
		{"Environment", config.Environment},
		{"Service URL", serviceURL},
		{"Model", config.Gemini.Model},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "%s  %-*s %s%s\n", textColor, kvPad, kv[0], kv[1], banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n%s\n", hr)
}
