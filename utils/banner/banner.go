package banner

import (
	"fmt"
	"os"
	"strings"

	"github.com/thirukguru/aws-netdoc/utils/ansi"
	"github.com/thirukguru/aws-netdoc/utils/console"
	"golang.org/x/term"
)

const bannerColorEnv = "AWS_NETDOC_BANNER_COLOR"

// 24-bit foreground escapes by name; AmazonOrange is the default.
var bannerColors = map[string]string{
	"AmazonOrange": "\x1b[38;2;255;153;0m",
	"IntelBlue":    "\x1b[38;2;0;113;197m",
	"SpotifyGreen": "\x1b[38;2;30;215;96m",
	"TwitchPurple": "\x1b[38;2;145;70;255m",
	"NetflixRed":   "\x1b[38;2;229;9;20m",
}

const bannerColorDefault = "AmazonOrange"

var titleLines = []string{
	" █████╗  ██╗    ██╗ ███████╗        ███╗   ██╗ ███████╗ ████████╗ ██████╗   ██████╗   ██████╗",
	"██╔══██╗ ██║    ██║ ██╔════╝        ████╗  ██║ ██╔════╝ ╚══██╔══╝ ██╔══██╗ ██╔═══██╗ ██╔════╝",
	"███████║ ██║ █╗ ██║ ███████╗ █████╗ ██╔██╗ ██║ █████╗      ██║    ██║  ██║ ██║   ██║ ██║     ",
	"██╔══██║ ██║███╗██║ ╚════██║ ╚════╝ ██║╚██╗██║ ██╔══╝      ██║    ██║  ██║ ██║   ██║ ██║     ",
	"██║  ██║ ╚███╔███╔╝ ███████║        ██║ ╚████║ ███████╗    ██║    ██████╔╝ ╚██████╔╝ ╚██████╗",
	"╚═╝  ╚═╝  ╚══╝╚══╝  ╚══════╝        ╚═╝  ╚═══╝ ╚══════╝    ╚═╝    ╚═════╝   ╚═════╝   ╚═════╝",
}

func printCenteredLines(lines []string, width int) {
	for _, line := range lines {
		pad := 0

		if width > len(line) {
			pad = (width - len(line)) / 2
		}

		if pad > 0 {
			fmt.Print(strings.Repeat(" ", pad))
		}

		fmt.Println(line)
	}
}

func bannerColor() string {
	raw := strings.TrimSpace(os.Getenv(bannerColorEnv))
	if raw != "" {
		for name, escape := range bannerColors {
			if strings.EqualFold(raw, name) {
				return escape
			}
		}
	}

	if console.IsBlueBackground() {
		return bannerColors["SpotifyGreen"]
	}

	return bannerColors[bannerColorDefault]
}

// DrawBannerTitle prints the application title banner to stdout.
func DrawBannerTitle() {
	ansi.EnableANSI()

	width := 80

	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	fmt.Print(bannerColor())
	printCenteredLines(titleLines, width)
	fmt.Print("\x1b[0m")
}
