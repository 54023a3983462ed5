package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"yiq/yiq"
)

const usage = `Usage: yiqdist <color> <color>
Colors are hex triplets, with or without a leading '#'.
Examples:
	yiqdist '#ff4500' '#ff5700'
	yiqdist fff 000`

func main() {
	if len(os.Args) != 3 {
		printUsage()
		return
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	a := parseOrExit(logger, os.Args[1])
	b := parseOrExit(logger, os.Args[2])

	fmt.Print(report(a, b))
}

func printUsage() {
	fmt.Println(usage)
}

func parseOrExit(logger *zap.Logger, s string) yiq.YIQ {
	c, err := parseColor(s)
	if err != nil {
		logger.Fatal("Could not parse the color", zap.String("input", s), zap.Error(err))
	}
	return c
}

func parseColor(s string) (yiq.YIQ, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return yiq.YIQ{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return yiq.FromRGB([3]uint8{r, g, b}), nil
}

func report(a, b yiq.YIQ) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "a:        %v\n", a)
	fmt.Fprintf(&sb, "b:        %v\n", b)
	fmt.Fprintf(&sb, "squared:  %g\n", a.SquaredDistance(b))
	fmt.Fprintf(&sb, "distance: %g\n", a.SquareRootDistance(b))
	return sb.String()
}
