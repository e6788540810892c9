package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/export"
	"github.com/vovakirdan/tui-sketch/internal/geom"
	"github.com/vovakirdan/tui-sketch/internal/sketch"
)

var (
	flagCircle     string
	flagSegment    string
	flagOutput     string
	flagSize       int
	flagExportConf string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a circle and segment to PNG",
	Long: `Draw a circle and a line segment without a terminal UI, print the
labels the intersect demo would show, and write the drawing as a PNG.

Coordinates are normalized: the canvas spans -1 to 1 on both axes.

Examples:
  sketch export --circle 0,0,1 --segment -2,0,2,0 -o chord.png
  sketch export --circle 0.2,0.1,0.5 --segment -1,0.6,1,0.6 -o tangent.png --size 400`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagCircle, "circle", "", "Circle as cx,cy,r")
	exportCmd.Flags().StringVar(&flagSegment, "segment", "", "Segment as x0,y0,x1,y1")
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "sketch.png", "Output PNG path")
	exportCmd.Flags().IntVar(&flagSize, "size", export.DefaultSize, "Image side in pixels")
	exportCmd.Flags().StringVar(&flagExportConf, "config", "", "Path to custom intersect config YAML")
	exportCmd.MarkFlagRequired("circle")
	exportCmd.MarkFlagRequired("segment")
}

// labelWriter prints each non-empty overlay label on its own line.
type labelWriter struct {
	w io.Writer
}

func (l labelWriter) Show(label string, _ int) {
	if label != "" {
		fmt.Fprintln(l.w, label)
	}
}

func runExport(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger("sketch")
	if err != nil {
		return err
	}

	export.SetLogger(slog.New(logger))
	defer export.SetLogger(nil)

	c, err := parseFloats(flagCircle, 3)
	if err != nil {
		return fmt.Errorf("--circle: %w", err)
	}
	if c[2] < 0 {
		return fmt.Errorf("--circle: radius must not be negative, got %v", c[2])
	}
	s, err := parseFloats(flagSegment, 4)
	if err != nil {
		return fmt.Errorf("--segment: %w", err)
	}

	cfg, err := config.LoadIntersect(flagExportConf)
	if err != nil {
		logger.Warn("using default intersect config", "error", err)
	}

	opts := export.DefaultOptions()
	opts.CircleSegments = cfg.CircleSegments
	opts.AxesLength = cfg.AxesLength
	if !cfg.ShowAxes {
		opts.AxesLength = 0
	}

	r := export.NewPNGRenderer(flagSize, opts)
	defer r.Close()

	m := sketch.NewMachine(r, labelWriter{w: cmd.OutOrStdout()})
	export.Replay(m, export.Gestures{
		Circle:  geom.Circle{Center: geom.Pt(c[0], c[1]), Radius: c[2]},
		Segment: geom.Segment{P0: geom.Pt(s[0], s[1]), P1: geom.Pt(s[2], s[3])},
	})

	if err := r.Save(flagOutput); err != nil {
		return err
	}
	logger.Info("png written", "path", flagOutput, "size", flagSize)
	return nil
}

// parseFloats parses exactly n comma-separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}

	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
