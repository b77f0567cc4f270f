package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/skeleton"
	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/shape"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Computes the straight skeleton of a path. Input on stdin is either newline
// separated points in the form "x y", or an SVG document with --svg. Points
// describe a closed polygon unless --open is given.
var (
	limit     = kingpin.Flag("limit", "Distance to propagate to; inf runs closed paths to completion.").Default("inf").Float64()
	capWeight = kingpin.Flag("cap-weight", "Trim the end caps of open paths, between 0 and 1.").Float64()
	config    = kingpin.Flag("config", "YAML options file.").ExistingFile()
	svg       = kingpin.Flag("svg", "Read an SVG document instead of points.").Bool()
	open      = kingpin.Flag("open", "Points describe an open path.").Bool()
	png       = kingpin.Flag("png", "Also draw the result to this PNG file.").String()
	scale     = kingpin.Flag("scale", "Pixels per unit for --png.").Default("100").Float64()
	format    = kingpin.Flag("format", "Output format.").Default("text").Enum("text", "svg")
	verbose   = kingpin.Flag("verbose", "Log every event to stderr.").Short('v').Bool()
)

func main() {
	kingpin.Parse()
	if *verbose {
		skeleton.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts, err := loadOptions()
	if err != nil {
		log.Fatal(err)
	}

	paths, err := readPaths(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	if *format == "svg" {
		fmt.Fprintln(out, `<svg xmlns="http://www.w3.org/2000/svg">`)
	}
	for i, path := range paths {
		s, err := skeleton.New(path, *limit, opts)
		if err != nil {
			log.Fatalf("Path %d: %+v", i, err)
		}
		if *format == "svg" {
			writeSVG(out, s)
		} else {
			writeText(out, s)
		}
		if *png != "" {
			filename := *png
			if len(paths) > 1 {
				filename = fmt.Sprintf("%s.%d.png", strings.TrimSuffix(filename, ".png"), i)
			}
			if err := s.SavePNG(filename, *scale); err != nil {
				log.Fatal(err)
			}
		}
	}
	if *format == "svg" {
		fmt.Fprintln(out, `</svg>`)
	}
}

// Options from the config file, with flags taking precedence.
func loadOptions() (skeleton.Options, error) {
	var opts skeleton.Options
	if *config != "" {
		file, err := os.Open(*config)
		if err != nil {
			return opts, errors.Wrap(err, "opening config")
		}
		defer file.Close()
		if opts, err = skeleton.LoadOptions(file); err != nil {
			return opts, err
		}
	}
	if *capWeight != 0 {
		opts.CapWeight = capWeight
	}
	return opts, nil
}

func readPaths(in io.Reader) ([]*shape.Path, error) {
	if *svg {
		return shape.ParseSVG(in)
	}

	paths := []*shape.Path{}
	points := []geom.Vector2{}
	flush := func() {
		if len(points) > 0 {
			paths = append(paths, shape.FromPoints(points, !*open))
			points = []geom.Vector2{}
		}
	}

	// A blank line ends a path
	scanner := bufio.NewScanner(in)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	flush()
	return paths, errors.Wrap(scanner.Err(), "reading points")
}

func parsePoint(line string) (geom.Vector2, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Vector2{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Vector2{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Vector2{}, errors.Wrap(err, "y")
	}
	return geom.V(x, y), nil
}

func writeText(w io.Writer, s *skeleton.Skeleton) {
	for _, spoke := range s.Spokes {
		fmt.Fprintf(w, "spoke %g %g %g %g %g %g\n",
			spoke.Start.X, spoke.Start.Y, spoke.Start.Z, spoke.End.X, spoke.End.Y, spoke.End.Z)
	}
	for _, wave := range s.Waves {
		fmt.Fprintf(w, "wave %v", wave.Side)
		for _, point := range wave.Path.Points() {
			fmt.Fprintf(w, " %g,%g", point.X, point.Y)
		}
		fmt.Fprintln(w)
	}
}

func writeSVG(w io.Writer, s *skeleton.Skeleton) {
	for _, spoke := range s.Spokes {
		fmt.Fprintf(w, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="purple" />`+"\n",
			spoke.Start.X, spoke.Start.Y, spoke.End.X, spoke.End.Y)
	}
	for _, wave := range s.Waves {
		element := "polyline"
		if wave.Path.IsClosed() {
			element = "polygon"
		}
		var points []string
		for _, point := range wave.Path.Points() {
			points = append(points, fmt.Sprintf("%g,%g", point.X, point.Y))
		}
		fmt.Fprintf(w, `  <%s class="%v" points="%s" fill="none" stroke="green" />`+"\n",
			element, wave.Side, strings.Join(points, " "))
	}
}
