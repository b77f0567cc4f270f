package shape

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/skeleton/geom"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) SVG reader. It finds polygon, polyline
// and path elements and converts them into paths. Path data supports only the
// straight line commands M, L, H, V and Z, absolute or relative.

var ErrInvalidSVG = errors.New("invalid svg shape")

// Read every shape in an SVG document: polygons, then polylines, then paths.
func ParseSVG(r io.Reader) ([]*Path, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var paths []*Path
	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(name) {
			points, err := parsePoints(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s element", name)
			}
			if len(points) < 2 {
				return nil, errors.Wrapf(ErrInvalidSVG, "%s with %d points", name, len(points))
			}
			paths = append(paths, FromPoints(points, name == "polygon"))
		}
	}
	for _, el := range root.FindAll("path") {
		subpaths, err := parsePathData(el.Attributes["d"])
		if err != nil {
			return nil, errors.Wrap(err, "path element")
		}
		paths = append(paths, subpaths...)
	}
	return paths, nil
}

func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	numbers := make([]float64, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSVG, "bad number %q", field)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func parsePoints(s string) ([]geom.Vector2, error) {
	numbers, err := parseNumbers(s)
	if err != nil {
		return nil, err
	}
	if len(numbers)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidSVG, "odd number of coordinates in %q", s)
	}
	points := make([]geom.Vector2, 0, len(numbers)/2)
	for i := 0; i < len(numbers); i += 2 {
		points = append(points, geom.V(numbers[i], numbers[i+1]))
	}
	return points, nil
}

type pathCommand struct {
	letter rune
	args   []float64
}

// Split path data into commands and their arguments.
func tokenizePathData(d string) ([]pathCommand, error) {
	var commands []pathCommand
	start := -1
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		args, err := parseNumbers(separateSigns(d[start+1:end]))
		if err != nil {
			return err
		}
		commands = append(commands, pathCommand{rune(d[start]), args})
		return nil
	}
	for i, r := range d {
		if strings.ContainsRune("MmLlHhVvZz", r) {
			if err := flush(i); err != nil {
				return nil, err
			}
			start = i
		} else if unicode.IsLetter(r) && r != 'e' && r != 'E' {
			return nil, errors.Wrapf(ErrInvalidSVG, "unsupported path command %q", r)
		}
	}
	if err := flush(len(d)); err != nil {
		return nil, err
	}
	return commands, nil
}

// Path data may run numbers together, as in "1-2". Put a space before every
// minus sign that isn't part of an exponent.
func separateSigns(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r == '-' && i > 0 && s[i-1] != 'e' && s[i-1] != 'E' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func parsePathData(d string) ([]*Path, error) {
	commands, err := tokenizePathData(d)
	if err != nil {
		return nil, err
	}

	var (
		paths   []*Path
		points  []geom.Vector2
		current geom.Vector2
	)
	finish := func(closed bool) {
		if len(points) > 1 {
			paths = append(paths, FromPoints(points, closed))
		}
		points = nil
	}

	for _, command := range commands {
		relative := unicode.IsLower(command.letter)
		offset := geom.Vector2{}
		switch unicode.ToUpper(command.letter) {
		case 'M', 'L':
			if len(command.args)%2 != 0 {
				return nil, errors.Wrapf(ErrInvalidSVG, "odd arguments to %c", command.letter)
			}
			for i := 0; i < len(command.args); i += 2 {
				if relative {
					offset = current
				}
				// Extra pairs after a move are implicit line-tos.
				if i == 0 && unicode.ToUpper(command.letter) == 'M' {
					finish(false)
				}
				current = offset.Add(geom.V(command.args[i], command.args[i+1]))
				points = append(points, current)
			}
		case 'H':
			for _, x := range command.args {
				if relative {
					x += current.X
				}
				current = geom.V(x, current.Y)
				points = append(points, current)
			}
		case 'V':
			for _, y := range command.args {
				if relative {
					y += current.Y
				}
				current = geom.V(current.X, y)
				points = append(points, current)
			}
		case 'Z':
			if len(points) > 0 {
				current = points[0]
			}
			finish(true)
		}
	}
	finish(false)
	return paths, nil
}
