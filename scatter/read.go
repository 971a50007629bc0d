package scatter

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/voronoi"
	"github.com/pkg/errors"
)

// Read seeds from newline separated points in the form "x y". Blank lines and
// lines starting with # are skipped.
func ReadPoints(in io.Reader) ([]voronoi.Point, error) {
	var points []voronoi.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (voronoi.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return voronoi.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return voronoi.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return voronoi.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return voronoi.Point{X: x, Y: y}, nil
}
