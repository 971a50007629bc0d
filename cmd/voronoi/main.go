package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/osuushi/voronoi"
	"github.com/osuushi/voronoi/advanced"
	"github.com/osuushi/voronoi/render"
	"github.com/osuushi/voronoi/scatter"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the Voronoi generator. Seeds are either scattered over the area, or
// read from a file (or stdin, with "-") as newline separated points in the
// form "x y". In manual mode, one frame is written per pause in the
// construction, so the insertion of every seed can be followed.
var (
	app = kingpin.New("voronoi", "Generate a Voronoi diagram.")

	width     = app.Flag("width", "Width of the area.").Default("800").Int()
	height    = app.Flag("height", "Height of the area.").Default("600").Int()
	count     = app.Flag("count", "Number of seeds to scatter.").Default("100").Int()
	strategy  = app.Flag("scatter", "Scattering strategy.").Default("random").Enum(scatter.Names...)
	randSeed  = app.Flag("rand-seed", "Random seed for scattering. Defaults to the current time.").Int64()
	input     = app.Flag("input", `Read seeds from a file ("-" for stdin) instead of scattering them.`).String()
	format    = app.Flag("format", "Output format.").Default("png").Enum(formatNames()...)
	out       = app.Flag("out", "Output file. In manual mode, the prefix of the frame files.").Default("voronoi").String()
	stylePath = app.Flag("style", "YAML style file.").ExistingFile()
	manual    = app.Flag("manual", "Write a frame for every step of the construction.").Bool()
	check     = app.Flag("check", "Check the triangulation's adjacency once it is complete.").Bool()
	verbose   = app.Flag("verbose", "Log every step.").Short('v').Bool()
)

func formatNames() []string {
	names := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		names[i] = string(f)
	}
	return names
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(logger *zap.Logger) error {
	style := render.DefaultStyle()
	if *stylePath != "" {
		file, err := os.Open(*stylePath)
		if err != nil {
			return errors.Wrap(err, "opening style")
		}
		style, err = render.LoadStyle(file)
		file.Close()
		if err != nil {
			return err
		}
	}

	seeds, err := loadSeeds()
	if err != nil {
		return err
	}
	logger.Info("seeds ready", zap.Int("count", len(seeds)), zap.Int("width", *width), zap.Int("height", *height))

	s, err := advanced.NewStepper(seeds, float64(*width), float64(*height), advanced.WithLogger(logger))
	if err != nil {
		return err
	}

	f := render.Format(*format)
	if *manual {
		err = writeFrames(logger, s, seeds, f, style)
	} else {
		err = writeDiagram(logger, s, f, style)
	}
	if err != nil {
		return err
	}

	if *check {
		tr := s.Triangulation()
		if err := tr.Mesh().CheckAdjacency(); err != nil {
			return err
		}
		logger.Info("triangulation checked",
			zap.Int("triangles", len(tr.Mesh().Live())),
			zap.Int("components", len(tr.Mesh().Components())),
			zap.Int("empty_cavities", tr.EmptyCavities()),
		)
	}
	return nil
}

func loadSeeds() ([]voronoi.Point, error) {
	if *input != "" {
		var in io.Reader = os.Stdin
		if *input != "-" {
			file, err := os.Open(*input)
			if err != nil {
				return nil, errors.Wrap(err, "opening input")
			}
			defer file.Close()
			in = file
		}
		return scatter.ReadPoints(in)
	}

	seed := *randSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	scatterer, err := scatter.ByName(*strategy, seed)
	if err != nil {
		return nil, err
	}
	return scatterer.Scatter(*width, *height, *count)
}

func writeDiagram(logger *zap.Logger, s *advanced.Stepper, f render.Format, style render.Style) error {
	if err := s.Generate(); err != nil {
		return err
	}
	d, err := s.Diagram()
	if err != nil {
		return err
	}
	return writeOutput(logger, outputPath(f, -1), func(w io.Writer) error {
		return render.Diagram(w, f, style, d)
	})
}

func writeFrames(logger *zap.Logger, s *advanced.Stepper, seeds []voronoi.Point, f render.Format, style render.Style) error {
	for frame := 0; ; frame++ {
		done, err := s.Resume()
		if err != nil {
			return err
		}

		path := outputPath(f, frame)
		if done {
			d, err := s.Diagram()
			if err != nil {
				return err
			}
			return writeOutput(logger, path, func(w io.Writer) error {
				return render.Diagram(w, f, style, d)
			})
		}

		phase := s.PhaseData()
		err = writeOutput(logger, path, func(w io.Writer) error {
			return render.Phase(w, f, style, phase, seeds, float64(*width), float64(*height))
		})
		if err != nil {
			return err
		}
		logger.Debug("frame written", zap.Int("frame", frame), zap.Stringer("state", phase.State))
	}
}

// The terminal format writes to stdout, so it has no path. Frame -1 is the
// whole diagram.
func outputPath(f render.Format, frame int) string {
	if f == render.Terminal {
		return ""
	}
	name := strings.TrimSuffix(*out, "."+f.Extension())
	if frame >= 0 {
		name = fmt.Sprintf("%s-%03d", name, frame)
	}
	return name + "." + f.Extension()
}

func writeOutput(logger *zap.Logger, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	err = write(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	logger.Info("wrote", zap.String("path", path))
	return nil
}
