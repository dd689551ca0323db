package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/textbitmap"
)

func main() {
	// cli prints the error itself.
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "textbitmap"
	app.Usage = "A command-line tool for encoding images as plain-text grids of 0s and 1s."
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML `FILE` with defaults for the image command.",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log debug messages to stderr.",
		},
	}
	app.Before = func(c *cli.Context) error {
		level := slog.LevelInfo
		if c.GlobalBool("verbose") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	}
	app.Commands = []cli.Command{
		imageCommand(),
		fillCommand(),
		checkCommand(),
	}
	return app
}

func imageCommand() cli.Command {
	return cli.Command{
		Name:      "image",
		Usage:     "Threshold an image into a bitmap.",
		ArgsUsage: "[file|url]",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "threshold,t",
				Usage: "Pixels brighter than `THRESHOLD` (0-255) become 1. \"auto\" picks one with Otsu's method.",
				Value: fmt.Sprint(textbitmap.DefaultThreshold),
			},
			cli.BoolFlag{
				Name:  "dither,d",
				Usage: "Use Floyd-Steinberg dithering instead of a threshold.",
			},
			cli.BoolFlag{
				Name:  "invert,i",
				Usage: "Inverts the bitmap.",
			},
			cli.BoolFlag{
				Name:  "auto-orient",
				Usage: "Rotate the image as its EXIF orientation says before thresholding.",
			},
			cli.StringFlag{
				Name:  "fit,f",
				Usage: "`FIT` = 80,25 scales down the image to fit 80 pixels wide and 25 pixels high.",
			},
			cli.Float64Flag{
				Name:  "gamma,g",
				Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
				Value: 1.0,
			},
			cli.Float64Flag{
				Name:  "brightness,b",
				Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
			},
			cli.Float64Flag{
				Name:  "contrast,c",
				Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
			},
			cli.Float64Flag{
				Name:  "sharpen,s",
				Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
			},
			cli.Float64Flag{
				Name:  "sigmoid-midpoint",
				Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
				Value: 0.5,
			},
			cli.Float64Flag{
				Name:  "sigmoid-factor",
				Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
			},
			cli.StringFlag{
				Name:  "output,o",
				Usage: "Write the bitmap to `FILE`.",
			},
			cli.StringFlag{
				Name:  "dir",
				Usage: "Write the bitmap to `DIR`/<image name>.txt when no output file is given.",
			},
			cli.BoolFlag{
				Name:  "stdout",
				Usage: "Write the bitmap to stdout, even if an output file is given.",
			},
			cli.BoolFlag{
				Name:  "final-newline",
				Usage: "End the bitmap with a line feed.",
			},
		},
		Action: runImage,
	}
}

func fillCommand() cli.Command {
	return cli.Command{
		Name:  "fill",
		Usage: "Generate a bitmap where every cell has the same value.",
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "rows,r",
				Usage: "Number of `ROWS`.",
				Value: 16000,
			},
			cli.IntFlag{
				Name:  "cols,c",
				Usage: "Number of `COLS` in each row.",
				Value: 16000,
			},
			cli.IntFlag{
				Name:  "value",
				Usage: "Cell `VALUE`, 0 or 1.",
				Value: 1,
			},
			cli.StringFlag{
				Name:  "output,o",
				Usage: "Write the bitmap to `FILE`.",
				Value: "gen_full_ones_16k.txt",
			},
			cli.BoolFlag{
				Name:  "stdout",
				Usage: "Write the bitmap to stdout, even if an output file is given.",
			},
			cli.BoolFlag{
				Name:  "final-newline",
				Usage: "End the bitmap with a line feed.",
			},
		},
		Action: runFill,
	}
}

func checkCommand() cli.Command {
	return cli.Command{
		Name:      "check",
		Usage:     "Verify that bitmap files match their own headers.",
		ArgsUsage: "FILE...",
		Action:    runCheck,
	}
}

func runImage(c *cli.Context) error {
	cfg, err := loadConfig(c.GlobalString("config"))
	if err != nil {
		return err
	}

	adj := cfg.Adjust
	if c.IsSet("auto-orient") {
		adj.AutoOrient = c.Bool("auto-orient")
	}
	if c.IsSet("fit") {
		if adj.FitCols, adj.FitRows, err = parseFit(c.String("fit")); err != nil {
			return err
		}
	}
	if c.IsSet("gamma") {
		adj.Gamma = c.Float64("gamma")
	}
	if c.IsSet("brightness") {
		adj.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		adj.Contrast = c.Float64("contrast")
	}
	if c.IsSet("sharpen") {
		adj.Sharpen = c.Float64("sharpen")
	}
	if c.IsSet("sigmoid-midpoint") || c.IsSet("sigmoid-factor") {
		adj.SigmoidMidpoint = c.Float64("sigmoid-midpoint")
		adj.SigmoidFactor = c.Float64("sigmoid-factor")
	}

	input := c.Args().First()
	img, err := readImage(input, adj)
	if err != nil {
		return err
	}
	slog.Debug("decoded image", "input", input, "bounds", img.Bounds())

	var bitmap textbitmap.Bitmap
	if c.Bool("dither") || (!c.IsSet("dither") && cfg.Dither) {
		if bitmap, err = textbitmap.Dither(img); err != nil {
			return err
		}
		slog.Debug("dithered image")
	} else {
		grid, err := textbitmap.GridFromImage(img)
		if err != nil {
			return err
		}
		arg := c.String("threshold")
		if !c.IsSet("threshold") && cfg.Threshold != "" {
			arg = cfg.Threshold
		}
		threshold, auto, err := parseThreshold(arg)
		if err != nil {
			return err
		}
		if auto {
			threshold = textbitmap.OtsuThreshold(grid)
		}
		slog.Debug("thresholding image", "threshold", threshold, "auto", auto)
		if bitmap, err = textbitmap.Threshold(grid, threshold); err != nil {
			return err
		}
	}
	if c.Bool("invert") || (!c.IsSet("invert") && cfg.Invert) {
		bitmap = textbitmap.Invert(bitmap)
	}

	var opts []textbitmap.EncoderOpt
	if c.Bool("final-newline") || (!c.IsSet("final-newline") && cfg.FinalNewline) {
		opts = append(opts, textbitmap.WithFinalNewline())
	}

	output := c.String("output")
	switch {
	case c.Bool("stdout"):
		output = ""
	case output == "" && input != "" && input != "-":
		dir := cfg.Dir
		if c.IsSet("dir") {
			dir = c.String("dir")
		}
		output = textbitmap.OutputPath(inputName(input), dir)
	}
	return writeBitmap(output, bitmap, opts...)
}

func runFill(c *cli.Context) error {
	value := c.Int("value")
	if value < 0 || value > 1 {
		return fmt.Errorf("%d: %w", value, textbitmap.ErrInvalidFill)
	}
	bitmap, err := textbitmap.Constant(c.Int("rows"), c.Int("cols"), byte(value))
	if err != nil {
		return err
	}

	var opts []textbitmap.EncoderOpt
	if c.Bool("final-newline") {
		opts = append(opts, textbitmap.WithFinalNewline())
	}
	output := c.String("output")
	if c.Bool("stdout") {
		output = ""
	}
	return writeBitmap(output, bitmap, opts...)
}

func runCheck(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("check needs at least one file")
	}
	var failed int
	for _, name := range c.Args() {
		h, err := checkFile(name)
		switch {
		case errors.Is(err, textbitmap.ErrMalformed):
			slog.Error("bitmap is malformed", "file", name, "err", err)
			failed++
			continue
		case err != nil:
			slog.Error("cannot read bitmap", "file", name, "err", err)
			failed++
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s: %s\n", name, h)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d bitmaps failed the check", failed, c.NArg())
	}
	return nil
}

func checkFile(name string) (textbitmap.Header, error) {
	f, err := os.Open(name)
	if err != nil {
		return textbitmap.Header{}, err
	}
	defer f.Close()
	return textbitmap.Check(f)
}

// readImage decodes input as a file, falling back to a url. An empty input
// or "-" reads stdin.
func readImage(input string, adj textbitmap.Adjustments) (image.Image, error) {
	if input == "" || input == "-" {
		return textbitmap.DecodeImage(os.Stdin, adj)
	}
	if _, err := os.Stat(input); err == nil || !isURL(input) {
		return textbitmap.OpenImage(input, adj)
	}

	resp, err := http.Get(input)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, textbitmap.ErrDecode)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s: %w", input, resp.Status, textbitmap.ErrDecode)
	}
	return textbitmap.DecodeImage(resp.Body, adj)
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// inputName is the file name part of a path or url.
func inputName(input string) string {
	if isURL(input) {
		u, _ := url.Parse(input)
		return path.Base(u.Path)
	}
	return input
}

// writeBitmap writes to output, or to stdout when output is empty.
func writeBitmap(output string, bitmap textbitmap.Bitmap, opts ...textbitmap.EncoderOpt) error {
	rows, cols := bitmap.Dims()
	if output == "" {
		slog.Debug("writing bitmap", "rows", rows, "cols", cols, "to", "stdout")
		return textbitmap.NewEncoder(stdout, opts...).Encode(bitmap)
	}
	if err := textbitmap.WriteFile(output, bitmap, opts...); err != nil {
		return err
	}
	slog.Info("wrote bitmap", "rows", rows, "cols", cols, "file", strings.TrimPrefix(output, "./"))
	return nil
}

var stdout io.Writer = os.Stdout
