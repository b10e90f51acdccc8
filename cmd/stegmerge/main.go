package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/stegmerge"
	"github.com/bodgit/stegmerge/sample"
	"github.com/bodgit/stegmerge/spinner"
	"github.com/urfave/cli/v2"
)

const defaultSampleDir = "img"

// Exit codes, one per error kind
const (
	exitUnexpected   = 1
	exitFileNotFound = 2
	exitValue        = 3
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func exitError(err error) error {
	switch stegmerge.KindOf(err) {
	case stegmerge.KindFileNotFound:
		path, _ := stegmerge.MissingPath(err)
		return cli.NewExitError(fmt.Sprintf("File not found: %s", path), exitFileNotFound)
	case stegmerge.KindValue:
		return cli.NewExitError(fmt.Sprintf("Value error: %v", err), exitValue)
	default:
		return cli.NewExitError(fmt.Sprintf("An unexpected error occurred: %v", err), exitUnexpected)
	}
}

// handleExitError prints the message of an exit error to standard output,
// as the messages are part of the normal output, and exits with its code.
func handleExitError(c *cli.Context, err error) {
	ec, ok := err.(cli.ExitCoder)
	if !ok {
		return
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(c.App.Writer, msg)
	}
	cli.OsExiter(ec.ExitCode())
}

func newStegMerge(c *cli.Context) *stegmerge.StegMerge {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}

	var progress stegmerge.Progress
	if !c.Bool("quiet") {
		progress = spinner.New(c.App.Writer)
	}

	return stegmerge.New(logger, progress)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()

	app.Name = "stegmerge"
	app.Usage = "Hide an image inside another image"
	app.Version = "1.0.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.ExitErrHandler = handleExitError

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"STEGMERGE_VERBOSE"},
			Usage:   "increase verbosity",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			EnvVars: []string{"STEGMERGE_QUIET"},
			Usage:   "do not show progress",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "merge",
			Usage:       "Merge one image into another",
			Description: "The image to hide must be smaller than or equal to the base image in both dimensions.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "image1",
					Usage:    "path to the base image",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "image2",
					Usage:    "path to the image to be hidden",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "output",
					Usage:    "path to save the merged image",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				s := newStegMerge(c)

				if err := s.MergeFiles(c.String("image1"), c.String("image2"), c.String("output")); err != nil {
					return exitError(err)
				}
				fmt.Fprintf(c.App.Writer, "Image merged and saved as '%s'\n", c.String("output"))

				return nil
			},
		},
		{
			Name:        "unmerge",
			Usage:       "Extract hidden image from a merged image",
			Description: "The whole image is extracted unless the size of the hidden image is given.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "image",
					Usage:    "path to the merged image",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "output",
					Usage:    "path to save the extracted image",
					Required: true,
				},
				&cli.IntFlag{
					Name:  "width",
					Usage: "width of the hidden image, 0 for the full width",
				},
				&cli.IntFlag{
					Name:  "height",
					Usage: "height of the hidden image, 0 for the full height",
				},
			},
			Action: func(c *cli.Context) error {
				s := newStegMerge(c)

				opts := stegmerge.UnmergeOptions{
					Width:  c.Int("width"),
					Height: c.Int("height"),
				}
				if err := s.UnmergeFiles(c.String("image"), c.String("output"), opts); err != nil {
					return exitError(err)
				}
				fmt.Fprintf(c.App.Writer, "Hidden image extracted and saved as '%s'\n", c.String("output"))

				return nil
			},
		},
		{
			Name:  "generate",
			Usage: "Generate sample images to merge",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "dir",
					Value: defaultSampleDir,
					Usage: "directory to write the images to",
				},
				&cli.BoolFlag{
					Name:  "paletted",
					Usage: "also write a paletted copy of the image to hide",
				},
			},
			Action: func(c *cli.Context) error {
				if err := os.MkdirAll(c.String("dir"), 0777); err != nil {
					return exitError(err)
				}

				files, err := sample.Generate(c.String("dir"), c.Bool("paletted"))
				if err != nil {
					return exitError(err)
				}
				for _, file := range files {
					fmt.Fprintf(c.App.Writer, "%s ✅\n", file)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	app := newApp(os.Stdout, os.Stderr)

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
