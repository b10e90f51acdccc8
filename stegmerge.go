/*
Package stegmerge hides one RGB image inside another by replacing the lower
four bits of every channel of the carrier with the upper four bits of the
hidden image, and recovers it again.

The recovered image is lossy, only the upper four bits of each channel of
the hidden image are carried across.
*/
package stegmerge

import (
	"fmt"
	"image"
	"io/ioutil"
	"log"
)

// Progress is notified when a potentially slow transform starts.
type Progress interface {
	Start(message string) Task
}

// Task is returned by Progress.Start and must be finished with Done.
type Task interface {
	Done(err error)
}

type nopProgress struct{}

func (nopProgress) Start(string) Task { return nopProgress{} }

func (nopProgress) Done(error) {}

// StegMerge validates inputs, runs the transforms and writes the results.
type StegMerge struct {
	logger   *log.Logger
	progress Progress
}

// UnmergeOptions controls the recovered image.
type UnmergeOptions struct {
	// Width and Height crop the recovered image to the size of the
	// original hidden image. Zero keeps the full size.
	Width, Height int
}

// New returns a StegMerge. A nil logger or progress disables logging or
// notification respectively.
func New(logger *log.Logger, progress Progress) *StegMerge {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	if progress == nil {
		progress = nopProgress{}
	}
	return &StegMerge{
		logger:   logger,
		progress: progress,
	}
}

func (s *StegMerge) run(message, output string, fn func() (image.Image, error)) (err error) {
	task := s.progress.Start(message)
	defer func() {
		task.Done(err)
	}()

	m, err := fn()
	if err != nil {
		return err
	}

	if err = Save(output, m); err != nil {
		return err
	}
	s.logger.Printf("Wrote %dx%d image to \"%s\"\n", m.Bounds().Dx(), m.Bounds().Dy(), output)

	return nil
}

// Merge hides hidden in carrier and writes the result to output.
func (s *StegMerge) Merge(carrier, hidden image.Image, output string) error {
	if err := checkFits(carrier.Bounds(), hidden.Bounds()); err != nil {
		return err
	}
	if _, err := checkRGB(carrier); err != nil {
		return err
	}
	if _, err := checkRGB(hidden); err != nil {
		return err
	}
	if _, err := encoderFor(output); err != nil {
		return err
	}

	s.logger.Printf("Merging %dx%d image into %dx%d image\n", hidden.Bounds().Dx(), hidden.Bounds().Dy(), carrier.Bounds().Dx(), carrier.Bounds().Dy())

	return s.run("Merging images...", output, func() (image.Image, error) {
		return Merge(carrier, hidden)
	})
}

// Unmerge recovers the image hidden in merged and writes it to output.
func (s *StegMerge) Unmerge(merged image.Image, output string, opts UnmergeOptions) error {
	if _, err := checkRGB(merged); err != nil {
		return err
	}
	crop, err := opts.bounds(merged.Bounds())
	if err != nil {
		return err
	}
	if _, err := encoderFor(output); err != nil {
		return err
	}

	s.logger.Printf("Extracting %dx%d image from %dx%d image\n", crop.Dx(), crop.Dy(), merged.Bounds().Dx(), merged.Bounds().Dy())

	return s.run("Extracting hidden image...", output, func() (image.Image, error) {
		m, err := Unmerge(merged)
		if err != nil {
			return nil, err
		}
		if crop == m.Bounds() {
			return m, nil
		}
		return m.SubImage(crop), nil
	})
}

func (o UnmergeOptions) bounds(r image.Rectangle) (image.Rectangle, error) {
	w, h := o.Width, o.Height
	if w == 0 {
		w = r.Dx()
	}
	if h == 0 {
		h = r.Dy()
	}
	crop := image.Rect(0, 0, w, h)
	if w < 0 || h < 0 {
		return crop, fmt.Errorf("%w: negative crop %dx%d", ErrDimensionMismatch, w, h)
	}
	if err := checkFits(r, crop); err != nil {
		return crop, err
	}
	return crop, nil
}

// MergeFiles loads the carrier and hidden images and merges them into
// output.
func (s *StegMerge) MergeFiles(carrierPath, hiddenPath, output string) error {
	carrier, err := Load(carrierPath)
	if err != nil {
		return err
	}
	s.logger.Printf("Loaded carrier \"%s\"\n", carrierPath)

	hidden, err := Load(hiddenPath)
	if err != nil {
		return err
	}
	s.logger.Printf("Loaded hidden \"%s\"\n", hiddenPath)

	return s.Merge(carrier, hidden, output)
}

// UnmergeFiles loads a merged image and writes the recovered image to
// output.
func (s *StegMerge) UnmergeFiles(input, output string, opts UnmergeOptions) error {
	merged, err := Load(input)
	if err != nil {
		return err
	}
	s.logger.Printf("Loaded merged \"%s\"\n", input)

	return s.Unmerge(merged, output, opts)
}
