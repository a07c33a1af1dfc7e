/*
Example program that draws pose estimation results with posture risk overlays
onto an image.

The keypoints for the frame are read from a YAML persons file as produced by a
pose estimation model, see persons.example.yaml.
*/
package main

import (
	"flag"
	"fmt"
	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"github.com/swdee/go-posture"
	"github.com/swdee/go-posture/classify"
	"github.com/swdee/go-posture/render"
	"gocv.io/x/gocv"
	"os"
)

// newLogger returns a logger writing to stderr at the given level
func newLogger(level string) (*logrus.Logger, error) {

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&formatter.Formatter{
		TimestampFormat: "15:04:05.000",
		HideKeys:        false,
		FieldsOrder:     []string{"person", "side", "band"},
	})

	lvl, err := logrus.ParseLevel(level)

	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log.SetLevel(lvl)

	return log, nil
}

func main() {

	// read in cli flags
	cfgFile := flag.String("c", "", "YAML configuration file")
	imgFile := flag.String("i", "../data/frame.jpg", "Image file to draw poses on")
	personsFile := flag.String("p", "persons.example.yaml", "YAML file of detected persons and keypoints")
	outFile := flag.String("o", "../data/frame-out.png", "Output image file")
	backend := flag.String("backend", backendImage, "Drawing backend, image or gocv")
	showIDs := flag.Bool("ids", false, "Draw person ids and bounding boxes")
	showRefs := flag.Bool("refs", false, "Mark the shoulder reference points")
	fontFile := flag.String("f", "", "TTF font to draw ids with, defaults to Go Regular")

	flag.Parse()

	cfg, err := LoadConfig(*cfgFile)

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}

	// command line flags take precedence over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "ids":
			cfg.ShowIdentifiers = *showIDs
		case "refs":
			cfg.ShowReferencePoints = *showRefs
		case "f":
			cfg.Font = *fontFile
		}
	})

	log, err := newLogger(cfg.LogLevel)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	persons, err := LoadPersons(*personsFile)

	if err != nil {
		log.Fatal(err)
	}

	log.WithField("count", len(persons)).Debug("Loaded persons")

	renderer, err := newRenderer(cfg)

	if err != nil {
		log.Fatal("Error creating renderer: ", err)
	}

	// classify up front so the risk bands can be reported
	assessments, err := renderer.Assess(persons)

	if err != nil {
		log.Fatal(err)
	}

	for _, a := range assessments {
		logAssessment(log, a)
	}

	switch cfg.Backend {
	case backendGoCV:
		err = renderWithGoCV(renderer, *imgFile, *outFile, persons, cfg.ShowIdentifiers)
	default:
		err = renderWithImage(renderer, *imgFile, *outFile, persons, cfg.ShowIdentifiers)
	}

	if err != nil {
		log.Fatal(err)
	}

	log.WithField("file", *outFile).Info("Saved rendered image")
}

// newRenderer creates the renderer from the configuration
func newRenderer(cfg Config) (*render.Renderer, error) {

	opts := render.DefaultOptions()
	opts.Params = cfg.Params()
	opts.ShowReferencePoints = cfg.ShowReferencePoints

	if cfg.Font != "" {
		data, err := os.ReadFile(cfg.Font)

		if err != nil {
			return nil, fmt.Errorf("failed to load font: %w", err)
		}

		opts.Typeface, err = render.LoadTypeface(data)

		if err != nil {
			return nil, err
		}
	}

	return render.New(opts)
}

// logAssessment reports the measured angles and bands for a person
func logAssessment(log *logrus.Logger, a classify.Assessment) {

	log.WithFields(logrus.Fields{
		"person": a.PersonID,
		"band":   a.Trunk.Band,
		"left":   fmt.Sprintf("%.1f", a.Trunk.LeftAngle),
		"right":  fmt.Sprintf("%.1f", a.Trunk.RightAngle),
	}).Info("Trunk flexion")

	for _, arm := range []classify.ArmResult{a.LeftArm, a.RightArm} {
		entry := log.WithFields(logrus.Fields{
			"person":    a.PersonID,
			"side":      arm.Side,
			"band":      arm.Band,
			"elevation": fmt.Sprintf("%.1f", arm.Elevation),
			"extension": fmt.Sprintf("%.1f", arm.Extension),
			"above_eye": arm.AboveEye,
		})

		if arm.Band == classify.Alert {
			entry.Warn("Arm raised")
			continue
		}

		entry.Debug("Arm elevation")
	}
}

// renderWithImage draws using the pure Go image backend
func renderWithImage(r *render.Renderer, in, out string, persons []posture.Person,
	showIDs bool) error {

	img, err := readImage(in)

	if err != nil {
		return err
	}

	res, err := r.Render(img, persons, showIDs)

	if err != nil {
		return err
	}

	return writeImage(out, res)
}

// renderWithGoCV draws using the OpenCV backend
func renderWithGoCV(r *render.Renderer, in, out string, persons []posture.Person,
	showIDs bool) error {

	img := gocv.IMRead(in, gocv.IMReadColor)

	if img.Empty() {
		return fmt.Errorf("error reading image from: %s", in)
	}

	defer img.Close()

	res, err := r.RenderMat(img, persons, showIDs)
	defer res.Close()

	if err != nil {
		return err
	}

	if ok := gocv.IMWrite(out, res); !ok {
		return fmt.Errorf("failed to save the image to: %s", out)
	}

	return nil
}
