package main

import (
	"fmt"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/swdee/go-posture"
	"sort"
)

// keyPointEntry is a keypoint as written in a persons file
type keyPointEntry struct {
	X     float64 `koanf:"x"`
	Y     float64 `koanf:"y"`
	Score float64 `koanf:"score"`
}

// boxEntry is a bounding box as written in a persons file
type boxEntry struct {
	Left   float64 `koanf:"left"`
	Top    float64 `koanf:"top"`
	Right  float64 `koanf:"right"`
	Bottom float64 `koanf:"bottom"`
}

// personEntry is a detected person as written in a persons file, keypoints
// are keyed by body part name
type personEntry struct {
	ID        int                      `koanf:"id"`
	Score     *float64                 `koanf:"score"`
	Box       *boxEntry                `koanf:"box"`
	KeyPoints map[string]keyPointEntry `koanf:"keypoints"`
}

type personsFile struct {
	Persons []personEntry `koanf:"persons"`
}

// LoadPersons reads the pose estimation results for one frame from a YAML
// file.  Every person must list all body parts.
func LoadPersons(path string) ([]posture.Person, error) {

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("error loading persons file %s: %w", path, err)
	}

	var pf personsFile

	if err := k.UnmarshalWithConf("", &pf, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("error decoding persons file %s: %w", path, err)
	}

	persons := make([]posture.Person, 0, len(pf.Persons))

	for i, entry := range pf.Persons {
		p, err := entry.toPerson()

		if err != nil {
			return nil, fmt.Errorf("persons[%d]: %w", i, err)
		}

		persons = append(persons, p)
	}

	return persons, nil
}

// toPerson converts the entry into a Person with keypoints in body part order
func (e personEntry) toPerson() (posture.Person, error) {

	var coords [posture.NumBodyParts]posture.Point2D
	var scores [posture.NumBodyParts]float64
	var seen [posture.NumBodyParts]bool

	// sort names so errors are reported deterministically
	names := make([]string, 0, len(e.KeyPoints))
	for name := range e.KeyPoints {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		part, err := posture.ParseBodyPart(name)

		if err != nil {
			return posture.Person{}, err
		}

		kp := e.KeyPoints[name]
		coords[part] = posture.Pt(kp.X, kp.Y)
		scores[part] = kp.Score
		seen[part] = true
	}

	for _, part := range posture.BodyParts() {
		if !seen[part] {
			return posture.Person{}, fmt.Errorf("person %d missing keypoint %s: %w",
				e.ID, part, posture.ErrKeyPointCount)
		}
	}

	p := posture.NewPerson(e.ID, coords, scores)
	p.Score = e.Score

	if e.Box != nil {
		p.BoundingBox = &posture.Rect{
			Left:   e.Box.Left,
			Top:    e.Box.Top,
			Right:  e.Box.Right,
			Bottom: e.Box.Bottom,
		}
	}

	return p, nil
}
