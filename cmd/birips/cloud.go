package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/birips/builder"
	"github.com/katalvlaran/birips/pointcloud"
)

// ErrEmptyInput is returned for a CSV file without any point.
var ErrEmptyInput = errors.New("input holds no points")

// ReadCloud parses one point per CSV row. Lines starting with '#' are
// comments; a first row that does not parse as numbers is taken as a header.
// Every row must have the same number of fields.
func ReadCloud(r io.Reader) (pointcloud.Cloud, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var c pointcloud.Cloud
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCloud: %w", err)
		}
		p, err := parsePoint(rec)
		if err != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("ReadCloud: record %d: %w", line, err)
		}
		c = append(c, p)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("ReadCloud: %w", ErrEmptyInput)
	}

	return c, nil
}

func parsePoint(rec []string) (pointcloud.Point, error) {
	p := make(pointcloud.Point, len(rec))
	for i, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		p[i] = v
	}

	return p, nil
}

// LoadCloud reads cfg.Input, or synthesises the configured demo cloud when
// no input is set.
func LoadCloud(cfg Config) (pointcloud.Cloud, error) {
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return ReadCloud(f)
	}

	return demoCloud(cfg.Demo, cfg.Seed)
}

func demoCloud(name string, seed int64) (pointcloud.Cloud, error) {
	opts := []builder.BuilderOption{builder.WithSeed(seed)}
	switch name {
	case DemoHexagons:
		return builder.BuildCloud(opts,
			builder.Hexagon(pointcloud.Point{0, 0}, 1),
			builder.Hexagon(pointcloud.Point{20, 0}, 1),
		)
	case DemoCircle:
		return builder.BuildCloud(append(opts, builder.WithJitter(0.05)),
			builder.Circle(pointcloud.Point{0, 0}, 2, 16),
			builder.Cluster(pointcloud.Point{0, 0}, 0.2, 8),
		)
	case DemoUniform:
		return builder.BuildCloud(opts,
			builder.Uniform(30, pointcloud.Point{0, 0}, pointcloud.Point{4, 4}),
		)
	default:
		return nil, ErrInvalidDemo
	}
}
