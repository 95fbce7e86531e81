// Package a2d2coco converts Audi A2D2 2D bounding box annotations into the
// COCO object detection format.
//
// The converter discovers matched (image, label) file pairs from the A2D2
// naming convention, partitions them deterministically into train/val/test
// splits and generates one COCO JSON document per split, mapping the A2D2
// class vocabulary either onto its native category ids or onto Cityscapes
// category ids.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		a2d2coco "github.com/menta2k/a2d2-coco"
//	)
//
//	func main() {
//		conv := a2d2coco.New()
//
//		summary, err := conv.Convert("/data/a2d2", "/data/a2d2/annotations")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		for _, s := range summary.Splits {
//			log.Printf("%s: %d images, %d annotations", s.Name, s.Images, s.Annotations)
//		}
//	}
//
// The package consists of five main components:
//
// 1. Pairing (pkg/pairing): discovers label files and derives image paths
// 2. Category (pkg/category): maps A2D2 class tokens to target category ids
// 3. Split (pkg/split): seeded shuffle and contiguous train/val/test slicing
// 4. Annotation (pkg/annotation): builds COCO image and annotation records
// 5. Converter (pkg/converter): assembles and writes per-split documents
//
// Image paths are derived from label paths purely syntactically and are not
// checked for existence unless dimension probing is enabled. Category tokens
// the target label space explicitly excludes are skipped silently; unknown
// tokens abort the run.
package a2d2coco

import (
	"fmt"
	"path/filepath"

	"github.com/menta2k/a2d2-coco/pkg/category"
	"github.com/menta2k/a2d2-coco/pkg/converter"
	"github.com/menta2k/a2d2-coco/pkg/pairing"
	"github.com/menta2k/a2d2-coco/pkg/split"
	"github.com/menta2k/a2d2-coco/pkg/types"
)

// Version of the a2d2-coco library
const Version = "1.0.0"

// Options configures a Converter.
type Options struct {
	// Style is the target label space ("a2d2" or "cityscapes").
	Style string
	// PkgDir is the package subdirectory under the dataset root.
	PkgDir string
	// ValN and TestN are the validation and test sample counts; the train
	// count is whatever remains.
	ValN  int
	TestN int
	// Seed drives the split shuffle.
	Seed int64
	// Pretty indents the output JSON for human readability.
	Pretty bool
	// ProbeDims reads real image dimensions instead of the fixed sensor
	// resolution.
	ProbeDims bool
}

// DefaultOptions returns the option values matching the stock A2D2 bounding
// box package.
func DefaultOptions() Options {
	return Options{
		Style:  category.StyleCityscapes,
		PkgDir: "camera_lidar_semantic_bboxes",
		ValN:   800,
		TestN:  0,
		Seed:   split.DefaultSeed,
		Pretty: true,
	}
}

// Converter runs the full A2D2 to COCO conversion pipeline.
type Converter struct {
	opts Options
}

// New creates a Converter with default options
func New() *Converter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a Converter with custom options
func NewWithOptions(opts Options) *Converter {
	return &Converter{opts: opts}
}

// SplitSummary reports per-split output sizes.
type SplitSummary struct {
	Name        string
	Images      int
	Annotations int
}

// Summary reports the outcome of one conversion run.
type Summary struct {
	// Total is the number of discovered sample pairs.
	Total  int
	Splits []SplitSummary
}

// Convert discovers all sample pairs under datasetRoot, partitions them and
// writes one COCO JSON file per split into outDir. The target style is
// validated before any I/O; any label file error aborts the run with no
// partial output for the failing split.
func (c *Converter) Convert(datasetRoot, outDir string) (Summary, error) {
	if _, err := category.Categories(c.opts.Style); err != nil {
		return Summary{}, err
	}

	splits, total, err := c.partition(datasetRoot)
	if err != nil {
		return Summary{}, err
	}

	asm := converter.New(c.opts.Style)
	asm.ProbeSizes = c.opts.ProbeDims
	w := converter.JSONWriter{OutDir: outDir, Pretty: c.opts.Pretty}

	results, err := asm.Run(splits, w)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: total}
	for _, r := range results {
		summary.Splits = append(summary.Splits, SplitSummary{
			Name:        r.Name,
			Images:      r.Images,
			Annotations: r.Annotations,
		})
	}
	return summary, nil
}

// TrainSamples returns the first n train split sample pairs of a dataset,
// in split order. Used to pick samples for preview rendering; the same seed
// and discovery order reproduce the same split as Convert.
func (c *Converter) TrainSamples(datasetRoot string, n int) ([]types.SamplePair, error) {
	splits, _, err := c.partition(datasetRoot)
	if err != nil {
		return nil, err
	}
	if n > len(splits.Train) {
		n = len(splits.Train)
	}
	return splits.Train[:n], nil
}

// Style returns the configured target label space.
func (c *Converter) Style() string {
	return c.opts.Style
}

// partition discovers and splits the full sample pair set.
func (c *Converter) partition(datasetRoot string) (converter.Splits, int, error) {
	dataDir := filepath.Join(datasetRoot, c.opts.PkgDir)

	pairs, err := pairing.Collect(dataDir)
	if err != nil {
		return converter.Splits{}, 0, fmt.Errorf("failed to collect sample pairs: %w", err)
	}

	train, val, test, err := split.Partition(pairs, c.opts.Seed, -1, c.opts.ValN, c.opts.TestN)
	if err != nil {
		return converter.Splits{}, 0, err
	}

	return converter.Splits{Train: train, Val: val, Test: test}, len(pairs), nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
