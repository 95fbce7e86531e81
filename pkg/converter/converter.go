package converter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/menta2k/a2d2-coco/pkg/annotation"
	"github.com/menta2k/a2d2-coco/pkg/category"
	"github.com/menta2k/a2d2-coco/pkg/types"
)

// Splits holds the partitioned sample lists.
type Splits struct {
	Train []types.SamplePair
	Val   []types.SamplePair
	Test  []types.SamplePair
}

// SplitResult reports what was assembled for one split.
type SplitResult struct {
	Name        string
	Images      int
	Annotations int
}

// Writer persists one assembled split dataset.
type Writer interface {
	Write(ds types.Dataset, split string) error
}

// JSONWriter writes each split dataset to <OutDir>/a2d2_<split>.json.
// The pretty flag only changes formatting, never content.
type JSONWriter struct {
	OutDir string
	Pretty bool
}

// Write marshals the dataset and writes it to the split's output file.
func (w JSONWriter) Write(ds types.Dataset, split string) error {
	info, err := os.Stat(w.OutDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("invalid JSON output directory %s", w.OutDir)
	}

	var data []byte
	if w.Pretty {
		data, err = json.MarshalIndent(ds, "", "    ")
	} else {
		data, err = json.Marshal(ds)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal %s split: %w", split, err)
	}

	path := filepath.Join(w.OutDir, fmt.Sprintf("a2d2_%s.json", split))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Assembler generates per-split COCO documents from partitioned sample pairs.
type Assembler struct {
	// Style selects the target label space ("a2d2" or "cityscapes").
	Style string
	// ProbeSizes reads real image dimensions from disk instead of using
	// the fixed sensor resolution. Requires the derived image paths to
	// exist.
	ProbeSizes bool
}

// New creates an Assembler for the given annotation style.
func New(style string) *Assembler {
	return &Assembler{Style: style}
}

// AssembleSplit builds the full COCO document for one split. Image and
// annotation ids both count up from 0, scoped to this split: every sample
// consumes one image id even when all of its annotations are ignored, while
// annotation ids advance only for kept instances. A failing label file
// aborts the whole split.
func (a *Assembler) AssembleSplit(pairs []types.SamplePair) (types.Dataset, error) {
	cats, err := category.Categories(a.Style)
	if err != nil {
		return types.Dataset{}, err
	}

	imgID := 0
	annID := 0
	images := make([]types.ImageEntry, 0, len(pairs))
	annotations := []types.AnnotationEntry{}

	for _, pair := range pairs {
		width, height := annotation.DefaultWidth, annotation.DefaultHeight
		if a.ProbeSizes {
			width, height, err = annotation.ProbeImageSize(pair.ImagePath)
			if err != nil {
				return types.Dataset{}, err
			}
		}
		images = append(images, annotation.NewImageEntrySize(pair.ImagePath, imgID, width, height))

		entries, next, err := annotation.BuildAll(pair.LabelPath, annID, imgID, a.Style)
		if err != nil {
			return types.Dataset{}, err
		}
		annID = next
		annotations = append(annotations, entries...)

		// All annotations for this image are done
		imgID++
	}

	return types.Dataset{
		Categories:  cats,
		Images:      images,
		Annotations: annotations,
	}, nil
}

// Run assembles and writes every split in train/val/test order. The style is
// validated before any file is written; a failing split produces no output
// file for that split and stops the run.
func (a *Assembler) Run(splits Splits, w Writer) ([]SplitResult, error) {
	if _, err := category.Categories(a.Style); err != nil {
		return nil, err
	}

	ordered := []struct {
		name  string
		pairs []types.SamplePair
	}{
		{"train", splits.Train},
		{"val", splits.Val},
		{"test", splits.Test},
	}

	results := make([]SplitResult, 0, len(ordered))
	for _, s := range ordered {
		ds, err := a.AssembleSplit(s.pairs)
		if err != nil {
			return nil, fmt.Errorf("failed to assemble %s split: %w", s.name, err)
		}
		if err := w.Write(ds, s.name); err != nil {
			return nil, err
		}
		results = append(results, SplitResult{
			Name:        s.name,
			Images:      len(ds.Images),
			Annotations: len(ds.Annotations),
		})
	}
	return results, nil
}
