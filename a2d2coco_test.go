package a2d2coco

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/menta2k/a2d2-coco/pkg/category"
	"github.com/menta2k/a2d2-coco/pkg/types"
)

// createTestDataset writes a miniature A2D2-style dataset tree and returns
// its root. Every label file holds two kept instances and one instance the
// cityscapes space ignores.
func createTestDataset(t *testing.T, sequences, filesPerSequence int) string {
	t.Helper()
	root := t.TempDir()

	for s := 0; s < sequences; s++ {
		labelDir := filepath.Join(root, "camera_lidar_semantic_bboxes",
			fmt.Sprintf("2018080%d_145028", s), "label3D", "cam_front_center")
		if err := os.MkdirAll(labelDir, 0755); err != nil {
			t.Fatal(err)
		}

		for i := 0; i < filesPerSequence; i++ {
			name := fmt.Sprintf("2018080%d145028_label3D_frontcenter_%09d.json", s, i)
			content := `{
				"0": {"class": "Car", "2d_bbox": [100, 200, 300, 400]},
				"1": {"class": "Pedestrian", "2d_bbox": [10, 20, 30, 50]},
				"2": {"class": "Animal", "2d_bbox": [0, 0, 5, 5]}
			}`
			if err := os.WriteFile(filepath.Join(labelDir, name), []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}
	return root
}

func readSplit(t *testing.T, outDir, split string) types.Dataset {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(outDir, fmt.Sprintf("a2d2_%s.json", split)))
	if err != nil {
		t.Fatalf("Reading %s output failed: %v", split, err)
	}
	var ds types.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		t.Fatalf("Decoding %s output failed: %v", split, err)
	}
	return ds
}

func TestNew(t *testing.T) {
	conv := New()
	if conv == nil {
		t.Fatal("New() returned nil")
	}
	if conv.opts.Style != category.StyleCityscapes {
		t.Errorf("Expected default style cityscapes, got %s", conv.opts.Style)
	}
	if conv.opts.ValN != 800 || conv.opts.TestN != 0 {
		t.Errorf("Unexpected default split counts val=%d test=%d", conv.opts.ValN, conv.opts.TestN)
	}
}

func TestConvert(t *testing.T) {
	root := createTestDataset(t, 2, 5) // 10 samples
	outDir := t.TempDir()

	opts := DefaultOptions()
	opts.ValN = 3
	opts.TestN = 2
	conv := NewWithOptions(opts)

	summary, err := conv.Convert(root, outDir)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if summary.Total != 10 {
		t.Errorf("Expected 10 discovered samples, got %d", summary.Total)
	}

	expectedCounts := map[string]int{"train": 5, "val": 3, "test": 2}
	for _, s := range summary.Splits {
		if s.Images != expectedCounts[s.Name] {
			t.Errorf("Split %s has %d images, expected %d", s.Name, s.Images, expectedCounts[s.Name])
		}
		// Two kept annotations per sample
		if s.Annotations != 2*expectedCounts[s.Name] {
			t.Errorf("Split %s has %d annotations, expected %d", s.Name, s.Annotations, 2*expectedCounts[s.Name])
		}
	}

	for name, count := range expectedCounts {
		ds := readSplit(t, outDir, name)

		if len(ds.Images) != count {
			t.Errorf("Split %s file has %d images, expected %d", name, len(ds.Images), count)
		}
		if len(ds.Categories) != 8 {
			t.Errorf("Split %s has %d categories, expected 8", name, len(ds.Categories))
		}

		// Image ids dense from 0
		for i, img := range ds.Images {
			if img.ID != i {
				t.Errorf("Split %s image %d has id %d", name, i, img.ID)
			}
		}

		// Annotation ids dense from 0, image references valid
		for i, ann := range ds.Annotations {
			if ann.ID != i {
				t.Errorf("Split %s annotation %d has id %d", name, i, ann.ID)
			}
			if ann.ImageID < 0 || ann.ImageID >= len(ds.Images) {
				t.Errorf("Split %s annotation %d references missing image %d", name, i, ann.ImageID)
			}
		}
	}
}

func TestConvertSplitsAreDisjoint(t *testing.T) {
	root := createTestDataset(t, 2, 5)
	outDir := t.TempDir()

	opts := DefaultOptions()
	opts.ValN = 3
	opts.TestN = 2
	conv := NewWithOptions(opts)

	if _, err := conv.Convert(root, outDir); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	seen := map[string]int{}
	total := 0
	for _, name := range []string{"train", "val", "test"} {
		ds := readSplit(t, outDir, name)
		for _, img := range ds.Images {
			seen[img.FileName]++
			total++
		}
	}

	if total != 10 {
		t.Errorf("Expected 10 images across splits, got %d", total)
	}
	for file, count := range seen {
		if count != 1 {
			t.Errorf("Image %s appears in %d splits", file, count)
		}
	}
}

func TestConvertDeterministic(t *testing.T) {
	root := createTestDataset(t, 2, 4)

	opts := DefaultOptions()
	opts.ValN = 2
	opts.TestN = 1
	conv := NewWithOptions(opts)

	outDir1 := t.TempDir()
	outDir2 := t.TempDir()
	if _, err := conv.Convert(root, outDir1); err != nil {
		t.Fatal(err)
	}
	if _, err := conv.Convert(root, outDir2); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"train", "val", "test"} {
		first := readSplit(t, outDir1, name)
		second := readSplit(t, outDir2, name)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Split %s differs between identical runs", name)
		}
	}
}

func TestConvertUnknownStyle(t *testing.T) {
	root := createTestDataset(t, 1, 2)
	outDir := t.TempDir()

	opts := DefaultOptions()
	opts.Style = "foo"
	opts.ValN = 0
	conv := NewWithOptions(opts)

	_, err := conv.Convert(root, outDir)
	if !errors.Is(err, category.ErrUnknownStyle) {
		t.Fatalf("Expected ErrUnknownStyle, got %v", err)
	}

	// Nothing may be written for an invalid configuration
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no output files, found %d", len(entries))
	}
}

func TestConvertBadSplitCounts(t *testing.T) {
	root := createTestDataset(t, 1, 2) // 2 samples
	outDir := t.TempDir()

	opts := DefaultOptions()
	opts.ValN = 5
	opts.TestN = 0
	conv := NewWithOptions(opts)

	if _, err := conv.Convert(root, outDir); err == nil {
		t.Error("Expected error when val count exceeds sample count")
	}
}

func TestConvertEmptyDataset(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "camera_lidar_semantic_bboxes"), 0755); err != nil {
		t.Fatal(err)
	}
	outDir := t.TempDir()

	opts := DefaultOptions()
	opts.ValN = 0
	opts.TestN = 0
	conv := NewWithOptions(opts)

	summary, err := conv.Convert(root, outDir)
	if err != nil {
		t.Fatalf("Convert failed on empty dataset: %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("Expected 0 samples, got %d", summary.Total)
	}

	// All three split files exist and are empty but well-formed
	for _, name := range []string{"train", "val", "test"} {
		ds := readSplit(t, outDir, name)
		if len(ds.Images) != 0 || len(ds.Annotations) != 0 {
			t.Errorf("Split %s not empty", name)
		}
	}
}

func TestTrainSamples(t *testing.T) {
	root := createTestDataset(t, 2, 5)

	opts := DefaultOptions()
	opts.ValN = 3
	opts.TestN = 2
	conv := NewWithOptions(opts)

	samples, err := conv.TrainSamples(root, 3)
	if err != nil {
		t.Fatalf("TrainSamples failed: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(samples))
	}

	// Requesting more than the train split holds caps at the split size
	all, err := conv.TrainSamples(root, 100)
	if err != nil {
		t.Fatalf("TrainSamples failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 train samples, got %d", len(all))
	}

	// Same seed reproduces the same prefix
	if !reflect.DeepEqual(samples, all[:3]) {
		t.Error("TrainSamples prefix differs between invocations")
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() != Version {
		t.Errorf("GetVersion() returned %s, expected %s", GetVersion(), Version)
	}
}
