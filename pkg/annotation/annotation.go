package annotation

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"sort"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/menta2k/a2d2-coco/pkg/category"
	"github.com/menta2k/a2d2-coco/pkg/types"
)

// Sensor resolution of the A2D2 front center camera, used as the image
// dimensions unless probing is enabled.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1208
)

// DefaultArea is the placeholder COCO area value. True pixel area is not
// computed from the box geometry; downstream consumers that need it must
// recompute it themselves.
const DefaultArea = 100

// NewImageEntry builds a COCO image record for one sample using the default
// sensor resolution. No disk access, no existence check.
func NewImageEntry(imagePath string, imgID int) types.ImageEntry {
	return NewImageEntrySize(imagePath, imgID, DefaultWidth, DefaultHeight)
}

// NewImageEntrySize builds a COCO image record with explicit dimensions.
func NewImageEntrySize(imagePath string, imgID, width, height int) types.ImageEntry {
	return types.ImageEntry{
		ID:       imgID,
		FileName: imagePath,
		Width:    width,
		Height:   height,
	}
}

// ProbeImageSize reads the pixel dimensions from an image file header.
// PNG, JPEG and WebP are supported.
func ProbeImageSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image header %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Build converts one raw A2D2 instance into a COCO annotation entry with id
// annID, referencing image imgID. For classes the target style ignores it
// returns a nil entry and annID unchanged, so the caller appends nothing and
// no id is consumed. Otherwise the corner-corner box is reformatted to
// corner-size and the returned next id is annID+1.
//
// Box geometry is not validated; a degenerate input box produces a
// degenerate width or height.
func Build(raw types.RawAnnotation, annID, imgID int, style string) (*types.AnnotationEntry, int, error) {
	catID, err := category.Map(raw.Class, style)
	if err != nil {
		return nil, annID, err
	}
	if catID == category.Ignore {
		return nil, annID, nil
	}

	// [x_min, y_min, x_max, y_max] --> [x_corner, y_corner, width, height]
	entry := &types.AnnotationEntry{
		ID:         annID,
		ImageID:    imgID,
		CategoryID: catID,
		BBox: [4]float64{
			raw.BBox2D[0],
			raw.BBox2D[1],
			raw.BBox2D[2] - raw.BBox2D[0],
			raw.BBox2D[3] - raw.BBox2D[1],
		},
		Area:    DefaultArea,
		IsCrowd: 0,
	}
	return entry, annID + 1, nil
}

// BuildAll reads one label file and converts every instance in it, skipping
// ignored classes. The file maps arbitrary instance keys to raw annotation
// records; keys are iterated in sorted order so annotation ids are stable
// across runs. Returns the produced entries and the advanced annotation id.
func BuildAll(labelPath string, annID, imgID int, style string) ([]types.AnnotationEntry, int, error) {
	data, err := os.ReadFile(labelPath)
	if err != nil {
		return nil, annID, fmt.Errorf("failed to read label file: %w", err)
	}

	var raws map[string]types.RawAnnotation
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, annID, fmt.Errorf("failed to parse label file %s: %w", labelPath, err)
	}

	keys := make([]string, 0, len(raws))
	for key := range raws {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var entries []types.AnnotationEntry
	for _, key := range keys {
		entry, next, err := Build(raws[key], annID, imgID, style)
		if err != nil {
			return nil, annID, err
		}
		annID = next
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries, annID, nil
}
