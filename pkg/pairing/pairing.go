package pairing

import (
	"path/filepath"
	"strings"

	"github.com/menta2k/a2d2-coco/pkg/types"
)

// LabelToImagePath returns the camera image path corresponding to a label
// file path, using the A2D2 file naming convention:
//
//	.../20180807_145028/label3D/cam_front_center/..._label3D_...000000091.json
//	.../20180807_145028/camera/cam_front_center/..._camera_...000000091.png
//
// The conversion could be done in fewer substitutions, but replacing the
// directory token, the filename infix and the extension separately is more
// robust to unintended matches.
func LabelToImagePath(labelPath string) string {
	imgPath := strings.ReplaceAll(labelPath, "/label3D/", "/camera/")
	imgPath = strings.ReplaceAll(imgPath, "_label3D_", "_camera_")
	imgPath = strings.ReplaceAll(imgPath, ".json", ".png")
	return imgPath
}

// Collect returns all (image, label) sample pairs under dataDir. Label files
// are discovered at dataDir/<sequence>/label3D/<camera>/*.json and the image
// path of each pair is derived purely syntactically; whether the image file
// actually exists on disk is not checked here.
//
// An empty result is valid and means an empty dataset.
func Collect(dataDir string) ([]types.SamplePair, error) {
	labelPaths, err := filepath.Glob(filepath.Join(dataDir, "*", "label3D", "*", "*.json"))
	if err != nil {
		return nil, err
	}

	pairs := make([]types.SamplePair, 0, len(labelPaths))
	for _, labelPath := range labelPaths {
		pairs = append(pairs, types.SamplePair{
			ImagePath: LabelToImagePath(labelPath),
			LabelPath: labelPath,
		})
	}
	return pairs, nil
}
