package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	a2d2coco "github.com/menta2k/a2d2-coco"
	"github.com/menta2k/a2d2-coco/internal/config"
	"github.com/menta2k/a2d2-coco/internal/utils"
	"github.com/menta2k/a2d2-coco/pkg/annotation"
	"github.com/menta2k/a2d2-coco/pkg/preview"
)

func main() {
	var cfgPath, pkgDir, style, outDir string
	var valN, testN, previewN int
	var noPretty, probeDims bool

	flag.StringVar(&cfgPath, "config", "", "optional JSON config file with converter defaults")
	flag.StringVar(&pkgDir, "pkg-dir", "", "package subdirectory under the dataset root")
	flag.StringVar(&style, "style", "", "annotation style: a2d2 or cityscapes")
	flag.StringVar(&outDir, "o", "", "output directory for the JSON files (default <root>/annotations)")
	flag.IntVar(&valN, "val", -1, "number of validation samples")
	flag.IntVar(&testN, "test", -1, "number of testing samples")
	flag.BoolVar(&noPretty, "no-pretty", false, "output compact JSON files")
	flag.IntVar(&previewN, "preview", 0, "render bounding box overlays for the first N train samples")
	flag.BoolVar(&probeDims, "probe-dims", false, "read real image dimensions instead of assuming 1920x1208")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %s [flags] /path/to/a2d2", filepath.Base(os.Args[0]))
	}
	datasetRoot := flag.Arg(0)
	if !utils.DirExists(datasetRoot) {
		log.Fatalf("dataset root %s is not a directory", datasetRoot)
	}

	// Config file defaults, overridden by explicit flags
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if pkgDir != "" {
		cfg.Dataset.PkgDir = pkgDir
	}
	if style != "" {
		cfg.Dataset.Style = style
	}
	if valN >= 0 {
		cfg.Split.Val = valN
	}
	if testN >= 0 {
		cfg.Split.Test = testN
	}
	if noPretty {
		cfg.Output.Pretty = false
	}
	if previewN > 0 {
		cfg.Output.Preview = previewN
	}
	if probeDims {
		cfg.Dataset.ProbeDims = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if outDir == "" {
		outDir = filepath.Join(datasetRoot, "annotations")
	}
	if err := utils.EnsureDir(outDir); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	conv := a2d2coco.NewWithOptions(a2d2coco.Options{
		Style:     cfg.Dataset.Style,
		PkgDir:    cfg.Dataset.PkgDir,
		ValN:      cfg.Split.Val,
		TestN:     cfg.Split.Test,
		Seed:      cfg.Split.Seed,
		Pretty:    cfg.Output.Pretty,
		ProbeDims: cfg.Dataset.ProbeDims,
	})

	summary, err := conv.Convert(datasetRoot, outDir)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("converted %d samples (style %s)", summary.Total, cfg.Dataset.Style)
	for _, s := range summary.Splits {
		log.Printf("  %s: %d images, %d annotations -> %s",
			s.Name, s.Images, s.Annotations, filepath.Join(outDir, fmt.Sprintf("a2d2_%s.json", s.Name)))
	}

	if cfg.Output.Preview > 0 {
		if err := renderPreviews(conv, datasetRoot, outDir, cfg.Output.Preview); err != nil {
			log.Fatal(err)
		}
	}
}

// renderPreviews draws the converted boxes onto the first n train sample
// images for visual verification. Samples whose image file is missing are
// logged and skipped; previews are an aid, not part of the conversion.
func renderPreviews(conv *a2d2coco.Converter, datasetRoot, outDir string, n int) error {
	samples, err := conv.TrainSamples(datasetRoot, n)
	if err != nil {
		return err
	}

	previewDir := filepath.Join(outDir, "preview")
	if err := utils.EnsureDir(previewDir); err != nil {
		return fmt.Errorf("failed to create preview directory: %w", err)
	}

	for i, pair := range samples {
		if !utils.FileExists(pair.ImagePath) {
			log.Printf("preview: image %s not found, skipping", pair.ImagePath)
			continue
		}

		anns, _, err := annotation.BuildAll(pair.LabelPath, 0, i, conv.Style())
		if err != nil {
			return err
		}

		img, err := preview.Render(pair.ImagePath, anns)
		if err != nil {
			log.Printf("preview: rendering %s failed: %v", pair.ImagePath, err)
			continue
		}

		dst := filepath.Join(previewDir, fmt.Sprintf("%03d_%s.png", i, utils.BaseName(pair.ImagePath)))
		if err := preview.Save(img, dst, "png", 92, false); err != nil {
			log.Printf("preview: save %s failed: %v", dst, err)
			continue
		}
		log.Printf("wrote %s", dst)
	}
	return nil
}
