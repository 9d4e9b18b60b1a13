// Command sortdataset scores a directory of mixed, unlabeled leaf
// photographs with the classification model and copies each file into a
// healthy/ or infected/ bucket under the output directory. Files are
// copied, never moved; review the buckets before training on them.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/agrovis-ai/go-blight/images"
	"github.com/agrovis-ai/go-blight/inference"
	"github.com/agrovis-ai/go-blight/util"
)

func main() {
	inputDir := flag.String("input-dir", "", "directory containing the mixed images")
	outputDir := flag.String("output-dir", "", "directory receiving the healthy/ and infected/ buckets")
	modelPath := flag.String("model-path", "", "path to the exported .onnx classifier")
	threshold := flag.Float64("threshold", 0.5, "probability at or above which an image is bucketed as infected")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *inputDir == "" || *outputDir == "" || *modelPath == "" {
		flag.Usage()
		log.Fatal().Msg("-input-dir, -output-dir and -model-path are required")
	}

	healthyDir := filepath.Join(*outputDir, "healthy")
	infectedDir := filepath.Join(*outputDir, "infected")
	for _, dir := range []string{healthyDir, infectedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("creating output bucket")
		}
	}

	scorer, err := inference.NewONNXScorer(*modelPath)
	if err != nil {
		log.Fatal().Err(err).Str("model", *modelPath).Msg("loading model")
	}
	defer scorer.Close()

	files, err := util.LoadDirectoryImageFiles(*inputDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", *inputDir).Msg("listing images")
	}
	if len(files) == 0 {
		log.Warn().Str("dir", *inputDir).Msg("no images found")
		return
	}

	ctx := context.Background()
	sorted := 0
	for i, file := range files {
		grid, err := images.Decode(file.Data)
		if err != nil {
			log.Error().Err(err).Str("file", file.Path).Msg("skipping undecodable image")
			continue
		}

		prob, err := scorer.Score(ctx, grid)
		if err != nil {
			log.Error().Err(err).Str("file", file.Path).Msg("skipping unscorable image")
			continue
		}

		bucket := healthyDir
		label := "healthy"
		if prob >= *threshold {
			bucket = infectedDir
			label = "infected"
		}

		dest := filepath.Join(bucket, filepath.Base(file.Path))
		if err := os.WriteFile(dest, file.Data, 0o644); err != nil {
			log.Fatal().Err(err).Str("dest", dest).Msg("copying image")
		}
		sorted++

		log.Info().
			Int("index", i+1).
			Int("total", len(files)).
			Str("file", filepath.Base(file.Path)).
			Float64("prob", prob).
			Str("bucket", label).
			Msg("sorted")
	}

	log.Info().Int("sorted", sorted).Int("total", len(files)).Msg("done; review the buckets before training")
}
