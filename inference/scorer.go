package inference

import (
	"context"
	"os"
	"runtime"
	"sync"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/agrovis-ai/go-blight/images"
)

// Tensor names in the exported classifier graph.
const (
	inputName  = "input"
	outputName = "output"
)

// ONNXScorer runs the classification model through onnxruntime. One scorer
// owns one session with pre-allocated input/output tensors; Score is safe
// for concurrent use. Call Close when done to release native resources.
type ONNXScorer struct {
	mu      sync.Mutex
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

// NewONNXScorer initializes the onnxruntime environment (once per process)
// and opens a session for the model at modelPath.
//
// Arguments:
//   - modelPath: Path to the exported .onnx classifier.
//
// Returns:
//   - *ONNXScorer: The ready scorer.
//   - error: Environment or session initialization failure.
func NewONNXScorer(modelPath string) (*ONNXScorer, error) {
	if err := initRuntime(); err != nil {
		return nil, err
	}

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, InputSize, InputSize, inputChannels))
	if err != nil {
		return nil, errors.Wrap(err, "inference: creating input tensor")
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 1))
	if err != nil {
		input.Destroy()
		return nil, errors.Wrap(err, "inference: creating output tensor")
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{inputName},
		[]string{outputName},
		[]ort.ArbitraryTensor{input},
		[]ort.ArbitraryTensor{output},
		nil,
	)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, errors.Wrapf(err, "inference: opening session for %s", modelPath)
	}

	return &ONNXScorer{session: session, input: input, output: output}, nil
}

// Score implements the pipeline's Scorer contract: it prepares the model
// input, runs the session and returns the sigmoid-head probability clamped
// to [0, 1].
func (s *ONNXScorer) Score(ctx context.Context, grid *images.PixelGrid) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	staged, err := PrepareInput(grid)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.input.GetData(), staged.Data().([]float32))
	if err := s.session.Run(); err != nil {
		return 0, errors.Wrap(err, "inference: running model")
	}
	return float64(clampUnit(s.output.GetData()[0])), nil
}

// Close releases the session and its tensors.
func (s *ONNXScorer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.session.Destroy()
		s.session = nil
	}
	if s.input != nil {
		s.input.Destroy()
		s.input = nil
	}
	if s.output != nil {
		s.output.Destroy()
		s.output = nil
	}
}

func clampUnit(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

var (
	runtimeOnce sync.Once
	runtimeErr  error
)

// initRuntime points onnxruntime at the shared library and initializes the
// environment once per process.
func initRuntime() error {
	runtimeOnce.Do(func() {
		if ort.IsInitialized() {
			return
		}
		ort.SetSharedLibraryPath(sharedLibPath())
		runtimeErr = ort.InitializeEnvironment()
	})
	return errors.Wrap(runtimeErr, "inference: initializing onnxruntime")
}

// sharedLibPath resolves the onnxruntime shared library for the current
// platform. ONNXRUNTIME_SHARED_LIBRARY_PATH overrides the defaults.
func sharedLibPath() string {
	if path := os.Getenv("ONNXRUNTIME_SHARED_LIBRARY_PATH"); path != "" {
		return path
	}
	switch runtime.GOOS {
	case "windows":
		return "third_party/onnxruntime.dll"
	case "darwin":
		return "third_party/libonnxruntime.dylib"
	default:
		if runtime.GOARCH == "arm64" {
			return "third_party/onnxruntime_arm64.so"
		}
		return "third_party/onnxruntime.so"
	}
}
