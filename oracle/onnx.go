// Package oracle evaluates game positions with a trained ONNX model,
// implementing mcts.Evaluator on top of github.com/yalue/onnxruntime_go.
package oracle

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/parabul/scout/game"
	"github.com/parabul/scout/mcts"
	ort "github.com/yalue/onnxruntime_go"
)

const (
	inputName        = "input_1"
	valueOutputName  = "value_output"
	policyOutputName = "policy_output"
)

var (
	ortInitOnce sync.Once
	ortInitErr  error
)

// NeuralOracle evaluates a batch of TreeNodes in a single ONNX Runtime call.
// It is not safe for concurrent use by multiple goroutines: Evaluate reuses
// a scratch input buffer across calls.
type NeuralOracle struct {
	session *ort.DynamicAdvancedSession
	scratch []float32
}

// NewNeuralOracle loads the model at modelPath and pins ONNX Runtime to a
// single thread per op, matching the rest of the search running on its own
// goroutine with no internal parallelism to contend with.
func NewNeuralOracle(modelPath string) (*NeuralOracle, error) {
	if runtime.GOOS == "linux" {
		ensureSharedLibraryPath()
	}

	ortInitOnce.Do(func() {
		ortInitErr = ort.InitializeEnvironment()
	})
	if ortInitErr != nil {
		return nil, fmt.Errorf("oracle: failed to initialize onnxruntime: %w", ortInitErr)
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("oracle: failed to create session options: %w", err)
	}
	defer options.Destroy()

	options.SetIntraOpNumThreads(1)
	options.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputName},
		[]string{valueOutputName, policyOutputName},
		options,
	)
	if err != nil {
		return nil, fmt.Errorf("oracle: failed to create session: %w", err)
	}

	return &NeuralOracle{session: session}, nil
}

// Close releases the underlying ONNX Runtime session.
func (o *NeuralOracle) Close() error {
	return o.session.Destroy()
}

// Evaluate implements mcts.Evaluator. nodes may contain nil entries (illegal
// moves at the parent) and terminal nodes; both are zero-filled in the input
// batch and left untouched in the output, matching the contract that a
// terminal node's value and policy are never read from the oracle.
func (o *NeuralOracle) Evaluate(nodes []*mcts.TreeNode) error {
	if len(nodes) == 0 {
		return nil
	}

	batchSize := len(nodes)
	needed := batchSize * game.NumFeatures
	if cap(o.scratch) < needed {
		o.scratch = make([]float32, needed)
	}
	o.scratch = o.scratch[:needed]

	for i, node := range nodes {
		dst := o.scratch[i*game.NumFeatures : (i+1)*game.NumFeatures]
		if node == nil || node.State().IsGameOver() {
			for j := range dst {
				dst[j] = 0
			}
			continue
		}
		encoded := node.State().Encode()
		copy(dst, encoded[:])
	}

	inputTensor, err := ort.NewTensor(ort.NewShape(int64(batchSize), int64(game.NumFeatures)), o.scratch)
	if err != nil {
		return fmt.Errorf("oracle: failed to build input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	valueTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(int64(batchSize), 1))
	if err != nil {
		return fmt.Errorf("oracle: failed to allocate value tensor: %w", err)
	}
	defer valueTensor.Destroy()

	policyTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(int64(batchSize), int64(game.NumMoves)))
	if err != nil {
		return fmt.Errorf("oracle: failed to allocate policy tensor: %w", err)
	}
	defer policyTensor.Destroy()

	if err := o.session.Run([]ort.Value{inputTensor}, []ort.Value{valueTensor, policyTensor}); err != nil {
		return fmt.Errorf("oracle: inference run failed: %w", err)
	}

	valueData := valueTensor.GetData()
	policyData := policyTensor.GetData()

	for i, node := range nodes {
		if node == nil || node.State().IsGameOver() {
			continue
		}
		eval := node.Evaluation()
		eval.Value = valueData[i]
		copy(eval.Policy[:], policyData[i*game.NumMoves:(i+1)*game.NumMoves])
	}

	return nil
}

// ensureSharedLibraryPath points onnxruntime_go at ORT_SHARED_LIBRARY_PATH
// when it is set, and otherwise at a libonnxruntime.so (or .so.1) in the
// current working directory if one exists. If neither applies, the library's
// default lookup is left unchanged.
func ensureSharedLibraryPath() {
	if p := os.Getenv("ORT_SHARED_LIBRARY_PATH"); p != "" {
		ort.SetSharedLibraryPath(p)
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	for _, name := range []string{"libonnxruntime.so", "libonnxruntime.so.1"} {
		abs := filepath.Join(cwd, name)
		if _, err := os.Stat(abs); err == nil {
			ort.SetSharedLibraryPath(abs)
			return
		}
	}
}
