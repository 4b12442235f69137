package vad

import (
	"fmt"

	"github.com/deepinfan/vinput-core/internal/verrors"
	ort "github.com/yalue/onnxruntime_go"
)

const (
	sileroHiddenLayers = 2
	sileroHiddenSize   = 64
	sileroStateLen     = sileroHiddenLayers * sileroHiddenSize
)

// Silero wraps the Silero VAD ONNX model: a tiny LSTM-based speech
// probability estimator whose hidden state is carried across calls. Frame
// length is fixed by the model: 512 samples at 16kHz (256 at 8kHz); any
// other length is rejected rather than silently truncated or padded.
type Silero struct {
	session *ort.AdvancedSession

	input   *ort.Tensor[float32]
	srInput *ort.Tensor[int64]
	hInput  *ort.Tensor[float32]
	cInput  *ort.Tensor[float32]
	output  *ort.Tensor[float32]
	hOutput *ort.Tensor[float32]
	cOutput *ort.Tensor[float32]

	sampleRate  int
	frameLength int
}

// NewSilero loads the model at modelPath and prepares zero-initialized LSTM
// state. The ONNX Runtime environment (ort.InitializeEnvironment) must
// already have been set up by the caller, once per process.
func NewSilero(cfg SileroConfig) (*Silero, error) {
	frameLength := 512
	if cfg.SampleRate == 8000 {
		frameLength = 256
	} else if cfg.SampleRate != 16000 {
		return nil, verrors.VadModelLoad(fmt.Errorf("unsupported sample rate %d (want 8000 or 16000)", cfg.SampleRate))
	}

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(frameLength)))
	if err != nil {
		return nil, verrors.VadModelLoad(err)
	}
	srInput, err := ort.NewTensor(ort.NewShape(1), []int64{int64(cfg.SampleRate)})
	if err != nil {
		return nil, verrors.VadModelLoad(err)
	}
	hInput, err := ort.NewEmptyTensor[float32](ort.NewShape(sileroHiddenLayers, 1, sileroHiddenSize))
	if err != nil {
		return nil, verrors.VadModelLoad(err)
	}
	cInput, err := ort.NewEmptyTensor[float32](ort.NewShape(sileroHiddenLayers, 1, sileroHiddenSize))
	if err != nil {
		return nil, verrors.VadModelLoad(err)
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 1))
	if err != nil {
		return nil, verrors.VadModelLoad(err)
	}
	hOutput, err := ort.NewEmptyTensor[float32](ort.NewShape(sileroHiddenLayers, 1, sileroHiddenSize))
	if err != nil {
		return nil, verrors.VadModelLoad(err)
	}
	cOutput, err := ort.NewEmptyTensor[float32](ort.NewShape(sileroHiddenLayers, 1, sileroHiddenSize))
	if err != nil {
		return nil, verrors.VadModelLoad(err)
	}

	session, err := ort.NewAdvancedSession(cfg.ModelPath,
		[]string{"input", "sr", "h", "c"},
		[]string{"output", "hn", "cn"},
		[]ort.Value{input, srInput, hInput, cInput},
		[]ort.Value{output, hOutput, cOutput},
		nil,
	)
	if err != nil {
		return nil, verrors.VadModelLoad(err)
	}

	return &Silero{
		session:     session,
		input:       input,
		srInput:     srInput,
		hInput:      hInput,
		cInput:      cInput,
		output:      output,
		hOutput:     hOutput,
		cOutput:     cOutput,
		sampleRate:  cfg.SampleRate,
		frameLength: frameLength,
	}, nil
}

// Process runs one inference step and returns the speech probability,
// advancing the LSTM state in place.
func (s *Silero) Process(frame []float32) (float64, error) {
	if len(frame) != s.frameLength {
		return 0, verrors.VadInference(fmt.Errorf("expected frame length %d, got %d", s.frameLength, len(frame)))
	}

	copy(s.input.GetData(), frame)

	if err := s.session.Run(); err != nil {
		return 0, verrors.VadInference(err)
	}

	prob := float64(s.output.GetData()[0])
	copy(s.hInput.GetData(), s.hOutput.GetData())
	copy(s.cInput.GetData(), s.cOutput.GetData())

	return prob, nil
}

// Reset zeroes the LSTM hidden state, starting a fresh session.
func (s *Silero) Reset() {
	zero(s.hInput.GetData())
	zero(s.cInput.GetData())
}

// Close releases the underlying ONNX Runtime session and tensors.
func (s *Silero) Close() error {
	err := s.session.Destroy()
	for _, t := range []interface{ Destroy() error }{
		s.input, s.srInput, s.hInput, s.cInput, s.output, s.hOutput, s.cOutput,
	} {
		t.Destroy()
	}
	return err
}

func zero(data []float32) {
	for i := range data {
		data[i] = 0
	}
}
