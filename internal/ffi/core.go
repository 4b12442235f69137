package ffi

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/deepinfan/vinput-core/internal/audio"
	"github.com/deepinfan/vinput-core/internal/config"
	"github.com/deepinfan/vinput-core/internal/logging"
	"github.com/deepinfan/vinput-core/internal/pipeline"
	"github.com/deepinfan/vinput-core/internal/ring"
)

// captureFrameSize matches the pipeline's fixed 32ms frame at 16kHz, the
// same granularity internal/vad and internal/endpoint are tuned for.
const captureFrameSize = 512

// core is the process-wide singleton state: one input-method instance loads
// this shared object once, so a single global behind a mutex (rather than a
// handle-indexed table) matches how the host actually uses it.
type core struct {
	mu sync.Mutex

	pipe     *pipeline.Pipeline
	capturer *audio.Capturer
	queue    *ring.Buffer

	commands    []Command
	isRecording bool
	stopCh      chan struct{}
	wg          sync.WaitGroup

	logger *zap.Logger
}

var (
	globalMu sync.Mutex
	global   *core
)

// Init builds the singleton if one doesn't already exist. A second call
// while one is live is a no-op, not an error, since the host may call init
// defensively around plugin (re)load.
func Init() Result {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global != nil {
		return ResultSuccess
	}

	logger := logging.Get()
	logger.Info("ffi: initializing core")

	cfg, err := config.LoadDefault(logger)
	if err != nil {
		logger.Error("ffi: config load failed", zap.Error(err))
		return ResultInitFailed
	}

	pipe, err := pipeline.New(pipeline.Config{
		VAD:         cfg.VAD,
		ASR:         cfg.ASR,
		Endpoint:    cfg.Endpoint,
		Punctuation: cfg.Punctuation,
		Hotwords:    cfg.Hotwords,
	}, logger)
	if err != nil {
		logger.Error("ffi: pipeline init failed", zap.Error(err))
		return ResultInitFailed
	}

	global = &core{
		pipe:   pipe,
		queue:  ring.NewBuffer(ring.DefaultCapacityQ1),
		logger: logger,
	}

	logger.Info("ffi: core initialized")
	return ResultSuccess
}

// Shutdown tears the singleton down, stopping any in-progress recording
// first so the capture device and ASR stream are released cleanly.
func Shutdown() Result {
	globalMu.Lock()
	c := global
	global = nil
	globalMu.Unlock()

	if c == nil {
		return ResultSuccess
	}

	c.mu.Lock()
	recording := c.isRecording
	c.mu.Unlock()
	if recording {
		c.stopRecording()
	}

	if err := c.pipe.Close(); err != nil {
		c.logger.Warn("ffi: pipeline close error", zap.Error(err))
	}

	c.logger.Info("ffi: core shut down")
	return ResultSuccess
}

// SendEvent dispatches a host event into the live core singleton.
func SendEvent(eventType EventType) Result {
	c := liveCore()
	if c == nil {
		return ResultNotInitialized
	}

	switch eventType {
	case EventStartRecording:
		c.logger.Info("ffi: received StartRecording")
		c.startRecording()
	case EventStopRecording:
		c.logger.Info("ffi: received StopRecording")
		c.stopRecording()
	default:
		c.logger.Debug("ffi: unhandled event type", zap.Int("event_type", int(eventType)))
	}
	return ResultSuccess
}

// TryRecvCommand pops the oldest queued command, if any.
func TryRecvCommand() (Command, bool) {
	c := liveCore()
	if c == nil {
		return Command{}, false
	}
	return c.popCommand()
}

func liveCore() *core {
	globalMu.Lock()
	defer globalMu.Unlock()
	return global
}

func (c *core) popCommand() (Command, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.commands) == 0 {
		return Command{}, false
	}
	cmd := c.commands[0]
	c.commands = c.commands[1:]
	return cmd, true
}

func (c *core) pushCommand(cmd Command) {
	c.mu.Lock()
	c.commands = append(c.commands, cmd)
	c.mu.Unlock()
}

// startRecording opens the capture device and starts the goroutine that
// drains Q1 into the pipeline, mirroring the producer/consumer split the
// original ran across a dedicated audio thread.
func (c *core) startRecording() {
	c.mu.Lock()
	if c.isRecording {
		c.mu.Unlock()
		c.logger.Warn("ffi: start requested while already recording")
		return
	}
	c.isRecording = true
	stopCh := make(chan struct{})
	c.stopCh = stopCh
	c.mu.Unlock()

	capturer, err := audio.NewCapturer(16000, c.queue.Producer(), c.logger)
	if err != nil {
		c.logger.Error("ffi: capturer create failed", zap.Error(err))
		c.mu.Lock()
		c.isRecording = false
		c.mu.Unlock()
		return
	}

	if err := capturer.Start(); err != nil {
		c.logger.Error("ffi: capturer start failed", zap.Error(err))
		capturer.Close()
		c.mu.Lock()
		c.isRecording = false
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.capturer = capturer
	c.mu.Unlock()

	c.wg.Add(1)
	go c.audioLoop(stopCh)
}

// audioLoop reads whole frames from Q1 and drives the pipeline one frame at
// a time until stopped.
func (c *core) audioLoop(stop chan struct{}) {
	defer c.wg.Done()

	consumer := c.queue.Consumer()
	frame := make([]float32, captureFrameSize)

	for {
		select {
		case <-stop:
			return
		default:
		}

		if consumer.AvailableSamples() < captureFrameSize {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		consumer.Read(frame)

		result, err := c.pipe.Process(frame)
		if err != nil {
			c.logger.Error("ffi: pipeline process error", zap.Error(err))
			return
		}
		if result.StableText != "" || result.UnstableText != "" {
			c.logger.Debug("ffi: partial result",
				zap.String("stable", result.StableText),
				zap.String("unstable", result.UnstableText))
		}
	}
}

// stopRecording closes the capture device, drains the final ASR result
// through punctuation and ITN, and queues the command sequence the host
// replays into its input buffer.
func (c *core) stopRecording() {
	c.mu.Lock()
	if !c.isRecording {
		c.mu.Unlock()
		c.logger.Warn("ffi: stop requested while not recording")
		return
	}
	c.isRecording = false
	stopCh := c.stopCh
	capturer := c.capturer
	c.capturer = nil
	c.mu.Unlock()

	if capturer != nil {
		capturer.Close()
	}
	if stopCh != nil {
		close(stopCh)
	}
	c.wg.Wait()

	finalText := c.pipe.GetFinalResultWithPunctuation()
	if finalText == "" {
		c.logger.Info("ffi: empty result, no commands generated")
		return
	}

	c.logger.Info("ffi: final result", zap.String("text", finalText))

	c.pushCommand(Command{Type: CommandShowCandidate, Text: finalText})
	c.pushCommand(Command{Type: CommandCommitText, Text: finalText})
	c.pushCommand(Command{Type: CommandHideCandidate})
}
