// Package verrors defines the error taxonomy shared across the recognition
// pipeline: a stable code, a severity, and a recovery strategy travel with
// every error that crosses a component boundary.
package verrors

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Severity classifies how much an error should worry the host.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Recovery names the strategy the orchestrator should apply.
type Recovery string

const (
	RecoveryRetry      Recovery = "retry"
	RecoveryDegrade    Recovery = "degrade"
	RecoveryUserAction Recovery = "user_action"
	RecoveryRestart    Recovery = "restart"
)

// Code is a stable five-character identifier suitable for logs and bug reports.
type Code string

const (
	CodeRingBufferOverrun    Code = "E1001"
	CodeAudioDeviceNotFound  Code = "E1002"
	CodeCaptureLayer         Code = "E1003"
	CodeModelLoad            Code = "E2001"
	CodeVadModelLoad         Code = "E2002"
	CodeVadInference         Code = "E2003"
	CodeAsrInference         Code = "E2004"
	CodeRecognizerNotReady   Code = "E2005"
	CodeItnConversion        Code = "E3001"
	CodeHotword              Code = "E3002"
	CodeInvalidTransition    Code = "E4001"
	CodeNotAllowedInState    Code = "E4002"
	CodeConfigParse          Code = "E5001"
	CodeConfigNotFound       Code = "E5002"
	CodeChannelSend          Code = "E6001"
	CodeChannelRecv          Code = "E6002"
	CodeNullPointer          Code = "E7001"
	CodeEmptyUndoHistory     Code = "E8001"
	CodeUndoTimeWindowExpired Code = "E8002"
	CodeIO                  Code = "E9001"
	CodeGeneric              Code = "E9999"
)

// Error is the single error type used throughout the module. It carries
// enough structure for a caller to log, display, or decide recovery without
// string-matching the message.
type Error struct {
	Code        Code
	Severity    Severity
	Recovery    Recovery
	Message     string
	UserMessage string
	Cause       error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Log emits one structured line describing the error, at warn for low/medium
// severity and error for high/critical.
func (e *Error) Log(logger *zap.Logger) {
	fields := []zap.Field{
		zap.String("error_code", string(e.Code)),
		zap.String("severity", string(e.Severity)),
		zap.String("recovery", string(e.Recovery)),
	}
	switch e.Severity {
	case SeverityHigh, SeverityCritical:
		logger.Error(e.Message, fields...)
	default:
		logger.Warn(e.Message, fields...)
	}
}

// RingBufferOverrun reports a lossy-queue drop. Low severity: the drop is
// accounted for by the overrun counter and never interrupts the pipeline.
func RingBufferOverrun(lost int) *Error {
	return &Error{
		Code:        CodeRingBufferOverrun,
		Severity:    SeverityLow,
		Recovery:    RecoveryRetry,
		Message:     fmt.Sprintf("ring buffer overrun, %d samples dropped", lost),
		UserMessage: "音频处理繁忙，部分数据已丢弃",
	}
}

func AudioDeviceNotFound(device string) *Error {
	return &Error{
		Code:        CodeAudioDeviceNotFound,
		Severity:    SeverityMedium,
		Recovery:    RecoveryDegrade,
		Message:     fmt.Sprintf("audio device not found: %s", device),
		UserMessage: "未找到音频输入设备",
	}
}

func CaptureLayerError(cause error) *Error {
	return &Error{
		Code:        CodeCaptureLayer,
		Severity:    SeverityHigh,
		Recovery:    RecoveryRestart,
		Message:     "capture layer error",
		UserMessage: "音频采集发生错误",
		Cause:       cause,
	}
}

func ModelLoad(path string, cause error) *Error {
	return &Error{
		Code:        CodeModelLoad,
		Severity:    SeverityCritical,
		Recovery:    RecoveryUserAction,
		Message:     fmt.Sprintf("failed to load model at %q", path),
		UserMessage: "模型加载失败，请检查模型文件",
		Cause:       cause,
	}
}

func VadModelLoad(cause error) *Error {
	return &Error{
		Code:        CodeVadModelLoad,
		Severity:    SeverityCritical,
		Recovery:    RecoveryUserAction,
		Message:     "failed to load VAD model",
		UserMessage: "语音活动检测模型加载失败",
		Cause:       cause,
	}
}

func VadInference(cause error) *Error {
	return &Error{
		Code:        CodeVadInference,
		Severity:    SeverityMedium,
		Recovery:    RecoveryDegrade,
		Message:     "VAD inference failed",
		UserMessage: "语音活动检测失败",
		Cause:       cause,
	}
}

func AsrInference(cause error) *Error {
	return &Error{
		Code:        CodeAsrInference,
		Severity:    SeverityHigh,
		Recovery:    RecoveryRetry,
		Message:     "ASR inference failed",
		UserMessage: "语音识别失败",
		Cause:       cause,
	}
}

func RecognizerNotReady() *Error {
	return &Error{
		Code:        CodeRecognizerNotReady,
		Severity:    SeverityHigh,
		Recovery:    RecoveryRestart,
		Message:     "recognizer stream not ready",
		UserMessage: "识别器未就绪",
	}
}

func ItnConversion(cause error) *Error {
	return &Error{
		Code:        CodeItnConversion,
		Severity:    SeverityMedium,
		Recovery:    RecoveryDegrade,
		Message:     "ITN conversion failed",
		UserMessage: "数字转换失败，已保留原文",
		Cause:       cause,
	}
}

func Hotword(cause error) *Error {
	return &Error{
		Code:        CodeHotword,
		Severity:    SeverityMedium,
		Recovery:    RecoveryDegrade,
		Message:     "hotword operation failed",
		UserMessage: "热词加载失败",
		Cause:       cause,
	}
}

func InvalidTransition(from, event string) *Error {
	return &Error{
		Code:        CodeInvalidTransition,
		Severity:    SeverityHigh,
		Recovery:    RecoveryRestart,
		Message:     fmt.Sprintf("invalid transition: event %q in state %q", event, from),
		UserMessage: "内部状态错误",
	}
}

func NotAllowedInState(state string) *Error {
	return &Error{
		Code:        CodeNotAllowedInState,
		Severity:    SeverityHigh,
		Recovery:    RecoveryRestart,
		Message:     fmt.Sprintf("operation not allowed in state %q", state),
		UserMessage: "当前状态不支持此操作",
	}
}

func ConfigParse(path string, cause error) *Error {
	return &Error{
		Code:        CodeConfigParse,
		Severity:    SeverityCritical,
		Recovery:    RecoveryUserAction,
		Message:     fmt.Sprintf("failed to parse config at %q", path),
		UserMessage: "配置文件解析失败",
		Cause:       cause,
	}
}

func ConfigNotFound(path string) *Error {
	return &Error{
		Code:        CodeConfigNotFound,
		Severity:    SeverityLow,
		Recovery:    RecoveryDegrade,
		Message:     fmt.Sprintf("config file not found at %q, using defaults", path),
		UserMessage: "",
	}
}

func ChannelSend(cause error) *Error {
	return &Error{
		Code:        CodeChannelSend,
		Severity:    SeverityLow,
		Recovery:    RecoveryRetry,
		Message:     "channel send failed",
		UserMessage: "",
		Cause:       cause,
	}
}

func ChannelRecv(cause error) *Error {
	return &Error{
		Code:        CodeChannelRecv,
		Severity:    SeverityLow,
		Recovery:    RecoveryRetry,
		Message:     "channel receive failed",
		UserMessage: "",
		Cause:       cause,
	}
}

func NullPointer(param string) *Error {
	return &Error{
		Code:        CodeNullPointer,
		Severity:    SeverityCritical,
		Recovery:    RecoveryUserAction,
		Message:     fmt.Sprintf("null pointer for parameter %q", param),
		UserMessage: "内部参数错误",
	}
}

func EmptyUndoHistory() *Error {
	return &Error{
		Code:        CodeEmptyUndoHistory,
		Severity:    SeverityMedium,
		Recovery:    RecoveryDegrade,
		Message:     "undo history is empty",
		UserMessage: "没有可撤销的内容",
	}
}

func UndoTimeWindowExpired(elapsed, window time.Duration) *Error {
	return &Error{
		Code:        CodeUndoTimeWindowExpired,
		Severity:    SeverityMedium,
		Recovery:    RecoveryDegrade,
		Message:     fmt.Sprintf("undo window expired: %s elapsed, window %s", elapsed, window),
		UserMessage: "撤销时间窗口已过期",
	}
}

func IO(cause error) *Error {
	return &Error{
		Code:        CodeIO,
		Severity:    SeverityMedium,
		Recovery:    RecoveryRetry,
		Message:     "I/O error",
		UserMessage: "文件读写失败",
		Cause:       cause,
	}
}

func Generic(message string, cause error) *Error {
	return &Error{
		Code:        CodeGeneric,
		Severity:    SeverityMedium,
		Recovery:    RecoveryDegrade,
		Message:     message,
		UserMessage: "发生未知错误",
		Cause:       cause,
	}
}
