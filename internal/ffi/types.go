// Package ffi holds the process-wide singleton and command queue the cgo
// shared-library entrypoint in cmd/vinputcore drives. It knows nothing about
// C types itself: the cgo layer translates to and from the C structs at the
// boundary, keeping every panic-recovery and pointer-validity concern here
// in plain Go.
package ffi

// Result mirrors the C ABI's status enum one for one; cmd/vinputcore casts
// this straight to its C enum type.
type Result int

const (
	ResultSuccess         Result = 0
	ResultNullPointer     Result = -1
	ResultInvalidArgument Result = -2
	ResultInitFailed      Result = -3
	ResultNotInitialized  Result = -4
	ResultInternalError   Result = -5
	ResultNoData          Result = -6
	ResultAudioError      Result = -7
)

// EventType mirrors the C ABI's event enum.
type EventType int

const (
	EventStartRecording EventType = iota + 1
	EventStopRecording
	EventAudioData
	EventRecognitionResult
	EventVADStateChanged
)

// CommandType mirrors the C ABI's command enum.
type CommandType int

const (
	CommandCommitText CommandType = iota + 1
	CommandShowCandidate
	CommandHideCandidate
	CommandError
)

// Command is one instruction queued for the host (Fcitx5) to act on. Text is
// empty for HideCandidate.
type Command struct {
	Type CommandType
	Text string
}
