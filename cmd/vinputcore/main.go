// Command vinputcore builds the C-callable shared library a Fcitx5 input
// method plugin links against. It owns no recognition logic itself: every
// exported function is a thin, panic-safe shim over internal/ffi.
package main

/*
#include <stdlib.h>

typedef enum {
    VINPUT_SUCCESS = 0,
    VINPUT_ERR_NULL_POINTER = -1,
    VINPUT_ERR_INVALID_ARGUMENT = -2,
    VINPUT_ERR_INIT_FAILED = -3,
    VINPUT_ERR_NOT_INITIALIZED = -4,
    VINPUT_ERR_INTERNAL_ERROR = -5,
    VINPUT_ERR_NO_DATA = -6,
    VINPUT_ERR_AUDIO_ERROR = -7,
} vinput_result_t;

typedef enum {
    VINPUT_EVENT_START_RECORDING = 1,
    VINPUT_EVENT_STOP_RECORDING = 2,
    VINPUT_EVENT_AUDIO_DATA = 3,
    VINPUT_EVENT_RECOGNITION_RESULT = 4,
    VINPUT_EVENT_VAD_STATE_CHANGED = 5,
} vinput_event_type_t;

typedef struct {
    vinput_event_type_t event_type;
    const void *data;
    size_t data_len;
} vinput_event_t;

typedef enum {
    VINPUT_COMMAND_COMMIT_TEXT = 1,
    VINPUT_COMMAND_SHOW_CANDIDATE = 2,
    VINPUT_COMMAND_HIDE_CANDIDATE = 3,
    VINPUT_COMMAND_ERROR = 4,
} vinput_command_type_t;

typedef struct {
    vinput_command_type_t command_type;
    char *text;
    size_t text_len;
} vinput_command_t;
*/
import "C"

import (
	"unsafe"

	"github.com/deepinfan/vinput-core/internal/ffi"
	"github.com/deepinfan/vinput-core/internal/logging"
)

const version = "0.1.0"

// cVersion is allocated once at load time and never freed: the version
// string has the process's lifetime, so the caller must not free it.
var cVersion = C.CString(version)

//export vinput_core_init
func vinput_core_init() C.vinput_result_t {
	return C.vinput_result_t(ffi.SafeCall(logging.Get(), func() ffi.Result {
		return ffi.Init()
	}))
}

//export vinput_core_shutdown
func vinput_core_shutdown() C.vinput_result_t {
	return C.vinput_result_t(ffi.SafeCall(logging.Get(), func() ffi.Result {
		return ffi.Shutdown()
	}))
}

//export vinput_core_send_event
func vinput_core_send_event(event *C.vinput_event_t) C.vinput_result_t {
	return C.vinput_result_t(ffi.SafeCall(logging.Get(), func() ffi.Result {
		if event == nil {
			return ffi.ResultNullPointer
		}
		return ffi.SendEvent(ffi.EventType(event.event_type))
	}))
}

//export vinput_core_try_recv_command
func vinput_core_try_recv_command(out *C.vinput_command_t) C.vinput_result_t {
	return C.vinput_result_t(ffi.SafeCall(logging.Get(), func() ffi.Result {
		if out == nil {
			return ffi.ResultNullPointer
		}

		cmd, ok := ffi.TryRecvCommand()
		if !ok {
			return ffi.ResultNoData
		}

		out.command_type = C.vinput_command_type_t(cmd.Type)
		if cmd.Text == "" {
			out.text = nil
			out.text_len = 0
		} else {
			out.text = C.CString(cmd.Text)
			out.text_len = C.size_t(len(cmd.Text))
		}
		return ffi.ResultSuccess
	}))
}

// vinput_command_free releases the text buffer a filled vinput_command_t
// owns. The caller must call this exactly once per successful
// vinput_core_try_recv_command, after it has copied out the text.
//
//export vinput_command_free
func vinput_command_free(cmd *C.vinput_command_t) {
	if cmd == nil || cmd.text == nil {
		return
	}
	C.free(unsafe.Pointer(cmd.text))
	cmd.text = nil
	cmd.text_len = 0
}

//export vinput_core_version
func vinput_core_version() *C.char {
	return cVersion
}

func main() {}
