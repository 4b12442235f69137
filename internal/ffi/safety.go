package ffi

import "go.uber.org/zap"

// SafeCall runs fn and converts any panic into ResultInternalError. A panic
// crossing the cgo boundary unwinds into the host process instead of this
// one, so every exported entrypoint must run through this first.
func SafeCall(logger *zap.Logger, fn func() Result) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Error("ffi: recovered panic", zap.Any("panic", r))
			}
			result = ResultInternalError
		}
	}()
	return fn()
}
