package webkit

import (
	"encoding/json"
	"fmt"
	"unsafe"

	"github.com/bnema/puregotk-webkit/webkit"

	"github.com/bnema/websurface/internal/application/port"
)

// WebKit error codes that mean the load was superseded rather than failed.
const (
	policyErrorFrameLoadInterrupted = 102
	networkErrorCancelled           = 302
)

// loadErrorCode maps a WebKit load error code to the engine-neutral code.
func loadErrorCode(code int32) port.ErrorCode {
	switch code {
	case 0:
		return port.ErrNone
	case policyErrorFrameLoadInterrupted, networkErrorCancelled:
		return port.ErrAborted
	default:
		return port.ErrFailed
	}
}

func terminationStatus(reason webkit.WebProcessTerminationReason) port.TerminationStatus {
	switch reason {
	case webkit.WebProcessCrashedValue:
		return port.TerminationCrashed
	case webkit.WebProcessExceededMemoryLimitValue:
		return port.TerminationOutOfMemory
	case webkit.WebProcessTerminatedByApiValue:
		return port.TerminationKilled
	default:
		return port.TerminationAbnormal
	}
}

// gError mirrors the C layout of GError.
type gError struct {
	domain  uint32
	code    int32
	message *byte
}

// readGError extracts code and message from a GError pointer handed to a
// signal callback. The pointer is owned by GLib and only valid during the call.
func readGError(ptr uintptr) (int32, string) {
	if ptr == 0 {
		return 0, ""
	}
	e := (*gError)(unsafe.Pointer(ptr)) //nolint:govet // GLib-owned memory
	return e.code, cString(e.message)
}

func cString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// decodeScriptMessage parses a message posted by the page shim.
func decodeScriptMessage(raw string) (port.ProcessMessage, error) {
	var msg port.ProcessMessage
	if raw == "" {
		return msg, fmt.Errorf("empty script message")
	}
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return msg, fmt.Errorf("decode script message: %w", err)
	}
	if msg.Name == "" {
		return msg, fmt.Errorf("script message without name")
	}
	return msg, nil
}
