package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Legacy error codes are not exported by the core profile bindings.
const (
	stackOverflow  = 0x0503
	stackUnderflow = 0x0504
)

// maxDrainedErrors bounds the GetError loop; a lost context can report errors forever.
const maxDrainedErrors = 16

// GLError is a driver error observed after a GL operation
type GLError struct {
	Op   string
	Code uint32
}

func (e *GLError) Error() string {
	return fmt.Sprintf("GL error after %s: %s", e.Op, ErrorString(e.Code))
}

// ErrorString names a GL error code the way gluErrorString does
func ErrorString(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case stackOverflow:
		return "GL_STACK_OVERFLOW"
	case stackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("GL_UNKNOWN_ERROR(0x%04X)", code)
	}
}

// CheckError drains the GL error queue and reports the first error, if any
func CheckError(op string) error {
	return drainErrors(op, gl.GetError)
}

func drainErrors(op string, next func() uint32) error {
	var first uint32
	for i := 0; i < maxDrainedErrors; i++ {
		code := next()
		if code == gl.NO_ERROR {
			break
		}
		if first == gl.NO_ERROR {
			first = code
		}
	}
	if first == gl.NO_ERROR {
		return nil
	}
	return &GLError{Op: op, Code: first}
}
