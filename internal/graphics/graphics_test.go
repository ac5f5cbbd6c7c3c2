package graphics

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestErrorString(t *testing.T) {
	cases := map[uint32]string{
		gl.NO_ERROR:                      "GL_NO_ERROR",
		gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
		gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
		gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
		0x0503:                           "GL_STACK_OVERFLOW",
		0x0504:                           "GL_STACK_UNDERFLOW",
		gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
		gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
		0xBEEF:                           "GL_UNKNOWN_ERROR(0xBEEF)",
	}
	for code, want := range cases {
		if got := ErrorString(code); got != want {
			t.Errorf("ErrorString(0x%X) = %q, want %q", code, got, want)
		}
	}
}

func queue(codes ...uint32) func() uint32 {
	return func() uint32 {
		if len(codes) == 0 {
			return gl.NO_ERROR
		}
		c := codes[0]
		codes = codes[1:]
		return c
	}
}

func TestDrainErrorsClean(t *testing.T) {
	if err := drainErrors("draw", queue()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestDrainErrorsReportsFirst(t *testing.T) {
	err := drainErrors("draw", queue(gl.INVALID_OPERATION, gl.INVALID_VALUE))
	var glErr *GLError
	if !errors.As(err, &glErr) {
		t.Fatalf("expected *GLError, got %T", err)
	}
	if glErr.Code != gl.INVALID_OPERATION || glErr.Op != "draw" {
		t.Errorf("unexpected error %+v", glErr)
	}
	if !strings.Contains(err.Error(), "GL_INVALID_OPERATION") {
		t.Errorf("message missing code name: %q", err.Error())
	}
}

func TestDrainErrorsBounded(t *testing.T) {
	calls := 0
	err := drainErrors("lost", func() uint32 {
		calls++
		return gl.OUT_OF_MEMORY
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != maxDrainedErrors {
		t.Errorf("GetError called %d times, want %d", calls, maxDrainedErrors)
	}
}

func TestStageName(t *testing.T) {
	if stageName(gl.VERTEX_SHADER) != "vertex" || stageName(gl.FRAGMENT_SHADER) != "fragment" {
		t.Error("unexpected stage names")
	}
}

func TestTrimLog(t *testing.T) {
	if got := trimLog("0:1(1): error: syntax\n\x00\x00"); got != "0:1(1): error: syntax" {
		t.Errorf("got %q", got)
	}
}

func TestContextInfoLines(t *testing.T) {
	lines := ContextInfo{Major: 4, Minor: 1, Version: "4.1 Mesa"}.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "GL context version: 4.1" || lines[1] != "Using OpenGL version: 4.1 Mesa" {
		t.Errorf("unexpected banner %q", lines)
	}
}

func TestContextInfoLinesWithRenderer(t *testing.T) {
	lines := ContextInfo{Major: 4, Minor: 1, Version: "4.1 Mesa", Renderer: "llvmpipe"}.Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[2] != "Renderer: llvmpipe" {
		t.Errorf("unexpected renderer line %q", lines[2])
	}
}
