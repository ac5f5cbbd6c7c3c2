package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Environment variables read by LoadEnv
const (
	EnvVertexShader   = "GL_TEMPLATE_VERT"
	EnvFragmentShader = "GL_TEMPLATE_FRAG"
	EnvWindowSize     = "GL_TEMPLATE_SIZE"  // "WIDTHxHEIGHT"
	EnvFPSLimit       = "GL_TEMPLATE_FPS"   // 0 = uncapped
	EnvClearColor     = "GL_TEMPLATE_CLEAR" // "r,g,b" or "r,g,b,a"
	EnvVSync          = "GL_TEMPLATE_VSYNC" // any strconv.ParseBool value
)

// LoadEnv applies overrides from the environment. Unset variables keep their
// defaults; malformed ones are skipped and reported in the returned error.
func LoadEnv() error {
	var errs []error

	SetShaderPaths(os.Getenv(EnvVertexShader), os.Getenv(EnvFragmentShader))

	if v, ok := os.LookupEnv(EnvWindowSize); ok {
		w, h, err := parseSize(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvWindowSize, err))
		} else {
			SetWindowSize(w, h)
		}
	}

	if v, ok := os.LookupEnv(EnvFPSLimit); ok {
		limit, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvFPSLimit, err))
		} else {
			SetFPSLimit(limit)
		}
	}

	if v, ok := os.LookupEnv(EnvClearColor); ok {
		c, err := parseColor(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvClearColor, err))
		} else {
			SetClearColor(c)
		}
	}

	if v, ok := os.LookupEnv(EnvVSync); ok {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvVSync, err))
		} else {
			SetVSync(on)
		}
	}

	return errors.Join(errs...)
}

func parseSize(v string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(v)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WIDTHxHEIGHT, got %q", v)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size must be positive, got %dx%d", w, h)
	}
	return w, h, nil
}

func parseColor(v string) (mgl32.Vec4, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return mgl32.Vec4{}, fmt.Errorf("want 3 or 4 components, got %q", v)
	}
	c := mgl32.Vec4{0, 0, 0, 1}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec4{}, err
		}
		c[i] = float32(f)
	}
	return c, nil
}
