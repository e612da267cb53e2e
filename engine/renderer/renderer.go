package renderer

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/Carmen-Shannon/wayfinder/engine/camera"
	"github.com/Carmen-Shannon/wayfinder/engine/monitoring"
	"github.com/Carmen-Shannon/wayfinder/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width, height int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	pendingClear         color.Color
}

// Renderer presents frames to a window surface. Each frame it uploads the
// camera uniform, clears the target and hands the open render pass to a
// caller-supplied draw hook. Scene geometry lives with the caller.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes how frames are delivered. Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor changes the color the main pass clears to.
	//
	// Parameters:
	//   - c: the clear color
	SetClearColor(c color.Color)

	// WriteCamera uploads the camera uniform used by the next frame.
	//
	// Parameters:
	//   - u: the uniform produced by camera.Camera.Uniform
	WriteCamera(u camera.GPUCameraUniform)

	// CameraBindGroupLayout returns the layout of the camera bind group, for
	// building pipelines that read the camera uniform.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the layout
	CameraBindGroupLayout() *wgpu.BindGroupLayout

	// RenderFrame acquires the next surface texture, runs hook inside the main
	// render pass, submits and presents.
	//
	// Parameters:
	//   - hook: draws scene content, may be nil to only clear
	//
	// Returns:
	//   - error: error if the frame could not be acquired or the hook failed
	RenderFrame(hook DrawHook) error

	// Release frees GPU resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates the GPU backend for win's surface and configures it at the window size.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - win: the window to present into
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	if win == nil {
		panic("renderer requires a window")
	}
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	if r.pendingClear != nil {
		r.backend.SetClearColor(toWGPUColor(r.pendingClear))
	}

	r.Resize(win.Width(), win.Height())
	monitoring.Logf("[Renderer] surface configured at %dx%d (msaa %d)", r.width, r.height, msaa)
	return r
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) SetClearColor(c color.Color) {
	r.backend.SetClearColor(toWGPUColor(c))
}

func (r *renderer) WriteCamera(u camera.GPUCameraUniform) {
	r.backend.WriteCamera(u.Marshal())
}

func (r *renderer) CameraBindGroupLayout() *wgpu.BindGroupLayout {
	return r.backend.CameraBindGroupLayout()
}

func (r *renderer) RenderFrame(hook DrawHook) error {
	if err := r.backend.BeginFrame(); err != nil {
		return fmt.Errorf("failed to begin frame: %w", err)
	}

	var hookErr error
	if hook != nil {
		r.mu.Lock()
		f := r.backend.Frame()
		f.Width, f.Height = r.width, r.height
		r.mu.Unlock()
		hookErr = hook(f)
	}

	r.backend.EndFrame()
	r.backend.Present()
	if hookErr != nil {
		return fmt.Errorf("draw hook failed: %w", hookErr)
	}
	return nil
}

func (r *renderer) Release() {
	r.backend.Release()
}

// toWGPUColor converts a Go color to the normalized form wgpu clears with.
func toWGPUColor(c color.Color) wgpu.Color {
	cr, cg, cb, ca := c.RGBA()
	return wgpu.Color{
		R: float64(cr) / 0xffff,
		G: float64(cg) / 0xffff,
		B: float64(cb) / 0xffff,
		A: float64(ca) / 0xffff,
	}
}
