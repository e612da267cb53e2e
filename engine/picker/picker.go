package picker

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/wayfinder/engine/monitoring"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultParallelThreshold = 512
	defaultPoolQueueSize     = 64
	defaultPoolIdleTimeout   = time.Second
)

// Placeable is the only thing the picker knows about scene content:
// a stable id and a bounding sphere.
type Placeable interface {
	ID() uint64
	Position() mgl64.Vec3
	BoundingRadius() float64
}

// View supplies the matrix used to unproject pointer positions.
// camera.Camera satisfies it.
type View interface {
	InverseViewProjectionMatrix() mgl64.Mat4
}

// Hit describes the nearest candidate under a pick ray.
type Hit struct {
	ID        uint64
	Index     int
	Layer     int
	Distance  float64
	Point     mgl64.Vec3
	Candidate Placeable
}

// less orders hits by distance, then by candidate index.
func (h Hit) less(o Hit) bool {
	if h.Distance != o.Distance {
		return h.Distance < o.Distance
	}
	return h.Index < o.Index
}

type pickerImpl struct {
	mu     *sync.RWMutex
	closed bool

	pool              worker.DynamicWorkerPool
	workers           int
	parallelThreshold int
}

// Picker resolves pointer positions to the nearest candidate by ray/sphere tests.
type Picker interface {
	// Pick casts a ray through ndc and returns the nearest candidate it hits.
	// Ties in distance go to the lower candidate index.
	//
	// Parameters:
	//   - ndc: pointer position in normalized device coordinates
	//   - view: supplies the inverse view-projection matrix
	//   - candidates: the pickable set, read only
	//
	// Returns:
	//   - Hit: the nearest hit
	//   - bool: false when nothing is hit or the set is empty
	Pick(ndc mgl64.Vec2, view View, candidates []Placeable) (Hit, bool)

	// PickRay is Pick with a caller-supplied ray.
	//
	// Parameters:
	//   - ray: the world-space ray, with unit direction
	//   - candidates: the pickable set, read only
	//
	// Returns:
	//   - Hit: the nearest hit
	//   - bool: false when nothing is hit
	PickRay(ray Ray, candidates []Placeable) (Hit, bool)

	// PickLayers tries each layer in order and returns the first layer's nearest hit.
	// Earlier layers take precedence regardless of distance.
	//
	// Parameters:
	//   - ndc: pointer position in normalized device coordinates
	//   - view: supplies the inverse view-projection matrix
	//   - layers: candidate sets in precedence order
	//
	// Returns:
	//   - Hit: the hit, with Layer set to the layer index
	//   - bool: false when no layer is hit
	PickLayers(ndc mgl64.Vec2, view View, layers ...[]Placeable) (Hit, bool)

	// Close stops the worker pool once in-flight parallel picks finish.
	// Picks after Close run serially.
	Close()
}

var _ Picker = &pickerImpl{}

// NewPicker creates a Picker. Candidate sets at or above the parallel threshold
// are split across an automation worker pool.
//
// Parameters:
//   - options: functional options to configure the picker
//
// Returns:
//   - Picker: the newly created picker
func NewPicker(options ...PickerBuilderOption) Picker {
	p := &pickerImpl{
		mu:                &sync.RWMutex{},
		workers:           runtime.NumCPU(),
		parallelThreshold: defaultParallelThreshold,
	}
	for _, option := range options {
		option(p)
	}
	if p.workers > 1 {
		p.pool = worker.NewDynamicWorkerPool(p.workers, defaultPoolQueueSize, defaultPoolIdleTimeout)
		monitoring.Logf("[Picker] worker pool started: %d workers, parallel above %d candidates", p.workers, p.parallelThreshold)
	}
	return p
}

func (p *pickerImpl) Pick(ndc mgl64.Vec2, view View, candidates []Placeable) (Hit, bool) {
	if view == nil || len(candidates) == 0 {
		return Hit{}, false
	}
	ray, ok := RayFromNDC(ndc, view.InverseViewProjectionMatrix())
	if !ok {
		return Hit{}, false
	}
	return p.PickRay(ray, candidates)
}

func (p *pickerImpl) PickLayers(ndc mgl64.Vec2, view View, layers ...[]Placeable) (Hit, bool) {
	if view == nil {
		return Hit{}, false
	}
	ray, ok := RayFromNDC(ndc, view.InverseViewProjectionMatrix())
	if !ok {
		return Hit{}, false
	}
	for i, layer := range layers {
		if hit, ok := p.PickRay(ray, layer); ok {
			hit.Layer = i
			return hit, true
		}
	}
	return Hit{}, false
}

func (p *pickerImpl) PickRay(ray Ray, candidates []Placeable) (Hit, bool) {
	if len(candidates) == 0 {
		return Hit{}, false
	}

	// The read lock is held across the parallel cast so Close cannot stop the
	// pool between submit and the barrier.
	p.mu.RLock()
	if p.pool == nil || p.closed || len(candidates) < p.parallelThreshold {
		p.mu.RUnlock()
		return castRange(ray, candidates, 0, len(candidates))
	}
	defer p.mu.RUnlock()
	return p.castParallel(p.pool, ray, candidates)
}

func (p *pickerImpl) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.pool != nil {
		p.pool.Stop()
	}
}

type chunkResult struct {
	hit Hit
	ok  bool
}

// castParallel splits candidates into one contiguous chunk per worker and merges
// the per-chunk winners with the same ordering as the serial path.
func (p *pickerImpl) castParallel(pool worker.DynamicWorkerPool, ray Ray, candidates []Placeable) (Hit, bool) {
	chunks := min(p.workers, len(candidates))
	size := (len(candidates) + chunks - 1) / chunks
	results := make([]chunkResult, chunks)

	// pool.Wait() only returns once workers idle out, so a WaitGroup is the barrier.
	var wg sync.WaitGroup
	for c := range chunks {
		start := c * size
		end := min(start+size, len(candidates))
		if start >= end {
			continue
		}
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: c,
			Do: func() (any, error) {
				defer wg.Done()
				hit, ok := castRange(ray, candidates, start, end)
				results[c] = chunkResult{hit: hit, ok: ok}
				return nil, nil
			},
		})
	}
	wg.Wait()

	var best Hit
	found := false
	for _, r := range results {
		if r.ok && (!found || r.hit.less(best)) {
			best = r.hit
			found = true
		}
	}
	return best, found
}

func castRange(ray Ray, candidates []Placeable, start, end int) (Hit, bool) {
	var best Hit
	found := false
	for i := start; i < end; i++ {
		c := candidates[i]
		if c == nil {
			continue
		}
		t, ok := IntersectSphere(ray, c.Position(), c.BoundingRadius())
		if !ok {
			continue
		}
		hit := Hit{ID: c.ID(), Index: i, Distance: t, Point: ray.At(t), Candidate: c}
		if !found || hit.less(best) {
			best = hit
			found = true
		}
	}
	return best, found
}
