package asset

import (
	"errors"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/lumen-go/engine/event"
)

var errNoHandler = errors.New("no handler registered for asset type")

// LoadCallback receives the result of an asynchronous byte retrieval. It is
// invoked exactly once per Load call, with either an error or the data.
type LoadCallback func(err error, data []byte)

// Handler decodes one asset type.
type Handler interface {
	// Load retrieves the raw bytes for a URL and reports the result through
	// done exactly once. Load never blocks on decode work; it only fetches.
	//
	// Parameters:
	//   - url: the resource URL
	//   - done: the completion callback, invoked exactly once
	Load(url string, done LoadCallback)

	// Open decodes raw bytes into a live resource.
	//
	// Parameters:
	//   - url: the resource URL, used for naming and format hints
	//   - data: the raw bytes to decode
	//
	// Returns:
	//   - any: the decoded resource
	//   - error: error if the data cannot be interpreted
	Open(url string, data []byte) (any, error)

	// Patch reconciles the decoded resource with the asset's declarative
	// descriptor, resolving references through the registry as needed.
	//
	// Parameters:
	//   - a: the asset whose resource was just installed
	//   - r: the registry for reference resolution
	Patch(a Asset, r Registry)
}

// registry is the implementation of the Registry interface.
type registry struct {
	mu       sync.RWMutex
	assets   map[uint64]Asset
	loading  map[uint64]bool
	nextID   uint64
	handlers map[string]Handler
	events   event.Emitter

	pool     worker.DynamicWorkerPool
	workers  int
	nextTask int

	compMu      sync.Mutex
	completions []func()
}

// Registry defines the interface for the asset store: registration,
// asynchronous loading, and the keyed notifications ("add:<id>",
// "load:<id>", "error:<id>") that dependency resolution subscribes to.
//
// Loads are fetched on a worker pool but all decode work and notification
// delivery happens on the goroutine that calls Update, keeping resource and
// scene mutation single-threaded.
type Registry interface {
	// Add registers an asset, assigns its id, and fires "add:<id>".
	//
	// Parameters:
	//   - a: the asset to register
	//
	// Returns:
	//   - uint64: the assigned id
	Add(a Asset) uint64

	// Get retrieves a registered asset by id. Returns nil if not found.
	//
	// Parameters:
	//   - id: the asset id
	//
	// Returns:
	//   - Asset: the asset or nil
	Get(id uint64) Asset

	// Remove unregisters an asset by id. In-flight load completions for a
	// removed asset are dropped on delivery.
	//
	// Parameters:
	//   - id: the asset id
	//
	// Returns:
	//   - bool: true if an asset was removed
	Remove(id uint64) bool

	// Load starts fetching an asset's bytes on the worker pool and returns
	// immediately. Decode and the "load:<id>" notification are delivered by a
	// later Update call. Loading an already-loaded asset re-fires
	// "load:<id>" from the next Update; loading an already-loading asset is
	// a no-op.
	//
	// Parameters:
	//   - a: the asset to load
	Load(a Asset)

	// Once registers a one-shot handler for a registry event key, replacing
	// any previous one-shot handler for the same key.
	//
	// Parameters:
	//   - key: the event key (see AddEventKey, LoadEventKey, ErrorEventKey)
	//   - fn: the handler to invoke on the next fire
	Once(key string, fn event.HandlerFunc)

	// Off removes the one-shot handler for a registry event key, if any.
	//
	// Parameters:
	//   - key: the event key
	Off(key string)

	// Handler returns the handler registered for an asset type, or nil.
	//
	// Parameters:
	//   - assetType: the asset type name
	//
	// Returns:
	//   - Handler: the handler or nil
	Handler(assetType string) Handler

	// Update drains pending load completions on the calling goroutine,
	// running decode, patch, and notification delivery for each.
	//
	// Returns:
	//   - int: the number of completions processed
	Update() int
}

var _ Registry = &registry{}

// NewRegistry creates a new Registry with the specified options applied.
// The default handler set covers texture, container, and render assets.
//
// Parameters:
//   - options: a variadic list of RegistryBuilderOption functions to configure the Registry
//
// Returns:
//   - Registry: a new instance of Registry configured with the provided options
func NewRegistry(options ...RegistryBuilderOption) Registry {
	r := &registry{
		assets:   make(map[uint64]Asset),
		loading:  make(map[uint64]bool),
		nextID:   1,
		handlers: make(map[string]Handler),
		events:   event.NewEmitter(),
		workers:  2,
	}
	r.handlers[TypeTexture] = NewTextureHandler()
	r.handlers[TypeContainer] = NewContainerHandler()
	r.handlers[TypeRender] = NewRenderHandler()
	for _, option := range options {
		option(r)
	}
	// Queue size of 64 accommodates typical load bursts with headroom.
	r.pool = worker.NewDynamicWorkerPool(r.workers, 64, 1*time.Second)
	return r
}

func (r *registry) Add(a Asset) uint64 {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	a.SetID(id)
	r.assets[id] = a
	r.mu.Unlock()

	r.events.Fire(AddEventKey(id), a)
	return id
}

func (r *registry) Get(id uint64) Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.assets[id]
}

func (r *registry) Remove(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[id]; !ok {
		return false
	}
	delete(r.assets, id)
	return true
}

func (r *registry) Load(a Asset) {
	if a == nil {
		return
	}

	if a.Loaded() {
		// Deliver through the completion queue so notification ordering
		// matches the asynchronous path.
		r.enqueue(func() {
			r.events.Fire(LoadEventKey(a.ID()), a)
		})
		return
	}

	r.mu.Lock()
	if r.loading[a.ID()] {
		r.mu.Unlock()
		return
	}
	r.loading[a.ID()] = true
	r.nextTask++
	taskID := r.nextTask
	r.mu.Unlock()

	h := r.Handler(a.Type())
	if h == nil {
		r.enqueue(func() {
			r.finish(a, nil, errNoHandler, nil)
		})
		return
	}

	r.pool.SubmitTask(worker.Task{
		ID: taskID,
		Do: func() (any, error) {
			h.Load(a.FileURL(), func(err error, data []byte) {
				r.enqueue(func() {
					r.finish(a, h, err, data)
				})
			})
			return nil, nil
		},
	})
}

func (r *registry) Once(key string, fn event.HandlerFunc) {
	r.events.Once(key, fn)
}

func (r *registry) Off(key string) {
	r.events.Off(key)
}

func (r *registry) Handler(assetType string) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[assetType]
}

func (r *registry) Update() int {
	r.compMu.Lock()
	pending := r.completions
	r.completions = nil
	r.compMu.Unlock()

	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

// enqueue stages a completion for the next Update call.
func (r *registry) enqueue(fn func()) {
	r.compMu.Lock()
	r.completions = append(r.completions, fn)
	r.compMu.Unlock()
}

// finish runs the decode half of a load on the Update goroutine.
func (r *registry) finish(a Asset, h Handler, loadErr error, data []byte) {
	r.mu.Lock()
	delete(r.loading, a.ID())
	_, live := r.assets[a.ID()]
	r.mu.Unlock()

	// A superseded or removed asset's completion must not mutate shared state.
	if !live {
		return
	}

	if loadErr != nil {
		r.events.Fire(ErrorEventKey(a.ID()), loadErr)
		return
	}

	res, openErr := h.Open(a.FileURL(), data)
	if openErr != nil {
		r.events.Fire(ErrorEventKey(a.ID()), openErr)
		return
	}

	a.SetResource(res)
	a.SetLoaded(true)
	h.Patch(a, r)
	r.events.Fire(LoadEventKey(a.ID()), a)
}
