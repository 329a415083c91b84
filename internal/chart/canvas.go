package chart

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/drakos74/silhouette/internal/validate"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

// Figures is the process wide registry.
// Canvases opened on it stay there until they are closed.
var Figures = NewRegistry()

// Registry keeps track of the open canvases.
type Registry struct {
	canvases map[string]*Canvas
	order    []string
	mutex    *sync.RWMutex
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		canvases: make(map[string]*Canvas),
		order:    make([]string, 0),
		mutex:    new(sync.RWMutex),
	}
}

// Open creates a new canvas and registers it.
func (r *Registry) Open() *Canvas {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	c := &Canvas{
		ID:       uuid.New().String(),
		Plot:     plot.New(),
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		registry: r,
	}
	r.canvases[c.ID] = c
	r.order = append(r.order, c.ID)
	log.Debug().Str("canvas", c.ID).Int("open", len(r.canvases)).Msg("opened canvas")
	return c
}

// Len returns the number of open canvases.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.canvases)
}

// Canvases returns the open canvases, oldest first.
func (r *Registry) Canvases() []*Canvas {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	cc := make([]*Canvas, 0, len(r.order))
	for _, id := range r.order {
		cc = append(cc, r.canvases[id])
	}
	return cc
}

// Get returns the open canvas with the given id.
func (r *Registry) Get(id string) (*Canvas, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	c, ok := r.canvases[id]
	return c, ok
}

// Close releases the canvas with the given id.
// Unknown ids are ignored.
func (r *Registry) Close(id string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.canvases[id]; !ok {
		return
	}
	delete(r.canvases, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	log.Debug().Str("canvas", id).Int("open", len(r.canvases)).Msg("closed canvas")
}

// CloseAll releases every open canvas.
func (r *Registry) CloseAll() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.canvases = make(map[string]*Canvas)
	r.order = make([]string, 0)
}

// Canvas is a single figure.
type Canvas struct {
	ID       string
	Plot     *plot.Plot
	Width    vg.Length
	Height   vg.Length
	registry *Registry
}

// Save writes the canvas to the given path on a white background.
// The image format follows the file extension.
func (c *Canvas) Save(path string) error {
	if err := validate.Path("path", path); err != nil {
		return err
	}
	c.Plot.BackgroundColor = color.White
	if err := c.Plot.Save(c.Width, c.Height, path); err != nil {
		log.Error().Err(err).Str("canvas", c.ID).Str("path", path).Msg("could not save canvas")
		return fmt.Errorf("could not save canvas to '%s': %w", path, err)
	}
	log.Info().Str("canvas", c.ID).Str("path", path).Msg("saved canvas")
	return nil
}

// Open reports whether the canvas is still registered.
func (c *Canvas) Open() bool {
	_, ok := c.registry.Get(c.ID)
	return ok
}

// Close releases the canvas. Closing twice is a no-op.
func (c *Canvas) Close() {
	c.registry.Close(c.ID)
}
