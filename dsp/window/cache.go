package window

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-window/dsp/spectrum"
)

// Window wraps a Spec and memoizes its samples, frequency responses and
// analysis. It is safe for concurrent use.
type Window struct {
	mu        sync.Mutex
	spec      Spec
	opts      []Option
	samples   []float64
	responses map[int]spectrum.Response
	analysis  *Analysis
}

// New returns a Window for spec. Options are applied on every (re)generation.
func New(spec Spec, opts ...Option) (*Window, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	return &Window{spec: spec, opts: opts}, nil
}

// Spec returns the current configuration.
func (w *Window) Spec() Spec {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.spec
}

// Reset replaces the configuration and drops every cached result.
func (w *Window) Reset(spec Spec) error {
	if err := spec.validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.spec = spec
	w.samples = nil
	w.responses = nil
	w.analysis = nil

	return nil
}

// Samples returns a copy of the window samples, generating them on first use.
func (w *Window) Samples() ([]float64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, err := w.samplesLocked()
	if err != nil {
		return nil, err
	}
	return slices.Clone(s), nil
}

// Response returns the frequency response for at least minBins bins.
// Responses are cached per minBins value.
func (w *Window) Response(minBins int) (spectrum.Response, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if r, ok := w.responses[minBins]; ok {
		return r, nil
	}

	s, err := w.samplesLocked()
	if err != nil {
		return spectrum.Response{}, err
	}

	r, err := spectrum.FrequencyResponse(s, spectrum.WithMinBins(minBins))
	if err != nil {
		return spectrum.Response{}, err
	}

	if w.responses == nil {
		w.responses = make(map[int]spectrum.Response)
	}
	w.responses[minBins] = r

	return r, nil
}

// Analysis returns the spectral analysis of the window samples.
func (w *Window) Analysis() (Analysis, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.analysis != nil {
		return *w.analysis, nil
	}

	s, err := w.samplesLocked()
	if err != nil {
		return Analysis{}, err
	}

	a, err := Analyze(s)
	if err != nil {
		return Analysis{}, err
	}
	w.analysis = &a

	return a, nil
}

func (w *Window) samplesLocked() ([]float64, error) {
	if w.samples != nil {
		return w.samples, nil
	}

	s, err := Generate(w.spec, w.opts...)
	if err != nil {
		return nil, err
	}
	w.samples = s

	return s, nil
}

// Cache memoizes generated windows by Spec. It is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	opts    []Option
	entries map[Spec][]float64
}

// NewCache returns an empty cache. Options are applied to every generation.
func NewCache(opts ...Option) *Cache {
	return &Cache{
		opts:    opts,
		entries: make(map[Spec][]float64),
	}
}

// Samples returns a copy of the samples for spec, generating them on a miss.
func (c *Cache) Samples(spec Spec) ([]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.entries[spec]; ok {
		return slices.Clone(s), nil
	}

	s, err := Generate(spec, c.opts...)
	if err != nil {
		return nil, err
	}
	c.entries[spec] = s

	return slices.Clone(s), nil
}

// Invalidate drops the entry for spec.
func (c *Cache) Invalidate(spec Spec) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, spec)
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
