package window

import (
	"errors"
	"sync"
	"testing"

	"github.com/cwbudde/algo-window/internal/testutil"
)

func TestWindowMemoizesAndResets(t *testing.T) {
	calls := 0
	i0 := func(x float64) float64 {
		calls++
		return defaultConfig().besselI0(x)
	}

	w, err := New(mustSpec(t, KindKaiser, 16, false, 3), WithBesselI0(i0))
	if err != nil {
		t.Fatal(err)
	}

	first, err := w.Samples()
	if err != nil {
		t.Fatal(err)
	}
	n := calls

	first[0] = 42
	second, err := w.Samples()
	if err != nil {
		t.Fatal(err)
	}
	if calls != n {
		t.Fatalf("samples regenerated: %d backend calls, want %d", calls, n)
	}
	if second[0] == 42 {
		t.Fatal("Samples must return a copy")
	}

	r1, err := w.Response(64)
	if err != nil {
		t.Fatal(err)
	}
	if r1.Len() != 64 || r1.WindowLen() != 16 {
		t.Fatalf("response len=%d windowLen=%d", r1.Len(), r1.WindowLen())
	}
	r2, err := w.Response(2000)
	if err != nil {
		t.Fatal(err)
	}
	if r2.Len() != 2048 {
		t.Fatalf("response len=%d, want 2048", r2.Len())
	}

	if err := w.Reset(mustSpec(t, KindHann, 4, false)); err != nil {
		t.Fatal(err)
	}
	if w.Spec().Kind() != KindHann {
		t.Fatalf("spec not replaced: %v", w.Spec())
	}
	got, err := w.Samples()
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.75, 0.75, 0}, 1e-12)

	r3, err := w.Response(64)
	if err != nil {
		t.Fatal(err)
	}
	if r3.WindowLen() != 4 {
		t.Fatalf("stale response after Reset: windowLen=%d", r3.WindowLen())
	}
}

func TestWindowAnalysis(t *testing.T) {
	w, err := New(mustSpec(t, KindRectangular, 32, false))
	if err != nil {
		t.Fatal(err)
	}

	a, err := w.Analysis()
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(a.ENBW, 1, 1e-12) || !almostEqual(a.CoherentGain, 1, 1e-12) {
		t.Fatalf("unexpected analysis %+v", a)
	}

	if err := w.Reset(mustSpec(t, KindHann, 64, true)); err != nil {
		t.Fatal(err)
	}
	a, err = w.Analysis()
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(a.ENBW, 1.5, 1e-9) {
		t.Fatalf("analysis not recomputed after Reset: ENBW=%v", a.ENBW)
	}
}

func TestWindowErrors(t *testing.T) {
	if _, err := New(Spec{kind: KindKaiser, size: 8}); !errors.Is(err, ErrInvalidArity) {
		t.Fatalf("New with invalid spec: err=%v", err)
	}

	w, err := New(mustSpec(t, KindKaiser, 8, false, 3), WithBesselI0(nil))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Samples(); !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("Samples err=%v", err)
	}
	if _, err := w.Response(16); !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("Response err=%v", err)
	}

	empty, err := New(mustSpec(t, KindHann, 0, false))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := empty.Analysis(); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Analysis of empty window: err=%v", err)
	}
}

func TestCache(t *testing.T) {
	c := NewCache()
	hann := mustSpec(t, KindHann, 8, false)
	kaiser := mustSpec(t, KindKaiser, 8, false, 3)

	a, err := c.Samples(hann)
	if err != nil {
		t.Fatal(err)
	}
	a[0] = 42

	b, err := c.Samples(hann)
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != 0 {
		t.Fatalf("cached entry was mutated: %v", b[0])
	}

	if _, err := c.Samples(kaiser); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len=%d, want 2", c.Len())
	}

	c.Invalidate(hann)
	if c.Len() != 1 {
		t.Fatalf("Len=%d after Invalidate, want 1", c.Len())
	}

	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("Len=%d after Purge, want 0", c.Len())
	}

	failing := NewCache(WithEigensolver(nil))
	if _, err := failing.Samples(mustSpec(t, KindDPSS, 8, false, 2)); !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("err=%v", err)
	}
	if failing.Len() != 0 {
		t.Fatal("failed generation must not be cached")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache()
	specs := []Spec{
		mustSpec(t, KindHann, 256, true),
		mustSpec(t, KindChebyshev, 255, false, 80),
		mustSpec(t, KindDPSS, 128, false, 4),
	}

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			spec := specs[i%len(specs)]
			if _, err := c.Samples(spec); err != nil {
				t.Errorf("%s: %v", spec, err)
			}
		}()
	}
	wg.Wait()

	if c.Len() != len(specs) {
		t.Fatalf("Len=%d, want %d", c.Len(), len(specs))
	}
}
