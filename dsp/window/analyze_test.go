package window

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-window/internal/testutil"
)

func TestEquivalentNoiseBandwidth(t *testing.T) {
	enbw, err := EquivalentNoiseBandwidth(testutil.Ones(64))
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(enbw, 1, 1e-12) {
		t.Fatalf("rectangular ENBW=%v, want 1", enbw)
	}

	enbw, err = EquivalentNoiseBandwidth(mustSamples(t, KindHann, 2048, false))
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(enbw, 1.5, 0.01) {
		t.Fatalf("hann ENBW=%v, want ~1.5", enbw)
	}

	if _, err := EquivalentNoiseBandwidth(nil); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("empty: err=%v, want ErrInvalidSize", err)
	}
	if _, err := EquivalentNoiseBandwidth([]float64{0, 0, 0}); !errors.Is(err, ErrNumericDegeneracy) {
		t.Fatalf("zero sum: err=%v, want ErrNumericDegeneracy", err)
	}
}

func TestGainsAgreeWithDefinitions(t *testing.T) {
	for _, info := range Catalog() {
		w := mustSamples(t, info.Kind, 64, false, testParams(info.Kind, 64)...)

		cg, err := CoherentGain(w)
		if err != nil {
			t.Fatalf("%s: %v", info.Name, err)
		}
		if cg != stat.Mean(w, nil) {
			t.Fatalf("%s: coherent gain %v != mean %v", info.Name, cg, stat.Mean(w, nil))
		}

		enbw, err := EquivalentNoiseBandwidth(w)
		if err != nil {
			t.Fatalf("%s: %v", info.Name, err)
		}
		pg, err := ProcessingGain(w)
		if err != nil {
			t.Fatalf("%s: %v", info.Name, err)
		}
		if pg != 1/enbw {
			t.Fatalf("%s: processing gain %v != 1/ENBW %v", info.Name, pg, 1/enbw)
		}
	}

	cg, err := CoherentGain(mustSamples(t, KindHamming, 4096, true))
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(cg, 0.54, 1e-9) {
		t.Fatalf("periodic hamming coherent gain=%v, want 0.54", cg)
	}

	if _, err := CoherentGain(nil); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("empty: err=%v", err)
	}
}

func TestScallopingLoss(t *testing.T) {
	// rectangular: |sin(pi/2)/(N sin(pi/2N))| -> 2/pi
	sl, err := ScallopingLoss(testutil.Ones(1024))
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(sl, 2/math.Pi, 1e-5) {
		t.Fatalf("rectangular scalloping loss=%v, want %v", sl, 2/math.Pi)
	}

	db, err := ScallopingLossDB(mustSamples(t, KindHann, 64, true))
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(db, -1.4236, 1e-3) {
		t.Fatalf("hann scalloping loss=%v dB, want -1.42", db)
	}

	db, err = ScallopingLossDB(mustSamples(t, KindFlatTop, 64, true))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(db) > 0.05 {
		t.Fatalf("flattop scalloping loss=%v dB, want ~0", db)
	}

	if _, err := ScallopingLoss(nil); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("empty: err=%v", err)
	}
	if _, err := ScallopingLoss([]float64{1, -1}); !errors.Is(err, ErrNumericDegeneracy) {
		t.Fatalf("zero DC: err=%v", err)
	}
}

func TestAnalyzeHann(t *testing.T) {
	a, err := Analyze(mustSamples(t, KindHann, 64, true))
	if err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		name      string
		got, want float64
		tol       float64
	}{
		{"CoherentGain", a.CoherentGain, 0.5, 1e-12},
		{"ENBW", a.ENBW, 1.5, 1e-9},
		{"ProcessingGain", a.ProcessingGain, 1 / 1.5, 1e-9},
		{"ScallopLossdB", a.ScallopLossdB, -1.4236, 1e-3},
		{"Bandwidth3dB", a.Bandwidth3dB, 1.44, 0.01},
		{"FirstMinimumBins", a.FirstMinimumBins, 2, 1e-3},
		{"HighestSidelobedB", a.HighestSidelobedB, -31.47, 0.1},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want, c.tol) {
			t.Errorf("%s=%v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestAnalyzeChebyshevSidelobes(t *testing.T) {
	for _, tc := range []struct {
		n  int
		at float64
	}{{31, 60}, {32, 60}, {64, 80}} {
		a, err := Analyze(mustSamples(t, KindChebyshev, tc.n, false, tc.at))
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(a.HighestSidelobedB, -tc.at, 0.5) {
			t.Fatalf("chebyshev(%d, %v): highest sidelobe %v dB", tc.n, tc.at, a.HighestSidelobedB)
		}
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(nil); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("empty: err=%v", err)
	}
	if _, err := Analyze([]float64{1, -1, 1, -1}); !errors.Is(err, ErrNumericDegeneracy) {
		t.Fatalf("zero DC: err=%v", err)
	}
}

func TestDTFTRetunesBetweenFrequencies(t *testing.T) {
	w := mustSamples(t, KindBlackmanHarris, 37, false)
	d := newDTFT(w)

	// out of order so every frequency depends on a clean retune
	for _, f := range []float64{0.21, 0, 0.013, 0.5, 0.0371, 0.013} {
		var re, im float64
		for n, x := range w {
			re += x * math.Cos(2*math.Pi*f*float64(n))
			im -= x * math.Sin(2*math.Pi*f*float64(n))
		}
		want := re*re + im*im
		if got := d.magSq(f); math.Abs(got-want) > 1e-9*math.Max(1, want) {
			t.Fatalf("f=%v: |W|^2=%v, want %v", f, got, want)
		}
	}
}
