package spectrum

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-window/internal/testutil"
)

func TestParseUnit(t *testing.T) {
	for _, u := range []Unit{UnitNyquist, UnitSample, UnitBin} {
		got, err := ParseUnit(u.String())
		if err != nil || got != u {
			t.Fatalf("ParseUnit(%q)=%v,%v", u.String(), got, err)
		}
	}

	if _, err := ParseUnit("hz"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestAxis(t *testing.T) {
	tests := []struct {
		unit Unit
		want []float64
	}{
		{UnitNyquist, []float64{-1, -0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75}},
		{UnitSample, []float64{-0.5, -0.375, -0.25, -0.125, 0, 0.125, 0.25, 0.375}},
		{UnitBin, []float64{-2, -1.5, -1, -0.5, 0, 0.5, 1, 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			got, err := Axis(tt.unit, 8, 4)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-15)
		})
	}
}

func TestBinToUnitErrors(t *testing.T) {
	if _, err := BinToUnit(UnitSample, 1, 0, 4); err == nil {
		t.Fatal("expected error for zero fftSize")
	}
	if _, err := BinToUnit(UnitBin, 1, 8, 0); err == nil {
		t.Fatal("expected error for zero window length")
	}
	if _, err := BinToUnit(Unit(9), 1, 8, 4); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestAxisRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -4} {
		ax, err := Axis(UnitNyquist, size, 8)
		if err == nil {
			t.Fatalf("Axis(fftSize=%d): expected error, got %v", size, ax)
		}
	}

	if _, err := (Response{}).Axis(UnitSample); err == nil {
		t.Fatal("expected error for an empty response")
	}
}

func TestResponseAxis(t *testing.T) {
	r, err := FrequencyResponse(testutil.Ones(4), WithMinBins(8))
	if err != nil {
		t.Fatal(err)
	}
	ax, err := r.Axis(UnitBin)
	if err != nil {
		t.Fatal(err)
	}
	if len(ax) != r.Len() || ax[r.Len()/2] != 0 {
		t.Fatalf("unexpected axis %v", ax)
	}
}
