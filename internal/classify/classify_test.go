package classify

import (
	"math"
	"testing"
)

func TestIsNaN(t *testing.T) {
	cases := []struct {
		v    float64
		want bool
	}{
		{math.NaN(), true},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{0, false},
		{-0.0, false},
		{1.5, false},
	}
	for _, c := range cases {
		if got := IsNaN(c.v); got != c.want {
			t.Errorf("IsNaN(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestIsInf(t *testing.T) {
	if !IsInf(math.Inf(1)) || !IsInf(math.Inf(-1)) {
		t.Fail()
	}
	if IsInf(math.NaN()) || IsInf(0) || IsInf(1e300) {
		t.Fail()
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		v    float64
		want Class
	}{
		{math.NaN(), NaN},
		{math.Inf(1), PosInf},
		{math.Inf(-1), NegInf},
		{0, Finite},
		{math.SmallestNonzeroFloat64, Finite},
		{-42.5, Finite},
	}
	for _, c := range cases {
		if got := Classify(c.v); got != c.want {
			t.Errorf("Classify(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
