package colorx

import "testing"

func TestAddSaturates(t *testing.T) {
	got := Add(Color{200, 0, 100}, Color{100, 255, 100})
	want := Color{255, 255, 200}
	if !Equal(got, want) {
		t.Fatalf("Add() = %+v, want %+v", got, want)
	}
}

func TestMulSaturates(t *testing.T) {
	got := Mul(Color{100, 100, 100}, 3)
	want := Color{255, 255, 255}
	if !Equal(got, want) {
		t.Fatalf("Mul() = %+v, want %+v", got, want)
	}
}

func TestMulFraction(t *testing.T) {
	got := Mul(Color{255, 0, 0}, 1.0/3)
	if got.R != 85 {
		t.Fatalf("Mul(1/3) red = %d, want 85", got.R)
	}
}

func TestGray(t *testing.T) {
	got := Gray(0.5)
	if got.R != 127 || got.G != 127 || got.B != 127 {
		t.Fatalf("Gray(0.5) = %+v", got)
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Color{1, 2, 3}, Color{1, 2, 3}) {
		t.Fatal("expected equal")
	}
	if Equal(Color{1, 2, 3}, Color{1, 2, 4}) {
		t.Fatal("expected not equal")
	}
}
