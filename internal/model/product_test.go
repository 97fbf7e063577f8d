package model

import "testing"

func TestValidUnit(t *testing.T) {
	tests := []struct {
		unit     string
		expected bool
	}{
		{UnitUnidade, true},
		{UnitCaixa, true},
		{UnitPacote, true},
		{UnitLitro, true},
		{UnitGalao, true},
		{"kg", false},
		{"UN", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidUnit(tt.unit); got != tt.expected {
			t.Errorf("ValidUnit(%q) = %v, want %v", tt.unit, got, tt.expected)
		}
	}
}

func TestLitersEquivalent(t *testing.T) {
	p := Product{Stock: 4, Unit: UnitGalao}

	if _, ok := p.LitersEquivalent(); ok {
		t.Error("expected no liters equivalent without a conversion factor")
	}

	factor := 5.0
	p.ConversionFactor = &factor
	liters, ok := p.LitersEquivalent()
	if !ok {
		t.Fatal("expected a liters equivalent with a conversion factor")
	}
	if liters != 20 {
		t.Errorf("expected 20 liters, got %v", liters)
	}
}
