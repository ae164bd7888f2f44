package services

import (
	"context"
	"testing"
)

func TestNumberGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("numbers are 12 digits and distinct", func(t *testing.T) {
		store := newFakeStore()
		gen := NewNumberGenerator(store, NewSeededSource(42))

		numbers, err := gen.Generate(ctx, 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(numbers) != 5 {
			t.Fatalf("expected 5 numbers, got %d", len(numbers))
		}

		seen := make(map[string]bool)
		for _, n := range numbers {
			if len(n) != 12 {
				t.Errorf("number %q is not 12 digits", n)
			}
			if n[0] == '0' {
				t.Errorf("number %q leaves the 12-digit space", n)
			}
			if seen[n] {
				t.Errorf("number %q generated twice", n)
			}
			seen[n] = true
		}
	})

	t.Run("skips numbers already issued", func(t *testing.T) {
		store := newFakeStore()
		// The script makes the generator propose offset 0 twice, then 1.
		src := &scriptSource{vals: []int64{0, 0, 1}}
		gen := NewNumberGenerator(store, src)

		store.numbers["100000000000"] = true

		numbers, err := gen.Generate(ctx, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if numbers[0] != "100000000001" {
			t.Errorf("expected the occupied number to be skipped, got %s", numbers[0])
		}
	})
}
