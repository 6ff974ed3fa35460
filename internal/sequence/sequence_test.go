package sequence

import (
	"math/rand"
	"testing"

	apperrors "firstelem/internal/errors"
)

func TestFirstElement(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   int64
	}{
		{"scenario A", []int64{7, 2, 9}, 7},
		{"scenario B", []int64{42}, 42},
		{"scenario D", []int64{-1, 0, 100, 3, 3}, -1},
		{"zero first", []int64{0, 5}, 0},
		{"int64 bounds", []int64{-9223372036854775808, 9223372036854775807}, -9223372036854775808},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstElement(tt.values)
			if err != nil {
				t.Fatalf("FirstElement(%v) error = %v", tt.values, err)
			}
			if got != tt.want {
				t.Errorf("FirstElement(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func TestFirstElement_Empty(t *testing.T) {
	for _, values := range [][]int64{nil, {}} {
		_, err := FirstElement(values)
		if err == nil {
			t.Fatalf("FirstElement(%v) should fail", values)
		}
		if !apperrors.Is(err, apperrors.EmptyArrayAccess) {
			t.Errorf("FirstElement(%v) error = %v, want EMPTY_ARRAY_ACCESS", values, err)
		}
	}
}

func TestFirst_MatchesIndexZero(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		s := NewInts(1 + r.Intn(64))
		for j := range s {
			s[j] = r.Int63() - r.Int63()
		}

		got, err := First(s)
		if err != nil {
			t.Fatalf("First(%v) error = %v", s, err)
		}
		if got != s[0] {
			t.Fatalf("First(%v) = %d, want %d", s, got, s[0])
		}
	}
}

func TestFirst_SingleReadRegardlessOfLength(t *testing.T) {
	for _, n := range []int{1, 2, 10, 1000, 100000} {
		c := NewCounting(NewInts(n))

		if _, err := First(c); err != nil {
			t.Fatalf("First(len=%d) error = %v", n, err)
		}
		if c.Reads() != 1 {
			t.Errorf("First(len=%d) read %d elements, want 1", n, c.Reads())
		}
	}
}

func TestFirst_EmptyDoesNotRead(t *testing.T) {
	c := NewCounting(NewInts(0))

	if _, err := First(c); err == nil {
		t.Fatal("First on empty sequence should fail")
	}
	if c.Reads() != 0 {
		t.Errorf("Reads() = %d, want 0", c.Reads())
	}
}
