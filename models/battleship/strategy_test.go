package battleship_test

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

func TestStrategies(t *testing.T) {
	tests := []struct {
		kind      mb.PlayerKind
		sizes     []int
		allowed   []int
		expectErr error
	}{
		{kind: mb.PlayerKindGreedy, sizes: []int{1, 2, 3}, allowed: []int{3}},
		{kind: mb.PlayerKindGreedy, sizes: []int{2, 1}, allowed: []int{2}},
		{kind: mb.PlayerKindGreedy, sizes: nil, expectErr: cerr.ErrNoChoice},
		{kind: mb.PlayerKindRandom, sizes: []int{1, 3}, allowed: []int{1, 3}},
		{kind: mb.PlayerKindRandom, sizes: []int{2}, allowed: []int{2}},
		{kind: mb.PlayerKindRandom, sizes: []int{}, expectErr: cerr.ErrNoChoice},
	}

	for _, test := range tests {
		strategy, err := mb.NewStrategy(test.kind, newRng(3))
		if err != nil {
			t.Fatal(err)
		}

		for i := 0; i < 20; i++ {
			size, err := strategy.ChooseShip(test.sizes)
			if test.expectErr != nil {
				if !errors.Is(err, test.expectErr) {
					t.Fatalf("expected error: %v\tgot: %v", test.expectErr, err)
				}
				break
			}
			if err != nil {
				t.Fatal(err)
			}

			ok := false
			for _, a := range test.allowed {
				ok = ok || a == size
			}
			if !ok {
				t.Fatalf("expected one of: %v\tgot: %d\tkind: %s", test.allowed, size, test.kind)
			}
		}
	}
}

func TestNewStrategyRejectsHuman(t *testing.T) {
	if _, err := mb.NewStrategy(mb.PlayerKindHuman, newRng(1)); !errors.Is(err, cerr.ErrInvalidArgument) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrInvalidArgument, err)
	}
}

func TestChooseSquare(t *testing.T) {
	squares := rectangle(2, 4, 2, 4)

	for _, kind := range []mb.PlayerKind{mb.PlayerKindRandom, mb.PlayerKindGreedy} {
		first, _ := mb.NewStrategy(kind, newRng(11))
		second, _ := mb.NewStrategy(kind, newRng(11))

		for i := 0; i < 20; i++ {
			a, err := first.ChooseSquare(squares)
			if err != nil {
				t.Fatal(err)
			}
			b, err := second.ChooseSquare(squares)
			if err != nil {
				t.Fatal(err)
			}

			if !squares.Contains(a) {
				t.Fatalf("chosen square not in set\tx: %d\ty: %d", a.X, a.Y)
			}
			if a != b {
				t.Fatalf("expected same seed to choose the same square\tgot: %v and %v", a, b)
			}
		}

		if _, err := first.ChooseSquare(mb.CoordinatesSet{}); !errors.Is(err, cerr.ErrNoChoice) {
			t.Fatalf("expected error: %v\tgot: %v", cerr.ErrNoChoice, err)
		}
	}
}
