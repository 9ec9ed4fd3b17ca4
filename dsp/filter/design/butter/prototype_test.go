package butter

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestPrototypePoles_InvalidOrder(t *testing.T) {
	for _, order := range []int{0, -1, -8} {
		if _, err := PrototypePoles(order); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("order %d: err = %v, want ErrInvalidOrder", order, err)
		}
	}
}

func TestPrototypePoles_LeftHalfPlane(t *testing.T) {
	for order := 1; order <= 16; order++ {
		poles, err := PrototypePoles(order)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		if len(poles) != order {
			t.Fatalf("order %d: got %d poles", order, len(poles))
		}
		for k, p := range poles {
			if real(p) >= 0 {
				t.Fatalf("order %d pole %d = %v not in left half-plane", order, k, p)
			}
		}
	}
}

func TestPrototypePoles_OnUnitCircle(t *testing.T) {
	for order := 1; order <= 16; order++ {
		poles, _ := PrototypePoles(order)
		for k, p := range poles {
			if math.Abs(cmplx.Abs(p)-1) > 1e-12 {
				t.Fatalf("order %d pole %d: |p| = %v", order, k, cmplx.Abs(p))
			}
		}
	}
}

func TestPrototypePoles_ConjugateClosure(t *testing.T) {
	for order := 1; order <= 16; order++ {
		poles, _ := PrototypePoles(order)

		realCount := 0
		for k, p := range poles {
			// The generation formula pairs index k with order-1-k.
			partner := poles[order-1-k]
			if cmplx.Abs(cmplx.Conj(p)-partner) > 1e-12 {
				t.Fatalf("order %d: pole %d (%v) and %d (%v) not conjugate",
					order, k, p, order-1-k, partner)
			}
			if math.Abs(imag(p)) < 1e-9 {
				realCount++
			}
		}

		wantReal := order % 2
		if realCount != wantReal {
			t.Fatalf("order %d: %d real poles, want %d", order, realCount, wantReal)
		}
	}
}

func TestPrototypeSections_CountAndKinds(t *testing.T) {
	for order := 1; order <= 12; order++ {
		sections := prototypeSections(order)
		if len(sections) != (order+1)/2 {
			t.Fatalf("order %d: %d sections, want %d", order, len(sections), (order+1)/2)
		}

		pairs, reals := 0, 0
		for _, s := range sections {
			if s.conjugate {
				pairs++
			} else {
				reals++
				if imag(s.pole) != 0 {
					t.Fatalf("order %d: real section carries imaginary part %v", order, imag(s.pole))
				}
			}
		}

		if pairs != order/2 || reals != order%2 {
			t.Fatalf("order %d: pairs=%d reals=%d", order, pairs, reals)
		}
	}
}

func TestPrototypeSections_OddOrderRealPoleAtMinusOne(t *testing.T) {
	for _, order := range []int{1, 3, 5, 7, 9} {
		sections := prototypeSections(order)
		last := sections[len(sections)-1]
		if last.conjugate {
			t.Fatalf("order %d: last section not real", order)
		}
		if math.Abs(real(last.pole)+1) > 1e-12 {
			t.Fatalf("order %d: real pole = %v, want -1", order, last.pole)
		}
	}
}
