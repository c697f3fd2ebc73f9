package witness

import (
	"testing"

	"github.com/kappaphon/sncfst/feature"
)

func TestFrameEncodeDecodeRoundTrip(t *testing.T) {
	f := NewFrame([]string{"F1", "F2"})
	for label := 1; label <= f.Size(); label++ {
		tuple := f.Decode(label)
		if got := f.Encode(tuple); got != label {
			t.Errorf("Encode(Decode(%d)) = %d, want %d", label, got, label)
		}
	}
}

func TestFrameEncodeLabelZeroNeverProduced(t *testing.T) {
	f := NewFrame([]string{"F1"})
	for _, v := range []feature.Ternary{feature.Unspec, feature.Plus, feature.Minus} {
		if got := f.Encode(Tuple{v}); got == 0 {
			t.Errorf("Encode produced label 0 for tuple %v", v)
		}
	}
}

func TestFrameSizeIsPowerOfThree(t *testing.T) {
	f := NewFrame([]string{"F1", "F2", "F3"})
	if f.Size() != 27 {
		t.Errorf("Size() = %d, want 3^3 = 27", f.Size())
	}
}

func TestFrameAllVisitsEveryLabelOnceInOrder(t *testing.T) {
	f := NewFrame([]string{"F1", "F2"})
	seen := make([]int, 0, f.Size())
	f.All(func(label int, _ Tuple) bool {
		seen = append(seen, label)
		return true
	})
	if len(seen) != f.Size() {
		t.Fatalf("All visited %d labels, want %d", len(seen), f.Size())
	}
	for i, label := range seen {
		if label != i+1 {
			t.Fatalf("All visited labels out of order: %v", seen)
		}
	}
}

func TestFrameAllStopsEarly(t *testing.T) {
	f := NewFrame([]string{"F1", "F2"})
	count := 0
	f.All(func(label int, _ Tuple) bool {
		count++
		return label < 3
	})
	if count != 3 {
		t.Errorf("All visited %d labels before stopping, want 3", count)
	}
}

func TestFrameProjectIntoSubsequence(t *testing.T) {
	v := NewFrame([]string{"F1", "F2", "F3"})
	p := NewFrame([]string{"F1", "F3"})
	tuple := Tuple{feature.Plus, feature.Minus, feature.Plus}
	got := v.Project(tuple, p)
	want := Tuple{feature.Plus, feature.Plus}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Project = %v, want %v", got, want)
		}
	}
}

func TestFrameProjectIntoAbsentFeatureIsUnspec(t *testing.T) {
	v := NewFrame([]string{"F1"})
	p := NewFrame([]string{"F1", "F2"})
	got := v.Project(Tuple{feature.Plus}, p)
	if got[0] != feature.Plus {
		t.Fatalf("Project = %v, want F1 = Plus", got)
	}
	if got[1] != feature.Unspec {
		t.Fatalf("Project = %v, want F2 = Unspec (absent from source frame)", got)
	}
}

func TestFrameBundleRoundTrip(t *testing.T) {
	u, _ := feature.NewUniverse([]string{"F1", "F2"})
	f := NewFrame([]string{"F1", "F2"})
	tuple := Tuple{feature.Plus, feature.Unspec}
	b := f.ToBundle(u, tuple)
	got := f.FromBundle(b)
	for i := range tuple {
		if got[i] != tuple[i] {
			t.Fatalf("FromBundle(ToBundle(t)) = %v, want %v", got, tuple)
		}
	}
}
