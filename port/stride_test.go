package port

import (
	"reflect"
	"testing"
)

func TestAssign_Cases(t *testing.T) {
	cases := []struct {
		name                  string
		index, count, highest int
		want                  []uint16
	}{
		{"single worker", 0, 1, 5, []uint16{1, 2, 3, 4, 5}},
		{"first of four", 0, 4, 10, []uint16{1, 5, 9}},
		{"last of four", 3, 4, 10, []uint16{4, 8}},
		{"exact fit", 1, 2, 4, []uint16{2, 4}},
		{"index past range", 5, 8, 5, nil},
		{"zero workers", 0, 0, 10, nil},
		{"negative index", -1, 4, 10, nil},
		{"index not below count", 4, 4, 10, nil},
		{"highest past uint16", 0, 1, 65537, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Assign(tc.index, tc.count, tc.highest)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Assign(%d,%d,%d) = %v want %v", tc.index, tc.count, tc.highest, got, tc.want)
			}
		})
	}
}

func TestAssign_CoverageAndDisjointness(t *testing.T) {
	for _, highest := range []int{1, 2, 7, 100, MaxPort} {
		for count := 1; count <= 33; count++ {
			seen := make(map[uint16]int)
			for i := 0; i < count; i++ {
				ports := Assign(i, count, highest)
				limit := (highest + count - 1) / count
				if len(ports) > limit {
					t.Fatalf("highest=%d count=%d index=%d: %d ports exceeds ceil bound %d", highest, count, i, len(ports), limit)
				}
				for _, p := range ports {
					if prev, dup := seen[p]; dup {
						t.Fatalf("highest=%d count=%d: port %d owned by %d and %d", highest, count, p, prev, i)
					}
					seen[p] = i
				}
			}
			if len(seen) != highest {
				t.Fatalf("highest=%d count=%d: covered %d ports", highest, count, len(seen))
			}
			for p := 1; p <= highest; p++ {
				if _, ok := seen[uint16(p)]; !ok {
					t.Fatalf("highest=%d count=%d: port %d not assigned", highest, count, p)
				}
			}
		}
	}
}

func TestAssign_TopOfPortSpace(t *testing.T) {
	ports := Assign(0, 8, 65535)
	if len(ports) == 0 || ports[len(ports)-1] != 65529 {
		t.Fatalf("unexpected tail %v", ports[len(ports)-3:])
	}
	for i := 1; i < len(ports); i++ {
		if ports[i] <= ports[i-1] {
			t.Fatalf("ports wrapped at %d: %d after %d", i, ports[i], ports[i-1])
		}
	}
}
