package peers

import "testing"

func TestEveryCellHas20DistinctPeers(t *testing.T) {
	for idx := 0; idx < numCells; idx++ {
		seen := make(map[int]bool, numPeers)
		for _, p := range Table[idx] {
			if seen[p] {
				t.Fatalf("cell %d has duplicate peer %d", idx, p)
			}
			if p == idx {
				t.Fatalf("cell %d lists itself as a peer", idx)
			}
			seen[p] = true
		}
		if len(seen) != numPeers {
			t.Fatalf("cell %d has %d peers, want %d", idx, len(seen), numPeers)
		}
	}
}

func TestIndexRowColRoundTrip(t *testing.T) {
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			r, c := RowCol(Index(row, col))
			if r != row || c != col {
				t.Errorf("RowCol(Index(%d,%d)) = (%d,%d)", row, col, r, c)
			}
		}
	}
}

func TestPeersAreSymmetric(t *testing.T) {
	for idx := 0; idx < numCells; idx++ {
		for _, p := range Table[idx] {
			found := false
			for _, q := range Table[p] {
				if q == idx {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("peer relation not symmetric: %d lists %d but not vice versa", idx, p)
			}
		}
	}
}
