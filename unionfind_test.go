package graphseg

import "testing"

func TestNewDisjointSet(t *testing.T) {
	ds := NewDisjointSet(5)

	if ds.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", ds.Count())
	}
	for i := 0; i < 5; i++ {
		if root := ds.Find(i); root != i {
			t.Errorf("Find(%d) = %d, want %d", i, root, i)
		}
		if ds.Size(i) != 1 {
			t.Errorf("Size(%d) = %d, want 1", i, ds.Size(i))
		}
		if ds.InternalDiff(i) != 0 {
			t.Errorf("InternalDiff(%d) = %v, want 0", i, ds.InternalDiff(i))
		}
	}
}

func TestDisjointSet_Union(t *testing.T) {
	ds := NewDisjointSet(5)
	root := ds.Union(1, 3, 2.5)

	if ds.Find(1) != ds.Find(3) {
		t.Error("after Union(1,3), Find(1) != Find(3)")
	}
	if root != ds.Find(1) {
		t.Errorf("Union returned %d, but Find(1) = %d", root, ds.Find(1))
	}
	if ds.Size(root) != 2 {
		t.Errorf("size of root = %d, want 2", ds.Size(root))
	}
	if ds.InternalDiff(root) != 2.5 {
		t.Errorf("InternalDiff(root) = %v, want 2.5", ds.InternalDiff(root))
	}
	if ds.Count() != 4 {
		t.Errorf("Count() = %d, want 4", ds.Count())
	}
}

func TestDisjointSet_UnionSameRoot(t *testing.T) {
	ds := NewDisjointSet(3)
	ds.Union(0, 1, 1.0)
	before := ds.Count()

	ds.Union(0, 1, 9.0)

	if ds.Count() != before {
		t.Errorf("Count changed on same-root union: %d -> %d", before, ds.Count())
	}
	if d := ds.InternalDiff(ds.Find(0)); d != 1.0 {
		t.Errorf("InternalDiff changed on same-root union: %v", d)
	}
}

func TestDisjointSet_InternalDiffIsMax(t *testing.T) {
	ds := NewDisjointSet(4)
	ds.Union(0, 1, 5.0)
	ds.Union(2, 3, 3.0)

	// Merging through a cheap edge must not lower the internal difference.
	root := ds.Union(0, 2, 1.0)
	if d := ds.InternalDiff(root); d != 5.0 {
		t.Errorf("InternalDiff = %v, want 5.0", d)
	}
	if ds.Size(root) != 4 {
		t.Errorf("Size = %d, want 4", ds.Size(root))
	}
}

func TestDisjointSet_PathCompression(t *testing.T) {
	ds := NewDisjointSet(5)

	ds.Union(0, 1, 1)
	ds.Union(ds.Find(0), 2, 1)
	ds.Union(ds.Find(0), 3, 1)
	ds.Union(ds.Find(0), 4, 1)

	root := ds.Find(4)
	if ds.parent[4] != root && 4 != root {
		t.Errorf("after Find(4), parent[4] = %d, want root %d", ds.parent[4], root)
	}
}

func TestDisjointSet_UnionBySize(t *testing.T) {
	ds := NewDisjointSet(4)

	ds.Union(0, 1, 1)
	ds.Union(0, 2, 1)
	bigRoot := ds.Find(0)

	ds.Union(3, 0, 1)
	if newRoot := ds.Find(3); newRoot != bigRoot {
		t.Errorf("expected union-by-size: small tree attaches to big root %d, got root %d", bigRoot, newRoot)
	}
}

func TestDisjointSet_CountOnlyDecreases(t *testing.T) {
	ds := NewDisjointSet(6)
	prev := ds.Count()
	pairs := [][2]int{{0, 1}, {2, 3}, {0, 2}, {0, 3}, {4, 5}, {1, 4}}
	for _, p := range pairs {
		ds.Union(p[0], p[1], 1)
		if ds.Count() > prev {
			t.Fatalf("Count increased: %d -> %d", prev, ds.Count())
		}
		prev = ds.Count()
	}
	if ds.Count() != 1 {
		t.Errorf("final Count() = %d, want 1", ds.Count())
	}
}
