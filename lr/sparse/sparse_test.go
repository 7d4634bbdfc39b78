package sparse

import "testing"

func TestMatrixSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	if M.M() != 10 || M.N() != 10 {
		t.Fatalf("expected 10x10 matrix, is %dx%d", M.M(), M.N())
	}
	M.Set(2, 3, 4711)
	M.Set(0, 9, 1)
	M.Set(9, 0, 2)
	M.Set(2, 2, 3)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if v := M.Value(2, 2); v != 3 {
		t.Errorf("expected M(2,2) = 3, is %d", v)
	}
	if v := M.Value(5, 5); v != DefaultNullValue {
		t.Errorf("expected M(5,5) to be null, is %d", v)
	}
	M.Set(2, 3, 42)
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 values after overwrite, have %d", M.ValueCount())
	}
	if v := M.Value(2, 3); v != 42 {
		t.Errorf("expected M(2,3) = 42 after overwrite, is %d", v)
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	M := NewIntMatrix(2, 2, -1)
	if err := M.Set(2, 0, 1); err == nil {
		t.Errorf("expected error for row out of range")
	}
	if err := M.Set(0, -1, 1); err == nil {
		t.Errorf("expected error for negative column")
	}
	if v := M.Value(7, 7); v != -1 {
		t.Errorf("expected null value outside of matrix, is %d", v)
	}
}

func TestMatrixEachInOrder(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(4, 4, 5)
	M.Set(0, 1, 1)
	M.Set(2, 0, 3)
	M.Set(1, 3, 2)
	M.Set(2, 1, 4)
	M.Set(3, 3, -1) // null-value is skipped
	var seen []int32
	M.Each(func(i, j int, v int32) {
		seen = append(seen, v)
	})
	if len(seen) != 5 {
		t.Fatalf("expected 5 values, have %v", seen)
	}
	for k, v := range seen {
		if v != int32(k+1) {
			t.Errorf("expected values in row-major order, have %v", seen)
			break
		}
	}
}
