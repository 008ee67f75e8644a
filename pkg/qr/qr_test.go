package qr

import "testing"

func TestMatrixDeterministic(t *testing.T) {
	m1, err := Matrix("hello", DefaultSize)
	if err != nil {
		t.Fatalf("Matrix error: %v", err)
	}
	m2, err := Matrix("hello", DefaultSize)
	if err != nil {
		t.Fatalf("Matrix error: %v", err)
	}

	for y := range m1 {
		for x := range m1[y] {
			if m1[y][x] != m2[y][x] {
				t.Fatalf("matrix differs at (%d,%d) for identical input", x, y)
			}
		}
	}
}

func TestMatrixDiffersByInput(t *testing.T) {
	m1, _ := Matrix("hello", DefaultSize)
	m2, _ := Matrix("world", DefaultSize)

	same := true
	for y := range m1 {
		for x := range m1[y] {
			if m1[y][x] != m2[y][x] {
				same = false
			}
		}
	}
	if same {
		t.Error("different inputs produced identical matrices")
	}
}

func TestMatrixFinderPatterns(t *testing.T) {
	m, err := Matrix("test", DefaultSize)
	if err != nil {
		t.Fatalf("Matrix error: %v", err)
	}

	// Corner modules of each finder square are always dark.
	corners := [][2]int{{0, 0}, {DefaultSize - 1, 0}, {0, DefaultSize - 1}}
	for _, c := range corners {
		if !m[c[1]][c[0]] {
			t.Errorf("finder corner at (%d,%d) is light, want dark", c[0], c[1])
		}
	}

	// Center of the top-left finder core is dark, its inner ring light.
	if !m[3][3] {
		t.Error("finder core (3,3) is light, want dark")
	}
	if m[1][1] {
		t.Error("finder inner ring (1,1) is dark, want light")
	}
}

func TestMatrixTooSmall(t *testing.T) {
	if _, err := Matrix("x", 10); err == nil {
		t.Error("Matrix with size 10 should fail")
	}
}

func TestRenderDimensions(t *testing.T) {
	img, err := Render("hello", DefaultSize, 4)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	want := (DefaultSize + 2) * 4
	if b := img.Bounds(); b.Dx() != want || b.Dy() != want {
		t.Errorf("bounds = %v, want %dx%d", b, want, want)
	}
}
