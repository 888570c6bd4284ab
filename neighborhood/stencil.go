// Package neighborhood provides stencil constructors: the radial Moore and
// VonNeumann families plus Custom for arbitrary offset sets.
package neighborhood

// finalize computes the cached bounding box and box flag for a stencil whose
// offsets are already validated.
// Complexity: O(|offsets|).
func finalize(offsets []Offset) Stencil {
	s := Stencil{offsets: offsets}
	s.minDX, s.maxDX = offsets[0].DX, offsets[0].DX
	s.minDY, s.maxDY = offsets[0].DY, offsets[0].DY
	for _, o := range offsets[1:] {
		if o.DX < s.minDX {
			s.minDX = o.DX
		}
		if o.DX > s.maxDX {
			s.maxDX = o.DX
		}
		if o.DY < s.minDY {
			s.minDY = o.DY
		}
		if o.DY > s.maxDY {
			s.maxDY = o.DY
		}
	}
	// A stencil is a box when it fills the whole bounding rectangle except
	// the center, and the center lies inside that rectangle.
	boxCells := (s.maxDX - s.minDX + 1) * (s.maxDY - s.minDY + 1)
	centerInside := s.minDX <= 0 && 0 <= s.maxDX && s.minDY <= 0 && 0 <= s.maxDY
	s.box = centerInside && len(offsets) == boxCells-1

	return s
}

// Moore returns the radial stencil of Chebyshev radius r: every offset with
// max(|ΔX|,|ΔY|) ≤ r except the center. Moore(1) is the classic
// eight-neighbor stencil of Conway's Life.
// Panics when r < 1 to surface programmer error early.
// Complexity: O(r²) time and memory.
func Moore(r int) Stencil {
	if r < 1 {
		panic("neighborhood: Moore radius must be ≥ 1")
	}
	offsets := make([]Offset, 0, (2*r+1)*(2*r+1)-1)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue // the center is not a neighbor
			}
			offsets = append(offsets, Offset{DX: dx, DY: dy})
		}
	}

	return finalize(offsets)
}

// VonNeumann returns the diamond stencil of Manhattan radius r: every offset
// with |ΔX|+|ΔY| ≤ r except the center. VonNeumann(1) is the four-neighbor
// orthogonal stencil.
// Panics when r < 1.
// Complexity: O(r²) time and memory.
func VonNeumann(r int) Stencil {
	if r < 1 {
		panic("neighborhood: VonNeumann radius must be ≥ 1")
	}
	offsets := make([]Offset, 0, 2*r*(r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if abs(dx)+abs(dy) > r {
				continue
			}
			offsets = append(offsets, Offset{DX: dx, DY: dy})
		}
	}

	return finalize(offsets)
}

// Custom builds a stencil from arbitrary offsets.
// Returns ErrEmptyStencil, ErrCenterOffset, or ErrDuplicateOffset on
// malformed input; the offsets are copied so callers may reuse their slice.
// Complexity: O(n) time and memory for n offsets.
func Custom(offsets ...Offset) (Stencil, error) {
	if len(offsets) == 0 {
		return Stencil{}, ErrEmptyStencil
	}
	seen := make(map[Offset]struct{}, len(offsets))
	cp := make([]Offset, 0, len(offsets))
	for _, o := range offsets {
		if o.DX == 0 && o.DY == 0 {
			return Stencil{}, ErrCenterOffset
		}
		if _, dup := seen[o]; dup {
			return Stencil{}, ErrDuplicateOffset
		}
		seen[o] = struct{}{}
		cp = append(cp, o)
	}

	return finalize(cp), nil
}

// abs returns |v| for ints.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
