package geom

// Bounds is an axis-aligned box given by its min and max corners
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoundsAround returns the box of the given size centered on c
func BoundsAround(c, size Vec2) Bounds {
	half := size.Half()
	return Bounds{
		MinX: c.X - half.X,
		MinY: c.Y - half.Y,
		MaxX: c.X + half.X,
		MaxY: c.Y + half.Y,
	}
}

// Width returns MaxX - MinX
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns MaxY - MinY
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Size returns (Width, Height)
func (b Bounds) Size() Vec2 {
	return Vec2{b.Width(), b.Height()}
}

// Center returns the midpoint of the box
func (b Bounds) Center() Vec2 {
	return Vec2{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Union returns the smallest box containing both b and o
func (b Bounds) Union(o Bounds) Bounds {
	if o.MinX < b.MinX {
		b.MinX = o.MinX
	}
	if o.MinY < b.MinY {
		b.MinY = o.MinY
	}
	if o.MaxX > b.MaxX {
		b.MaxX = o.MaxX
	}
	if o.MaxY > b.MaxY {
		b.MaxY = o.MaxY
	}
	return b
}

// Contains reports whether p lies inside b (edges included)
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}
