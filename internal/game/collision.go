package game

// Vec3 is a point in world space. Z points up.
type Vec3 struct {
	X, Y, Z float64
}

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max Vec3
}

// Intersects reports whether two boxes overlap on all three axes.
// Boxes that only touch on a face do not intersect.
func (b Box3) Intersects(o Box3) bool {
	if b.Min.X >= o.Max.X || o.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= o.Max.Y || o.Min.Y >= b.Max.Y {
		return false
	}
	if b.Min.Z >= o.Max.Z || o.Min.Z >= b.Max.Z {
		return false
	}
	return true
}

// Model dimensions in world units.
const (
	playerHalfWidth = 7.5
	playerHeight    = 22

	carHalfLength = 30
	carHalfWidth  = 16.5
	carHeight     = 31.5

	truckHalfLength = 50
	truckHalfWidth  = 17.5
	truckHeight     = 42.5
)

// PlayerBox returns the bounds of the player at a pose. The hop raises the
// whole box.
func PlayerBox(p Pose) Box3 {
	return Box3{
		Min: Vec3{X: p.X - playerHalfWidth, Y: p.Y - playerHalfWidth, Z: p.Z},
		Max: Vec3{X: p.X + playerHalfWidth, Y: p.Y + playerHalfWidth, Z: p.Z + playerHeight},
	}
}

// VehicleBox returns the bounds of a vehicle. The models are symmetric
// along their length so the lane heading does not change the box.
func VehicleBox(v *Vehicle, tileSize float64) Box3 {
	var halfLength, halfWidth, height float64 = carHalfLength, carHalfWidth, carHeight
	if v.Kind == RowTruck {
		halfLength, halfWidth, height = truckHalfLength, truckHalfWidth, truckHeight
	}
	y := float64(v.Row) * tileSize
	return Box3{
		Min: Vec3{X: v.X - halfLength, Y: y - halfWidth, Z: 0},
		Max: Vec3{X: v.X + halfLength, Y: y + halfWidth, Z: height},
	}
}

// CollisionDetector finds vehicles overlapping the player. Only lanes
// within one row of the player's committed row are examined; the box test
// is authoritative.
type CollisionDetector struct {
	traffic  *Traffic
	tileSize float64
}

// NewCollisionDetector creates a detector over the given traffic.
func NewCollisionDetector(traffic *Traffic, tileSize float64) *CollisionDetector {
	return &CollisionDetector{traffic: traffic, tileSize: tileSize}
}

// Check returns the first vehicle whose box overlaps the player's box, or
// nil when the player is clear.
func (c *CollisionDetector) Check(committedRow int, pose Pose) *Vehicle {
	player := PlayerBox(pose)
	for row := committedRow - 1; row <= committedRow+1; row++ {
		for _, v := range c.traffic.InRow(row) {
			if player.Intersects(VehicleBox(v, c.tileSize)) {
				return v
			}
		}
	}
	return nil
}
