package state

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is an axial hex coordinate.
type Coord struct {
	Q int
	R int
}

// hexDirections are the six axial neighbor offsets.
var hexDirections = [6]Coord{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// Adjacent reports whether two coordinates are hex neighbors.
func (c Coord) Adjacent(other Coord) bool {
	for _, d := range hexDirections {
		if c.Q+d.Q == other.Q && c.R+d.R == other.R {
			return true
		}
	}
	return false
}

// MarshalText encodes the coordinate as "q,r" so it can key JSON maps.
func (c Coord) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d,%d", c.Q, c.R)), nil
}

// UnmarshalText decodes a "q,r" coordinate.
func (c *Coord) UnmarshalText(text []byte) error {
	parts := strings.SplitN(string(text), ",", 2)
	if len(parts) != 2 {
		return fmt.Errorf("coord: malformed %q", text)
	}
	q, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("coord: %w", err)
	}
	r, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("coord: %w", err)
	}
	c.Q, c.R = q, r
	return nil
}

// Terrain identifies the terrain of a board hex.
type Terrain string

const (
	TerrainPlains    Terrain = "plains"
	TerrainHills     Terrain = "hills"
	TerrainForest    Terrain = "forest"
	TerrainWasteland Terrain = "wasteland"
	TerrainDesert    Terrain = "desert"
	TerrainSwamp     Terrain = "swamp"
	TerrainMountain  Terrain = "mountain"
	TerrainLake      Terrain = "lake"
	TerrainCity      Terrain = "city"
)

// BaseCost returns the base move cost for the terrain and whether it is
// passable at all.
func (t Terrain) BaseCost() (int, bool) {
	switch t {
	case TerrainPlains, TerrainCity:
		return 2, true
	case TerrainHills:
		return 3, true
	case TerrainForest, TerrainWasteland:
		return 3, true
	case TerrainDesert, TerrainSwamp:
		return 5, true
	case TerrainMountain, TerrainLake:
		return 0, false
	default:
		return 0, false
	}
}
