package generator

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"hkminimap/pkg/engine/geom"
	"hkminimap/pkg/engine/world"
)

// BSPGenerator generates zones using Binary Space Partitioning. Each leaf of
// the tree becomes one room; sibling subtrees are linked so the hero can walk
// between them.
type BSPGenerator struct {
	rng      *rand.Rand
	unmapped int
}

// NewBSPGenerator creates a generator. unmapped is the number of rooms per
// zone registered without a sprite.
func NewBSPGenerator(seed int64, unmapped int) *BSPGenerator {
	return &BSPGenerator{
		rng:      rand.New(rand.NewSource(seed)),
		unmapped: unmapped,
	}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node, in map units
type bspRoom struct {
	x, y, width, height int
	scene               string
}

var zoneNames = []string{
	"Crossroads", "Greenpath", "Fungal", "City", "Waterways",
	"Deepnest", "Cliffs", "Basin", "Abyss", "Hive",
}

// zonePalette tints room sprites so zones are distinguishable
var zonePalette = []color.RGBA{
	{0x8a, 0x9b, 0xb0, 0xff},
	{0x5f, 0xa8, 0x5a, 0xff},
	{0xb0, 0x9a, 0x5c, 0xff},
	{0x5a, 0x7f, 0xc4, 0xff},
	{0x4c, 0xa0, 0xa0, 0xff},
}

// Constants for BSP generation
const (
	zoneWidth         = 60 // map units
	zoneHeight        = 36
	zoneGap           = 12
	minNodeSize       = 10
	minRoomSize       = 4
	roomPadding       = 2
	minUnitsPerCell   = 24 // world units per map unit
	unitsPerCellRange = 17
	spritePxPerUnit   = 4
)

// Generate fills reg with zones rooms and returns their layout. The
// registry is left not ready; the caller opens it.
func (g *BSPGenerator) Generate(reg *world.Registry, zones int) *Layout {
	if zones > len(zoneNames) {
		zones = len(zoneNames)
	}
	links := make(map[string]mapset.Set[string])
	layout := &Layout{}

	for i := 0; i < zones; i++ {
		id := world.ZoneID(zoneNames[i])
		root := &bspNode{x: 0, y: 0, width: zoneWidth, height: zoneHeight}
		g.splitBSP(root, minNodeSize)
		g.createRooms(root, id, new(int))

		rooms := collectRooms(root)
		g.registerRooms(reg, id, rooms, i)
		g.connectRooms(root, links)

		z := Zone{ID: id}
		for _, r := range rooms {
			z.Scenes = append(z.Scenes, r.scene)
		}
		if len(rooms) > 0 {
			z.Start = rooms[0].scene
			z.Boss = findFurthestScene(links, z.Start)
		}
		layout.Zones = append(layout.Zones, z)
	}

	layout.Links = make(map[string][]string, len(links))
	for scene, set := range links {
		set.Each(func(n string) {
			layout.Links[scene] = append(layout.Links[scene], n)
		})
	}
	return layout
}

// registerRooms converts the BSP rooms of one zone into registry rooms. The
// last g.unmapped rooms get no sprite; the start room always keeps one.
func (g *BSPGenerator) registerRooms(reg *world.Registry, id world.ZoneID, rooms []*bspRoom, index int) {
	unmapped := max(g.unmapped, 0)
	if unmapped > len(rooms)-1 {
		unmapped = len(rooms) - 1
	}
	offsetX := float64(index * (zoneWidth + zoneGap))
	tint := zonePalette[index%len(zonePalette)]

	for i, r := range rooms {
		// map-space is Y-up, BSP rows grow downward
		origin := geom.V(
			offsetX+float64(r.x)+float64(r.width)/2,
			-(float64(r.y) + float64(r.height)/2),
		)
		dims := geom.V(float64(r.width), float64(r.height))
		room := &world.Room{
			Scene:    r.scene,
			Zone:     id,
			Geometry: world.RoomGeometry{Origin: origin, Dimensions: dims},
		}
		if i < len(rooms)-unmapped {
			room.Sprite = drawRoomSprite(r.width, r.height, tint)
		}
		unit := minUnitsPerCell + g.rng.Intn(unitsPerCellRange)
		reg.AddRoom(room, world.TileMap{Width: r.width * unit, Height: r.height * unit})
	}
}

// drawRoomSprite paints a filled rectangle with a lighter border
func drawRoomSprite(w, h int, tint color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w*spritePxPerUnit, h*spritePxPerUnit))
	b := img.Bounds()
	border := color.RGBA{
		R: uint8(min(int(tint.R)+60, 0xff)),
		G: uint8(min(int(tint.G)+60, 0xff)),
		B: uint8(min(int(tint.B)+60, 0xff)),
		A: 0xff,
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x == b.Min.X || y == b.Min.Y || x == b.Max.X-1 || y == b.Max.Y-1 {
				img.SetRGBA(x, y, border)
			} else {
				img.SetRGBA(x, y, tint)
			}
		}
	}
	return img
}

// splitBSP recursively splits a BSP node
func (g *BSPGenerator) splitBSP(node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = g.rng.Intn(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		splitPoint := minSize + g.rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + g.rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	g.splitBSP(node.left, minSize)
	g.splitBSP(node.right, minSize)
}

// createRooms creates rooms in leaf nodes, numbering scenes in visit order
func (g *BSPGenerator) createRooms(node *bspNode, zone world.ZoneID, counter *int) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			g.createRooms(node.left, zone, counter)
		}
		if node.right != nil {
			g.createRooms(node.right, zone, counter)
		}
		return
	}

	roomWidth := minRoomSize + g.rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + g.rng.Intn(node.height-minRoomSize-roomPadding+1)
	if roomWidth > node.width-roomPadding {
		roomWidth = node.width - roomPadding
	}
	if roomHeight > node.height-roomPadding {
		roomHeight = node.height - roomPadding
	}

	*counter++
	node.room = &bspRoom{
		x:      node.x + g.rng.Intn(node.width-roomWidth),
		y:      node.y + g.rng.Intn(node.height-roomHeight),
		width:  roomWidth,
		height: roomHeight,
		scene:  fmt.Sprintf("%s_%02d", zone, *counter),
	}
}

// connectRooms links one room from each pair of sibling subtrees
func (g *BSPGenerator) connectRooms(node *bspNode, links map[string]mapset.Set[string]) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := g.getRoom(node.left)
	rightRoom := g.getRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		link(links, leftRoom.scene, rightRoom.scene)
		link(links, rightRoom.scene, leftRoom.scene)
	}

	g.connectRooms(node.left, links)
	g.connectRooms(node.right, links)
}

func link(links map[string]mapset.Set[string], from, to string) {
	set, ok := links[from]
	if !ok {
		set = mapset.New[string]()
		links[from] = set
	}
	set.Put(to)
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func (g *BSPGenerator) getRoom(node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = g.getRoom(node.left)
	}
	if node.right != nil {
		rightRoom = g.getRoom(node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if g.rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom

	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}

// findFurthestScene uses BFS over links to find the scene with the longest
// path from start. Ties go to the lexically smallest scene.
func findFurthestScene(links map[string]mapset.Set[string], start string) string {
	type sceneDist struct {
		scene string
		dist  int
	}

	visited := mapset.New[string]()
	visited.Put(start)
	queue := []sceneDist{{start, 0}}
	furthest, maxDist := start, 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.dist > maxDist || (current.dist == maxDist && current.scene < furthest) {
			maxDist = current.dist
			furthest = current.scene
		}

		set, ok := links[current.scene]
		if !ok {
			continue
		}
		var next []string
		set.Each(func(n string) {
			if !visited.Has(n) {
				next = append(next, n)
			}
		})
		for _, n := range next {
			visited.Put(n)
			queue = append(queue, sceneDist{n, current.dist + 1})
		}
	}

	return furthest
}
