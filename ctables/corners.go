package ctables

// CornerFaces lists the 3 faces meeting at each corner, one per axis:
// {x-face, y-face, z-face}.
var CornerFaces = [Children][3]int{
	0: {0, 2, 4}, 1: {1, 2, 4}, 2: {0, 3, 4}, 3: {1, 3, 4},
	4: {0, 2, 5}, 5: {1, 2, 5}, 6: {0, 3, 5}, 7: {1, 3, 5},
}

// CornerEdges lists the 3 edges meeting at each corner, one per axis:
// {x-edge, y-edge, z-edge}.
var CornerEdges = [Children][3]int{
	0: {0, 4, 8}, 1: {0, 5, 9}, 2: {1, 4, 10}, 3: {1, 5, 11},
	4: {2, 6, 8}, 5: {2, 7, 9}, 6: {3, 6, 10}, 7: {3, 7, 11},
}

// CornerBit returns bit `axis` (0=x,1=y,2=z) of corner c's zyx encoding.
func CornerBit(c, axis int) int { return (c >> uint(axis)) & 1 }

// CornerFromBits packs (x,y,z) bits into a corner index.
func CornerFromBits(x, y, z int) int { return x + 2*y + 4*z }
