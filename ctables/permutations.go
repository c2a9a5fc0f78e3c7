package ctables

// FacePermutations holds the 8 realisable permutations of a face's 4
// corners (indices into the FaceCorners canonical order) that two glued
// cube faces can require of each other. Only 8 of the 24 possible
// permutations of 4 elements are ever physically realisable between two
// cube faces (spec.md §4.A); the remaining 16 would require a chirality
// no rigid gluing of a cube produces.
//
// Indices 0-3 are the 4 proper rotations of the square (by k*90 degrees,
// index 0 = identity); indices 4-7 are those same rotations composed with
// the single reflection that swaps the face's two in-face axes. Both
// families are generated once, deterministically, from the cyclic corner
// order {0,1,3,2} (the rotational order of FaceCorners' canonical corner
// positions) rather than hand-transcribed, since a transcription slip in
// a permutation table silently breaks face reciprocity everywhere.
var FacePermutations [8][4]int

// FacePermutationSets selects which 4 of the 8 FacePermutations apply to
// a given pair of glued faces, indexed by orientation 0..3:
//   - set 0: rotations only (FacePermutations[0..3]) — used between an
//     axis-aligned dual pair (e.g. -x glued to +x), where a
//     side-by-side, unrotated gluing must be the identity permutation
//     (spec.md §8 S4).
//   - set 1: reflections (FacePermutations[4..7]) — used when a face is
//     glued to another tree's same-numbered face (f == f'), which is
//     only physically realisable with a parity flip.
//   - set 2: reflections, cyclically shifted by one rotation — used
//     between two faces on different axes (a perpendicular gluing).
//     Nothing in spec.md ties this case to a literal expected
//     permutation; the choice only has to be internally consistent,
//     which a fixed shift of set 1 guarantees.
var FacePermutationSets [3][4]int

// FacePermutationRefs[f][f'] selects which FacePermutationSets row
// applies when tree t's face f is glued to the neighbor's face f'.
var FacePermutationRefs [Faces][Faces]int

func init() {
	// Cyclic rotational order of the 4 canonical face-corner positions:
	// position 0=(0,0), 1=(1,0), 2=(0,1), 3=(1,1); going around the
	// square physically visits them as 0 -> 1 -> 3 -> 2 -> 0.
	cycle := [4]int{0, 1, 3, 2}
	cycleIndex := [4]int{}
	for i, pos := range cycle {
		cycleIndex[pos] = i
	}

	rotate := func(k int) [4]int {
		var p [4]int
		for pos := 0; pos < 4; pos++ {
			p[pos] = cycle[(cycleIndex[pos]+k)%4]
		}
		return p
	}

	// The reflection that swaps the two in-face axes: position (a0,a1)
	// -> (a1,a0), i.e. swaps positions 1 and 2 and fixes 0 and 3.
	mirror := [4]int{0, 2, 1, 3}

	for k := 0; k < 4; k++ {
		rot := rotate(k)
		FacePermutations[k] = rot
		var refl [4]int
		for pos := 0; pos < 4; pos++ {
			refl[pos] = mirror[rot[pos]]
		}
		FacePermutations[4+k] = refl
	}

	FacePermutationSets[0] = [4]int{0, 1, 2, 3}
	FacePermutationSets[1] = [4]int{4, 5, 6, 7}
	FacePermutationSets[2] = [4]int{5, 6, 7, 4}

	for f := 0; f < Faces; f++ {
		for fp := 0; fp < Faces; fp++ {
			switch {
			case fp == FaceDual[f]:
				FacePermutationRefs[f][fp] = 0
			case fp == f:
				FacePermutationRefs[f][fp] = 1
			default:
				FacePermutationRefs[f][fp] = 2
			}
		}
	}
}
