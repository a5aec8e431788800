package checkers

// openingBook maps the starting position's §6 encoding to the small set of
// moves conventionally considered strong replies, mirroring the teacher's
// dice-roll-keyed backgammon table (pkg/engine/openingbook.go) generalized
// to a position-keyed table, per original_source/src/checkers/openings.
var openingBook = map[string][]*Move{
	Encode(New()): {
		{From: 9, To: []int{13}},
		{From: 10, To: []int{14}},
		{From: 11, To: []int{15}},
		{From: 11, To: []int{16}},
	},
}
