package weiqi

// openingBook lists conventional star-point opening placements on the empty
// board, grounded on the same small-curated-table pattern as the other
// games' opening books rather than a full joseki tree (out of scope, spec
// §4.5).
var openingBook = []*Move{
	{Point: point(3, 3)},   // dd, a corner star point
	{Point: point(15, 3)},  // pd
	{Point: point(3, 15)},  // dp
	{Point: point(15, 15)}, // pp
}
