package shogi

// openingBook lists a few conventional first moves from the starting
// position (central pawn push, rook shift, bishop diagonal), grounded on
// the same small-curated-table pattern as the chess and backgammon
// opening books rather than a full joseki tree (out of scope, spec §4.5).
var openingBook = []*Move{
	{From: square(2, 6), To: square(2, 5)}, // P-76 (Black's central pawn push)
	{From: square(7, 7), To: square(4, 7)}, // ranging-rook shift R-58 (from 28, along the 8th rank)
	{From: square(2, 8), To: square(2, 7)}, // silver advance
}
