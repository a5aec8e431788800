package chess

// openingBook lists a handful of conventional first moves from the
// starting position (e4, d4, Nf3, c4), grounded on the backgammon
// teacher's openingbook.go pattern of a small curated table rather than
// a full theory tree (out of scope per spec §4.5).
var openingBook = []*Move{
	{From: square(4, 1), To: square(4, 3)}, // e2-e4
	{From: square(3, 1), To: square(3, 3)}, // d2-d4
	{From: square(6, 0), To: square(5, 2)}, // Ng1-f3
	{From: square(2, 1), To: square(2, 3)}, // c2-c4
}
