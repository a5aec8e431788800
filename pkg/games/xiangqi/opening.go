package xiangqi

// openingBook lists a few conventional opening moves for Red from the
// starting position (central cannon, horse development, central soldier
// push), grounded on the same small-curated-table pattern as the other
// games' opening books rather than a full joseki tree (out of scope, spec
// §4.5).
var openingBook = []*Move{
	{From: square(7, 2), To: square(4, 2)}, // central cannon (C2=5)
	{From: square(1, 0), To: square(2, 2)}, // horse development
	{From: square(4, 3), To: square(4, 4)}, // central soldier push
}
