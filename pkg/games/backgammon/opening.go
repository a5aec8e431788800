package backgammon

// openingBook maps a non-double opening roll (encoded as high*10+low) to
// the conventional best reply from the starting position, grounded on the
// teacher's pkg/engine/openingbook.go (gnubg-derived rollout analysis),
// translated from its 0-based point indices into this package's 1..24
// point numbers.
var openingBook = map[int][]Move{
	65: {{Subs: []subMove{{from: 24, to: 18, die: 6}, {from: 18, to: 13, die: 5}}}},
	64: {{Subs: []subMove{{from: 24, to: 18, die: 6}, {from: 18, to: 14, die: 4}}}},
	63: {{Subs: []subMove{{from: 24, to: 18, die: 6}, {from: 18, to: 15, die: 3}}}},
	62: {{Subs: []subMove{{from: 24, to: 18, die: 6}, {from: 13, to: 11, die: 2}}}},
	61: {{Subs: []subMove{{from: 13, to: 7, die: 6}, {from: 8, to: 7, die: 1}}}},
	54: {{Subs: []subMove{{from: 13, to: 8, die: 5}, {from: 13, to: 9, die: 4}}}},
	53: {{Subs: []subMove{{from: 8, to: 3, die: 5}, {from: 6, to: 3, die: 3}}}},
	52: {{Subs: []subMove{{from: 13, to: 8, die: 5}, {from: 13, to: 11, die: 2}}}},
	51: {{Subs: []subMove{{from: 13, to: 8, die: 5}, {from: 24, to: 23, die: 1}}}},
	43: {{Subs: []subMove{{from: 13, to: 9, die: 4}, {from: 13, to: 10, die: 3}}}},
	42: {{Subs: []subMove{{from: 8, to: 4, die: 4}, {from: 6, to: 4, die: 2}}}},
	41: {{Subs: []subMove{{from: 13, to: 9, die: 4}, {from: 24, to: 23, die: 1}}}},
	32: {{Subs: []subMove{{from: 13, to: 10, die: 3}, {from: 13, to: 11, die: 2}}}},
	31: {{Subs: []subMove{{from: 8, to: 5, die: 3}, {from: 6, to: 5, die: 1}}}},
	21: {{Subs: []subMove{{from: 13, to: 11, die: 2}, {from: 24, to: 23, die: 1}}}},
}
