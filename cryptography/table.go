package cryptography

const alphabetSize = 26

// Table is a tabula recta: row i holds the alphabet rotated left by i.
// A Table is built once and never modified.
type Table struct {
	cells  [alphabetSize][alphabetSize]rune
	row    [alphabetSize]rune
	column [alphabetSize]rune
}

// NewTable builds the 26x26 substitution table for the letters A-Z and
// derives its plain-letter row and key column.
func NewTable() Table {
	var t Table
	for i := 0; i < alphabetSize; i++ {
		for j := 0; j < alphabetSize; j++ {
			t.cells[i][j] = 'A' + rune((i+j)%alphabetSize)
		}
	}

	t.row = t.cells[0]
	for i := range t.cells {
		t.column[i] = t.cells[i][0]
	}
	return t
}

// Row returns the first table row, the plain alphabet.
func (t Table) Row() [alphabetSize]rune {
	return t.row
}

// Column returns the first letter of every row. Key letters are looked up here.
func (t Table) Column() [alphabetSize]rune {
	return t.column
}

func (t Table) At(i, j int) rune {
	return t.cells[i][j]
}

func (t Table) rowIndex(r rune) int {
	return indexOf(t.row[:], r)
}

func (t Table) columnIndex(r rune) int {
	return indexOf(t.column[:], r)
}

// searchRow returns the position of r within row i, or -1.
func (t Table) searchRow(i int, r rune) int {
	return indexOf(t.cells[i][:], r)
}

func indexOf(letters []rune, r rune) int {
	for i, l := range letters {
		if l == r {
			return i
		}
	}
	return -1
}
