package cryptography

// BeaufortCipheringMachine is the reciprocal variant of the tabula recta
// cipher: the plaintext letter picks the row, the key letter is found in it
// and the column it sits in is the output. Applying it twice with the same
// key restores the letters.
type BeaufortCipheringMachine struct {
	machine
}

var _ CipheringMachine = (*BeaufortCipheringMachine)(nil)

func NewBeaufortCipheringMachine(opts ...Option) *BeaufortCipheringMachine {
	return &BeaufortCipheringMachine{machine: newMachine("beaufort", opts)}
}

func (m *BeaufortCipheringMachine) Encrypt(text, key string) (string, error) {
	return m.transform("encrypt", text, key, m.letter)
}

// Decrypt is the same table walk as Encrypt.
func (m *BeaufortCipheringMachine) Decrypt(text, key string) (string, error) {
	return m.transform("decrypt", text, key, m.letter)
}

func (m *BeaufortCipheringMachine) letter(r rune, shift int) (rune, bool) {
	i := m.table.rowIndex(r)
	if i < 0 {
		return r, false
	}
	j := m.table.searchRow(i, m.table.Column()[shift])
	return m.table.Row()[j], true
}
