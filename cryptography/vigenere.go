package cryptography

// VigenereCipheringMachine encrypts and decrypts text with a repeating
// keyword over the tabula recta. Letters come out upper case, anything else
// is copied unchanged and does not consume a key letter.
type VigenereCipheringMachine struct {
	machine
}

var _ CipheringMachine = (*VigenereCipheringMachine)(nil)

// NewVigenereCipheringMachine creates a direct machine unless WithDirect(false)
// is passed.
func NewVigenereCipheringMachine(opts ...Option) *VigenereCipheringMachine {
	return &VigenereCipheringMachine{machine: newMachine("vigenere", opts)}
}

// Encrypt returns table[i][j] for every letter, where i is the letter's
// position in the plain row and j the key letter's position in the column.
func (m *VigenereCipheringMachine) Encrypt(text, key string) (string, error) {
	return m.transform("encrypt", text, key, func(r rune, shift int) (rune, bool) {
		i := m.table.rowIndex(r)
		if i < 0 {
			return r, false
		}
		return m.table.At(i, shift), true
	})
}

// Decrypt looks every letter up in the key letter's row and returns the
// plain letter heading that column. A reverse machine reverses the result,
// not the ciphertext.
func (m *VigenereCipheringMachine) Decrypt(text, key string) (string, error) {
	return m.transform("decrypt", text, key, func(r rune, shift int) (rune, bool) {
		i := m.table.searchRow(shift, r)
		if i < 0 {
			return r, false
		}
		return m.table.Row()[i], true
	})
}
