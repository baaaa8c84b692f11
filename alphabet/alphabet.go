/*
Package alphabet provides structs for defining biological sequence alphabets.
*/
package alphabet

// TODO: add Alphabet for codons

import "fmt"

// Alphabet is a struct that holds a list of symbols and a map of symbols to their index in the list.
type Alphabet struct {
	symbols    []string
	encoding   map[interface{}]uint8
	complement []uint8 // complement[c] is the Watson-Crick complement of symbol c, or nil if this alphabet has none
}

// Error is an error type that is returned when a symbol is not in the alphabet.
type Error struct {
	message string
}

// Error returns the error message for AlphabetError.
func (e *Error) Error() string {
	return e.message
}

// NewAlphabet creates a new alphabet from a list of symbols.
func NewAlphabet(symbols []string) *Alphabet {
	encoding := make(map[interface{}]uint8)
	for index, symbol := range symbols {
		encoding[symbol] = uint8(index)
		encoding[index] = uint8(index)
	}
	return &Alphabet{symbols: symbols, encoding: encoding}
}

// WithComplement attaches a Watson-Crick complement table to the alphabet,
// keyed by symbol rather than dense index so callers can build it next to
// the symbol list that defines it. It returns the same *Alphabet for
// chaining off of NewAlphabet.
func (alphabet *Alphabet) WithComplement(pairs map[string]string) *Alphabet {
	complement := make([]uint8, len(alphabet.symbols))
	for i := range complement {
		complement[i] = uint8(i) // default to self if unpaired
	}
	for symbol, pair := range pairs {
		code, ok := alphabet.encoding[symbol]
		if !ok {
			continue
		}
		pairCode, ok := alphabet.encoding[pair]
		if !ok {
			continue
		}
		complement[code] = pairCode
	}
	alphabet.complement = complement
	return alphabet
}

// Complement returns the dense index of the Watson-Crick complement of a
// given dense index. It is undefined (returns an error) for alphabets with
// no complement table, or for indices outside the alphabet.
func (alphabet *Alphabet) Complement(code uint8) (uint8, error) {
	if alphabet.complement == nil {
		return 0, &Error{"alphabet has no complement table"}
	}
	if int(code) >= len(alphabet.complement) {
		return 0, &Error{fmt.Sprintf("code %d not in alphabet", code)}
	}
	return alphabet.complement[code], nil
}

// Char returns the printable symbol for a dense index, or "?" if the index
// is out of range. It is intended for debug output only.
func (alphabet *Alphabet) Char(code uint8) string {
	if int(code) >= len(alphabet.symbols) {
		return "?"
	}
	return alphabet.symbols[code]
}

// Encode returns the index of a symbol in the alphabet.
func (alphabet *Alphabet) Encode(symbol interface{}) (uint8, error) {
	c, ok := alphabet.encoding[symbol]
	if !ok {
		return 0, fmt.Errorf("Symbol %v not in alphabet", symbol)
	}
	return c, nil
}

// TODO: compress more when len(symbols) << 2^8
// TODO: DecodeAll
func (alphabet *Alphabet) EncodeAll(seq string) ([]uint8, error) {
	encoded := make([]uint8, len(seq))
	for i, r := range seq {
		encoding, err := alphabet.Encode(string(r))
		if err != nil {
			return nil, fmt.Errorf("Symbol %c in position %d not in alphabet", r, i)
		}
		encoded[i] = uint8(encoding)
	}
	return encoded, nil
}

func (alphabet *Alphabet) Check(seq string) int {
	for i, r := range seq {
		_, err := alphabet.Encode(string(r))
		if err != nil {
			return i
		}
	}
	return -1
}

// Decode returns the symbol at a given index in the alphabet.
func (alphabet *Alphabet) Decode(code interface{}) (string, error) {
	c, ok := code.(int)
	if !ok || c < 0 || c >= len(alphabet.symbols) {
		return "", &Error{fmt.Sprintf("Code %v not in alphabet", code)}
	}
	return alphabet.symbols[c], nil
}

// Extend returns a new alphabet that is the original alphabet extended with a list of symbols.
func (alphabet *Alphabet) Extend(symbols []string) *Alphabet {
	extended := append(alphabet.symbols, symbols...)
	return NewAlphabet(extended)
}

// Symbols returns the list of symbols in the alphabet.
func (alphabet *Alphabet) Symbols() []string {
	return alphabet.symbols
}

var (
	DNA = NewAlphabet([]string{"A", "C", "G", "T"}).WithComplement(map[string]string{
		"A": "T", "T": "A", "C": "G", "G": "C",
	})
	RNA = NewAlphabet([]string{"A", "C", "G", "U"}).WithComplement(map[string]string{
		"A": "U", "U": "A", "C": "G", "G": "C",
	})
	Protein = NewAlphabet([]string{"A", "C", "D", "E", "F", "G", "H", "I", "K", "L", "M", "N", "P", "Q", "R", "S", "T", "V", "W", "Y"})
)
