package score

// Alphabet is the set of characters a name slot cycles through.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ-$@*"

// NameLen is the number of characters in a high-score name.
const NameLen = 3

// NameEntry is the in-progress three-letter name typed after a qualifying game.
type NameEntry struct {
	chars  [NameLen]int // index into Alphabet per slot
	cursor int
}

// NewNameEntry starts at "AAA" with the cursor on the first slot.
func NewNameEntry() *NameEntry {
	return &NameEntry{}
}

func (n *NameEntry) NextSlot() {
	n.cursor = (n.cursor + 1) % NameLen
}

func (n *NameEntry) PrevSlot() {
	n.cursor = (n.cursor - 1 + NameLen) % NameLen
}

func (n *NameEntry) NextChar() {
	n.chars[n.cursor] = (n.chars[n.cursor] + 1) % len(Alphabet)
}

func (n *NameEntry) PrevChar() {
	n.chars[n.cursor] = (n.chars[n.cursor] - 1 + len(Alphabet)) % len(Alphabet)
}

func (n *NameEntry) Cursor() int {
	return n.cursor
}

func (n *NameEntry) String() string {
	b := make([]byte, NameLen)
	for i, c := range n.chars {
		b[i] = Alphabet[c]
	}
	return string(b)
}
