package poker

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Format is a text style for cards.
type Format uint8

const (
	// UpperLetters writes rank then suit in capitals: "AS", "10H", "QD".
	UpperLetters Format = iota
	// LowerLetters is UpperLetters in lower case: "as", "10h", "qd".
	LowerLetters
	// Compact uses one character per rank and a lower case suit: "As", "Th".
	Compact
	// TitleWords writes the card out: "Ace of Spades".
	TitleWords
	// LowerWords is TitleWords in lower case: "ace of spades".
	LowerWords
	// Symbols uses the Unicode playing card block: "🂡".
	Symbols
)

// Formats lists every style.
var Formats = []Format{UpperLetters, LowerLetters, Compact, TitleWords, LowerWords, Symbols}

var formatNames = [...]string{"upper", "lower", "compact", "title", "words", "symbols"}

// String returns the style's short name, as accepted by ParseFormat.
func (f Format) String() string {
	if int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat returns the style with the given short name.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown card format %q", name)
}

var (
	rankLetters    = [NumRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	compactLetters = [NumRanks]byte{'A', '2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K'}
	suitLetters    = [NumSuits]byte{'S', 'H', 'D', 'C'}

	// Offsets into the Unicode playing cards block (U+1F0A0).
	symbolSuitBase = [NumSuits]rune{0x1F0A0, 0x1F0B0, 0x1F0C0, 0x1F0D0}
	// The block has a knight between jack and queen.
	symbolRankOffset = [NumRanks]rune{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 14}
)

// Format returns c in this style.
func (f Format) Format(c Card) string {
	if !c.Valid() {
		return "??"
	}
	switch f {
	case LowerLetters:
		return strings.ToLower(rankLetters[c.rank]) + string(unicode.ToLower(rune(suitLetters[c.suit])))
	case Compact:
		return string([]byte{compactLetters[c.rank], byte(unicode.ToLower(rune(suitLetters[c.suit])))})
	case TitleWords:
		return c.rank.String() + " of " + c.suit.String()
	case LowerWords:
		return strings.ToLower(c.rank.String() + " of " + c.suit.String())
	case Symbols:
		return string(symbolSuitBase[c.suit] + symbolRankOffset[c.rank])
	default:
		return rankLetters[c.rank] + string(suitLetters[c.suit])
	}
}

// separator is placed between cards by FormatCards.
func (f Format) separator() string {
	switch f {
	case Compact:
		return ""
	case TitleWords, LowerWords:
		return ", "
	default:
		return " "
	}
}

// FormatCards returns the cards in this style joined by the style's
// separator: a space for letters and symbols, nothing for Compact, and a comma
// for words.
func (f Format) FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = f.Format(c)
	}
	return strings.Join(parts, f.separator())
}

// Parse reads a single card written in this style. Letter styles accept
// either case; word styles accept any case.
func (f Format) Parse(s string) (Card, error) {
	switch f {
	case TitleWords, LowerWords:
		return parseWords(s)
	case Symbols:
		r, size := utf8.DecodeRuneInString(strings.TrimSpace(s))
		if size == 0 || size != len(strings.TrimSpace(s)) {
			return Card{}, fmt.Errorf("%w: %q is not a single symbol", ErrInvalidCard, s)
		}
		return parseSymbol(r)
	default:
		return ParseCard(s)
	}
}

// ParseCards reads cards written in this style and joined by its separator.
func (f Format) ParseCards(s string) ([]Card, error) {
	switch f {
	case TitleWords, LowerWords:
		var cards []Card
		for i, part := range strings.Split(s, ",") {
			c, err := parseWords(part)
			if err != nil {
				return nil, fmt.Errorf("card %d: %w", i+1, err)
			}
			cards = append(cards, c)
		}
		return cards, nil
	case Symbols:
		var cards []Card
		for _, r := range s {
			if unicode.IsSpace(r) {
				continue
			}
			c, err := parseSymbol(r)
			if err != nil {
				return nil, fmt.Errorf("card %d: %w", len(cards)+1, err)
			}
			cards = append(cards, c)
		}
		return cards, nil
	default:
		return ParseCards(s)
	}
}

// ParseCard reads one card in letter notation, ignoring case and surrounding
// space: "AS", "as", "10h", "Th" and "td" are all accepted.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	c, n, err := scanCard(s)
	if err != nil {
		return Card{}, err
	}
	if n != len(s) {
		return Card{}, fmt.Errorf("%w: trailing text in %q", ErrInvalidCard, s)
	}
	return c, nil
}

// ParseCards reads cards in letter notation. Cards may be separated by spaces
// or commas, or run together: "AS KS", "As,Ks" and "AsKs" are equivalent.
func ParseCards(s string) ([]Card, error) {
	var cards []Card
	for i := 0; i < len(s); {
		if s[i] == ' ' || s[i] == ',' || s[i] == '\t' {
			i++
			continue
		}
		c, n, err := scanCard(s[i:])
		if err != nil {
			return nil, fmt.Errorf("at position %d: %w", i, err)
		}
		cards = append(cards, c)
		i += n
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. It is meant for
// literals in tests and examples.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// scanCard reads one card from the front of s and returns how many bytes it
// used.
func scanCard(s string) (Card, int, error) {
	if len(s) < 2 {
		return Card{}, 0, fmt.Errorf("%w: %q is too short", ErrInvalidCard, s)
	}

	var rank Rank
	n := 1
	switch ch := unicode.ToUpper(rune(s[0])); {
	case ch == '1' && s[1] == '0':
		rank, n = Ten, 2
	case ch >= '2' && ch <= '9':
		rank = Rank(ch - '1')
	case ch == 'A':
		rank = Ace
	case ch == 'T':
		rank = Ten
	case ch == 'J':
		rank = Jack
	case ch == 'Q':
		rank = Queen
	case ch == 'K':
		rank = King
	default:
		return Card{}, 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, s[0])
	}

	if len(s) <= n {
		return Card{}, 0, fmt.Errorf("%w: %q has no suit", ErrInvalidCard, s)
	}
	suit, ok := suitFromLetter(s[n])
	if !ok {
		return Card{}, 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, s[n])
	}
	return NewCard(rank, suit), n + 1, nil
}

func suitFromLetter(b byte) (Suit, bool) {
	switch unicode.ToUpper(rune(b)) {
	case 'S':
		return Spades, true
	case 'H':
		return Hearts, true
	case 'D':
		return Diamonds, true
	case 'C':
		return Clubs, true
	}
	return 0, false
}

func parseWords(s string) (Card, error) {
	rankWord, suitWord, ok := strings.Cut(strings.TrimSpace(s), " of ")
	if !ok {
		rankWord, suitWord, ok = strings.Cut(strings.ToLower(strings.TrimSpace(s)), " of ")
	}
	if !ok {
		return Card{}, fmt.Errorf("%w: %q is not of the form \"<rank> of <suit>\"", ErrInvalidCard, s)
	}

	var c Card
	found := false
	for _, r := range Ranks {
		if strings.EqualFold(r.String(), strings.TrimSpace(rankWord)) {
			c.rank, found = r, true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, rankWord)
	}

	found = false
	for _, suit := range Suits {
		if strings.EqualFold(suit.String(), strings.TrimSpace(suitWord)) {
			c.suit, found = suit, true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, suitWord)
	}
	return c, nil
}

func parseSymbol(r rune) (Card, error) {
	for suit, base := range symbolSuitBase {
		offset := r - base
		for rank, want := range symbolRankOffset {
			if offset == want {
				return NewCard(Rank(rank), Suit(suit)), nil
			}
		}
	}
	return Card{}, fmt.Errorf("%w: %q is not a playing card symbol", ErrInvalidCard, r)
}
