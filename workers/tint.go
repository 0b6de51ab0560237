package workers

import (
	"fmt"
	"strings"

	"github.com/fulldump/clientsdb/clients"
)

// Alphabet scored by LetterSum, lowercase letter i scores i+1 and its
// uppercase form scores 31+i.
const Alphabet = "aąbcćdeęfghijklłmnńoóprsśtuwyzźż"

var letterScores = func() map[rune]int {
	scores := map[rune]int{}
	for i, r := range []rune(strings.ToUpper(Alphabet)) {
		scores[r] = 1 + 30 + i
	}
	for i, r := range []rune(Alphabet) {
		scores[r] = 1 + i
	}
	return scores
}()

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String renders the color as a CSS rgb() value.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func LetterSum(s string) int {
	sum := 0
	for _, r := range s {
		sum += letterScores[r]
	}
	return sum
}

// Tint derives a color from the letters of every text field except the
// image.
func Tint(fields clients.Fields) RGB {
	sum := 0
	for _, text := range fields.TextFields() {
		if text == &fields.Image {
			continue
		}
		sum += LetterSum(*text)
	}
	return TintFromSum(sum)
}

func TintFromSum(sum int) RGB {
	r := sum % 255
	b := 199
	if r > 250 {
		b = 99
	}
	return RGB{
		R: uint8(r),
		G: uint8(255 - r),
		B: uint8(b),
	}
}
