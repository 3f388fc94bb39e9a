package matches

import (
	"fmt"
	"math/rand"
)

// NewShortCode generates a shareable match code: 4 random decimal
// digits followed by 2 random uppercase letters, e.g. "1234AB". Codes
// are not checked for collisions against existing matches.
func NewShortCode() string {
	num := 1000 + rand.Intn(9000)
	return fmt.Sprintf("%d%c%c", num, 'A'+rune(rand.Intn(26)), 'A'+rune(rand.Intn(26)))
}
