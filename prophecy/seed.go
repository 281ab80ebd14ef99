package prophecy

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// DailySeed is the default seed for a character: stable for a calendar day,
// so everyone visiting on the same day sees the same fate.
func DailySeed(character string, now time.Time) string {
	return fmt.Sprintf("%s-%s", character, now.Format("Mon Jan 02 2006"))
}

// FreshSeed mints a new shareable seed from the wall clock plus a random
// base36 suffix.
func FreshSeed(character string, now time.Time) string {
	f := rand.Float64()
	var suffix strings.Builder
	for i := 0; i < 12 && f > 0; i++ {
		f *= 36
		d := int(f)
		suffix.WriteByte(base36[d])
		f -= float64(d)
	}
	return fmt.Sprintf("%s-%d-%s", character, now.UnixMilli(), suffix.String())
}
