package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/karmacrepes/whenwilldeniusthdie/models"
	"github.com/karmacrepes/whenwilldeniusthdie/prophecy"

	"github.com/gin-gonic/gin"
)

// ProphecyHandler serves the deterministic prophecy for a seed. It holds no
// state; the clock is injected so tests can pin "now".
type ProphecyHandler struct {
	now func() time.Time
}

func NewProphecyHandler() *ProphecyHandler {
	return &ProphecyHandler{now: time.Now}
}

// Get derives a prophecy. Seed resolution mirrors the site: an explicit
// seed wins, reseed=1 mints a fresh one, otherwise the character's daily
// seed applies. The seed used is echoed back so the caller can build a
// shareable URL.
func (h *ProphecyHandler) Get(c *gin.Context) {
	character := c.DefaultQuery("character", models.DefaultCharacter)
	spoilers := parseBoolQuery(c, "spoilers", true)
	now := h.now()

	seed := c.Query("seed")
	reseeded := false
	if reseed := parseBoolQuery(c, "reseed", false); reseed {
		seed = prophecy.FreshSeed(character, now)
		reseeded = true
	} else if seed == "" {
		seed = prophecy.DailySeed(character, now)
	}

	p := prophecy.Generate(seed, spoilers, now)
	propheciesGenerated.Inc()

	display := p.PredictedDateString()
	if p.IsNever {
		display = "NEVER (probably)"
	}

	c.JSON(http.StatusOK, gin.H{
		"character":         character,
		"seed":              seed,
		"reseeded":          reseeded,
		"spoilers":          spoilers,
		"prophecy":          p,
		"predicted_display": display,
	})
}

func parseBoolQuery(c *gin.Context, key string, fallback bool) bool {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
