package handlers

import (
	"net/http"
	"sort"

	"github.com/karmacrepes/whenwilldeniusthdie/models"

	"github.com/gin-gonic/gin"
	"gonum.org/v1/gonum/stat"
	"gorm.io/gorm"
)

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

type probabilitySummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// GetStats summarizes the crowd's probability estimates for a character
// across all submissions.
func (h *StatsHandler) GetStats(c *gin.Context) {
	character := c.DefaultQuery("character", models.DefaultCharacter)

	var probs []float64
	err := h.db.Model(&models.Submission{}).
		Where("character = ?", character).
		Pluck("probability", &probs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"character": character,
		"summary":   summarizeProbabilities(probs),
	})
}

func summarizeProbabilities(probs []float64) probabilitySummary {
	if len(probs) == 0 {
		return probabilitySummary{}
	}
	sorted := append([]float64(nil), probs...)
	sort.Float64s(sorted)

	s := probabilitySummary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}
