package handlers

import (
	"net/http"

	"github.com/karmacrepes/whenwilldeniusthdie/calendar"

	"github.com/gin-gonic/gin"
)

// GetCalendar serves the static Innworld calendar tables the submission form
// renders its pickers from.
func GetCalendar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"days":            calendar.Days,
		"months":          calendar.Months,
		"days_per_week":   calendar.DaysPerWeek,
		"weeks_per_month": calendar.WeeksPerMonth,
		"days_per_month":  calendar.DaysPerMonth,
	})
}
