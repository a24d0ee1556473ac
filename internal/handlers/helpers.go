package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"prorab-finance/internal/middleware"
)

// даты в API ходят строками вида 2006-01-02, чтобы не зависеть от
// автоматического парсинга time.Time в JSON
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, false
	}
	return uint(v), true
}

func currentUserID(c *gin.Context) uint {
	return middleware.UserID(c)
}
