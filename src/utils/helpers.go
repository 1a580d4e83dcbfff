package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"airtracker/src/config"
	"airtracker/src/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ParseIDList converts a comma-separated id list ("1,2,3") to uints.
func ParseIDList(qs string) ([]uint, error) {
	parts := strings.Split(qs, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func ParseDate(qs string) (time.Time, error) {
	return time.Parse(config.DATE_PARSE_FORMAT, qs)
}

// ParseSeat splits a seat label like "12A" into row and letter.
func ParseSeat(seat string) (int, string, error) {
	if len(seat) < 2 {
		return 0, "", fmt.Errorf("invalid seat %q", seat)
	}
	letter := seat[len(seat)-1:]
	if letter[0] < 'A' || letter[0] > 'Z' {
		return 0, "", fmt.Errorf("invalid seat %q", seat)
	}
	row, err := strconv.Atoi(seat[:len(seat)-1])
	if err != nil || row < 1 {
		return 0, "", fmt.Errorf("invalid seat %q", seat)
	}
	return row, letter, nil
}

// AbortWithBindingError shapes gin binding failures into a per-field map.
func AbortWithBindingError(ctx *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := map[string]string{}
		for _, fe := range verrs {
			fields[fe.Field()] = fmt.Sprintf("failed on the %q rule", fe.Tag())
		}
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}
	ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// AbortWithModelError maps persistence errors to the response taxonomy:
// validation 400, missing relation 400, not found 404, duplicate 409.
func AbortWithModelError(ctx *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": map[string]string{verr.Field: verr.Message}})
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		ctx.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "duplicate record"})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "related record does not exist"})
	default:
		log.Printf("Unexpected model error: %s\n", err.Error())
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
