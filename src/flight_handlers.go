package main

import (
	"net/http"

	"airtracker/src/config"
	"airtracker/src/db"
	"airtracker/src/middlewares"
	"airtracker/src/models"
	"airtracker/src/serializers"
	"airtracker/src/types"
	"airtracker/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func flightHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/flights", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.
				Model(&models.Flight{}).
				Preload("Route.Source").
				Preload("Route.Destination").
				Preload("Airplane").
				Preload("Crews")
			if v := ctx.Query("departure_time"); v != "" {
				date, err := utils.ParseDate(v)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				q = q.Where("DATE(departure_time) = ?", date.Format(config.DATE_PARSE_FORMAT))
			}
			if v := ctx.Query("arrival_time"); v != "" {
				date, err := utils.ParseDate(v)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				q = q.Where("DATE(arrival_time) = ?", date.Format(config.DATE_PARSE_FORMAT))
			}
			var flights []models.Flight
			if err := q.Order("departure_time").Find(&flights).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewFlightListViews(flights))
		}).
		GET("/flights/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var flight models.Flight
			if err := db.
				Model(&models.Flight{}).
				Preload("Route.Source.ClosestBigCity.Country").
				Preload("Route.Source.Facilities").
				Preload("Route.Destination.ClosestBigCity.Country").
				Preload("Route.Destination.Facilities").
				Preload("Airplane.AirplaneType").
				Preload("Airplane.Facilities").
				Preload("Crews").
				First(&flight, params.ID).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewFlightDetailView(&flight))
		}).
		POST("/flights", middlewares.AdminRequired, func(ctx *gin.Context) {
			var body types.CreateFlightRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			db := db.GetDb()
			flight := models.Flight{
				RouteID:       body.Route,
				AirplaneID:    body.Airplane,
				DepartureTime: body.DepartureTime,
				ArrivalTime:   body.ArrivalTime,
				Terminal:      body.Terminal,
				Gate:          body.Gate,
			}
			err := db.Transaction(func(tx *gorm.DB) error {
				if len(body.Crews) > 0 {
					var crews []*models.Crew
					if err := tx.Find(&crews, body.Crews).Error; err != nil {
						return err
					}
					if len(crews) != len(body.Crews) {
						return &models.ValidationError{Field: "crews", Message: "unknown crew id"}
					}
					flight.Crews = crews
				}
				return tx.Create(&flight).Error
			})
			if err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, serializers.NewFlightView(&flight))
		})
	return g
}
