package main

import (
	"net/http"

	"airtracker/src/db"
	"airtracker/src/middlewares"
	"airtracker/src/models"
	"airtracker/src/serializers"
	"airtracker/src/types"
	"airtracker/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func airplaneHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/airplanes", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.
				Model(&models.Airplane{}).
				Preload("AirplaneType").
				Preload("Facilities")
			if v := ctx.Query("name"); v != "" {
				q = q.Where("airplanes.name ILIKE ?", "%"+v+"%")
			}
			if v := ctx.Query("facilities"); v != "" {
				ids, err := utils.ParseIDList(v)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				q = q.
					Joins("JOIN airplane_facilities ON airplane_facilities.airplane_id = airplanes.id").
					Where("airplane_facilities.facility_id IN ?", ids).
					Distinct("airplanes.*")
			}
			if v := ctx.Query("airplane_type"); v != "" {
				q = q.
					Joins("JOIN airplane_types ON airplane_types.id = airplanes.airplane_type_id").
					Where("airplane_types.name ILIKE ?", "%"+v+"%")
			}
			var airplanes []models.Airplane
			if err := q.Order("airplanes.id").Find(&airplanes).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewAirplaneListViews(airplanes))
		}).
		GET("/airplanes/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var airplane models.Airplane
			if err := db.
				Model(&models.Airplane{}).
				Preload("AirplaneType").
				Preload("Facilities").
				First(&airplane, params.ID).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewAirplaneDetailView(&airplane))
		}).
		POST("/airplanes", middlewares.AdminRequired, func(ctx *gin.Context) {
			var body types.CreateAirplaneRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			db := db.GetDb()
			airplane := models.Airplane{
				Name:           body.Name,
				Rows:           body.Rows,
				SeatsInRow:     body.SeatsInRow,
				SeatLetters:    models.SeatLetters(body.SeatLetters),
				AirplaneTypeID: body.AirplaneType,
			}
			err := db.Transaction(func(tx *gorm.DB) error {
				if len(body.Facilities) > 0 {
					var facilities []*models.Facility
					if err := tx.Find(&facilities, body.Facilities).Error; err != nil {
						return err
					}
					if len(facilities) != len(body.Facilities) {
						return &models.ValidationError{Field: "facilities", Message: "unknown facility id"}
					}
					airplane.Facilities = facilities
				}
				return tx.Create(&airplane).Error
			})
			if err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, serializers.NewAirplaneView(&airplane))
		}).
		POST("/airplanes/:id/upload-image", middlewares.AdminRequired, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var airplane models.Airplane
			if err := db.First(&airplane, params.ID).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			key, err := uploadImage(ctx, "airplanes", airplane.Name)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := db.
				Model(&models.Airplane{}).
				Where("id = ?", airplane.ID).
				Update("image_key", key).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"image": key})
		})
	return g
}
