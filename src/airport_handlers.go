package main

import (
	"fmt"
	"net/http"
	"path/filepath"

	"airtracker/src/db"
	awslib "airtracker/src/lib/aws"
	"airtracker/src/middlewares"
	"airtracker/src/models"
	"airtracker/src/serializers"
	"airtracker/src/types"
	"airtracker/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// imageObjectKey builds the S3 key for an uploaded image, e.g.
// "airports/kbp-5f3a....jpg".
func imageObjectKey(folder, name, filename string) string {
	return fmt.Sprintf("%s/%s-%s%s", folder, slug.Make(name), uuid.New().String(), filepath.Ext(filename))
}

func uploadImage(ctx *gin.Context, folder, name string) (string, error) {
	header, err := ctx.FormFile("image")
	if err != nil {
		return "", err
	}
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	key := imageObjectKey(folder, name, header.Filename)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	if err := awslib.S3UploadImage(ctx.Request.Context(), key, file, contentType); err != nil {
		return "", err
	}
	return key, nil
}

func airportHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/airports", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.
				Model(&models.Airport{}).
				Preload("ClosestBigCity.Country").
				Preload("Facilities")
			if v := ctx.Query("name"); v != "" {
				q = q.Where("airports.name ILIKE ?", "%"+v+"%")
			}
			if v := ctx.Query("facilities"); v != "" {
				ids, err := utils.ParseIDList(v)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				q = q.
					Joins("JOIN airport_facilities ON airport_facilities.airport_id = airports.id").
					Where("airport_facilities.facility_id IN ?", ids).
					Distinct("airports.*")
			}
			if v := ctx.Query("closest_big_city"); v != "" {
				q = q.
					Joins("JOIN cities ON cities.id = airports.closest_big_city_id").
					Where("cities.name = ?", v)
			}
			var airports []models.Airport
			if err := q.Order("airports.id").Find(&airports).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewAirportListViews(airports))
		}).
		GET("/airports/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var airport models.Airport
			if err := db.
				Model(&models.Airport{}).
				Preload("ClosestBigCity.Country").
				Preload("Facilities").
				First(&airport, params.ID).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewAirportDetailView(&airport))
		}).
		POST("/airports", middlewares.AdminRequired, func(ctx *gin.Context) {
			var body types.CreateAirportRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			db := db.GetDb()
			airport := models.Airport{
				Name:             body.Name,
				ClosestBigCityID: body.ClosestBigCity,
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
					airport.Facilities = facilities
				}
				return tx.Create(&airport).Error
			})
			if err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, serializers.NewAirportView(&airport))
		}).
		POST("/airports/:id/upload-image", middlewares.AdminRequired, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var airport models.Airport
			if err := db.First(&airport, params.ID).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			key, err := uploadImage(ctx, "airports", airport.Name)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := db.
				Model(&models.Airport{}).
				Where("id = ?", airport.ID).
				Update("image_key", key).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"image": key})
		})
	return g
}
