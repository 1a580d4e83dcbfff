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
)

func crewHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/crews", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.Model(&models.Crew{})
			if v := ctx.Query("first_name"); v != "" {
				q = q.Where("first_name ILIKE ?", "%"+v+"%")
			}
			if v := ctx.Query("last_name"); v != "" {
				q = q.Where("last_name ILIKE ?", "%"+v+"%")
			}
			if v := ctx.Query("position"); v != "" {
				q = q.Where("position ILIKE ?", "%"+v+"%")
			}
			var crews []models.Crew
			if err := q.Order("id").Find(&crews).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewCrewListView(crews))
		}).
		POST("/crews", middlewares.AdminRequired, func(ctx *gin.Context) {
			var body types.CreateCrewRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			crew := models.Crew{
				FirstName: body.FirstName,
				LastName:  body.LastName,
				Position:  body.Position,
			}
			db := db.GetDb()
			if err := db.Create(&crew).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, serializers.NewCrewView(&crew))
		})
	return g
}

func countryHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/countries", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.Model(&models.Country{})
			if v := ctx.Query("name"); v != "" {
				q = q.Where("name ILIKE ?", "%"+v+"%")
			}
			var countries []models.Country
			if err := q.Order("name").Find(&countries).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewCountryListView(countries))
		}).
		POST("/countries", middlewares.AdminRequired, func(ctx *gin.Context) {
			var body types.CreateCountryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			country := models.Country{Name: body.Name}
			db := db.GetDb()
			if err := db.Create(&country).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, serializers.NewCountryView(&country))
		})
	return g
}

func cityHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/cities", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.Model(&models.City{})
			if v := ctx.Query("name"); v != "" {
				q = q.Where("name ILIKE ?", "%"+v+"%")
			}
			if v := ctx.Query("country"); v != "" {
				q = q.Where("country_id = ?", v)
			}
			var cities []models.City
			if err := q.Order("country_id, name").Find(&cities).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewCityListView(cities))
		}).
		POST("/cities", middlewares.AdminRequired, func(ctx *gin.Context) {
			var body types.CreateCityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			city := models.City{Name: body.Name, CountryID: body.Country}
			db := db.GetDb()
			if err := db.Create(&city).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, serializers.NewCityView(&city))
		})
	return g
}

func facilityHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/facilities", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.Model(&models.Facility{})
			if v := ctx.Query("name"); v != "" {
				q = q.Where("name ILIKE ?", "%"+v+"%")
			}
			var facilities []models.Facility
			if err := q.Order("id").Find(&facilities).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewFacilityListView(facilities))
		}).
		POST("/facilities", middlewares.AdminRequired, func(ctx *gin.Context) {
			var body types.CreateFacilityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			facility := models.Facility{Name: body.Name}
			db := db.GetDb()
			if err := db.Create(&facility).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, serializers.NewFacilityView(&facility))
		})
	return g
}

func airplaneTypeHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/airplane_types", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.Model(&models.AirplaneType{})
			if v := ctx.Query("name"); v != "" {
				q = q.Where("name ILIKE ?", "%"+v+"%")
			}
			var airplaneTypes []models.AirplaneType
			if err := q.Order("id").Find(&airplaneTypes).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewAirplaneTypeListView(airplaneTypes))
		}).
		POST("/airplane_types", middlewares.AdminRequired, func(ctx *gin.Context) {
			var body types.CreateAirplaneTypeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			airplaneType := models.AirplaneType{Name: body.Name}
			db := db.GetDb()
			if err := db.Create(&airplaneType).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, serializers.NewAirplaneTypeView(&airplaneType))
		})
	return g
}

func routeHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/routes", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.Model(&models.Route{})
			if v := ctx.Query("source"); v != "" {
				q = q.
					Joins("JOIN airports AS source_airports ON source_airports.id = routes.source_id").
					Where("source_airports.closest_big_city_id = ?", v)
			}
			if v := ctx.Query("destination"); v != "" {
				q = q.
					Joins("JOIN airports AS destination_airports ON destination_airports.id = routes.destination_id").
					Where("destination_airports.closest_big_city_id = ?", v)
			}
			var routes []models.Route
			if err := q.Order("routes.id").Find(&routes).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewRouteListView(routes))
		}).
		POST("/routes", middlewares.AdminRequired, func(ctx *gin.Context) {
			var body types.CreateRouteRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			route := models.Route{
				SourceID:      body.Source,
				DestinationID: body.Destination,
				Distance:      body.Distance,
			}
			db := db.GetDb()
			if err := db.Create(&route).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, serializers.NewRouteView(&route))
		})
	return g
}
