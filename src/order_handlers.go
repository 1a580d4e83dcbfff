package main

import (
	"log"
	"net/http"

	"airtracker/src/common"
	"airtracker/src/db"
	"airtracker/src/models"
	"airtracker/src/serializers"
	"airtracker/src/types"
	"airtracker/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func preloadOrderDetail(q *gorm.DB) *gorm.DB {
	return q.
		Preload("User").
		Preload("Tickets.Flight.Route.Source").
		Preload("Tickets.Flight.Route.Destination")
}

// loadOwnOrder fetches the bare order and enforces ownership before any
// heavier query runs.
func loadOwnOrder(ctx *gin.Context, id uint) (*models.Order, bool) {
	userId := ctx.GetUint("id")
	db := db.GetDb()
	var order models.Order
	if err := db.Model(&models.Order{}).First(&order, id).Error; err != nil {
		utils.AbortWithModelError(ctx, err)
		return nil, false
	}
	if order.UserID != userId {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "order belongs to another user"})
		return nil, false
	}
	return &order, true
}

func createTicketsForOrder(tx *gorm.DB, orderId uint, payloads []types.CreateTicketRequestBody) error {
	for i := range payloads {
		payload := &payloads[i]
		ticket := models.Ticket{
			PassengerFirstName: payload.PassengerFirstName,
			PassengerLastName:  payload.PassengerLastName,
			Row:                payload.Row,
			SeatLetter:         payload.SeatLetter,
			FlightID:           payload.Flight,
			OrderID:            orderId,
		}
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}
	}
	return nil
}

func orderHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/orders", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			db := db.GetDb()
			q := db.
				Model(&models.Order{}).
				Preload("Tickets").
				Where("user_id = ?", userId)
			if v := ctx.Query("date"); v != "" {
				date, err := utils.ParseDate(v)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				q = q.Where("DATE(orders.created_at) = ?", date.Format("2006-01-02"))
			}
			var orders []models.Order
			if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewOrderListViews(orders))
		}).
		GET("/orders/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if _, ok := loadOwnOrder(ctx, params.ID); !ok {
				return
			}
			db := db.GetDb()
			var order models.Order
			if err := preloadOrderDetail(db.Model(&models.Order{})).
				First(&order, params.ID).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewOrderDetailView(&order))
		}).
		POST("/orders", func(ctx *gin.Context) {
			var body types.CreateOrderRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			userId := ctx.GetUint("id")
			db := db.GetDb()
			order := models.Order{UserID: userId}
			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&order).Error; err != nil {
					return err
				}
				return createTicketsForOrder(tx, order.ID, body.Tickets)
			})
			if err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}

			var created models.Order
			if err := preloadOrderDetail(db.Model(&models.Order{})).
				First(&created, order.ID).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			if err := common.SendOrderConfirmationEmail(&created); err != nil {
				log.Printf("Error sending order confirmation for order %d: %s\n", created.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "order created but confirmation email failed"})
				return
			}
			ctx.JSON(http.StatusCreated, serializers.NewOrderDetailView(&created))
		}).
		PUT("/orders/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateOrderRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			order, ok := loadOwnOrder(ctx, params.ID)
			if !ok {
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				// Hard delete: a soft-deleted row would keep holding the
				// (flight, row, seat_letter) unique index.
				if err := tx.
					Unscoped().
					Where("order_id = ?", order.ID).
					Delete(&models.Ticket{}).
					Error; err != nil {
					return err
				}
				return createTicketsForOrder(tx, order.ID, body.Tickets)
			})
			if err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			var updated models.Order
			if err := preloadOrderDetail(db.Model(&models.Order{})).
				First(&updated, order.ID).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewOrderDetailView(&updated))
		}).
		DELETE("/orders/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			order, ok := loadOwnOrder(ctx, params.ID)
			if !ok {
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.
					Unscoped().
					Where("order_id = ?", order.ID).
					Delete(&models.Ticket{}).
					Error; err != nil {
					return err
				}
				return tx.Delete(&models.Order{}, order.ID).Error
			})
			if err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func preloadTicketDetail(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Flight.Route.Source").
		Preload("Flight.Route.Destination")
}

// loadOwnTicket fetches the ticket with its order and enforces ownership.
func loadOwnTicket(ctx *gin.Context, id uint) (*models.Ticket, bool) {
	userId := ctx.GetUint("id")
	db := db.GetDb()
	var ticket models.Ticket
	if err := db.
		Model(&models.Ticket{}).
		Preload("Order").
		First(&ticket, id).
		Error; err != nil {
		utils.AbortWithModelError(ctx, err)
		return nil, false
	}
	if ticket.Order.UserID != userId {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "ticket belongs to another user"})
		return nil, false
	}
	return &ticket, true
}

func ticketHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/tickets", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			db := db.GetDb()
			q := db.
				Model(&models.Ticket{}).
				Joins("JOIN orders ON orders.id = tickets.order_id").
				Where("orders.user_id = ?", userId).
				Preload("Flight.Route.Source").
				Preload("Flight.Route.Destination")
			if v := ctx.Query("seat"); v != "" {
				row, letter, err := utils.ParseSeat(v)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				q = q.Where("tickets.row = ? AND tickets.seat_letter = ?", row, letter)
			}
			if v := ctx.Query("passenger"); v != "" {
				q = q.Where("tickets.passenger_first_name = ? OR tickets.passenger_last_name = ?", v, v)
			}
			var tickets []models.Ticket
			if err := q.Order("tickets.id").Find(&tickets).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewTicketDetailViews(tickets))
		}).
		GET("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			db := db.GetDb()
			var ticket models.Ticket
			if err := preloadTicketDetail(db.Model(&models.Ticket{})).
				Preload("Order").
				First(&ticket, params.ID).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			if ticket.Order.UserID != userId {
				ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "ticket belongs to another user"})
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewTicketDetailView(&ticket))
		}).
		POST("/tickets", func(ctx *gin.Context) {
			var body types.CreateOrderTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			order, ok := loadOwnOrder(ctx, body.Order)
			if !ok {
				return
			}
			db := db.GetDb()
			ticket := models.Ticket{
				PassengerFirstName: body.PassengerFirstName,
				PassengerLastName:  body.PassengerLastName,
				Row:                body.Row,
				SeatLetter:         body.SeatLetter,
				FlightID:           body.Flight,
				OrderID:            order.ID,
			}
			if err := db.Create(&ticket).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			var created models.Ticket
			if err := preloadTicketDetail(db.Model(&models.Ticket{})).
				First(&created, ticket.ID).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, serializers.NewTicketDetailView(&created))
		}).
		PUT("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.AbortWithBindingError(ctx, err)
				return
			}
			ticket, ok := loadOwnTicket(ctx, params.ID)
			if !ok {
				return
			}
			ticket.Order = models.Order{}
			ticket.PassengerFirstName = body.PassengerFirstName
			ticket.PassengerLastName = body.PassengerLastName
			ticket.Row = body.Row
			ticket.SeatLetter = body.SeatLetter
			ticket.FlightID = body.Flight
			db := db.GetDb()
			if err := db.Save(ticket).Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			var updated models.Ticket
			if err := preloadTicketDetail(db.Model(&models.Ticket{})).
				First(&updated, ticket.ID).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, serializers.NewTicketDetailView(&updated))
		}).
		DELETE("/tickets/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			ticket, ok := loadOwnTicket(ctx, params.ID)
			if !ok {
				return
			}
			db := db.GetDb()
			if err := db.
				Unscoped().
				Delete(&models.Ticket{}, ticket.ID).
				Error; err != nil {
				utils.AbortWithModelError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
