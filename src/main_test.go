package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"airtracker/src/db"
	"airtracker/src/middlewares"
	"airtracker/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TestSuite struct {
	suite.Suite
	DB         *gorm.DB
	Mock       sqlmock.Sqlmock
	UserToken  string
	AdminToken string
}

func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "secret")

	registerValidators()

	d, mock := NewMockDB()
	db.NewDB(d)
	s.DB = d
	s.Mock = mock

	token, err := generateJWT("someone@example.com", 1, string(types.ROLE_USER))
	if err != nil {
		log.Fatalf("Error generating JWT token: %s\n", err.Error())
	}
	s.UserToken = token

	token, err = generateJWT("admin@example.com", 2, string(types.ROLE_ADMIN))
	if err != nil {
		log.Fatalf("Error generating JWT token: %s\n", err.Error())
	}
	s.AdminToken = token
}

func (s *TestSuite) newRouter() *gin.Engine {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(middlewares.AuthMiddleware)
	registerHandlers(apiv1)
	return router
}

// expectUser queues the user lookup the auth middleware performs on every
// request.
func (s *TestSuite) expectUser(id uint, email, role string) {
	rows := sqlmock.
		NewRows([]string{"id", "email", "name", "role"}).
		AddRow(id, email, "Test User", role)
	s.Mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(rows)
}

// expectFlightWithAirplane queues the flight lookup and airplane preload the
// ticket save hook performs.
func (s *TestSuite) expectFlightWithAirplane(flightId uint) {
	s.Mock.
		ExpectQuery(`SELECT (.+) FROM "flights"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "airplane_id"}).AddRow(flightId, 1))
	s.Mock.
		ExpectQuery(`SELECT (.+) FROM "airplanes"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "name", "rows", "seats_in_row", "seat_letters"}).
			AddRow(1, "747-200", 30, 6, "A,B,C,D,E,F"))
}

func sampleTicketBody(flightId uint) types.CreateTicketRequestBody {
	return types.CreateTicketRequestBody{
		PassengerFirstName: "John",
		PassengerLastName:  "Doe",
		Row:                12,
		SeatLetter:         "A",
		Flight:             flightId,
	}
}

func (s *TestSuite) request(router *gin.Engine, method, target, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		rbytes, err := json.Marshal(body)
		assert.Nil(s.T(), err)
		reader = strings.NewReader(string(rbytes))
	}
	req, _ := http.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestAuthRequired() {
	router := s.newRouter()

	s.Run("Should return 401 without a token", func() {
		w := s.request(router, "GET", "/api/v1/crews", "", nil)
		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("Should return 401 for a malformed token", func() {
		w := s.request(router, "GET", "/api/v1/crews", "not-a-token", nil)
		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("Should return 401 for a bare Bearer header", func() {
		req, _ := http.NewRequest("GET", "/api/v1/crews", nil)
		req.Header.Set("Authorization", "Bearer")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(s.T(), 401, w.Code)
	})
}

func (s *TestSuite) TestCountries() {
	router := s.newRouter()

	s.Run("Should return list of Country with 200 status", func() {
		s.expectUser(1, "someone@example.com", "user")
		rows := sqlmock.
			NewRows([]string{"id", "name"}).
			AddRow(1, "Ukraine").
			AddRow(2, "United States")
		s.Mock.ExpectQuery(`SELECT (.+) FROM "countries"`).WillReturnRows(rows)

		w := s.request(router, "GET", "/api/v1/countries", s.UserToken, nil)
		assert.Equal(s.T(), 200, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		sjson := string(rbytes)
		assert.Equal(s.T(), int64(2), gjson.Get(sjson, "#").Int())
		assert.Equal(s.T(), "Ukraine", gjson.Get(sjson, "0.name").String())
	})

	s.Run("Should return 403 when a regular user creates a Country", func() {
		s.expectUser(1, "someone@example.com", "user")

		body := types.CreateCountryRequestBody{Name: "Ukraine"}
		w := s.request(router, "POST", "/api/v1/countries", s.UserToken, &body)
		assert.Equal(s.T(), 403, w.Code)
	})

	s.Run("Should return 500 on a database failure", func() {
		s.expectUser(1, "someone@example.com", "user")
		s.Mock.
			ExpectQuery(`SELECT (.+) FROM "countries"`).
			WillReturnError(errors.New("connection refused"))

		w := s.request(router, "GET", "/api/v1/countries", s.UserToken, nil)
		assert.Equal(s.T(), 500, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		assert.Equal(s.T(), "internal server error", gjson.Get(string(rbytes), "error").String())
	})

	assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestCrewFilters() {
	router := s.newRouter()

	s.expectUser(1, "someone@example.com", "user")
	rows := sqlmock.
		NewRows([]string{"id", "first_name", "last_name", "position"}).
		AddRow(1, "John", "Doe", "Pilot")
	s.Mock.ExpectQuery(`SELECT (.+) FROM "crews" WHERE position ILIKE`).WillReturnRows(rows)

	w := s.request(router, "GET", "/api/v1/crews?position=Pilot", s.UserToken, nil)
	assert.Equal(s.T(), 200, w.Code)

	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	sjson := string(rbytes)
	assert.Equal(s.T(), "John", gjson.Get(sjson, "0.first_name").String())
	assert.Equal(s.T(), "Pilot", gjson.Get(sjson, "0.position").String())

	assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestAirplaneTypes() {
	router := s.newRouter()

	s.Run("Should create an AirplaneType with 201 status", func() {
		s.expectUser(2, "admin@example.com", "admin")
		s.Mock.ExpectBegin()
		s.Mock.
			ExpectQuery(`INSERT INTO "airplane_types"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.Mock.ExpectCommit()

		body := types.CreateAirplaneTypeRequestBody{Name: "Boeing"}
		w := s.request(router, "POST", "/api/v1/airplane_types", s.AdminToken, &body)
		assert.Equal(s.T(), 201, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		sjson := string(rbytes)
		assert.Equal(s.T(), int64(1), gjson.Get(sjson, "id").Int())
		assert.Equal(s.T(), "Boeing", gjson.Get(sjson, "name").String())
	})

	s.Run("Should return a 400 error response for a missing name", func() {
		s.expectUser(2, "admin@example.com", "admin")

		w := s.request(router, "POST", "/api/v1/airplane_types", s.AdminToken, map[string]any{})
		assert.Equal(s.T(), 400, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		assert.True(s.T(), gjson.Get(string(rbytes), "errors.name").Exists())
	})

	assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestFlightFilters() {
	router := s.newRouter()

	s.expectUser(1, "someone@example.com", "user")

	w := s.request(router, "GET", "/api/v1/flights?departure_time=01-09-2026", s.UserToken, nil)
	assert.Equal(s.T(), 400, w.Code)

	assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestOrders() {
	router := s.newRouter()

	s.Run("Should return list of own Order with 200 status", func() {
		s.expectUser(1, "someone@example.com", "user")
		orderRows := sqlmock.
			NewRows([]string{"id", "user_id"}).
			AddRow(1, 1)
		s.Mock.ExpectQuery(`SELECT (.+) FROM "orders" WHERE user_id =`).WillReturnRows(orderRows)
		ticketRows := sqlmock.NewRows([]string{"id", "order_id", "row", "seat_letter"})
		s.Mock.ExpectQuery(`SELECT (.+) FROM "tickets"`).WillReturnRows(ticketRows)

		w := s.request(router, "GET", "/api/v1/orders", s.UserToken, nil)
		assert.Equal(s.T(), 200, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		sjson := string(rbytes)
		assert.Equal(s.T(), int64(1), gjson.Get(sjson, "0.id").Int())
		assert.Equal(s.T(), int64(0), gjson.Get(sjson, "0.tickets").Int())
	})

	s.Run("Should return 400 for a bad date filter", func() {
		s.expectUser(1, "someone@example.com", "user")

		w := s.request(router, "GET", "/api/v1/orders?date=tomorrow", s.UserToken, nil)
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should return 403 for another user's Order", func() {
		s.expectUser(1, "someone@example.com", "user")
		orderRows := sqlmock.
			NewRows([]string{"id", "user_id"}).
			AddRow(1, 2)
		s.Mock.ExpectQuery(`SELECT (.+) FROM "orders"`).WillReturnRows(orderRows)

		w := s.request(router, "GET", "/api/v1/orders/1", s.UserToken, nil)
		assert.Equal(s.T(), 403, w.Code)
	})

	s.Run("Should return 404 for a missing Order", func() {
		s.expectUser(1, "someone@example.com", "user")
		s.Mock.
			ExpectQuery(`SELECT (.+) FROM "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

		w := s.request(router, "GET", "/api/v1/orders/99", s.UserToken, nil)
		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("Should return a 400 error response for an Order without tickets", func() {
		s.expectUser(1, "someone@example.com", "user")

		body := types.CreateOrderRequestBody{Tickets: []types.CreateTicketRequestBody{}}
		w := s.request(router, "POST", "/api/v1/orders", s.UserToken, &body)
		assert.Equal(s.T(), 400, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		assert.True(s.T(), gjson.Get(string(rbytes), "errors.tickets").Exists())
	})

	s.Run("Should roll back the whole Order when a ticket references a missing Flight", func() {
		s.expectUser(1, "someone@example.com", "user")
		s.Mock.ExpectBegin()
		s.Mock.
			ExpectQuery(`INSERT INTO "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		s.Mock.
			ExpectQuery(`SELECT (.+) FROM "flights"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "airplane_id"}))
		s.Mock.ExpectRollback()

		body := types.CreateOrderRequestBody{Tickets: []types.CreateTicketRequestBody{sampleTicketBody(99)}}
		w := s.request(router, "POST", "/api/v1/orders", s.UserToken, &body)
		assert.Equal(s.T(), 400, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		assert.True(s.T(), gjson.Get(string(rbytes), "errors.flight").Exists())
	})

	s.Run("Should return 409 for a seat that is already taken", func() {
		s.expectUser(1, "someone@example.com", "user")
		s.Mock.ExpectBegin()
		s.Mock.
			ExpectQuery(`INSERT INTO "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		s.expectFlightWithAirplane(3)
		s.Mock.
			ExpectQuery(`INSERT INTO "tickets"`).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		s.Mock.ExpectRollback()

		body := types.CreateOrderRequestBody{Tickets: []types.CreateTicketRequestBody{sampleTicketBody(3)}}
		w := s.request(router, "POST", "/api/v1/orders", s.UserToken, &body)
		assert.Equal(s.T(), 409, w.Code)
	})

	s.Run("Should return 500 when the confirmation email fails after commit", func() {
		os.Setenv("SMTP_HOST", "")

		s.expectUser(1, "someone@example.com", "user")
		s.Mock.ExpectBegin()
		s.Mock.
			ExpectQuery(`INSERT INTO "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		s.expectFlightWithAirplane(3)
		s.Mock.
			ExpectQuery(`INSERT INTO "tickets"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
		s.Mock.ExpectCommit()
		s.Mock.
			ExpectQuery(`SELECT (.+) FROM "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(12, 1))
		s.Mock.
			ExpectQuery(`SELECT (.+) FROM "tickets"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id"}))
		s.Mock.
			ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.
				NewRows([]string{"id", "email", "name", "role"}).
				AddRow(1, "someone@example.com", "Test User", "user"))

		body := types.CreateOrderRequestBody{Tickets: []types.CreateTicketRequestBody{sampleTicketBody(3)}}
		w := s.request(router, "POST", "/api/v1/orders", s.UserToken, &body)
		assert.Equal(s.T(), 500, w.Code)

		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		assert.Contains(s.T(), gjson.Get(string(rbytes), "error").String(), "confirmation email")
	})

	s.Run("Should hard delete tickets when an Order is deleted", func() {
		s.expectUser(1, "someone@example.com", "user")
		s.Mock.
			ExpectQuery(`SELECT (.+) FROM "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(5, 1))
		s.Mock.ExpectBegin()
		s.Mock.
			ExpectExec(`DELETE FROM "tickets"`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		s.Mock.
			ExpectExec(`UPDATE "orders" SET "deleted_at"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		s.Mock.ExpectCommit()

		w := s.request(router, "DELETE", "/api/v1/orders/5", s.UserToken, nil)
		assert.Equal(s.T(), 204, w.Code)
	})

	assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) TestTickets() {
	router := s.newRouter()

	s.Run("Should hard delete an own Ticket with 204 status", func() {
		s.expectUser(1, "someone@example.com", "user")
		s.Mock.
			ExpectQuery(`SELECT (.+) FROM "tickets"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id"}).AddRow(9, 4))
		s.Mock.
			ExpectQuery(`SELECT (.+) FROM "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(4, 1))
		s.Mock.ExpectBegin()
		s.Mock.
			ExpectExec(`DELETE FROM "tickets"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		s.Mock.ExpectCommit()

		w := s.request(router, "DELETE", "/api/v1/tickets/9", s.UserToken, nil)
		assert.Equal(s.T(), 204, w.Code)
	})

	s.Run("Should return 403 for another user's Ticket", func() {
		s.expectUser(1, "someone@example.com", "user")
		s.Mock.
			ExpectQuery(`SELECT (.+) FROM "tickets"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id"}).AddRow(9, 4))
		s.Mock.
			ExpectQuery(`SELECT (.+) FROM "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(4, 2))

		w := s.request(router, "DELETE", "/api/v1/tickets/9", s.UserToken, nil)
		assert.Equal(s.T(), 403, w.Code)
	})

	assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
