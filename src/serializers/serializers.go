// Package serializers holds the read projections returned by the API.
// Each entity has a base view used for create responses, and where the
// endpoints differ, a flattened list view and a nested detail view.
package serializers

import (
	"time"

	"airtracker/src/models"
)

type CrewView struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

func NewCrewView(c *models.Crew) CrewView {
	return CrewView{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Position: c.Position}
}

func NewCrewListView(crews []models.Crew) []CrewView {
	views := make([]CrewView, 0, len(crews))
	for i := range crews {
		views = append(views, NewCrewView(&crews[i]))
	}
	return views
}

type CountryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewCountryView(c *models.Country) CountryView {
	return CountryView{ID: c.ID, Name: c.Name}
}

func NewCountryListView(countries []models.Country) []CountryView {
	views := make([]CountryView, 0, len(countries))
	for i := range countries {
		views = append(views, NewCountryView(&countries[i]))
	}
	return views
}

type CityView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Country uint   `json:"country"`
}

func NewCityView(c *models.City) CityView {
	return CityView{ID: c.ID, Name: c.Name, Country: c.CountryID}
}

func NewCityListView(cities []models.City) []CityView {
	views := make([]CityView, 0, len(cities))
	for i := range cities {
		views = append(views, NewCityView(&cities[i]))
	}
	return views
}

type FacilityView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewFacilityView(f *models.Facility) FacilityView {
	return FacilityView{ID: f.ID, Name: f.Name}
}

func NewFacilityListView(facilities []models.Facility) []FacilityView {
	views := make([]FacilityView, 0, len(facilities))
	for i := range facilities {
		views = append(views, NewFacilityView(&facilities[i]))
	}
	return views
}

func facilityNames(facilities []*models.Facility) []string {
	names := make([]string, 0, len(facilities))
	for _, f := range facilities {
		names = append(names, f.Name)
	}
	return names
}

func facilityViews(facilities []*models.Facility) []FacilityView {
	views := make([]FacilityView, 0, len(facilities))
	for _, f := range facilities {
		views = append(views, NewFacilityView(f))
	}
	return views
}

type AirportView struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	ClosestBigCity uint    `json:"closest_big_city"`
	Facilities     []uint  `json:"facilities"`
	Image          *string `json:"image,omitempty"`
}

// NewAirportView projects the create response; relations stay as ids.
func NewAirportView(a *models.Airport) AirportView {
	ids := make([]uint, 0, len(a.Facilities))
	for _, f := range a.Facilities {
		ids = append(ids, f.ID)
	}
	return AirportView{
		ID:             a.ID,
		Name:           a.Name,
		ClosestBigCity: a.ClosestBigCityID,
		Facilities:     ids,
		Image:          a.ImageKey,
	}
}

// AirportListView expects ClosestBigCity.Country and Facilities preloaded.
type AirportListView struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Country        string   `json:"country"`
	ClosestBigCity string   `json:"closest_big_city"`
	Facilities     []string `json:"facilities"`
}

func NewAirportListView(a *models.Airport) AirportListView {
	return AirportListView{
		ID:             a.ID,
		Name:           a.Name,
		Country:        a.ClosestBigCity.Country.Name,
		ClosestBigCity: a.ClosestBigCity.Name,
		Facilities:     facilityNames(a.Facilities),
	}
}

func NewAirportListViews(airports []models.Airport) []AirportListView {
	views := make([]AirportListView, 0, len(airports))
	for i := range airports {
		views = append(views, NewAirportListView(&airports[i]))
	}
	return views
}

type AirportDetailView struct {
	ID             uint           `json:"id"`
	Name           string         `json:"name"`
	Country        string         `json:"country"`
	ClosestBigCity CityView       `json:"closest_big_city"`
	Facilities     []FacilityView `json:"facilities"`
	Image          *string        `json:"image,omitempty"`
}

func NewAirportDetailView(a *models.Airport) AirportDetailView {
	return AirportDetailView{
		ID:             a.ID,
		Name:           a.Name,
		Country:        a.ClosestBigCity.Country.Name,
		ClosestBigCity: NewCityView(&a.ClosestBigCity),
		Facilities:     facilityViews(a.Facilities),
		Image:          a.ImageKey,
	}
}

type RouteView struct {
	ID          uint `json:"id"`
	Source      uint `json:"source"`
	Destination uint `json:"destination"`
	Distance    int  `json:"distance"`
}

func NewRouteView(r *models.Route) RouteView {
	return RouteView{ID: r.ID, Source: r.SourceID, Destination: r.DestinationID, Distance: r.Distance}
}

func NewRouteListView(routes []models.Route) []RouteView {
	views := make([]RouteView, 0, len(routes))
	for i := range routes {
		views = append(views, NewRouteView(&routes[i]))
	}
	return views
}

// RouteDetailView expects Source/Destination airports with their cities,
// countries and facilities preloaded.
type RouteDetailView struct {
	ID          uint              `json:"id"`
	Source      AirportDetailView `json:"source"`
	Destination AirportDetailView `json:"destination"`
	Distance    int               `json:"distance"`
}

func NewRouteDetailView(r *models.Route) RouteDetailView {
	return RouteDetailView{
		ID:          r.ID,
		Source:      NewAirportDetailView(&r.Source),
		Destination: NewAirportDetailView(&r.Destination),
		Distance:    r.Distance,
	}
}

type AirplaneTypeView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewAirplaneTypeView(t *models.AirplaneType) AirplaneTypeView {
	return AirplaneTypeView{ID: t.ID, Name: t.Name}
}

func NewAirplaneTypeListView(airplaneTypes []models.AirplaneType) []AirplaneTypeView {
	views := make([]AirplaneTypeView, 0, len(airplaneTypes))
	for i := range airplaneTypes {
		views = append(views, NewAirplaneTypeView(&airplaneTypes[i]))
	}
	return views
}

type AirplaneView struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Rows         int      `json:"rows"`
	SeatsInRow   int      `json:"seats_in_row"`
	SeatLetters  []string `json:"seat_letters"`
	AirplaneType uint     `json:"airplane_type"`
	Facilities   []uint   `json:"facilities"`
	Image        *string  `json:"image,omitempty"`
}

func NewAirplaneView(a *models.Airplane) AirplaneView {
	ids := make([]uint, 0, len(a.Facilities))
	for _, f := range a.Facilities {
		ids = append(ids, f.ID)
	}
	return AirplaneView{
		ID:           a.ID,
		Name:         a.Name,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		SeatLetters:  a.SeatLetters,
		AirplaneType: a.AirplaneTypeID,
		Facilities:   ids,
		Image:        a.ImageKey,
	}
}

// AirplaneListView expects AirplaneType and Facilities preloaded.
type AirplaneListView struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Capacity     int      `json:"capacity"`
	AirplaneType string   `json:"airplane_type"`
	Facilities   []string `json:"facilities"`
}

func NewAirplaneListView(a *models.Airplane) AirplaneListView {
	return AirplaneListView{
		ID:           a.ID,
		Name:         a.Name,
		Capacity:     a.Capacity(),
		AirplaneType: a.AirplaneType.Name,
		Facilities:   facilityNames(a.Facilities),
	}
}

func NewAirplaneListViews(airplanes []models.Airplane) []AirplaneListView {
	views := make([]AirplaneListView, 0, len(airplanes))
	for i := range airplanes {
		views = append(views, NewAirplaneListView(&airplanes[i]))
	}
	return views
}

type AirplaneDetailView struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	Rows         int              `json:"rows"`
	SeatsInRow   int              `json:"seats_in_row"`
	SeatLetters  []string         `json:"seat_letters"`
	Capacity     int              `json:"capacity"`
	AirplaneType AirplaneTypeView `json:"airplane_type"`
	Facilities   []FacilityView   `json:"facilities"`
	Image        *string          `json:"image,omitempty"`
}

func NewAirplaneDetailView(a *models.Airplane) AirplaneDetailView {
	return AirplaneDetailView{
		ID:           a.ID,
		Name:         a.Name,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		SeatLetters:  a.SeatLetters,
		Capacity:     a.Capacity(),
		AirplaneType: NewAirplaneTypeView(&a.AirplaneType),
		Facilities:   facilityViews(a.Facilities),
		Image:        a.ImageKey,
	}
}

func crewNames(crews []*models.Crew) []string {
	names := make([]string, 0, len(crews))
	for _, c := range crews {
		names = append(names, c.FullName())
	}
	return names
}

type FlightView struct {
	ID            uint      `json:"id"`
	Route         uint      `json:"route"`
	Airplane      uint      `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Terminal      string    `json:"terminal"`
	Gate          int       `json:"gate"`
	Crews         []uint    `json:"crews"`
}

func NewFlightView(f *models.Flight) FlightView {
	ids := make([]uint, 0, len(f.Crews))
	for _, c := range f.Crews {
		ids = append(ids, c.ID)
	}
	return FlightView{
		ID:            f.ID,
		Route:         f.RouteID,
		Airplane:      f.AirplaneID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Terminal:      f.Terminal,
		Gate:          f.Gate,
		Crews:         ids,
	}
}

// FlightListView expects Route.Source, Route.Destination, Airplane and
// Crews preloaded.
type FlightListView struct {
	ID            uint      `json:"id"`
	Route         string    `json:"route"`
	Airplane      string    `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Terminal      string    `json:"terminal"`
	Gate          int       `json:"gate"`
	Crews         []string  `json:"crews"`
}

func NewFlightListView(f *models.Flight) FlightListView {
	return FlightListView{
		ID:            f.ID,
		Route:         f.Route.FullWay(),
		Airplane:      f.Airplane.Name,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Terminal:      f.Terminal,
		Gate:          f.Gate,
		Crews:         crewNames(f.Crews),
	}
}

func NewFlightListViews(flights []models.Flight) []FlightListView {
	views := make([]FlightListView, 0, len(flights))
	for i := range flights {
		views = append(views, NewFlightListView(&flights[i]))
	}
	return views
}

type FlightDetailView struct {
	ID            uint               `json:"id"`
	Route         RouteDetailView    `json:"route"`
	Airplane      AirplaneDetailView `json:"airplane"`
	DepartureTime time.Time          `json:"departure_time"`
	ArrivalTime   time.Time          `json:"arrival_time"`
	Terminal      string             `json:"terminal"`
	Gate          int                `json:"gate"`
	Crews         []string           `json:"crews"`
}

func NewFlightDetailView(f *models.Flight) FlightDetailView {
	return FlightDetailView{
		ID:            f.ID,
		Route:         NewRouteDetailView(&f.Route),
		Airplane:      NewAirplaneDetailView(&f.Airplane),
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Terminal:      f.Terminal,
		Gate:          f.Gate,
		Crews:         crewNames(f.Crews),
	}
}

type OrderListView struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   int       `json:"tickets"`
}

func NewOrderListView(o *models.Order) OrderListView {
	return OrderListView{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: len(o.Tickets)}
}

func NewOrderListViews(orders []models.Order) []OrderListView {
	views := make([]OrderListView, 0, len(orders))
	for i := range orders {
		views = append(views, NewOrderListView(&orders[i]))
	}
	return views
}

// TicketFlightView carries the schedule fields a passenger needs.
type TicketFlightView struct {
	ID            uint      `json:"id"`
	Route         string    `json:"route"`
	Terminal      string    `json:"terminal"`
	Gate          int       `json:"gate"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

// TicketDetailView expects Flight.Route.Source and Flight.Route.Destination
// preloaded.
type TicketDetailView struct {
	ID                 uint             `json:"id"`
	PassengerFirstName string           `json:"passenger_first_name"`
	PassengerLastName  string           `json:"passenger_last_name"`
	Row                int              `json:"row"`
	SeatLetter         string           `json:"seat_letter"`
	Seat               string           `json:"seat"`
	Flight             TicketFlightView `json:"flight"`
}

func NewTicketDetailView(t *models.Ticket) TicketDetailView {
	return TicketDetailView{
		ID:                 t.ID,
		PassengerFirstName: t.PassengerFirstName,
		PassengerLastName:  t.PassengerLastName,
		Row:                t.Row,
		SeatLetter:         t.SeatLetter,
		Seat:               t.Seat(),
		Flight: TicketFlightView{
			ID:            t.Flight.ID,
			Route:         t.Flight.Route.ShortWay(),
			Terminal:      t.Flight.Terminal,
			Gate:          t.Flight.Gate,
			DepartureTime: t.Flight.DepartureTime,
			ArrivalTime:   t.Flight.ArrivalTime,
		},
	}
}

func NewTicketDetailViews(tickets []models.Ticket) []TicketDetailView {
	views := make([]TicketDetailView, 0, len(tickets))
	for i := range tickets {
		views = append(views, NewTicketDetailView(&tickets[i]))
	}
	return views
}

type OrderDetailView struct {
	ID        uint               `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Tickets   []TicketDetailView `json:"tickets"`
}

func NewOrderDetailView(o *models.Order) OrderDetailView {
	return OrderDetailView{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		Tickets:   NewTicketDetailViews(o.Tickets),
	}
}
