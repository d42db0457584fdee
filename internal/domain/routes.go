package domain

// Router paths understood by the dashboard
const (
	RouteAnalytics       = "/analytics"
	RouteCustomers       = "/customers"
	RouteCustomersNew    = "/customers/new"
	RouteDashboard       = "/"
	RouteItems           = "/items"
	RouteItemsNew        = "/items/new"
	RouteRentals         = "/rentals"
	RouteRentalsNew      = "/rentals/new"
	RouteRentalsOverdue  = "/rentals/overdue"
	RouteReservations    = "/reservations"
	RouteReservationsNew = "/reservations/new"
)

// Routes lists every known path in display order
var Routes = []string{
	RouteDashboard,
	RouteCustomers,
	RouteCustomersNew,
	RouteItems,
	RouteItemsNew,
	RouteRentals,
	RouteRentalsNew,
	RouteRentalsOverdue,
	RouteReservations,
	RouteReservationsNew,
	RouteAnalytics,
}

// IsKnownRoute reports whether path is a dashboard route
func IsKnownRoute(path string) bool {
	for _, r := range Routes {
		if r == path {
			return true
		}
	}
	return false
}
