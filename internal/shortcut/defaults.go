package shortcut

import (
	"fmt"
	"sort"

	"github.com/rentdesk/rentdesk/internal/domain"
)

// NavigateTo returns a handler that routes to path
func NavigateTo(path string) Handler {
	return func(b Bundle) error {
		return b.Navigate(path)
	}
}

// OpenSurface returns a handler that opens capability c
func OpenSurface(c Capability) Handler {
	return func(b Bundle) error {
		return b.Open(c, true)
	}
}

// DefaultEntries is the built-in chord table
func DefaultEntries() []Entry {
	return []Entry{
		// n: create
		{First: 'n', Second: 'c', Description: "create customer", Handler: NavigateTo(domain.RouteCustomersNew)},
		{First: 'n', Second: 'i', Description: "create item", Handler: NavigateTo(domain.RouteItemsNew)},
		{First: 'n', Second: 'r', Description: "create rental", Handler: NavigateTo(domain.RouteRentalsNew)},
		{First: 'n', Second: 's', Description: "create reservation", Handler: NavigateTo(domain.RouteReservationsNew)},
		{First: 'n', Second: 'e', Description: "quick rental entry", Handler: OpenSurface(SequentialEntry)},

		// g: go to
		{First: 'g', Second: 'd', Description: "open dashboard", Handler: NavigateTo(domain.RouteDashboard)},
		{First: 'g', Second: 'c', Description: "open customers", Handler: NavigateTo(domain.RouteCustomers)},
		{First: 'g', Second: 'i', Description: "open items", Handler: NavigateTo(domain.RouteItems)},
		{First: 'g', Second: 'r', Description: "open rentals", Handler: NavigateTo(domain.RouteRentals)},
		{First: 'g', Second: 'o', Description: "open overdue", Handler: NavigateTo(domain.RouteRentalsOverdue)},
		{First: 'g', Second: 's', Description: "open reservations", Handler: NavigateTo(domain.RouteReservations)},
		{First: 'g', Second: 'a', Description: "open analytics", Handler: NavigateTo(domain.RouteAnalytics)},

		// o: open surfaces
		{First: 'o', Second: 'm', Description: "open command menu", Handler: OpenSurface(CommandMenu)},
		{First: 'o', Second: 'f', Description: "open quick find", Handler: OpenSurface(QuickFind)},
		{First: 'o', Second: 'u', Description: "switch operator", Handler: OpenSurface(IdentityPicker)},
	}
}

// BuildRegistry combines the built-in table with user navigate chords
// given as sequence -> route ("g x" -> "/reservations"). Custom chords
// are added in sorted order so errors are reproducible.
func BuildRegistry(custom map[string]string) (*Registry, error) {
	entries := DefaultEntries()

	sequences := make([]string, 0, len(custom))
	for seq := range custom {
		sequences = append(sequences, seq)
	}
	sort.Strings(sequences)

	for _, seq := range sequences {
		path := custom[seq]
		first, second, err := ParseSequence(seq)
		if err != nil {
			return nil, err
		}
		if !domain.IsKnownRoute(path) {
			return nil, fmt.Errorf("chord %q: unknown route %q", seq, path)
		}
		entries = append(entries, Entry{
			Description: "go to " + path,
			First:       first,
			Handler:     NavigateTo(path),
			Second:      second,
		})
	}

	return NewRegistry(entries...)
}
