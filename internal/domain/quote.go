package domain

// Quote is a server-computed price breakdown for a package/date/room-config
// triple. Ephemeral: recomputed on demand, never trusted from the client.
type Quote struct {
	PricePerPerson    int64
	TotalAdults       int
	Subtotal          int64 // PricePerPerson × TotalAdults; children are not priced
	TCS               int64 // 5% tax surcharge on the subtotal
	Total             int64 // Subtotal + TCS
	TravellerEntities []TravellerEntity
}
