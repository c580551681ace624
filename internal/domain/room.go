package domain

// TravellerType classifies a traveller slot implied by a room configuration
type TravellerType string

const (
	TravellerAdult TravellerType = "Adult"
	TravellerChild TravellerType = "Child"
)

// TravellerEntity is a placeholder for one person-slot implied by a room.
// The sequence order follows room expansion: room 1's adults, then its
// children, then room 2's adults, and so on.
type TravellerEntity struct {
	Type TravellerType
}

// RoomEntry describes the occupancy of one physical room
type RoomEntry struct {
	Adults   int
	Children int
}

// RoomConfig is the structured result of parsing a room-configuration string
type RoomConfig struct {
	Rooms             []RoomEntry
	TotalAdults       int
	TravellerEntities []TravellerEntity
}

// TotalChildren returns the number of child slots across all rooms
func (c *RoomConfig) TotalChildren() int {
	total := 0
	for _, r := range c.Rooms {
		total += r.Children
	}
	return total
}
