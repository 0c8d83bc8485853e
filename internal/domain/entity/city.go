package entity

// City always belongs to exactly one State. Lookups that address a city
// through a state must verify the city actually belongs to that state.
type City struct {
	ID      int64
	Name    string
	StateID int64
}
