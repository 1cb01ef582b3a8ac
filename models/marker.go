package models

// Marker is a map pin tied to a college. Markers live only in process
// memory and disappear on restart.
type Marker struct {
	ID        string    `json:"id"`
	CollegeID string    `json:"collegeId"`
	Label     string    `json:"label"`
	Location  []float64 `json:"location"` // [longitude, latitude]
}
