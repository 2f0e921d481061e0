package models

// Station is a rail stop as returned by the stations endpoint.
// LocationX is the longitude and LocationY the latitude.
type Station struct {
	ID           string `json:"id"`
	URI          string `json:"@id,omitempty"`
	Name         string `json:"name"`
	StandardName string `json:"standardname,omitempty"`
	LocationX    Number `json:"locationX"`
	LocationY    Number `json:"locationY"`
}

// Longitude returns LocationX as a float.
func (s Station) Longitude() float64 {
	return s.LocationX.Float64()
}

// Latitude returns LocationY as a float.
func (s Station) Latitude() float64 {
	return s.LocationY.Float64()
}

// StationNames returns the names of the given stations in order.
func StationNames(stations []Station) []string {
	names := make([]string, 0, len(stations))
	for _, s := range stations {
		names = append(names, s.Name)
	}
	return names
}
