package schema

// Location is a WGS84 coordinate in degrees
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// GeoJSON converts a location into a mongo point. Mongo stores [lng, lat].
func (l Location) GeoJSON() *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{l.Longitude, l.Latitude},
	}
}

// Location converts a mongo point back into a location. It returns
// a zero location if the point is malformed.
func (g *GeoJSON) Location() Location {
	if g == nil || len(g.Coordinates) < 2 {
		return Location{}
	}

	return Location{
		Latitude:  g.Coordinates[1],
		Longitude: g.Coordinates[0],
	}
}
