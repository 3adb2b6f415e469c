package schema

const (
	HospitalCollection = "hospital"
)

// Hospital is a facility returned by a facility lookup
type Hospital struct {
	ID                 string   `json:"id" bson:"id"`
	Name               string   `json:"name" bson:"name"`
	Location           Location `json:"location" bson:"-"`
	IsEmergencyCapable bool     `json:"is_emergency_capable" bson:"is_emergency_capable"`
	Address            string   `json:"address,omitempty" bson:"address,omitempty"`
	Phone              string   `json:"phone,omitempty" bson:"phone,omitempty"`
}

// HospitalRecord is the mongo document of a hospital
type HospitalRecord struct {
	Hospital `bson:",inline"`
	Point    *GeoJSON `bson:"location"`
}

// RankedHospital is a hospital with the distance and eta from a given origin
type RankedHospital struct {
	Hospital
	DistanceKm float64 `json:"distance_km"`
	ETAMinutes int     `json:"eta_minutes"`
	Estimated  bool    `json:"estimated"`
}

// Route is the answer of a driving route query
type Route struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
}
