package geojson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/emergency-api/schema"
)

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type GeoFeature struct {
	Type       string                 `json:"type"`
	ID         interface{}            `json:"id"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

type GeoJSON struct {
	Name     string       `json:"name"`
	Features []GeoFeature `json:"features"`
}

// HospitalDirectory stores the imported hospitals
type HospitalDirectory interface {
	UpsertHospitals(hospitals []schema.Hospital) error
}

// ImportHospitals reads a feature collection of hospital points, for example
// an overpass turbo export, and upserts them into the hospital directory.
// Features which are not named points are skipped.
func ImportHospitals(directory HospitalDirectory, r io.Reader) (int, error) {
	var result GeoJSON
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return 0, err
	}

	hospitals := make([]schema.Hospital, 0, len(result.Features))
	for _, f := range result.Features {
		h, ok := f.hospital()
		if !ok {
			continue
		}
		hospitals = append(hospitals, h)
	}

	if len(hospitals) == 0 {
		return 0, nil
	}

	if err := directory.UpsertHospitals(hospitals); err != nil {
		return 0, err
	}

	return len(hospitals), nil
}

func (f GeoFeature) hospital() (schema.Hospital, bool) {
	if f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) < 2 {
		return schema.Hospital{}, false
	}

	name := f.property("name")
	if name == "" {
		return schema.Hospital{}, false
	}

	id := f.property("@id")
	if id == "" && f.ID != nil {
		id = fmt.Sprint(f.ID)
	}
	if id == "" {
		id = name
	}

	return schema.Hospital{
		ID:   strings.Replace(id, "/", "-", -1),
		Name: name,
		Location: schema.Location{
			Latitude:  f.Geometry.Coordinates[1],
			Longitude: f.Geometry.Coordinates[0],
		},
		IsEmergencyCapable: f.property("emergency") == "yes",
		Address:            f.property("addr:street"),
		Phone:              f.property("phone"),
	}, true
}

func (f GeoFeature) property(key string) string {
	if v, ok := f.Properties[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
