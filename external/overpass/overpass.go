package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/bitmark-inc/emergency-api/schema"
)

const (
	defaultURL    = "https://overpass-api.de/api/interpreter"
	defaultRadius = 10000

	queryTemplate = `[out:json][timeout:25];
(
  node["amenity"="hospital"](around:%[1]d,%[2]f,%[3]f);
  way["amenity"="hospital"](around:%[1]d,%[2]f,%[3]f);
  relation["amenity"="hospital"](around:%[1]d,%[2]f,%[3]f);
);
out center body;`
)

var errResponseStatus = fmt.Errorf("response status not ok")

type center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *center           `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type jsonResponse struct {
	Elements []element `json:"elements"`
}

// Client looks up hospitals from OpenStreetMap through an overpass server
type Client struct {
	url    string
	client *http.Client
}

func New(url string, client *http.Client) *Client {
	u := defaultURL
	if url != "" {
		u = url
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		url:    u,
		client: client,
	}
}

// FindFacilities returns named hospitals within the radius. A hospital
// tagged with emergency=yes is emergency capable.
func (c *Client) FindFacilities(ctx context.Context, origin schema.Location, radiusMeters int) ([]schema.Hospital, error) {
	if radiusMeters <= 0 {
		radiusMeters = defaultRadius
	}

	query := fmt.Sprintf(queryTemplate, radiusMeters, origin.Latitude, origin.Longitude)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(query))
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errResponseStatus
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	var r jsonResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return nil, err
	}

	hospitals := make([]schema.Hospital, 0, len(r.Elements))
	for _, e := range r.Elements {
		name := e.Tags["name"]
		if name == "" {
			continue
		}

		lat, lon := e.Lat, e.Lon
		if e.Center != nil {
			lat, lon = e.Center.Lat, e.Center.Lon
		}
		if lat == 0 && lon == 0 {
			continue
		}

		hospitals = append(hospitals, schema.Hospital{
			ID:   fmt.Sprintf("osm-%s-%d", e.Type, e.ID),
			Name: name,
			Location: schema.Location{
				Latitude:  lat,
				Longitude: lon,
			},
			IsEmergencyCapable: e.Tags["emergency"] == "yes",
			Address:            e.Tags["addr:street"],
			Phone:              e.Tags["phone"],
		})
	}

	return hospitals, nil
}
