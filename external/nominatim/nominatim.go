package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bitmark-inc/emergency-api/geo"
	"github.com/bitmark-inc/emergency-api/schema"
)

const (
	defaultURL = "https://nominatim.openstreetmap.org"
	userAgent  = "emergency-api"
)

var errResponseStatus = fmt.Errorf("response status not ok")

// place is a search result. Coordinates are sent as strings.
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Client geocodes addresses with an OpenStreetMap nominatim server
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

// Geocode returns the location of the best match for the address
func (c *Client) Geocode(ctx context.Context, address string) (schema.Location, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("q", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/search?"+q.Encode(), nil)
	if err != nil {
		return schema.Location{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if nil != err {
		return schema.Location{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return schema.Location{}, errResponseStatus
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return schema.Location{}, err
	}

	var places []place
	if err := json.Unmarshal(d, &places); nil != err {
		return schema.Location{}, err
	}

	if len(places) == 0 {
		return schema.Location{}, geo.ErrNoGeoInfoFound
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return schema.Location{}, err
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return schema.Location{}, err
	}

	return schema.Location{
		Latitude:  lat,
		Longitude: lon,
	}, nil
}
