package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/bitmark-inc/emergency-api/geo"
	"github.com/bitmark-inc/emergency-api/schema"
)

const (
	defaultURL = "https://router.project-osrm.org"
	codeOK     = "Ok"
)

var errResponseCode = fmt.Errorf("response code not ok")

type route struct {
	Distance float64 `json:"distance"` // meters
	Duration float64 `json:"duration"` // seconds
}

type jsonResponse struct {
	Code   string  `json:"code"`
	Routes []route `json:"routes"`
}

// Client queries driving routes from an OSRM server
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

// Route returns the driving distance and duration between two locations
func (c *Client) Route(ctx context.Context, from, to schema.Location) (schema.Route, error) {
	// https://router.project-osrm.org/route/v1/driving/-6.26,53.34;-6.25,53.35?overview=false
	query := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.url, from.Longitude, from.Latitude, to.Longitude, to.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if err != nil {
		return schema.Route{}, err
	}

	resp, err := c.client.Do(req)
	if nil != err {
		return schema.Route{}, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return schema.Route{}, err
	}

	var r jsonResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return schema.Route{}, err
	}

	if r.Code != codeOK {
		return schema.Route{}, errResponseCode
	}

	if len(r.Routes) == 0 {
		return schema.Route{}, geo.ErrInvalidRoute
	}

	return schema.Route{
		DistanceKm:      r.Routes[0].Distance / 1000,
		DurationMinutes: r.Routes[0].Duration / 60,
	}, nil
}
