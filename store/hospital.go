package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/emergency-api/schema"
)

const defaultHospitalLimit = 20

type HospitalDirectory interface {
	UpsertHospitals(hospitals []schema.Hospital) error
	NearestHospitals(origin schema.Location, radiusMeters int, limit int64) ([]schema.Hospital, error)
	FindFacilities(ctx context.Context, origin schema.Location, radiusMeters int) ([]schema.Hospital, error)
}

// UpsertHospitals caches hospitals found by a facility provider
func (m *mongoDB) UpsertHospitals(hospitals []schema.Hospital) error {
	if len(hospitals) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	models := make([]mongo.WriteModel, 0, len(hospitals))
	for _, h := range hospitals {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"id": h.ID}).
			SetReplacement(schema.HospitalRecord{
				Hospital: h,
				Point:    h.Location.GeoJSON(),
			}).
			SetUpsert(true))
	}

	c := m.client.Database(m.database).Collection(schema.HospitalCollection)
	if _, err := c.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("upsert hospitals")
		return err
	}

	return nil
}

// NearestHospitals returns cached hospitals from nearest to farthest
func (m *mongoDB) NearestHospitals(origin schema.Location, radiusMeters int, limit int64) ([]schema.Hospital, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.nearestHospitals(ctx, origin, radiusMeters, limit)
}

// FindFacilities serves cached hospitals as a facility finder
func (m *mongoDB) FindFacilities(ctx context.Context, origin schema.Location, radiusMeters int) ([]schema.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.nearestHospitals(ctx, origin, radiusMeters, defaultHospitalLimit)
}

func (m *mongoDB) nearestHospitals(ctx context.Context, origin schema.Location, radiusMeters int, limit int64) ([]schema.Hospital, error) {
	if limit <= 0 {
		limit = defaultHospitalLimit
	}

	c := m.client.Database(m.database).Collection(schema.HospitalCollection)
	cur, err := c.Find(ctx, distanceQuery(radiusMeters, origin), options.Find().SetLimit(limit))
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("query nearest hospitals")
		return nil, err
	}
	defer cur.Close(ctx)

	hospitals := make([]schema.Hospital, 0)
	for cur.Next(ctx) {
		var r schema.HospitalRecord
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}

		h := r.Hospital
		if r.Point != nil {
			h.Location = r.Point.Location()
		}
		hospitals = append(hospitals, h)
	}

	return hospitals, cur.Err()
}

// $nearSphere provides documents from nearest to farthest
// reference: https://docs.mongodb.com/manual/reference/operator/query/nearSphere/#op._S_nearSphere
func distanceQuery(distance int, cords schema.Location) bson.D {
	near := bson.D{{
		Key: "$geometry",
		Value: bson.D{
			{Key: "type", Value: "Point"},
			{Key: "coordinates", Value: bson.A{cords.Longitude, cords.Latitude}},
		},
	}}
	if distance > 0 {
		near = append(near, bson.E{Key: "$maxDistance", Value: distance})
	}

	return bson.D{{
		Key:   "location",
		Value: bson.D{{Key: "$nearSphere", Value: near}},
	}}
}
