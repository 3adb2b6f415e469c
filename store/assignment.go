package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/emergency-api/schema"
)

const duplicateKeyCode = 11000

var (
	ErrHospitalFull       = fmt.Errorf("hospital is at capacity")
	ErrPatientAssigned    = fmt.Errorf("patient already holds an assignment")
	ErrAssignmentNotFound = fmt.Errorf("assignment not found")
)

type AssignmentBook interface {
	ListAssignments() (schema.Assignments, error)
	GetAssignment(patientID string) (*schema.Assignment, error)
	ClaimAssignment(patientID, hospitalID string, capacity int) error
	RebuildOccupancy() error
}

// ListAssignments returns every patient to hospital binding
func (m *mongoDB) ListAssignments() (schema.Assignments, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AssignmentCollection)
	cur, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	assignments := make(schema.Assignments)
	for cur.Next(ctx) {
		var a schema.Assignment
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		assignments[a.PatientID] = a.HospitalID
	}

	return assignments, cur.Err()
}

// GetAssignment returns the binding of a patient
func (m *mongoDB) GetAssignment(patientID string) (*schema.Assignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var a schema.Assignment
	c := m.client.Database(m.database).Collection(schema.AssignmentCollection)
	if err := c.FindOne(ctx, bson.M{"patient_id": patientID}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	return &a, nil
}

// ClaimAssignment binds a patient to a hospital. A slot of the hospital is
// taken with a conditional increment first, so concurrent claims never
// push a hospital over its capacity. ErrHospitalFull is returned when no
// slot is left and ErrPatientAssigned when the patient is already bound.
func (m *mongoDB) ClaimAssignment(patientID, hospitalID string, capacity int) error {
	if capacity <= 0 {
		capacity = schema.DefaultHospitalCapacity
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	occupancy := db.Collection(schema.OccupancyCollection)

	if err := takeSlot(ctx, occupancy, hospitalID, capacity); err != nil {
		return err
	}

	_, err := db.Collection(schema.AssignmentCollection).InsertOne(ctx, schema.Assignment{
		PatientID:  patientID,
		HospitalID: hospitalID,
		AssignedAt: time.Now().UTC(),
	})
	if err == nil {
		return nil
	}

	if _, releaseErr := occupancy.UpdateOne(ctx,
		bson.M{"hospital_id": hospitalID},
		bson.M{"$inc": bson.M{"count": -1}},
	); releaseErr != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"hospital": hospitalID,
			"error":    releaseErr,
		}).Error("release hospital slot")
	}

	if isDuplicateKey(err) {
		return ErrPatientAssigned
	}
	return err
}

// takeSlot increments the occupancy of a hospital only while it is below
// the capacity. The upsert of a full hospital collides with the unique
// hospital_id index. The first upsert of a hospital may also collide with
// a concurrent one, so a collision is retried once before the hospital is
// reported full.
func takeSlot(ctx context.Context, occupancy *mongo.Collection, hospitalID string, capacity int) error {
	for attempt := 0; attempt < 2; attempt++ {
		_, err := occupancy.UpdateOne(ctx,
			bson.M{
				"hospital_id": hospitalID,
				"count":       bson.M{"$lt": capacity},
			},
			bson.M{"$inc": bson.M{"count": 1}},
			options.Update().SetUpsert(true),
		)
		if err == nil {
			return nil
		}
		if !isDuplicateKey(err) {
			return err
		}
	}

	return ErrHospitalFull
}

// RebuildOccupancy recounts the hospital occupancy from the assignments
func (m *mongoDB) RebuildOccupancy() error {
	assignments, err := m.ListAssignments()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	occupancy := m.client.Database(m.database).Collection(schema.OccupancyCollection)
	if _, err := occupancy.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	counts := assignments.Occupancy()
	if len(counts) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(counts))
	for hospitalID, count := range counts {
		docs = append(docs, schema.HospitalOccupancy{
			HospitalID: hospitalID,
			Count:      count,
		})
	}

	_, err = occupancy.InsertMany(ctx, docs)
	return err
}

func isDuplicateKey(err error) bool {
	switch e := err.(type) {
	case mongo.WriteException:
		for _, we := range e.WriteErrors {
			if we.Code == duplicateKeyCode {
				return true
			}
		}
	case mongo.BulkWriteException:
		for _, we := range e.WriteErrors {
			if we.Code == duplicateKeyCode {
				return true
			}
		}
	}
	return false
}
