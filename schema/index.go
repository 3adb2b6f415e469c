package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexHospitalCollection())
	panicIfError(m.IndexAssignmentCollection())
	panicIfError(m.IndexOccupancyCollection())
}

func (m *MongoDBIndexer) IndexHospitalCollection() error {
	if err := m.createIndex(HospitalCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(HospitalCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

// IndexAssignmentCollection makes patient_id unique so a patient can
// never hold more than one assignment
func (m *MongoDBIndexer) IndexAssignmentCollection() error {
	if err := m.createIndex(AssignmentCollection, mongo.IndexModel{
		Keys: bson.M{
			"patient_id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(AssignmentCollection, mongo.IndexModel{
		Keys: bson.M{
			"hospital_id": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexOccupancyCollection() error {
	return m.createIndex(OccupancyCollection, mongo.IndexModel{
		Keys: bson.M{
			"hospital_id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}
