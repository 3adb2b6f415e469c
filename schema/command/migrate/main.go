package main

import (
	"context"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/emergency-api/schema"
	"github.com/bitmark-inc/emergency-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("emergency")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&schema.Patient{},
		&schema.DialerRecord{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Patient{}).
		AddIndex("patients_created_at", "created_at").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.DialerRecord{}).
		AddIndex("dialer_records_status", "status").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	mongoClient, err := mongo.NewClient(options.Client().ApplyURI(viper.GetString("mongo.conn")))
	if err != nil {
		panic(err)
	}
	if err := mongoClient.Connect(context.Background()); err != nil {
		panic(err)
	}
	defer mongoClient.Disconnect(context.Background())

	if err := store.NewMongoStore(mongoClient, viper.GetString("mongo.database")).RebuildOccupancy(); err != nil {
		panic(err)
	}
}
