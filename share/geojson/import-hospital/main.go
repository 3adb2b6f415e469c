package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/emergency-api/share/geojson"
	"github.com/bitmark-inc/emergency-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("emergency")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var fileName string
	flag.StringVar(&fileName, "f", "hospitals.geojson", "path of the hospital geojson file")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}
	defer client.Disconnect(ctx)

	file, err := os.Open(fileName)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	count, err := geojson.ImportHospitals(store.NewMongoStore(client, viper.GetString("mongo.database")), file)
	if err != nil {
		panic(err)
	}

	fmt.Printf("imported %d hospitals\n", count)
}
