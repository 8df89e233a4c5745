package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/r-huijts/LibreChat/api"
	"github.com/r-huijts/LibreChat/modelspec"
	"github.com/r-huijts/LibreChat/schema"
	"github.com/r-huijts/LibreChat/store"
)

func initConfig() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("consent")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log.level", "info")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("mongo.database", "librechat")
	viper.SetDefault("modelspec.file", "model_specs.yaml")

	if err := viper.ReadInConfig(); err != nil {
		log.WithError(err).Info("no config file; use environment variables only")
	}
}

func initLog() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func main() {
	initConfig()
	initLog()

	connURI := viper.GetString("mongo.conn")
	database := viper.GetString("mongo.database")

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("fail to build mongodb indexes")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("fail to connect mongodb")
	}

	mongoStore := store.NewMongoStore(client, database)
	defer mongoStore.Close()

	specs, err := modelspec.LoadFile(viper.GetString("modelspec.file"))
	if err != nil {
		log.WithError(err).Fatal("fail to load model specs")
	}
	log.WithField("count", len(specs.Specs())).Info("model specs loaded")

	server := api.NewServer(
		mongoStore,
		specs,
		[]byte(viper.GetString("server.jwt_secret")),
		viper.GetBool("server.trace"),
	)

	addr := fmt.Sprintf(":%d", viper.GetInt("server.port"))
	log.WithField("addr", addr).Info("consent api started")
	if err := server.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
