package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoOpts struct {
	URI            string
	Database       string // empty: taken from the URI path
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

// NewMongo connects and pings. The caller owns Disconnect on the client.
func NewMongo(ctx context.Context, o MongoOpts) (*mongo.Client, *mongo.Database, error) {
	name := o.Database
	if name == "" {
		name = DatabaseFromURI(o.URI)
	}
	if name == "" {
		return nil, nil, fmt.Errorf("mongo: no database name in %q", MaskDSN(o.URI))
	}

	co := options.Client().ApplyURI(o.URI)
	if o.MaxPoolSize > 0 {
		co.SetMaxPoolSize(o.MaxPoolSize)
	}
	if o.ConnectTimeout > 0 {
		co.SetConnectTimeout(o.ConnectTimeout)
		co.SetServerSelectionTimeout(o.ConnectTimeout)
	}
	client, err := mongo.Connect(co)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(name), nil
}

func DatabaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return strings.Trim(u.Path, "/")
}
