package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/cache"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/errors"
)

// MongoConfig configures the MongoDB report archive.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string

	// Database is the database name. Defaults to "masonry".
	Database string

	// Collection is the collection name. Defaults to "reports".
	Collection string
}

// MongoArchiver stores build reports in MongoDB. Archiving is best
// effort: an archive failure never blocks or aborts the build itself.
type MongoArchiver struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoArchiver connects to MongoDB and verifies the connection.
func NewMongoArchiver(ctx context.Context, cfg MongoConfig) (*MongoArchiver, error) {
	if cfg.Database == "" {
		cfg.Database = "masonry"
	}
	if cfg.Collection == "" {
		cfg.Collection = "reports"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to ping MongoDB")
	}

	return &MongoArchiver{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Archive inserts a report. Transient failures are retried with backoff.
func (a *MongoArchiver) Archive(ctx context.Context, r Report) (string, error) {
	// String ids keep documents round-trippable through the Report struct.
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	err := cache.RetryWithBackoff(ctx, func() error {
		_, err := a.collection.InsertOne(ctx, r)
		if err != nil && (mongo.IsTimeout(err) || mongo.IsNetworkError(err)) {
			return cache.Retryable(err)
		}
		return err
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "failed to archive report")
	}
	return r.ID, nil
}

// Recent returns the most recent reports, newest first.
func (a *MongoArchiver) Recent(ctx context.Context, limit int64) ([]Report, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "generated_at", Value: -1}}).
		SetLimit(limit)

	cur, err := a.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to query reports")
	}
	defer cur.Close(ctx)

	var reports []Report
	if err := cur.All(ctx, &reports); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to decode reports")
	}
	return reports, nil
}

// Close disconnects from MongoDB.
func (a *MongoArchiver) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}
