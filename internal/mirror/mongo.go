package mirror

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// mongoMirror reflects mutations into MongoDB collections, keyed by the
// entity's own id rather than ObjectIDs so local and remote ids match.
type mongoMirror struct {
	db *mongo.Database
}

// ConnectMongo establishes a client connection and verifies it with a ping.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectMongo gracefully disconnects the MongoDB client.
func DisconnectMongo(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// NewMongoMirror returns a Mirror writing into the given database.
func NewMongoMirror(db *mongo.Database) Mirror {
	return &mongoMirror{db: db}
}

func (m *mongoMirror) Upsert(ctx context.Context, collection, id string, doc any) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, withID(id, doc), opts)
	return err
}

func (m *mongoMirror) Delete(ctx context.Context, collection, id string) error {
	_, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// withID wraps the document so _id is the entity id. Marshalling the
// entity through bson keeps its json field names out of the remote copy.
func withID(id string, doc any) bson.M {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return bson.M{"_id": id}
	}
	var body bson.M
	if err := bson.Unmarshal(raw, &body); err != nil {
		return bson.M{"_id": id}
	}
	body["_id"] = id
	return body
}
