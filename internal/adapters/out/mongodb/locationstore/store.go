// Package locationstore persists shipment location documents in MongoDB.
// The document id is returned as a hex string and stored on the shipment row
// as its opaque location reference.
package locationstore

import (
	"context"
	"errors"

	"orgtrack/internal/core/domain/model/geo"
	"orgtrack/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "locations"

// locationDocument is the BSON shape of one location document.
type locationDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	OriginName      string             `bson:"origin_name"`
	Origin          pointDocument      `bson:"origin"`
	DestinationName string             `bson:"destination_name"`
	Destination     pointDocument      `bson:"destination"`
	Route           routeDocument      `bson:"route"`
}

type pointDocument struct {
	Longitude float64 `bson:"longitude"`
	Latitude  float64 `bson:"latitude"`
}

type routeDocument struct {
	Geometry        [][]float64 `bson:"geometry"`
	DistanceMeters  float64     `bson:"distance_meters"`
	DurationSeconds float64     `bson:"duration_seconds"`
}

// MongoLocationStore implements LocationStore over a MongoDB collection.
type MongoLocationStore struct {
	collection *mongo.Collection
}

// NewMongoLocationStore creates a location store on the given database.
func NewMongoLocationStore(db *mongo.Database) *MongoLocationStore {
	return &MongoLocationStore{collection: db.Collection(collectionName)}
}

// Add inserts a location document and returns its hex id.
func (s *MongoLocationStore) Add(ctx context.Context, location geo.Location) (string, error) {
	doc := fromDomain(location)

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

// Get retrieves a location document by its hex id.
func (s *MongoLocationStore) Get(ctx context.Context, id string) (geo.Location, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return geo.Location{}, errs.NewValueIsInvalidErrorWithCause("location id is invalid", err)
	}

	var doc locationDocument
	if err := s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return geo.Location{}, errs.NewObjectNotFoundError("location", id)
		}
		return geo.Location{}, err
	}

	return toDomain(doc)
}

// Delete removes a location document. Deleting an id that is already gone is
// not an error: compensation must be idempotent.
func (s *MongoLocationStore) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("location id is invalid", err)
	}

	_, err = s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func fromDomain(location geo.Location) locationDocument {
	return locationDocument{
		OriginName: location.OriginName,
		Origin: pointDocument{
			Longitude: location.Origin.Longitude(),
			Latitude:  location.Origin.Latitude(),
		},
		DestinationName: location.DestinationName,
		Destination: pointDocument{
			Longitude: location.Destination.Longitude(),
			Latitude:  location.Destination.Latitude(),
		},
		Route: routeDocument{
			Geometry:        location.Route.Geometry,
			DistanceMeters:  location.Route.DistanceMeters,
			DurationSeconds: location.Route.DurationSeconds,
		},
	}
}

func toDomain(doc locationDocument) (geo.Location, error) {
	origin, err := geo.NewPoint(doc.Origin.Longitude, doc.Origin.Latitude)
	if err != nil {
		return geo.Location{}, err
	}
	destination, err := geo.NewPoint(doc.Destination.Longitude, doc.Destination.Latitude)
	if err != nil {
		return geo.Location{}, err
	}

	route := geo.Route{
		Geometry:        doc.Route.Geometry,
		DistanceMeters:  doc.Route.DistanceMeters,
		DurationSeconds: doc.Route.DurationSeconds,
	}
	return geo.NewLocation(doc.OriginName, origin, doc.DestinationName, destination, route), nil
}
