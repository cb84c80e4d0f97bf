// Package signaturestore persists handoff signatures in MongoDB, at most
// one per assignment and kind. The unique index on (assignment_id, kind)
// makes each submission write-once.
package signaturestore

import (
	"context"
	"errors"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "signatures"

// signatureDocument is the BSON shape of one signature.
type signatureDocument struct {
	ID           string    `bson:"_id"`
	AssignmentID string    `bson:"assignment_id"`
	Kind         string    `bson:"kind"`
	ImageBase64  string    `bson:"image_base64"`
	SignedAt     time.Time `bson:"signed_at"`
}

// MongoSignatureStore implements SignatureStore over a MongoDB collection.
type MongoSignatureStore struct {
	collection *mongo.Collection
}

// NewMongoSignatureStore creates a signature store on the given database.
func NewMongoSignatureStore(db *mongo.Database) *MongoSignatureStore {
	return &MongoSignatureStore{collection: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique index on (assignment_id, kind). Called
// once at startup.
func (s *MongoSignatureStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "assignment_id", Value: 1}, {Key: "kind", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Add inserts a signature document.
// Returns AlreadyExists if the assignment already has one of this kind.
func (s *MongoSignatureStore) Add(ctx context.Context, signature *shipment.Signature) error {
	doc := signatureDocument{
		ID:           signature.ID().String(),
		AssignmentID: signature.AssignmentID().String(),
		Kind:         signature.Kind().String(),
		ImageBase64:  signature.ImageBase64(),
		SignedAt:     signature.SignedAt(),
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewAlreadyExistsError("signature", signature.AssignmentID().String())
		}
		return err
	}
	return nil
}

// Get retrieves the signature of the given kind for an assignment.
func (s *MongoSignatureStore) Get(
	ctx context.Context,
	assignmentID kernel.UUID,
	kind shipment.SignatureKind,
) (*shipment.Signature, error) {
	if err := assignmentID.Validate(); err != nil {
		return nil, err
	}

	filter := bson.M{"assignment_id": assignmentID.String(), "kind": kind.String()}
	var doc signatureDocument
	if err := s.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("signature", assignmentID.String())
		}
		return nil, err
	}

	return toDomain(doc)
}

// Has reports whether the assignment has a signature of the given kind.
func (s *MongoSignatureStore) Has(
	ctx context.Context,
	assignmentID kernel.UUID,
	kind shipment.SignatureKind,
) (bool, error) {
	if err := assignmentID.Validate(); err != nil {
		return false, err
	}

	filter := bson.M{"assignment_id": assignmentID.String(), "kind": kind.String()}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func toDomain(doc signatureDocument) (*shipment.Signature, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}
	assignmentID, err := kernel.UUIDFromString(doc.AssignmentID)
	if err != nil {
		return nil, err
	}

	kind, err := shipment.SignatureKindFromString(doc.Kind)
	if err != nil {
		return nil, err
	}

	return shipment.NewSignature(id, assignmentID, kind, doc.ImageBase64, doc.SignedAt)
}
