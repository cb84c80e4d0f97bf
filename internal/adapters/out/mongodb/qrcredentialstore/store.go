// Package qrcredentialstore persists single-use QR credentials in MongoDB.
// The consumed flag flips false -> true through one conditional
// FindOneAndUpdate, so two concurrent scans of the same token cannot both
// succeed.
package qrcredentialstore

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

const collectionName = "qr_credentials"

// credentialDocument is the BSON shape of one QR credential.
type credentialDocument struct {
	ID           string    `bson:"_id"`
	AssignmentID string    `bson:"assignment_id"`
	Token        string    `bson:"token"`
	ImageBase64  string    `bson:"image_base64"`
	Consumed     bool      `bson:"consumed"`
	IssuedAt     time.Time `bson:"issued_at"`
	ExpiresAt    time.Time `bson:"expires_at"`
}

// MongoQRCredentialStore implements QRCredentialStore over a MongoDB collection.
type MongoQRCredentialStore struct {
	collection *mongo.Collection
}

// NewMongoQRCredentialStore creates a credential store on the given database.
func NewMongoQRCredentialStore(db *mongo.Database) *MongoQRCredentialStore {
	return &MongoQRCredentialStore{collection: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique indexes on assignment_id and token.
// Called once at startup.
func (s *MongoQRCredentialStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "assignment_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// Add inserts a credential document.
// Returns AlreadyExists if the assignment already has one.
func (s *MongoQRCredentialStore) Add(ctx context.Context, credential *shipment.QRCredential) error {
	doc := fromDomain(credential)

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewAlreadyExistsError("qr credential", credential.AssignmentID().String())
		}
		return err
	}
	return nil
}

// Get retrieves the credential for an assignment.
func (s *MongoQRCredentialStore) Get(ctx context.Context, assignmentID kernel.UUID) (*shipment.QRCredential, error) {
	if err := assignmentID.Validate(); err != nil {
		return nil, err
	}

	var doc credentialDocument
	if err := s.collection.FindOne(ctx, bson.M{"assignment_id": assignmentID.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("qr credential", assignmentID.String())
		}
		return nil, err
	}

	return toDomain(doc)
}

// Consume atomically flips the consumed flag false -> true for an unexpired
// credential with the given token on the given assignment, returning the
// consumed credential.
//
// The filter carries all four conditions (assignment, token, unconsumed,
// unexpired), so a token scanned against the wrong assignment never flips
// the flag. A losing racer, a spent token and a mismatched assignment are
// distinguished from an unknown token by a second lookup.
func (s *MongoQRCredentialStore) Consume(
	ctx context.Context,
	assignmentID kernel.UUID,
	token string,
	now time.Time,
) (*shipment.QRCredential, error) {
	if err := assignmentID.Validate(); err != nil {
		return nil, err
	}

	filter := bson.M{
		"assignment_id": assignmentID.String(),
		"token":         token,
		"consumed":      false,
		"expires_at":    bson.M{"$gt": now},
	}
	update := bson.M{"$set": bson.M{"consumed": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc credentialDocument
	err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return toDomain(doc)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// The conditional update matched nothing: work out why.
	var existing credentialDocument
	lookupErr := s.collection.FindOne(ctx, bson.M{"token": token}).Decode(&existing)
	if lookupErr != nil {
		if errors.Is(lookupErr, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("qr credential", token)
		}
		return nil, lookupErr
	}
	if existing.AssignmentID != assignmentID.String() {
		return nil, errs.NewValueIsInvalidError("token")
	}
	if existing.Consumed {
		return nil, shipment.ErrQRCredentialConsumed
	}
	return nil, shipment.ErrQRCredentialExpired
}

// ExpireStale deletes unconsumed credentials whose expiry is before the
// given time, returning how many were removed.
func (s *MongoQRCredentialStore) ExpireStale(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{
		"consumed":   false,
		"expires_at": bson.M{"$lt": before},
	})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func fromDomain(credential *shipment.QRCredential) credentialDocument {
	return credentialDocument{
		ID:           credential.ID().String(),
		AssignmentID: credential.AssignmentID().String(),
		Token:        credential.Token(),
		ImageBase64:  credential.ImageBase64(),
		Consumed:     credential.IsConsumed(),
		IssuedAt:     credential.IssuedAt(),
		ExpiresAt:    credential.ExpiresAt(),
	}
}

func toDomain(doc credentialDocument) (*shipment.QRCredential, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}
	assignmentID, err := kernel.UUIDFromString(doc.AssignmentID)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreQRCredential(
		id, assignmentID, doc.Token, doc.ImageBase64,
		doc.Consumed, doc.IssuedAt, doc.ExpiresAt,
	)
}
