// Package mongodb implements the document-store port on top of MongoDB,
// mapping hierarchical collection paths ("leagues/{id}/teams") onto flat
// Mongo collections with a parent-path discriminator field.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"league-backend/internal/leagues/domain/repository"
	apperrors "league-backend/internal/shared/errors"
	"league-backend/internal/shared/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DocumentStore is the MongoDB-backed implementation of repository.Store.
type DocumentStore struct {
	db  *mongo.Database
	log logger.Logger
}

// NewDocumentStore creates a store bound to the given database.
func NewDocumentStore(db *mongo.Database, log logger.Logger) *DocumentStore {
	return &DocumentStore{
		db:  db,
		log: log.WithComponent("mongodb-store"),
	}
}

// storedDocument is the persisted envelope for a single document.
// ParentPath scopes subcollection documents to their owning parent:
// "leagues/abc/teams" stores into collection "teams" with
// parentPath "leagues/abc".
type storedDocument struct {
	ID         string                 `bson:"_id"`
	ParentPath string                 `bson:"parentPath"`
	Fields     map[string]interface{} `bson:"fields"`
}

// resolvePath splits a collection path into the Mongo collection name
// and the parent document path. A collection address has an odd number
// of segments (collection, doc, collection, ...).
func resolvePath(path string) (collection, parentPath string, err error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for _, s := range segments {
		if s == "" {
			return "", "", apperrors.ErrInvalidStorePath
		}
	}
	if len(segments)%2 == 0 {
		return "", "", apperrors.ErrInvalidStorePath
	}
	collection = segments[len(segments)-1]
	parentPath = strings.Join(segments[:len(segments)-1], "/")
	return collection, parentPath, nil
}

func (s *DocumentStore) collectionFor(path string) (*mongo.Collection, string, error) {
	name, parentPath, err := resolvePath(path)
	if err != nil {
		return nil, "", apperrors.NewStoreError(fmt.Sprintf("invalid collection path %q", path)).WithCause(err)
	}
	return s.db.Collection(name), parentPath, nil
}

// Add persists a new document under the given collection path and
// returns its generated ID. No parent existence check is performed;
// writing under a non-existent parent silently succeeds.
func (s *DocumentStore) Add(ctx context.Context, path string, data map[string]interface{}) (string, error) {
	coll, parentPath, err := s.collectionFor(path)
	if err != nil {
		return "", err
	}

	doc := storedDocument{
		ID:         uuid.NewString(),
		ParentPath: parentPath,
		Fields:     replaceServerTimestamps(data, time.Now().UTC()),
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return "", apperrors.NewStoreError(fmt.Sprintf("failed to add document to %s", path)).WithCause(err)
	}

	s.log.WithContext(ctx).Debugf("Added document %s to %s", doc.ID, path)
	return doc.ID, nil
}

// GetAll returns every document under the collection path in natural
// (store-native) order.
func (s *DocumentStore) GetAll(ctx context.Context, path string) ([]repository.Snapshot, error) {
	coll, parentPath, err := s.collectionFor(path)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{"parentPath": parentPath})
	if err != nil {
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to list documents in %s", path)).WithCause(err)
	}
	defer cursor.Close(ctx)

	var snapshots []repository.Snapshot
	for cursor.Next(ctx) {
		var doc storedDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, apperrors.NewStoreError(fmt.Sprintf("failed to decode document in %s", path)).WithCause(err)
		}
		snapshots = append(snapshots, repository.Snapshot{
			ID:     doc.ID,
			Exists: true,
			Data:   normalizeFields(doc.Fields),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, apperrors.NewStoreError(fmt.Sprintf("cursor failed while listing %s", path)).WithCause(err)
	}
	return snapshots, nil
}

// GetByID reads a single document. A missing document is reported via
// the Exists flag, not an error.
func (s *DocumentStore) GetByID(ctx context.Context, path, id string) (repository.Snapshot, error) {
	coll, parentPath, err := s.collectionFor(path)
	if err != nil {
		return repository.Snapshot{}, err
	}

	var doc storedDocument
	err = coll.FindOne(ctx, bson.M{"_id": id, "parentPath": parentPath}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.Snapshot{ID: id, Exists: false}, nil
	}
	if err != nil {
		return repository.Snapshot{}, apperrors.NewStoreError(fmt.Sprintf("failed to read document %s/%s", path, id)).WithCause(err)
	}
	return repository.Snapshot{
		ID:     doc.ID,
		Exists: true,
		Data:   normalizeFields(doc.Fields),
	}, nil
}

// UpdateByID applies a partial patch to an existing document. Fields not
// named in the patch are left untouched.
func (s *DocumentStore) UpdateByID(ctx context.Context, path, id string, patch map[string]interface{}) error {
	coll, parentPath, err := s.collectionFor(path)
	if err != nil {
		return err
	}

	set := bson.M{}
	for key, value := range replaceServerTimestamps(patch, time.Now().UTC()) {
		set["fields."+key] = value
	}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id, "parentPath": parentPath}, bson.M{"$set": set})
	if err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to update document %s/%s", path, id)).WithCause(err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("document %s/%s", path, id))
	}
	return nil
}

// DeleteByID removes a single document. Only the addressed document is
// touched; documents in nested subcollections are left in place.
func (s *DocumentStore) DeleteByID(ctx context.Context, path, id string) error {
	coll, parentPath, err := s.collectionFor(path)
	if err != nil {
		return err
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": id, "parentPath": parentPath}); err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to delete document %s/%s", path, id)).WithCause(err)
	}
	return nil
}

// replaceServerTimestamps swaps ServerTimestamp sentinels for the
// write-time instant, leaving all other values as supplied.
func replaceServerTimestamps(data map[string]interface{}, now time.Time) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for key, value := range data {
		if repository.IsServerTimestamp(value) {
			out[key] = now
		} else {
			out[key] = value
		}
	}
	return out
}

// normalizeFields converts BSON decode artifacts back to plain Go values
// so snapshot consumers never see driver types.
func normalizeFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.DateTime:
		return v.Time().UTC()
	case primitive.A:
		items := make([]interface{}, len(v))
		for i, item := range v {
			items[i] = normalizeValue(item)
		}
		return items
	case primitive.D:
		nested := make(map[string]interface{}, len(v))
		for _, elem := range v {
			nested[elem.Key] = normalizeValue(elem.Value)
		}
		return nested
	case primitive.M:
		nested := make(map[string]interface{}, len(v))
		for key, item := range v {
			nested[key] = normalizeValue(item)
		}
		return nested
	case map[string]interface{}:
		nested := make(map[string]interface{}, len(v))
		for key, item := range v {
			nested[key] = normalizeValue(item)
		}
		return nested
	case int32:
		return int(v)
	case int64:
		return int(v)
	case time.Time:
		return v.UTC()
	default:
		return v
	}
}
