//go:generate go run go.uber.org/mock/mockgen -source=documents.go -destination=../mocks/mock_document_store.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"califica-tu-profe/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is one schemaless record inside a collection.
type Document map[string]any

// IDocumentStore is the collection-oriented storage contract the moderation
// core consumes. Implementations own durability; the core only computes the
// desired mutations.
type IDocumentStore interface {
	GetByID(collection, id string) (Document, error)
	Add(collection string, doc Document) (string, error)
	Update(collection, id string, partial Document) error
	Query(collection string, filters map[string]any) ([]Document, error)
}

// DocumentStore persists JSON documents in BadgerDB. Keys are formatted as
// "{collection}:{id}" so a prefix scan enumerates one collection.
type DocumentStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDocumentStore(db *badger.DB, log *slog.Logger) *DocumentStore {
	return &DocumentStore{db: db, log: log}
}

func (s *DocumentStore) GetByID(collection, id string) (Document, error) {
	var doc Document
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(collection, id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &doc)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, fmt.Errorf("%w: %s/%s", errors.ErrDocumentNotFound, collection, id)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Add persists a new document and returns its identifier. A caller-supplied
// "id" field wins over the generated one.
func (s *DocumentStore) Add(collection string, doc Document) (string, error) {
	id := uuid.New().String()
	if existing, ok := doc["id"].(string); ok && existing != "" {
		id = existing
	}
	doc["id"] = id

	bytes, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(collection, id), bytes)
	})
	return id, err
}

// Update merges the partial document into the stored one. The overwrite is
// idempotent: applying the same partial twice yields the same record.
func (s *DocumentStore) Update(collection, id string, partial Document) error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key(collection, id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s/%s", errors.ErrDocumentNotFound, collection, id)
		}
		if err != nil {
			return err
		}

		var doc Document
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &doc)
		}); err != nil {
			return err
		}

		for field, value := range partial {
			doc[field] = value
		}

		bytes, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		return txn.Set(key(collection, id), bytes)
	})
}

// Query returns the documents of a collection whose fields equal every
// filter value. Filters compare against the JSON representation, so numeric
// filters should be float64.
func (s *DocumentStore) Query(collection string, filters map[string]any) ([]Document, error) {
	var docs []Document
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(collection + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var doc Document
				if err := json.Unmarshal(val, &doc); err != nil {
					return err
				}
				if matches(doc, filters) {
					docs = append(docs, doc)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return docs, err
}

func matches(doc Document, filters map[string]any) bool {
	for field, expected := range filters {
		if doc[field] != expected {
			return false
		}
	}
	return true
}

func key(collection, id string) []byte {
	return []byte(collection + ":" + id)
}
