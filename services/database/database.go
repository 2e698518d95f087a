package database

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/gob"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.hacdias.com/folio/core"
)

const openTimeout = 5 * time.Second

var leadsBucket = []byte("leads")

// Database is a lead sink backed by a local bolt database. Leads are keyed by
// an increasing sequence so they are listed in the order they were appended.
type Database struct {
	db *bolt.DB
}

func NewDatabase(path string) (*Database, error) {
	// The file is locked while another process, such as the server, has it open.
	db, err := bolt.Open(path, 0666, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}

	return &Database{
		db: db,
	}, nil
}

// StoredLead is a lead as kept in the database, under a generated id.
type StoredLead struct {
	ID string `json:"id"`
	core.Lead
}

func (b *Database) Close() error {
	return b.db.Close()
}

func (b *Database) AppendLead(ctx context.Context, lead *core.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := &StoredLead{
		ID:   uuid.New().String(),
		Lead: *lead,
	}

	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(entry)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(leadsBucket)
		if err != nil {
			return err
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, buf.Bytes())
	})
}

// GetLeads returns every stored lead in the order it was appended.
func (b *Database) GetLeads(ctx context.Context) ([]*StoredLead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	leads := []*StoredLead{}

	err := b.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(leadsBucket)
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			var l StoredLead
			err := gob.NewDecoder(bytes.NewReader(v)).Decode(&l)
			if err != nil {
				return err
			}

			leads = append(leads, &l)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return leads, nil
}
