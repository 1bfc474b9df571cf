// Package store is the persistence gateway: transactional CRUD primitives over
// the relational database. Every write runs inside a transaction and either
// commits fully or rolls back and surfaces a typed error. The gateway performs
// no input validation; that is the handlers' job.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
