// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package lvldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// LVLDB is a goleveldb-backed key-value store. The database handle is held
// open for the lifetime of the store since submission statuses are written
// on the hot path of every submission.
type LVLDB struct {
	db *leveldb.DB
}

func NewLvlDB(path string) (*LVLDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "levelDB.OpenFile fail")
	}

	return &LVLDB{db: db}, nil
}

func (db *LVLDB) GetByKey(key []byte) ([]byte, error) {
	return db.db.Get(key, nil)
}

func (db *LVLDB) SetByKey(key []byte, value []byte) error {
	return db.db.Put(key, value, nil)
}

func (db *LVLDB) Close() error {
	return db.db.Close()
}
