// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

//go:generate mockgen -source=./submissionstore.go -destination=./mock/store.go -package mock_store

type SubmissionStatus string

var (
	KEY                                 = "source:%d:txId:%s"
	MissingSubmission  SubmissionStatus = "missing"
	PendingSubmission  SubmissionStatus = "pending"
	FailedSubmission   SubmissionStatus = "failed"
	ExecutedSubmission SubmissionStatus = "executed"
	// UnknownSubmission marks a submission whose envelope reached the
	// ledger but whose outcome was never observed. Operators resolve these
	// by checking the replay guard record on chain.
	UnknownSubmission SubmissionStatus = "unknown"
)

type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
}

// SubmissionStore persists per (source chain, txId) submission outcomes.
type SubmissionStore struct {
	db KeyValueReaderWriter
}

func NewSubmissionStore(db KeyValueReaderWriter) *SubmissionStore {
	return &SubmissionStore{
		db: db,
	}
}

// StoreSubmissionStatus stores submission status per message
func (ss *SubmissionStore) StoreSubmissionStatus(sourceChainID uint64, txID string, status SubmissionStatus) error {
	key := bytes.Buffer{}
	keyS := fmt.Sprintf(KEY, sourceChainID, txID)
	key.WriteString(keyS)

	err := ss.db.SetByKey(key.Bytes(), []byte(status))
	if err != nil {
		return err
	}

	return nil
}

func (ss *SubmissionStore) SubmissionStatus(sourceChainID uint64, txID string) (SubmissionStatus, error) {
	key := bytes.Buffer{}
	keyS := fmt.Sprintf(KEY, sourceChainID, txID)
	key.WriteString(keyS)

	v, err := ss.db.GetByKey(key.Bytes())
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return MissingSubmission, nil
		}
		return MissingSubmission, err
	}

	status := SubmissionStatus(string(v))
	return status, nil
}
