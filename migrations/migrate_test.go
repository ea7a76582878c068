// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB itself; every call fails with "unexpected query"

	err = Migrate(db, Postgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil, SQLite)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, Dialect("mysql"))
	if !errors.Is(err, ErrUnknownDialect) {
		t.Errorf("expected ErrUnknownDialect, got: %v", err)
	}
}

func TestEmbeddedMigrations_HaveUpAndDown(t *testing.T) {
	for _, dir := range []string{"sqlite", "postgres"} {
		entries, err := fs.ReadDir(embedMigrations, dir)
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		if len(entries) == 0 {
			t.Fatalf("no migrations embedded for %s", dir)
		}
		for _, e := range entries {
			body, err := fs.ReadFile(embedMigrations, dir+"/"+e.Name())
			if err != nil {
				t.Fatalf("read %s: %v", e.Name(), err)
			}
			if !strings.Contains(string(body), "-- +goose Up") || !strings.Contains(string(body), "-- +goose Down") {
				t.Errorf("%s/%s must declare Up and Down sections", dir, e.Name())
			}
		}
	}
}
