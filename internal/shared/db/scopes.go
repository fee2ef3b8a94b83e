// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate is a GORM scope that takes a row lock on the selected rows for the
// rest of the surrounding transaction. Dialects without row locks (SQLite)
// drop the clause; SQLite serializes writers at the database level instead.
//
// Example usage:
//
//	tx.Scopes(db.ForUpdate()).First(&model, id)
func ForUpdate() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}

// Latest orders rows newest first by created_at, breaking ties on the highest id
// so "the latest row" is deterministic.
func Latest() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Order("id DESC")
	}
}
