package repository

import "go.mongodb.org/mongo-driver/bson/primitive"

const databaseName = "budgettracker"

// newID allocates a document ID. Both backends store the same hex form so
// API identifiers look identical regardless of DB_TYPE.
func newID() string {
	return primitive.NewObjectID().Hex()
}
