package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates indexes cases rely on: unique case number, text search and creation order
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "caseNumber", Value: 1}},
			Options: options.Index().SetName("caseNumber_unique").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "caseNumber", Value: "text"},
				{Key: "subject", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "department", Value: "text"},
				{Key: "contactName", Value: "text"},
				{Key: "businessName", Value: "text"},
			},
			Options: options.Index().SetName("cases_text"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("createdAt_desc"),
		},
	}

	if _, err := db.Collection(casesCollection).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create indexes for %s - %w", casesCollection, err)
	}
	return nil
}
