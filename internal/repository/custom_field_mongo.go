package repository

import (
	"context"

	"github.com/umalmyha/cases/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const customFieldsCollection = "customfields"

type mongoCustomField struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Key      string             `bson:"id"`
	Label    string             `bson:"label"`
	Type     string             `bson:"type"`
	Required bool               `bson:"required"`
}

func (d *mongoCustomField) model() *model.CustomField {
	return &model.CustomField{
		ID:       d.ID.Hex(),
		Key:      d.Key,
		Label:    d.Label,
		Type:     model.FieldType(d.Type),
		Required: d.Required,
	}
}

type mongoCustomFieldRepository struct {
	coll *mongo.Collection
}

// NewMongoCustomFieldRepository builds CustomFieldRepository backed by mongodb
func NewMongoCustomFieldRepository(db *mongo.Database) CustomFieldRepository {
	return &mongoCustomFieldRepository{coll: db.Collection(customFieldsCollection)}
}

func (r *mongoCustomFieldRepository) FindAll(ctx context.Context) ([]*model.CustomField, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	fields := make([]*model.CustomField, 0)
	for cur.Next(ctx) {
		var doc mongoCustomField
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		fields = append(fields, doc.model())
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *mongoCustomFieldRepository) ExistsByKey(ctx context.Context, key string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"id": key}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *mongoCustomFieldRepository) Create(ctx context.Context, f *model.CustomField) error {
	doc := &mongoCustomField{
		ID:       primitive.NewObjectID(),
		Key:      f.Key,
		Label:    f.Label,
		Type:     string(f.Type),
		Required: f.Required,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return err
	}

	f.ID = doc.ID.Hex()
	return nil
}

func (r *mongoCustomFieldRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
