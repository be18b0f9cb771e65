package repository

import (
	"context"
	"errors"
	"time"

	"github.com/umalmyha/cases/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const casesCollection = "cases"

type mongoCase struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CaseNumber   string             `bson:"caseNumber"`
	Subject      string             `bson:"subject"`
	Description  string             `bson:"description"`
	Department   string             `bson:"department"`
	Status       string             `bson:"status"`
	ContactName  string             `bson:"contactName,omitempty"`
	BusinessName string             `bson:"businessName,omitempty"`
	Coid         string             `bson:"coid,omitempty"`
	Mid          string             `bson:"mid,omitempty"`
	CustomFields map[string]string  `bson:"customFields"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func newMongoCase(c *model.Case) *mongoCase {
	return &mongoCase{
		CaseNumber:   c.CaseNumber,
		Subject:      c.Subject,
		Description:  c.Description,
		Department:   c.Department,
		Status:       string(c.Status),
		ContactName:  c.ContactName,
		BusinessName: c.BusinessName,
		Coid:         c.Coid,
		Mid:          c.Mid,
		CustomFields: c.CustomFields,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (d *mongoCase) model() *model.Case {
	fields := d.CustomFields
	if fields == nil {
		fields = make(map[string]string)
	}

	return &model.Case{
		ID:           d.ID.Hex(),
		CaseNumber:   d.CaseNumber,
		Subject:      d.Subject,
		Description:  d.Description,
		Department:   d.Department,
		Status:       model.Status(d.Status),
		ContactName:  d.ContactName,
		BusinessName: d.BusinessName,
		Coid:         d.Coid,
		Mid:          d.Mid,
		CustomFields: fields,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

type mongoCaseRepository struct {
	coll *mongo.Collection
}

// NewMongoCaseRepository builds CaseRepository backed by mongodb
func NewMongoCaseRepository(db *mongo.Database) CaseRepository {
	return &mongoCaseRepository{coll: db.Collection(casesCollection)}
}

func (r *mongoCaseRepository) FindByID(ctx context.Context, id string) (*model.Case, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc mongoCase
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.model(), nil
}

func (r *mongoCaseRepository) Find(ctx context.Context, f model.CaseFilter) ([]*model.Case, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(f.Skip())).
		SetLimit(int64(f.Limit))

	cur, err := r.coll.Find(ctx, mongoCaseQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	cases := make([]*model.Case, 0)
	for cur.Next(ctx) {
		var doc mongoCase
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		cases = append(cases, doc.model())
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *mongoCaseRepository) Count(ctx context.Context, f model.CaseFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, mongoCaseQuery(f))
}

func (r *mongoCaseRepository) Create(ctx context.Context, c *model.Case) error {
	now := mongoNow()

	doc := newMongoCase(c)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return err
	}

	c.ID = doc.ID.Hex()
	c.CreatedAt = now
	c.UpdatedAt = now
	return nil
}

func (r *mongoCaseRepository) Update(ctx context.Context, c *model.Case) (*model.Case, error) {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil, nil
	}

	doc := newMongoCase(c)
	set := bson.M{
		"caseNumber":   doc.CaseNumber,
		"subject":      doc.Subject,
		"description":  doc.Description,
		"department":   doc.Department,
		"status":       doc.Status,
		"customFields": doc.CustomFields,
		"updatedAt":    mongoNow(),
	}

	unset := bson.M{}
	for field, value := range map[string]string{
		"contactName":  doc.ContactName,
		"businessName": doc.BusinessName,
		"coid":         doc.Coid,
		"mid":          doc.Mid,
	} {
		if value == "" {
			unset[field] = ""
		} else {
			set[field] = value
		}
	}

	upd := bson.M{"$set": set}
	if len(unset) > 0 {
		upd["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated mongoCase
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, upd, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return updated.model(), nil
}

func (r *mongoCaseRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
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

func mongoCaseQuery(f model.CaseFilter) bson.M {
	q := bson.M{}
	if f.Search != "" {
		q["$text"] = bson.M{"$search": f.Search}
	}

	for field, value := range map[string]string{
		"businessName": f.BusinessName,
		"department":   f.Department,
		"coid":         f.Coid,
		"mid":          f.Mid,
	} {
		if value != "" {
			q[field] = value
		}
	}
	return q
}

// mongodb keeps milliseconds only
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
