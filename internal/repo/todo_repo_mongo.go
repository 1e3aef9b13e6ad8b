package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"todo-backend/internal/domain"
)

type todoDoc struct {
	ID   bson.ObjectID `bson:"_id,omitempty"`
	Text string        `bson:"text"`
}

func (d *todoDoc) toDomain() domain.Todo {
	return domain.Todo{ID: d.ID.Hex(), Text: d.Text}
}

type MongoTodoRepo struct{ coll *mongo.Collection }

func NewMongoTodoRepo(db *mongo.Database) *MongoTodoRepo {
	return &MongoTodoRepo{coll: db.Collection("todos")}
}

func objectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, domain.ErrInvalidID
	}
	return oid, nil
}

func (r *MongoTodoRepo) Create(ctx context.Context, t *domain.Todo) error {
	d := todoDoc{ID: bson.NewObjectID(), Text: t.Text}
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return domain.Storage("create todo", err)
	}
	*t = d.toDomain()
	return nil
}

func (r *MongoTodoRepo) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var d todoDoc
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Storage("find todo", err)
	}
	t := d.toDomain()
	return &t, nil
}

func (r *MongoTodoRepo) UpdateByID(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	if patch.Empty() {
		return r.FindByID(ctx, id)
	}
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var d todoDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "text", Value: *patch.Text}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Storage("update todo", err)
	}
	t := d.toDomain()
	return &t, nil
}

func (r *MongoTodoRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, domain.Storage("delete todo", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoTodoRepo) List(ctx context.Context, offset, limit int) ([]domain.Todo, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, domain.Storage("count todos", err)
	}
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, 0, domain.Storage("list todos", err)
	}
	var docs []todoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, domain.Storage("list todos", err)
	}
	out := make([]domain.Todo, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, total, nil
}
