package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Skotchmaster/mock_ecom/internal/models"
)

const (
	collUsers    = "users"
	collProducts = "products"
	collCart     = "cart_items"
	collCounters = "counters"
)

// MongoRepo keeps the same integer identifiers as the SQL store by
// allocating them from a counters collection.
type MongoRepo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

var _ Store = (*MongoRepo)(nil)

func NewMongoRepo(client *mongo.Client, dbName string) *MongoRepo {
	return &MongoRepo{Client: client, DB: client.Database(dbName)}
}

func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	if _, err := r.DB.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("users email index: %w", err)
	}
	if _, err := r.DB.Collection(collCart).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	}); err != nil {
		return fmt.Errorf("cart user index: %w", err)
	}
	return nil
}

func (r *MongoRepo) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx, readpref.Primary())
}

func (r *MongoRepo) Close(ctx context.Context) error {
	return r.Client.Disconnect(ctx)
}

func (r *MongoRepo) nextID(ctx context.Context, name string) (uint, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.DB.Collection(collCounters).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", name, err)
	}
	return uint(doc.Seq), nil
}

func mongoNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (r *MongoRepo) CreateUserIfNotExists(ctx context.Context, u *models.User) error {
	n, err := r.DB.Collection(collUsers).CountDocuments(ctx, bson.M{"email": u.Email})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrAlreadyExists
	}
	id, err := r.nextID(ctx, collUsers)
	if err != nil {
		return err
	}
	u.ID = id
	if _, err := r.DB.Collection(collUsers).InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *MongoRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.DB.Collection(collUsers).FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, mongoNotFound(err)
	}
	return &u, nil
}

func (r *MongoRepo) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.DB.Collection(collUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, mongoNotFound(err)
	}
	return &u, nil
}

func (r *MongoRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.DB.Collection(collProducts).CountDocuments(ctx, bson.M{})
}

func (r *MongoRepo) GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	total, err := r.CountProducts(ctx)
	if err != nil {
		return 0, nil, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cur, err := r.DB.Collection(collProducts).Find(ctx, bson.M{}, opts)
	if err != nil {
		return 0, nil, err
	}
	items := make([]models.Product, 0, limit)
	if err := cur.All(ctx, &items); err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *MongoRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.DB.Collection(collProducts).FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, mongoNotFound(err)
	}
	return &p, nil
}

func (r *MongoRepo) GetProductsByIDs(ctx context.Context, ids []uint) (map[uint]models.Product, error) {
	out := make(map[uint]models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.DB.Collection(collProducts).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var items []models.Product
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	for _, p := range items {
		out[p.ID] = p
	}
	return out, nil
}

func (r *MongoRepo) CreateProducts(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	docs := make([]any, 0, len(products))
	for i := range products {
		id, err := r.nextID(ctx, collProducts)
		if err != nil {
			return err
		}
		products[i].ID = id
		docs = append(docs, products[i])
	}
	_, err := r.DB.Collection(collProducts).InsertMany(ctx, docs)
	return err
}

func (r *MongoRepo) AddLine(ctx context.Context, item *models.CartItem) error {
	id, err := r.nextID(ctx, collCart)
	if err != nil {
		return err
	}
	item.ID = id
	_, err = r.DB.Collection(collCart).InsertOne(ctx, item)
	return err
}

func (r *MongoRepo) GetCart(ctx context.Context, userID uint) ([]models.CartLine, error) {
	cur, err := r.DB.Collection(collCart).Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := r.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]models.CartLine, 0, len(items))
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok {
			// inner join semantics
			continue
		}
		lines = append(lines, models.CartLine{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  it.Quantity,
		})
	}
	return lines, nil
}

func (r *MongoRepo) UpdateQuantity(ctx context.Context, userID, lineID uint, qty int) error {
	res, err := r.DB.Collection(collCart).UpdateOne(ctx,
		bson.M{"_id": lineID, "user_id": userID},
		bson.M{"$set": bson.M{"quantity": qty}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) DeleteLine(ctx context.Context, userID, lineID uint) error {
	res, err := r.DB.Collection(collCart).DeleteOne(ctx, bson.M{"_id": lineID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) ClearAll(ctx context.Context) error {
	_, err := r.DB.Collection(collCart).DeleteMany(ctx, bson.M{})
	return err
}

func (r *MongoRepo) ClearUser(ctx context.Context, userID uint) error {
	_, err := r.DB.Collection(collCart).DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
