package repository

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mern-eats/sales-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names used by the ordering platform
const (
	RestaurantsCollection = "restaurants"
	OrdersCollection      = "orders"
	UsersCollection       = "users"
)

type mongoRestaurant struct {
	ID                    primitive.ObjectID `bson:"_id"`
	User                  primitive.ObjectID `bson:"user"`
	RestaurantName        string             `bson:"restaurantName"`
	City                  string             `bson:"city"`
	Country               string             `bson:"country"`
	DeliveryPrice         int64              `bson:"deliveryPrice"`
	EstimatedDeliveryTime int                `bson:"estimatedDeliveryTime"`
	ImageURL              string             `bson:"imageUrl"`
	LastUpdated           time.Time          `bson:"lastUpdated"`
}

// Numeric and id fields are decoded raw: historical documents mix
// strings, int32, int64 and doubles for the same field.
type mongoOrder struct {
	ID          primitive.ObjectID `bson:"_id"`
	Restaurant  primitive.ObjectID `bson:"restaurant"`
	User        primitive.ObjectID `bson:"user"`
	Status      string             `bson:"status"`
	TotalAmount bson.RawValue      `bson:"totalAmount"`
	CreatedAt   time.Time          `bson:"createdAt"`
	CartItems   []mongoCartItem    `bson:"cartItems"`
}

type mongoCartItem struct {
	MenuItemID bson.RawValue `bson:"menuItemId"`
	Name       string        `bson:"name"`
	Quantity   bson.RawValue `bson:"quantity"`
	Price      bson.RawValue `bson:"price"`
}

type mongoRestaurantRepository struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

// NewMongoRestaurantRepository creates a restaurant repository over the restaurants collection
func NewMongoRestaurantRepository(db *mongo.Database) RestaurantRepository {
	return &mongoRestaurantRepository{
		coll:  db.Collection(RestaurantsCollection),
		users: db.Collection(UsersCollection),
	}
}

// resolveUser accepts either a user document id or the identity provider
// subject stored on the user as auth0Id.
func (r *mongoRestaurantRepository) resolveUser(ctx context.Context, userID string) (primitive.ObjectID, error) {
	if uid, err := primitive.ObjectIDFromHex(userID); err == nil {
		return uid, nil
	}
	if strings.TrimSpace(userID) == "" {
		return primitive.NilObjectID, ErrNotFound
	}

	var user struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := r.users.FindOne(ctx, bson.M{"auth0Id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, ErrNotFound
		}
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

func (r *mongoRestaurantRepository) FindOwned(ctx context.Context, restaurantID, userID string) (*models.Restaurant, error) {
	rid, err := primitive.ObjectIDFromHex(restaurantID)
	if err != nil {
		return nil, ErrNotFound
	}
	uid, err := r.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var doc mongoRestaurant
	err = r.coll.FindOne(ctx, bson.M{"_id": rid, "user": uid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &models.Restaurant{
		ID:                    doc.ID.Hex(),
		UserID:                doc.User.Hex(),
		RestaurantName:        doc.RestaurantName,
		City:                  doc.City,
		Country:               doc.Country,
		DeliveryPrice:         doc.DeliveryPrice,
		EstimatedDeliveryTime: doc.EstimatedDeliveryTime,
		ImageURL:              doc.ImageURL,
		LastUpdated:           doc.LastUpdated,
	}, nil
}

type mongoOrderRepository struct {
	coll *mongo.Collection
}

// NewMongoOrderRepository creates an order repository over the orders collection
func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{coll: db.Collection(OrdersCollection)}
}

func (r *mongoOrderRepository) FindPaid(ctx context.Context, restaurantID string, start, end time.Time) ([]models.Order, error) {
	rid, err := primitive.ObjectIDFromHex(restaurantID)
	if err != nil {
		return []models.Order{}, nil
	}

	cursor, err := r.coll.Find(ctx, paidOrdersFilter(rid, start, end))
	if err != nil {
		return nil, err
	}

	var docs []mongoOrder
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, doc.toModel())
	}
	return orders, nil
}

func paidOrdersFilter(restaurantID primitive.ObjectID, start, end time.Time) bson.M {
	return bson.M{
		"restaurant": restaurantID,
		"status":     models.OrderStatusPaid,
		"createdAt": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
}

func (d mongoOrder) toModel() models.Order {
	order := models.Order{
		ID:           d.ID.Hex(),
		RestaurantID: d.Restaurant.Hex(),
		UserID:       d.User.Hex(),
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		CartItems:    make([]models.CartItem, 0, len(d.CartItems)),
	}
	if total := rawMinorUnits(d.TotalAmount); total != nil {
		order.TotalAmount = *total
	}
	for i, item := range d.CartItems {
		order.CartItems = append(order.CartItems, models.CartItem{
			OrderID:    order.ID,
			Position:   i,
			MenuItemID: rawIdentifier(item.MenuItemID),
			Name:       item.Name,
			Quantity:   rawText(item.Quantity),
			Price:      rawMinorUnits(item.Price),
		})
	}
	return order
}

func rawIdentifier(v bson.RawValue) string {
	switch v.Type {
	case bsontype.ObjectID:
		return v.ObjectID().Hex()
	case bsontype.String:
		return strings.TrimSpace(v.StringValue())
	}
	return ""
}

func rawText(v bson.RawValue) string {
	switch v.Type {
	case bsontype.String:
		return v.StringValue()
	case bsontype.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bsontype.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case bsontype.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	}
	return ""
}

func rawMinorUnits(v bson.RawValue) *int64 {
	var n int64
	switch v.Type {
	case bsontype.Int32:
		n = int64(v.Int32())
	case bsontype.Int64:
		n = v.Int64()
	case bsontype.Double:
		f := v.Double()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		n = int64(math.Round(f))
	case bsontype.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.StringValue()), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		n = int64(math.Round(f))
	default:
		return nil
	}
	return &n
}
