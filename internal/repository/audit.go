package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cafechain/pos-terminal/internal/domain/model"
)

// OrderAuditDocument is an order audit entry as stored in MongoDB.
type OrderAuditDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	model.OrderAudit `bson:",inline"`
}

// RestockAuditDocument is a restock audit entry as stored in MongoDB.
type RestockAuditDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	model.RestockAudit `bson:",inline"`
}

// AuditRepository persists the trail of orders and stock adjustments
// this terminal sent to the Gateway.
type AuditRepository struct {
	orders   *mongo.Collection
	restocks *mongo.Collection
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *MongoDB) *AuditRepository {
	return &AuditRepository{
		orders:   db.Orders,
		restocks: db.Restocks,
	}
}

// RecordOrder inserts an order audit entry.
func (r *AuditRepository) RecordOrder(ctx context.Context, entry *model.OrderAudit) error {
	doc := OrderAuditDocument{ID: primitive.NewObjectID(), OrderAudit: *entry}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now()
	}
	_, err := r.orders.InsertOne(ctx, doc)
	return err
}

// RecordRestock inserts a restock audit entry.
func (r *AuditRepository) RecordRestock(ctx context.Context, entry *model.RestockAudit) error {
	doc := RestockAuditDocument{ID: primitive.NewObjectID(), RestockAudit: *entry}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now()
	}
	_, err := r.restocks.InsertOne(ctx, doc)
	return err
}

// AuditQueryOptions narrows an audit trail query.
type AuditQueryOptions struct {
	CafeID    string
	SessionID string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

func (o AuditQueryOptions) filter() bson.M {
	filter := bson.M{}
	if o.CafeID != "" {
		filter["cafe_id"] = o.CafeID
	}
	if o.SessionID != "" {
		filter["session_id"] = o.SessionID
	}
	if o.StartTime != nil || o.EndTime != nil {
		timeFilter := bson.M{}
		if o.StartTime != nil {
			timeFilter["$gte"] = *o.StartTime
		}
		if o.EndTime != nil {
			timeFilter["$lte"] = *o.EndTime
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}

func (o AuditQueryOptions) findOptions() *options.FindOptions {
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	if o.Limit > 0 {
		findOptions.SetLimit(int64(o.Limit))
	}
	if o.Skip > 0 {
		findOptions.SetSkip(int64(o.Skip))
	}
	return findOptions
}

// QueryOrders returns order audit entries matching the options, newest
// first.
func (r *AuditRepository) QueryOrders(ctx context.Context, opts AuditQueryOptions) ([]*OrderAuditDocument, error) {
	cursor, err := r.orders.Find(ctx, opts.filter(), opts.findOptions())
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*OrderAuditDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// QueryRestocks returns restock audit entries matching the options,
// newest first.
func (r *AuditRepository) QueryRestocks(ctx context.Context, opts AuditQueryOptions) ([]*RestockAuditDocument, error) {
	cursor, err := r.restocks.Find(ctx, opts.filter(), opts.findOptions())
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*RestockAuditDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CountOrders returns the number of order audit entries matching the
// options.
func (r *AuditRepository) CountOrders(ctx context.Context, opts AuditQueryOptions) (int64, error) {
	return r.orders.CountDocuments(ctx, opts.filter())
}
