package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"poke_explorer/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection   = "users"
	historyCollection = "searchhistories"
)

// NewMongoRepository wires both repositories to the given database and makes
// sure the indexes they rely on exist.
func NewMongoRepository(ctx context.Context, db *mongo.Database) (*Repository, error) {
	users := NewUserMongo(db)
	history := NewHistoryMongo(db)
	if err := users.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	if err := history.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return &Repository{Users: users, History: history}, nil
}

// ---- users ----

type userDocument struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

type UserMongo struct {
	col *mongo.Collection
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{col: db.Collection(usersCollection)}
}

var _ Users = (*UserMongo)(nil)

func (r *UserMongo) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo users index: %w", err)
	}
	return nil
}

func (r *UserMongo) Create(ctx context.Context, u models.User) error {
	_, err := r.col.InsertOne(ctx, userDocument{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("mongo insert user %q: %w", u.Username, ErrDuplicate)
		}
		return fmt.Errorf("mongo insert user %q: %w", u.Username, err)
	}
	return nil
}

func (r *UserMongo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserMongo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{"password": 0}))
}

func (r *UserMongo) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*models.User, error) {
	var doc userDocument
	if err := r.col.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("mongo find user: %w", err)
	}
	u := doc.toModel()
	return &u, nil
}

// ---- search history ----

type historyDocument struct {
	ID        string    `bson:"_id"`
	Term      string    `bson:"term"`
	User      string    `bson:"user"`
	Timestamp time.Time `bson:"timestamp"`
}

func (d historyDocument) toModel() models.SearchHistoryEntry {
	return models.SearchHistoryEntry{
		ID:        d.ID,
		Term:      d.Term,
		UserID:    d.User,
		Timestamp: d.Timestamp.UTC(),
	}
}

type HistoryMongo struct {
	col *mongo.Collection
}

func NewHistoryMongo(db *mongo.Database) *HistoryMongo {
	return &HistoryMongo{col: db.Collection(historyCollection)}
}

var _ History = (*HistoryMongo)(nil)

func (r *HistoryMongo) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("mongo search history index: %w", err)
	}
	return nil
}

func newHistoryDocument(e models.SearchHistoryEntry) historyDocument {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return historyDocument{
		ID:        e.ID,
		Term:      strings.ToLower(strings.TrimSpace(e.Term)),
		User:      e.UserID,
		Timestamp: e.Timestamp.UTC(),
	}
}

func (r *HistoryMongo) Append(ctx context.Context, e models.SearchHistoryEntry) error {
	if _, err := r.col.InsertOne(ctx, newHistoryDocument(e)); err != nil {
		return fmt.Errorf("mongo insert search history for user %q: %w", e.UserID, err)
	}
	return nil
}

func (r *HistoryMongo) ListByUser(ctx context.Context, userID string, limit int) ([]models.SearchHistoryEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("mongo find search history for user %q: %w", userID, ErrInvalidLimit)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find search history for user %q: %w", userID, err)
	}
	defer cur.Close(ctx)

	var docs []historyDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode search history: %w", err)
	}
	out := make([]models.SearchHistoryEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}
