package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"authflow/internal/models"
)

const usersCollection = "users"

// MongoUserStore is the MongoDB-backed UserStore.
type MongoUserStore struct {
	users *mongo.Collection
}

func NewMongoUserStore(client *mongo.Client, dbName string) *MongoUserStore {
	return &MongoUserStore{
		users: client.Database(dbName).Collection(usersCollection),
	}
}

// EnsureIndexes creates the unique email index. Safe to call on every start.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (s *MongoUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoUserStore) GetByVerificationCode(ctx context.Context, code string, now time.Time) (models.User, error) {
	return s.findOne(ctx, bson.M{
		"verification.code":      code,
		"verification.expiresAt": bson.M{"$gt": now},
	})
}

func (s *MongoUserStore) GetByResetToken(ctx context.Context, token string, now time.Time) (models.User, error) {
	return s.findOne(ctx, bson.M{
		"passwordReset.token":     token,
		"passwordReset.expiresAt": bson.M{"$gt": now},
	})
}

func (s *MongoUserStore) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	return s.updateOne(ctx, id, bson.M{
		"$set":   bson.M{"isVerified": true, "updatedAt": time.Now()},
		"$unset": bson.M{"verification": ""},
	})
}

func (s *MongoUserStore) SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return s.updateOne(ctx, id, bson.M{
		"$set": bson.M{"lastLoginAt": at, "updatedAt": time.Now()},
	})
}

func (s *MongoUserStore) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiresAt time.Time) error {
	return s.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"passwordReset": models.PasswordReset{Token: token, ExpiresAt: expiresAt},
			"updatedAt":     time.Now(),
		},
	})
}

func (s *MongoUserStore) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	return s.updateOne(ctx, id, bson.M{
		"$set":   bson.M{"passwordHash": passwordHash, "updatedAt": time.Now()},
		"$unset": bson.M{"passwordReset": ""},
	})
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, filter).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *MongoUserStore) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := s.users.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
