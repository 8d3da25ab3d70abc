package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"referral-service/internal/data/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

const userCollection = "users"

type UserRepository interface {
	Insert(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByEmailAndPassword(ctx context.Context, email, password string) (*entity.User, error)
	FindByReferralCode(ctx context.Context, code string) (*entity.User, error)
	FindByEmailsWhereProfileCompleted(ctx context.Context, emails []string) ([]*entity.User, error)
	Save(ctx context.Context, user *entity.User) error
	StreamAll(ctx context.Context, fn func(*entity.User) error) error
}

type userRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewUserRepository(db *mongo.Database, log *zap.Logger) UserRepository {
	return &userRepository{
		coll: db.Collection(userCollection),
		log:  log,
	}
}

// Insert stores a new user document and assigns its identity
func (ur *userRepository) Insert(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := ur.coll.InsertOne(ctx, user); err != nil {
		ur.log.Error("Failed to insert user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("insert user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, bson.M{"email": email}, "email", email)
}

func (ur *userRepository) FindByEmailAndPassword(ctx context.Context, email, password string) (*entity.User, error) {
	filter := bson.M{"email": email, "password": password}
	return ur.findOne(ctx, filter, "email", email)
}

func (ur *userRepository) FindByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	return ur.findOne(ctx, bson.M{"referral_code": code}, "referral_code", code)
}

// findOne returns (nil, nil) when no document matches
func (ur *userRepository) findOne(ctx context.Context, filter bson.M, key, value string) (*entity.User, error) {
	var user entity.User
	err := ur.coll.FindOne(ctx, filter).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user",
			zap.Error(err),
			zap.String(key, value),
		)
		return nil, fmt.Errorf("find user by %s %s: %w", key, value, err)
	}

	return &user, nil
}

func (ur *userRepository) FindByEmailsWhereProfileCompleted(ctx context.Context, emails []string) ([]*entity.User, error) {
	filter := bson.M{
		"email":             bson.M{"$in": emails},
		"profile_completed": true,
	}

	cursor, err := ur.coll.Find(ctx, filter)
	if err != nil {
		ur.log.Error("Failed to find users by emails",
			zap.Error(err),
			zap.Int("email_count", len(emails)),
		)
		return nil, fmt.Errorf("find users by emails: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	for cursor.Next(ctx) {
		var user entity.User
		if err := cursor.Decode(&user); err != nil {
			ur.log.Error("Failed to decode user document", zap.Error(err))
			return nil, fmt.Errorf("decode user document: %w", err)
		}
		users = append(users, &user)
	}

	if err := cursor.Err(); err != nil {
		ur.log.Error("Cursor iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users cursor: %w", err)
	}

	return users, nil
}

// Save upserts a user document by identity
func (ur *userRepository) Save(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": user.ID}
	opts := options.Replace().SetUpsert(true)

	if _, err := ur.coll.ReplaceOne(ctx, filter, user, opts); err != nil {
		ur.log.Error("Failed to save user",
			zap.Error(err),
			zap.String("user_id", user.ID),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("save user %s: %w", user.ID, err)
	}

	return nil
}

// StreamAll walks the whole collection in store order, calling fn per user.
// Iteration stops at the first error fn returns.
func (ur *userRepository) StreamAll(ctx context.Context, fn func(*entity.User) error) error {
	cursor, err := ur.coll.Find(ctx, bson.M{})
	if err != nil {
		ur.log.Error("Failed to query all users", zap.Error(err))
		return fmt.Errorf("find all users: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var user entity.User
		if err := cursor.Decode(&user); err != nil {
			ur.log.Error("Failed to decode user document", zap.Error(err))
			return fmt.Errorf("decode user document: %w", err)
		}
		if err := fn(&user); err != nil {
			return err
		}
	}

	if err := cursor.Err(); err != nil {
		ur.log.Error("Cursor iteration error", zap.Error(err))
		return fmt.Errorf("iterate users cursor: %w", err)
	}

	return nil
}
