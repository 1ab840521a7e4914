package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
)

const (
	loginCollection = "login"
	userCollection  = "users"
)

// UserRepository persists credentials and identities in MongoDB, split across
// the login and users collections like the legacy schema.
type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db}
}

type mongoCredential struct {
	Email string `bson:"email"`
	Hash  string `bson:"hash"`
}

type mongoUser struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Email   string             `bson:"email"`
	Name    string             `bson:"name"`
	Age     int                `bson:"age,omitempty"`
	Pet     string             `bson:"pet,omitempty"`
	Entries int64              `bson:"entries"`
	Joined  int64              `bson:"joined"`
}

func (r *UserRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var mc mongoCredential
	if err := r.db.Collection(loginCollection).FindOne(ctx, bson.M{"email": email}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return &domain.Credential{Email: mc.Email, PasswordHash: mc.Hash}, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findUser(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) findUser(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.db.Collection(userCollection).FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return mu.toDomain(), nil
}

// CreateUser inserts the credential and identity inside one transaction so a
// partial registration can never leave a credential without an identity.
func (r *UserRepository) CreateUser(ctx context.Context, cred *domain.Credential, user *domain.User) (*domain.User, error) {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w: %v", domain.ErrStoreUnavailable, err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		doc := mongoCredential{Email: cred.Email, Hash: cred.PasswordHash}
		if _, err := r.db.Collection(loginCollection).InsertOne(sc, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrUserExists
			}
			return nil, fmt.Errorf("insert credential: %w: %v", domain.ErrStoreUnavailable, err)
		}

		mu := mongoUser{
			Email:  user.Email,
			Name:   user.Name,
			Joined: user.Joined.Unix(),
		}
		res, err := r.db.Collection(userCollection).InsertOne(sc, mu)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrUserExists
			}
			return nil, fmt.Errorf("insert user: %w: %v", domain.ErrStoreUnavailable, err)
		}

		mu.ID = res.InsertedID.(primitive.ObjectID)
		return mu.toDomain(), nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.User), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	update := bson.M{"$set": bson.M{
		"name": patch.Name,
		"age":  patch.Age,
		"pet":  patch.Pet,
	}}

	var mu mongoUser
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.db.Collection(userCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).
		Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) IncrementEntries(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrUserNotFound
	}

	var mu mongoUser
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.db.Collection(userCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"entries": 1}}, opts).
		Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("increment entries: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return mu.Entries, nil
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:      mu.ID.Hex(),
		Email:   mu.Email,
		Name:    mu.Name,
		Age:     mu.Age,
		Pet:     mu.Pet,
		Entries: mu.Entries,
		Joined:  unixToTime(mu.Joined),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
