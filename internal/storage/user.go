package storage

import (
	"context" // Request scoped queries

	"github.com/go-faster/errors"   // Error wrapping
	"github.com/shopspring/decimal" // Exact money amounts
	"gorm.io/gorm"                  // GORM ORM library
	"gorm.io/gorm/clause"           // Association control

	"ecommerce/internal/domain"  // Domain models
	"ecommerce/internal/service" // Repository contracts
)

var _ service.UserRepository = (*UserRepository)(nil)

// UserRepository implements service.UserRepository with GORM.
type UserRepository struct {
	db *gorm.DB // Database handle
}

// NewUserRepository returns a UserRepository using db.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername loads the user and its cart.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel // User row
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, notFound(err, "find user by username")
	}
	return r.withCart(ctx, m)
}

// FindByID loads the user and its cart.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var m userModel // User row
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFound(err, "find user by id")
	}
	return r.withCart(ctx, m)
}

// Create inserts a new user together with its empty cart in one transaction,
// so a user row never exists without a cart.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	m := userModel{
		Username: user.Username, // Unique username
		Password: user.Password, // Already hashed
	}
	var cm cartModel // The user's cart row
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return errors.Wrap(err, "insert user") // Duplicate username or database failure
		}
		cm = cartModel{UserID: m.ID, Total: decimal.Zero}
		if err := tx.Omit(clause.Associations).Create(&cm).Error; err != nil {
			return errors.Wrap(err, "insert cart") // Rolls the user back too
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "create user %q", user.Username)
	}

	user.ID = m.ID // Assigned by the database
	user.Cart = domain.NewCart(user)
	user.Cart.ID = cm.ID
	return nil
}

// withCart builds the domain user and attaches its cart, if one exists
func (r *UserRepository) withCart(ctx context.Context, m userModel) (*domain.User, error) {
	user := &domain.User{
		ID:       m.ID,
		Username: m.Username,
		Password: m.Password,
	}

	var cm cartModel // Cart row with its lines and their items
	err := r.db.WithContext(ctx).
		Preload("Lines", orderByPosition).
		Preload("Lines.Item").
		Where("user_id = ?", m.ID).
		First(&cm).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return user, nil // Legacy user without a cart
	case err != nil:
		return nil, errors.Wrapf(err, "load cart of user %d", m.ID)
	}

	user.Cart = toCart(cm, user)
	return user, nil
}

// orderByPosition keeps multiset lines in their stored order
func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// notFound maps gorm.ErrRecordNotFound to domain.ErrNotFound.
func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(domain.ErrNotFound, op)
	}
	return errors.Wrap(err, op)
}
