package impl

import (
	"context"
	"fmt"
	"log/slog"

	"saletafood/internal/domain/entity"
	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/domain/repository"
	"saletafood/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface. Account creation and
// authentication live with the external identity provider; the back office
// only reads and removes account rows.
type userService struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetUserByID returns a single user.
func (srv *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// DeleteUser removes a user account. A user that still owns orders cannot
// be deleted.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		count, err := repoFactory.OrderRepo().CountByUser(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count user orders")
		}
		if count > 0 {
			return domainerrors.ErrUserHasOrders.
				WithDetails(fmt.Sprintf("user owns %d orders", count))
		}

		if err := userRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("User deleted", "userID", id)

	return nil
}
