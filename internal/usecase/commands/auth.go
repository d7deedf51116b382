package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"meetup-api/internal/domain/user"
	reqdto "meetup-api/internal/handler/dto/request"
	"meetup-api/internal/infra"
	sqlc "meetup-api/internal/infra/sqlc/generated"
	"meetup-api/internal/pkg/errs"
	"meetup-api/internal/pkg/jwt"
	"meetup-api/internal/pkg/password"
	"meetup-api/internal/usecase/queries"
	"meetup-api/internal/usecase/shared"
)

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type RegisterResult struct {
	UserID uuid.UUID
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

// Register creates a member account. Email uniqueness is enforced by the
// partial unique index on active users; losing that race surfaces as
// ErrEmailTaken, never as a read-then-write gap.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error) {
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	newUser := user.NewUser(name, email, hash, user.RoleMember)

	var createdID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Users().Create(ctx, tx.DB(), sqlc.CreateUserParams{
			Name:         newUser.Name().Value(),
			Email:        newUser.Email().Value(),
			PasswordHash: newUser.PasswordHash(),
			Role:         newUser.Role().String(),
		})
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return createErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RegisterResult{UserID: createdID}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(userReadModel.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userReadModel.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID)
		if updateErr != nil {
			slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", updateErr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", userReadModel.ID, "error", err.Error())
		// Continue without failing - login was successful, only last_login update failed
	}

	return &LoginResult{
		UserID: userReadModel.ID,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active
	userReadModel, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	err = password.ComparePassword(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}
