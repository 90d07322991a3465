package handler

import (
	"errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/interviewai-team/interviewai-backend/errors"
	userDTO "github.com/interviewai-team/interviewai-backend/internal/adapter/dto/user"
	"github.com/interviewai-team/interviewai-backend/internal/adapter/presenter"
	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/http/middleware"
	userUsecase "github.com/interviewai-team/interviewai-backend/internal/usecase/user"
)

// User handles account HTTP requests
type User struct {
	userService userUsecase.Service
	logger      *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService userUsecase.Service, logger *zap.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// Create handles POST /v1/users
// @Summary      Register an account
// @Description  Creates a new user account
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      user.CreateUserRequest  true  "Account details"
// @Success      201      {object}  common.Response{data=user.UserResponse}
// @Failure      400      {object}  common.Response
// @Failure      409      {object}  common.Response
// @Router       /users [post]
func (h *User) Create(c echo.Context) error {
	var req userDTO.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	u, err := h.userService.Create(c.Request().Context(), userUsecase.CreateInput{
		Email:      req.Email,
		Name:       req.Name,
		TargetRole: req.TargetRole,
		Timezone:   req.Timezone,
	})
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, req.Email))
	}

	return HandleCreated(h.logger, c, presenter.ToUserResponse(u))
}

// GetMe handles GET /v1/users/me
// @Summary      Get current user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Response{data=user.UserResponse}
// @Failure      401  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /users/me [get]
func (h *User) GetMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	u, err := h.userService.Get(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, ""))
	}

	return HandleSuccess(h.logger, c, presenter.ToUserResponse(u))
}

// UpdateMe handles PATCH /v1/users/me
// @Summary      Update current user
// @Description  Patches the authenticated user's profile; omitted fields are left unchanged
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      user.UpdateUserRequest  true  "Profile patch"
// @Success      200      {object}  common.Response{data=user.UserResponse}
// @Failure      400      {object}  common.Response
// @Failure      401      {object}  common.Response
// @Router       /users/me [patch]
func (h *User) UpdateMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	var req userDTO.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	u, err := h.userService.Update(c.Request().Context(), userID, userUsecase.UpdateInput{
		Name:        req.Name,
		TargetRole:  req.TargetRole,
		AvatarURL:   req.AvatarURL,
		Timezone:    req.Timezone,
		Preferences: req.Preferences,
	})
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, ""))
	}

	return HandleSuccess(h.logger, c, presenter.ToUserResponse(u))
}

func (h *User) mapError(err error, email string) error {
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		return apperrors.ErrUserNotFound()
	case errors.Is(err, entities.ErrUserAlreadyExists):
		return apperrors.ErrUserAlreadyExists(email)
	case errors.Is(err, entities.ErrInvalidEmail),
		errors.Is(err, entities.ErrInvalidName),
		errors.Is(err, entities.ErrInvalidTier):
		return apperrors.ErrInvalidArgument(err.Error())
	default:
		return err
	}
}
