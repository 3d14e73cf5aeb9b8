package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/configs"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/users/dto"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/users/model"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/users/service"
	helper "github.com/JaninduMunasinghe/university-timetable-management/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Config   configs.AppConfig
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, cfg configs.AppConfig) *UserController {
	return &UserController{DB: db, Config: cfg, Validate: validator.New()}
}

// =========================
// Register
// =========================
func (ctrl *UserController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Duplicate email check
	var existing model.UserModel
	err := ctrl.DB.Where("email = ?", strings.ToLower(body.Email)).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Email has already been registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := model.UserModel{
		Name:     body.Name,
		Email:    strings.ToLower(body.Email),
		Password: hash,
		Phone:    body.Phone,
	}
	user.SetDefaultValues()

	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user data")
	}

	token, err := service.GenerateToken(ctrl.Config.JWTSecret, user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate token")
	}
	service.SetTokenCookie(c, token)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User registered", dto.AuthResponse{
		UserResponse: dto.ToUserResponse(user),
		Token:        token,
	})
}

// =========================
// Login
// =========================
func (ctrl *UserController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.Where("email = ?", strings.ToLower(body.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "User not found, please signup")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err := service.CheckPasswordHash(user.Password, body.Password); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid email or password")
	}

	token, err := service.GenerateToken(ctrl.Config.JWTSecret, user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate token")
	}
	service.SetTokenCookie(c, token)

	return helper.Success(c, "Login successful", dto.AuthResponse{
		UserResponse: dto.ToUserResponse(user),
		Token:        token,
	})
}

// =========================
// Logout
// =========================
func (ctrl *UserController) Logout(c *fiber.Ctx) error {
	service.ClearTokenCookie(c)
	return helper.Success(c, "Logged out successfully", nil)
}

// =========================
// Login Status (public)
// =========================
func (ctrl *UserController) LoginStatus(c *fiber.Ctx) error {
	token := c.Cookies("token")
	if token == "" {
		return c.JSON(false)
	}
	return c.JSON(service.VerifyToken(ctrl.Config.JWTSecret, token))
}

// =========================
// Get current user
// =========================
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "User not found")
	}

	return helper.Success(c, "OK", dto.ToUserResponse(user))
}

// =========================
// Get all users (admin)
// =========================
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var users []model.UserModel
	if err := ctrl.DB.Order("created_at desc").Limit(p.Limit()).Offset(p.Offset()).Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Users not found")
	}

	return helper.Success(c, "OK", fiber.Map{
		"users": dto.ToUserResponses(users),
		"meta":  helper.BuildPaginationMeta(p, total),
	})
}

// =========================
// Update current user (name/phone only)
// =========================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	if body.Name != nil {
		user.Name = *body.Name
	}
	if body.Phone != nil {
		user.Phone = *body.Phone
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.Success(c, "User updated", dto.ToUserResponse(user))
}

// =========================
// Change password
// =========================
func (ctrl *UserController) ChangePassword(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "User not found")
	}

	if err := service.CheckPasswordHash(user.Password, body.OldPassword); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid old password")
	}

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	user.Password = hash

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.Success(c, "Password changed successfully", nil)
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing user_id")
	}
	return uuid.Parse(raw)
}
