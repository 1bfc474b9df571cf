package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/saswattulo/Note-App-VueJs/internal/models"
	"github.com/saswattulo/Note-App-VueJs/internal/store"
	"github.com/saswattulo/Note-App-VueJs/internal/types"
)

type CreateUserRequest struct {
	FirstName string `json:"f_name" binding:"required"`
	LastName  string `json:"l_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// UpdateUserRequest replaces names and email unconditionally; the password is
// replaced only when a non-empty one is supplied.
type UpdateUserRequest struct {
	FirstName string `json:"f_name" binding:"required"`
	LastName  string `json:"l_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password"`
}

func (h *Handler) ListUsers(ctx *gin.Context) {
	users, err := h.store.ListUsers()
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve users"})
		return
	}

	response := make([]types.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, types.NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

func (h *Handler) GetUser(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	user, err := h.store.GetUser(id)
	if err != nil {
		log.Printf("Failed to fetch user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve user"})
		return
	}

	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": types.NewUserResponse(*user)})
}

func (h *Handler) CreateUser(ctx *gin.Context) {
	var body CreateUserRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}

	user := models.User{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        body.Email,
		PasswordHash: string(passwordHash),
	}

	if err := h.store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "data": types.NewUserResponse(user)})
}

func (h *Handler) UpdateUser(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	user, err := h.store.GetUser(id)
	if err != nil {
		log.Printf("Failed to fetch user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve user"})
		return
	}

	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	var body UpdateUserRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user.FirstName = body.FirstName
	user.LastName = body.LastName
	user.Email = body.Email

	if body.Password != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash password: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
			return
		}
		user.PasswordHash = string(passwordHash)
	}

	if err := h.store.UpdateUser(user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
			return
		}
		log.Printf("Failed to update user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": types.NewUserResponse(*user)})
}

func (h *Handler) DeleteUser(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	user, err := h.store.GetUser(id)
	if err != nil {
		log.Printf("Failed to fetch user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve user"})
		return
	}

	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if err := h.store.DeleteUser(user); err != nil {
		log.Printf("Failed to delete user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
