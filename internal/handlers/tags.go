package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saswattulo/Note-App-VueJs/internal/models"
	"github.com/saswattulo/Note-App-VueJs/internal/store"
	"github.com/saswattulo/Note-App-VueJs/internal/types"
)

type TagRequest struct {
	Name   string `json:"name" binding:"required"`
	NoteID uint   `json:"note_id" binding:"required"`
}

func (h *Handler) ListTags(ctx *gin.Context) {
	tags, err := h.store.ListTags()
	if err != nil {
		log.Printf("Failed to list tags: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve tags"})
		return
	}

	response := make([]types.TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, types.NewTagResponse(tag))
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

func (h *Handler) GetTag(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tag ID"})
		return
	}

	tag, err := h.store.GetTag(id)
	if err != nil {
		log.Printf("Failed to fetch tag %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve tag"})
		return
	}

	if tag == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Tag not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": types.NewTagResponse(*tag)})
}

func (h *Handler) CreateTag(ctx *gin.Context) {
	var body TagRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	tag := models.Tag{
		Name:   body.Name,
		NoteID: body.NoteID,
	}

	if err := h.store.CreateTag(&tag); err != nil {
		if errors.Is(err, store.ErrReferential) {
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create tag: referenced note does not exist"})
			return
		}
		log.Printf("Failed to create tag: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create tag"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": types.NewTagResponse(tag)})
}

func (h *Handler) UpdateTag(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tag ID"})
		return
	}

	tag, err := h.store.GetTag(id)
	if err != nil {
		log.Printf("Failed to fetch tag %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve tag"})
		return
	}

	if tag == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Tag not found"})
		return
	}

	var body TagRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	tag.Name = body.Name
	tag.NoteID = body.NoteID

	if err := h.store.UpdateTag(tag); err != nil {
		if errors.Is(err, store.ErrReferential) {
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update tag: referenced note does not exist"})
			return
		}
		log.Printf("Failed to update tag %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update tag"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": types.NewTagResponse(*tag)})
}

func (h *Handler) DeleteTag(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tag ID"})
		return
	}

	tag, err := h.store.GetTag(id)
	if err != nil {
		log.Printf("Failed to fetch tag %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve tag"})
		return
	}

	if tag == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Tag not found"})
		return
	}

	if err := h.store.DeleteTag(tag); err != nil {
		log.Printf("Failed to delete tag %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete tag"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
