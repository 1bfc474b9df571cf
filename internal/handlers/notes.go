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

type NoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	UserID  uint   `json:"user_id" binding:"required"`
}

func (h *Handler) ListNotes(ctx *gin.Context) {
	notes, err := h.store.ListNotes()
	if err != nil {
		log.Printf("Failed to list notes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve notes"})
		return
	}

	response := make([]types.NoteResponse, 0, len(notes))
	for _, note := range notes {
		response = append(response, types.NewNoteResponse(note))
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

func (h *Handler) GetNote(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note ID"})
		return
	}

	note, err := h.store.GetNote(id)
	if err != nil {
		log.Printf("Failed to fetch note %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve note"})
		return
	}

	if note == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": types.NewNoteResponse(*note)})
}

func (h *Handler) CreateNote(ctx *gin.Context) {
	var body NoteRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	note := models.Note{
		Title:   body.Title,
		Content: body.Content,
		UserID:  body.UserID,
	}

	if err := h.store.CreateNote(&note); err != nil {
		if errors.Is(err, store.ErrReferential) {
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create note: referenced user does not exist"})
			return
		}
		log.Printf("Failed to create note: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create note"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": types.NewNoteResponse(note)})
}

func (h *Handler) UpdateNote(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note ID"})
		return
	}

	note, err := h.store.GetNote(id)
	if err != nil {
		log.Printf("Failed to fetch note %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve note"})
		return
	}

	if note == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
		return
	}

	var body NoteRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	note.Title = body.Title
	note.Content = body.Content
	note.UserID = body.UserID

	if err := h.store.UpdateNote(note); err != nil {
		if errors.Is(err, store.ErrReferential) {
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update note: referenced user does not exist"})
			return
		}
		log.Printf("Failed to update note %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update note"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": types.NewNoteResponse(*note)})
}

func (h *Handler) DeleteNote(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note ID"})
		return
	}

	note, err := h.store.GetNote(id)
	if err != nil {
		log.Printf("Failed to fetch note %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve note"})
		return
	}

	if note == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
		return
	}

	if err := h.store.DeleteNote(note); err != nil {
		log.Printf("Failed to delete note %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete note"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
