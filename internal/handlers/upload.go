package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/saswattulo/Note-App-VueJs/internal/analytics"
	"github.com/saswattulo/Note-App-VueJs/internal/models"
)

// Upload accepts one multipart CSV file, saves it under its original name
// (last write wins on collision), computes the summary statistics and records
// the run. Validation failures reject the request before anything is written.
func (h *Handler) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "No file provided"})
		return
	}

	if file.Filename == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "No file selected"})
		return
	}

	dst := filepath.Join(h.cfg.Upload.Dir, filepath.Base(file.Filename))

	if err := ctx.SaveUploadedFile(file, dst); err != nil {
		log.Printf("Failed to save uploaded file %q: %v", file.Filename, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save uploaded file"})
		return
	}

	f, err := os.Open(dst)
	if err != nil {
		log.Printf("Failed to reopen uploaded file %q: %v", dst, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to read uploaded file"})
		return
	}
	defer f.Close()

	records, err := analytics.ReadCSV(f)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("File processing error: %v", err)})
		return
	}

	summary, err := analytics.Summarize(records)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Analytics processing error: %v", err)})
		return
	}

	encoded, err := json.Marshal(summary)
	if err != nil {
		log.Printf("Failed to encode summary for %q: %v", file.Filename, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record upload"})
		return
	}

	upload := models.Upload{
		Filename: filepath.Base(file.Filename),
		Size:     file.Size,
		Summary:  encoded,
	}

	if err := h.store.CreateUpload(&upload); err != nil {
		log.Printf("Failed to record upload %q: %v", file.Filename, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record upload"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":              "success",
		"salary_distribution": summary.SalaryDistribution,
		"age_distribution":    summary.AgeDistribution,
		"joining_trend":       summary.JoiningTrend,
	})
}
