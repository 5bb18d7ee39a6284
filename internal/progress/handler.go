package progress

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenplot/internal/feed"
	"greenplot/internal/identity"
	"greenplot/internal/upload"
	"greenplot/pkg/models"
)

// Handler exposes submission and history over HTTP. Photo handling belongs
// to the upload saver and identity to the identity helper; this layer only
// wires them to the ledger and reports the saved/not-saved outcome.
type Handler struct {
	Ledger *Ledger
	Photos *upload.Saver
	Hub    *feed.Hub
}

func NewHandler(ledger *Ledger, photos *upload.Saver, hub *feed.Hub) *Handler {
	return &Handler{Ledger: ledger, Photos: photos, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/progress", h.history)
	rg.POST("/progress", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	photoRef := ""
	if file, err := c.FormFile("photo"); err == nil {
		photoRef, _ = h.Photos.Save(file)
	}

	entry := models.ProgressEntry{
		Region:         c.PostForm("region"),
		Soil:           c.PostForm("soil"),
		AreaSqM:        c.PostForm("area_sqm"),
		Note:           c.PostForm("note"),
		PhotoReference: photoRef,
		UserID:         identity.UserID(c),
	}

	saved, ok := h.Ledger.Append(c.Request.Context(), entry)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"saved": false, "reason": "photo missing or rejected"})
		return
	}

	if h.Hub != nil {
		ev := feed.NewEntryEvent(saved)
		go h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusOK, gin.H{"saved": true, "entry": saved})
}

func (h *Handler) history(c *gin.Context) {
	entries := h.Ledger.ForUser(c.Request.Context(), identity.UserID(c))
	c.JSON(http.StatusOK, gin.H{
		"total":   len(entries),
		"entries": entries,
		"badges":  BadgesFor(len(entries)),
	})
}
