package handlers

import (
	"net/http"
	"time"

	"omahaestates/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminSearchLogHandler struct{}

func NewAdminSearchLogHandler() *AdminSearchLogHandler {
	return &AdminSearchLogHandler{}
}

func (h *AdminSearchLogHandler) List(c *gin.Context) {
	logs, err := services.SearchLogs()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load search logs.")
		return
	}

	Render(c, http.StatusOK, "admin/search_log_list.html", gin.H{
		"Title": "Search logs",
		"Logs":  logs,
	})
}

// Export streams every search log row as CSV.
func (h *AdminSearchLogHandler) Export(c *gin.Context) {
	logs, err := services.SearchLogs()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load search logs.")
		return
	}

	filename := "search_logs_" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := services.WriteSearchLogCSV(c.Writer, logs); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
