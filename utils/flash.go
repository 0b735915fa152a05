package utils

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash is a one-shot notice shown on the next rendered page.
// Category maps to the alert style: "success" or "danger".
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

func SetFlash(c *gin.Context, message, category string) {
	payload, err := json.Marshal(Flash{Message: message, Category: category})
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, base64.URLEncoding.EncodeToString(payload), 60, "/", "", false, true)
}

// GetFlash reads and clears the pending flash, if any.
func GetFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	payload, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(payload, &f); err != nil {
		return nil
	}
	return &f
}
