package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"bilingual-todo/internal/model"
)

type relayRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Data string `json:"data"`
}

type upstreamRequest struct {
	Platform string `json:"platform"`
	From     string `json:"from"`
	To       string `json:"to"`
	Data     string `json:"data"`
}

// handleTranslate forwards a translation request to the upstream
// provider, adding the server-held bearer credential. On success the
// upstream JSON body is relayed verbatim.
func (s *Server) handleTranslate(c *gin.Context) {
	var req relayRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.From == "" || req.To == "" || req.Data == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: from, to, data"})
		return
	}

	if !model.IsValidLang(model.Lang(req.From)) || !model.IsValidLang(model.Lang(req.To)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid language code. Supported: en, ar"})
		return
	}

	if s.relay.UpstreamURL == "" || s.relay.APIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Translation service configuration error"})
		return
	}

	result, err := s.forward(c, req)
	if err != nil {
		s.log.Errorw("relay translation", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}

func (s *Server) forward(c *gin.Context, req relayRequest) ([]byte, error) {
	body, err := json.Marshal(upstreamRequest{
		Platform: "api",
		From:     req.From,
		To:       req.To,
		Data:     req.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("encode upstream request: %w", err)
	}

	upReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, s.relay.UpstreamURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	upReq.Header.Set("Accept", "application/json")
	upReq.Header.Set("Content-Type", "application/json")
	upReq.Header.Set("Authorization", "Bearer "+s.relay.APIKey)

	resp, err := s.upstream.Do(upReq)
	if err != nil {
		return nil, fmt.Errorf("call translation API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("translation API failed: %s", resp.Status)
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}
	return result, nil
}
