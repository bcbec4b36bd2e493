package controller

import (
	"tutorhub_backend/internal/service"
	"tutorhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ChatController 学习助手 AI 聊天
type ChatController struct {
	AIService *service.AIService
}

func NewChatController(aiService *service.AIService) *ChatController {
	return &ChatController{AIService: aiService}
}

type ChatRequest struct {
	Prompt  string                  `json:"prompt" binding:"required"`
	History []service.AIChatMessage `json:"history"`
}

// @Summary 学习助手对话（流式）
// @Description SSE 流式返回 AI 回答 连接需通过 token query 参数鉴权
// @Tags 学习助手
// @Accept json
// @Produce text/event-stream
// @Security BearerAuth
// @Param request body ChatRequest true "对话内容"
// @Success 200 {string} string "SSE 流"
// @Router /api/chat/stream [post]
func (c *ChatController) Stream(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stream, errChan := c.AIService.ChatStream(req.Prompt, req.History)

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Transfer-Encoding", "chunked")

	for content := range stream {
		ctx.SSEvent("message", content)
		ctx.Writer.Flush()
	}

	if err := <-errChan; err != nil {
		ctx.SSEvent("error", err.Error())
		ctx.Writer.Flush()
	}

	ctx.SSEvent("end", "done")
	ctx.Writer.Flush()
}
