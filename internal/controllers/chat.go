package controllers

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/assistente-financeiro/painel/internal/forms"
	"github.com/assistente-financeiro/painel/internal/httputil"
	"github.com/assistente-financeiro/painel/internal/models"
)

// historyLimit is how many history entries a conversation keeps. Older
// entries roll off so the prompt sent upstream stays bounded.
const historyLimit = 10

// chatLog keeps the rolling history of every open chat conversation, in
// memory only. A restart forgets all conversations, matching how the chat
// widget forgets them on reload.
type chatLog struct {
	mu            sync.Mutex
	conversations map[string][]string
}

func newChatLog() *chatLog {
	return &chatLog{conversations: make(map[string][]string)}
}

// open starts a new conversation and returns its ID.
func (l *chatLog) open() string {
	id := uuid.NewString()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.conversations[id] = nil

	return id
}

// history returns a copy of the conversation's entries.
func (l *chatLog) history(id string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.conversations[id]
	copied := make([]string, len(entries))
	copy(copied, entries)

	return copied
}

// record appends a question and its answer to the conversation, trimming to
// the newest entries.
func (l *chatLog) record(id, question, answer string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := append(l.conversations[id], "Usuário: "+question, "IA: "+answer)
	if len(entries) > historyLimit {
		entries = entries[len(entries)-historyLimit:]
	}

	l.conversations[id] = entries
}

// clear forgets a conversation.
func (l *chatLog) clear(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.conversations, id)
}

// RegisterChatRoutes registers the AI chat endpoints.
func (ctrl *Controller) RegisterChatRoutes(r *gin.RouterGroup) {
	r.POST("/conversar", ctrl.Converse)
	r.POST("/responder", ctrl.Answer)
	r.POST("/responder-simples", ctrl.AnswerSimple)
	r.DELETE("/conversa/:id", ctrl.EndConversation)
	r.GET("/perguntas-rapidas", ctrl.GetQuickQuestions)
	r.GET("/status", ctrl.GetAssistantStatus)
	r.GET("/ultima-mensagem", ctrl.GetLastMessage)
	r.DELETE("/ultima-mensagem", ctrl.ClearLastMessage)
}

// ChatRequest is the payload of the conversation endpoints.
type ChatRequest struct {
	Question       string `json:"pergunta"`
	AccountID      uint64 `json:"contaId,omitempty"`
	ConversationID string `json:"conversaId,omitempty"`
}

// ChatResponse is the answer of the conversation endpoints. The conversation
// ID must be sent back on the next message to keep the history.
type ChatResponse struct {
	ConversationID string `json:"conversaId,omitempty"`
	Answer         string `json:"resposta"`
}

func (ctrl *Controller) bindChat(c *gin.Context) (ChatRequest, bool) {
	var request ChatRequest
	if err := httputil.BindData(c, &request); err != nil {
		return ChatRequest{}, false
	}

	if strings.TrimSpace(request.Question) == "" {
		abortValidation(c, forms.Errors{"pergunta": "campo obrigatório"})
		return ChatRequest{}, false
	}

	return request, true
}

// @Summary		Converse
// @Description	Sends a chat message with the rolling conversation history. Omitting conversaId starts a new conversation.
// @Tags			Chat
// @Produce		json
// @Success		200		{object}	ChatResponse
// @Failure		400		{object}	ValidationResponse
// @Failure		504		{object}	httputil.HTTPError
// @Param			message	body		ChatRequest	true	"Chat message"
// @Router			/v1/chat/conversar [post]
func (ctrl *Controller) Converse(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	request, ok := ctrl.bindChat(c)
	if !ok {
		return
	}

	if request.ConversationID == "" {
		request.ConversationID = ctrl.chats.open()
	}

	answer, err := ctrl.upstream.Converse(c.Request.Context(), models.Prompt{
		Prompt:    request.Question,
		AccountID: request.AccountID,
		History:   ctrl.chats.history(request.ConversationID),
	})
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	ctrl.chats.record(request.ConversationID, request.Question, answer)

	c.JSON(http.StatusOK, ChatResponse{
		ConversationID: request.ConversationID,
		Answer:         answer,
	})
}

// @Summary		Answer
// @Description	Answers a single question with optional account context, without conversation history
// @Tags			Chat
// @Produce		json
// @Success		200		{object}	ChatResponse
// @Failure		400		{object}	ValidationResponse
// @Param			message	body		ChatRequest	true	"Question"
// @Router			/v1/chat/responder [post]
func (ctrl *Controller) Answer(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	request, ok := ctrl.bindChat(c)
	if !ok {
		return
	}

	answer, err := ctrl.upstream.Answer(c.Request.Context(), models.Prompt{
		Prompt:    request.Question,
		AccountID: request.AccountID,
	})
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Answer: answer})
}

// @Summary		Answer simple
// @Description	Answers a single question without any account or conversation context
// @Tags			Chat
// @Produce		json
// @Success		200		{object}	ChatResponse
// @Failure		400		{object}	ValidationResponse
// @Param			message	body		ChatRequest	true	"Question"
// @Router			/v1/chat/responder-simples [post]
func (ctrl *Controller) AnswerSimple(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	request, ok := ctrl.bindChat(c)
	if !ok {
		return
	}

	answer, err := ctrl.upstream.AnswerSimple(c.Request.Context(), request.Question)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Answer: answer})
}

// @Summary		End conversation
// @Description	Forgets a conversation's history
// @Tags			Chat
// @Success		204
// @Param			id	path	string	true	"ID of the conversation"
// @Router			/v1/chat/conversa/{id} [delete]
func (ctrl *Controller) EndConversation(c *gin.Context) {
	ctrl.chats.clear(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// QuickQuestionsResponse is the body of the quick questions endpoint.
type QuickQuestionsResponse struct {
	Data []string `json:"data"`
}

// @Summary		Quick questions
// @Description	Returns the suggested prompts shown in the chat widget
// @Tags			Chat
// @Produce		json
// @Success		200	{object}	QuickQuestionsResponse
// @Router			/v1/chat/perguntas-rapidas [get]
func (ctrl *Controller) GetQuickQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, QuickQuestionsResponse{Data: models.QuickQuestions})
}

// AssistantStatus reports which AI capabilities are currently reachable.
type AssistantStatus struct {
	Assistant bool `json:"assistenteFinanceiro"`
	Dynamic   bool `json:"conversaDinamica"`
}

// @Summary		Assistant status
// @Description	Probes the AI endpoints and reports which are available. Probing never fails; an unreachable assistant reports as unavailable.
// @Tags			Chat
// @Produce		json
// @Success		200	{object}	AssistantStatus
// @Router			/v1/chat/status [get]
func (ctrl *Controller) GetAssistantStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var status AssistantStatus
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		status.Assistant = ctrl.upstream.AssistantAvailable(ctx)
	}()
	go func() {
		defer wg.Done()
		status.Dynamic = ctrl.upstream.DynamicAvailable(ctx)
	}()
	wg.Wait()

	c.JSON(http.StatusOK, AssistantStatus{
		Assistant: status.Assistant,
		Dynamic:   status.Dynamic,
	})
}

// MessageResponse carries the last informational message the upstream sent.
type MessageResponse struct {
	Data string `json:"data"`
}

// @Summary		Last upstream message
// @Description	Returns the most recent informational message extracted from an upstream envelope, for toast display
// @Tags			Chat
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Router			/v1/chat/ultima-mensagem [get]
func (ctrl *Controller) GetLastMessage(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Data: ctrl.upstream.LastMessage()})
}

// @Summary		Clear last upstream message
// @Description	Clears the stored upstream message once it has been shown
// @Tags			Chat
// @Success		204
// @Router			/v1/chat/ultima-mensagem [delete]
func (ctrl *Controller) ClearLastMessage(c *gin.Context) {
	ctrl.upstream.ClearLastMessage()
	c.Status(http.StatusNoContent)
}
