package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/rest/api"
)

type Handler struct {
	service   MessengerService
	validator Validator
}

func New(service MessengerService, validator Validator) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
	}
}

func AttachRoutes(router chi.Router, handler *Handler) {
	router.Get("/ping", handler.Ping)

	router.Route("/api/messenger", func(r chi.Router) {
		r.Post("/messages", handler.SendMessage)
		r.Get("/messages/{message_id}", handler.GetMessage)
		r.Post("/messages/{message_id}/read", handler.MarkMessageRead)
		r.Get("/conversations", handler.GetConversations)
		r.Get("/conversations/history", handler.GetHistory)
		r.Post("/conversations/open", handler.OpenConversation)
		r.Post("/conversations/read", handler.MarkConversationRead)
		r.Post("/conversations/typing", handler.AnnounceTyping)
		r.Get("/conversations/typing", handler.GetActiveTypers)
	})
}

func (h *Handler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	targetID := uuid.MustParse(req.TargetId)

	var target model.Target
	if req.TargetKind == string(model.TargetGroup) {
		target = model.GroupTarget(targetID)
	} else {
		target = model.DirectTarget(targetID)
	}

	message, err := h.service.SendMessage(r.Context(), senderID, target, req.Content)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), statusForError(err))
		return
	}

	response := api.SendMessageResponse{
		Message: toAPIMessage(*message),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessage")

	messageID, err := uuid.Parse(chi.URLParam(r, "message_id"))
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	message, err := h.service.GetMessage(r.Context(), messageID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get message: %v", err), statusForError(err))
		return
	}

	response := api.GetMessageResponse{
		Message: toAPIMessage(*message),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkMessageRead")

	messageID, err := uuid.Parse(chi.URLParam(r, "message_id"))
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	if err := h.service.MarkMessageRead(r.Context(), messageID); err != nil {
		logger.Error(fmt.Sprintf("failed to mark message read: %v", err))
		h.writeError(w, fmt.Sprintf("failed to mark message read: %v", err), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	previews, err := h.service.ConversationPreviews(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversations: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversations: %v", err), http.StatusInternalServerError)
		return
	}

	conversations := make([]api.ConversationPreview, len(previews))
	for i, preview := range previews {
		conversations[i] = toAPIPreview(preview, userID)
	}

	response := api.GetConversationsResponse{
		Conversations: conversations,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetHistory")

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	ref, err := h.refFromQuery(r, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid conversation reference: %v", err))
		h.writeError(w, fmt.Sprintf("invalid conversation reference: %v", err), http.StatusBadRequest)
		return
	}

	history, err := h.service.History(r.Context(), ref)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch history: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch history: %v", err), http.StatusInternalServerError)
		return
	}

	messages := make([]api.Message, len(*history))
	for i, msg := range *history {
		messages[i] = toAPIMessage(msg)
	}

	response := api.GetHistoryResponse{
		Messages: messages,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) OpenConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("OpenConversation")

	var req api.OpenConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	ref, err := h.refFromAPI(req.Conversation, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid conversation reference: %v", err))
		h.writeError(w, fmt.Sprintf("invalid conversation reference: %v", err), http.StatusBadRequest)
		return
	}

	opened, err := h.service.Open(r.Context(), userID, ref)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open conversation: %v", err))
		h.writeError(w, fmt.Sprintf("failed to open conversation: %v", err), statusForError(err))
		return
	}

	participants := make([]string, len(opened.Participants))
	for i, participant := range opened.Participants {
		participants[i] = participant.String()
	}

	messages := make([]api.Message, len(opened.History))
	for i, msg := range opened.History {
		messages[i] = toAPIMessage(msg)
	}

	response := api.OpenConversationResponse{
		Participants:     participants,
		Messages:         messages,
		UnreadBeforeOpen: opened.UnreadBeforeOpen,
		Archived:         opened.Archived,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) MarkConversationRead(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkConversationRead")

	var req api.MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	ref, err := h.refFromAPI(req.Conversation, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid conversation reference: %v", err))
		h.writeError(w, fmt.Sprintf("invalid conversation reference: %v", err), http.StatusBadRequest)
		return
	}

	transitioned, err := h.service.MarkConversationRead(r.Context(), userID, ref)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to mark conversation read: %v", err))
		h.writeError(w, fmt.Sprintf("failed to mark conversation read: %v", err), statusForError(err))
		return
	}

	response := api.MarkReadResponse{
		Transitioned: transitioned,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) AnnounceTyping(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AnnounceTyping")

	var req api.TypingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	ref, err := h.refFromAPI(req.Conversation, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid conversation reference: %v", err))
		h.writeError(w, fmt.Sprintf("invalid conversation reference: %v", err), http.StatusBadRequest)
		return
	}

	h.service.AnnounceTyping(ref, userID)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetActiveTypers(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetActiveTypers")

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	ref, err := h.refFromQuery(r, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid conversation reference: %v", err))
		h.writeError(w, fmt.Sprintf("invalid conversation reference: %v", err), http.StatusBadRequest)
		return
	}

	typers := h.service.ActiveTypers(ref)

	userIDs := make([]string, len(typers))
	for i, typer := range typers {
		userIDs[i] = typer.String()
	}

	response := api.GetTypingResponse{
		UserIds: userIDs,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) callerID(r *http.Request) (uuid.UUID, bool) {
	raw, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func (h *Handler) refFromAPI(ref api.ConversationRef, callerID uuid.UUID) (model.ConversationRef, error) {
	if err := h.validator.ValidateConversationRef(&ref); err != nil {
		return model.ConversationRef{}, err
	}

	id := uuid.MustParse(ref.Id)

	if ref.Kind == string(model.ConversationGroup) {
		return model.GroupConversation(id), nil
	}

	return model.DirectConversation(callerID, id), nil
}

func (h *Handler) refFromQuery(r *http.Request, callerID uuid.UUID) (model.ConversationRef, error) {
	return h.refFromAPI(api.ConversationRef{
		Kind: r.URL.Query().Get("kind"),
		Id:   r.URL.Query().Get("id"),
	}, callerID)
}

func toAPIMessage(msg model.Message) api.Message {
	return api.Message{
		Id:         msg.ID.String(),
		SenderId:   msg.SenderID.String(),
		TargetKind: string(msg.Target.Kind),
		TargetId:   msg.Target.ID.String(),
		Content:    msg.Content,
		Read:       msg.Read,
		SentAt:     msg.SentAt.Format(time.RFC3339),
	}
}

func toAPIPreview(preview model.ConversationPreview, userID uuid.UUID) api.ConversationPreview {
	out := api.ConversationPreview{
		Kind:        string(preview.Ref.Kind),
		UnreadCount: preview.UnreadCount,
	}

	if preview.Ref.Kind == model.ConversationGroup {
		out.Id = preview.Ref.GroupID.String()
	} else {
		out.Id = preview.Ref.Counterpart(userID).String()
	}

	if preview.Name != "" {
		name := preview.Name
		out.Name = &name
	}

	if preview.AvatarURL != "" {
		avatarURL := preview.AvatarURL
		out.AvatarUrl = &avatarURL
	}

	if preview.LastMessage != nil {
		lastMessage := toAPIMessage(*preview.LastMessage)
		out.LastMessage = &lastMessage
	}

	return out
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidMessage):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrGroupNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
