package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"mockinterview/models"
	"mockinterview/services"

	"github.com/gorilla/mux"
)

type QuestionHandler struct {
	service *services.QuestionService
}

func NewQuestionHandler(service *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

func (h *QuestionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/questions", h.GetAllQuestions).Methods("GET")
	router.HandleFunc("/questions", h.CreateQuestion).Methods("POST")
	router.HandleFunc("/questions/search", h.SearchQuestions).Methods("GET")
	router.HandleFunc("/questions/{id}", h.GetQuestion).Methods("GET")
	router.HandleFunc("/questions/{id}", h.UpdateQuestion).Methods("PUT")
	router.HandleFunc("/questions/{id}", h.DeleteQuestion).Methods("DELETE")
}

func (h *QuestionHandler) GetAllQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.GetAllQuestions()
	if err != nil {
		log.Printf("[ERROR] Failed to get questions: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, questions)
}

func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode question creation JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	question, err := h.service.CreateQuestion(&req)
	if err != nil {
		log.Printf("[ERROR] Question creation failed: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, question)
}

func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	topicsParam := r.URL.Query().Get("topics")

	var topics []string
	for _, topic := range strings.Split(topicsParam, ",") {
		if trimmed := strings.TrimSpace(topic); trimmed != "" {
			topics = append(topics, trimmed)
		}
	}

	questions, err := h.service.SearchQuestionsByTopics(topics)
	if err != nil {
		log.Printf("[ERROR] Question search failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, questions)
}

func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := h.parseID(r)
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	question, err := h.service.GetQuestionByID(id)
	if err != nil {
		log.Printf("[ERROR] Failed to get question %d: %v", id, err)
		h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, question)
}

func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := h.parseID(r)
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.UpdateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode question update JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	question, err := h.service.UpdateQuestion(id, &req)
	if err != nil {
		log.Printf("[ERROR] Question update failed for ID %d: %v", id, err)
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := h.parseID(r)
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.DeleteQuestion(id); err != nil {
		log.Printf("[ERROR] Question deletion failed for ID %d: %v", id, err)
		h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *QuestionHandler) parseID(r *http.Request) (int, error) {
	idParam := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return 0, fmt.Errorf("invalid question ID: %s", idParam)
	}
	return id, nil
}

func (h *QuestionHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *QuestionHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
