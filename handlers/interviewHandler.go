package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mockinterview/models"
	"mockinterview/services"
	"mockinterview/services/interview"

	"github.com/gorilla/mux"
)

type CreateInterviewResponse struct {
	ID          string             `json:"id"`
	TotalSlots  int                `json:"total_slots"`
	Interviewer models.Interviewer `json:"interviewer"`
}

type TurnRequest struct {
	Response string `json:"response"`
}

type TurnResponse struct {
	Utterance string `json:"utterance"`
	Finished  bool   `json:"finished"`
	Feedback  string `json:"feedback,omitempty"`
}

type CurrentQuestionResponse struct {
	Question string `json:"question"`
}

type InterviewHandler struct {
	service *services.SessionService
}

func NewInterviewHandler(service *services.SessionService) *InterviewHandler {
	return &InterviewHandler{service: service}
}

func (h *InterviewHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/interviews", h.CreateInterview).Methods("POST")
	router.HandleFunc("/interviews/{id}", h.GetInterview).Methods("GET")
	router.HandleFunc("/interviews/{id}", h.DeleteInterview).Methods("DELETE")
	router.HandleFunc("/interviews/{id}/turns", h.AdvanceTurn).Methods("POST")
	router.HandleFunc("/interviews/{id}/question", h.GetCurrentQuestion).Methods("GET")
}

func (h *InterviewHandler) CreateInterview(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received interview creation request")

	var req models.CreateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode interview creation JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	id, session, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		log.Printf("[ERROR] Interview creation failed: %v", err)
		h.writeErrorResponse(w, statusForError(err), err.Error())
		return
	}

	response := CreateInterviewResponse{
		ID:          id,
		TotalSlots:  session.AgendaLength(),
		Interviewer: session.Interviewer(),
	}

	log.Printf("[INFO] Interview %s created successfully", id)
	h.writeJSONResponse(w, http.StatusCreated, response)
}

func (h *InterviewHandler) AdvanceTurn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	log.Printf("[INFO] Received turn request for interview %s", id)

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode turn request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	utterance, status, err := h.service.Advance(r.Context(), id, req.Response)
	if err != nil {
		log.Printf("[ERROR] Turn failed for interview %s: %v", id, err)
		h.writeErrorResponse(w, statusForError(err), err.Error())
		return
	}

	response := TurnResponse{
		Utterance: utterance,
		Finished:  status.Finished,
		Feedback:  status.Feedback,
	}

	log.Printf("[INFO] Turn completed for interview %s (cursor %d/%d)", id, status.Cursor, status.TotalSlots)
	h.writeJSONResponse(w, http.StatusOK, response)
}

func (h *InterviewHandler) GetCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	question, err := h.service.CurrentQuestion(id)
	if err != nil {
		log.Printf("[ERROR] Failed to get current question for interview %s: %v", id, err)
		h.writeErrorResponse(w, statusForError(err), err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, CurrentQuestionResponse{Question: question})
}

func (h *InterviewHandler) GetInterview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	status, err := h.service.GetStatus(id)
	if err != nil {
		log.Printf("[ERROR] Failed to get status for interview %s: %v", id, err)
		h.writeErrorResponse(w, statusForError(err), err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, status)
}

func (h *InterviewHandler) DeleteInterview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteSession(id); err != nil {
		log.Printf("[ERROR] Failed to delete interview %s: %v", id, err)
		h.writeErrorResponse(w, statusForError(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, interview.ErrInvalidConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *InterviewHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *InterviewHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
