package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/casedesk-backend/internal/service/caseflow"
)

type addTaskRequest struct {
	Title   string     `json:"title"`
	DueDate *time.Time `json:"dueDate"`
}

type setDoneRequest struct {
	Done bool `json:"done"`
}

type addNoteRequest struct {
	Text string `json:"text"`
}

// ListTasks handles GET /cases/{id}/tasks.
func (h *CaseHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	tasks, err := h.svc.ListTasks(r.Context(), id)
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponses(tasks))
}

// AddTask handles POST /cases/{id}/tasks.
func (h *CaseHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	var req addTaskRequest
	if err := decode(w, r, &req); err != nil {
		h.out.error(w, r, err)
		return
	}
	task, err := h.svc.AddTask(r.Context(), id, caseflow.TaskInput{Title: req.Title, DueDate: req.DueDate})
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(task))
}

// SetTaskDone handles PUT /cases/{id}/tasks/{taskID}/done. Setting the
// current value again is a no-op.
func (h *CaseHandler) SetTaskDone(w http.ResponseWriter, r *http.Request) {
	caseID, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	taskID, err := uuidParam(r, "taskID")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	var req setDoneRequest
	if err := decode(w, r, &req); err != nil {
		h.out.error(w, r, err)
		return
	}
	task, err := h.svc.SetTaskDone(r.Context(), caseID, taskID, req.Done)
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// DeleteTask handles DELETE /cases/{id}/tasks/{taskID}.
func (h *CaseHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	caseID, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	taskID, err := uuidParam(r, "taskID")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	if err := h.svc.DeleteTask(r.Context(), caseID, taskID); err != nil {
		h.out.error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListNotes handles GET /cases/{id}/notes.
func (h *CaseHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	notes, err := h.svc.ListNotes(r.Context(), id)
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	out := make([]noteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	writeJSON(w, http.StatusOK, out)
}

// AddNote handles POST /cases/{id}/notes.
func (h *CaseHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	var req addNoteRequest
	if err := decode(w, r, &req); err != nil {
		h.out.error(w, r, err)
		return
	}
	note, err := h.svc.AddNote(r.Context(), id, req.Text)
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}
