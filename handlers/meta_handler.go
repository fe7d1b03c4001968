package handlers

import "net/http"

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// RootHandler handles GET /
func (h *MetaHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "JustPlay League Manager Backend is running"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SchemaHandler handles GET /schema
func (h *MetaHandler) SchemaHandler(w http.ResponseWriter, r *http.Request) {
	overview := jsonResponse{
		"models":  []string{"League", "Team", "Player", "Member", "Match"},
		"version": 1,
	}
	if err := writeJSON(w, http.StatusOK, overview, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
