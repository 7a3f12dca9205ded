package mux

import "net/http"

type tableResponse struct {
	UUID string `json:"uuid"`
}

type tableListResponse struct {
	Tables []string `json:"tables"`
}

// postTable opens a new table
func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, tableResponse{
			UUID: m.pitBoss.CreateTable(),
		})
	}
}

// getTable lists the open tables
func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, tableListResponse{
			Tables: m.pitBoss.TableUUIDs(),
		})
	}
}
