package httpd

import "net/http"

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.AdminDashboard(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) TeacherDashboard(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := queryID(w, r, "userId")
	if !ok {
		return
	}

	stats, err := h.dashboardService.TeacherDashboard(r.Context(), teacherID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
