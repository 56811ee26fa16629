package handler

import (
	"net/http"

	"github.com/rezkam/hostitask/internal/i18n"
	mw "github.com/rezkam/hostitask/internal/infrastructure/http/middleware"
	"github.com/rezkam/hostitask/internal/infrastructure/http/response"
)

// Labels handles GET /v1/labels.
func Labels(w http.ResponseWriter, r *http.Request) {
	lang := mw.LangFromContext(r.Context())
	response.OK(w, LabelsResponse{
		Lang:   string(lang),
		Labels: i18n.Labels(lang),
	})
}
