package controllers

import (
	"net/http"
	"strconv"

	"skillbot/internal/providers"
	"skillbot/internal/services"
	"skillbot/internal/structures"
)

type AdminController struct {
	logger   providers.Logger
	admin    services.AdminServiceInterface
	topUsers int
}

func NewAdminController(conf *structures.Config, logger providers.Logger, admin services.AdminServiceInterface) *AdminController {
	return &AdminController{
		logger:   logger,
		admin:    admin,
		topUsers: conf.Limits.TopUsers,
	}
}

type broadcastRequest struct {
	Text string `json:"text"`
}

type exportResponse struct {
	Path string `json:"path"`
}

func (ac *AdminController) GetStats(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireUser(w, r)
	if !ok {
		return
	}
	report, err := ac.admin.FleetStatistics(adminID)
	if err != nil {
		writeServiceError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (ac *AdminController) GetActivity(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireUser(w, r)
	if !ok {
		return
	}
	report, err := ac.admin.Activity(adminID)
	if err != nil {
		writeServiceError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (ac *AdminController) GetAchievements(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireUser(w, r)
	if !ok {
		return
	}
	report, err := ac.admin.AchievementAdoption(adminID)
	if err != nil {
		writeServiceError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (ac *AdminController) GetTopUsers(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireUser(w, r)
	if !ok {
		return
	}
	n := ac.topUsers
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, r, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}
	top, err := ac.admin.TopUsers(adminID, n)
	if err != nil {
		writeServiceError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (ac *AdminController) Broadcast(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req broadcastRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	result, err := ac.admin.Broadcast(r.Context(), adminID, req.Text)
	if err != nil {
		writeServiceError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (ac *AdminController) Export(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireUser(w, r)
	if !ok {
		return
	}
	path, err := ac.admin.Export(adminID)
	if err != nil {
		writeServiceError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, exportResponse{Path: path})
}
