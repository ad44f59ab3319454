// Package http provides http transport for classes
package http

import (
	stdhttp "net/http"

	"tutorhub/internal/modkit/httpkit"
	"tutorhub/internal/services/api/classes/domain"
	svc "tutorhub/internal/services/api/classes/service"
)

// Register mounts classes endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/tutors/{discordID}", h.tutorClasses)
	httpkit.PostJSON[domain.CreateClassInput](r, "/", h.create)

	r.Route("/{classID}", func(rr httpkit.Router) {
		rr.Use(RequireClass(s))
		httpkit.Get(rr, "/", h.get)
		httpkit.Get(rr, "/events", h.history)
		httpkit.PatchJSON[domain.UpdateStatusInput](rr, "/status", h.updateStatus)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route GET /classes/tutors/{discordID} Classes classesTutor
// @Summary Open classes of a tutor from the last ten days on
// @Tags Classes
// @Produce json
// @Param discordID path string true "Tutor Discord handle"
// @Success 200 {array} domain.TutorClass "ok"
// @Failure 400 {object} httpkit.Envelope "query failed"
// @Router /classes/tutors/{discordID} [get]
func (h *handlers) tutorClasses(r *stdhttp.Request) (any, error) {
	return h.svc.TutorClasses(r.Context(), httpkit.Param(r, "discordID"))
}

// swagger:route POST /classes Classes classesCreate
// @Summary Schedule a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body domain.CreateClassInput true "Class"
// @Success 201 {object} domain.Class "created"
// @Failure 422 {object} httpkit.Envelope "unknown course"
// @Router /classes [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateClassInput) (any, error) {
	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(c), nil
}

// swagger:route GET /classes/{classID} Classes classesGet
// @Summary Get a class
// @Tags Classes
// @Produce json
// @Param classID path int true "Class id"
// @Success 200 {object} domain.Class "ok"
// @Failure 412 {object} httpkit.Envelope "no such class"
// @Router /classes/{classID} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), ClassID(r))
}

// swagger:route GET /classes/{classID}/events Classes classesEvents
// @Summary Journal of a class, newest first
// @Tags Classes
// @Produce json
// @Param classID path int true "Class id"
// @Success 200 {array} domain.Event "ok"
// @Failure 412 {object} httpkit.Envelope "no such class"
// @Router /classes/{classID}/events [get]
func (h *handlers) history(r *stdhttp.Request) (any, error) {
	return h.svc.History(r.Context(), ClassID(r))
}

// swagger:route PATCH /classes/{classID}/status Classes classesStatus
// @Summary Change the status of a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param classID path int true "Class id"
// @Param payload body domain.UpdateStatusInput true "Status"
// @Success 200 {object} domain.Class "ok"
// @Failure 412 {object} httpkit.Envelope "no such class"
// @Router /classes/{classID}/status [patch]
func (h *handlers) updateStatus(r *stdhttp.Request, in domain.UpdateStatusInput) (any, error) {
	return h.svc.UpdateStatus(r.Context(), ClassID(r), in)
}
