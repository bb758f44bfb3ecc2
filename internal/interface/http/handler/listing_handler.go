package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-network/internal/interface/http/dto"
	"github.com/ignatzorin/creative-network/internal/interface/http/response"
	"github.com/ignatzorin/creative-network/internal/usecase/event"
	"github.com/ignatzorin/creative-network/internal/usecase/job"
	"github.com/ignatzorin/creative-network/internal/usecase/offering"
)

type JobHandler struct {
	jobs job.UseCases
}

func NewJobHandler(jobs job.UseCases) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) List(c *gin.Context) {
	jobs := h.jobs.List.Execute(c.Request.Context(), parseIntQuery(c, "limit", 0))
	response.Success(c, dto.ToJobResponses(jobs))
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	j, err := h.jobs.Get.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToJobResponse(j))
}

func (h *JobHandler) Create(c *gin.Context) {
	var req job.JobInput
	if !bindJSON(c, &req) {
		return
	}

	j, err := h.jobs.Create.Execute(c.Request.Context(), actorOf(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToJobResponse(j))
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req job.JobInput
	if !bindJSON(c, &req) {
		return
	}

	j, err := h.jobs.Update.Execute(c.Request.Context(), actorOf(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToJobResponse(j))
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.jobs.Delete.Execute(c.Request.Context(), actorOf(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

type EventHandler struct {
	events event.UseCases
}

func NewEventHandler(events event.UseCases) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) List(c *gin.Context) {
	events := h.events.List.Execute(c.Request.Context(), parseIntQuery(c, "limit", 0))
	response.Success(c, dto.ToEventResponses(events))
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	e, err := h.events.Get.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToEventResponse(e))
}

func (h *EventHandler) Create(c *gin.Context) {
	var req event.EventInput
	if !bindJSON(c, &req) {
		return
	}

	e, err := h.events.Create.Execute(c.Request.Context(), actorOf(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToEventResponse(e))
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req event.EventInput
	if !bindJSON(c, &req) {
		return
	}

	e, err := h.events.Update.Execute(c.Request.Context(), actorOf(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToEventResponse(e))
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.events.Delete.Execute(c.Request.Context(), actorOf(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

type ServiceHandler struct {
	services offering.UseCases
}

func NewServiceHandler(services offering.UseCases) *ServiceHandler {
	return &ServiceHandler{services: services}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req offering.ServiceInput
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.services.Create.Execute(c.Request.Context(), actorOf(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToServiceResponse(s))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Delete.Execute(c.Request.Context(), actorOf(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
