package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"leadassign/internal/service"
)

type identifier struct {
	ID string `json:"id" validate:"required,uuid"`
}

type newAgent struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required"`
	Password string `json:"password" validate:"required,min=4,max=24"`
}

type updateAgent struct {
	ID       string  `param:"id" validate:"required,uuid"`
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Mobile   *string `json:"mobile"`
	IsActive *bool   `json:"isActive"`
}

// AgentHTTPHandler is http handler for the agent roster endpoint
type AgentHTTPHandler struct {
	agentSvc service.AgentService
}

// NewAgentHTTPHandler builds new AgentHTTPHandler
func NewAgentHTTPHandler(agentSvc service.AgentService) *AgentHTTPHandler {
	return &AgentHTTPHandler{agentSvc: agentSvc}
}

// GetAll gets all agents
// @Summary     Get all agents
// @Description Returns the whole roster, newest agents first
// @Tags        agents
// @Security	ApiKeyAuth
// @Produce     json
// @Success     200    {array}  model.Agent
// @Failure     401    {object} echo.HTTPError
// @Router      /api/agents [get]
func (h *AgentHTTPHandler) GetAll(c echo.Context) error {
	agents, err := h.agentSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agents)
}

// Get gets single agent by id
// @Summary     Get single agent by id
// @Description Returns single roster entry with provided id
// @Tags        agents
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Agent guid" Format(uuid)
// @Success     200    {object} model.Agent
// @Failure     404    {object} echo.HTTPError
// @Router      /api/agents/{id} [get]
func (h *AgentHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	agent, err := h.agentSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agent)
}

// Post creates new agent
// @Summary     New agent
// @Description Creates new roster entry, the roster is capped at 5 agents
// @Tags        agents
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param 		newAgent body	 newAgent true "Data for new agent"
// @Success     201    	 {object} model.Agent
// @Failure     400    	 {object} echo.HTTPError
// @Failure     409    	 {object} echo.HTTPError
// @Router      /api/agents [post]
func (h *AgentHTTPHandler) Post(c echo.Context) error {
	var na newAgent
	if err := c.Bind(&na); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&na); err != nil {
		return err
	}

	agent, err := h.agentSvc.Create(c.Request().Context(), service.NewAgent{
		Name:     na.Name,
		Email:    na.Email,
		Mobile:   na.Mobile,
		Password: na.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, agent)
}

// Put updates agent
// @Summary     Update agent
// @Description Applies a partial update to a roster entry
// @Tags        agents
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param       id          path 	 string 	 true "Agent guid" Format(uuid)
// @Param 		updateAgent body	 updateAgent true "Agent data"
// @Success     200    		{object} model.Agent
// @Failure     400    		{object} echo.HTTPError
// @Failure     404    		{object} echo.HTTPError
// @Router      /api/agents/{id} [put]
func (h *AgentHTTPHandler) Put(c echo.Context) error {
	var ua updateAgent
	if err := c.Bind(&ua); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ua); err != nil {
		return err
	}

	agent, err := h.agentSvc.Update(c.Request().Context(), service.UpdateAgent{
		ID:       ua.ID,
		Name:     ua.Name,
		Email:    ua.Email,
		Mobile:   ua.Mobile,
		IsActive: ua.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agent)
}

// DeleteByID deletes agent
// @Summary     Delete agent by id
// @Description Deletes roster entry with provided id
// @Tags        agents
// @Security	ApiKeyAuth
// @Param       id     path 	string true "Agent guid" Format(uuid)
// @Success     204    "Successful status code"
// @Failure     404    {object} echo.HTTPError
// @Router      /api/agents/{id} [delete]
func (h *AgentHTTPHandler) DeleteByID(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.agentSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Assignments reports the current per-agent assignment snapshot
// @Summary     Current assignment snapshot
// @Description Returns every agent together with its assigned customers
// @Tags        upload
// @Security	ApiKeyAuth
// @Produce     json
// @Success     200    {array}  service.AgentAssignmentsSnapshot
// @Failure     401    {object} echo.HTTPError
// @Router      /api/upload/distribution [get]
func (h *AgentHTTPHandler) Assignments(c echo.Context) error {
	snapshots, err := h.agentSvc.AssignmentsSnapshot(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snapshots)
}
