package delivery

import (
	"errors"
	"net/http"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionHandler exposes the interactive list/edit/delete flow. Every
// successful call answers with the session view so the client can render
// the next screen from it.
type SessionHandler struct {
	sessions  *session.Manager
	presenter *Presenter
	log       *logrus.Logger
}

func NewSessionHandler(sessions *session.Manager, presenter *Presenter, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		presenter: presenter,
		log:       logger,
	}
}

func (h *SessionHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/sessions", h.OpenSession)

	s := router.Group("/sessions/:sid")
	{
		s.GET("", h.GetSession)
		s.DELETE("", h.CloseSession)
		s.POST("/create", h.Create)
		s.POST("/edit/:id", h.Edit)
		s.PATCH("/draft", h.UpdateDraft)
		s.POST("/draft/materials", h.AddMaterial)
		s.PUT("/draft/materials/:key", h.ReplaceMaterial)
		s.DELETE("/draft/materials/:key", h.RemoveMaterial)
		s.POST("/save", h.Save)
		s.POST("/cancel", h.Cancel)
		s.POST("/delete/:id", h.RequestDelete)
		s.POST("/confirm", h.ConfirmDelete)
		s.POST("/decline", h.DeclineDelete)
	}
}

func (h *SessionHandler) lookup(c *gin.Context) (*session.Session, bool) {
	sid := c.Param("sid")
	s, err := h.sessions.Get(sid)
	if err != nil {
		h.log.Warnf("Unknown session %s", sid)
		FailWithError(c, "Failed to load session", err)
		return nil, false
	}
	return s, true
}

func (h *SessionHandler) respond(c *gin.Context, status int, message string, s *session.Session) {
	SuccessResponse(c, status, message, h.presenter.Session(s.View()))
}

func (h *SessionHandler) OpenSession(c *gin.Context) {
	s := h.sessions.Open()
	h.respond(c, http.StatusCreated, "Session opened", s)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, "Session retrieved successfully", s)
}

func (h *SessionHandler) CloseSession(c *gin.Context) {
	if err := h.sessions.Close(c.Param("sid")); err != nil {
		FailWithError(c, "Failed to close session", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Session closed", nil)
}

func (h *SessionHandler) Create(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := s.Create(); err != nil {
		h.log.Warnf("Session %s: create failed: %v", s.ID(), err)
		FailWithError(c, "Failed to start new product", err)
		return
	}
	h.respond(c, http.StatusOK, "Editing new product", s)
}

func (h *SessionHandler) Edit(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := s.Edit(c.Param("id")); err != nil {
		h.log.Warnf("Session %s: edit of product %s failed: %v", s.ID(), c.Param("id"), err)
		FailWithError(c, "Failed to edit product", err)
		return
	}
	h.respond(c, http.StatusOK, "Editing product", s)
}

func (h *SessionHandler) UpdateDraft(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	var input DraftFieldsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	fields, err := input.toFields()
	if err != nil {
		FailWithError(c, "Failed to update draft", err)
		return
	}
	if err := s.SetFields(fields); err != nil {
		FailWithError(c, "Failed to update draft", err)
		return
	}
	h.respond(c, http.StatusOK, "Draft updated", s)
}

func (h *SessionHandler) AddMaterial(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	m, err := s.AddMaterial()
	if err != nil {
		FailWithError(c, "Failed to add material", err)
		return
	}
	h.log.Debugf("Session %s: added material %s", s.ID(), m.Key)
	h.respond(c, http.StatusCreated, "Material added", s)
}

func (h *SessionHandler) ReplaceMaterial(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	key, err := domain.ParseMaterialKey(c.Param("key"))
	if err != nil {
		FailWithError(c, "Failed to update material", err)
		return
	}
	var input MaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	input.Key = ""
	m, err := input.toMaterial(h.log)
	if err != nil {
		FailWithError(c, "Failed to update material", err)
		return
	}
	if err := s.ReplaceMaterial(key, m); err != nil {
		FailWithError(c, "Failed to update material", err)
		return
	}
	h.respond(c, http.StatusOK, "Material updated", s)
}

func (h *SessionHandler) RemoveMaterial(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	key, err := domain.ParseMaterialKey(c.Param("key"))
	if err != nil {
		FailWithError(c, "Failed to remove material", err)
		return
	}
	if err := s.RemoveMaterial(key); err != nil {
		FailWithError(c, "Failed to remove material", err)
		return
	}
	h.respond(c, http.StatusOK, "Material removed", s)
}

// Save answers 400 with the session view when validation fails, so the
// form can show the per-field errors next to the kept draft.
func (h *SessionHandler) Save(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	product, err := s.Save()
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			h.log.Infof("Session %s: save rejected: %v", s.ID(), verrs)
			c.JSON(http.StatusBadRequest, Response{
				Status:  "Fail",
				Message: "Failed to save product: validation failed",
				Data:    h.presenter.Session(s.View()),
			})
			return
		}
		h.log.Warnf("Session %s: save failed: %v", s.ID(), err)
		FailWithError(c, "Failed to save product", err)
		return
	}
	h.log.Infof("Session %s: product %s saved", s.ID(), product.ID)
	h.respond(c, http.StatusOK, "Product saved", s)
}

func (h *SessionHandler) Cancel(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := s.Cancel(); err != nil {
		FailWithError(c, "Failed to cancel", err)
		return
	}
	h.respond(c, http.StatusOK, "Draft discarded", s)
}

func (h *SessionHandler) RequestDelete(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := s.RequestDelete(c.Param("id")); err != nil {
		FailWithError(c, "Failed to request delete", err)
		return
	}
	h.respond(c, http.StatusOK, "Are you sure you want to delete this product? This action cannot be undone.", s)
}

func (h *SessionHandler) ConfirmDelete(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := s.ConfirmDelete(); err != nil {
		FailWithError(c, "Failed to delete product", err)
		return
	}
	h.respond(c, http.StatusOK, "Product deleted", s)
}

func (h *SessionHandler) DeclineDelete(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := s.DeclineDelete(); err != nil {
		FailWithError(c, "Failed to decline delete", err)
		return
	}
	h.respond(c, http.StatusOK, "Delete cancelled", s)
}
