package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleListContacts(c *gin.Context) {
	userID, _ := UserIDFromContext(c.Request.Context())

	list, err := s.deps.Contacts.List(c.Request.Context(), userID)
	if err != nil {
		s.writeError(c, "contacts.list", err)
		return
	}
	if list == nil {
		list = []*models.Contact{}
	}

	c.JSON(http.StatusOK, list)
}

func (s *Server) handleCreateContact(c *gin.Context) {
	userID, _ := UserIDFromContext(c.Request.Context())

	var in models.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}

	contact, err := s.deps.Contacts.Create(c.Request.Context(), userID, in)
	if err != nil {
		s.writeError(c, "contacts.create", err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (s *Server) handleUpdateContact(c *gin.Context) {
	userID, _ := UserIDFromContext(c.Request.Context())

	// An absent body is an empty patch.
	var patch models.ContactPatch
	if err := c.ShouldBindJSON(&patch); err != nil && !errors.Is(err, io.EOF) {
		badBody(c)
		return
	}

	contact, err := s.deps.Contacts.Update(c.Request.Context(), userID, c.Param("id"), patch)
	if err != nil {
		s.writeError(c, "contacts.update", err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (s *Server) handleDeleteContact(c *gin.Context) {
	userID, _ := UserIDFromContext(c.Request.Context())

	msg, err := s.deps.Contacts.Delete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		s.writeError(c, "contacts.delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": msg})
}
