package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chemkit/inchi-go/pkg/inchi"
	"github.com/chemkit/inchi-go/pkg/molecule"
)

type inchiRequest struct {
	Molecule json.RawMessage `json:"molecule" binding:"required"`
	Options  string          `json:"options,omitempty"`
}

type keyRequest struct {
	InChI  string `json:"inchi"`
	Extra1 bool   `json:"extra1,omitempty"`
	Extra2 bool   `json:"extra2,omitempty"`
}

type structureRequest struct {
	InChI   string `json:"inchi"`
	Options string `json:"options,omitempty"`
}

type structureResponse struct {
	Molecule *molecule.Molecule `json:"molecule"`
	Formula  string             `json:"formula"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, s.Service.Version())
}

func (s *Server) handleInChI(c *gin.Context) {
	var req inchiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var mol molecule.Molecule
	if err := json.Unmarshal(req.Molecule, &mol); err != nil {
		s.fail(c, errors.Join(inchi.ErrInvalidInput, err))
		return
	}
	res, err := s.Service.Generate(c.Request.Context(), &mol, req.Options)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleKey(c *gin.Context) {
	var req keyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	k, err := s.Service.Key(c.Request.Context(), req.InChI, inchi.KeyOptions{Extra1: req.Extra1, Extra2: req.Extra2})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, k)
}

func (s *Server) handleStructure(c *gin.Context) {
	var req structureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mol, err := s.Service.Parse(c.Request.Context(), req.InChI, req.Options)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, structureResponse{Molecule: mol, Formula: mol.Formula()})
}

func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	body := gin.H{"error": err.Error()}
	var e *inchi.Error
	if errors.As(err, &e) {
		body["code"] = int(e.Code)
		if e.Log != "" {
			body["log"] = e.Log
		}
	}
	var ke *inchi.KeyError
	if errors.As(err, &ke) {
		body["code"] = int(ke.Code)
	}
	c.JSON(StatusFor(err), body)
}

// StatusFor maps a service error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, inchi.ErrBusy),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, inchi.ErrNotBuilt):
		return http.StatusNotImplemented
	case errors.Is(err, inchi.ErrInvalidInput),
		inchi.IsInChIError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
