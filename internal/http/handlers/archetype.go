package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/team-alchemy-backend/internal/archetypes"
	"github.com/yungbote/team-alchemy-backend/internal/http/response"
)

type ArchetypeHandler struct{}

func NewArchetypeHandler() *ArchetypeHandler { return &ArchetypeHandler{} }

// GET /archetypes/
func (h *ArchetypeHandler) List(c *gin.Context) {
	defs := archetypes.Definitions()
	out := make(map[string]archetypes.Definition, len(defs))
	for _, d := range defs {
		out[string(d.Type)] = d
	}
	response.RespondOK(c, gin.H{"archetypes": out})
}

// GET /archetypes/:type
func (h *ArchetypeHandler) Get(c *gin.Context) {
	raw := c.Param("type")
	def, ok := archetypes.Lookup(raw)
	if !ok {
		response.RespondErrorf(c, http.StatusNotFound, response.CodeNotFound, "Archetype type '%s' not found", raw)
		return
	}
	response.RespondOK(c, def)
}
