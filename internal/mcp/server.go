// Package mcp exposes the scale computation pipeline as MCP tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/domain"
	"github.com/clinical-scales-server/internal/service"
)

// Server represents the clinical scales MCP server
type Server struct {
	mcpServer *mcp.Server
	pipeline  *service.Pipeline
	catalog   domain.CatalogStore
	logger    *logrus.Logger
}

// NewServer creates a new MCP server instance over the computation pipeline
func NewServer(pipeline *service.Pipeline, catalog domain.CatalogStore, logger *logrus.Logger) (*Server, error) {
	serverInfo := &mcp.Implementation{
		Name:    "clinical-scales-server",
		Version: "v0.1.0",
	}

	server := &Server{
		mcpServer: mcp.NewServer(serverInfo, nil),
		pipeline:  pipeline,
		catalog:   catalog,
		logger:    logger,
	}

	if err := server.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return server, nil
}

// Start runs the MCP server over stdio until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting clinical scales MCP server...")

	if err := s.mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// ComputeScalesParams defines parameters for the compute_scales tool
type ComputeScalesParams struct {
	Scales       []string `json:"scales"`
	Conversation string   `json:"conversation"`
	Language     string   `json:"language,omitempty"`
}

// ComputeScaleSessionParams defines parameters for the compute_scale_session tool
type ComputeScaleSessionParams struct {
	Scales         []string              `json:"scales"`
	Conversation   string                `json:"conversation"`
	PatientContext domain.PatientContext `json:"patient_context,omitempty"`
	SessionID      string                `json:"session_id"`
	Language       string                `json:"language,omitempty"`
}

// ListScalesParams defines parameters for the list_scales tool
type ListScalesParams struct{}

// ListScalesResult defines the result structure for the list_scales tool
type ListScalesResult struct {
	Scales []domain.ScaleDefinition `json:"scales"`
	Count  int                      `json:"count"`
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "compute_scales",
		Description: "Compute clinical scale scores from a doctor-patient conversation. " +
			"Extracts the required clinical variables, normalizes units and evaluates " +
			"each requested scale, returning per-scale values and interpretations.",
	}, s.handleComputeScales)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "compute_scale_session",
		Description: "Compute clinical scales for an EMR session: runs the computation " +
			"pipeline, synthesizes a cross-scale narrative interpretation grounded in " +
			"the patient context and persists the bundle under the session id.",
	}, s.handleComputeScaleSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_scales",
		Description: "List the clinical scales available in the catalog with their required variables.",
	}, s.handleListScales)

	s.logger.WithField("tool_count", 3).Info("Registered MCP tools")
	return nil
}

// handleComputeScales handles the compute_scales tool invocation
func (s *Server) handleComputeScales(ctx context.Context, req *mcp.CallToolRequest, params ComputeScalesParams) (*mcp.CallToolResult, any, error) {
	s.logger.WithFields(logrus.Fields{
		"tool":   "compute_scales",
		"scales": params.Scales,
	}).Info("Tool invoked")

	result, err := s.pipeline.ComputeScales(ctx, params.Scales, params.Conversation, params.Language)
	if err != nil {
		return s.errorResult("Scale computation failed", err), nil, nil
	}

	return s.jsonResult(result)
}

// handleComputeScaleSession handles the compute_scale_session tool invocation
func (s *Server) handleComputeScaleSession(ctx context.Context, req *mcp.CallToolRequest, params ComputeScaleSessionParams) (*mcp.CallToolResult, any, error) {
	s.logger.WithFields(logrus.Fields{
		"tool":       "compute_scale_session",
		"scales":     params.Scales,
		"session_id": params.SessionID,
	}).Info("Tool invoked")

	result, err := s.pipeline.ComputeScaleSession(ctx,
		params.Scales, params.Conversation, params.PatientContext,
		params.SessionID, params.Language)
	if err != nil {
		errResult := s.errorResult("Scale session computation failed", err)
		// A synthesis failure still returns the computed scale bundle;
		// append it so the caller keeps the scores.
		if result != nil {
			if payload, merr := json.MarshalIndent(result, "", "  "); merr == nil {
				errResult.Content = append(errResult.Content,
					&mcp.TextContent{Text: string(payload)})
				return errResult, result, nil
			}
		}
		return errResult, nil, nil
	}

	return s.jsonResult(result)
}

// handleListScales handles the list_scales tool invocation
func (s *Server) handleListScales(ctx context.Context, req *mcp.CallToolRequest, params ListScalesParams) (*mcp.CallToolResult, any, error) {
	s.logger.WithField("tool", "list_scales").Info("Tool invoked")

	scales, err := s.catalog.ListScales(ctx)
	if err != nil {
		return s.errorResult("Failed to list scales", err), nil, nil
	}

	return s.jsonResult(ListScalesResult{Scales: scales, Count: len(scales)})
}

// jsonResult wraps a value as a text content block plus structured result
func (s *Server) jsonResult(value any) (*mcp.CallToolResult, any, error) {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return s.errorResult("Failed to encode result", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(payload)},
		},
	}, value, nil
}

// errorResult creates a standardized error result for tool calls
func (s *Server) errorResult(message string, err error) *mcp.CallToolResult {
	errorText := fmt.Sprintf("Error: %s", message)
	if err != nil {
		errorText += fmt.Sprintf(" - %v", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: errorText},
		},
		IsError: true,
	}
}
