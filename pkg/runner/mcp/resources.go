package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	fieldsURI     = "dreams://fields"
	entriesPrefix = "dreams://entries/"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerFieldsResource(srv, svc)
	registerEntryTemplate(srv, svc)
}

func registerFieldsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		fieldsURI,
		"Dream Fields",
		mcp.WithResourceDescription("The fields a dream entry can carry, in form order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		fields := svc.Fields()
		payload := map[string]any{
			"fields": fields,
			"count":  len(fields),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		entriesPrefix+"{title}",
		"Dream Entry",
		mcp.WithTemplateDescription("The stored document for a dream entry."),
		mcp.WithTemplateMIMEType("text/markdown"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		title, err := titleFromURI(request.Params.URI)
		if err != nil {
			return nil, err
		}
		doc, err := svc.ReadEntry(ctx, title)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/markdown",
				Text:     doc.String(),
			},
		}, nil
	})
}

func titleFromURI(uri string) (string, error) {
	raw, ok := strings.CutPrefix(uri, entriesPrefix)
	if !ok || raw == "" {
		return "", fmt.Errorf("entry title is required")
	}
	title, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("invalid entry title %q: %w", raw, err)
	}
	return title, nil
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
