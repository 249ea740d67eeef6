package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/dreams/pkg/logging"
	"tableflip.dev/dreams/pkg/schema"
)

const createEntryTool = "create_dream_entry"

func registerTools(srv *server.MCPServer, svc *Service) {
	srv.AddTool(newCreateEntryTool(), createEntryHandler(svc))
	registerReadEntryTool(srv, svc)
}

// newCreateEntryTool declares one argument per schema field, named by the
// field id.
func newCreateEntryTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Record a dream journal entry. Every field is optional; " +
			"the title defaults to today's date and an existing entry with the same title is replaced."),
		mcp.WithString(string(schema.Content),
			mcp.Description("The dream itself, free text."),
		),
	}
	for _, f := range schema.Fields() {
		switch k := f.Kind.(type) {
		case schema.Text:
			opts = append(opts, mcp.WithString(string(f.ID), mcp.Description(f.Label)))
		case schema.Choice:
			opts = append(opts, mcp.WithString(string(f.ID),
				mcp.Description(f.Label),
				mcp.Enum(k.Options...),
			))
		case schema.Number:
			opts = append(opts, mcp.WithNumber(string(f.ID),
				mcp.Description(fmt.Sprintf("%s, a whole number from %d to %d.", f.Label, k.Min, k.Max)),
			))
		case schema.Checkbox:
			opts = append(opts, mcp.WithBoolean(string(f.ID), mcp.Description(f.Label)))
		case schema.List:
			opts = append(opts, mcp.WithArray(string(f.ID),
				mcp.Description(fmt.Sprintf("%s, a list of strings, one per %s.", f.Label, k.Item)),
			))
		default:
			logging.Warnf("mcp: field %s: unsupported kind %T, skipped", f.ID, k)
		}
	}
	return mcp.NewTool(createEntryTool, opts...)
}

func createEntryHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		opts := CreateEntryOptions{Values: map[schema.ID]string{}}

		if v, ok := args[string(schema.Content)]; ok {
			s, ok := v.(string)
			if !ok {
				return mcp.NewToolResultError("'content' must be a string."), nil
			}
			opts.Content = s
		}

		for _, f := range schema.Fields() {
			v, ok := args[string(f.ID)]
			if !ok || v == nil {
				continue
			}
			if _, isList := f.Kind.(schema.List); isList {
				items, err := stringList(v)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("'%s' %v", f.ID, err)), nil
				}
				if f.ID == schema.Emotions {
					opts.Emotions = items
				} else {
					opts.People = items
				}
				continue
			}
			raw, ok := rawValue(v)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("'%s' has unsupported type %T.", f.ID, v)), nil
			}
			opts.Values[f.ID] = raw
		}

		dto, err := svc.CreateEntry(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to record dream: %v", err)), nil
		}
		return toJSONResult(dto)
	}
}

func registerReadEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"read_dream_entry",
		mcp.WithDescription("Read a recorded dream entry by its title."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the entry, for untitled entries the date it was recorded (YYYY-MM-DD)."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title, ok := request.Params.Arguments["title"].(string)
		if !ok || title == "" {
			return mcp.NewToolResultError("'title' parameter is required and must be a non-empty string."), nil
		}
		doc, err := svc.ReadEntry(ctx, title)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(doc.String()), nil
	})
}

// rawValue turns a decoded JSON scalar into the text form accepted by the
// form state.
func rawValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	}
	return "", false
}

func stringList(v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return t, nil
	case string:
		return []string{t}, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("must contain only strings, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("must be a list of strings, got %T", v)
}

func toJSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result to JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
