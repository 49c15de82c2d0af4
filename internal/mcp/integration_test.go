package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a3tai/mcp-uzdoc-analyzer/internal/descriptions"
)

type rpcResponse struct {
	Result struct {
		Tools []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"tools"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// roundTrip sends one JSON-RPC message through the MCP server
func roundTrip(t *testing.T, server *Server, id int, method string, params interface{}) rpcResponse {
	t.Helper()

	message, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	reply := server.mcpServer.HandleMessage(context.Background(), message)
	require.NotNil(t, reply)

	data, err := json.Marshal(reply)
	require.NoError(t, err)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(data, &resp), string(data))
	return resp
}

func TestServerToolsRegistration(t *testing.T) {
	server, _ := newTestServer(t)

	resp := roundTrip(t, server, 1, "tools/list", map[string]interface{}{})
	require.Nil(t, resp.Error)

	var names []string
	for _, tool := range resp.Result.Tools {
		names = append(names, tool.Name)
		assert.Equal(t, descriptions.GetToolDescription(tool.Name), tool.Description)
	}
	sort.Strings(names)

	want := descriptions.GetAllToolNames()
	sort.Strings(want)
	assert.Equal(t, want, names)
}

func TestServerIntegration_CallTools(t *testing.T) {
	server, dir := newTestServer(t)
	writeDocument(t, dir, "kirish/buyruq.txt", urgentOrder)

	tests := []struct {
		tool    string
		args    map[string]interface{}
		want    string
		isError bool
	}{
		{tool: ToolAnalyze, args: map[string]interface{}{"text": urgentOrder}, want: "Urgency: High"},
		{tool: ToolCorrect, args: map[string]interface{}{"text": "xujjat tayyor"}, want: "Hujjat tayyor"},
		{tool: ToolAnalyzeFile, args: map[string]interface{}{"path": "kirish/buyruq.txt"}, want: "Sentiment: Urgent"},
		{tool: ToolAnalyzeDirectory, args: map[string]interface{}{"directory": dir}, want: "1 analyzed"},
		{tool: ToolValidateFile, args: map[string]interface{}{"path": "kirish/buyruq.txt"}, want: "is valid and readable"},
		{tool: ToolSearchDirectory, args: map[string]interface{}{"query": "buyruq"}, want: "Found 1 document(s)"},
		{tool: ToolServerInfo, args: map[string]interface{}{}, want: "Server Information"},
		{tool: ToolAnalyze, args: map[string]interface{}{"text": ""}, want: "text cannot be empty", isError: true},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.tool, i), func(t *testing.T) {
			resp := roundTrip(t, server, i+2, "tools/call", map[string]interface{}{
				"name":      tt.tool,
				"arguments": tt.args,
			})
			require.Nil(t, resp.Error)
			require.NotEmpty(t, resp.Result.Content)

			assert.Equal(t, "text", resp.Result.Content[0].Type)
			assert.Equal(t, tt.isError, resp.Result.IsError)
			assert.Contains(t, resp.Result.Content[0].Text, tt.want)
		})
	}
}

func TestServerIntegration_UnknownTool(t *testing.T) {
	server, _ := newTestServer(t)

	resp := roundTrip(t, server, 1, "tools/call", map[string]interface{}{
		"name":      "pdf_read_file",
		"arguments": map[string]interface{}{},
	})
	assert.NotNil(t, resp.Error)
}
