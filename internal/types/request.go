package types

// ExecuteRequest is the payload for tool execution
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}
