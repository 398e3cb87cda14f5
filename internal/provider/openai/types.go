package openai

// Responses API 请求/响应结构
// 参考: https://platform.openai.com/docs/api-reference/responses

// ContentPart Responses API 输入内容分片
// 文本 input_text、图片 input_image、文件 input_file 三种
type ContentPart struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Filename string `json:"filename,omitempty"`
	FileData string `json:"file_data,omitempty"`
}

// InputMessage Responses API 输入消息
type InputMessage struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

// Reasoning 推理模型配置
type Reasoning struct {
	Effort string `json:"effort"`
}

// Tool 工具声明（这里仅用到 web_search）
type Tool struct {
	Type string `json:"type"`
}

// Request Responses API 请求体
type Request struct {
	Model              string         `json:"model"`
	Instructions       *string        `json:"instructions,omitempty"`
	Input              []InputMessage `json:"input"`
	MaxOutputTokens    int            `json:"max_output_tokens,omitempty"`
	Temperature        *float64       `json:"temperature,omitempty"`
	Reasoning          *Reasoning     `json:"reasoning,omitempty"`
	Tools              []Tool         `json:"tools,omitempty"`
	PreviousResponseID string         `json:"previous_response_id,omitempty"`
}

// OutputContent 输出内容分片
type OutputContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// OutputItem 输出条目（message、reasoning、web_search_call 等）
type OutputItem struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Role    string          `json:"role,omitempty"`
	Content []OutputContent `json:"content,omitempty"`
}

// Usage token 用量
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// APIError 上游错误体
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// Response Responses API 响应体
type Response struct {
	ID     string       `json:"id"`
	Object string       `json:"object"`
	Status string       `json:"status"`
	Model  string       `json:"model"`
	Output []OutputItem `json:"output"`
	Usage  *Usage       `json:"usage,omitempty"`
	Error  *APIError    `json:"error,omitempty"`
}

// OutputText 聚合全部 message 条目中的 output_text 分片
func (r *Response) OutputText() string {
	var text string
	for _, item := range r.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" {
				text += content.Text
			}
		}
	}
	return text
}
